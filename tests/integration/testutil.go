// Package integration provides end-to-end tests for the tabtext binary.
package integration

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

var (
	// tabtextBin is the path to the built tabtext binary.
	tabtextBin string
	// buildErr captures any build error from TestMain.
	buildErr error
)

// BuildError wraps a build error with the compiler output.
type BuildError struct {
	Err    error
	Output string
}

func (e *BuildError) Error() string {
	return e.Err.Error() + ": " + e.Output
}

// FindProjectRoot finds the project root by walking up and looking for go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}

// RunTabtext executes the built binary with the given stdin and arguments,
// returning stdout and stderr separately.
func RunTabtext(stdin string, args ...string) (string, string, error) {
	cmd := exec.Command(tabtextBin, args...)
	cmd.Stdin = strings.NewReader(stdin)
	var out, errOut bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errOut
	err := cmd.Run()
	return out.String(), errOut.String(), err
}
