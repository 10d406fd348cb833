package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"
)

// openInput returns the source for a command: the named file when an
// argument was given, otherwise the command's standard input. The caller
// must close the result on every path.
func openInput(cmd *cobra.Command, args []string) (io.ReadCloser, string, error) {
	if len(args) == 0 {
		return io.NopCloser(cmd.InOrStdin()), "stdin", nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, "", err
	}
	return f, args[0], nil
}
