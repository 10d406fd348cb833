// Config loading for the tabtext CLI. Delimiters resolve flag first, then
// config file, then the comma default; the config value is an explicit
// setting threaded into every command, never hidden process state.
package cli

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/tabtext/pkg/tabio"
)

const (
	configName = ".tabtext"
	configType = "yaml"

	cfgKeyInDelim  = "in_delim"
	cfgKeyOutDelim = "out_delim"
	cfgKeyCRLF     = "crlf"
)

// cfg is populated by loadConfig before any subcommand runs.
var cfg *viper.Viper

// loadConfig reads the config file using Viper. With an explicit path the
// file must exist; otherwise a missing .tabtext.yaml in the working
// directory is not an error.
func loadConfig(path string) error {
	v := viper.New()
	v.SetDefault(cfgKeyInDelim, ",")
	v.SetDefault(cfgKeyOutDelim, ",")
	v.SetDefault(cfgKeyCRLF, false)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config: %w", err)
		}
		cfg = v
		return nil
	}

	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
		// Missing config file is not an error.
	}
	cfg = v
	return nil
}

// inputFormat resolves the delimiter format for reading.
func inputFormat() (tabio.Format, error) {
	return resolveFormat(flags.inDelim, cfgKeyInDelim)
}

// outputFormat resolves the delimiter format for writing.
func outputFormat() (tabio.Format, error) {
	return resolveFormat(flags.outDelim, cfgKeyOutDelim)
}

func resolveFormat(flagValue, cfgKey string) (tabio.Format, error) {
	s := flagValue
	if s == "" {
		s = cfg.GetString(cfgKey)
	}
	delim, err := parseDelim(s)
	if err != nil {
		return tabio.Format{}, err
	}
	return tabio.Format{Comma: delim, UseCRLF: cfg.GetBool(cfgKeyCRLF)}, nil
}

// parseDelim turns a delimiter spec into a rune. "\t" and "tab" select the
// tab character; anything else must be a single character.
func parseDelim(s string) (rune, error) {
	switch s {
	case "":
		return ',', nil
	case `\t`, "tab":
		return '\t', nil
	}
	r, size := utf8.DecodeRuneInString(s)
	if size != len(s) || r == utf8.RuneError {
		return 0, fmt.Errorf("delimiter %q must be a single character", s)
	}
	return r, nil
}
