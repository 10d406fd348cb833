// Package cli implements the tabtext command-line interface: extraction of
// headings, draft schema inference, initializer generation, and small
// field-level utilities, all sharing the delimiter flags and config.
package cli

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// exitUserError is returned to the shell when any subcommand fails.
const exitUserError = 1

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configFile string
	inDelim    string
	outDelim   string
	verbose    bool
}

var flags rootFlags

// NewRootCmd creates the top-level "tabtext" command with global flags and
// all subcommands registered.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "tabtext",
		Short: "Typed tables over delimited text",
		Long: `Tabtext reads and writes tables of typed values stored as delimited
text. It extracts headings from sample data, infers draft schemas for hand
editing, and generates compiled Go schema initializers from finalized
drafts.`,
		// Do not print usage on errors returned by subcommands.
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}

	root.PersistentFlags().StringVar(&flags.configFile, "config", "", "config file (default: .tabtext.yaml in the working directory)")
	root.PersistentFlags().StringVar(&flags.inDelim, "in-delim", "", "input field delimiter (default from config, else ',')")
	root.PersistentFlags().StringVar(&flags.outDelim, "out-delim", "", "output field delimiter (default from config, else ',')")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "increase logging verbosity")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newHeadingsCmd())
	root.AddCommand(newDraftCmd())
	root.AddCommand(newFillCmd())
	root.AddCommand(newGencodeCmd())
	root.AddCommand(newStripCmd())
	root.AddCommand(newSummaryCmd())

	return root
}

// setup configures logging and loads the optional config file before any
// subcommand runs.
func setup(cmd *cobra.Command, args []string) error {
	if flags.verbose {
		log.SetLevel(log.DebugLevel)
	}
	return loadConfig(flags.configFile)
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		os.Exit(exitUserError)
	}
}
