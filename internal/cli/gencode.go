// Gencode command: generate a Go schema initializer from a finalized draft.
package cli

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/tabtext/pkg/discover"
)

func newGencodeCmd() *cobra.Command {
	var pkgName, varName string

	cmd := &cobra.Command{
		Use:   "gencode [file]",
		Short: "Generate a Go schema initializer from a draft",
		Long: `Gencode reads a finalized draft schema table and emits Go source
containing one column definition per row inside a table.MustNew call, for
direct inclusion in application source. The draft must be complete: a row
with a blank name, unknown type, bad default, or bad validation spec fails
the generation step and nothing is emitted.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, name, err := openInput(cmd, args)
			if err != nil {
				return err
			}
			defer in.Close()

			inFormat, err := inputFormat()
			if err != nil {
				return err
			}

			cols, err := discover.ReadDraft(in, inFormat)
			if err != nil {
				return fmt.Errorf("read draft: %w", err)
			}
			log.Debugf("generating initializer for %d columns from %s", len(cols), name)

			return discover.Generate(cmd.OutOrStdout(), pkgName, varName, cols)
		},
	}

	cmd.Flags().StringVar(&pkgName, "package", "main", "package name for the generated source")
	cmd.Flags().StringVar(&varName, "var", "Columns", "variable name for the generated schema")
	return cmd
}
