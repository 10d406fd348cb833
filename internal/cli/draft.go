// Draft command: infer a draft schema table from sample data headings.
package cli

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/tabtext/pkg/discover"
)

func newDraftCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "draft [file]",
		Short: "Infer a draft schema from sample data",
		Long: `Draft reads the header line of sample data and emits a draft schema
table: one row per column with heading, generated name, and the string type
as a starting point. Edit the draft by hand, then feed it to "fill" to
complete blanks or to "gencode" to generate a compiled initializer.`,
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
			outFormat, err := outputFormat()
			if err != nil {
				return err
			}

			heads, err := discover.Headings(in, inFormat)
			if err != nil {
				return fmt.Errorf("read headings: %w", err)
			}
			cols := discover.Infer(heads)
			log.Debugf("inferred %d draft columns from %s", len(cols), name)

			return discover.WriteDraft(cmd.OutOrStdout(), outFormat, cols)
		},
	}
}
