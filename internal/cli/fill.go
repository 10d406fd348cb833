// Fill command: complete blank cells in a hand-edited draft schema table.
package cli

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/tabtext/pkg/discover"
)

func newFillCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fill [file]",
		Short: "Fill blanks in a draft schema with defaults",
		Long: `Fill reads a draft schema table and replaces blank cells with their
defaults: blank names become normalized headings, blank types become
string. Nonblank cells are left unchanged, and every input row appears in
the output.`,
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

			cols, err := discover.ReadDraft(in, inFormat)
			if err != nil {
				return fmt.Errorf("read draft: %w", err)
			}
			filled, err := discover.FillDefaults(cols)
			if err != nil {
				return err
			}
			log.Debugf("filled %d draft columns from %s", len(filled), name)

			return discover.WriteDraft(cmd.OutOrStdout(), outFormat, filled)
		},
	}
}
