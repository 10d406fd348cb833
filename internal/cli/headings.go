// Headings command: extract the first line of delimited text as column
// headings, optionally numbered by position.
package cli

import (
	"fmt"
	"strconv"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/tabtext/pkg/discover"
)

func newHeadingsCmd() *cobra.Command {
	var noEnum bool

	cmd := &cobra.Command{
		Use:   "headings [file]",
		Short: "Extract column headings from the first line",
		Long: `Headings reads the first line of delimited text and prints each heading.

By default the output is a two-column table of position and heading text.
With --no-enum the headings are printed bare, one per line, verbatim.
Input comes from the named file, or from stdin when no file is given.`,
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
			log.Debugf("read %d headings from %s", len(heads), name)

			fw := outFormat.NewFieldWriter(cmd.OutOrStdout())
			if noEnum {
				for _, h := range heads {
					if err := fw.Write([]string{h}); err != nil {
						return err
					}
				}
			} else {
				if err := fw.Write([]string{"column", "heading"}); err != nil {
					return err
				}
				for i, h := range heads {
					if err := fw.Write([]string{strconv.Itoa(i), h}); err != nil {
						return err
					}
				}
			}
			fw.Flush()
			return fw.Error()
		},
	}

	cmd.Flags().BoolVar(&noEnum, "no-enum", false, "print bare headings without position numbers")
	return cmd
}
