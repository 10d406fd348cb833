// Strip command: trim surrounding whitespace from every field.
package cli

import (
	"io"
	"strings"

	"github.com/spf13/cobra"
)

func newStripCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "strip [file]",
		Short: "Trim leading and trailing spaces from every field",
		Long: `Strip copies delimited text, trimming leading and trailing whitespace
from every field of every line, header included. The table layout is
preserved; only the field contents change.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, _, err := openInput(cmd, args)
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

			fr := inFormat.NewFieldReader(in)
			fw := outFormat.NewFieldWriter(cmd.OutOrStdout())
			for {
				fields, err := fr.Read()
				if err == io.EOF {
					break
				}
				if err != nil {
					return err
				}
				for i, f := range fields {
					fields[i] = strings.TrimSpace(f)
				}
				if err := fw.Write(fields); err != nil {
					return err
				}
			}
			fw.Flush()
			return fw.Error()
		},
	}
}
