// Summary command: distributions of line widths and column values in
// sample data, as an aid to reviewing a draft schema.
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/tabtext/pkg/discover"
	"github.com/mesh-intelligence/tabtext/pkg/tabio"
)

func newSummaryCmd() *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "summary [file]",
		Short: "Summarize field widths and column values",
		Long: `Summary reads delimited text and reports how many fields each line has
and how often each value occurs in each column, in first-occurrence order.

By default one combined table goes to stdout with columns section, value,
and count; the section is "widths" or "column_N". With --out-dir, each
column's distribution is written to its own file plus a widths file.`,
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

			s := discover.NewSummary(0)
			if err := s.AddAll(inFormat.NewFieldReader(in)); err != nil {
				return fmt.Errorf("summarize %s: %w", name, err)
			}
			log.Debugf("summarized %d rows, %d columns from %s", s.Rows(), s.ColumnCount(), name)

			if outDir != "" {
				return writeSummaryFiles(s, outDir, outFormat)
			}

			fw := outFormat.NewFieldWriter(cmd.OutOrStdout())
			if err := fw.Write([]string{"section", "value", "count"}); err != nil {
				return err
			}
			for _, wc := range s.Widths() {
				if err := fw.Write([]string{"widths", strconv.Itoa(wc.Width), strconv.Itoa(wc.Count)}); err != nil {
					return err
				}
			}
			for i := 0; i < s.ColumnCount(); i++ {
				section := "column_" + strconv.Itoa(i)
				for _, vc := range s.ColumnValues(i) {
					if err := fw.Write([]string{section, vc.Value, strconv.Itoa(vc.Count)}); err != nil {
						return err
					}
				}
			}
			fw.Flush()
			return fw.Error()
		},
	}

	cmd.Flags().StringVar(&outDir, "out-dir", "", "write one file per column instead of a combined report")
	return cmd
}

// writeSummaryFiles writes widths.csv plus one column_N.csv per column.
func writeSummaryFiles(s *discover.Summary, dir string, f tabio.Format) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	widths := make([][]string, 0, len(s.Widths())+1)
	widths = append(widths, []string{"width", "count"})
	for _, wc := range s.Widths() {
		widths = append(widths, []string{strconv.Itoa(wc.Width), strconv.Itoa(wc.Count)})
	}
	if err := writeRecords(filepath.Join(dir, "widths.csv"), f, widths); err != nil {
		return err
	}

	for i := 0; i < s.ColumnCount(); i++ {
		records := make([][]string, 0, len(s.ColumnValues(i))+1)
		records = append(records, []string{"value", "count"})
		for _, vc := range s.ColumnValues(i) {
			records = append(records, []string{vc.Value, strconv.Itoa(vc.Count)})
		}
		path := filepath.Join(dir, "column_"+strconv.Itoa(i)+".csv")
		if err := writeRecords(path, f, records); err != nil {
			return err
		}
	}
	return nil
}

// writeRecords writes records to a new file, closing it on every path.
func writeRecords(path string, f tabio.Format, records [][]string) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()

	fw := f.NewFieldWriter(out)
	for _, rec := range records {
		if err := fw.Write(rec); err != nil {
			return err
		}
	}
	fw.Flush()
	if err := fw.Error(); err != nil {
		return err
	}
	return out.Close()
}
