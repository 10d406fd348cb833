package discover

import (
	"fmt"
	"io"

	"github.com/mesh-intelligence/tabtext/pkg/tabio"
)

// Summary accumulates distributions over sample rows before a schema
// exists: how many fields each line has, and how often each value occurs
// in each column. Both distributions keep first-occurrence order, which is
// what a reviewer wants to see when deciding column types for a draft.
type Summary struct {
	rows       int
	widths     map[int]int
	widthOrder []int
	columns    []*valueTally
	maxWidth   int // 0 means unlimited
}

// valueTally counts occurrences of each distinct value in one column.
type valueTally struct {
	counts map[string]int
	order  []string
}

// WidthCount is one entry of the line-width distribution.
type WidthCount struct {
	Width int
	Count int
}

// ValueCount is one entry of a column's value distribution.
type ValueCount struct {
	Value string
	Count int
}

// NewSummary returns an empty summary. A maxWidth above zero makes AddRow
// reject rows with more fields than that.
func NewSummary(maxWidth int) *Summary {
	return &Summary{widths: make(map[int]int), maxWidth: maxWidth}
}

// AddRow folds one row of raw text fields into the summary.
func (s *Summary) AddRow(fields []string) error {
	if s.maxWidth > 0 && len(fields) > s.maxWidth {
		return fmt.Errorf("row %d has %d fields, limit is %d", s.rows, len(fields), s.maxWidth)
	}
	s.rows++
	if _, seen := s.widths[len(fields)]; !seen {
		s.widthOrder = append(s.widthOrder, len(fields))
	}
	s.widths[len(fields)]++
	for len(s.columns) < len(fields) {
		s.columns = append(s.columns, &valueTally{counts: make(map[string]int)})
	}
	for i, v := range fields {
		t := s.columns[i]
		if _, seen := t.counts[v]; !seen {
			t.order = append(t.order, v)
		}
		t.counts[v]++
	}
	return nil
}

// AddAll drains a field reader into the summary.
func (s *Summary) AddAll(fr tabio.FieldReader) error {
	for {
		fields, err := fr.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if err := s.AddRow(fields); err != nil {
			return err
		}
	}
}

// Rows returns the number of rows folded in.
func (s *Summary) Rows() int {
	return s.rows
}

// Widths returns the line-width distribution in first-occurrence order.
func (s *Summary) Widths() []WidthCount {
	out := make([]WidthCount, len(s.widthOrder))
	for i, w := range s.widthOrder {
		out[i] = WidthCount{Width: w, Count: s.widths[w]}
	}
	return out
}

// ColumnCount returns the number of columns seen across all rows.
func (s *Summary) ColumnCount() int {
	return len(s.columns)
}

// ColumnValues returns column i's value distribution in first-occurrence
// order. Columns a short row lacks contribute nothing to the tally.
func (s *Summary) ColumnValues(i int) []ValueCount {
	if i < 0 || i >= len(s.columns) {
		return nil
	}
	t := s.columns[i]
	out := make([]ValueCount, len(t.order))
	for j, v := range t.order {
		out[j] = ValueCount{Value: v, Count: t.counts[v]}
	}
	return out
}
