package tabio

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/mesh-intelligence/tabtext/pkg/table"
)

// Writer emits typed rows as delimited text, one line per row, each cell
// encoded by its column's codec. Any of the three row shapes a Reader
// produces can be written back.
type Writer struct {
	schema *table.Schema
	fw     *csv.Writer
}

// NewWriter opens a typed-row writer over w. The header line is not
// written implicitly; call WriteHeader first when one is wanted.
func NewWriter(s *table.Schema, w io.Writer, f Format) *Writer {
	return &Writer{schema: s, fw: f.NewFieldWriter(w)}
}

// WriteHeader emits the heading line from the schema.
func (w *Writer) WriteHeader() error {
	return w.fw.Write(w.schema.Headings())
}

// Write emits one positional row. A width mismatch fails with ErrRowShape;
// a value the column type cannot render fails with ErrCoercion.
func (w *Writer) Write(row table.Row) error {
	if len(row) != w.schema.ColumnCount() {
		return fmt.Errorf("row has %d cells, schema has %d columns: %w", len(row), w.schema.ColumnCount(), table.ErrRowShape)
	}
	rec := make([]string, len(row))
	for i, v := range row {
		col, err := w.schema.ByPosition(i)
		if err != nil {
			return err
		}
		text, err := table.Encode(v, col.Type)
		if err != nil {
			return fmt.Errorf("column %q: %w", col.Name, err)
		}
		rec[i] = text
	}
	return w.fw.Write(rec)
}

// WriteMap emits one row given in the name-keyed mapping shape.
func (w *Writer) WriteMap(m map[string]any) error {
	row, err := w.schema.RowFromMap(m)
	if err != nil {
		return err
	}
	return w.Write(row)
}

// WriteRecord emits one row given in the fixed-field record shape.
func (w *Writer) WriteRecord(rec table.Record) error {
	return w.Write(rec.Cells())
}

// WriteAll emits the given rows and flushes.
func (w *Writer) WriteAll(rows []table.Row) error {
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Flush()
}

// Flush writes buffered output to the underlying writer and reports any
// error from earlier writes.
func (w *Writer) Flush() error {
	w.fw.Flush()
	return w.fw.Error()
}
