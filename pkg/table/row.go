package table

import "fmt"

// Row is the canonical positional shape of one record: one coerced value
// per column, aligned by position. The mapping and record shapes are views
// over this form, keyed by column name. Rows are never mutated after
// construction; transformations produce new rows.
type Row []any

// MapRow returns the name-keyed view of a positional row.
func (s *Schema) MapRow(row Row) (map[string]any, error) {
	if len(row) != len(s.cols) {
		return nil, fmt.Errorf("row has %d cells, schema has %d columns: %w", len(row), len(s.cols), ErrRowShape)
	}
	m := make(map[string]any, len(row))
	for i, c := range s.cols {
		m[c.Name] = row[i]
	}
	return m, nil
}

// RowFromMap assembles a positional row from a name-keyed mapping. Every
// column must be present exactly once: unknown keys fail with
// ErrColumnNotFound, missing columns with ErrRowShape.
func (s *Schema) RowFromMap(m map[string]any) (Row, error) {
	row := make(Row, len(s.cols))
	for name, v := range m {
		i, ok := s.byName[name]
		if !ok {
			return nil, fmt.Errorf("%q: %w", name, ErrColumnNotFound)
		}
		row[i] = v
	}
	if len(m) != len(s.cols) {
		for _, c := range s.cols {
			if _, ok := m[c.Name]; !ok {
				return nil, fmt.Errorf("mapping is missing column %q: %w", c.Name, ErrRowShape)
			}
		}
	}
	return row, nil
}

// Record is the fixed-field shape of one record: cells addressed by column
// name through the schema that produced it.
type Record struct {
	schema *Schema
	cells  Row
}

// Record returns the fixed-field view of a positional row.
func (s *Schema) Record(row Row) (Record, error) {
	if len(row) != len(s.cols) {
		return Record{}, fmt.Errorf("row has %d cells, schema has %d columns: %w", len(row), len(s.cols), ErrRowShape)
	}
	return Record{schema: s, cells: append(Row(nil), row...)}, nil
}

// Get returns the value of the named field.
func (r Record) Get(name string) (any, error) {
	i, err := r.schema.Position(name)
	if err != nil {
		return nil, err
	}
	return r.cells[i], nil
}

// Cells returns a copy of the record's values in position order.
func (r Record) Cells() Row {
	return append(Row(nil), r.cells...)
}

// Schema returns the schema the record was built against.
func (r Record) Schema() *Schema {
	return r.schema
}
