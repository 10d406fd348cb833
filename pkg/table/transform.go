package table

import "fmt"

// Transformation operators. Each derives a new schema (and, where rows are
// involved, new rows) from its inputs; nothing is mutated in place.

// Append extends the schema with new columns on the right. Every existing
// row gains each new column's default value (ZeroValue of the type when the
// definition declares none). A name collision with an existing column fails
// with ErrSchemaIntegrity.
func Append(s *Schema, rows []Row, cols ...ColumnDef) (*Schema, []Row, error) {
	merged, err := New(append(s.Columns(), cols...)...)
	if err != nil {
		return nil, nil, err
	}
	defaults := make([]any, len(cols))
	for i, c := range cols {
		if c.Default != nil {
			defaults[i] = c.Default
			continue
		}
		z, err := ZeroValue(c.Type)
		if err != nil {
			return nil, nil, err
		}
		defaults[i] = z
	}
	out := make([]Row, len(rows))
	for ri, row := range rows {
		if len(row) != s.ColumnCount() {
			return nil, nil, fmt.Errorf("row %d has %d cells, schema has %d columns: %w", ri, len(row), s.ColumnCount(), ErrRowShape)
		}
		nr := make(Row, 0, merged.ColumnCount())
		nr = append(nr, row...)
		nr = append(nr, defaults...)
		out[ri] = nr
	}
	return merged, out, nil
}

// Rename changes column names per mapping (old name to new name), keeping
// position, heading, and type. Unknown old names fail with
// ErrColumnNotFound; a resulting collision fails with ErrSchemaIntegrity.
func Rename(s *Schema, mapping map[string]string) (*Schema, error) {
	cols := s.Columns()
	for oldName, newName := range mapping {
		i, ok := s.byName[oldName]
		if !ok {
			return nil, fmt.Errorf("%q: %w", oldName, ErrColumnNotFound)
		}
		cols[i].Name = newName
	}
	return New(cols...)
}

// ChangeHeadings changes display headings per mapping (column name to new
// heading), leaving names and programmatic identity untouched.
func ChangeHeadings(s *Schema, mapping map[string]string) (*Schema, error) {
	cols := s.Columns()
	for name, heading := range mapping {
		i, ok := s.byName[name]
		if !ok {
			return nil, fmt.Errorf("%q: %w", name, ErrColumnNotFound)
		}
		cols[i].Heading = heading
	}
	return New(cols...)
}

// Remove drops the named columns from the schema and from every row,
// renumbering the remaining positions contiguously.
func Remove(s *Schema, rows []Row, names ...string) (*Schema, []Row, error) {
	drop := make(map[int]bool, len(names))
	for _, name := range names {
		i, ok := s.byName[name]
		if !ok {
			return nil, nil, fmt.Errorf("%q: %w", name, ErrColumnNotFound)
		}
		drop[i] = true
	}
	kept := make([]int, 0, s.ColumnCount()-len(drop))
	for i := range s.cols {
		if !drop[i] {
			kept = append(kept, i)
		}
	}
	return project(s, rows, kept)
}

// Select produces a schema containing exactly the named columns in the
// given order; rows are projected to match. The list may reorder and omit
// but not duplicate: duplicates fail with ErrSchemaIntegrity, unknown names
// with ErrColumnNotFound. Selecting twice with the same list is a no-op the
// second time.
func Select(s *Schema, rows []Row, names ...string) (*Schema, []Row, error) {
	seen := make(map[string]bool, len(names))
	kept := make([]int, 0, len(names))
	for _, name := range names {
		if seen[name] {
			return nil, nil, fmt.Errorf("column %q selected twice: %w", name, ErrSchemaIntegrity)
		}
		seen[name] = true
		i, ok := s.byName[name]
		if !ok {
			return nil, nil, fmt.Errorf("%q: %w", name, ErrColumnNotFound)
		}
		kept = append(kept, i)
	}
	return project(s, rows, kept)
}

// project builds the schema and rows containing the source columns at the
// given indices, in that order.
func project(s *Schema, rows []Row, indices []int) (*Schema, []Row, error) {
	cols := make([]ColumnDef, len(indices))
	for i, src := range indices {
		cols[i] = s.cols[src]
	}
	ns, err := New(cols...)
	if err != nil {
		return nil, nil, err
	}
	out := make([]Row, len(rows))
	for ri, row := range rows {
		if len(row) != s.ColumnCount() {
			return nil, nil, fmt.Errorf("row %d has %d cells, schema has %d columns: %w", ri, len(row), s.ColumnCount(), ErrRowShape)
		}
		nr := make(Row, len(indices))
		for i, src := range indices {
			nr[i] = row[src]
		}
		out[ri] = nr
	}
	return ns, out, nil
}
