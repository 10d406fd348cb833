package table

import "fmt"

// Schema is an ordered, immutable sequence of column definitions, indexed
// both by position and by name. All change goes through the transformation
// operators, each of which yields a new Schema. Because a Schema never
// mutates after construction, concurrent readers need no locking.
type Schema struct {
	cols   []ColumnDef
	byName map[string]int
}

// New constructs a Schema from column definitions in position order.
// It fails with an error wrapping ErrSchemaIntegrity when two columns share
// a name, a name or type tag is invalid, or a declared default does not
// encode under the column's type.
func New(cols ...ColumnDef) (*Schema, error) {
	byName := make(map[string]int, len(cols))
	for i, c := range cols {
		if !IsValidName(c.Name) {
			return nil, fmt.Errorf("column %d has invalid name %q: %w", i, c.Name, ErrSchemaIntegrity)
		}
		if _, dup := byName[c.Name]; dup {
			return nil, fmt.Errorf("duplicate column name %q: %w", c.Name, ErrSchemaIntegrity)
		}
		if !IsValidType(c.Type) {
			return nil, fmt.Errorf("column %q has unknown type %q: %w", c.Name, c.Type, ErrSchemaIntegrity)
		}
		if c.Default != nil {
			if _, err := Encode(c.Default, c.Type); err != nil {
				return nil, fmt.Errorf("column %q default: %v: %w", c.Name, err, ErrSchemaIntegrity)
			}
		}
		byName[c.Name] = i
	}
	return &Schema{cols: append([]ColumnDef(nil), cols...), byName: byName}, nil
}

// MustNew is New for compile-time constant definitions; it panics on error.
// Generated schema initializers use it so a bad schema fails at load time.
func MustNew(cols ...ColumnDef) *Schema {
	s, err := New(cols...)
	if err != nil {
		panic(err)
	}
	return s
}

// ColumnCount returns the number of columns.
func (s *Schema) ColumnCount() int {
	return len(s.cols)
}

// ByName returns the column definition with the given name.
func (s *Schema) ByName(name string) (ColumnDef, error) {
	i, ok := s.byName[name]
	if !ok {
		return ColumnDef{}, fmt.Errorf("%q: %w", name, ErrColumnNotFound)
	}
	return s.cols[i], nil
}

// Position returns the ordinal index of the named column.
func (s *Schema) Position(name string) (int, error) {
	i, ok := s.byName[name]
	if !ok {
		return 0, fmt.Errorf("%q: %w", name, ErrColumnNotFound)
	}
	return i, nil
}

// ByPosition returns the column definition at index i.
func (s *Schema) ByPosition(i int) (ColumnDef, error) {
	if i < 0 || i >= len(s.cols) {
		return ColumnDef{}, fmt.Errorf("position %d of %d columns: %w", i, len(s.cols), ErrColumnNotFound)
	}
	return s.cols[i], nil
}

// Headings returns the heading text of every column in position order.
func (s *Schema) Headings() []string {
	out := make([]string, len(s.cols))
	for i, c := range s.cols {
		out[i] = c.Heading
	}
	return out
}

// Names returns the column names in position order.
func (s *Schema) Names() []string {
	out := make([]string, len(s.cols))
	for i, c := range s.cols {
		out[i] = c.Name
	}
	return out
}

// Columns returns a copy of the column definitions in position order.
func (s *Schema) Columns() []ColumnDef {
	return append([]ColumnDef(nil), s.cols...)
}
