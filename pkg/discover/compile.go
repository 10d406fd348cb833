package discover

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mesh-intelligence/tabtext/pkg/table"
)

// Compile turns a finalized draft into a schema for direct use at runtime:
// defaults are decoded under each column's type and validation specs are
// compiled to check functions. A malformed row fails with ErrSchemaDraft
// naming the row and attribute; no partial schema is returned.
func Compile(cols []DraftColumn) (*table.Schema, error) {
	defs := make([]table.ColumnDef, len(cols))
	for i, c := range cols {
		def, err := compileColumn(i, c)
		if err != nil {
			return nil, err
		}
		defs[i] = def
	}
	s, err := table.New(defs...)
	if err != nil {
		return nil, fmt.Errorf("draft does not form a valid schema: %w", err)
	}
	return s, nil
}

func compileColumn(i int, c DraftColumn) (table.ColumnDef, error) {
	if strings.TrimSpace(c.Name) == "" {
		return table.ColumnDef{}, fmt.Errorf("row %d: missing column name: %w", i, table.ErrSchemaDraft)
	}
	if !table.IsValidType(c.Type) {
		return table.ColumnDef{}, fmt.Errorf("row %d (column %q): unknown type %q: %w", i, c.Name, c.Type, table.ErrSchemaDraft)
	}
	def := table.ColumnDef{Name: c.Name, Heading: c.Heading, Type: c.Type}
	if c.Default != "" {
		v, err := table.Decode(c.Default, c.Type)
		if err != nil {
			return table.ColumnDef{}, fmt.Errorf("row %d (column %q): default %q: %v: %w", i, c.Name, c.Default, err, table.ErrSchemaDraft)
		}
		def.Default = v
	}
	if c.Validation != "" {
		check, err := compileCheck(c.Type, c.Validation)
		if err != nil {
			return table.ColumnDef{}, fmt.Errorf("row %d (column %q): %v: %w", i, c.Name, err, table.ErrSchemaDraft)
		}
		def.Check = check
	}
	return def, nil
}

// compileCheck parses a validation spec into a check function. The grammar
// has two forms: "oneof:a|b|c" with alternatives in the column's text
// representation, and "range:LO..HI" for numeric columns.
func compileCheck(typeTag, spec string) (table.CheckFunc, error) {
	kind, arg, ok := strings.Cut(spec, ":")
	if !ok {
		return nil, fmt.Errorf("validation %q has no kind prefix", spec)
	}
	switch kind {
	case "oneof":
		parts := strings.Split(arg, "|")
		allowed := make([]any, len(parts))
		for i, p := range parts {
			v, err := table.Decode(p, typeTag)
			if err != nil {
				return nil, fmt.Errorf("validation alternative %q: %v", p, err)
			}
			allowed[i] = v
		}
		return table.OneOf(allowed...), nil
	case "range":
		lo, hi, ok := strings.Cut(arg, "..")
		if !ok {
			return nil, fmt.Errorf("range validation %q needs LO..HI", spec)
		}
		switch typeTag {
		case table.Integer:
			l, err := strconv.ParseInt(lo, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("range bound %q: %v", lo, err)
			}
			h, err := strconv.ParseInt(hi, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("range bound %q: %v", hi, err)
			}
			return table.IntRange(l, h), nil
		case table.Float:
			l, err := strconv.ParseFloat(lo, 64)
			if err != nil {
				return nil, fmt.Errorf("range bound %q: %v", lo, err)
			}
			h, err := strconv.ParseFloat(hi, 64)
			if err != nil {
				return nil, fmt.Errorf("range bound %q: %v", hi, err)
			}
			return table.FloatRange(l, h), nil
		default:
			return nil, fmt.Errorf("range validation requires a numeric column, not %q", typeTag)
		}
	default:
		return nil, fmt.Errorf("unknown validation kind %q", kind)
	}
}
