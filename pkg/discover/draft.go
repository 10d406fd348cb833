package discover

import (
	"fmt"
	"io"
	"strings"

	"github.com/mesh-intelligence/tabtext/pkg/tabio"
	"github.com/mesh-intelligence/tabtext/pkg/table"
)

// DraftColumn is one row of a draft schema table: a human-reviewable column
// definition with every attribute still in text form. Default is the
// absent-cell value encoded under the column's own type; Validation is a
// spec in the small grammar understood by Compile and Generate ("oneof:a|b"
// or "range:LO..HI").
type DraftColumn struct {
	Heading    string
	Name       string
	Type       string
	Default    string
	Validation string
}

// draftSchema is the meta-schema describing draft tables. Immutable, safe
// to share.
var draftSchema = table.MustNew(
	table.ColumnDef{Name: "heading", Heading: "heading", Type: table.String},
	table.ColumnDef{Name: "name", Heading: "name", Type: table.String},
	table.ColumnDef{Name: "type", Heading: "type", Type: table.String},
	table.ColumnDef{Name: "default", Heading: "default", Type: table.String},
	table.ColumnDef{Name: "validation", Heading: "validation", Type: table.String},
)

// DraftSchema returns the schema of draft tables, five string columns:
// heading, name, type, default, validation. Drafts round-trip through
// pkg/tabio under this schema like any other table.
func DraftSchema() *table.Schema {
	return draftSchema
}

// Infer produces one draft column per heading: the name is the normalized
// heading (or a positional fallback when nothing usable remains or the
// normalized form collides), the type defaults to string, default and
// validation are left blank for the reviewer. Names in the result are
// always unique: a positional fallback that itself collides with a
// normalized heading gains a numeric suffix.
func Infer(headings []string) []DraftColumn {
	cols := make([]DraftColumn, len(headings))
	taken := make(map[string]bool, len(headings))
	for i, h := range headings {
		name := NormalizeName(h)
		if name == "" || taken[name] {
			base := fmt.Sprintf("column_%d", i)
			name = base
			for n := 2; taken[name]; n++ {
				name = fmt.Sprintf("%s_%d", base, n)
			}
		}
		taken[name] = true
		cols[i] = DraftColumn{Heading: h, Name: name, Type: table.String}
	}
	return cols
}

// FillDefaults completes a hand-edited draft: blank names gain the
// normalized heading (or a positional fallback), blank types become string.
// Defaulting happens first, validation of the result second. Explicitly
// supplied values are never rewritten: an invalid or duplicate explicit
// name fails with ErrSchemaDraft naming the row, and default and validation
// cells pass through byte for byte. The result always has one output row
// per input row; nothing is dropped.
func FillDefaults(cols []DraftColumn) ([]DraftColumn, error) {
	out := make([]DraftColumn, len(cols))
	taken := make(map[string]bool, len(cols))
	for i, c := range cols {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			name = NormalizeName(c.Heading)
			if name == "" || taken[name] {
				name = fmt.Sprintf("column_%d", i)
			}
			if taken[name] {
				return nil, fmt.Errorf("row %d: generated name %q collides: %w", i, name, table.ErrSchemaDraft)
			}
		} else {
			if !table.IsValidName(name) {
				return nil, fmt.Errorf("row %d: invalid column name %q: %w", i, name, table.ErrSchemaDraft)
			}
			if taken[name] {
				return nil, fmt.Errorf("row %d: duplicate column name %q: %w", i, name, table.ErrSchemaDraft)
			}
		}
		taken[name] = true

		typ := strings.TrimSpace(c.Type)
		if typ == "" {
			typ = table.String
		}
		if !table.IsValidType(typ) {
			return nil, fmt.Errorf("row %d (column %q): unknown type %q: %w", i, name, typ, table.ErrSchemaDraft)
		}

		out[i] = DraftColumn{
			Heading:    c.Heading,
			Name:       name,
			Type:       typ,
			Default:    c.Default,
			Validation: c.Validation,
		}
	}
	return out, nil
}

// NormalizeName derives a column name from heading text: lowercased, runs
// of anything but ASCII letters and digits collapsed to single underscores,
// leading and trailing underscores dropped, and a leading digit prefixed
// with "c_". Returns "" when nothing usable remains.
func NormalizeName(heading string) string {
	var b strings.Builder
	pending := false
	for _, r := range strings.ToLower(heading) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			if pending && b.Len() > 0 {
				b.WriteByte('_')
			}
			pending = false
			b.WriteRune(r)
		default:
			pending = true
		}
	}
	name := b.String()
	if name == "" {
		return ""
	}
	if name[0] >= '0' && name[0] <= '9' {
		name = "c_" + name
	}
	if !table.IsValidName(name) {
		return ""
	}
	return name
}

// ReadDraft reads a draft table from delimited text, header included.
func ReadDraft(r io.Reader, f tabio.Format) ([]DraftColumn, error) {
	tr, err := tabio.NewReader(draftSchema, r, f)
	if err != nil {
		return nil, err
	}
	rows, err := tr.ReadAll()
	if err != nil {
		return nil, err
	}
	cols := make([]DraftColumn, len(rows))
	for i, row := range rows {
		cols[i] = DraftColumn{
			Heading:    row[0].(string),
			Name:       row[1].(string),
			Type:       row[2].(string),
			Default:    row[3].(string),
			Validation: row[4].(string),
		}
	}
	return cols, nil
}

// WriteDraft writes a draft table as delimited text, header included, for
// hand review and editing.
func WriteDraft(w io.Writer, f tabio.Format, cols []DraftColumn) error {
	tw := tabio.NewWriter(draftSchema, w, f)
	if err := tw.WriteHeader(); err != nil {
		return err
	}
	for _, c := range cols {
		row := table.Row{c.Heading, c.Name, c.Type, c.Default, c.Validation}
		if err := tw.Write(row); err != nil {
			return err
		}
	}
	return tw.Flush()
}
