package discover

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/mesh-intelligence/tabtext/pkg/table"
)

// tablePkg is the import path emitted into generated initializers.
const tablePkg = "github.com/mesh-intelligence/tabtext/pkg/table"

// Generate emits a Go source file containing a compiled schema initializer
// for a finalized draft: one ColumnDef literal per column in position
// order, wrapped in table.MustNew so a bad schema fails at load time. The
// output is plain source text for direct inclusion in an application; no
// runtime loading step is implied.
//
// The whole draft is validated before a single byte is written: a malformed
// row (blank name, unknown type, undecodable default, bad validation spec)
// fails with ErrSchemaDraft naming the row and attribute, and nothing
// partially correct is emitted.
func Generate(w io.Writer, pkgName, varName string, cols []DraftColumn) error {
	if pkgName == "" {
		pkgName = "main"
	}
	if varName == "" {
		varName = "Columns"
	}
	// Compile validates names, types, defaults, validation specs, and
	// cross-column integrity in one pass.
	if _, err := Compile(cols); err != nil {
		return err
	}

	var b bytes.Buffer
	fmt.Fprintf(&b, "// Code generated by tabtext gencode. DO NOT EDIT.\n\n")
	fmt.Fprintf(&b, "package %s\n\n", pkgName)
	fmt.Fprintf(&b, "import \"%s\"\n\n", tablePkg)
	fmt.Fprintf(&b, "var %s = table.MustNew(\n", varName)
	for i, c := range cols {
		expr, err := columnExpr(i, c)
		if err != nil {
			return err
		}
		fmt.Fprintf(&b, "\t%s,\n", expr)
	}
	b.WriteString(")\n")

	_, err := w.Write(b.Bytes())
	return err
}

// columnExpr renders one ColumnDef composite literal.
func columnExpr(i int, c DraftColumn) (string, error) {
	fields := []string{
		fmt.Sprintf("Name: %q", c.Name),
		fmt.Sprintf("Heading: %q", c.Heading),
		fmt.Sprintf("Type: %s", typeExpr(c.Type)),
	}
	if c.Default != "" {
		expr, err := valueExpr(c.Type, c.Default)
		if err != nil {
			return "", fmt.Errorf("row %d (column %q): default %q: %v: %w", i, c.Name, c.Default, err, table.ErrSchemaDraft)
		}
		fields = append(fields, "Default: "+expr)
	}
	if c.Validation != "" {
		expr, err := checkExpr(c.Type, c.Validation)
		if err != nil {
			return "", fmt.Errorf("row %d (column %q): %v: %w", i, c.Name, err, table.ErrSchemaDraft)
		}
		fields = append(fields, "Check: "+expr)
	}
	return "table.ColumnDef{" + strings.Join(fields, ", ") + "}", nil
}

// typeExpr maps a type tag to its constant in the table package.
func typeExpr(tag string) string {
	switch tag {
	case table.String:
		return "table.String"
	case table.Integer:
		return "table.Integer"
	case table.Float:
		return "table.Float"
	case table.Boolean:
		return "table.Boolean"
	case table.Literal:
		return "table.Literal"
	default:
		// Compile has already rejected unknown tags.
		return strconv.Quote(tag)
	}
}

// valueExpr renders the Go expression for a value given in the column's
// text representation.
func valueExpr(tag, text string) (string, error) {
	switch tag {
	case table.String:
		return strconv.Quote(text), nil
	case table.Integer:
		n, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("int64(%d)", n), nil
	case table.Float:
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return "", err
		}
		lit, err := floatLit(f)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("float64(%s)", lit), nil
	case table.Boolean:
		switch text {
		case "true", "false":
			return text, nil
		}
		return "", fmt.Errorf("%q is not a boolean", text)
	case table.Literal:
		if _, err := table.DecodeLiteral(text); err != nil {
			return "", err
		}
		return fmt.Sprintf("table.MustLiteral(%s)", strconv.Quote(text)), nil
	default:
		return "", fmt.Errorf("unknown type %q", tag)
	}
}

// checkExpr renders the Go expression constructing a validation spec's
// check function.
func checkExpr(tag, spec string) (string, error) {
	// Parse once to reject malformed specs with the same rules Compile uses.
	if _, err := compileCheck(tag, spec); err != nil {
		return "", err
	}
	kind, arg, _ := strings.Cut(spec, ":")
	switch kind {
	case "oneof":
		parts := strings.Split(arg, "|")
		exprs := make([]string, len(parts))
		for i, p := range parts {
			e, err := valueExpr(tag, p)
			if err != nil {
				return "", err
			}
			exprs[i] = e
		}
		return "table.OneOf(" + strings.Join(exprs, ", ") + ")", nil
	case "range":
		// Bounds are re-rendered from their parsed values; splicing the
		// draft text in raw would let forms like "08" through, which
		// ParseInt accepts but the language does not.
		lo, hi, _ := strings.Cut(arg, "..")
		if tag == table.Integer {
			l, err := strconv.ParseInt(lo, 10, 64)
			if err != nil {
				return "", err
			}
			h, err := strconv.ParseInt(hi, 10, 64)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("table.IntRange(%d, %d)", l, h), nil
		}
		l, err := strconv.ParseFloat(lo, 64)
		if err != nil {
			return "", err
		}
		h, err := strconv.ParseFloat(hi, 64)
		if err != nil {
			return "", err
		}
		ll, err := floatLit(l)
		if err != nil {
			return "", err
		}
		hl, err := floatLit(h)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("table.FloatRange(%s, %s)", ll, hl), nil
	default:
		return "", fmt.Errorf("unknown validation kind %q", kind)
	}
}

// floatLit renders a float as source text. NaN and the infinities parse as
// cell text but have no literal form, so they are rejected rather than
// emitted as undefined identifiers.
func floatLit(f float64) (string, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", fmt.Errorf("non-finite float %v has no literal form", f)
	}
	return strconv.FormatFloat(f, 'g', -1, 64), nil
}
