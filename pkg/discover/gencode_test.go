package discover

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/mesh-intelligence/tabtext/pkg/table"
)

func TestGenerate(t *testing.T) {
	t.Run("initializer source", func(t *testing.T) {
		var buf bytes.Buffer
		err := Generate(&buf, "schemas", "Employees", []DraftColumn{
			{Heading: "Employee ID", Name: "employee_id", Type: "integer"},
			{Heading: "Grade", Name: "grade", Type: "string", Default: "pass", Validation: "oneof:pass|fail"},
			{Heading: "Score", Name: "score", Type: "float", Validation: "range:0..10"},
			{Heading: "Tags", Name: "tags", Type: "literal", Default: "[1, 'x']"},
		})
		if err != nil {
			t.Fatal(err)
		}
		src := buf.String()

		for _, want := range []string{
			"// Code generated by tabtext gencode. DO NOT EDIT.",
			"package schemas",
			`import "github.com/mesh-intelligence/tabtext/pkg/table"`,
			"var Employees = table.MustNew(",
			`table.ColumnDef{Name: "employee_id", Heading: "Employee ID", Type: table.Integer}`,
			`Default: "pass"`,
			`Check: table.OneOf("pass", "fail")`,
			"Check: table.FloatRange(0, 10)",
			`Default: table.MustLiteral("[1, 'x']")`,
		} {
			if !strings.Contains(src, want) {
				t.Errorf("generated source lacks %q:\n%s", want, src)
			}
		}
	})

	t.Run("columns in position order", func(t *testing.T) {
		var buf bytes.Buffer
		err := Generate(&buf, "main", "Columns", []DraftColumn{
			{Heading: "b", Name: "b", Type: "string"},
			{Heading: "a", Name: "a", Type: "string"},
		})
		if err != nil {
			t.Fatal(err)
		}
		src := buf.String()
		if strings.Index(src, `Name: "b"`) > strings.Index(src, `Name: "a"`) {
			t.Fatalf("columns reordered:\n%s", src)
		}
	})

	t.Run("defaults for package and variable names", func(t *testing.T) {
		var buf bytes.Buffer
		err := Generate(&buf, "", "", []DraftColumn{
			{Heading: "a", Name: "a", Type: "string"},
		})
		if err != nil {
			t.Fatal(err)
		}
		src := buf.String()
		if !strings.Contains(src, "package main") || !strings.Contains(src, "var Columns = table.MustNew(") {
			t.Fatalf("defaults not applied:\n%s", src)
		}
	})

	t.Run("integer range emits IntRange", func(t *testing.T) {
		var buf bytes.Buffer
		err := Generate(&buf, "main", "Columns", []DraftColumn{
			{Heading: "n", Name: "n", Type: "integer", Validation: "range:1..5"},
		})
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(buf.String(), "table.IntRange(1, 5)") {
			t.Fatalf("expected IntRange:\n%s", buf.String())
		}
	})

	t.Run("nothing written on a malformed draft", func(t *testing.T) {
		var buf bytes.Buffer
		err := Generate(&buf, "main", "Columns", []DraftColumn{
			{Heading: "a", Name: "a", Type: "string"},
			{Heading: "n", Name: "n", Type: "integer", Default: "zero"},
		})
		if !errors.Is(err, table.ErrSchemaDraft) {
			t.Fatalf("expected ErrSchemaDraft, got %v", err)
		}
		if buf.Len() != 0 {
			t.Fatalf("partial output written: %q", buf.String())
		}
	})

	t.Run("non-finite float default is rejected", func(t *testing.T) {
		for _, bad := range []string{"NaN", "Inf", "-Inf"} {
			var buf bytes.Buffer
			err := Generate(&buf, "main", "Columns", []DraftColumn{
				{Heading: "score", Name: "score", Type: "float", Default: bad},
			})
			if !errors.Is(err, table.ErrSchemaDraft) {
				t.Fatalf("%s: expected ErrSchemaDraft, got %v", bad, err)
			}
			if buf.Len() != 0 {
				t.Fatalf("%s: partial output written: %q", bad, buf.String())
			}
		}
	})

	t.Run("non-finite range bound is rejected", func(t *testing.T) {
		var buf bytes.Buffer
		err := Generate(&buf, "main", "Columns", []DraftColumn{
			{Heading: "score", Name: "score", Type: "float", Validation: "range:0..Inf"},
		})
		if !errors.Is(err, table.ErrSchemaDraft) {
			t.Fatalf("expected ErrSchemaDraft, got %v", err)
		}
		if buf.Len() != 0 {
			t.Fatalf("partial output written: %q", buf.String())
		}
	})

	t.Run("range bounds re-rendered as literals", func(t *testing.T) {
		var buf bytes.Buffer
		err := Generate(&buf, "main", "Columns", []DraftColumn{
			{Heading: "n", Name: "n", Type: "integer", Validation: "range:08..10"},
			{Heading: "f", Name: "f", Type: "float", Validation: "range:00.5..2.50"},
		})
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(buf.String(), "table.IntRange(8, 10)") {
			t.Fatalf("integer bounds not re-rendered:\n%s", buf.String())
		}
		if !strings.Contains(buf.String(), "table.FloatRange(0.5, 2.5)") {
			t.Fatalf("float bounds not re-rendered:\n%s", buf.String())
		}
	})

	t.Run("boolean default", func(t *testing.T) {
		var buf bytes.Buffer
		err := Generate(&buf, "main", "Columns", []DraftColumn{
			{Heading: "active", Name: "active", Type: "boolean", Default: "true"},
		})
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(buf.String(), "Default: true") {
			t.Fatalf("expected boolean default:\n%s", buf.String())
		}
	})
}
