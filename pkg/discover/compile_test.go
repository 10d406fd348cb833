package discover

import (
	"errors"
	"strings"
	"testing"

	"github.com/mesh-intelligence/tabtext/pkg/table"
)

func TestCompile(t *testing.T) {
	t.Run("full draft", func(t *testing.T) {
		s, err := Compile([]DraftColumn{
			{Heading: "Employee ID", Name: "employee_id", Type: "integer"},
			{Heading: "Grade", Name: "grade", Type: "string", Default: "pass", Validation: "oneof:pass|fail"},
			{Heading: "Score", Name: "score", Type: "float", Validation: "range:0..10"},
		})
		if err != nil {
			t.Fatal(err)
		}
		if s.ColumnCount() != 3 {
			t.Fatalf("expected 3 columns, got %d", s.ColumnCount())
		}

		c, err := s.ByName("grade")
		if err != nil {
			t.Fatal(err)
		}
		if c.Heading != "Grade" {
			t.Fatalf("heading lost: %q", c.Heading)
		}
		if c.Default != "pass" {
			t.Fatalf("default not decoded: %v", c.Default)
		}
		if c.Check == nil {
			t.Fatal("validation not compiled")
		}
		if err := c.Check("pass"); err != nil {
			t.Fatal(err)
		}
		if err := c.Check("maybe"); err == nil {
			t.Fatal("expected rejection outside the set")
		}

		sc, err := s.ByName("score")
		if err != nil {
			t.Fatal(err)
		}
		if err := sc.Check(float64(10)); err != nil {
			t.Fatal(err)
		}
		if err := sc.Check(float64(10.5)); err == nil {
			t.Fatal("expected out-of-range rejection")
		}
	})

	t.Run("default decoded under the column type", func(t *testing.T) {
		s, err := Compile([]DraftColumn{
			{Heading: "n", Name: "n", Type: "integer", Default: "7"},
		})
		if err != nil {
			t.Fatal(err)
		}
		c, _ := s.ByName("n")
		if c.Default != int64(7) {
			t.Fatalf("expected int64 7, got %v (%T)", c.Default, c.Default)
		}
	})

	t.Run("oneof alternatives typed by the column", func(t *testing.T) {
		s, err := Compile([]DraftColumn{
			{Heading: "n", Name: "n", Type: "integer", Validation: "oneof:1|2|3"},
		})
		if err != nil {
			t.Fatal(err)
		}
		c, _ := s.ByName("n")
		if err := c.Check(int64(2)); err != nil {
			t.Fatal(err)
		}
		if err := c.Check(int64(4)); err == nil {
			t.Fatal("expected rejection outside the set")
		}
	})

	t.Run("missing name", func(t *testing.T) {
		_, err := Compile([]DraftColumn{{Heading: "x", Type: "string"}})
		if !errors.Is(err, table.ErrSchemaDraft) {
			t.Fatalf("expected ErrSchemaDraft, got %v", err)
		}
	})

	t.Run("undecodable default names the row and column", func(t *testing.T) {
		_, err := Compile([]DraftColumn{
			{Heading: "a", Name: "a", Type: "string"},
			{Heading: "n", Name: "n", Type: "integer", Default: "zero"},
		})
		if !errors.Is(err, table.ErrSchemaDraft) {
			t.Fatalf("expected ErrSchemaDraft, got %v", err)
		}
		if !strings.Contains(err.Error(), "row 1") || !strings.Contains(err.Error(), `"n"`) {
			t.Fatalf("error lacks row/column context: %v", err)
		}
	})

	t.Run("range on a non-numeric column", func(t *testing.T) {
		_, err := Compile([]DraftColumn{
			{Heading: "s", Name: "s", Type: "string", Validation: "range:0..9"},
		})
		if !errors.Is(err, table.ErrSchemaDraft) {
			t.Fatalf("expected ErrSchemaDraft, got %v", err)
		}
	})

	t.Run("unknown validation kind", func(t *testing.T) {
		_, err := Compile([]DraftColumn{
			{Heading: "s", Name: "s", Type: "string", Validation: "regex:.*"},
		})
		if !errors.Is(err, table.ErrSchemaDraft) {
			t.Fatalf("expected ErrSchemaDraft, got %v", err)
		}
	})

	t.Run("duplicate names across rows", func(t *testing.T) {
		_, err := Compile([]DraftColumn{
			{Heading: "a", Name: "id", Type: "string"},
			{Heading: "b", Name: "id", Type: "string"},
		})
		if !errors.Is(err, table.ErrSchemaIntegrity) {
			t.Fatalf("expected ErrSchemaIntegrity, got %v", err)
		}
	})
}
