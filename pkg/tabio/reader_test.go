package tabio

import (
	"errors"
	"io"
	"reflect"
	"strings"
	"testing"

	"github.com/mesh-intelligence/tabtext/pkg/table"
)

func scoreSchema(t *testing.T) *table.Schema {
	t.Helper()
	s, err := table.New(
		table.ColumnDef{Name: "id", Heading: "id", Type: table.Integer},
		table.ColumnDef{Name: "name", Heading: "name", Type: table.String},
		table.ColumnDef{Name: "score", Heading: "score", Type: table.Float},
	)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestReader(t *testing.T) {
	s := scoreSchema(t)

	t.Run("typed rows in source order", func(t *testing.T) {
		src := "id,name,score\n1,Alice,9.5\n2,Bob,7.25\n"
		r, err := NewReader(s, strings.NewReader(src), DefaultFormat())
		if err != nil {
			t.Fatal(err)
		}
		rows, err := r.ReadAll()
		if err != nil {
			t.Fatal(err)
		}
		want := []table.Row{
			{int64(1), "Alice", float64(9.5)},
			{int64(2), "Bob", float64(7.25)},
		}
		if !reflect.DeepEqual(rows, want) {
			t.Fatalf("expected %v, got %v", want, rows)
		}
	})

	t.Run("header case mismatch fails", func(t *testing.T) {
		src := "ID,Name,Score\n1,Alice,9.5\n"
		_, err := NewReader(s, strings.NewReader(src), DefaultFormat())
		if !errors.Is(err, table.ErrHeaderMismatch) {
			t.Fatalf("expected ErrHeaderMismatch, got %v", err)
		}
	})

	t.Run("header order mismatch fails", func(t *testing.T) {
		src := "name,id,score\nAlice,1,9.5\n"
		_, err := NewReader(s, strings.NewReader(src), DefaultFormat())
		if !errors.Is(err, table.ErrHeaderMismatch) {
			t.Fatalf("expected ErrHeaderMismatch, got %v", err)
		}
	})

	t.Run("header width mismatch fails", func(t *testing.T) {
		src := "id,name\n1,Alice\n"
		_, err := NewReader(s, strings.NewReader(src), DefaultFormat())
		if !errors.Is(err, table.ErrHeaderMismatch) {
			t.Fatalf("expected ErrHeaderMismatch, got %v", err)
		}
	})

	t.Run("zero-byte source yields zero rows", func(t *testing.T) {
		r, err := NewReader(s, strings.NewReader(""), DefaultFormat())
		if err != nil {
			t.Fatal(err)
		}
		rows, err := r.ReadAll()
		if err != nil {
			t.Fatal(err)
		}
		if len(rows) != 0 {
			t.Fatalf("expected zero rows, got %d", len(rows))
		}
	})

	t.Run("blank first line is a header mismatch", func(t *testing.T) {
		_, err := NewReader(s, strings.NewReader("\n"), DefaultFormat())
		if !errors.Is(err, table.ErrHeaderMismatch) {
			t.Fatalf("expected ErrHeaderMismatch, got %v", err)
		}
	})

	t.Run("blank line inside the data fails", func(t *testing.T) {
		src := "id,name,score\n1,Alice,9.5\n\n2,Bob,7.25\n"
		r, err := NewReader(s, strings.NewReader(src), DefaultFormat())
		if err != nil {
			t.Fatal(err)
		}
		if _, err := r.Read(); err != nil {
			t.Fatal(err)
		}
		_, err = r.Read()
		if !errors.Is(err, table.ErrRowShape) {
			t.Fatalf("expected ErrRowShape, got %v", err)
		}
		if !strings.Contains(err.Error(), "line 3") {
			t.Fatalf("error does not name the blank line: %v", err)
		}
	})

	t.Run("blank line after the header fails", func(t *testing.T) {
		src := "id,name,score\n\n1,Alice,9.5\n"
		r, err := NewReader(s, strings.NewReader(src), DefaultFormat())
		if err != nil {
			t.Fatal(err)
		}
		_, err = r.Read()
		if !errors.Is(err, table.ErrRowShape) {
			t.Fatalf("expected ErrRowShape, got %v", err)
		}
		if !strings.Contains(err.Error(), "line 2") {
			t.Fatalf("error does not name the blank line: %v", err)
		}
	})

	t.Run("trailing blank line fails", func(t *testing.T) {
		src := "id,name,score\n1,Alice,9.5\n\n"
		r, err := NewReader(s, strings.NewReader(src), DefaultFormat())
		if err != nil {
			t.Fatal(err)
		}
		if _, err := r.Read(); err != nil {
			t.Fatal(err)
		}
		_, err = r.Read()
		if !errors.Is(err, table.ErrRowShape) {
			t.Fatalf("expected ErrRowShape, got %v", err)
		}
	})

	t.Run("single trailing terminator is not a blank line", func(t *testing.T) {
		src := "id,name,score\n1,Alice,9.5\n"
		r, err := NewReader(s, strings.NewReader(src), DefaultFormat())
		if err != nil {
			t.Fatal(err)
		}
		rows, err := r.ReadAll()
		if err != nil {
			t.Fatal(err)
		}
		if len(rows) != 1 {
			t.Fatalf("expected 1 row, got %d", len(rows))
		}
	})

	t.Run("unterminated last line is not a blank line", func(t *testing.T) {
		src := "id,name,score\n1,Alice,9.5"
		r, err := NewReader(s, strings.NewReader(src), DefaultFormat())
		if err != nil {
			t.Fatal(err)
		}
		rows, err := r.ReadAll()
		if err != nil {
			t.Fatal(err)
		}
		if len(rows) != 1 {
			t.Fatalf("expected 1 row, got %d", len(rows))
		}
	})

	t.Run("quoted multi-line field is not a blank line", func(t *testing.T) {
		src := "id,name,score\n1,\"Ali\nce\",9.5\n2,Bob,7.25\n"
		r, err := NewReader(s, strings.NewReader(src), DefaultFormat())
		if err != nil {
			t.Fatal(err)
		}
		rows, err := r.ReadAll()
		if err != nil {
			t.Fatal(err)
		}
		if len(rows) != 2 || rows[0][1] != "Ali\nce" {
			t.Fatalf("unexpected rows %v", rows)
		}
	})

	t.Run("blank line before the header fails", func(t *testing.T) {
		src := "\nid,name,score\n1,Alice,9.5\n"
		_, err := NewReader(s, strings.NewReader(src), DefaultFormat())
		if !errors.Is(err, table.ErrHeaderMismatch) {
			t.Fatalf("expected ErrHeaderMismatch, got %v", err)
		}
	})

	t.Run("malformed cell names the line and column", func(t *testing.T) {
		src := "id,name,score\n1,Alice,9.5\n3,Carol,notanumber\n"
		r, err := NewReader(s, strings.NewReader(src), DefaultFormat())
		if err != nil {
			t.Fatal(err)
		}
		if _, err := r.Read(); err != nil {
			t.Fatal(err)
		}
		_, err = r.Read()
		if !errors.Is(err, table.ErrCoercion) {
			t.Fatalf("expected ErrCoercion, got %v", err)
		}
		if !strings.Contains(err.Error(), "line 3") || !strings.Contains(err.Error(), `"score"`) {
			t.Fatalf("error lacks line/column context: %v", err)
		}
	})

	t.Run("errors are sticky", func(t *testing.T) {
		src := "id,name,score\nx,Alice,9.5\n2,Bob,7.25\n"
		r, err := NewReader(s, strings.NewReader(src), DefaultFormat())
		if err != nil {
			t.Fatal(err)
		}
		_, first := r.Read()
		if !errors.Is(first, table.ErrCoercion) {
			t.Fatalf("expected ErrCoercion, got %v", first)
		}
		_, second := r.Read()
		if !errors.Is(second, table.ErrCoercion) {
			t.Fatalf("expected the same error again, got %v", second)
		}
	})

	t.Run("row width mismatch names the line", func(t *testing.T) {
		src := "id,name,score\n1,Alice\n"
		r, err := NewReader(s, strings.NewReader(src), DefaultFormat())
		if err != nil {
			t.Fatal(err)
		}
		_, err = r.Read()
		if !errors.Is(err, table.ErrRowShape) {
			t.Fatalf("expected ErrRowShape, got %v", err)
		}
		if !strings.Contains(err.Error(), "line 2") {
			t.Fatalf("error lacks line context: %v", err)
		}
	})

	t.Run("read all returns nothing on error", func(t *testing.T) {
		src := "id,name,score\n1,Alice,9.5\nx,Bob,7.25\n"
		r, err := NewReader(s, strings.NewReader(src), DefaultFormat())
		if err != nil {
			t.Fatal(err)
		}
		rows, err := r.ReadAll()
		if err == nil {
			t.Fatal("expected an error")
		}
		if rows != nil {
			t.Fatalf("expected no partial result, got %v", rows)
		}
	})

	t.Run("validation failure surfaces ErrValidation", func(t *testing.T) {
		vs, err := table.New(
			table.ColumnDef{Name: "grade", Heading: "grade", Type: table.String, Check: table.OneOf("pass", "fail")},
		)
		if err != nil {
			t.Fatal(err)
		}
		r, err := NewReader(vs, strings.NewReader("grade\nmaybe\n"), DefaultFormat())
		if err != nil {
			t.Fatal(err)
		}
		_, err = r.Read()
		if !errors.Is(err, table.ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("tab delimiter", func(t *testing.T) {
		src := "id\tname\tscore\n1\tAlice\t9.5\n"
		r, err := NewReader(s, strings.NewReader(src), TabFormat())
		if err != nil {
			t.Fatal(err)
		}
		rows, err := r.ReadAll()
		if err != nil {
			t.Fatal(err)
		}
		if len(rows) != 1 || rows[0][1] != "Alice" {
			t.Fatalf("unexpected rows %v", rows)
		}
	})
}

func TestReaderShapes(t *testing.T) {
	s := scoreSchema(t)
	src := "id,name,score\n1,Alice,9.5\n2,Bob,7.25\n3,Carol,8\n"

	r, err := NewReader(s, strings.NewReader(src), DefaultFormat())
	if err != nil {
		t.Fatal(err)
	}

	row, err := r.Read()
	if err != nil {
		t.Fatal(err)
	}
	if row[0] != int64(1) {
		t.Fatalf("positional shape: expected id 1, got %v", row[0])
	}

	m, err := r.ReadMap()
	if err != nil {
		t.Fatal(err)
	}
	if m["name"] != "Bob" {
		t.Fatalf("mapping shape: expected Bob, got %v", m["name"])
	}

	rec, err := r.ReadRecord()
	if err != nil {
		t.Fatal(err)
	}
	v, err := rec.Get("score")
	if err != nil {
		t.Fatal(err)
	}
	if v != float64(8) {
		t.Fatalf("record shape: expected 8, got %v", v)
	}

	if _, err := r.Read(); err != io.EOF {
		t.Fatalf("expected io.EOF, got %v", err)
	}
}
