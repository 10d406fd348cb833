package tabio

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/mesh-intelligence/tabtext/pkg/table"
)

// Reader produces typed rows from delimited text, one per data line. It is
// a lazy, forward-only, one-shot sequence: rows come out in source order
// and the source can only be consumed once. The first error is sticky; no
// row is returned for a failing line or any line after it.
type Reader struct {
	schema   *table.Schema
	fr       *csv.Reader
	src      *lineCounter
	nextLine int
	err      error
}

// lineCounter counts lines flowing from the underlying source so blank
// lines elided by the csv backend can be detected. It sits below the
// buffered reader, so its count is only meaningful once the source is
// exhausted.
type lineCounter struct {
	r        io.Reader
	newlines int
	lastByte byte
	sawData  bool
}

func (lc *lineCounter) Read(p []byte) (int, error) {
	n, err := lc.r.Read(p)
	for _, b := range p[:n] {
		if b == '\n' {
			lc.newlines++
		}
	}
	if n > 0 {
		lc.sawData = true
		lc.lastByte = p[n-1]
	}
	return n, err
}

// totalLines returns the number of lines in the consumed source, counting a
// trailing unterminated line.
func (lc *lineCounter) totalLines() int {
	lines := lc.newlines
	if lc.sawData && lc.lastByte != '\n' {
		lines++
	}
	return lines
}

// recordSpan returns the number of source lines a record occupies: one plus
// any line breaks inside quoted fields.
func recordSpan(fields []string) int {
	span := 1
	for _, f := range fields {
		span += strings.Count(f, "\n")
	}
	return span
}

// NewReader opens a typed-row reader over r. It consumes the first line as
// the header and verifies the heading sequence against the schema, exact
// text in exact order; any difference fails with ErrHeaderMismatch.
//
// A zero-byte source is not an error: the constructor succeeds and Read
// reports io.EOF immediately. A source with content but no parseable header
// line, such as a lone line terminator, fails the header check unless the
// schema has no columns.
func NewReader(s *table.Schema, r io.Reader, f Format) (*Reader, error) {
	lc := &lineCounter{r: r}
	br := bufio.NewReader(lc)
	if _, err := br.Peek(1); err == io.EOF {
		return &Reader{schema: s, err: io.EOF}, nil
	} else if err != nil {
		return nil, err
	}
	fr := f.NewFieldReader(br)
	head, err := fr.Read()
	if err == io.EOF {
		// Content was present but yielded no header record.
		if s.ColumnCount() == 0 {
			return &Reader{schema: s, err: io.EOF}, nil
		}
		return nil, fmt.Errorf("source has no header line: %w", table.ErrHeaderMismatch)
	}
	if err != nil {
		return nil, err
	}
	if line, _ := fr.FieldPos(0); line != 1 {
		// Blank lines precede the header; the first line was an attempted
		// header and did not match.
		return nil, fmt.Errorf("line 1 is blank, expected the header line: %w", table.ErrHeaderMismatch)
	}
	want := s.Headings()
	if len(head) != len(want) {
		return nil, fmt.Errorf("header has %d fields, schema expects %d: %w", len(head), len(want), table.ErrHeaderMismatch)
	}
	for i := range want {
		if head[i] != want[i] {
			return nil, fmt.Errorf("header field %d is %q, schema expects %q: %w", i, head[i], want[i], table.ErrHeaderMismatch)
		}
	}
	return &Reader{schema: s, fr: fr, src: lc, nextLine: 1 + recordSpan(head)}, nil
}

// Read returns the next row in the canonical positional shape, or io.EOF
// when the source is exhausted. Blank lines and width mismatches fail with
// ErrRowShape, malformed cells with ErrCoercion, disallowed values with
// ErrValidation; all carry the line number and column name.
func (r *Reader) Read() (table.Row, error) {
	if r.err != nil {
		return nil, r.err
	}
	rec, err := r.fr.Read()
	if err == io.EOF {
		// The csv backend elides blank lines, so a gap between the last
		// record and the end of the source means a blank data line.
		if r.nextLine <= r.src.totalLines() {
			r.err = fmt.Errorf("line %d is blank: %w", r.nextLine, table.ErrRowShape)
			return nil, r.err
		}
		r.err = io.EOF
		return nil, io.EOF
	}
	if err != nil {
		r.err = err
		return nil, err
	}
	line, _ := r.fr.FieldPos(0)
	if line != r.nextLine {
		r.err = fmt.Errorf("line %d is blank: %w", r.nextLine, table.ErrRowShape)
		return nil, r.err
	}
	r.nextLine = line + recordSpan(rec)
	if len(rec) != r.schema.ColumnCount() {
		r.err = fmt.Errorf("line %d has %d fields, schema expects %d: %w", line, len(rec), r.schema.ColumnCount(), table.ErrRowShape)
		return nil, r.err
	}
	row := make(table.Row, len(rec))
	for i, text := range rec {
		col, err := r.schema.ByPosition(i)
		if err != nil {
			r.err = err
			return nil, r.err
		}
		v, err := table.DecodeColumn(col, text)
		if err != nil {
			r.err = fmt.Errorf("line %d, column %q: %w", line, col.Name, err)
			return nil, r.err
		}
		row[i] = v
	}
	return row, nil
}

// ReadMap returns the next row in the name-keyed mapping shape.
func (r *Reader) ReadMap() (map[string]any, error) {
	row, err := r.Read()
	if err != nil {
		return nil, err
	}
	return r.schema.MapRow(row)
}

// ReadRecord returns the next row in the fixed-field record shape.
func (r *Reader) ReadRecord() (table.Record, error) {
	row, err := r.Read()
	if err != nil {
		return table.Record{}, err
	}
	return r.schema.Record(row)
}

// ReadAll drains the source and returns every remaining row. On error,
// nothing is returned: no partial result.
func (r *Reader) ReadAll() ([]table.Row, error) {
	var rows []table.Row
	for {
		row, err := r.Read()
		if err == io.EOF {
			return rows, nil
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
}

// Schema returns the schema the reader decodes against.
func (r *Reader) Schema() *table.Schema {
	return r.schema
}
