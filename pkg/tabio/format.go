// Package tabio reads and writes typed rows as delimited text. It combines
// a table.Schema with a delimited-text backend: the schema decides how each
// cell coerces, the backend decides how lines split into raw fields. The
// default backend is encoding/csv, which handles comma, tab, and any other
// single-rune delimiter through the same interface.
package tabio

import (
	"encoding/csv"
	"io"
)

// Format describes one delimited-text dialect: the field delimiter and the
// line terminator. Quoting follows the CSV convention regardless of
// delimiter. A Format is threaded explicitly through constructors; there is
// no process-wide default beyond the zero-value meaning of DefaultFormat.
type Format struct {
	Comma   rune // Field delimiter; 0 means ','.
	UseCRLF bool // Terminate written lines with \r\n instead of \n.
}

// DefaultFormat is comma-delimited text with LF line endings.
func DefaultFormat() Format {
	return Format{Comma: ','}
}

// TabFormat is tab-delimited text with LF line endings.
func TabFormat() Format {
	return Format{Comma: '\t'}
}

// FieldReader yields one record of raw text fields per call and io.EOF when
// the source is exhausted. *csv.Reader satisfies it.
type FieldReader interface {
	Read() ([]string, error)
}

// FieldWriter consumes one record of raw text fields per call. *csv.Writer
// satisfies it.
type FieldWriter interface {
	Write(record []string) error
}

// NewFieldReader returns the delimited-text backend for f over r. Row width
// is not enforced here; the schema-aware Reader checks it per record.
func (f Format) NewFieldReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	if f.Comma != 0 {
		cr.Comma = f.Comma
	}
	cr.FieldsPerRecord = -1
	return cr
}

// NewFieldWriter returns the delimited-text backend for f over w.
func (f Format) NewFieldWriter(w io.Writer) *csv.Writer {
	cw := csv.NewWriter(w)
	if f.Comma != 0 {
		cw.Comma = f.Comma
	}
	cw.UseCRLF = f.UseCRLF
	return cw
}
