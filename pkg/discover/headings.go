// Package discover infers draft schemas from sample delimited text and
// turns finalized drafts into schemas, either directly at runtime or as
// generated Go initializer source. Drafts are themselves tables in the same
// delimited-text shape as ordinary data, so they travel through the same
// reader and writer and can be reviewed and edited by hand in between.
package discover

import (
	"io"

	"github.com/mesh-intelligence/tabtext/pkg/tabio"
)

// Headings returns the heading strings from the first line of formatted
// text, verbatim and undecorated. An empty source yields an empty result
// and no error.
func Headings(r io.Reader, f tabio.Format) ([]string, error) {
	fr := f.NewFieldReader(r)
	head, err := fr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return head, nil
}
