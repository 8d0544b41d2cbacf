// Package csvio is the I/O collaborator at the pipeline boundary: it decodes
// CSV files into input rows with provenance, and serializes the consolidated
// output table.
package csvio

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"

	"github.com/arthur-debert/csvsieve/pkg/errors"
	"github.com/arthur-debert/csvsieve/pkg/logging"
	"github.com/arthur-debert/csvsieve/pkg/types"
)

// Reader yields the rows of one CSV file as a lazy, single-pass sequence of
// InputRows, using the file's header row as field names.
type Reader struct {
	name   string
	cr     *csv.Reader
	header []string
	line   int
	closer io.Closer
}

// Open opens the CSV file at path and reads its header row
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInputRead,
			"unable to open input file %q", path)
	}

	r, err := NewReader(f, filepath.Base(path))
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	r.closer = f
	return r, nil
}

// NewReader decodes CSV from an arbitrary stream. name identifies the source
// in provenance and diagnostics.
func NewReader(src io.Reader, name string) (*Reader, error) {
	logger := logging.GetLogger("csvio.reader")

	cr := csv.NewReader(src)
	header, err := cr.Read()
	if err == io.EOF {
		return nil, errors.Newf(errors.ErrInputRead,
			"file %q has no header row", name)
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInputRead,
			"unable to read header of %q", name)
	}

	logger.Debug().
		Str("file", name).
		Strs("header", header).
		Msg("Opened CSV input")

	return &Reader{name: name, cr: cr, header: header}, nil
}

// Header returns the file's column names in order
func (r *Reader) Header() []string {
	return r.header
}

// Next returns the next data row. It returns io.EOF once the file is
// exhausted; any other error is a wrapped INPUT_READ with provenance.
func (r *Reader) Next() (types.InputRow, error) {
	rec, err := r.cr.Read()
	if err == io.EOF {
		return types.InputRow{}, io.EOF
	}
	r.line++
	if err != nil {
		return types.InputRow{}, errors.Wrapf(err, errors.ErrInputRead,
			"malformed record in %q at row %d", r.name, r.line).
			WithDetail("file", r.name).
			WithDetail("line", r.line)
	}

	values := make(map[string]string, len(r.header))
	for i, col := range r.header {
		values[col] = rec[i]
	}

	return types.InputRow{
		File:   r.name,
		Line:   r.line,
		Header: r.header,
		Values: values,
	}, nil
}

// Close releases the underlying file, if any
func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer.Close()
}
