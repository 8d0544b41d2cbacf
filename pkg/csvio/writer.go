package csvio

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/arthur-debert/csvsieve/pkg/errors"
)

// Writer serializes the consolidated output table: one header row followed by
// flat rows in arrival order.
type Writer struct {
	cw     *csv.Writer
	name   string
	closer io.Closer
}

// Create opens (or truncates) the output file at path
func Create(path string) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrOutputWrite,
			"unable to create output file %q", path)
	}
	w := NewWriter(f, path)
	w.closer = f
	return w, nil
}

// NewWriter writes CSV to an arbitrary stream. name identifies the
// destination in diagnostics.
func NewWriter(dst io.Writer, name string) *Writer {
	return &Writer{cw: csv.NewWriter(dst), name: name}
}

// WriteHeader writes the schema as the header row
func (w *Writer) WriteHeader(fields []string) error {
	if err := w.cw.Write(fields); err != nil {
		return errors.Wrapf(err, errors.ErrOutputWrite,
			"unable to write header to %q", w.name)
	}
	return nil
}

// WriteRow writes one flat output row
func (w *Writer) WriteRow(row []string) error {
	if err := w.cw.Write(row); err != nil {
		return errors.Wrapf(err, errors.ErrOutputWrite,
			"unable to write row to %q", w.name)
	}
	return nil
}

// Flush drains buffered rows and reports any deferred write error
func (w *Writer) Flush() error {
	w.cw.Flush()
	if err := w.cw.Error(); err != nil {
		return errors.Wrapf(err, errors.ErrOutputWrite,
			"unable to flush output %q", w.name)
	}
	return nil
}

// Close flushes and releases the underlying file, if any
func (w *Writer) Close() error {
	if err := w.Flush(); err != nil {
		if w.closer != nil {
			_ = w.closer.Close()
		}
		return err
	}
	if w.closer == nil {
		return nil
	}
	if err := w.closer.Close(); err != nil {
		return errors.Wrapf(err, errors.ErrOutputWrite,
			"unable to close output %q", w.name)
	}
	return nil
}
