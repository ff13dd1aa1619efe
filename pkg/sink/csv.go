// Package sink writes reconciled output tables one row at a time.
package sink

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// CSVWriter writes comma-separated rows, quoting cells only where needed.
type CSVWriter struct {
	w      *csv.Writer
	closer io.Closer
	rows   int
}

// NewCSVWriter writes to w. The caller keeps ownership of w.
func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{w: csv.NewWriter(w)}
}

// CreateCSV creates (or truncates) path and writes to it.
func CreateCSV(path string) (*CSVWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	c := NewCSVWriter(f)
	c.closer = f
	return c, nil
}

// WriteRow buffers one row.
func (c *CSVWriter) WriteRow(row []string) error {
	if err := c.w.Write(row); err != nil {
		return fmt.Errorf("write row %d: %w", c.rows+1, err)
	}
	c.rows++
	return nil
}

// Flush pushes buffered rows to the underlying writer.
func (c *CSVWriter) Flush() error {
	c.w.Flush()
	return c.w.Error()
}

// Close flushes and closes the file if the writer owns one.
func (c *CSVWriter) Close() error {
	err := c.Flush()
	if c.closer != nil {
		if cerr := c.closer.Close(); err == nil {
			err = cerr
		}
		c.closer = nil
	}
	return err
}
