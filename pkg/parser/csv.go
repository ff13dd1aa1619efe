package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// CSVReader streams records from a delimited table, one row per call. The
// first row returned is the header with whitespace and BOM residue trimmed
// from each cell; later rows are returned exactly as decoded.
type CSVReader struct {
	r        *csv.Reader
	closer   io.Closer
	encoding Encoding
	rows     int
}

// NewCSVReader decodes r to UTF-8 and prepares a lenient CSV reader.
func NewCSVReader(r io.Reader, enc Encoding) (*CSVReader, error) {
	decoded, detected, err := NewDecodingReader(r, enc)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(decoded)
	// Allow variable number of fields per record; row alignment happens downstream.
	reader.FieldsPerRecord = -1
	// Support lazy quotes for less strict parsing of real-world CSV files.
	reader.LazyQuotes = true

	return &CSVReader{r: reader, encoding: detected}, nil
}

// OpenCSV opens path and returns a CSVReader that closes the file on Close.
func OpenCSV(path string, enc Encoding) (*CSVReader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	c, err := NewCSVReader(f, enc)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	c.closer = f
	return c, nil
}

// Encoding returns the encoding the input was decoded from.
func (c *CSVReader) Encoding() Encoding {
	return c.encoding
}

// ReadRow returns the next record, or io.EOF when the input is exhausted.
func (c *CSVReader) ReadRow() ([]string, error) {
	row, err := c.r.Read()
	if err != nil {
		if err == io.EOF {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("csv record %d: %w", c.rows+1, err)
	}
	if c.rows == 0 {
		for i, h := range row {
			row[i] = trimSpace(h)
		}
	}
	c.rows++
	return row, nil
}

// Close releases the underlying file, if the reader owns one.
func (c *CSVReader) Close() error {
	if c.closer == nil {
		return nil
	}
	return c.closer.Close()
}

// trimSpace trims leading/trailing whitespace and BOM characters.
func trimSpace(s string) string {
	return strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "\ufeff"))
}
