package engine

import (
	"errors"
	"fmt"
)

// Fatal run conditions. None of them is transient, so nothing is retried.
var (
	// ErrSourceUnavailable: the input or output could not be opened.
	ErrSourceUnavailable = errors.New("source unavailable")
	// ErrMissingHeader: the input has no readable first row.
	ErrMissingHeader = errors.New("missing header")
	// ErrColumnOutOfBounds: a data row has fewer fields than the name column index.
	ErrColumnOutOfBounds = errors.New("column out of bounds")
	// ErrNameColumnUnresolved: no header matches the configured name header.
	ErrNameColumnUnresolved = errors.New("name column unresolved")
)

// RowError reports a data row too short to hold the name column.
// Row is the 1-based data-row ordinal (the header is not counted) and
// Column is the 1-based name column index.
type RowError struct {
	Row    int
	Column int
	Fields int
}

func (e *RowError) Error() string {
	return fmt.Sprintf("%v: row %d has %d fields, name column is %d", ErrColumnOutOfBounds, e.Row, e.Fields, e.Column)
}

func (e *RowError) Unwrap() error {
	return ErrColumnOutOfBounds
}
