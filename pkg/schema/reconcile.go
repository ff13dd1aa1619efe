package schema

import (
	"errors"
	"fmt"

	"namesplit/pkg/names"
)

// Alignment describes how a data row was fitted to the discovered header width.
type Alignment int

const (
	AlignExact     Alignment = iota // Row width matched the header.
	AlignPadded                     // Short row, padded with empty cells.
	AlignTruncated                  // Long row, extra cells dropped.
)

// Layout is the header decision made once per run from the discovered header.
type Layout struct {
	// Header is the full output header: discovered, padded admin, computed.
	Header []string `json:"header"`
	// Width is the number of discovered input columns.
	Width int `json:"width"`
	// Missing lists the admin columns absent from the input, in header order.
	Missing []string `json:"missing"`
	// Padding maps every admin column to true when it is padded.
	Padding map[string]bool `json:"padding"`
	// Collisions lists repeated names in Header.
	Collisions []Collision `json:"collisions,omitempty"`
}

// Reconciler merges a discovered input header with the admin and computed
// column sets. It owns the Layout for the rest of the run.
type Reconciler struct {
	admin  ColumnSet
	names  ColumnSet
	layout *Layout
}

// NewReconciler validates the column sets. The computed set must hold exactly
// four names, one per name component.
func NewReconciler(admin, computed ColumnSet) (*Reconciler, error) {
	if len(computed) != 4 {
		return nil, fmt.Errorf("computed name columns: need 4 names, got %d", len(computed))
	}
	seen := make(map[string]bool, len(admin)+len(computed))
	for _, c := range append(admin.Clone(), computed...) {
		if c == "" {
			return nil, errors.New("column names must not be empty")
		}
		if seen[c] {
			return nil, fmt.Errorf("column %q listed twice", c)
		}
		seen[c] = true
	}
	return &Reconciler{admin: admin.Clone(), names: computed.Clone()}, nil
}

// ReconcileHeader computes and stores the output layout. Admin columns found
// in discovered stay where they are; absent ones are appended in the admin
// set's order, then the computed columns are appended unconditionally.
func (r *Reconciler) ReconcileHeader(discovered []string) *Layout {
	present := make(map[string]bool, len(discovered))
	for _, h := range discovered {
		present[h] = true
	}

	l := &Layout{
		Width:   len(discovered),
		Padding: make(map[string]bool, len(r.admin)),
	}
	for _, c := range r.admin {
		l.Padding[c] = !present[c]
		if !present[c] {
			l.Missing = append(l.Missing, c)
		}
	}

	l.Header = make([]string, 0, len(discovered)+len(l.Missing)+len(r.names))
	l.Header = append(l.Header, discovered...)
	l.Header = append(l.Header, l.Missing...)
	l.Header = append(l.Header, r.names...)
	l.Collisions = DetectCollisions(l.Header, r.names)

	r.layout = l
	return l
}

// Layout returns the stored header decision, or nil before ReconcileHeader.
func (r *Reconciler) Layout() *Layout {
	return r.layout
}

// ReconcileRow lays out one output row: the input cells (fitted to Width),
// one empty cell per missing admin column, then the four name components.
// The result always has len(l.Header) cells and never aliases row.
func (l *Layout) ReconcileRow(row []string, nc names.NameComponents) ([]string, Alignment) {
	out := make([]string, 0, len(l.Header))
	align := AlignExact

	switch {
	case len(row) > l.Width:
		out = append(out, row[:l.Width]...)
		align = AlignTruncated
	case len(row) < l.Width:
		out = append(out, row...)
		out = append(out, make([]string, l.Width-len(row))...)
		align = AlignPadded
	default:
		out = append(out, row...)
	}

	out = append(out, make([]string, len(l.Missing))...)
	return append(out, nc.Fields()...), align
}
