package schema

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"namesplit/pkg/names"
)

func newDefaultReconciler(t *testing.T) *Reconciler {
	t.Helper()
	r, err := NewReconciler(DefaultAdminColumns, DefaultNameColumns)
	require.NoError(t, err)
	return r
}

func TestReconcileHeader_PadsMissingAdmin(t *testing.T) {
	r := newDefaultReconciler(t)
	l := r.ReconcileHeader([]string{"Name", "Account"})

	want := []string{
		"Name", "Account",
		"RecordSeries", "BoxNumber", "Scanning", "ScannedBy",
		"LastName", "FirstName", "MiddleName", "Suffix",
	}
	if diff := cmp.Diff(want, l.Header); diff != "" {
		t.Errorf("header mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []string{"RecordSeries", "BoxNumber", "Scanning", "ScannedBy"}, l.Missing)
	assert.False(t, l.Padding["Account"])
	assert.True(t, l.Padding["ScannedBy"])
	assert.Equal(t, 2, l.Width)
	assert.Same(t, l, r.Layout())
}

func TestReconcileHeader_AdminOrderInsensitive(t *testing.T) {
	r := newDefaultReconciler(t)
	l := r.ReconcileHeader([]string{"ScannedBy", "Name", "Scanning", "BoxNumber", "RecordSeries", "Account"})
	assert.Empty(t, l.Missing)
	assert.Equal(t, []string{"ScannedBy", "Name", "Scanning", "BoxNumber", "RecordSeries", "Account",
		"LastName", "FirstName", "MiddleName", "Suffix"}, l.Header)
}

func TestReconcileHeader_EveryAdminSubset(t *testing.T) {
	r := newDefaultReconciler(t)
	admin := DefaultAdminColumns
	for mask := 0; mask < 1<<len(admin); mask++ {
		discovered := []string{"FullName", "Notes"}
		for i, c := range admin {
			if mask&(1<<i) != 0 {
				discovered = append(discovered, c)
			}
		}
		l := r.ReconcileHeader(discovered)

		for _, c := range admin {
			assert.Equal(t, 1, count(l.Header, c), "mask %05b column %s", mask, c)
		}
		row, _ := l.ReconcileRow(make([]string, len(discovered)), names.NameComponents{Last: "Doe"})
		assert.Len(t, row, len(discovered)+len(l.Missing)+4)
		assert.Len(t, row, len(l.Header))
	}
}

func TestReconcileHeader_DuplicateComputedColumnKept(t *testing.T) {
	r := newDefaultReconciler(t)
	l := r.ReconcileHeader([]string{"Name", "LastName", "Account", "Account"})

	assert.Equal(t, 2, count(l.Header, "LastName"))
	require.Len(t, l.Collisions, 2)
	assert.Equal(t, Collision{Column: "LastName", Kind: CollisionComputed, Positions: []int{1, 8}}, l.Collisions[0])
	assert.Equal(t, Collision{Column: "Account", Kind: CollisionDuplicate, Positions: []int{2, 3}}, l.Collisions[1])
}

func TestReconcileRow(t *testing.T) {
	r := newDefaultReconciler(t)
	l := r.ReconcileHeader([]string{"Name", "Account"})
	nc := names.NameComponents{Last: "Doe", First: "Jane", Middle: "A"}

	tests := []struct {
		name  string
		row   []string
		want  []string
		align Alignment
	}{
		{"exact", []string{"Doe, Jane A.", "1001"}, []string{"Doe, Jane A.", "1001", "", "", "", "", "Doe", "Jane", "A", ""}, AlignExact},
		{"short row padded", []string{"Doe, Jane A."}, []string{"Doe, Jane A.", "", "", "", "", "", "Doe", "Jane", "A", ""}, AlignPadded},
		{"long row truncated", []string{"Doe, Jane A.", "1001", "extra"}, []string{"Doe, Jane A.", "1001", "", "", "", "", "Doe", "Jane", "A", ""}, AlignTruncated},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, align := l.ReconcileRow(tt.row, nc)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("row mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, tt.align, align)
		})
	}
}

func TestReconcileRow_DoesNotAliasInput(t *testing.T) {
	r := newDefaultReconciler(t)
	l := r.ReconcileHeader([]string{"Name"})
	in := make([]string, 1, 16)
	in[0] = "Smith"
	out, _ := l.ReconcileRow(in, names.NameComponents{Last: "Smith"})
	out[0] = "changed"
	assert.Equal(t, "Smith", in[0])
}

func TestNewReconciler_SubstituteSchemas(t *testing.T) {
	r, err := NewReconciler(ColumnSet{"Batch"}, ColumnSet{"Surname", "Given", "Other", "Gen"})
	require.NoError(t, err)
	l := r.ReconcileHeader([]string{"Who"})
	assert.Equal(t, []string{"Who", "Batch", "Surname", "Given", "Other", "Gen"}, l.Header)
}

func TestNewReconciler_Invalid(t *testing.T) {
	_, err := NewReconciler(DefaultAdminColumns, ColumnSet{"Last", "First"})
	assert.Error(t, err)

	_, err = NewReconciler(ColumnSet{"Account", "Account"}, DefaultNameColumns)
	assert.Error(t, err)

	_, err = NewReconciler(ColumnSet{""}, DefaultNameColumns)
	assert.Error(t, err)
}

func count(header []string, name string) int {
	n := 0
	for _, h := range header {
		if h == name {
			n++
		}
	}
	return n
}
