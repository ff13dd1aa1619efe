package sample

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"namesplit/pkg/names"
)

type rows [][]string

func (r *rows) WriteRow(row []string) error {
	*r = append(*r, row)
	return nil
}

func TestGenerator_Deterministic(t *testing.T) {
	var a, b rows
	require.NoError(t, New(42).Write(&a, 25))
	require.NoError(t, New(42).Write(&b, 25))

	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("same seed produced different tables (-a +b):\n%s", diff)
	}
	require.Len(t, a, 26)
	assert.Equal(t, Header, a[0])
	for _, row := range a[1:] {
		assert.Len(t, row, len(Header))
	}
}

func TestGenerator_NegativeCount(t *testing.T) {
	var out rows
	assert.Error(t, New(1).Write(&out, -1))
	assert.Empty(t, out)
}

// Every generated style must decompose back to the components it was built from.
func TestGenerator_RoundTripThroughParser(t *testing.T) {
	g := New(7)
	p := names.NewParser()
	seen := make(map[Style]bool)

	for i := 0; i < 500; i++ {
		rec := g.Next()
		seen[rec.Style] = true

		got := names.Normalize(p.Parse(names.Clean(rec.Row[0])), false)
		want := names.Normalize(rec.Want, false)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("style %s, raw %q (-want +got):\n%s", rec.Style, rec.Row[0], diff)
		}
	}
	assert.Len(t, seen, len(styles))
}
