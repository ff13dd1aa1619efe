package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"namesplit/pkg/engine"
	"namesplit/pkg/names"
	"namesplit/pkg/schema"
)

func sampleStats() engine.Stats {
	return engine.Stats{
		RunID:       "run-1",
		NameColumn:  1,
		RowsRead:    4,
		RowsWritten: 4,
		RowsPadded:  1,
		Conventions: map[names.Convention]int{names.ConventionInverted: 3, names.ConventionNone: 1},
		Reviews:     map[engine.ReviewLevel]int{engine.ReviewHigh: 1, engine.ReviewLow: 2, engine.ReviewInfo: 1},
		Flags:       map[engine.ReviewFlag]int{engine.FlagEmpty: 1, engine.FlagSuffixExtracted: 2},
		Suffixes:    map[string]int{"Jr": 2},
		Header:      []string{"Name", "Account", "LastName"},
		Missing:     []string{"RecordSeries"},
		Collisions: []schema.Collision{
			{Column: "LastName", Kind: schema.CollisionComputed, Positions: []int{2, 6}},
		},
		Duration: 1500 * time.Millisecond,
	}
}

func TestSummarize(t *testing.T) {
	src := Source{Input: "in.csv", Output: "out.csv", Format: "csv", Encoding: "utf-8"}
	s := Summarize(sampleStats(), src, nil, 1700000000)

	assert.Equal(t, "run-1", s.RunID)
	assert.Equal(t, "done", s.Status)
	assert.Empty(t, s.Error)
	assert.Equal(t, time.Date(2023, 11, 14, 22, 13, 20, 0, time.UTC), s.GeneratedAt)
	assert.Equal(t, ReviewSummary{High: 1, Low: 2, Info: 1}, s.Review)
	assert.Equal(t, 4, s.Review.Total())
	assert.Equal(t, map[string]int{"inverted": 3, "none": 1}, s.Conventions)
	assert.Equal(t, map[string]int{"empty": 1, "suffix_extracted": 2}, s.Flags)
	assert.Equal(t, int64(1500), s.DurationMillis)
	assert.Equal(t, src, s.Source)
}

func TestSummarize_Failed(t *testing.T) {
	err := &engine.RowError{Row: 3, Column: 2, Fields: 1}
	s := Summarize(sampleStats(), Source{}, err, 0)
	assert.Equal(t, "failed", s.Status)
	assert.Contains(t, s.Error, "row 3")
}

func TestFormatFor(t *testing.T) {
	assert.Equal(t, FormatYAML, FormatFor("summary.yaml"))
	assert.Equal(t, FormatYAML, FormatFor("SUMMARY.YML"))
	assert.Equal(t, FormatJSON, FormatFor("summary.json"))
	assert.Equal(t, FormatJSON, FormatFor("summary"))
}

func TestEncode_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, FormatJSON, Summarize(sampleStats(), Source{}, nil, 0)))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "run-1", decoded["runId"])
	assert.Equal(t, float64(4), decoded["rowsWritten"])
	review := decoded["review"].(map[string]any)
	assert.Equal(t, float64(2), review["low"])
}

func TestEncode_UnknownFormat(t *testing.T) {
	err := Encode(&bytes.Buffer{}, Format("toml"), &RunSummary{})
	assert.Error(t, err)
}

func TestWriteFile_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.yaml")
	require.NoError(t, WriteFile(path, Summarize(sampleStats(), Source{Input: "in.csv"}, nil, 0)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var decoded struct {
		RunID  string         `yaml:"run_id"`
		Source Source         `yaml:"source"`
		Review ReviewSummary  `yaml:"review"`
		Flags  map[string]int `yaml:"flags"`
	}
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, "run-1", decoded.RunID)
	assert.Equal(t, "in.csv", decoded.Source.Input)
	assert.Equal(t, 1, decoded.Review.High)
	assert.Equal(t, 2, decoded.Flags["suffix_extracted"])
}

func TestWriteFile_BadPath(t *testing.T) {
	err := WriteFile(filepath.Join(t.TempDir(), "missing", "summary.json"), &RunSummary{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
