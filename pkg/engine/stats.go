package engine

import (
	"time"

	"namesplit/pkg/names"
	"namesplit/pkg/schema"
)

// Stats are the counters of one pipeline run.
type Stats struct {
	RunID         string `json:"runId,omitempty" yaml:"run_id,omitempty"`
	NameColumn    int    `json:"nameColumn" yaml:"name_column"` // 1-based, as resolved
	RowsRead      int    `json:"rowsRead" yaml:"rows_read"`
	RowsWritten   int    `json:"rowsWritten" yaml:"rows_written"`
	RowsPadded    int    `json:"rowsPadded" yaml:"rows_padded"`
	RowsTruncated int    `json:"rowsTruncated" yaml:"rows_truncated"`

	Conventions map[names.Convention]int `json:"conventions" yaml:"conventions"`
	Reviews     map[ReviewLevel]int      `json:"reviews" yaml:"reviews"`
	Flags       map[ReviewFlag]int       `json:"flags" yaml:"flags"`
	Suffixes    map[string]int           `json:"suffixes" yaml:"suffixes"`

	Header     []string           `json:"header" yaml:"header"`
	Missing    []string           `json:"missingColumns" yaml:"missing_columns"`
	Collisions []schema.Collision `json:"collisions,omitempty" yaml:"collisions,omitempty"`

	Duration time.Duration `json:"duration" yaml:"duration"`
}

func newStats(runID string) Stats {
	return Stats{
		RunID:       runID,
		Conventions: make(map[names.Convention]int),
		Reviews:     make(map[ReviewLevel]int),
		Flags:       make(map[ReviewFlag]int),
		Suffixes:    make(map[string]int),
	}
}

func (s *Stats) record(parsed names.Parsed, review Review, align schema.Alignment) {
	s.Conventions[parsed.Convention]++
	s.Reviews[review.Level]++
	for _, f := range review.Flags {
		s.Flags[f]++
	}
	if parsed.Suffix != "" {
		s.Suffixes[names.TitleCase(parsed.Suffix)]++
	}
	switch align {
	case schema.AlignPadded:
		s.RowsPadded++
	case schema.AlignTruncated:
		s.RowsTruncated++
	}
}
