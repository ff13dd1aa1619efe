// Package report compiles the run summary written next to a split output.
package report

import (
	"time"

	"namesplit/pkg/engine"
	"namesplit/pkg/schema"
)

// Source describes the files a run read and wrote.
type Source struct {
	Input    string `json:"input" yaml:"input"`
	Output   string `json:"output" yaml:"output"`
	Format   string `json:"format" yaml:"format"`
	Encoding string `json:"encoding,omitempty" yaml:"encoding,omitempty"`
}

// ReviewSummary contains counts of parses at each review level.
type ReviewSummary struct {
	High   int `json:"high" yaml:"high"`
	Medium int `json:"medium" yaml:"medium"`
	Low    int `json:"low" yaml:"low"`
	Info   int `json:"info" yaml:"info"`
}

// Total is the number of reviewed rows.
func (r ReviewSummary) Total() int {
	return r.High + r.Medium + r.Low + r.Info
}

// RunSummary is the machine-readable account of one split run.
type RunSummary struct {
	RunID       string    `json:"runId" yaml:"run_id"`
	GeneratedAt time.Time `json:"generatedAt" yaml:"generated_at"`
	Status      string    `json:"status" yaml:"status"`
	Error       string    `json:"error,omitempty" yaml:"error,omitempty"`
	Source      Source    `json:"source" yaml:"source"`

	NameColumn    int `json:"nameColumn" yaml:"name_column"`
	RowsRead      int `json:"rowsRead" yaml:"rows_read"`
	RowsWritten   int `json:"rowsWritten" yaml:"rows_written"`
	RowsPadded    int `json:"rowsPadded" yaml:"rows_padded"`
	RowsTruncated int `json:"rowsTruncated" yaml:"rows_truncated"`

	Conventions map[string]int `json:"conventions" yaml:"conventions"`
	Review      ReviewSummary  `json:"review" yaml:"review"`
	Flags       map[string]int `json:"flags" yaml:"flags"`
	Suffixes    map[string]int `json:"suffixes" yaml:"suffixes"`

	Header         []string           `json:"header" yaml:"header"`
	MissingColumns []string           `json:"missingColumns" yaml:"missing_columns"`
	Collisions     []schema.Collision `json:"collisions,omitempty" yaml:"collisions,omitempty"`

	DurationMillis int64 `json:"durationMs" yaml:"duration_ms"`
}

// Summarize compiles stats from a finished (or failed) run into a RunSummary.
// runErr is the error Run returned, if any.
func Summarize(stats engine.Stats, src Source, runErr error, processingTimestamp int64) *RunSummary {
	s := &RunSummary{
		RunID:          stats.RunID,
		GeneratedAt:    time.Unix(processingTimestamp, 0).UTC(),
		Status:         engine.Done.String(),
		Source:         src,
		NameColumn:     stats.NameColumn,
		RowsRead:       stats.RowsRead,
		RowsWritten:    stats.RowsWritten,
		RowsPadded:     stats.RowsPadded,
		RowsTruncated:  stats.RowsTruncated,
		Conventions:    make(map[string]int, len(stats.Conventions)),
		Flags:          make(map[string]int, len(stats.Flags)),
		Suffixes:       make(map[string]int, len(stats.Suffixes)),
		Header:         stats.Header,
		MissingColumns: stats.Missing,
		Collisions:     stats.Collisions,
		DurationMillis: stats.Duration.Milliseconds(),
	}
	if runErr != nil {
		s.Status = engine.Failed.String()
		s.Error = runErr.Error()
	}

	for conv, n := range stats.Conventions {
		s.Conventions[string(conv)] = n
	}
	for flag, n := range stats.Flags {
		s.Flags[string(flag)] = n
	}
	for suffix, n := range stats.Suffixes {
		s.Suffixes[suffix] = n
	}
	for level, n := range stats.Reviews {
		updateReviewSummary(&s.Review, level, n)
	}
	return s
}

// updateReviewSummary adds n to the counter for level.
func updateReviewSummary(summary *ReviewSummary, level engine.ReviewLevel, n int) {
	switch level {
	case engine.ReviewHigh:
		summary.High += n
	case engine.ReviewMedium:
		summary.Medium += n
	case engine.ReviewLow:
		summary.Low += n
	case engine.ReviewInfo:
		summary.Info += n
	}
}
