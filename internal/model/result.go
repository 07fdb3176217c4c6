package model

// SourceResult holds per-adapter ingestion counts for one run.
type SourceResult struct {
	Source   string `json:"source"`
	Scraped  int    `json:"scraped"`
	Inserted int    `json:"inserted"`
	Skipped  int    `json:"skipped"`
	Errors   int    `json:"errors"`
	// Err is set when the adapter itself failed to produce candidates.
	// Per-record failures are counted in Errors instead.
	Err string `json:"error,omitempty"`
}

// RunSummary aggregates SourceResults across one orchestrated run.
type RunSummary struct {
	Sources  []SourceResult `json:"sources"`
	Scraped  int            `json:"scraped"`
	Inserted int            `json:"inserted"`
	Skipped  int            `json:"skipped"`
	Errors   int            `json:"errors"`
}

// Merge folds a per-adapter result into the summary.
func (s *RunSummary) Merge(r SourceResult) {
	s.Sources = append(s.Sources, r)
	s.Scraped += r.Scraped
	s.Inserted += r.Inserted
	s.Skipped += r.Skipped
	s.Errors += r.Errors
}
