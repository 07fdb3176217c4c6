package store

import (
	"context"

	"github.com/sells-group/leadflow-cli/internal/model"
)

// LeadFilter specifies criteria for listing leads.
type LeadFilter struct {
	Priority model.Priority `json:"priority,omitempty"`
	Source   string         `json:"source,omitempty"`
	State    string         `json:"state,omitempty"`
	MinScore int            `json:"min_score,omitempty"`
	Limit    int            `json:"limit,omitempty"`
	Offset   int            `json:"offset,omitempty"`
}

// Store defines the persistence interface for the ingestion pipeline.
type Store interface {
	// InsertLead writes a lead if its source_id is absent. It reports
	// false without error when the source_id already exists, so a race
	// between two producers resolves to exactly one row.
	InsertLead(ctx context.Context, lead model.Lead) (bool, error)

	// LeadExists checks a single source_id.
	LeadExists(ctx context.Context, sourceID string) (bool, error)

	// SourceIDs bulk-fetches every known source_id for cache warm-up.
	SourceIDs(ctx context.Context) ([]string, error)

	ListLeads(ctx context.Context, filter LeadFilter) ([]model.Lead, error)
	CountLeads(ctx context.Context) (int, error)

	// Lifecycle
	Migrate(ctx context.Context) error
	Close() error
}
