package source

import (
	"context"

	"github.com/sells-group/leadflow-cli/internal/model"
)

// StaticAdapter serves a fixed candidate slice. Used for seeding demo data
// and as the adapter stand-in throughout the test suite.
type StaticAdapter struct {
	SourceName string
	Records    []model.RawCandidate
	Err        error
}

func (a StaticAdapter) Name() string { return a.SourceName }

func (a StaticAdapter) Candidates(ctx context.Context) ([]model.RawCandidate, error) {
	if a.Err != nil {
		return nil, a.Err
	}
	out := make([]model.RawCandidate, len(a.Records))
	copy(out, a.Records)
	return out, nil
}
