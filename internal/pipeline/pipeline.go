// Package pipeline drives candidates from adapters through classification,
// normalization, scoring, and deduplicated insertion. One malformed record
// never aborts a batch; adapters fail independently of each other.
package pipeline

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/sells-group/leadflow-cli/internal/dedup"
	"github.com/sells-group/leadflow-cli/internal/identity"
	"github.com/sells-group/leadflow-cli/internal/model"
	"github.com/sells-group/leadflow-cli/internal/score"
	"github.com/sells-group/leadflow-cli/internal/source"
)

// minNameLen is the shortest company name worth keeping. Shorter strings
// are scraping artifacts, not businesses.
const minNameLen = 3

// Pipeline processes one adapter's candidates at a time. All adapters in a
// run share the gateway so cross-source duplicates cannot double-insert.
type Pipeline struct {
	profiles map[string]source.Profile
	gateway  *dedup.Gateway
	now      func() time.Time
}

// New builds a pipeline over the given profiles and dedup gateway.
func New(profiles map[string]source.Profile, gw *dedup.Gateway) *Pipeline {
	return &Pipeline{profiles: profiles, gateway: gw, now: time.Now}
}

// Ingest runs a single adapter end to end and reports its counts. An
// adapter-level failure yields a result with Err set and zero counts;
// per-record insert failures increment Errors and processing continues.
func (p *Pipeline) Ingest(ctx context.Context, adapter source.Adapter) model.SourceResult {
	res := model.SourceResult{Source: adapter.Name()}

	candidates, err := adapter.Candidates(ctx)
	if err != nil {
		zap.L().Error("pipeline: adapter failed",
			zap.String("source", adapter.Name()),
			zap.Error(err),
		)
		res.Err = err.Error()
		return res
	}
	res.Scraped = len(candidates)

	profile, ok := p.profiles[adapter.Name()]
	if !ok {
		zap.L().Warn("pipeline: no profile for source, using defaults",
			zap.String("source", adapter.Name()),
		)
		profile = source.Profile{Name: adapter.Name()}
	}
	norm := profile.Normalizer()
	now := p.now()

	for _, c := range candidates {
		if ctx.Err() != nil {
			res.Err = ctx.Err().Error()
			break
		}
		if len(strings.TrimSpace(c.CompanyName)) < minNameLen {
			continue
		}

		key := identity.NaturalKey(c.NaturalKey, c.CompanyName)
		lead := norm.Lead(c, profile.Classify(c), adapter.Name(), identity.SourceID(adapter.Name(), key), now)
		score.Apply(&lead, now)

		switch p.gateway.Insert(ctx, lead) {
		case dedup.Inserted:
			res.Inserted++
		case dedup.Skipped:
			res.Skipped++
		case dedup.Failed:
			res.Errors++
		}
	}

	zap.L().Info("pipeline: source complete",
		zap.String("source", adapter.Name()),
		zap.Int("scraped", res.Scraped),
		zap.Int("inserted", res.Inserted),
		zap.Int("skipped", res.Skipped),
		zap.Int("errors", res.Errors),
	)
	return res
}
