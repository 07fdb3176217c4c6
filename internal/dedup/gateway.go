package dedup

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/leadflow-cli/internal/model"
	"github.com/sells-group/leadflow-cli/internal/store"
)

// Outcome is the terminal state of one candidate's insert attempt.
type Outcome int

const (
	Inserted Outcome = iota
	Skipped
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Inserted:
		return "inserted"
	case Skipped:
		return "skipped"
	default:
		return "failed"
	}
}

// Gateway mediates all lead writes: check-then-insert against the shared
// cache, with the store's unique source_id constraint as the backstop for
// races the cache cannot see.
type Gateway struct {
	store store.Store
	cache *Cache
}

// NewGateway wraps a store with the shared run cache.
func NewGateway(s store.Store, c *Cache) *Gateway {
	return &Gateway{store: s, cache: c}
}

// Preload warms the cache with every source_id already in the store. A read
// failure degrades to an empty cache rather than aborting the run: every
// record then pays a store-level conflict check, which still guarantees at
// most one row per source_id.
func (g *Gateway) Preload(ctx context.Context) error {
	ids, err := g.store.SourceIDs(ctx)
	if err != nil {
		zap.L().Warn("dedup: preload failed, starting with empty cache", zap.Error(err))
		return eris.Wrap(err, "dedup: preload source ids")
	}
	g.cache.Load(ids)
	zap.L().Info("dedup: cache preloaded", zap.Int("known_ids", len(ids)))
	return nil
}

// Insert writes the lead unless its source_id is already known. The store
// insert is conditional on the source_id being absent, so two producers
// racing on the same id resolve to one Inserted and one Skipped regardless
// of order.
func (g *Gateway) Insert(ctx context.Context, lead model.Lead) Outcome {
	if g.cache.Contains(lead.SourceID) {
		return Skipped
	}

	ok, err := g.store.InsertLead(ctx, lead)
	if err != nil {
		zap.L().Error("dedup: insert failed",
			zap.String("source_id", lead.SourceID),
			zap.String("company", lead.CompanyName),
			zap.Error(err),
		)
		return Failed
	}

	g.cache.Add(lead.SourceID)
	if !ok {
		return Skipped
	}
	return Inserted
}
