package pipeline

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/leadflow-cli/internal/dedup"
	"github.com/sells-group/leadflow-cli/internal/model"
	"github.com/sells-group/leadflow-cli/internal/source"
)

// Orchestrator runs a set of adapters as one ingestion run: a single cache
// preload up front, then every adapter through the shared pipeline.
type Orchestrator struct {
	pipeline    *Pipeline
	gateway     *dedup.Gateway
	parallelism int
}

// NewOrchestrator builds an orchestrator. Parallelism below 2 means the
// adapters run sequentially in the order given.
func NewOrchestrator(p *Pipeline, gw *dedup.Gateway, parallelism int) *Orchestrator {
	return &Orchestrator{pipeline: p, gateway: gw, parallelism: parallelism}
}

// Run executes all adapters and aggregates their results. The summary keeps
// the adapter order regardless of completion order. A failed cache preload
// degrades dedup to store-conflict detection only, it does not stop the run.
func (o *Orchestrator) Run(ctx context.Context, adapters []source.Adapter) (model.RunSummary, error) {
	if err := o.gateway.Preload(ctx); err != nil {
		zap.L().Warn("orchestrator: continuing without dedup preload", zap.Error(err))
	}

	results := make([]model.SourceResult, len(adapters))

	if o.parallelism > 1 {
		g, gCtx := errgroup.WithContext(ctx)
		g.SetLimit(o.parallelism)
		for i, adapter := range adapters {
			g.Go(func() error {
				results[i] = o.pipeline.Ingest(gCtx, adapter)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return model.RunSummary{}, err
		}
	} else {
		for i, adapter := range adapters {
			results[i] = o.pipeline.Ingest(ctx, adapter)
		}
	}

	var summary model.RunSummary
	for _, r := range results {
		summary.Merge(r)
	}

	zap.L().Info("orchestrator: run complete",
		zap.Int("sources", len(adapters)),
		zap.Int("scraped", summary.Scraped),
		zap.Int("inserted", summary.Inserted),
		zap.Int("skipped", summary.Skipped),
		zap.Int("errors", summary.Errors),
	)
	return summary, nil
}
