package jobs

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// LookupStore is the part of the database the pruner needs.
type LookupStore interface {
	PruneKeywordLookups(ctx context.Context, maxAge time.Duration) (int64, error)
}

// LookupPruner periodically deletes keyword lookup counters that went stale.
type LookupPruner struct {
	store    LookupStore
	interval time.Duration
	maxAge   time.Duration
	log      *zap.Logger
}

// NewLookupPruner creates a new lookup pruner.
func NewLookupPruner(store LookupStore, interval, maxAge time.Duration, log *zap.Logger) *LookupPruner {
	return &LookupPruner{
		store:    store,
		interval: interval,
		maxAge:   maxAge,
		log:      log,
	}
}

// Start runs the prune loop until ctx is cancelled.
func (p *LookupPruner) Start(ctx context.Context) {
	p.log.Info("lookup pruner started",
		zap.Duration("interval", p.interval),
		zap.Duration("max_age", p.maxAge),
	)

	// Run immediately on start
	p.pruneOnce(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.log.Info("lookup pruner stopped")
			return
		case <-ticker.C:
			p.pruneOnce(ctx)
		}
	}
}

func (p *LookupPruner) pruneOnce(ctx context.Context) {
	removed, err := p.store.PruneKeywordLookups(ctx, p.maxAge)
	if err != nil {
		if ctx.Err() == nil {
			p.log.Error("lookup pruner: prune failed", zap.Error(err))
		}
		return
	}
	if removed > 0 {
		p.log.Info("lookup pruner: removed stale lookups", zap.Int64("removed", removed))
	}
}
