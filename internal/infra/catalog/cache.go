package catalog

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"studio-search/internal/domain/studio"
	"studio-search/internal/pkg/clock"
)

// CachedCatalog keeps the last loaded snapshot for ttl. A failed reload is returned
// as-is; stale data is never served past its ttl.
type CachedCatalog struct {
	source Source
	clock  clock.Clock
	ttl    time.Duration
	logger *slog.Logger

	mu      sync.Mutex
	current *studio.Catalog
}

func NewCachedCatalog(source Source, clk clock.Clock, ttl time.Duration, logger *slog.Logger) *CachedCatalog {
	return &CachedCatalog{
		source: source,
		clock:  clk,
		ttl:    ttl,
		logger: logger,
	}
}

func (c *CachedCatalog) Load(ctx context.Context) (*studio.Catalog, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock.Now()
	if c.current != nil && c.ttl > 0 && now.Sub(c.current.LoadedAt) < c.ttl {
		return c.current, nil
	}

	records, err := c.source.Fetch(ctx)
	if err != nil {
		c.current = nil
		return nil, err
	}

	c.current = studio.NewCatalog(records, now)
	c.logger.Info("カタログを読み込みました",
		"source", c.source.Name(),
		"records", len(records),
		"catalog_version", c.current.Version.String())
	return c.current, nil
}

// Invalidate forces the next Load to hit the source.
func (c *CachedCatalog) Invalidate() {
	c.mu.Lock()
	c.current = nil
	c.mu.Unlock()
}
