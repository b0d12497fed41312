package gacha

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/GachaLab_Go/internal/domain"
	"github.com/osse101/GachaLab_Go/internal/metrics"
)

// typeCache holds gacha configuration between catalog edits
type typeCache struct {
	lru *expirable.LRU[string, domain.GachaType]
}

func newTypeCache(size int, ttl time.Duration) *typeCache {
	return &typeCache{
		lru: expirable.NewLRU[string, domain.GachaType](size, nil, ttl),
	}
}

// Get returns a deep copy so callers cannot mutate the cached entry
func (c *typeCache) Get(id string) (*domain.GachaType, bool) {
	g, ok := c.lru.Get(id)
	if !ok {
		metrics.GachaCacheLookups.WithLabelValues(metrics.ResultMiss).Inc()
		return nil, false
	}
	metrics.GachaCacheLookups.WithLabelValues(metrics.ResultHit).Inc()
	return g.Clone(), true
}

func (c *typeCache) Set(g *domain.GachaType) {
	c.lru.Add(g.ID, *g.Clone())
}

func (c *typeCache) Invalidate(id string) {
	c.lru.Remove(id)
}

func (c *typeCache) Clear() {
	c.lru.Purge()
}
