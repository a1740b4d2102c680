package enrichment

import (
	"time"

	"github.com/aleister1102/phishscan/internal/models"
	gocache "github.com/patrickmn/go-cache"
)

// snapshotCache keeps successful lookups per normalized address.
type snapshotCache struct {
	cache *gocache.Cache
}

// newSnapshotCache returns nil when ttl is not positive, which disables caching.
func newSnapshotCache(ttl time.Duration) *snapshotCache {
	if ttl <= 0 {
		return nil
	}
	return &snapshotCache{cache: gocache.New(ttl, 2*ttl)}
}

func (c *snapshotCache) get(u models.NormalizedURL) (models.EnrichmentInfo, bool) {
	if c == nil {
		return models.EnrichmentInfo{}, false
	}
	if val, found := c.cache.Get(string(u)); found {
		return val.(models.EnrichmentInfo), true
	}
	return models.EnrichmentInfo{}, false
}

func (c *snapshotCache) set(u models.NormalizedURL, info models.EnrichmentInfo) {
	if c == nil {
		return
	}
	c.cache.SetDefault(string(u), info)
}

func (c *snapshotCache) flush() {
	if c == nil {
		return
	}
	c.cache.Flush()
}
