package cache

import "context"

// instrumentedCache records lookups of a group and publishes its size.
type instrumentedCache struct {
	Cache
	group string
}

func newInstrumentedCache(inner Cache, group string) *instrumentedCache {
	registerEntries(group, inner.Len)
	return &instrumentedCache{Cache: inner, group: group}
}

func (c *instrumentedCache) Get(ctx context.Context, key string) ([]byte, bool) {
	value, ok := c.Cache.Get(ctx, key)
	result := resultMiss
	if ok {
		result = resultHit
	}
	LookupsTotal.WithLabelValues(c.group, result).Inc()
	return value, ok
}

func (c *instrumentedCache) Close() error {
	unregisterEntries(c.group)
	return c.Cache.Close()
}
