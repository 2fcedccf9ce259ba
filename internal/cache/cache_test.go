package cache

import (
	"context"
	"slices"
	"sync"
	"testing"
	"time"
)

type newCacheFunc func(t *testing.T, size int, ttl time.Duration, onEvict func(string)) Cache

// evictions collects OnEvict keys
type evictions struct {
	mu   sync.Mutex
	keys []string
}

func (e *evictions) record(key string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.keys = append(e.keys, key)
}

func (e *evictions) list() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return slices.Clone(e.keys)
}

// runContract checks the behavior every provider shares.
func runContract(t *testing.T, newCache newCacheFunc) {
	ctx := context.Background()

	t.Run("MissThenHit", func(t *testing.T) {
		c := newCache(t, 10, time.Hour, nil)

		if val, ok := c.Get(ctx, Key("game", 3498)); ok || val != nil {
			t.Fatalf("Expected a miss, got %q", val)
		}
		c.Set(ctx, Key("game", 3498), []byte(`{"id":3498}`))
		val, ok := c.Get(ctx, Key("game", 3498))
		if !ok || string(val) != `{"id":3498}` {
			t.Fatalf("Expected the stored record, got %q (hit=%v)", val, ok)
		}
	})

	t.Run("OverwriteKeepsOneEntry", func(t *testing.T) {
		c := newCache(t, 10, time.Hour, nil)

		c.Set(ctx, Key("genre", "action"), []byte("v1"))
		c.Set(ctx, Key("genre", "action"), []byte("v2"))

		if val, _ := c.Get(ctx, Key("genre", "action")); string(val) != "v2" {
			t.Errorf("Expected v2, got %q", val)
		}
		if c.Len() != 1 {
			t.Errorf("Expected 1 entry, got %d", c.Len())
		}
	})

	t.Run("Delete", func(t *testing.T) {
		c := newCache(t, 10, time.Hour, nil)

		c.Set(ctx, "a", []byte("1"))
		c.Set(ctx, "b", []byte("2"))
		c.Delete(ctx, "a")
		c.Delete(ctx, "absent")

		if _, ok := c.Get(ctx, "a"); ok {
			t.Error("Expected a deleted entry to miss")
		}
		if c.Len() != 1 {
			t.Errorf("Expected 1 entry after delete, got %d", c.Len())
		}
	})

	t.Run("EvictsOldestWhenFull", func(t *testing.T) {
		var ev evictions
		c := newCache(t, 2, time.Hour, ev.record)

		c.Set(ctx, "a", []byte("1"))
		c.Set(ctx, "b", []byte("2"))
		c.Set(ctx, "c", []byte("3"))

		if got := ev.list(); !slices.Equal(got, []string{"a"}) {
			t.Fatalf("Expected eviction of a, got %v", got)
		}
		if _, ok := c.Get(ctx, "a"); ok {
			t.Error("Expected the evicted entry to miss")
		}
		for _, key := range []string{"b", "c"} {
			if _, ok := c.Get(ctx, key); !ok {
				t.Errorf("Expected %s to survive", key)
			}
		}
		if c.Len() != 2 {
			t.Errorf("Expected the size to stay at 2, got %d", c.Len())
		}
	})

	t.Run("Expiry", func(t *testing.T) {
		c := newCache(t, 10, 50*time.Millisecond, nil)

		c.Set(ctx, Key("trailers", 1), []byte("[]"))
		if _, ok := c.Get(ctx, Key("trailers", 1)); !ok {
			t.Fatal("Expected a hit before the TTL")
		}
		time.Sleep(150 * time.Millisecond)
		if _, ok := c.Get(ctx, Key("trailers", 1)); ok {
			t.Error("Expected a miss after the TTL")
		}
		if c.Len() != 0 {
			t.Errorf("Expected expired entries to leave Len, got %d", c.Len())
		}
	})
}

func TestKey_NamespacesByKind(t *testing.T) {
	if Key("game", 4) == Key("genre", 4) {
		t.Fatal("Expected keys of different kinds to differ")
	}
	if Key("genre", "action") != "genre:action" {
		t.Errorf("Unexpected key %q", Key("genre", "action"))
	}
}
