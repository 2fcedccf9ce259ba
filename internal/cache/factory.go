package cache

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/Belphemur/GameHub/internal/config"
)

// ProviderConfig describes one cache instance.
type ProviderConfig struct {
	// Size bounds the number of live entries.
	Size int
	// TTL is the revalidation window. Memory caches keep entries forever when zero.
	TTL time.Duration

	// OnEvict receives the key of every entry dropped to make room. The memory
	// provider also reports expired and deleted entries.
	OnEvict func(key string)
	// Logger receives backend failures. Nil discards them.
	Logger Logger

	Redis RedisOptions

	// Group names the cache in metrics and in Redis keys. A non-empty Group
	// enables instrumentation.
	Group string
}

// RedisOptions locates the Redis or Valkey server of the redis provider.
type RedisOptions struct {
	Address  string
	Password string
	DB       int
	// Namespace prefixes every key. Defaults to "gamehub".
	Namespace string
}

// Provider builds a Cache from its configuration.
type Provider func(cfg ProviderConfig) (Cache, error)

var (
	mu        sync.RWMutex
	providers = make(map[string]Provider)
)

// Register makes a provider available to New. Registering a nil provider or
// the same name twice panics.
func Register(name string, p Provider) {
	mu.Lock()
	defer mu.Unlock()

	if p == nil {
		panic("cache: Register provider is nil")
	}
	if _, exists := providers[name]; exists {
		panic(fmt.Sprintf("cache: provider %q already registered", name))
	}
	providers[name] = p
}

// New builds a cache with the named provider. With a Group the cache counts
// lookups and evictions and reports its size at scrape time.
func New(name string, cfg ProviderConfig) (Cache, error) {
	mu.RLock()
	p, ok := providers[name]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("cache: unknown provider %q (registered: %v)", name, RegisteredProviders())
	}

	if cfg.Group == "" {
		return p(cfg)
	}

	group := cfg.Group
	onEvict := cfg.OnEvict
	cfg.OnEvict = func(key string) {
		EvictionsTotal.WithLabelValues(group).Inc()
		if onEvict != nil {
			onEvict(key)
		}
	}

	inner, err := p(cfg)
	if err != nil {
		return nil, err
	}
	return newInstrumentedCache(inner, group), nil
}

// NewFromConfig builds the cache selected in the configuration under group.
func NewFromConfig(cfg *config.Config, group string) (Cache, error) {
	provider := cfg.Cache.Provider
	if provider == "" {
		provider = "memory"
	}
	size := cfg.Cache.Size
	if size <= 0 {
		size = 500
	}

	return New(provider, ProviderConfig{
		Size:   size,
		TTL:    cfg.CacheTTL(),
		Logger: NewLogger(config.GetLogger()),
		Redis: RedisOptions{
			Address:  cfg.Cache.Redis.Address,
			Password: cfg.Cache.Redis.Password,
			DB:       cfg.Cache.Redis.DB,
		},
		Group: group,
	})
}

// RegisteredProviders lists the provider names in order.
func RegisteredProviders() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(providers))
	for name := range providers {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
