package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultNamespace = "gamehub"
	defaultGroup     = "default"
	// opTimeout bounds every round trip so a slow server degrades to misses
	opTimeout = 2 * time.Second
)

func init() {
	Register("redis", newRedisCache)
}

// redisCache stores each entry as a plain string key with a millisecond TTL,
// so expiry is left to the server. A sorted set indexes the keys of a group by
// expiry deadline; it bounds the group size and answers Len.
//
// Keys look like "gamehub:detail:game:3498", the index "gamehub:detail:index".
// Entries are evicted in write order when the group is full.
type redisCache struct {
	client  *redis.Client
	ttl     time.Duration
	maxSize int
	onEvict func(key string)
	logger  Logger
	prefix  string // "gamehub:detail:"
	index   string
}

// storeEntry writes one entry, records its deadline, prunes expired index
// members and evicts the entries closest to expiry while the group is too big.
//
// KEYS[1] = entry key, KEYS[2] = index
// ARGV[1] = value, ARGV[2] = TTL ms, ARGV[3] = now ms, ARGV[4] = max entries
//
// Returns the evicted entry keys. Evicted keys are not declared in KEYS, so
// the script targets a single Redis or Valkey node.
var storeEntry = redis.NewScript(`
local ttl = tonumber(ARGV[2])
local now = tonumber(ARGV[3])
local maxSize = tonumber(ARGV[4])

redis.call('SET', KEYS[1], ARGV[1], 'PX', ARGV[2])
redis.call('ZADD', KEYS[2], now + ttl, KEYS[1])
redis.call('ZREMRANGEBYSCORE', KEYS[2], '-inf', now)

local evicted = {}
local size = redis.call('ZCARD', KEYS[2])
while size > maxSize do
    local oldest = redis.call('ZPOPMIN', KEYS[2], 1)
    if #oldest == 0 then break end
    redis.call('DEL', oldest[1])
    table.insert(evicted, oldest[1])
    size = size - 1
end

redis.call('PEXPIRE', KEYS[2], ARGV[2])
return evicted
`)

func newRedisCache(cfg ProviderConfig) (Cache, error) {
	if cfg.TTL <= 0 {
		return nil, fmt.Errorf("redis cache requires a positive TTL, got %v", cfg.TTL)
	}
	if cfg.Size <= 0 {
		return nil, fmt.Errorf("redis cache requires a positive size, got %d", cfg.Size)
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Redis.Address, err)
	}

	namespace := cfg.Redis.Namespace
	if namespace == "" {
		namespace = defaultNamespace
	}
	group := cfg.Group
	if group == "" {
		group = defaultGroup
	}
	prefix := namespace + ":" + group + ":"

	return &redisCache{
		client:  client,
		ttl:     cfg.TTL,
		maxSize: cfg.Size,
		onEvict: cfg.OnEvict,
		logger:  cfg.Logger,
		prefix:  prefix,
		index:   prefix + "index",
	}, nil
}

func (r *redisCache) entryKey(key string) string {
	return r.prefix + key
}

func (r *redisCache) logError(msg string, err error) {
	if r.logger != nil {
		r.logger.Error(msg, err)
	}
}

func (r *redisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	value, err := r.client.Get(ctx, r.entryKey(key)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.logError("redis cache Get failed", err)
		}
		return nil, false
	}
	return value, true
}

func (r *redisCache) Set(ctx context.Context, key string, value []byte) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	now := strconv.FormatInt(time.Now().UnixMilli(), 10)
	evicted, err := storeEntry.Run(ctx, r.client,
		[]string{r.entryKey(key), r.index},
		value, r.ttl.Milliseconds(), now, r.maxSize,
	).StringSlice()
	if err != nil {
		r.logError("redis cache Set failed", err)
		return
	}

	if r.onEvict == nil {
		return
	}
	for _, k := range evicted {
		r.onEvict(strings.TrimPrefix(k, r.prefix))
	}
}

func (r *redisCache) Delete(ctx context.Context, key string) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	k := r.entryKey(key)
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, k)
		pipe.ZRem(ctx, r.index, k)
		return nil
	})
	if err != nil {
		r.logError("redis cache Delete failed", err)
	}
}

// Len counts index members whose deadline has not passed.
func (r *redisCache) Len() int {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	now := strconv.FormatInt(time.Now().UnixMilli(), 10)
	n, err := r.client.ZCount(ctx, r.index, "("+now, "+inf").Result()
	if err != nil {
		r.logError("redis cache Len failed", err)
		return 0
	}
	return int(n)
}

func (r *redisCache) Close() error {
	return r.client.Close()
}
