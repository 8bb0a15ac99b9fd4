package directory

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache is the lookup cache in front of the tenant registry. Misses and
// backend failures are treated identically: the caller falls through to the
// store.
type Cache interface {
	Get(ctx context.Context, orgID string) (Tenant, bool)
	Set(ctx context.Context, t Tenant, ttl time.Duration)
	Delete(ctx context.Context, orgID string)
}

const cacheKeyPrefix = "directory:tenant:"

// RedisCache caches tenant records as JSON values under a per-org key.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache creates a cache over the given client.
func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

func (c *RedisCache) Get(ctx context.Context, orgID string) (Tenant, bool) {
	raw, err := c.client.Get(ctx, cacheKeyPrefix+orgID).Bytes()
	if err != nil {
		return Tenant{}, false
	}
	var t Tenant
	if err := json.Unmarshal(raw, &t); err != nil {
		// Corrupt entry; drop it so the next lookup repopulates.
		c.client.Del(ctx, cacheKeyPrefix+orgID)
		return Tenant{}, false
	}
	return t, true
}

func (c *RedisCache) Set(ctx context.Context, t Tenant, ttl time.Duration) {
	raw, err := json.Marshal(t)
	if err != nil {
		return
	}
	c.client.Set(ctx, cacheKeyPrefix+t.OrgID, raw, ttl)
}

func (c *RedisCache) Delete(ctx context.Context, orgID string) {
	c.client.Del(ctx, cacheKeyPrefix+orgID)
}

// MemoryCache is a process-local Cache for tests and single-instance
// deployments. Expired entries are dropped lazily on read.
type MemoryCache struct {
	mu    sync.RWMutex
	items map[string]memoryCacheItem
}

type memoryCacheItem struct {
	tenant    Tenant
	expiresAt time.Time
}

// NewMemoryCache creates an empty in-process cache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{items: make(map[string]memoryCacheItem)}
}

func (c *MemoryCache) Get(ctx context.Context, orgID string) (Tenant, bool) {
	c.mu.RLock()
	item, ok := c.items[orgID]
	c.mu.RUnlock()
	if !ok {
		return Tenant{}, false
	}
	if time.Now().After(item.expiresAt) {
		c.Delete(ctx, orgID)
		return Tenant{}, false
	}
	return item.tenant, true
}

func (c *MemoryCache) Set(ctx context.Context, t Tenant, ttl time.Duration) {
	c.mu.Lock()
	c.items[t.OrgID] = memoryCacheItem{tenant: t, expiresAt: time.Now().Add(ttl)}
	c.mu.Unlock()
}

func (c *MemoryCache) Delete(ctx context.Context, orgID string) {
	c.mu.Lock()
	delete(c.items, orgID)
	c.mu.Unlock()
}

var (
	_ Cache = (*RedisCache)(nil)
	_ Cache = (*MemoryCache)(nil)
)
