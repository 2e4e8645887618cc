package cache

import (
	"context"
	"fmt"
	"path"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/zatekoja/benchmap/internal/domain/providers"
)

// MemoryAdapter implements CacheProvider in process with go-cache. It backs
// the response cache when Redis is not configured or unreachable.
type MemoryAdapter struct {
	store *gocache.Cache
}

var _ providers.CacheProvider = (*MemoryAdapter)(nil)

// NewMemoryAdapter creates an in-memory cache that purges expired entries every cleanupInterval
func NewMemoryAdapter(cleanupInterval time.Duration) *MemoryAdapter {
	return &MemoryAdapter{
		store: gocache.New(gocache.NoExpiration, cleanupInterval),
	}
}

// Get retrieves a value from cache
func (a *MemoryAdapter) Get(_ context.Context, key string) ([]byte, error) {
	value, ok := a.store.Get(key)
	if !ok {
		return nil, providers.ErrCacheMiss
	}
	data, ok := value.([]byte)
	if !ok {
		return nil, fmt.Errorf("unexpected cache value type %T", value)
	}
	return data, nil
}

// Set stores a copy of value. A non-positive expiration keeps it until deleted.
func (a *MemoryAdapter) Set(_ context.Context, key string, value []byte, expirationSeconds int) error {
	expiration := gocache.NoExpiration
	if expirationSeconds > 0 {
		expiration = time.Duration(expirationSeconds) * time.Second
	}
	data := make([]byte, len(value))
	copy(data, value)
	a.store.Set(key, data, expiration)
	return nil
}

// Delete removes a value from cache
func (a *MemoryAdapter) Delete(_ context.Context, key string) error {
	a.store.Delete(key)
	return nil
}

// DeletePattern removes keys matching a glob pattern
func (a *MemoryAdapter) DeletePattern(_ context.Context, pattern string) error {
	if _, err := path.Match(pattern, ""); err != nil {
		return fmt.Errorf("invalid cache pattern %q: %w", pattern, err)
	}
	for key := range a.store.Items() {
		if ok, _ := path.Match(pattern, key); ok {
			a.store.Delete(key)
		}
	}
	return nil
}

// Exists checks if a key exists in cache
func (a *MemoryAdapter) Exists(_ context.Context, key string) (bool, error) {
	_, ok := a.store.Get(key)
	return ok, nil
}

// ItemCount reports the number of cached entries, expired ones included until purged
func (a *MemoryAdapter) ItemCount() int {
	return a.store.ItemCount()
}
