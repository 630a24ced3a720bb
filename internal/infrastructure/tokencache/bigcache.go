package tokencache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/allegro/bigcache/v3"

	"github.com/mendly/mendly-backend/internal/domain/entity"
)

// MemoryCache is the in-process fallback used when no Redis is configured.
type MemoryCache struct {
	cache *bigcache.BigCache
}

func NewMemoryCache(ctx context.Context, ttl time.Duration) (*MemoryCache, error) {
	cfg := bigcache.DefaultConfig(ttl)
	cfg.Verbose = false
	cache, err := bigcache.New(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &MemoryCache{cache: cache}, nil
}

func (m *MemoryCache) Get(_ context.Context, kind entity.Kind, token string) (*entity.Principal, bool, error) {
	buf, err := m.cache.Get(key(kind, token))
	if errors.Is(err, bigcache.ErrEntryNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var cp cachedPrincipal
	if err := json.Unmarshal(buf, &cp); err != nil {
		return nil, false, err
	}
	return fromCached(cp, token), true, nil
}

func (m *MemoryCache) Set(_ context.Context, p *entity.Principal) error {
	b, err := json.Marshal(toCached(p))
	if err != nil {
		return err
	}
	return m.cache.Set(key(p.Kind, p.AccessToken), b)
}

func (m *MemoryCache) Close() error {
	return m.cache.Close()
}

var _ Cache = (*MemoryCache)(nil)
