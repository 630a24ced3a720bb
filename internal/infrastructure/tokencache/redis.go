package tokencache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mendly/mendly-backend/internal/domain/entity"
	"github.com/mendly/mendly-backend/pkg/helpers"
)

type RedisCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisCache(rdb *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{rdb: rdb, ttl: ttl}
}

func (c *RedisCache) Get(ctx context.Context, kind entity.Kind, token string) (*entity.Principal, bool, error) {
	var cp cachedPrincipal
	ok, err := helpers.RedisGetJSON(ctx, c.rdb, key(kind, token), &cp)
	if err != nil || !ok {
		return nil, false, err
	}
	return fromCached(cp, token), true, nil
}

func (c *RedisCache) Set(ctx context.Context, p *entity.Principal) error {
	return helpers.RedisSetJSON(ctx, c.rdb, key(p.Kind, p.AccessToken), toCached(p), c.ttl)
}

var _ Cache = (*RedisCache)(nil)
