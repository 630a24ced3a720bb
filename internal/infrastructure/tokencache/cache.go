// Package tokencache keeps recently authenticated principals keyed by their
// access token so that protected routes do not hit Postgres on every call.
//
// Tokens never rotate and principals are never deleted, so entries only
// leave the cache by TTL. Raw tokens are never used as keys; the key is the
// principal kind plus the SHA-256 of the token.
package tokencache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/mendly/mendly-backend/internal/domain/entity"
)

// Cache is implemented by Redis and BigCache.
type Cache interface {
	Get(ctx context.Context, kind entity.Kind, token string) (*entity.Principal, bool, error)
	Set(ctx context.Context, p *entity.Principal) error
}

type cachedPrincipal struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func key(kind entity.Kind, token string) string {
	sum := sha256.Sum256([]byte(token))
	return "auth:token:" + string(kind) + ":" + hex.EncodeToString(sum[:])
}

func toCached(p *entity.Principal) cachedPrincipal {
	return cachedPrincipal{ID: p.ID, Kind: string(p.Kind), Name: p.Name, Email: p.Email, CreatedAt: p.CreatedAt}
}

// fromCached rebuilds the principal. The password hash is not cached.
func fromCached(c cachedPrincipal, token string) *entity.Principal {
	return &entity.Principal{
		ID:          c.ID,
		Kind:        entity.Kind(c.Kind),
		Name:        c.Name,
		Email:       c.Email,
		AccessToken: token,
		CreatedAt:   c.CreatedAt,
	}
}
