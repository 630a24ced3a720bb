package tokencache

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mendly/mendly-backend/internal/domain/entity"
)

func newMemoryCache(t *testing.T) *MemoryCache {
	t.Helper()
	c, err := NewMemoryCache(context.Background(), time.Minute)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestMemoryCache_RoundTrip(t *testing.T) {
	ctx := context.Background()
	c := newMemoryCache(t)

	p := &entity.Principal{
		ID:           "u-1",
		Kind:         entity.KindUser,
		Name:         "alice",
		Email:        "alice@example.com",
		PasswordHash: "hash",
		AccessToken:  "tok-1",
	}
	require.NoError(t, c.Set(ctx, p))

	got, ok, err := c.Get(ctx, entity.KindUser, "tok-1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "u-1", got.ID)
	assert.Equal(t, "alice", got.Name)
	assert.Equal(t, "alice@example.com", got.Email)
	assert.Equal(t, "tok-1", got.AccessToken)
	assert.Empty(t, got.PasswordHash)
}

func TestMemoryCache_KindIsolation(t *testing.T) {
	ctx := context.Background()
	c := newMemoryCache(t)

	require.NoError(t, c.Set(ctx, &entity.Principal{ID: "u-1", Kind: entity.KindUser, Name: "alice", AccessToken: "shared"}))

	_, ok, err := c.Get(ctx, entity.KindAdmin, "shared")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryCache_Miss(t *testing.T) {
	c := newMemoryCache(t)
	got, ok, err := c.Get(context.Background(), entity.KindUser, "nope")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestKey_DoesNotContainToken(t *testing.T) {
	k := key(entity.KindUser, "super-secret-token")
	assert.False(t, strings.Contains(k, "super-secret-token"))
	assert.True(t, strings.HasPrefix(k, "auth:token:user:"))
	assert.NotEqual(t, k, key(entity.KindAdmin, "super-secret-token"))
}
