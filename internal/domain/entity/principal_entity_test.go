package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrincipal_MarshalJSON_User(t *testing.T) {
	p := Principal{
		ID:           "u-1",
		Kind:         KindUser,
		Name:         "alice",
		Email:        "alice@example.com",
		PasswordHash: "$2a$10$secret",
		AccessToken:  "tok",
		CreatedAt:    time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	b, err := json.Marshal(p)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, "u-1", got["_id"])
	assert.Equal(t, "alice", got["username"])
	assert.Equal(t, "alice@example.com", got["email"])
	assert.Equal(t, "tok", got["accessToken"])
	assert.NotContains(t, string(b), "secret")
	assert.NotContains(t, got, "adminname")
}

func TestPrincipal_MarshalJSON_Admin(t *testing.T) {
	p := Principal{ID: "a-1", Kind: KindAdmin, Name: "root", PasswordHash: "s3cr3t-hash", AccessToken: "tok"}

	b, err := json.Marshal(p)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, "root", got["adminname"])
	assert.NotContains(t, got, "email")
	assert.NotContains(t, got, "username")
	assert.NotContains(t, string(b), "s3cr3t")
}

func TestKind(t *testing.T) {
	assert.True(t, KindUser.Valid())
	assert.True(t, KindAdmin.Valid())
	assert.False(t, Kind("root").Valid())
	assert.Equal(t, "userId", KindUser.IDField())
	assert.Equal(t, "adminId", KindAdmin.IDField())
}
