package auth

import (
	"context"
	"testing"

	"github.com/dailyexamresult/admin/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreLifecycle(t *testing.T) {
	ctx := context.Background()
	s := NewStore(NewMemoryStorage(), "sid")

	assert.False(t, s.IsAuthenticated(ctx))
	assert.Nil(t, s.GetUser(ctx))

	user := models.User{ID: "u1", Name: "Admin", Email: "admin@example.com", Role: "admin"}
	require.NoError(t, s.SetAuth(ctx, user, "access", "refresh"))

	assert.True(t, s.IsAuthenticated(ctx))
	assert.Equal(t, "access", s.GetToken(ctx))
	assert.Equal(t, "refresh", s.GetRefreshToken(ctx))
	require.NotNil(t, s.GetUser(ctx))
	assert.Equal(t, user, *s.GetUser(ctx))

	require.NoError(t, s.ClearAuth(ctx))
	assert.False(t, s.IsAuthenticated(ctx))
	assert.Nil(t, s.GetUser(ctx))
	assert.Empty(t, s.GetRefreshToken(ctx))
}

func TestStoreUnparsableUser(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()
	require.NoError(t, storage.Set(ctx, "sid", keyUser, "{not json"))

	assert.Nil(t, NewStore(storage, "sid").GetUser(ctx))
}

func TestNilStoreIsSafe(t *testing.T) {
	ctx := context.Background()
	var s *Store

	assert.NotPanics(t, func() {
		assert.Nil(t, s.GetUser(ctx))
		assert.Empty(t, s.GetToken(ctx))
		assert.Empty(t, s.GetRefreshToken(ctx))
		assert.False(t, s.IsAuthenticated(ctx))
		assert.NoError(t, s.ClearAuth(ctx))
		assert.NoError(t, s.SetAuth(ctx, models.User{}, "a", "b"))
		assert.Empty(t, s.SessionID())
	})
}

func TestAuthenticatedIgnoresUser(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()
	require.NoError(t, storage.Set(ctx, "sid", keyAccessToken, "tok"))

	s := NewStore(storage, "sid")
	assert.True(t, s.IsAuthenticated(ctx))
	assert.Nil(t, s.GetUser(ctx))
}
