package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eadirect/ea-catalog/internal/core/ports"
)

func newTestStore(t *testing.T) (*IdempotencyStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewIdempotencyStore(client, time.Hour), mr
}

func TestIdempotencyStore_SaveThenGet(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	_, found, err := store.Get(ctx, "u1:abc")
	require.NoError(t, err)
	assert.False(t, found)

	resp := ports.StoredResponse{Status: 201, ContentType: "application/json", Body: []byte(`{"id":"x"}`)}
	saved, err := store.Save(ctx, "u1:abc", resp)
	require.NoError(t, err)
	assert.True(t, saved)

	got, found, err := store.Get(ctx, "u1:abc")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, resp, *got)

	assert.Equal(t, time.Hour, mr.TTL("idempotency:u1:abc"))
}

func TestIdempotencyStore_FirstResponseWins(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	_, err := store.Save(ctx, "k", ports.StoredResponse{Status: 201, Body: []byte("first")})
	require.NoError(t, err)

	saved, err := store.Save(ctx, "k", ports.StoredResponse{Status: 400, Body: []byte("second")})
	require.NoError(t, err)
	assert.False(t, saved)

	got, _, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "first", string(got.Body))
}

func TestIdempotencyStore_Expires(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	_, err := store.Save(ctx, "k", ports.StoredResponse{Status: 201})
	require.NoError(t, err)

	mr.FastForward(2 * time.Hour)

	_, found, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestNewIdempotencyStore_DefaultTTL(t *testing.T) {
	store := NewIdempotencyStore(nil, 0)
	assert.Equal(t, 24*time.Hour, store.ttl)
}
