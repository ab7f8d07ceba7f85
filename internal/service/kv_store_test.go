package service

import (
	"context"
	"testing"
	"time"

	"teleradiology-api/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exerciseStore(t *testing.T, store KeyValueStore, expire func(time.Duration)) {
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "access_token:u1:t1", "1", time.Minute))
	require.NoError(t, store.Set(ctx, "access_token:u1:t2", "1", time.Minute))
	require.NoError(t, store.Set(ctx, "access_token:u2:t1", "1", time.Minute))

	ok, err := store.Exists(ctx, "access_token:u1:t1")
	require.NoError(t, err)
	assert.True(t, ok)

	v, err := store.Get(ctx, "access_token:u2:t1")
	require.NoError(t, err)
	assert.Equal(t, "1", v)

	_, err = store.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, store.DeleteByPrefix(ctx, "access_token:u1:"))
	ok, _ = store.Exists(ctx, "access_token:u1:t2")
	assert.False(t, ok)
	ok, _ = store.Exists(ctx, "access_token:u2:t1")
	assert.True(t, ok)

	require.NoError(t, store.Set(ctx, "short", "x", time.Second))
	expire(2 * time.Second)
	ok, _ = store.Exists(ctx, "short")
	assert.False(t, ok)

	type payload struct{ N int }
	require.NoError(t, SetJSON(ctx, store, "json", payload{N: 7}, time.Minute))
	var out payload
	hit, err := GetJSON(ctx, store, "json", &out)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, 7, out.N)

	hit, err = GetJSON(ctx, store, "nope", &out)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestRedisStore(t *testing.T) {
	client, mr := testutil.NewRedis(t)
	exerciseStore(t, NewRedisStore(client), mr.FastForward)
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore().(*memoryStore)
	now := time.Now()
	store.now = func() time.Time { return now }
	exerciseStore(t, store, func(d time.Duration) { now = now.Add(d) })
}
