package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/profgui/profgui-api/internal/models"
)

func newTestStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisStore(client, 24*time.Hour), mr
}

func TestRedisStoreCreateAndGet(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	sess, err := store.Create(ctx, "user-1", models.RoleTeacher)
	require.NoError(t, err)
	require.NotEmpty(t, sess.Token)

	loaded, err := store.Get(ctx, sess.Token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", loaded.UserID)
	assert.Equal(t, models.RoleTeacher, loaded.Role)
	assert.Equal(t, sess.Token, loaded.Token)
}

func TestRedisStoreTokensAreUnique(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	a, err := store.Create(ctx, "user-1", models.RoleStudent)
	require.NoError(t, err)
	b, err := store.Create(ctx, "user-1", models.RoleStudent)
	require.NoError(t, err)
	assert.NotEqual(t, a.Token, b.Token)
}

func TestRedisStoreDeleteInvalidates(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	sess, err := store.Create(ctx, "user-1", models.RoleParent)
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, sess.Token))

	_, err = store.Get(ctx, sess.Token)
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting again stays a no-op.
	require.NoError(t, store.Delete(ctx, sess.Token))
}

func TestRedisStoreExpiry(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	sess, err := store.Create(ctx, "user-1", models.RoleAdmin)
	require.NoError(t, err)

	mr.FastForward(25 * time.Hour)

	_, err = store.Get(ctx, sess.Token)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisStoreUnknownToken(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}
