package session

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Hour)

	_, err := store.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	s := New("s1")
	s.Login(RoleInvestor)
	require.NoError(t, store.Save(ctx, s))
	assert.False(t, s.CreatedAt.IsZero())

	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, ViewInvestorDashboard, got.CurrentView)

	// stored copy is isolated from the caller
	got.Navigate(ViewMessages)
	again, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, ViewInvestorDashboard, again.CurrentView)

	require.NoError(t, store.Delete(ctx, "s1"))
	_, err = store.Get(ctx, "s1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemoryStore_Expiry(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Minute)
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	require.NoError(t, store.Save(ctx, New("s1")))
	assert.Equal(t, 1, store.Len())

	now = now.Add(2 * time.Minute)
	_, err := store.Get(ctx, "s1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.Equal(t, 0, store.Len())
}

func TestMemoryStore_SaveEvictsExpired(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Minute)
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	for i := 0; i < 1000; i++ {
		require.NoError(t, store.Save(ctx, New(fmt.Sprintf("s%d", i))))
	}
	assert.Equal(t, 1000, store.Len())

	now = now.Add(time.Hour)
	require.NoError(t, store.Save(ctx, New("fresh")))
	assert.Equal(t, 1, store.Len())

	_, err := store.Get(ctx, "fresh")
	assert.NoError(t, err)
}

func TestMemoryStore_SessionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Hour)

	a, b := New("a"), New("b")
	a.Login(RoleInvestor)
	require.NoError(t, store.Save(ctx, a))
	require.NoError(t, store.Save(ctx, b))

	gotB, err := store.Get(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, RoleNone, gotB.UserType)
	assert.Equal(t, ViewLanding, gotB.CurrentView)
}

func TestSessionCodec(t *testing.T) {
	s := New("s1")
	s.Login(RoleEntrepreneur)
	s.Navigate(ViewNewProject)
	require.NoError(t, s.FormNext())

	raw, err := encodeSession(s)
	require.NoError(t, err)

	got, err := decodeSession(raw)
	require.NoError(t, err)
	assert.Equal(t, s.CurrentView, got.CurrentView)
	assert.Equal(t, s.UserType, got.UserType)
	assert.Equal(t, FlowProjectSubmission, got.FormFlow)
	require.NotNil(t, got.Form)
	assert.Equal(t, 2, got.Form.Current)

	_, err = decodeSession([]byte("{"))
	assert.Error(t, err)
}

func TestRedisStore_KeyPrefix(t *testing.T) {
	store := NewRedisStoreWithClient(redis.NewClient(&redis.Options{Addr: "localhost:0"}), "", time.Minute)
	defer store.Close()

	assert.Equal(t, "fidexia:session:abc", store.key("abc"))
}

func TestRedisStore_RoundTrip(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}
	ctx := context.Background()
	store, err := NewRedisStore(RedisConfig{Addr: addr}, time.Minute)
	require.NoError(t, err)
	defer store.Close()

	s := New("redis-test")
	s.Login(RoleInvestor)
	require.NoError(t, store.Save(ctx, s))

	got, err := store.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, ViewInvestorDashboard, got.CurrentView)

	require.NoError(t, store.Delete(ctx, s.ID))
	_, err = store.Get(ctx, s.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
