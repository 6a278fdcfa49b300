package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newClock() *fakeClock { return &fakeClock{t: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)} }

func TestSetGet_HitMiss(t *testing.T) {
	s := NewStore(4, time.Hour)
	ctx := context.Background()

	_, ok, err := s.Get(ctx, "sid-1", "cart")
	require.NoError(t, err)
	assert.False(t, ok, "miss before Set")

	require.NoError(t, s.Set(ctx, "sid-1", "cart", []byte(`[]`)))
	got, ok, err := s.Get(ctx, "sid-1", "cart")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[]`, string(got))
}

func TestSessionsAreIsolated(t *testing.T) {
	s := NewStore(4, 0)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "tab-a", "cart", []byte("a")))
	require.NoError(t, s.Set(ctx, "tab-b", "cart", []byte("b")))

	a, _, _ := s.Get(ctx, "tab-a", "cart")
	b, _, _ := s.Get(ctx, "tab-b", "cart")
	assert.Equal(t, "a", string(a))
	assert.Equal(t, "b", string(b))
}

func TestTTL_SlidingExpiry(t *testing.T) {
	clk := newClock()
	s := NewStore(4, time.Minute, WithClock(clk.Now))
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "sid", "cart", []byte("x")))

	// чтение продлевает жизнь записи
	clk.Advance(50 * time.Second)
	_, ok, _ := s.Get(ctx, "sid", "cart")
	require.True(t, ok)

	clk.Advance(50 * time.Second)
	_, ok, _ = s.Get(ctx, "sid", "cart")
	require.True(t, ok, "expiry must slide on access")

	clk.Advance(61 * time.Second)
	_, ok, _ = s.Get(ctx, "sid", "cart")
	assert.False(t, ok, "expected miss after TTL")
	assert.Equal(t, 0, s.Len())
}

func TestLRUEviction(t *testing.T) {
	s := NewStore(2, 0)
	ctx := context.Background()

	_ = s.Set(ctx, "A", "cart", []byte("a"))
	_ = s.Set(ctx, "B", "cart", []byte("b"))
	// A сделать «свежим»
	_, ok, _ := s.Get(ctx, "A", "cart")
	require.True(t, ok)
	// C вытеснит B
	_ = s.Set(ctx, "C", "cart", []byte("c"))

	_, ok, _ = s.Get(ctx, "B", "cart")
	assert.False(t, ok, "expected B to be evicted")
	_, ok, _ = s.Get(ctx, "A", "cart")
	assert.True(t, ok)
	assert.Equal(t, 2, s.Len())
}

func TestPruneExpiredOnInsert(t *testing.T) {
	clk := newClock()
	s := NewStore(10, time.Second, WithClock(clk.Now))
	ctx := context.Background()

	_ = s.Set(ctx, "old-1", "cart", []byte("1"))
	_ = s.Set(ctx, "old-2", "cart", []byte("2"))
	clk.Advance(2 * time.Second)
	_ = s.Set(ctx, "new", "cart", []byte("3"))

	assert.Equal(t, 1, s.Len())
}

func TestDelete(t *testing.T) {
	s := NewStore(2, 0)
	ctx := context.Background()

	_ = s.Set(ctx, "sid", "cart", []byte("x"))
	require.NoError(t, s.Delete(ctx, "sid", "cart"))
	require.NoError(t, s.Delete(ctx, "sid", "cart"), "second delete is a no-op")

	_, ok, _ := s.Get(ctx, "sid", "cart")
	assert.False(t, ok)
}

func TestCloneImmutability(t *testing.T) {
	s := NewStore(1, 0)
	ctx := context.Background()

	orig := []byte("abc")
	_ = s.Set(ctx, "sid", "cart", orig)
	orig[0] = 'z'

	v1, _, _ := s.Get(ctx, "sid", "cart")
	v1[1] = 'z'

	v2, _, _ := s.Get(ctx, "sid", "cart")
	assert.Equal(t, "abc", string(v2))
}

func TestNewStore_CapacityAtLeastOne(t *testing.T) {
	s := NewStore(0, 0)
	ctx := context.Background()
	_ = s.Set(ctx, "a", "k", []byte("1"))
	_ = s.Set(ctx, "b", "k", []byte("2"))
	assert.Equal(t, 1, s.Len())
}
