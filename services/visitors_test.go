package services

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"legal_ai_site/services/navigation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingView struct{ unmounts *int32 }

func (v countingView) Unmount() { atomic.AddInt32(v.unmounts, 1) }

func newTestVisitorStore(ttl time.Duration, unmounts *int32, opts ...StoreOption) *VisitorStore {
	page := navigation.PageFunc(func(ctx context.Context, m navigation.Match) (navigation.View, error) {
		return countingView{unmounts: unmounts}, nil
	})
	table := navigation.NewTable(navigation.Route{Pattern: "/", Name: "home", Page: page})
	return NewVisitorStore(ttl, func() *navigation.Orchestrator {
		return navigation.New(table, navigation.TimedTransition{})
	}, opts...)
}

func TestVisitorStore_Get(t *testing.T) {
	var unmounts int32
	store := newTestVisitorStore(time.Minute, &unmounts)
	defer store.Close()

	a := store.Get("v1", "tab-a")
	assert.Same(t, a, store.Get("v1", "tab-a"))
	assert.NotSame(t, a, store.Get("v1", "tab-b"), "tabs of one visitor never share navigation")
	assert.NotSame(t, a, store.Get("v2", "tab-a"))
	assert.Equal(t, 3, store.Len())
	assert.Equal(t, 2, store.Tabs("v1"))
}

func TestVisitorStore_Lookup(t *testing.T) {
	var unmounts int32
	store := newTestVisitorStore(time.Minute, &unmounts)
	defer store.Close()

	_, ok := store.Lookup("v1", "tab-a")
	assert.False(t, ok)
	assert.Equal(t, 0, store.Len(), "lookups never allocate")

	a := store.Get("v1", "tab-a")
	got, ok := store.Lookup("v1", "tab-a")
	require.True(t, ok)
	assert.Same(t, a, got)
}

func TestVisitorStore_Sweep(t *testing.T) {
	var unmounts int32
	store := newTestVisitorStore(time.Minute, &unmounts)
	defer store.Close()

	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	idle := store.Get("idle", "t")
	_, _, err := idle.Visit(context.Background(), "/", nil)
	require.NoError(t, err)

	now = now.Add(50 * time.Second)
	store.Get("active", "t")

	now = now.Add(30 * time.Second)
	assert.Equal(t, 1, store.Sweep())
	assert.Equal(t, 1, store.Len())
	assert.Equal(t, 0, store.Tabs("idle"))
	assert.Equal(t, int32(1), atomic.LoadInt32(&unmounts))

	_, err = idle.Navigate("/", nil)
	assert.ErrorIs(t, err, navigation.ErrClosed)

	// A returning visitor gets a fresh orchestrator.
	assert.NotSame(t, idle, store.Get("idle", "t"))
}

func TestVisitorStore_EvictsLeastRecentlyUsed(t *testing.T) {
	var unmounts int32
	store := newTestVisitorStore(time.Hour, &unmounts, WithMaxSessions(2))
	defer store.Close()

	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time {
		now = now.Add(time.Second)
		return now
	}

	first := store.Get("a", "t")
	second := store.Get("b", "t")
	store.Get("a", "t")

	third := store.Get("c", "t")
	assert.Equal(t, 2, store.Len())

	_, err := second.Navigate("/", nil)
	assert.ErrorIs(t, err, navigation.ErrClosed, "least recently used tab is closed")
	_, err = first.Navigate("/", nil)
	assert.NoError(t, err)

	got, ok := store.Lookup("c", "t")
	require.True(t, ok)
	assert.Same(t, third, got)
	_, ok = store.Lookup("b", "t")
	assert.False(t, ok)
}

func TestVisitorStore_CapsTabsPerVisitor(t *testing.T) {
	var unmounts int32
	store := newTestVisitorStore(time.Hour, &unmounts, WithMaxTabs(2))
	defer store.Close()

	oldest := store.Get("v", "1")
	store.Get("other", "1")
	store.Get("v", "2")
	store.Get("v", "3")

	assert.Equal(t, 2, store.Tabs("v"))
	assert.Equal(t, 3, store.Len())
	_, ok := store.Lookup("v", "1")
	assert.False(t, ok)
	_, err := oldest.Navigate("/", nil)
	assert.ErrorIs(t, err, navigation.ErrClosed)

	_, ok = store.Lookup("other", "1")
	assert.True(t, ok, "other visitors keep their tabs")
}

func TestVisitorStore_Close(t *testing.T) {
	var unmounts int32
	store := newTestVisitorStore(time.Minute, &unmounts)
	store.StartCleanup(time.Hour)

	for _, id := range []string{"a", "b"} {
		_, _, err := store.Get(id, "t").Visit(context.Background(), "/", nil)
		require.NoError(t, err)
	}

	store.Close()
	store.Close()
	assert.Equal(t, 0, store.Len())
	assert.Equal(t, int32(2), atomic.LoadInt32(&unmounts))
}
