package cache

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_GetRespectsTTL(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC))
	store := New(clock)

	store.Set("metrics-t2-rf", "payload", time.Hour)

	data, ok := store.Get("metrics-t2-rf")
	require.True(t, ok)
	assert.Equal(t, "payload", data)

	// Exatamente no limite ainda é válido
	clock.Advance(time.Hour)
	_, ok = store.Get("metrics-t2-rf")
	assert.True(t, ok)

	clock.Advance(time.Millisecond)
	_, ok = store.Get("metrics-t2-rf")
	assert.False(t, ok)

	// Get remove a entrada expirada
	assert.False(t, store.Has("metrics-t2-rf"))
}

func TestStore_GetStaleIgnoresExpiry(t *testing.T) {
	clock := clockwork.NewFakeClock()
	store := New(clock)

	store.Set("versions-t2-rf", 42, time.Minute)
	clock.Advance(48 * time.Hour)

	data, ok := store.GetStale("versions-t2-rf")
	require.True(t, ok)
	assert.Equal(t, 42, data)

	// GetStale não remove
	assert.True(t, store.Has("versions-t2-rf"))

	store.Delete("versions-t2-rf")
	_, ok = store.GetStale("versions-t2-rf")
	assert.False(t, ok)
}

func TestStore_SetOverwrites(t *testing.T) {
	clock := clockwork.NewFakeClock()
	store := New(clock)

	store.Set("k", "first", time.Minute)
	clock.Advance(2 * time.Minute)
	store.Set("k", "second", time.Minute)

	data, ok := store.Get("k")
	require.True(t, ok)
	assert.Equal(t, "second", data)

	ts, ok := store.Timestamp("k")
	require.True(t, ok)
	assert.Equal(t, clock.Now(), ts)
}

func TestStore_Clear(t *testing.T) {
	store := New(clockwork.NewFakeClock())

	store.Set(MetricsKey("a"), 1, time.Hour)
	store.Set(VersionsKey("a"), 2, time.Hour)
	store.Set(BulkVersionsKey, 3, time.Hour)
	assert.Equal(t, 3, store.Len())

	store.Clear()

	assert.Equal(t, 0, store.Len())
	_, ok := store.GetStale(MetricsKey("a"))
	assert.False(t, ok)
}

func TestKeys(t *testing.T) {
	assert.Equal(t, "metrics-t2-rf", MetricsKey("t2-rf"))
	assert.Equal(t, "versions-beeline-rf", VersionsKey("beeline-rf"))
}

type payload struct {
	Name  string
	Items []int
}

func TestTyped(t *testing.T) {
	clock := clockwork.NewFakeClock()
	store := New(clock)
	typed := NewTyped[payload](store)

	_, ok := typed.Get("missing")
	assert.False(t, ok)

	typed.Set("p", payload{Name: "a", Items: []int{1, 2}}, time.Hour)

	got, ok := typed.Get("p")
	require.True(t, ok)
	assert.Equal(t, "a", got.Name)

	clock.Advance(2 * time.Hour)
	_, ok = typed.Get("p")
	assert.False(t, ok)

	typed.Set("p", payload{Name: "b"}, time.Hour)
	clock.Advance(2 * time.Hour)
	stale, ok := typed.GetStale("p")
	require.True(t, ok)
	assert.Equal(t, "b", stale.Name)

	// Tipo diferente na mesma chave é tratado como ausente
	store.Set("other", "string", time.Hour)
	_, ok = typed.Get("other")
	assert.False(t, ok)
}

func TestStore_PeekKeepsExpiredEntries(t *testing.T) {
	clock := clockwork.NewFakeClock()
	store := New(clock)

	_, _, ok := store.Peek("metrics-beeline-rf")
	assert.False(t, ok)

	store.Set("metrics-beeline-rf", "payload", time.Hour)

	data, fresh, ok := store.Peek("metrics-beeline-rf")
	require.True(t, ok)
	assert.True(t, fresh)
	assert.Equal(t, "payload", data)

	clock.Advance(2 * time.Hour)

	data, fresh, ok = store.Peek("metrics-beeline-rf")
	require.True(t, ok)
	assert.False(t, fresh)
	assert.Equal(t, "payload", data)
	assert.True(t, store.Has("metrics-beeline-rf"))

	typed := NewTyped[string](store)
	value, fresh, ok := typed.Peek("metrics-beeline-rf")
	require.True(t, ok)
	assert.False(t, fresh)
	assert.Equal(t, "payload", *value)
}
