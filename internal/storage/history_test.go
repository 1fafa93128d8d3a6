package storage

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignite/outreach-engine/internal/config"
)

func testStore(t *testing.T, maxItems int) *HistoryStore {
	t.Helper()
	mr := miniredis.RunT(t)
	store := NewHistoryStore(config.RedisConfig{
		Addr:            mr.Addr(),
		HistoryTTLHours: 24,
		HistoryMaxItems: maxItems,
	})
	t.Cleanup(func() { store.Close() })
	return store
}

func TestHistoryRecordAndList(t *testing.T) {
	store := testStore(t, 10)
	ctx := context.Background()

	first := HistoryEntry{ID: "a1", AnalyzedAt: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC), EmailType: "sales", OverallScore: 72, LetterGrade: "C", SubjectLen: 28, BodyLen: 540}
	second := HistoryEntry{ID: "b2", AnalyzedAt: time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC), EmailType: "follow_up", OverallScore: 81, LetterGrade: "B", SubjectLen: 22, BodyLen: 210}

	require.NoError(t, store.Record(ctx, "client-1", first))
	require.NoError(t, store.Record(ctx, "client-1", second))

	entries, err := store.List(ctx, "client-1", 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	// Newest first.
	assert.Equal(t, "b2", entries[0].ID)
	assert.Equal(t, "a1", entries[1].ID)
	assert.Equal(t, 81, entries[0].OverallScore)
}

func TestHistoryTrimsToCap(t *testing.T) {
	store := testStore(t, 3)
	ctx := context.Background()

	for _, id := range []string{"e1", "e2", "e3", "e4", "e5"} {
		require.NoError(t, store.Record(ctx, "client-1", HistoryEntry{ID: id}))
	}

	entries, err := store.List(ctx, "client-1", 10)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "e5", entries[0].ID)
	assert.Equal(t, "e3", entries[2].ID)
}

func TestHistoryIsolatedPerClient(t *testing.T) {
	store := testStore(t, 10)
	ctx := context.Background()

	require.NoError(t, store.Record(ctx, "client-1", HistoryEntry{ID: "mine"}))

	entries, err := store.List(ctx, "client-2", 10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestHistoryExpires(t *testing.T) {
	mr := miniredis.RunT(t)
	store := NewHistoryStore(config.RedisConfig{Addr: mr.Addr(), HistoryTTLHours: 1, HistoryMaxItems: 10})
	t.Cleanup(func() { store.Close() })
	ctx := context.Background()

	require.NoError(t, store.Record(ctx, "client-1", HistoryEntry{ID: "old"}))
	mr.FastForward(2 * time.Hour)

	entries, err := store.List(ctx, "client-1", 10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
