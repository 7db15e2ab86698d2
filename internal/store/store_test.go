package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func newTestStore(t *testing.T) (*Store, *clock) {
	t.Helper()
	c := &clock{t: time.Date(2025, 7, 10, 12, 0, 0, 0, time.UTC)}
	s, err := Open(context.Background(), ":memory:", WithClock(c.now))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s, c
}

func TestOpen_MigrationsAreIdempotent(t *testing.T) {
	s, _ := newTestStore(t)
	require.NoError(t, s.migrate(context.Background()))
	require.NoError(t, s.Ping(context.Background()))
}

func TestStats(t *testing.T) {
	ctx := context.Background()
	s, c := newTestStore(t)

	// ten days ago, then three days ago, then today
	c.t = c.t.Add(-10 * 24 * time.Hour)
	require.NoError(t, s.RecordVisit(ctx, "aaaa", "ua", "/"))
	c.t = c.t.Add(7 * 24 * time.Hour)
	require.NoError(t, s.RecordVisit(ctx, "bbbb", "ua", "/"))
	c.t = c.t.Add(3 * 24 * time.Hour)
	require.NoError(t, s.RecordVisit(ctx, "aaaa", "ua", "/adventures/map"))

	require.NoError(t, s.RecordAdventureView(ctx, "ladakh"))
	require.NoError(t, s.RecordAdventureView(ctx, "ladakh"))
	require.NoError(t, s.RecordAdventureView(ctx, "kilimanjaro"))

	stats, err := s.Stats(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(3), stats.TotalVisitors)
	assert.Equal(t, int64(2), stats.UniqueVisitors)
	assert.Equal(t, int64(1), stats.VisitorsToday)
	assert.Equal(t, int64(2), stats.VisitorsThisWeek)
	assert.Equal(t, int64(3), stats.TotalAdventureViews)
	assert.Equal(t, []AdventureCount{{"ladakh", 2}, {"kilimanjaro", 1}}, stats.TopAdventures)

	require.Len(t, stats.RecentVisitors, 3)
	assert.Equal(t, "/adventures/map", stats.RecentVisitors[0].Path)
	assert.Equal(t, c.t, stats.RecentVisitors[0].Timestamp)
}

func TestStats_Empty(t *testing.T) {
	s, _ := newTestStore(t)

	stats, err := s.Stats(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.TotalVisitors)
	assert.Empty(t, stats.TopAdventures)
	assert.NotNil(t, stats.RecentVisitors)
}

func TestCleanup(t *testing.T) {
	ctx := context.Background()
	s, c := newTestStore(t)

	require.NoError(t, s.RecordVisit(ctx, "old", "ua", "/"))
	require.NoError(t, s.RecordAdventureView(ctx, "ladakh"))
	c.t = c.t.Add(48 * time.Hour)
	require.NoError(t, s.RecordVisit(ctx, "new", "ua", "/"))

	n, err := s.Cleanup(ctx, 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	visitors, err := s.RecentVisitors(ctx, 10)
	require.NoError(t, err)
	require.Len(t, visitors, 1)
	assert.Equal(t, "new", visitors[0].HashedIP)
}

func TestDeleteVisitor(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	require.NoError(t, s.RecordVisit(ctx, "aaaa", "ua", "/"))
	require.NoError(t, s.RecordVisit(ctx, "aaaa", "ua", "/privacy"))
	require.NoError(t, s.RecordVisit(ctx, "bbbb", "ua", "/"))

	n, err := s.DeleteVisitor(ctx, "aaaa")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	n, err = s.DeleteVisitor(ctx, "aaaa")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestHashIP(t *testing.T) {
	a := HashIP("203.0.113.7", "salt")
	assert.Len(t, a, 16)
	assert.Equal(t, a, HashIP("203.0.113.7", "salt"))
	assert.NotEqual(t, a, HashIP("203.0.113.7", "pepper"))
}
