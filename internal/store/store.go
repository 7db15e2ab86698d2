// Package store persists privacy-conscious visit tracking and travel map
// interactions in sqlite.
package store

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	_ "modernc.org/sqlite"

	"github.com/somchakravarty/som-dev/internal/tracing"
)

const timeLayout = "2006-01-02 15:04:05"

// Visitor is one tracked page view. Raw IP addresses are never stored.
type Visitor struct {
	ID        int64     `json:"id"`
	HashedIP  string    `json:"hashed_ip"`
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
}

// AdventureCount is the number of times a location's tooltip was opened.
type AdventureCount struct {
	LocationID string `json:"location_id"`
	Views      int64  `json:"views"`
}

// Stats is the admin dashboard summary.
type Stats struct {
	TotalVisitors       int64            `json:"total_visitors"`
	UniqueVisitors      int64            `json:"unique_visitors"`
	VisitorsToday       int64            `json:"visitors_today"`
	VisitorsThisWeek    int64            `json:"visitors_this_week"`
	TotalAdventureViews int64            `json:"total_adventure_views"`
	TopAdventures       []AdventureCount `json:"top_adventures"`
	RecentVisitors      []Visitor        `json:"recent_visitors"`
}

// Store wraps the sqlite database.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS visitors (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		hashed_ip TEXT NOT NULL,
		user_agent TEXT,
		path TEXT,
		timestamp DATETIME NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_visitors_timestamp ON visitors(timestamp)`,
	`CREATE INDEX IF NOT EXISTS idx_visitors_hashed_ip ON visitors(hashed_ip)`,
	`CREATE TABLE IF NOT EXISTS adventure_views (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		location_id TEXT NOT NULL,
		timestamp DATETIME NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_adventure_views_location ON adventure_views(location_id)`,
}

// Open opens (creating if needed) the database at path and applies the
// schema. Use ":memory:" for a throwaway database.
func Open(ctx context.Context, path string, opts ...Option) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	// sqlite allows one writer; a single connection also keeps :memory:
	// databases from splitting across the pool.
	db.SetMaxOpenConns(1)

	s := &Store{db: db, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) migrate(ctx context.Context) error {
	for i, stmt := range migrations {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Ping checks the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) stamp(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

// RecordVisit stores a page view. hashedIP must already be hashed.
func (s *Store) RecordVisit(ctx context.Context, hashedIP, userAgent, path string) error {
	ctx, span := tracing.Start(ctx, "store.RecordVisit", attribute.String("path", path))
	defer span.End()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO visitors (hashed_ip, user_agent, path, timestamp) VALUES (?, ?, ?, ?)`,
		hashedIP, userAgent, path, s.stamp(s.now()),
	)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("record visit: %w", err)
	}
	return nil
}

// RecordAdventureView stores one tooltip opening for locationID.
func (s *Store) RecordAdventureView(ctx context.Context, locationID string) error {
	ctx, span := tracing.Start(ctx, "store.RecordAdventureView", attribute.String("location_id", locationID))
	defer span.End()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO adventure_views (location_id, timestamp) VALUES (?, ?)`,
		locationID, s.stamp(s.now()),
	)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("record adventure view: %w", err)
	}
	return nil
}

// Stats gathers the dashboard summary.
func (s *Store) Stats(ctx context.Context) (*Stats, error) {
	now := s.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	week := now.Add(-7 * 24 * time.Hour)

	stats := &Stats{}
	counts := []struct {
		dst   *int64
		query string
		args  []any
	}{
		{&stats.TotalVisitors, `SELECT COUNT(*) FROM visitors`, nil},
		{&stats.UniqueVisitors, `SELECT COUNT(DISTINCT hashed_ip) FROM visitors`, nil},
		{&stats.VisitorsToday, `SELECT COUNT(*) FROM visitors WHERE timestamp >= ?`, []any{s.stamp(today)}},
		{&stats.VisitorsThisWeek, `SELECT COUNT(*) FROM visitors WHERE timestamp >= ?`, []any{s.stamp(week)}},
		{&stats.TotalAdventureViews, `SELECT COUNT(*) FROM adventure_views`, nil},
	}
	for _, c := range counts {
		if err := s.db.QueryRowContext(ctx, c.query, c.args...).Scan(c.dst); err != nil {
			return nil, fmt.Errorf("stats: %w", err)
		}
	}

	var err error
	if stats.TopAdventures, err = s.AdventureViews(ctx, 10); err != nil {
		return nil, err
	}
	if stats.RecentVisitors, err = s.RecentVisitors(ctx, 50); err != nil {
		return nil, err
	}
	return stats, nil
}

// AdventureViews returns per-location view counts, most viewed first.
func (s *Store) AdventureViews(ctx context.Context, limit int) ([]AdventureCount, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT location_id, COUNT(*) AS views
		FROM adventure_views
		GROUP BY location_id
		ORDER BY views DESC, location_id ASC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("adventure views: %w", err)
	}
	defer rows.Close()

	counts := []AdventureCount{}
	for rows.Next() {
		var c AdventureCount
		if err := rows.Scan(&c.LocationID, &c.Views); err != nil {
			return nil, fmt.Errorf("scan adventure view: %w", err)
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

// RecentVisitors returns the latest visits, newest first.
func (s *Store) RecentVisitors(ctx context.Context, limit int) ([]Visitor, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, hashed_ip, COALESCE(user_agent, ''), COALESCE(path, ''), timestamp
		FROM visitors
		ORDER BY timestamp DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("recent visitors: %w", err)
	}
	defer rows.Close()

	visitors := []Visitor{}
	for rows.Next() {
		var (
			v  Visitor
			ts timestamp
		)
		if err := rows.Scan(&v.ID, &v.HashedIP, &v.UserAgent, &v.Path, &ts); err != nil {
			return nil, fmt.Errorf("scan visitor: %w", err)
		}
		v.Timestamp = ts.Time
		visitors = append(visitors, v)
	}
	return visitors, rows.Err()
}

// DeleteVisitor removes every visit recorded for hashedIP and reports how
// many rows were removed.
func (s *Store) DeleteVisitor(ctx context.Context, hashedIP string) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM visitors WHERE hashed_ip = ?`, hashedIP)
	if err != nil {
		return 0, fmt.Errorf("delete visitor: %w", err)
	}
	return res.RowsAffected()
}

// Cleanup deletes visits and adventure views older than retention and
// returns the number of rows removed.
func (s *Store) Cleanup(ctx context.Context, retention time.Duration) (int64, error) {
	cutoff := s.stamp(s.now().Add(-retention))

	var total int64
	for _, table := range []string{"visitors", "adventure_views"} {
		res, err := s.db.ExecContext(ctx, `DELETE FROM `+table+` WHERE timestamp < ?`, cutoff)
		if err != nil {
			return total, fmt.Errorf("cleanup %s: %w", table, err)
		}
		n, _ := res.RowsAffected()
		total += n
	}
	return total, nil
}

// HashIP hashes ip with salt. The result is stable for a given salt so
// unique visitors can be counted without keeping addresses.
func HashIP(ip, salt string) string {
	sum := sha256.Sum256([]byte(ip + salt))
	return hex.EncodeToString(sum[:])[:16]
}

// timestamp scans DATETIME columns whether the driver hands back a
// time.Time or the stored text.
type timestamp struct {
	time.Time
}

func (t *timestamp) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		t.Time = v.UTC()
		return nil
	case string:
		return t.parse(v)
	case []byte:
		return t.parse(string(v))
	case nil:
		t.Time = time.Time{}
		return nil
	default:
		return fmt.Errorf("unsupported timestamp type %T", src)
	}
}

func (t *timestamp) parse(s string) error {
	for _, layout := range []string{timeLayout, time.RFC3339Nano} {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed.UTC()
			return nil
		}
	}
	return fmt.Errorf("parse timestamp %q", s)
}
