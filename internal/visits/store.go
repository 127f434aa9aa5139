// Package visits keeps privacy-conscious visitor records: client IPs are
// salted and hashed before they reach the database, requests carrying
// Do Not Track are skipped, and old rows are purged after a retention period.
package visits

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/Zachkp/folio/internal/timeline"
)

// Retention is how long visitor rows are kept by the periodic cleanup.
const Retention = 365 * 24 * time.Hour

const recentLimit = 50

const schema = `
CREATE TABLE IF NOT EXISTS visitors (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	hashed_ip TEXT NOT NULL,
	user_agent TEXT NOT NULL DEFAULT '',
	path TEXT NOT NULL DEFAULT '',
	tenant TEXT NOT NULL DEFAULT '',
	timestamp INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_visitors_timestamp ON visitors (timestamp);`

type Visit struct {
	ID        int64     `json:"id"`
	HashedIP  string    `json:"hashedIp"`
	UserAgent string    `json:"userAgent"`
	Path      string    `json:"path"`
	Tenant    string    `json:"tenant"`
	Timestamp time.Time `json:"timestamp"`
}

type Stats struct {
	TotalVisitors    int64            `json:"totalVisitors"`
	UniqueVisitors   int64            `json:"uniqueVisitors"`
	VisitorsToday    int64            `json:"visitorsToday"`
	VisitorsThisWeek int64            `json:"visitorsThisWeek"`
	ByTenant         map[string]int64 `json:"byTenant"`
	RecentVisitors   []Visit          `json:"recentVisitors"`
}

type Store struct {
	db    *sql.DB
	clock timeline.Clock
}

type Option func(*Store)

// WithClock replaces the wall clock used for timestamps and stat windows.
func WithClock(c timeline.Clock) Option {
	return func(s *Store) { s.clock = c }
}

// Open opens (creating if needed) the sqlite database at path.
func Open(ctx context.Context, path string, opts ...Option) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open visits database: %w", err)
	}
	// sqlite allows a single writer; serialising here avoids SQLITE_BUSY
	// from the background recorders.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping visits database: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create visitors table: %w", err)
	}

	s := &Store{db: db, clock: timeline.SystemClock}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) now() time.Time {
	return s.clock.Now().UTC()
}

// Record inserts v. A zero Timestamp is replaced by the store's clock.
func (s *Store) Record(ctx context.Context, v Visit) error {
	ts := v.Timestamp
	if ts.IsZero() {
		ts = s.now()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO visitors (hashed_ip, user_agent, path, tenant, timestamp)
		VALUES (?, ?, ?, ?, ?)`,
		v.HashedIP, v.UserAgent, v.Path, v.Tenant, ts.Unix())
	if err != nil {
		return fmt.Errorf("record visit: %w", err)
	}
	return nil
}

// Cleanup deletes rows older than olderThan and returns how many went.
func (s *Store) Cleanup(ctx context.Context, olderThan time.Duration) (int64, error) {
	cutoff := s.now().Add(-olderThan).Unix()
	res, err := s.db.ExecContext(ctx, `DELETE FROM visitors WHERE timestamp < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("cleanup visits: %w", err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}

// Stats summarises the stored visits. "Today" starts at midnight UTC and
// "this week" is the trailing seven days.
func (s *Store) Stats(ctx context.Context) (*Stats, error) {
	now := s.now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	weekAgo := now.AddDate(0, 0, -7)

	stats := &Stats{ByTenant: map[string]int64{}, RecentVisitors: []Visit{}}

	counts := []struct {
		query string
		args  []any
		dst   *int64
	}{
		{`SELECT COUNT(*) FROM visitors`, nil, &stats.TotalVisitors},
		{`SELECT COUNT(DISTINCT hashed_ip) FROM visitors`, nil, &stats.UniqueVisitors},
		{`SELECT COUNT(*) FROM visitors WHERE timestamp >= ?`, []any{midnight.Unix()}, &stats.VisitorsToday},
		{`SELECT COUNT(*) FROM visitors WHERE timestamp >= ?`, []any{weekAgo.Unix()}, &stats.VisitorsThisWeek},
	}
	for _, c := range counts {
		if err := s.db.QueryRowContext(ctx, c.query, c.args...).Scan(c.dst); err != nil {
			return nil, fmt.Errorf("visit stats: %w", err)
		}
	}

	if err := s.byTenant(ctx, stats.ByTenant); err != nil {
		return nil, err
	}

	recent, err := s.recent(ctx, recentLimit)
	if err != nil {
		return nil, err
	}
	stats.RecentVisitors = recent
	return stats, nil
}

func (s *Store) byTenant(ctx context.Context, into map[string]int64) error {
	rows, err := s.db.QueryContext(ctx, `SELECT tenant, COUNT(*) FROM visitors GROUP BY tenant`)
	if err != nil {
		return fmt.Errorf("visits by tenant: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			tenant string
			n      int64
		)
		if err := rows.Scan(&tenant, &n); err != nil {
			return fmt.Errorf("scan tenant count: %w", err)
		}
		into[tenant] = n
	}
	return rows.Err()
}

func (s *Store) recent(ctx context.Context, limit int) ([]Visit, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, hashed_ip, user_agent, path, tenant, timestamp
		FROM visitors
		ORDER BY timestamp DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("recent visits: %w", err)
	}
	defer rows.Close()

	visits := []Visit{}
	for rows.Next() {
		var (
			v  Visit
			ts int64
		)
		if err := rows.Scan(&v.ID, &v.HashedIP, &v.UserAgent, &v.Path, &v.Tenant, &ts); err != nil {
			return nil, fmt.Errorf("scan visit: %w", err)
		}
		v.Timestamp = time.Unix(ts, 0).UTC()
		visits = append(visits, v)
	}
	return visits, rows.Err()
}
