package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"deal-checker/models"
	"deal-checker/utils"
)

// dialect captures the few SQL differences between the supported drivers.
type dialect struct {
	driver     string
	idColumn   string
	timeColumn string
	bindvar    func(i int) string
}

var (
	postgresDialect = dialect{
		driver:     "postgres",
		idColumn:   "id SERIAL PRIMARY KEY",
		timeColumn: "TIMESTAMPTZ NOT NULL DEFAULT NOW()",
		bindvar:    func(i int) string { return fmt.Sprintf("$%d", i) },
	}
	sqliteDialect = dialect{
		driver:     "sqlite",
		idColumn:   "id INTEGER PRIMARY KEY AUTOINCREMENT",
		timeColumn: "TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP",
		bindvar:    func(int) string { return "?" },
	}
)

// SQLWriter archives scans into the "scans" table of PostgreSQL or SQLite.
type SQLWriter struct {
	db      *sql.DB
	dialect dialect
}

// NewPostgresWriter connects to PostgreSQL, retrying while the server comes
// up, and makes sure the scans table exists.
func NewPostgresWriter(ctx context.Context, dsn string, retry *utils.RetryConfig) (*SQLWriter, error) {
	return openSQLWriter(ctx, postgresDialect, dsn, retry)
}

// NewSQLiteWriter opens (or creates) the SQLite file at path.
func NewSQLiteWriter(ctx context.Context, path string, retry *utils.RetryConfig) (*SQLWriter, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("sqlite: create output dir: %w", err)
	}
	return openSQLWriter(ctx, sqliteDialect, path, retry)
}

func openSQLWriter(ctx context.Context, d dialect, dsn string, retry *utils.RetryConfig) (*SQLWriter, error) {
	db, err := sql.Open(d.driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("%s: open: %w", d.driver, err)
	}

	if err := retry.Do(ctx, d.driver+" ping", db.PingContext); err != nil {
		_ = db.Close()
		return nil, err
	}

	w := &SQLWriter{db: db, dialect: d}
	if err := w.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: migrate: %w", d.driver, err)
	}
	return w, nil
}

func (w *SQLWriter) migrate(ctx context.Context) error {
	stmts := []string{
		fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS scans (
			%s,
			url             TEXT    NOT NULL,
			title           TEXT    NOT NULL DEFAULT '',
			image_url       TEXT    NOT NULL DEFAULT '',
			price           INTEGER NOT NULL DEFAULT 0,
			km              INTEGER NOT NULL DEFAULT 0,
			ez              TEXT    NOT NULL DEFAULT '',
			rating          TEXT    NOT NULL DEFAULT '',
			market_estimate INTEGER NOT NULL DEFAULT 0,
			potential       INTEGER NOT NULL DEFAULT 0,
			lang            TEXT    NOT NULL DEFAULT 'de',
			created_at      %s
		)`, w.dialect.idColumn, w.dialect.timeColumn),
		`CREATE INDEX IF NOT EXISTS idx_scans_url        ON scans(url)`,
		`CREATE INDEX IF NOT EXISTS idx_scans_created_at ON scans(created_at)`,
	}
	for _, stmt := range stmts {
		if _, err := w.db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// Write inserts one scan.
func (w *SQLWriter) Write(ctx context.Context, s *models.Scan) error {
	cols := []string{"url", "title", "image_url", "price", "km", "ez", "rating",
		"market_estimate", "potential", "lang", "created_at"}
	binds := make([]string, len(cols))
	for i := range cols {
		binds[i] = w.dialect.bindvar(i + 1)
	}

	query := fmt.Sprintf("INSERT INTO scans (%s) VALUES (%s)",
		strings.Join(cols, ", "), strings.Join(binds, ", "))

	_, err := w.db.ExecContext(ctx, query,
		s.URL, s.Title, s.ImageURL, s.Price, s.Km, s.EZ, s.Rating,
		s.MarketEstimate, s.Potential, s.Lang, s.CreatedAt.UTC())
	if err != nil {
		return fmt.Errorf("%s: insert scan: %w", w.dialect.driver, err)
	}
	return nil
}

// Recent returns the newest scans, newest first.
func (w *SQLWriter) Recent(ctx context.Context, limit int) ([]*models.Scan, error) {
	rows, err := w.db.QueryContext(ctx, fmt.Sprintf(`
		SELECT url, title, image_url, price, km, ez, rating, market_estimate, potential, lang, created_at
		FROM scans
		ORDER BY id DESC
		LIMIT %s`, w.dialect.bindvar(1)), limit)
	if err != nil {
		return nil, fmt.Errorf("%s: fetch scans: %w", w.dialect.driver, err)
	}
	defer rows.Close()

	var scans []*models.Scan
	for rows.Next() {
		s := &models.Scan{}
		var created any
		if err := rows.Scan(
			&s.URL, &s.Title, &s.ImageURL, &s.Price, &s.Km, &s.EZ, &s.Rating,
			&s.MarketEstimate, &s.Potential, &s.Lang, &created,
		); err != nil {
			return nil, fmt.Errorf("%s: scan row: %w", w.dialect.driver, err)
		}
		s.CreatedAt = parseTimestamp(created)
		scans = append(scans, s)
	}
	return scans, rows.Err()
}

// parseTimestamp accepts the representations the drivers return for
// created_at.
func parseTimestamp(v any) time.Time {
	var raw string
	switch val := v.(type) {
	case time.Time:
		return val
	case string:
		raw = val
	case []byte:
		raw = string(val)
	default:
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02 15:04:05.999999999-07:00", "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Time{}
}

func (w *SQLWriter) Close() error {
	return w.db.Close()
}
