package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/mr1hm/go-crisis-finder/internal/models"
)

type SQLiteDB struct {
	db *sql.DB
}

func NewSQLiteDB(path string) (*SQLiteDB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}
	// One connection: SQLite serializes writers anyway, and ":memory:"
	// databases are per connection.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("error while pinging database: %w", err)
	}

	s := &SQLiteDB{
		db: db,
	}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("error while migrating to database: %w", err)
	}

	return s, nil
}

func (s *SQLiteDB) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS lookups (
			id TEXT PRIMARY KEY,
			query TEXT NOT NULL,
			normalized TEXT NOT NULL,
			outcome TEXT NOT NULL,
			center_id TEXT NOT NULL DEFAULT '',
			enriched INTEGER NOT NULL DEFAULT 0,
			created_at INTEGER NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_lookups_created_at ON lookups(created_at);
		CREATE INDEX IF NOT EXISTS idx_lookups_center_id ON lookups(center_id);
	`

	_, err := s.db.Exec(schema)
	return err
}

func (s *SQLiteDB) AddLookup(ctx context.Context, l *models.Lookup) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO lookups (id, query, normalized, outcome, center_id, enriched, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		l.ID, l.Query, l.Normalized, l.Outcome, l.CenterID, l.Enriched, l.CreatedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("error inserting lookup %s: %w", l.ID, err)
	}
	return nil
}

func (s *SQLiteDB) CenterStats(ctx context.Context, since time.Time) ([]models.CenterStat, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT center_id,
		       COUNT(*),
		       SUM(CASE WHEN outcome = 'fallback' THEN 1 ELSE 0 END)
		FROM lookups
		WHERE center_id != '' AND created_at >= ?
		GROUP BY center_id
		ORDER BY COUNT(*) DESC, center_id`,
		since.UnixMilli(),
	)
	if err != nil {
		return nil, fmt.Errorf("error querying center stats: %w", err)
	}
	defer rows.Close()

	var stats []models.CenterStat
	for rows.Next() {
		var st models.CenterStat
		if err := rows.Scan(&st.CenterID, &st.Lookups, &st.Fallbacks); err != nil {
			return nil, fmt.Errorf("error scanning center stats: %w", err)
		}
		stats = append(stats, st)
	}
	return stats, rows.Err()
}

func (s *SQLiteDB) RecentLookups(ctx context.Context, limit int) ([]models.Lookup, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, query, normalized, outcome, center_id, enriched, created_at
		FROM lookups
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("error querying lookups: %w", err)
	}
	defer rows.Close()

	var lookups []models.Lookup
	for rows.Next() {
		var (
			l         models.Lookup
			createdAt int64
		)
		if err := rows.Scan(&l.ID, &l.Query, &l.Normalized, &l.Outcome, &l.CenterID, &l.Enriched, &createdAt); err != nil {
			return nil, fmt.Errorf("error scanning lookup: %w", err)
		}
		l.CreatedAt = time.UnixMilli(createdAt)
		lookups = append(lookups, l)
	}
	return lookups, rows.Err()
}

func (s *SQLiteDB) Close() error {
	return s.db.Close()
}
