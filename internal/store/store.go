package store

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/monsterdex/monsterdex/internal/monster"
)

//go:embed migrations/*.sql
var migrations embed.FS

// IsDatabasePath reports whether path names a SQLite dataset.
func IsDatabasePath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return true
	}
	return false
}

// OpenDatabase opens the SQLite database and runs migrations
func OpenDatabase(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Set connection pragmas (must be done outside of transactions)
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set journal mode: %w", err)
	}
	if _, err := db.Exec("PRAGMA synchronous = NORMAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set synchronous mode: %w", err)
	}

	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set dialect: %w", err)
	}

	// Suppress goose logging
	goose.SetLogger(goose.NopLogger())

	if err := goose.Up(db, "migrations"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}

// Store reads and writes a dataset kept in SQLite. Each record is stored
// whole as JSON next to the columns used for lookups.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Open opens the database at path and wraps it in a Store.
func Open(path string) (*Store, error) {
	db, err := OpenDatabase(path)
	if err != nil {
		return nil, err
	}
	return NewStore(db), nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Replace swaps the stored dataset for records in one transaction.
func (s *Store) Replace(ctx context.Context, records []monster.Record, source string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM monsters"); err != nil {
		return fmt.Errorf("failed to clear monsters: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO monsters (id, position, name, aka, body) VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, rec := range records {
		body, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("failed to marshal %s: %w", rec.Name.Name, err)
		}
		if _, err := stmt.ExecContext(ctx, rec.ID, i, rec.Name.Name, rec.Name.Aka, string(body)); err != nil {
			return fmt.Errorf("failed to insert %s: %w", rec.Name.Name, err)
		}
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO dataset_meta (key, value) VALUES ('source', ?), ('imported_at', ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, source, time.Now().UTC().Format(time.RFC3339)); err != nil {
		return fmt.Errorf("failed to record import: %w", err)
	}

	return tx.Commit()
}

// Records returns the stored records in import order.
func (s *Store) Records(ctx context.Context) ([]monster.Record, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT body FROM monsters ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("failed to query monsters: %w", err)
	}
	defer rows.Close()

	var records []monster.Record
	err = monster.ReportFallbacks("sqlite", func() error {
		for rows.Next() {
			var body string
			if err := rows.Scan(&body); err != nil {
				return fmt.Errorf("failed to scan monster: %w", err)
			}
			var rec monster.Record
			if err := json.Unmarshal([]byte(body), &rec); err != nil {
				return fmt.Errorf("failed to decode monster: %w", err)
			}
			records = append(records, rec)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

// Dataset loads the stored records as a dataset.
func (s *Store) Dataset(ctx context.Context) (*monster.Dataset, error) {
	records, err := s.Records(ctx)
	if err != nil {
		return nil, err
	}
	return monster.New(records)
}

// Source returns where the stored dataset was imported from.
func (s *Store) Source(ctx context.Context) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, "SELECT value FROM dataset_meta WHERE key = 'source'").Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	return value, err
}

// ReadFile loads a dataset from the SQLite database at path.
func ReadFile(ctx context.Context, path string) (*monster.Dataset, error) {
	s, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer s.Close()
	return s.Dataset(ctx)
}
