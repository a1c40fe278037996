// Package docstore persists the trip's backing document: one row per
// trip id, with each collection stored as a JSON field. It is the Go
// stand-in for the remote document store the planner syncs through;
// every client pointed at the same database file shares the document,
// and conflicting writes resolve last-write-wins.
package docstore

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Open opens (or creates) the sqlite database at dbPath and applies any
// pending schema migrations.
func Open(dbPath string) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?cache=shared&mode=rwc&_journal_mode=WAL", dbPath)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := runMigrations(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}

func runMigrations(db *sql.DB) error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to load migration source: %w", err)
	}

	driver, err := migratesqlite.WithInstance(db, &migratesqlite.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

// Document is one trip's backing record. A nil field means the remote
// document has never held that collection; readers tolerate missing
// fields.
type Document struct {
	TripID    string
	Items     []byte
	Spots     []byte
	Schedule  []byte
	Expenses  []byte
	Rev       int64
	UpdatedBy string
	UpdatedAt time.Time
}

// Field names addressable by Merge.
const (
	FieldItems    = "items"
	FieldSpots    = "spots"
	FieldSchedule = "schedule"
	FieldExpenses = "expenses"
)

func validField(field string) bool {
	switch field {
	case FieldItems, FieldSpots, FieldSchedule, FieldExpenses:
		return true
	}
	return false
}

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Get returns the document for tripID, or (nil, nil) when it does not
// exist yet.
func (s *Store) Get(ctx context.Context, tripID string) (*Document, error) {
	doc := &Document{TripID: tripID}
	var items, spots, schedule, expenses, updatedBy sql.NullString
	err := s.db.QueryRowContext(ctx, `
		SELECT items, spots, schedule, expenses, rev, updated_by, updated_at
		FROM trip_documents WHERE trip_id = ?
	`, tripID).Scan(&items, &spots, &schedule, &expenses, &doc.Rev, &updatedBy, &doc.UpdatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get document: %w", err)
	}

	if items.Valid {
		doc.Items = []byte(items.String)
	}
	if spots.Valid {
		doc.Spots = []byte(spots.String)
	}
	if schedule.Valid {
		doc.Schedule = []byte(schedule.String)
	}
	if expenses.Valid {
		doc.Expenses = []byte(expenses.String)
	}
	doc.UpdatedBy = updatedBy.String

	return doc, nil
}

// Merge writes one collection field of the document, leaving every other
// field untouched, and bumps the revision counter. A missing document is
// created holding only that field. Each call is atomic; there is no
// transaction spanning two fields.
func (s *Store) Merge(ctx context.Context, tripID, field string, payload []byte, writerID string) error {
	if !validField(field) {
		return fmt.Errorf("unknown document field %q", field)
	}

	// The field name is whitelisted above, never caller-controlled SQL.
	query := fmt.Sprintf(`
		UPDATE trip_documents
		SET %s = ?, rev = rev + 1, updated_by = ?, updated_at = datetime('now')
		WHERE trip_id = ?
	`, field)

	result, err := s.db.ExecContext(ctx, query, string(payload), writerID, tripID)
	if err != nil {
		return fmt.Errorf("failed to merge field %s: %w", field, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows > 0 {
		return nil
	}

	insert := fmt.Sprintf(`
		INSERT INTO trip_documents (trip_id, %s, updated_by) VALUES (?, ?, ?)
	`, field)
	if _, err := s.db.ExecContext(ctx, insert, tripID, string(payload), writerID); err != nil {
		return fmt.Errorf("failed to insert document for field %s: %w", field, err)
	}
	return nil
}

// Seed inserts the full default document only when no document exists
// yet, and reports whether it did. Concurrent seeders race safely: at
// most one insert wins.
func (s *Store) Seed(ctx context.Context, doc *Document, writerID string) (bool, error) {
	result, err := s.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO trip_documents (trip_id, items, spots, schedule, expenses, updated_by)
		VALUES (?, ?, ?, ?, ?, ?)
	`, doc.TripID, string(doc.Items), string(doc.Spots), string(doc.Schedule), string(doc.Expenses), writerID)
	if err != nil {
		return false, fmt.Errorf("failed to seed document: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rows > 0, nil
}
