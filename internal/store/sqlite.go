package store

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/nhle/notebook/internal/model"
)

// SQLiteStore implements the Store interface using a local SQLite database.
type SQLiteStore struct {
	db *sqlx.DB
}

var _ Store = (*SQLiteStore)(nil)

// NewSQLiteStore opens (or creates) a SQLite database at dbPath,
// enables WAL mode, and runs any pending schema migrations.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sqlx.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}

	// Single user session; one connection also keeps :memory: databases
	// coherent across the pool.
	db.SetMaxOpenConns(1)

	// Enable WAL mode for better concurrent read performance.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	// Enable foreign keys.
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.runMigrations(); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	slog.Debug("sqlite store opened", "path", dbPath)
	return s, nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// runMigrations checks the current schema version and applies any
// outstanding migrations in order.
func (s *SQLiteStore) runMigrations() error {
	currentVersion := 0

	// Check if schema_version table exists.
	var tableCount int
	err := s.db.Get(
		&tableCount,
		"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	)
	if err != nil {
		return fmt.Errorf("checking schema_version table: %w", err)
	}

	if tableCount > 0 {
		err = s.db.Get(&currentVersion, "SELECT COALESCE(MAX(version), 0) FROM schema_version")
		if err != nil {
			return fmt.Errorf("reading schema version: %w", err)
		}
	}

	for _, m := range migrations {
		if m.version <= currentVersion {
			continue
		}
		if _, err := s.db.Exec(m.sql); err != nil {
			return fmt.Errorf("applying migration v%d: %w", m.version, err)
		}
		slog.Debug("applied migration", "version", m.version)
	}

	return nil
}

// boolToInt converts a boolean to 0 or 1 for SQLite storage.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// scanEntry scans an entry row, building the task payload for task rows.
func scanEntry(rows interface{ Scan(dest ...interface{}) error }) (model.Entry, error) {
	var (
		e            model.Entry
		kind         string
		collectionID *string
		dueDate      *time.Time
		completedInt int
		completedAt  *time.Time
		priority     int
		deletedAt    *time.Time
	)

	err := rows.Scan(
		&e.ID, &kind, &e.Title, &e.Body,
		&collectionID, &e.SortOrder,
		&dueDate, &completedInt, &completedAt, &priority,
		&e.CreatedAt, &e.UpdatedAt, &deletedAt,
	)
	if err != nil {
		return model.Entry{}, fmt.Errorf("scanning entry row: %w", err)
	}

	e.Kind = model.EntryKind(kind)
	e.CollectionID = collectionID
	e.DeletedAt = deletedAt
	if e.Kind == model.KindTask {
		e.Task = &model.TaskDetail{
			DueDate:     dueDate,
			Completed:   completedInt != 0,
			CompletedAt: completedAt,
			Priority:    priority,
		}
	}

	return e, nil
}

// scanCollection scans a collection row.
func scanCollection(rows interface{ Scan(dest ...interface{}) error }) (model.Collection, error) {
	var (
		c           model.Collection
		pinnedInt   int
		archivedInt int
		systemInt   int
		deletedAt   *time.Time
	)

	err := rows.Scan(
		&c.ID, &c.Name, &c.Color, &c.Icon,
		&c.SortOrder, &pinnedInt, &archivedInt, &systemInt,
		&c.CreatedAt, &c.UpdatedAt, &deletedAt,
	)
	if err != nil {
		return model.Collection{}, fmt.Errorf("scanning collection row: %w", err)
	}

	c.Pinned = pinnedInt != 0
	c.Archived = archivedInt != 0
	c.System = systemInt != 0
	c.DeletedAt = deletedAt

	return c, nil
}

// scanChecklistItem scans a checklist_items row.
func scanChecklistItem(rows interface{ Scan(dest ...interface{}) error }) (model.ChecklistItem, error) {
	var (
		item       model.ChecklistItem
		checkedInt int
		deletedAt  *time.Time
	)

	err := rows.Scan(
		&item.ID, &item.ChecklistID, &item.Title, &checkedInt,
		&item.SortOrder, &item.CreatedAt, &item.UpdatedAt, &deletedAt,
	)
	if err != nil {
		return model.ChecklistItem{}, fmt.Errorf("scanning checklist item row: %w", err)
	}

	item.Checked = checkedInt != 0
	item.DeletedAt = deletedAt
	return item, nil
}
