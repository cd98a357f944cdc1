package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nhle/notebook/internal/model"
)

// collectionColumns is the canonical column order expected by scanCollection.
const collectionColumns = `id, name, color, icon, sort_order, pinned,
	archived, system, created_at, updated_at, deleted_at`

// ListCollections retrieves all non-deleted collections, optionally
// including archived ones. Pinned collections sort first, then manual
// order; the system collection's reserved order places it last.
func (s *SQLiteStore) ListCollections(ctx context.Context, includeArchived bool) ([]model.Collection, error) {
	query := "SELECT " + collectionColumns + " FROM collections WHERE deleted_at IS NULL"
	if !includeArchived {
		query += " AND archived = 0"
	}
	query += " ORDER BY pinned DESC, sort_order, created_at"

	rows, err := s.db.QueryxContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying collections: %w", err)
	}
	defer rows.Close()

	var collections []model.Collection
	for rows.Next() {
		c, err := scanCollection(rows)
		if err != nil {
			return nil, err
		}
		collections = append(collections, c)
	}
	return collections, rows.Err()
}

// GetCollectionByID retrieves a single non-deleted collection by ID.
func (s *SQLiteStore) GetCollectionByID(ctx context.Context, id string) (*model.Collection, error) {
	row := s.db.QueryRowxContext(ctx,
		"SELECT "+collectionColumns+" FROM collections WHERE id = ? AND deleted_at IS NULL", id)

	c, err := scanCollection(row)
	if err != nil {
		return nil, fmt.Errorf("getting collection %s: %w", id, err)
	}
	return &c, nil
}

// GetSystemCollection returns the singleton system collection, archived or
// not, or (nil, nil) when it has not been created yet.
func (s *SQLiteStore) GetSystemCollection(ctx context.Context) (*model.Collection, error) {
	row := s.db.QueryRowxContext(ctx,
		"SELECT "+collectionColumns+" FROM collections WHERE system = 1 AND deleted_at IS NULL")

	c, err := scanCollection(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("getting system collection: %w", err)
	}
	return &c, nil
}

// CreateCollection inserts a new collection. Generates a UUID if ID is
// empty and defaults sort_order to max+1 among user collections.
func (s *SQLiteStore) CreateCollection(ctx context.Context, c model.Collection) (model.Collection, error) {
	if strings.TrimSpace(c.Name) == "" {
		return model.Collection{}, fmt.Errorf("collection name must not be empty")
	}
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now
	c.DeletedAt = nil

	if c.SortOrder == 0 && !c.System {
		var maxOrder int
		err := s.db.GetContext(ctx, &maxOrder, `
			SELECT COALESCE(MAX(sort_order), -1) FROM collections
			WHERE system = 0 AND deleted_at IS NULL`)
		if err != nil {
			return model.Collection{}, fmt.Errorf("getting max sort_order: %w", err)
		}
		c.SortOrder = maxOrder + 1
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO collections (
			id, name, color, icon, sort_order, pinned, archived, system,
			created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.Name, c.Color, c.Icon, c.SortOrder,
		boolToInt(c.Pinned), boolToInt(c.Archived), boolToInt(c.System),
		c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return model.Collection{}, fmt.Errorf("creating collection: %w", err)
	}
	return c, nil
}

// UpdateCollection updates name, color, icon, pinned, and sort_order of an
// existing collection.
func (s *SQLiteStore) UpdateCollection(ctx context.Context, c model.Collection) error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("collection name must not be empty")
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE collections SET
			name = ?, color = ?, icon = ?, pinned = ?, sort_order = ?, updated_at = ?
		WHERE id = ? AND deleted_at IS NULL`,
		c.Name, c.Color, c.Icon, boolToInt(c.Pinned), c.SortOrder,
		time.Now().UTC(), c.ID,
	)
	if err != nil {
		return fmt.Errorf("updating collection %s: %w", c.ID, err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("collection %s not found", c.ID)
	}
	return nil
}

// ArchiveCollection sets the archived flag to true.
func (s *SQLiteStore) ArchiveCollection(ctx context.Context, id string) error {
	return s.setArchived(ctx, id, true)
}

// UnarchiveCollection sets the archived flag to false.
func (s *SQLiteStore) UnarchiveCollection(ctx context.Context, id string) error {
	return s.setArchived(ctx, id, false)
}

func (s *SQLiteStore) setArchived(ctx context.Context, id string, archived bool) error {
	result, err := s.db.ExecContext(ctx,
		"UPDATE collections SET archived = ?, updated_at = ? WHERE id = ? AND deleted_at IS NULL",
		boolToInt(archived), time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("setting archived on collection %s: %w", id, err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("collection %s not found", id)
	}
	return nil
}

// SoftDeleteCollection marks a collection deleted. Its entries keep their
// collection_id and are excluded from reads by their own deleted_at only.
func (s *SQLiteStore) SoftDeleteCollection(ctx context.Context, id string) error {
	now := time.Now().UTC()
	result, err := s.db.ExecContext(ctx,
		"UPDATE collections SET deleted_at = ?, updated_at = ? WHERE id = ? AND deleted_at IS NULL",
		now, now, id)
	if err != nil {
		return fmt.Errorf("deleting collection %s: %w", id, err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("collection %s not found", id)
	}
	return nil
}

// PersistSortOrders applies a batch of collection position updates in a
// single transaction. An empty batch is a no-op.
func (s *SQLiteStore) PersistSortOrders(ctx context.Context, updates []model.SortUpdate) error {
	if len(updates) == 0 {
		return nil
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PreparexContext(ctx, `
		UPDATE collections SET sort_order = ?, pinned = ?, updated_at = ?
		WHERE id = ? AND deleted_at IS NULL`)
	if err != nil {
		return fmt.Errorf("preparing sort order statement: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC()
	for _, u := range updates {
		if _, err := stmt.ExecContext(ctx, u.SortOrder, boolToInt(u.Pinned), now, u.ID); err != nil {
			return fmt.Errorf("persisting sort order for %s: %w", u.ID, err)
		}
	}

	return tx.Commit()
}
