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

// entryColumns is the canonical column order expected by scanEntry.
const entryColumns = `id, kind, title, body, collection_id, sort_order,
	due_date, completed, completed_at, priority,
	created_at, updated_at, deleted_at`

// CreateEntry inserts a new entry. Generates a UUID if ID is empty and
// defaults sort_order to the end of the target collection's manual order.
func (s *SQLiteStore) CreateEntry(ctx context.Context, e model.Entry) (model.Entry, error) {
	if strings.TrimSpace(e.Title) == "" {
		return model.Entry{}, fmt.Errorf("entry title must not be empty")
	}
	switch e.Kind {
	case model.KindTask, model.KindNote, model.KindChecklist:
	default:
		return model.Entry{}, fmt.Errorf("unknown entry kind %q", e.Kind)
	}

	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	e.CreatedAt = now
	e.UpdatedAt = now
	e.DeletedAt = nil

	if e.Kind == model.KindTask {
		if e.Task == nil {
			e.Task = &model.TaskDetail{Priority: model.PriorityNormal}
		}
		if e.Task.Priority < model.PriorityFocus || e.Task.Priority > model.PriorityLow {
			e.Task.Priority = model.PriorityNormal
		}
		if e.Task.Completed && e.Task.CompletedAt == nil {
			e.Task.CompletedAt = &now
		}
		if !e.Task.Completed {
			e.Task.CompletedAt = nil
		}
	} else {
		e.Task = nil
	}

	// Default sort_order to max+1 within the target collection.
	if e.SortOrder == 0 {
		maxOrder, err := s.maxEntrySortOrder(ctx, e.CollectionID)
		if err != nil {
			return model.Entry{}, err
		}
		e.SortOrder = maxOrder + 1
	}

	var dueDate, completedAt *time.Time
	completed := 0
	priority := model.PriorityNormal
	if e.Task != nil {
		dueDate = e.Task.DueDate
		completedAt = e.Task.CompletedAt
		completed = boolToInt(e.Task.Completed)
		priority = e.Task.Priority
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO entries (
			id, kind, title, body, collection_id, sort_order,
			due_date, completed, completed_at, priority,
			created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, string(e.Kind), e.Title, e.Body, e.CollectionID, e.SortOrder,
		dueDate, completed, completedAt, priority,
		e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return model.Entry{}, fmt.Errorf("creating entry: %w", err)
	}
	return e, nil
}

// UpdateEntry applies a typed partial update. The completed/completed_at
// pair is kept consistent here so callers never manage the pairing.
func (s *SQLiteStore) UpdateEntry(ctx context.Context, id string, patch model.EntryPatch) error {
	if patch.Empty() {
		return nil
	}

	var sets []string
	var args []interface{}

	if patch.Title != nil {
		if strings.TrimSpace(*patch.Title) == "" {
			return fmt.Errorf("entry title must not be empty")
		}
		sets = append(sets, "title = ?")
		args = append(args, *patch.Title)
	}
	if patch.Body != nil {
		sets = append(sets, "body = ?")
		args = append(args, *patch.Body)
	}
	if patch.ClearDueDate {
		sets = append(sets, "due_date = NULL")
	} else if patch.DueDate != nil {
		sets = append(sets, "due_date = ?")
		args = append(args, *patch.DueDate)
	}
	now := time.Now().UTC()
	if patch.Completed != nil {
		sets = append(sets, "completed = ?")
		args = append(args, boolToInt(*patch.Completed))
		if *patch.Completed {
			sets = append(sets, "completed_at = ?")
			args = append(args, now)
		} else {
			sets = append(sets, "completed_at = NULL")
		}
	}
	if patch.Priority != nil {
		if *patch.Priority < model.PriorityFocus || *patch.Priority > model.PriorityLow {
			return fmt.Errorf("invalid priority %d", *patch.Priority)
		}
		sets = append(sets, "priority = ?")
		args = append(args, *patch.Priority)
	}
	if patch.SortOrder != nil {
		sets = append(sets, "sort_order = ?")
		args = append(args, *patch.SortOrder)
	}

	sets = append(sets, "updated_at = ?")
	args = append(args, now)
	args = append(args, id)

	query := "UPDATE entries SET " + strings.Join(sets, ", ") +
		" WHERE id = ? AND deleted_at IS NULL"
	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("updating entry %s: %w", id, err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("entry %s not found", id)
	}
	return nil
}

// SoftDeleteEntry marks an entry deleted. A checklist container cascades to
// its items inside the same transaction.
func (s *SQLiteStore) SoftDeleteEntry(ctx context.Context, id string) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var kind string
	err = tx.GetContext(ctx, &kind,
		"SELECT kind FROM entries WHERE id = ? AND deleted_at IS NULL", id)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("entry %s not found", id)
	}
	if err != nil {
		return fmt.Errorf("loading entry %s: %w", id, err)
	}

	now := time.Now().UTC()
	if _, err := tx.ExecContext(ctx,
		"UPDATE entries SET deleted_at = ?, updated_at = ? WHERE id = ?",
		now, now, id,
	); err != nil {
		return fmt.Errorf("deleting entry %s: %w", id, err)
	}

	if kind == string(model.KindChecklist) {
		if _, err := tx.ExecContext(ctx, `
			UPDATE checklist_items SET deleted_at = ?, updated_at = ?
			WHERE checklist_id = ? AND deleted_at IS NULL`,
			now, now, id,
		); err != nil {
			return fmt.Errorf("cascading delete to checklist items of %s: %w", id, err)
		}
	}

	return tx.Commit()
}

// MoveEntry reassigns an entry to targetCollectionID and places it at the
// end of the target's manual order.
func (s *SQLiteStore) MoveEntry(ctx context.Context, id string, targetCollectionID string) error {
	maxOrder, err := s.maxEntrySortOrder(ctx, &targetCollectionID)
	if err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE entries SET collection_id = ?, sort_order = ?, updated_at = ?
		WHERE id = ? AND deleted_at IS NULL`,
		targetCollectionID, maxOrder+1, time.Now().UTC(), id,
	)
	if err != nil {
		return fmt.Errorf("moving entry %s: %w", id, err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("entry %s not found", id)
	}
	return nil
}

// GetEntryByID retrieves a single non-deleted entry by ID.
func (s *SQLiteStore) GetEntryByID(ctx context.Context, id string) (*model.Entry, error) {
	row := s.db.QueryRowxContext(ctx,
		"SELECT "+entryColumns+" FROM entries WHERE id = ? AND deleted_at IS NULL", id)

	e, err := scanEntry(row)
	if err != nil {
		return nil, fmt.Errorf("getting entry %s: %w", id, err)
	}
	return &e, nil
}

// ListEntries returns the non-deleted entries of one collection in manual
// order.
func (s *SQLiteStore) ListEntries(ctx context.Context, collectionID string) ([]model.Entry, error) {
	rows, err := s.db.QueryxContext(ctx,
		"SELECT "+entryColumns+` FROM entries
		WHERE collection_id = ? AND deleted_at IS NULL
		ORDER BY sort_order, created_at`, collectionID)
	if err != nil {
		return nil, fmt.Errorf("querying entries: %w", err)
	}
	defer rows.Close()

	var entries []model.Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// ListActiveEntries returns non-deleted, non-completed entries across all
// collections, in creation order.
func (s *SQLiteStore) ListActiveEntries(ctx context.Context) ([]model.Entry, error) {
	rows, err := s.db.QueryxContext(ctx,
		"SELECT "+entryColumns+` FROM entries
		WHERE deleted_at IS NULL AND completed = 0
		ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("querying active entries: %w", err)
	}
	defer rows.Close()

	var entries []model.Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// CountActiveEntries counts non-deleted, non-completed entries in one
// collection.
func (s *SQLiteStore) CountActiveEntries(ctx context.Context, collectionID string) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count, `
		SELECT COUNT(*) FROM entries
		WHERE collection_id = ? AND deleted_at IS NULL AND completed = 0`,
		collectionID)
	if err != nil {
		return 0, fmt.Errorf("counting active entries: %w", err)
	}
	return count, nil
}

// maxEntrySortOrder returns the highest sort_order among non-deleted
// entries of a collection (NULL collection included via IS matching).
func (s *SQLiteStore) maxEntrySortOrder(ctx context.Context, collectionID *string) (int, error) {
	var maxOrder int
	var err error
	if collectionID == nil {
		err = s.db.GetContext(ctx, &maxOrder, `
			SELECT COALESCE(MAX(sort_order), -1) FROM entries
			WHERE collection_id IS NULL AND deleted_at IS NULL`)
	} else {
		err = s.db.GetContext(ctx, &maxOrder, `
			SELECT COALESCE(MAX(sort_order), -1) FROM entries
			WHERE collection_id = ? AND deleted_at IS NULL`, *collectionID)
	}
	if err != nil {
		return 0, fmt.Errorf("getting max sort_order: %w", err)
	}
	return maxOrder, nil
}
