package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nhle/notebook/internal/model"
)

// checklistItemColumns is the canonical column order expected by
// scanChecklistItem.
const checklistItemColumns = `id, checklist_id, title, checked, sort_order,
	created_at, updated_at, deleted_at`

// CreateChecklistWithItems creates a checklist container entry and its
// items in a single transaction.
func (s *SQLiteStore) CreateChecklistWithItems(
	ctx context.Context,
	title string,
	collectionID *string,
	itemTitles []string,
) (model.Entry, error) {
	if strings.TrimSpace(title) == "" {
		return model.Entry{}, fmt.Errorf("checklist title must not be empty")
	}

	now := time.Now().UTC()
	e := model.Entry{
		ID:           uuid.New().String(),
		Kind:         model.KindChecklist,
		Title:        title,
		CollectionID: collectionID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	maxOrder, err := s.maxEntrySortOrder(ctx, collectionID)
	if err != nil {
		return model.Entry{}, err
	}
	e.SortOrder = maxOrder + 1

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return model.Entry{}, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO entries (
			id, kind, title, body, collection_id, sort_order,
			created_at, updated_at
		) VALUES (?, ?, ?, '', ?, ?, ?, ?)`,
		e.ID, string(e.Kind), e.Title, e.CollectionID, e.SortOrder,
		e.CreatedAt, e.UpdatedAt,
	); err != nil {
		return model.Entry{}, fmt.Errorf("creating checklist: %w", err)
	}

	stmt, err := tx.PreparexContext(ctx, `
		INSERT INTO checklist_items (
			id, checklist_id, title, checked, sort_order, created_at, updated_at
		) VALUES (?, ?, ?, 0, ?, ?, ?)`)
	if err != nil {
		return model.Entry{}, fmt.Errorf("preparing checklist item statement: %w", err)
	}
	defer stmt.Close()

	order := 0
	for _, itemTitle := range itemTitles {
		if strings.TrimSpace(itemTitle) == "" {
			continue
		}
		if _, err := stmt.ExecContext(ctx,
			uuid.New().String(), e.ID, itemTitle, order, now, now,
		); err != nil {
			return model.Entry{}, fmt.Errorf("creating checklist item: %w", err)
		}
		order++
	}

	if err := tx.Commit(); err != nil {
		return model.Entry{}, fmt.Errorf("committing checklist: %w", err)
	}
	return e, nil
}

// ListChecklistItems returns all non-deleted items of a checklist, ordered
// by sort_order.
func (s *SQLiteStore) ListChecklistItems(ctx context.Context, checklistID string) ([]model.ChecklistItem, error) {
	rows, err := s.db.QueryxContext(ctx,
		"SELECT "+checklistItemColumns+` FROM checklist_items
		WHERE checklist_id = ? AND deleted_at IS NULL
		ORDER BY sort_order, created_at`, checklistID)
	if err != nil {
		return nil, fmt.Errorf("querying checklist items: %w", err)
	}
	defer rows.Close()

	var items []model.ChecklistItem
	for rows.Next() {
		item, err := scanChecklistItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// AddChecklistItem inserts a new checklist item and returns the stored row.
func (s *SQLiteStore) AddChecklistItem(ctx context.Context, item model.ChecklistItem) (model.ChecklistItem, error) {
	if strings.TrimSpace(item.Title) == "" {
		return model.ChecklistItem{}, fmt.Errorf("checklist item title must not be empty")
	}
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	item.CreatedAt = now
	item.UpdatedAt = now
	item.DeletedAt = nil

	if item.SortOrder == 0 {
		var maxOrder int
		err := s.db.GetContext(ctx, &maxOrder, `
			SELECT COALESCE(MAX(sort_order), -1) FROM checklist_items
			WHERE checklist_id = ? AND deleted_at IS NULL`, item.ChecklistID)
		if err != nil {
			return model.ChecklistItem{}, fmt.Errorf("getting max checklist sort_order: %w", err)
		}
		item.SortOrder = maxOrder + 1
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO checklist_items (
			id, checklist_id, title, checked, sort_order, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		item.ID, item.ChecklistID, item.Title, boolToInt(item.Checked),
		item.SortOrder, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return model.ChecklistItem{}, fmt.Errorf("adding checklist item: %w", err)
	}
	return item, nil
}

// UpdateChecklistItem updates title, checked state, and sort_order of a
// checklist item.
func (s *SQLiteStore) UpdateChecklistItem(ctx context.Context, item model.ChecklistItem) error {
	if strings.TrimSpace(item.Title) == "" {
		return fmt.Errorf("checklist item title must not be empty")
	}
	result, err := s.db.ExecContext(ctx, `
		UPDATE checklist_items SET title = ?, checked = ?, sort_order = ?, updated_at = ?
		WHERE id = ? AND deleted_at IS NULL`,
		item.Title, boolToInt(item.Checked), item.SortOrder,
		time.Now().UTC(), item.ID,
	)
	if err != nil {
		return fmt.Errorf("updating checklist item %s: %w", item.ID, err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("checklist item %s not found", item.ID)
	}
	return nil
}

// ToggleChecklistItem flips the checked state of a checklist item.
func (s *SQLiteStore) ToggleChecklistItem(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE checklist_items
		SET checked = CASE WHEN checked = 0 THEN 1 ELSE 0 END, updated_at = ?
		WHERE id = ? AND deleted_at IS NULL`,
		time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("toggling checklist item %s: %w", id, err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("checklist item %s not found", id)
	}
	return nil
}

// SoftDeleteChecklistItem marks a checklist item deleted.
func (s *SQLiteStore) SoftDeleteChecklistItem(ctx context.Context, id string) error {
	now := time.Now().UTC()
	result, err := s.db.ExecContext(ctx,
		"UPDATE checklist_items SET deleted_at = ?, updated_at = ? WHERE id = ? AND deleted_at IS NULL",
		now, now, id)
	if err != nil {
		return fmt.Errorf("deleting checklist item %s: %w", id, err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("checklist item %s not found", id)
	}
	return nil
}
