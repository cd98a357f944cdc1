package store

import (
	"context"

	"github.com/nhle/notebook/internal/model"
)

// Store defines the persistence interface for entries, checklist items, and
// collections. All reads exclude soft-deleted rows. Batch operations
// (PersistSortOrders, CreateChecklistWithItems, SoftDeleteEntry for a
// checklist) are atomic: they fully succeed or leave the database unchanged.
type Store interface {
	// === Entries ===

	// CreateEntry inserts a new entry, filling in ID, timestamps, and
	// sort_order defaults, and returns the stored row.
	CreateEntry(ctx context.Context, e model.Entry) (model.Entry, error)

	// UpdateEntry applies a typed partial update to an entry.
	UpdateEntry(ctx context.Context, id string, patch model.EntryPatch) error

	// SoftDeleteEntry marks an entry deleted. For checklist containers the
	// cascade to child items happens inside the same transaction.
	SoftDeleteEntry(ctx context.Context, id string) error

	// MoveEntry reassigns an entry to another collection and places it at
	// the end of the target's manual order.
	MoveEntry(ctx context.Context, id string, targetCollectionID string) error

	GetEntryByID(ctx context.Context, id string) (*model.Entry, error)

	// ListEntries returns the non-deleted entries of one collection in
	// manual order.
	ListEntries(ctx context.Context, collectionID string) ([]model.Entry, error)

	// ListActiveEntries returns non-deleted, non-completed entries across
	// all collections.
	ListActiveEntries(ctx context.Context) ([]model.Entry, error)

	// CountActiveEntries counts non-deleted, non-completed entries in one
	// collection.
	CountActiveEntries(ctx context.Context, collectionID string) (int, error)

	// === Checklists ===

	// CreateChecklistWithItems creates a checklist container and its items
	// in a single transaction.
	CreateChecklistWithItems(ctx context.Context, title string, collectionID *string, itemTitles []string) (model.Entry, error)

	ListChecklistItems(ctx context.Context, checklistID string) ([]model.ChecklistItem, error)
	AddChecklistItem(ctx context.Context, item model.ChecklistItem) (model.ChecklistItem, error)
	UpdateChecklistItem(ctx context.Context, item model.ChecklistItem) error
	ToggleChecklistItem(ctx context.Context, id string) error
	SoftDeleteChecklistItem(ctx context.Context, id string) error

	// === Collections ===

	ListCollections(ctx context.Context, includeArchived bool) ([]model.Collection, error)
	GetCollectionByID(ctx context.Context, id string) (*model.Collection, error)

	// GetSystemCollection returns the singleton system collection, or
	// (nil, nil) when it has not been created yet.
	GetSystemCollection(ctx context.Context) (*model.Collection, error)

	CreateCollection(ctx context.Context, c model.Collection) (model.Collection, error)
	UpdateCollection(ctx context.Context, c model.Collection) error
	ArchiveCollection(ctx context.Context, id string) error
	UnarchiveCollection(ctx context.Context, id string) error
	SoftDeleteCollection(ctx context.Context, id string) error

	// PersistSortOrders applies a batch of collection position updates as a
	// single transaction.
	PersistSortOrders(ctx context.Context, updates []model.SortUpdate) error
}
