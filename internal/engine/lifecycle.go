package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/nhle/notebook/internal/model"
	"github.com/nhle/notebook/internal/store"
)

// Service wires the pure engine components to the repository collaborator
// and owns the lifecycle of the system "Unsorted" collection: visible only
// while it holds unresolved entries, archived automatically otherwise.
type Service struct {
	store store.Store
	rules NameRules
	now   func() time.Time
}

// NewService builds a Service on top of a Store. cfg may be nil, in which
// case default name rules apply.
func NewService(st store.Store, cfg *model.EngineConfig) *Service {
	rules := DefaultNameRules()
	if cfg != nil && cfg.MaxNameLength > 0 {
		rules.MaxLength = cfg.MaxNameLength
	}
	return &Service{
		store: st,
		rules: rules,
		now:   time.Now,
	}
}

// Rules returns the name rules in effect.
func (s *Service) Rules() NameRules {
	return s.rules
}

// GetOrCreateSystemCollection returns the singleton system collection,
// creating it archived when absent. Idempotent: an existing collection is
// returned unchanged; un-archiving is left to the surrounding write.
func (s *Service) GetOrCreateSystemCollection(ctx context.Context) (model.Collection, error) {
	sys, err := s.store.GetSystemCollection(ctx)
	if err != nil {
		return model.Collection{}, persistErr("loading system collection", err)
	}
	if sys != nil {
		return *sys, nil
	}

	created, err := s.store.CreateCollection(ctx, model.Collection{
		Name:      model.SystemCollectionName,
		System:    true,
		Archived:  true,
		SortOrder: model.SystemCollectionSortOrder,
	})
	if err != nil {
		return model.Collection{}, persistErr("creating system collection", err)
	}
	return created, nil
}

// EnsureSystemActive returns the system collection, creating it if needed
// and un-archiving it. Called before any write that lands an entry there,
// so the transition completes before the write is considered done.
func (s *Service) EnsureSystemActive(ctx context.Context) (model.Collection, error) {
	sys, err := s.GetOrCreateSystemCollection(ctx)
	if err != nil {
		return model.Collection{}, err
	}
	if sys.Archived {
		if err := s.store.UnarchiveCollection(ctx, sys.ID); err != nil {
			return model.Collection{}, persistErr("unarchiving system collection", err)
		}
		sys.Archived = false
	}
	return sys, nil
}

// CreateEntry persists a new entry. Entries without an explicit collection
// are filed to the system collection, activating it first.
func (s *Service) CreateEntry(ctx context.Context, e model.Entry) (model.Entry, error) {
	display := PrepareDisplay(e.Title)
	if err := s.rules.ValidateField(display, "title"); err != nil {
		return model.Entry{}, err
	}
	e.Title = display

	collectionID, err := s.resolveTargetCollection(ctx, e.CollectionID)
	if err != nil {
		return model.Entry{}, err
	}
	e.CollectionID = collectionID

	created, err := s.store.CreateEntry(ctx, e)
	if err != nil {
		return model.Entry{}, persistErr("creating entry", err)
	}
	return created, nil
}

// CreateChecklist persists a checklist container and its items as one unit
// of work.
func (s *Service) CreateChecklist(ctx context.Context, title string, collectionID *string, itemTitles []string) (model.Entry, error) {
	display := PrepareDisplay(title)
	if err := s.rules.ValidateField(display, "title"); err != nil {
		return model.Entry{}, err
	}

	target, err := s.resolveTargetCollection(ctx, collectionID)
	if err != nil {
		return model.Entry{}, err
	}

	created, err := s.store.CreateChecklistWithItems(ctx, display, target, itemTitles)
	if err != nil {
		return model.Entry{}, persistErr("creating checklist", err)
	}
	return created, nil
}

// resolveTargetCollection maps a requested collection to the one the write
// should land in, activating the system collection when it is the target
// (explicitly or by default).
func (s *Service) resolveTargetCollection(ctx context.Context, requested *string) (*string, error) {
	if requested == nil {
		sys, err := s.EnsureSystemActive(ctx)
		if err != nil {
			return nil, err
		}
		id := sys.ID
		return &id, nil
	}

	sys, err := s.store.GetSystemCollection(ctx)
	if err != nil {
		return nil, persistErr("loading system collection", err)
	}
	if sys != nil && sys.ID == *requested {
		if _, err := s.EnsureSystemActive(ctx); err != nil {
			return nil, err
		}
	}
	return requested, nil
}

// CompleteEntry marks a task complete. It reports whether the system
// collection was archived as a consequence, so the caller can navigate away
// from its detail view.
func (s *Service) CompleteEntry(ctx context.Context, id string) (bool, error) {
	e, err := s.store.GetEntryByID(ctx, id)
	if err != nil {
		return false, persistErr("loading entry", err)
	}
	if e.Kind != model.KindTask {
		return false, fmt.Errorf("entry %s is not a task", id)
	}

	completed := true
	if err := s.store.UpdateEntry(ctx, id, model.EntryPatch{Completed: &completed}); err != nil {
		return false, persistErr("completing entry", err)
	}

	return s.maybeArchiveSystem(ctx, e.CollectionID)
}

// ReopenEntry marks a completed task open again. Reactivating an entry
// inside the archived system collection un-archives it first.
func (s *Service) ReopenEntry(ctx context.Context, id string) error {
	e, err := s.store.GetEntryByID(ctx, id)
	if err != nil {
		return persistErr("loading entry", err)
	}
	if e.Kind != model.KindTask {
		return fmt.Errorf("entry %s is not a task", id)
	}

	if e.CollectionID != nil {
		sys, err := s.store.GetSystemCollection(ctx)
		if err != nil {
			return persistErr("loading system collection", err)
		}
		if sys != nil && sys.ID == *e.CollectionID {
			if _, err := s.EnsureSystemActive(ctx); err != nil {
				return err
			}
		}
	}

	completed := false
	if err := s.store.UpdateEntry(ctx, id, model.EntryPatch{Completed: &completed}); err != nil {
		return persistErr("reopening entry", err)
	}
	return nil
}

// DeleteEntry soft-deletes an entry (cascading to checklist items inside
// the store) and reports whether the system collection archived itself.
func (s *Service) DeleteEntry(ctx context.Context, id string) (bool, error) {
	e, err := s.store.GetEntryByID(ctx, id)
	if err != nil {
		return false, persistErr("loading entry", err)
	}

	if err := s.store.SoftDeleteEntry(ctx, id); err != nil {
		return false, persistErr("deleting entry", err)
	}

	return s.maybeArchiveSystem(ctx, e.CollectionID)
}

// MoveEntry refiles an entry into targetCollectionID and reports whether
// the source system collection archived itself. Moving into the system
// collection activates it first.
func (s *Service) MoveEntry(ctx context.Context, id string, targetCollectionID string) (bool, error) {
	e, err := s.store.GetEntryByID(ctx, id)
	if err != nil {
		return false, persistErr("loading entry", err)
	}

	sys, err := s.store.GetSystemCollection(ctx)
	if err != nil {
		return false, persistErr("loading system collection", err)
	}
	if sys != nil && sys.ID == targetCollectionID {
		if _, err := s.EnsureSystemActive(ctx); err != nil {
			return false, err
		}
	}

	if err := s.store.MoveEntry(ctx, id, targetCollectionID); err != nil {
		return false, persistErr("moving entry", err)
	}

	return s.maybeArchiveSystem(ctx, e.CollectionID)
}

// maybeArchiveSystem archives the system collection when collectionID
// refers to it and it no longer holds any active entry. User collections
// are untouched; they archive only by explicit user action.
func (s *Service) maybeArchiveSystem(ctx context.Context, collectionID *string) (bool, error) {
	if collectionID == nil {
		return false, nil
	}
	sys, err := s.store.GetSystemCollection(ctx)
	if err != nil {
		return false, persistErr("loading system collection", err)
	}
	if sys == nil || sys.Archived || sys.ID != *collectionID {
		return false, nil
	}

	count, err := s.store.CountActiveEntries(ctx, sys.ID)
	if err != nil {
		return false, persistErr("counting active entries", err)
	}
	if count > 0 {
		return false, nil
	}

	if err := s.store.ArchiveCollection(ctx, sys.ID); err != nil {
		return false, persistErr("archiving system collection", err)
	}
	return true, nil
}

// CreateCollection validates and deduplicates the name, then persists a new
// user collection.
func (s *Service) CreateCollection(ctx context.Context, name, color, icon string) (model.Collection, error) {
	existing, err := s.store.ListCollections(ctx, true)
	if err != nil {
		return model.Collection{}, persistErr("listing collections", err)
	}
	display, err := s.rules.ResolveForSave(name, existing, "")
	if err != nil {
		return model.Collection{}, err
	}

	created, err := s.store.CreateCollection(ctx, model.Collection{
		Name:  display,
		Color: color,
		Icon:  icon,
	})
	if err != nil {
		return model.Collection{}, persistErr("creating collection", err)
	}
	return created, nil
}

// RenameCollection applies the same name contract as creation, excluding
// the collection itself from duplicate detection.
func (s *Service) RenameCollection(ctx context.Context, id, name string) error {
	existing, err := s.store.ListCollections(ctx, true)
	if err != nil {
		return persistErr("listing collections", err)
	}
	display, err := s.rules.ResolveForSave(name, existing, id)
	if err != nil {
		return err
	}

	c, err := s.store.GetCollectionByID(ctx, id)
	if err != nil {
		return persistErr("loading collection", err)
	}
	c.Name = display
	if err := s.store.UpdateCollection(ctx, *c); err != nil {
		return persistErr("renaming collection", err)
	}
	return nil
}

// ApplyDrag reconciles a post-drag sequence and persists the resulting
// batch atomically. On persistence failure the caller restores its
// pre-drag order and surfaces a retry prompt.
func (s *Service) ApplyDrag(ctx context.Context, from, to int, rows []DragRow) ([]model.SortUpdate, error) {
	updates := ReconcileDrag(from, to, rows)
	if len(updates) == 0 {
		return nil, nil
	}
	if err := s.store.PersistSortOrders(ctx, updates); err != nil {
		return nil, persistErr("persisting sort orders", err)
	}
	return updates, nil
}

// GroupCollection loads a collection's entries and partitions them into
// ordered buckets.
func (s *Service) GroupCollection(ctx context.Context, collectionID string) (Grouped, error) {
	entries, err := s.store.ListEntries(ctx, collectionID)
	if err != nil {
		return Grouped{}, persistErr("listing entries", err)
	}
	return Group(entries, s.now()), nil
}

// FilterCollection loads a collection's entries and applies a filter.
func (s *Service) FilterCollection(ctx context.Context, collectionID string, f Filter) ([]model.Entry, error) {
	entries, err := s.store.ListEntries(ctx, collectionID)
	if err != nil {
		return nil, persistErr("listing entries", err)
	}
	return ApplyFilter(entries, f, s.now()), nil
}

// ChecklistStats derives the completion ratio of a checklist from its
// stored items.
func (s *Service) ChecklistStats(ctx context.Context, checklistID string) (model.ChecklistStats, error) {
	items, err := s.store.ListChecklistItems(ctx, checklistID)
	if err != nil {
		return model.ChecklistStats{}, persistErr("listing checklist items", err)
	}
	return Stats(items), nil
}
