package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/notebook/internal/model"
	"github.com/nhle/notebook/internal/store"
	"github.com/nhle/notebook/tests/testutil"
)

func createCollection(t *testing.T, s *store.SQLiteStore, name string) model.Collection {
	t.Helper()
	c, err := s.CreateCollection(context.Background(), model.Collection{Name: name})
	require.NoError(t, err)
	return c
}

func TestCreateEntry_Defaults(t *testing.T) {
	ctx := context.Background()
	s := testutil.NewTestStore(t)
	c := createCollection(t, s, "Inbox")

	first, err := s.CreateEntry(ctx, model.Entry{
		Kind: model.KindTask, Title: "first", CollectionID: &c.ID,
	})
	require.NoError(t, err)
	second, err := s.CreateEntry(ctx, model.Entry{
		Kind: model.KindTask, Title: "second", CollectionID: &c.ID,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, first.ID)
	assert.Equal(t, 0, first.SortOrder)
	assert.Equal(t, 1, second.SortOrder)
	require.NotNil(t, first.Task)
	assert.Equal(t, model.PriorityNormal, first.Task.Priority)
	assert.False(t, first.Task.Completed)
	assert.Nil(t, first.Task.CompletedAt)
}

func TestCreateEntry_RejectsBlankTitleAndBadKind(t *testing.T) {
	ctx := context.Background()
	s := testutil.NewTestStore(t)

	_, err := s.CreateEntry(ctx, model.Entry{Kind: model.KindTask, Title: "   "})
	assert.Error(t, err)

	_, err = s.CreateEntry(ctx, model.Entry{Kind: "reminder", Title: "x"})
	assert.Error(t, err)
}

func TestUpdateEntry_CompletedAtPairing(t *testing.T) {
	ctx := context.Background()
	s := testutil.NewTestStore(t)
	c := createCollection(t, s, "Inbox")

	e, err := s.CreateEntry(ctx, model.Entry{
		Kind: model.KindTask, Title: "task", CollectionID: &c.ID,
	})
	require.NoError(t, err)

	completed := true
	require.NoError(t, s.UpdateEntry(ctx, e.ID, model.EntryPatch{Completed: &completed}))

	got, err := s.GetEntryByID(ctx, e.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Task)
	assert.True(t, got.Task.Completed)
	assert.NotNil(t, got.Task.CompletedAt)

	completed = false
	require.NoError(t, s.UpdateEntry(ctx, e.ID, model.EntryPatch{Completed: &completed}))

	got, err = s.GetEntryByID(ctx, e.ID)
	require.NoError(t, err)
	assert.False(t, got.Task.Completed)
	assert.Nil(t, got.Task.CompletedAt)
}

func TestUpdateEntry_ClearDueDate(t *testing.T) {
	ctx := context.Background()
	s := testutil.NewTestStore(t)
	c := createCollection(t, s, "Inbox")

	due := time.Date(2026, 9, 1, 15, 30, 0, 0, time.UTC)
	e, err := s.CreateEntry(ctx, model.Entry{
		Kind: model.KindTask, Title: "task", CollectionID: &c.ID,
		Task: &model.TaskDetail{DueDate: &due, Priority: model.PriorityNormal},
	})
	require.NoError(t, err)

	got, err := s.GetEntryByID(ctx, e.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Task.DueDate)

	require.NoError(t, s.UpdateEntry(ctx, e.ID, model.EntryPatch{ClearDueDate: true}))

	got, err = s.GetEntryByID(ctx, e.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Task.DueDate)
}

func TestUpdateEntry_EmptyPatchIsNoOp(t *testing.T) {
	ctx := context.Background()
	s := testutil.NewTestStore(t)

	// No row lookup happens for an empty patch, even for a missing ID.
	assert.NoError(t, s.UpdateEntry(ctx, "does-not-exist", model.EntryPatch{}))
}

func TestSoftDeleteEntry_ExcludedFromReads(t *testing.T) {
	ctx := context.Background()
	s := testutil.NewTestStore(t)
	c := createCollection(t, s, "Inbox")

	e, err := s.CreateEntry(ctx, model.Entry{
		Kind: model.KindNote, Title: "note", CollectionID: &c.ID,
	})
	require.NoError(t, err)

	require.NoError(t, s.SoftDeleteEntry(ctx, e.ID))

	entries, err := s.ListEntries(ctx, c.ID)
	require.NoError(t, err)
	assert.Empty(t, entries)

	_, err = s.GetEntryByID(ctx, e.ID)
	assert.Error(t, err)

	// Deleting again reports not found; the row is already gone from reads.
	assert.Error(t, s.SoftDeleteEntry(ctx, e.ID))
}

func TestSoftDeleteEntry_ChecklistCascades(t *testing.T) {
	ctx := context.Background()
	s := testutil.NewTestStore(t)
	c := createCollection(t, s, "Inbox")

	cl, err := s.CreateChecklistWithItems(ctx, "Packing", &c.ID, []string{"a", "b"})
	require.NoError(t, err)

	items, err := s.ListChecklistItems(ctx, cl.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)

	require.NoError(t, s.SoftDeleteEntry(ctx, cl.ID))

	items, err = s.ListChecklistItems(ctx, cl.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCreateChecklistWithItems_SkipsBlankItems(t *testing.T) {
	ctx := context.Background()
	s := testutil.NewTestStore(t)
	c := createCollection(t, s, "Inbox")

	cl, err := s.CreateChecklistWithItems(ctx, "List", &c.ID, []string{"a", "  ", "b"})
	require.NoError(t, err)

	items, err := s.ListChecklistItems(ctx, cl.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, 0, items[0].SortOrder)
	assert.Equal(t, 1, items[1].SortOrder)
}

func TestMoveEntry_PlacesAtEndOfTarget(t *testing.T) {
	ctx := context.Background()
	s := testutil.NewTestStore(t)
	src := createCollection(t, s, "Source")
	dst := createCollection(t, s, "Target")

	_, err := s.CreateEntry(ctx, model.Entry{
		Kind: model.KindNote, Title: "existing", CollectionID: &dst.ID,
	})
	require.NoError(t, err)

	e, err := s.CreateEntry(ctx, model.Entry{
		Kind: model.KindNote, Title: "moving", CollectionID: &src.ID,
	})
	require.NoError(t, err)

	require.NoError(t, s.MoveEntry(ctx, e.ID, dst.ID))

	got, err := s.GetEntryByID(ctx, e.ID)
	require.NoError(t, err)
	require.NotNil(t, got.CollectionID)
	assert.Equal(t, dst.ID, *got.CollectionID)
	assert.Equal(t, 1, got.SortOrder)
}

func TestCountActiveEntries(t *testing.T) {
	ctx := context.Background()
	s := testutil.NewTestStore(t)
	c := createCollection(t, s, "Inbox")

	_, err := s.CreateEntry(ctx, model.Entry{
		Kind: model.KindTask, Title: "open", CollectionID: &c.ID,
	})
	require.NoError(t, err)
	done, err := s.CreateEntry(ctx, model.Entry{
		Kind: model.KindTask, Title: "done", CollectionID: &c.ID,
	})
	require.NoError(t, err)
	gone, err := s.CreateEntry(ctx, model.Entry{
		Kind: model.KindTask, Title: "gone", CollectionID: &c.ID,
	})
	require.NoError(t, err)

	completed := true
	require.NoError(t, s.UpdateEntry(ctx, done.ID, model.EntryPatch{Completed: &completed}))
	require.NoError(t, s.SoftDeleteEntry(ctx, gone.ID))

	count, err := s.CountActiveEntries(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestSystemCollection_Singleton(t *testing.T) {
	ctx := context.Background()
	s := testutil.NewTestStore(t)

	_, err := s.CreateCollection(ctx, model.Collection{
		Name: model.SystemCollectionName, System: true,
		SortOrder: model.SystemCollectionSortOrder,
	})
	require.NoError(t, err)

	// The partial unique index rejects a second live system collection.
	_, err = s.CreateCollection(ctx, model.Collection{
		Name: "Another", System: true, SortOrder: model.SystemCollectionSortOrder,
	})
	assert.Error(t, err)
}

func TestPersistSortOrders_AppliesBatch(t *testing.T) {
	ctx := context.Background()
	s := testutil.NewTestStore(t)
	a := createCollection(t, s, "A")
	b := createCollection(t, s, "B")

	require.NoError(t, s.PersistSortOrders(ctx, []model.SortUpdate{
		{ID: a.ID, SortOrder: 5, Pinned: true},
		{ID: b.ID, SortOrder: 0, Pinned: false},
	}))

	gotA, err := s.GetCollectionByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, gotA.SortOrder)
	assert.True(t, gotA.Pinned)

	gotB, err := s.GetCollectionByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, gotB.SortOrder)
	assert.False(t, gotB.Pinned)
}

func TestListCollections_ArchivedFiltering(t *testing.T) {
	ctx := context.Background()
	s := testutil.NewTestStore(t)
	a := createCollection(t, s, "A")
	createCollection(t, s, "B")

	require.NoError(t, s.ArchiveCollection(ctx, a.ID))

	visible, err := s.ListCollections(ctx, false)
	require.NoError(t, err)
	assert.Len(t, visible, 1)

	all, err := s.ListCollections(ctx, true)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	require.NoError(t, s.UnarchiveCollection(ctx, a.ID))
	visible, err = s.ListCollections(ctx, false)
	require.NoError(t, err)
	assert.Len(t, visible, 2)
}
