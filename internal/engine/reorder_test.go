package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nhle/notebook/internal/model"
)

func TestReconcileDrag_NoOpWhenDropEqualsOrigin(t *testing.T) {
	rows := []DragRow{
		HeaderRow(true),
		ItemRow("a", false),
		ItemRow("b", false),
	}

	assert.Nil(t, ReconcileDrag(2, 2, rows))
}

func TestReconcileDrag_SectionsResetPositions(t *testing.T) {
	rows := []DragRow{
		HeaderRow(true),
		ItemRow("a", false),
		ItemRow("b", false),
		HeaderRow(false),
		ItemRow("c", false),
	}

	got := ReconcileDrag(1, 2, rows)

	assert.Equal(t, []model.SortUpdate{
		{ID: "a", SortOrder: 0, Pinned: true},
		{ID: "b", SortOrder: 1, Pinned: true},
		{ID: "c", SortOrder: 0, Pinned: false},
	}, got)
}

func TestReconcileDrag_SkipsSystemRows(t *testing.T) {
	rows := []DragRow{
		HeaderRow(false),
		ItemRow("a", false),
		ItemRow("unsorted", true),
		ItemRow("b", false),
	}

	got := ReconcileDrag(1, 3, rows)

	assert.Equal(t, []model.SortUpdate{
		{ID: "a", SortOrder: 0, Pinned: false},
		{ID: "b", SortOrder: 1, Pinned: false},
	}, got)
}

func TestReconcileDrag_EmptySequence(t *testing.T) {
	assert.Empty(t, ReconcileDrag(0, 1, nil))
}
