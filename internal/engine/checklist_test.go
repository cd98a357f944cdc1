package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/nhle/notebook/internal/model"
)

func item(checked bool) model.ChecklistItem {
	return model.ChecklistItem{Title: "i", Checked: checked}
}

func TestStats(t *testing.T) {
	s := Stats([]model.ChecklistItem{item(true), item(true), item(false)})
	assert.Equal(t, model.ChecklistStats{Checked: 2, Total: 3}, s)
	assert.False(t, s.Complete())
}

func TestStats_AllCheckedIsComplete(t *testing.T) {
	s := Stats([]model.ChecklistItem{item(true), item(true), item(true)})
	assert.Equal(t, model.ChecklistStats{Checked: 3, Total: 3}, s)
	assert.True(t, s.Complete())
}

func TestStats_EmptyChecklistIsNeverComplete(t *testing.T) {
	s := Stats(nil)
	assert.Equal(t, model.ChecklistStats{}, s)
	assert.False(t, s.Complete())
}

func TestStats_ExcludesDeletedItems(t *testing.T) {
	deletedAt := time.Now().UTC()
	deleted := item(false)
	deleted.DeletedAt = &deletedAt

	s := Stats([]model.ChecklistItem{item(true), item(true), deleted})
	assert.Equal(t, model.ChecklistStats{Checked: 2, Total: 2}, s)
	assert.True(t, s.Complete())
}
