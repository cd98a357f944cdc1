package engine

import "github.com/nhle/notebook/internal/model"

// Stats derives a checklist's completion ratio from its items. Soft-deleted
// items are excluded from both counts. Pure projection, computed on every
// read and never cached.
func Stats(items []model.ChecklistItem) model.ChecklistStats {
	var s model.ChecklistStats
	for _, item := range items {
		if item.DeletedAt != nil {
			continue
		}
		s.Total++
		if item.Checked {
			s.Checked++
		}
	}
	return s
}
