package model

import "time"

// ChecklistItem is a sub-entry within a checklist container. Its lifecycle
// is bound to the parent entry: soft-deleting the checklist cascades to its
// items in one store operation.
type ChecklistItem struct {
	ID          string     `json:"id" db:"id"`
	ChecklistID string     `json:"checklist_id" db:"checklist_id"`
	Title       string     `json:"title" db:"title"`
	Checked     bool       `json:"checked" db:"checked"`
	SortOrder   int        `json:"sort_order" db:"sort_order"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty" db:"deleted_at"`
}

// ChecklistStats is the derived completion ratio of a checklist. It is
// computed on every read and never persisted.
type ChecklistStats struct {
	Checked int `json:"checked_count"`
	Total   int `json:"total_count"`
}

// Complete reports whether the checklist is fully done. A checklist with
// zero items is never complete.
func (s ChecklistStats) Complete() bool {
	return s.Total > 0 && s.Checked == s.Total
}
