package model

import "time"

// EntryPatch is a typed partial update applied by the store. Nil pointer
// fields are left untouched; the Clear* flags distinguish "set to NULL"
// from "leave alone" for nullable columns.
type EntryPatch struct {
	Title *string
	Body  *string

	// Task-only fields. Ignored by the store for notes and checklists.
	DueDate      *time.Time
	ClearDueDate bool
	Completed    *bool
	Priority     *int

	SortOrder *int
}

// Empty reports whether the patch changes nothing.
func (p EntryPatch) Empty() bool {
	return p.Title == nil && p.Body == nil &&
		p.DueDate == nil && !p.ClearDueDate &&
		p.Completed == nil && p.Priority == nil &&
		p.SortOrder == nil
}

// SortUpdate is one persisted position change produced by drag
// reconciliation. Updates are applied as a single atomic batch.
type SortUpdate struct {
	ID        string `json:"id"`
	SortOrder int    `json:"sort_order"`
	Pinned    bool   `json:"pinned"`
}
