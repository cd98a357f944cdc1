package model

import "time"

// EntryKind discriminates the entry variants.
type EntryKind string

const (
	KindTask      EntryKind = "task"
	KindNote      EntryKind = "note"
	KindChecklist EntryKind = "checklist"
)

// Task priority constants (lower number = higher priority).
const (
	PriorityFocus  = 1
	PriorityNormal = 2
	PriorityLow    = 3
)

// Entry is a single notebook item: a task, a note, or a checklist container.
// Task holds the task-only payload and is non-nil exactly when Kind is
// KindTask; notes and checklists carry no variant payload.
type Entry struct {
	ID    string    `json:"id" db:"id"`
	Kind  EntryKind `json:"kind" db:"kind"`
	Title string    `json:"title" db:"title"`
	Body  string    `json:"body" db:"body"`

	// CollectionID is nil for entries filed to the system collection
	// implicitly at write time.
	CollectionID *string `json:"collection_id,omitempty" db:"collection_id"`

	// SortOrder establishes manual placement within a collection.
	SortOrder int `json:"sort_order" db:"sort_order"`

	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty" db:"deleted_at"`

	Task *TaskDetail `json:"task,omitempty" db:"-"`
}

// TaskDetail is the task-variant payload.
type TaskDetail struct {
	// DueDate is optional. A value at local midnight is a date-only due;
	// any non-zero clock component makes it a timed due.
	DueDate *time.Time `json:"due_date,omitempty" db:"due_date"`

	Completed bool `json:"completed" db:"completed"`

	// CompletedAt is set if and only if Completed is true.
	CompletedAt *time.Time `json:"completed_at,omitempty" db:"completed_at"`

	// Priority uses the Priority* constants; defaults to PriorityNormal.
	Priority int `json:"priority" db:"priority"`
}

// Completed reports whether the entry is a completed task. Notes and
// checklist containers are never completed; checklist completion is derived
// from items, not stored.
func (e Entry) Completed() bool {
	return e.Task != nil && e.Task.Completed
}

// DueDate returns the task due date, or nil for non-task entries and tasks
// without one.
func (e Entry) DueDate() *time.Time {
	if e.Task == nil {
		return nil
	}
	return e.Task.DueDate
}

// Priority returns the task priority, or PriorityNormal for non-task entries.
func (e Entry) Priority() int {
	if e.Task == nil {
		return PriorityNormal
	}
	return e.Task.Priority
}

// Deleted reports whether the entry is soft-deleted.
func (e Entry) Deleted() bool {
	return e.DeletedAt != nil
}

// Active reports whether the entry counts toward a collection's unresolved
// work: not soft-deleted and not a completed task.
func (e Entry) Active() bool {
	return !e.Deleted() && !e.Completed()
}
