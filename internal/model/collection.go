package model

import "time"

// SystemCollectionName is the display name of the singleton system
// collection that holds entries not explicitly filed anywhere.
const SystemCollectionName = "Unsorted"

// SystemCollectionSortOrder is the reserved sort position for the system
// collection. User collections are assigned dense orders from zero, so the
// system collection always sorts last.
const SystemCollectionSortOrder = 1 << 30

// Collection is a named grouping of entries.
type Collection struct {
	ID        string     `json:"id" db:"id"`
	Name      string     `json:"name" db:"name"`
	Color     string     `json:"color" db:"color"`
	Icon      string     `json:"icon" db:"icon"`
	SortOrder int        `json:"sort_order" db:"sort_order"`
	Pinned    bool       `json:"pinned" db:"pinned"`
	Archived  bool       `json:"archived" db:"archived"`
	System    bool       `json:"system" db:"system"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty" db:"deleted_at"`
}

// Deleted reports whether the collection is soft-deleted.
func (c Collection) Deleted() bool {
	return c.DeletedAt != nil
}
