package engine

import "github.com/nhle/notebook/internal/model"

// dueClass ranks entries by the shape of their due value: timed dues first,
// then date-only dues, then entries without one.
func dueClass(e model.Entry) int {
	due := e.DueDate()
	switch {
	case due == nil:
		return 2
	case HasTimeComponent(*due):
		return 0
	default:
		return 1
	}
}

// Less is the total order used within a bucket: due-value shape, then
// priority rank (Focus < Normal < Low), then due instant ascending, then
// creation time ascending. It defines a strict weak ordering, so repeated
// stable sorts of the same input are deterministic.
func Less(a, b model.Entry) bool {
	ca, cb := dueClass(a), dueClass(b)
	if ca != cb {
		return ca < cb
	}
	if a.Priority() != b.Priority() {
		return a.Priority() < b.Priority()
	}
	da, db := a.DueDate(), b.DueDate()
	if da != nil && db != nil {
		if !da.Equal(*db) {
			return da.Before(*db)
		}
		return a.CreatedAt.Before(b.CreatedAt)
	}
	return a.CreatedAt.Before(b.CreatedAt)
}
