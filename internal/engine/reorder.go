package engine

import "github.com/nhle/notebook/internal/model"

// RowKind discriminates rows of a post-drag sequence.
type RowKind int

const (
	// RowHeader is a synthetic, non-reorderable section marker.
	RowHeader RowKind = iota
	// RowItem is a reorderable collection row.
	RowItem
)

// DragRow is one row of the full post-drag ordered sequence, interleaving
// section headers with collection rows.
type DragRow struct {
	Kind RowKind

	// ID identifies the collection for item rows.
	ID string

	// System marks the system collection, which is never reassigned.
	System bool

	// Pinned is the section flag carried by header rows.
	Pinned bool
}

// HeaderRow builds a section marker row.
func HeaderRow(pinned bool) DragRow {
	return DragRow{Kind: RowHeader, Pinned: pinned}
}

// ItemRow builds a collection row.
func ItemRow(id string, system bool) DragRow {
	return DragRow{Kind: RowItem, ID: id, System: system}
}

// ReconcileDrag converts a post-drag sequence into the minimal batch of
// position updates. Positions restart at zero in each section and every
// non-system item is stamped with the current section's pinned flag.
//
// When the drop position equals the origin (from == to) nothing moved and
// no updates are produced, so callers perform no read or write at all.
func ReconcileDrag(from, to int, rows []DragRow) []model.SortUpdate {
	if from == to {
		return nil
	}

	var updates []model.SortUpdate
	pinned := false
	next := 0
	for _, r := range rows {
		switch r.Kind {
		case RowHeader:
			pinned = r.Pinned
			next = 0
		case RowItem:
			if r.System {
				continue
			}
			updates = append(updates, model.SortUpdate{
				ID:        r.ID,
				SortOrder: next,
				Pinned:    pinned,
			})
			next++
		}
	}
	return updates
}
