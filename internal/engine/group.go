package engine

import (
	"sort"
	"time"

	"github.com/nhle/notebook/internal/model"
)

// Grouped holds a collection's entries partitioned by bucket. Each bucket
// except Completed is ordered by the bucket comparator; Completed keeps
// stable insertion order since its display order is secondary.
type Grouped struct {
	Overdue   []model.Entry
	Today     []model.Entry
	Upcoming  []model.Entry
	NoDate    []model.Entry
	Completed []model.Entry
}

// Group partitions entries into buckets in one classification pass and
// sorts each non-empty bucket. Purely functional on the input slice: the
// input is not reordered and no state is shared across calls.
func Group(entries []model.Entry, now time.Time) Grouped {
	var g Grouped
	for _, e := range entries {
		switch Classify(e, now) {
		case BucketCompleted:
			g.Completed = append(g.Completed, e)
		case BucketOverdue:
			g.Overdue = append(g.Overdue, e)
		case BucketToday:
			g.Today = append(g.Today, e)
		case BucketUpcoming:
			g.Upcoming = append(g.Upcoming, e)
		case BucketNoDate:
			g.NoDate = append(g.NoDate, e)
		}
	}

	for _, bucket := range [][]model.Entry{g.Overdue, g.Today, g.Upcoming, g.NoDate} {
		bucket := bucket
		sort.SliceStable(bucket, func(i, j int) bool {
			return Less(bucket[i], bucket[j])
		})
	}

	return g
}
