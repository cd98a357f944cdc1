package engine

import (
	"log/slog"
	"strings"
	"time"

	"github.com/nhle/notebook/internal/model"
)

// Filter selects a slice of entries by completion state and bucket.
type Filter string

const (
	// FilterAll matches every entry that is not completed. Deliberately
	// not literally "all": completed entries live behind FilterCompleted.
	FilterAll       Filter = "all"
	FilterToday     Filter = "today"
	FilterOverdue   Filter = "overdue"
	FilterUpcoming  Filter = "upcoming"
	FilterNoDate    Filter = "nodate"
	FilterCompleted Filter = "completed"
)

// ParseFilter maps an external selector (e.g., a deep-link parameter) to a
// Filter. Unknown values fail soft: logged and defaulted to FilterAll,
// never surfaced to the user.
func ParseFilter(raw string) Filter {
	f := Filter(strings.ToLower(strings.TrimSpace(raw)))
	switch f {
	case FilterAll, FilterToday, FilterOverdue, FilterUpcoming, FilterNoDate, FilterCompleted:
		return f
	}
	slog.Warn("unknown filter value, defaulting to all", "value", raw)
	return FilterAll
}

// filterBucket maps a bucket filter to the bucket it selects.
func filterBucket(f Filter) (Bucket, bool) {
	switch f {
	case FilterToday:
		return BucketToday, true
	case FilterOverdue:
		return BucketOverdue, true
	case FilterUpcoming:
		return BucketUpcoming, true
	case FilterNoDate:
		return BucketNoDate, true
	}
	return "", false
}

// ApplyFilter returns the entries matched by f at the given "now". A Filter
// value that did not come from ParseFilter and is unknown behaves like
// FilterAll, with a log line.
func ApplyFilter(entries []model.Entry, f Filter, now time.Time) []model.Entry {
	switch f {
	case FilterAll, FilterToday, FilterOverdue, FilterUpcoming, FilterNoDate, FilterCompleted:
	default:
		slog.Warn("unknown filter value, defaulting to all", "value", string(f))
		f = FilterAll
	}

	var out []model.Entry
	switch f {
	case FilterCompleted:
		for _, e := range entries {
			if e.Completed() {
				out = append(out, e)
			}
		}
	case FilterAll:
		for _, e := range entries {
			if !e.Completed() {
				out = append(out, e)
			}
		}
	default:
		bucket, _ := filterBucket(f)
		for _, e := range entries {
			if !e.Completed() && Classify(e, now) == bucket {
				out = append(out, e)
			}
		}
	}
	return out
}
