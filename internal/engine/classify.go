package engine

import (
	"time"

	"github.com/nhle/notebook/internal/model"
)

// Bucket is one of the mutually exclusive temporal classifications.
type Bucket string

const (
	BucketOverdue   Bucket = "overdue"
	BucketToday     Bucket = "today"
	BucketUpcoming  Bucket = "upcoming"
	BucketNoDate    Bucket = "nodate"
	BucketCompleted Bucket = "completed"
)

// HasTimeComponent reports whether the timestamp's local clock is non-zero.
// A due value at local midnight is a date-only due; anything else is timed.
func HasTimeComponent(t time.Time) bool {
	h, m, s := t.Clock()
	return h != 0 || m != 0 || s != 0
}

// startOfDay returns local midnight of t's day.
func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// endOfDay returns the last instant of t's day.
func endOfDay(t time.Time) time.Time {
	return startOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// Classify assigns a temporal bucket to an entry given "now". Completion
// overrides every other rule; entries without a due date are NoDate.
//
// Timed due values are judged against the wall-clock instant: overdue the
// moment the instant has passed, today while the instant is still ahead on
// the current day. Date-only due values are judged against calendar days:
// overdue only once the whole day is in the past. The asymmetry is the
// engine's defining edge-case policy and must not be "fixed".
func Classify(e model.Entry, now time.Time) Bucket {
	if e.Completed() {
		return BucketCompleted
	}
	due := e.DueDate()
	if due == nil {
		return BucketNoDate
	}

	d := due.In(now.Location())
	if HasTimeComponent(d) {
		if d.Before(now) {
			return BucketOverdue
		}
		if !d.After(endOfDay(now)) {
			return BucketToday
		}
		return BucketUpcoming
	}

	if d.Before(startOfDay(now)) {
		return BucketOverdue
	}
	if !d.After(endOfDay(now)) {
		return BucketToday
	}
	return BucketUpcoming
}
