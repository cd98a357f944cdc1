package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/nhle/notebook/internal/model"
)

func TestGroup_Partitions(t *testing.T) {
	startOfToday := startOfDay(testNow)
	entries := []model.Entry{
		task(at(startOfToday.AddDate(0, 0, -1)), false),
		task(at(testNow.Add(time.Hour)), false),
		task(at(startOfToday.AddDate(0, 0, 5)), false),
		task(nil, false),
		task(nil, true),
		model.Entry{Kind: model.KindNote, Title: "note"},
	}

	g := Group(entries, testNow)

	assert.Len(t, g.Overdue, 1)
	assert.Len(t, g.Today, 1)
	assert.Len(t, g.Upcoming, 1)
	assert.Len(t, g.NoDate, 2)
	assert.Len(t, g.Completed, 1)
}

func TestGroup_BucketsAreOrdered(t *testing.T) {
	created := testNow.Add(-time.Hour)
	entries := []model.Entry{
		orderedTask("low", at(testNow.Add(time.Hour)), model.PriorityLow, created),
		orderedTask("focus", at(testNow.Add(2*time.Hour)), model.PriorityFocus, created),
		orderedTask("normal", at(testNow.Add(time.Hour)), model.PriorityNormal, created),
	}

	g := Group(entries, testNow)

	var ids []string
	for _, e := range g.Today {
		ids = append(ids, e.ID)
	}
	assert.Equal(t, []string{"focus", "normal", "low"}, ids)
}

func TestGroup_CompletedKeepsInsertionOrder(t *testing.T) {
	first := task(nil, true)
	first.ID = "first"
	second := task(nil, true)
	second.ID = "second"

	g := Group([]model.Entry{first, second}, testNow)

	assert.Equal(t, "first", g.Completed[0].ID)
	assert.Equal(t, "second", g.Completed[1].ID)
}

func TestGroup_DoesNotMutateInput(t *testing.T) {
	created := testNow.Add(-time.Hour)
	entries := []model.Entry{
		orderedTask("b", at(testNow.Add(2*time.Hour)), model.PriorityLow, created),
		orderedTask("a", at(testNow.Add(time.Hour)), model.PriorityFocus, created),
	}

	Group(entries, testNow)

	assert.Equal(t, "b", entries[0].ID)
	assert.Equal(t, "a", entries[1].ID)
}
