package inputs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/recomp/internal/adapters/inputs"
	"go.trai.ch/recomp/internal/core/domain"
)

func collect(t *inputs.Tracker) (outOfDate, removed []domain.InputFileDetails) {
	t.OutOfDate(func(d domain.InputFileDetails) { outOfDate = append(outOfDate, d) })
	t.Removed(func(d domain.InputFileDetails) { removed = append(removed, d) })
	return outOfDate, removed
}

func TestTracker(t *testing.T) {
	previous := map[string]domain.HashCode{
		"/src/Kept.java":     domain.HashString("kept"),
		"/src/Changed.java":  domain.HashString("v1"),
		"/src/Deleted.java":  domain.HashString("gone"),
		"/src/Deleted2.java": domain.HashString("gone too"),
	}
	current := map[string]domain.HashCode{
		"/src/Kept.java":    domain.HashString("kept"),
		"/src/Changed.java": domain.HashString("v2"),
		"/src/Added.java":   domain.HashString("new"),
	}

	tracker := inputs.NewTracker(previous, current)
	outOfDate, removed := collect(tracker)

	assert.Equal(t, []domain.InputFileDetails{
		{Path: "/src/Added.java", Change: domain.ChangeAdded},
		{Path: "/src/Changed.java", Change: domain.ChangeModified},
	}, outOfDate)
	assert.Equal(t, []domain.InputFileDetails{
		{Path: "/src/Deleted.java", Change: domain.ChangeRemoved},
		{Path: "/src/Deleted2.java", Change: domain.ChangeRemoved},
	}, removed)
	assert.True(t, tracker.HasChanges())
}

func TestTracker_NoPrevious(t *testing.T) {
	tracker := inputs.NewTracker(nil, map[string]domain.HashCode{"/src/A.java": 1})
	outOfDate, removed := collect(tracker)

	assert.Equal(t, []domain.InputFileDetails{{Path: "/src/A.java", Change: domain.ChangeAdded}}, outOfDate)
	assert.Empty(t, removed)
}

func TestTracker_Unchanged(t *testing.T) {
	state := map[string]domain.HashCode{"/src/A.java": 1}
	tracker := inputs.NewTracker(state, state)

	assert.False(t, tracker.HasChanges())
}
