// Package inputs computes which source files changed between two planning runs.
package inputs

import (
	"cmp"
	"slices"

	"go.trai.ch/recomp/internal/core/domain"
)

// Tracker implements ports.IncrementalInputs from the path to content hash maps of
// the previous and the current run.
type Tracker struct {
	outOfDate []domain.InputFileDetails // sorted by path
	removed   []domain.InputFileDetails // sorted by path
}

// NewTracker compares previous with current. A nil previous map means every current
// file was added.
func NewTracker(previous, current map[string]domain.HashCode) *Tracker {
	t := &Tracker{}
	for path, hash := range current {
		before, existed := previous[path]
		switch {
		case !existed:
			t.outOfDate = append(t.outOfDate, domain.InputFileDetails{Path: path, Change: domain.ChangeAdded})
		case before != hash:
			t.outOfDate = append(t.outOfDate, domain.InputFileDetails{Path: path, Change: domain.ChangeModified})
		}
	}
	for path := range previous {
		if _, ok := current[path]; !ok {
			t.removed = append(t.removed, domain.InputFileDetails{Path: path, Change: domain.ChangeRemoved})
		}
	}

	byPath := func(a, b domain.InputFileDetails) int { return cmp.Compare(a.Path, b.Path) }
	slices.SortFunc(t.outOfDate, byPath)
	slices.SortFunc(t.removed, byPath)
	return t
}

// OutOfDate calls action for every added or modified file.
func (t *Tracker) OutOfDate(action func(domain.InputFileDetails)) {
	for _, d := range t.outOfDate {
		action(d)
	}
}

// Removed calls action for every removed file.
func (t *Tracker) Removed(action func(domain.InputFileDetails)) {
	for _, d := range t.removed {
		action(d)
	}
}

// HasChanges reports whether any file was added, modified or removed.
func (t *Tracker) HasChanges() bool {
	return len(t.outOfDate) > 0 || len(t.removed) > 0
}
