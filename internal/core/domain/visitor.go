package domain

import "strings"

// PhysicalSnapshotVisitor receives a depth-first walk over a PhysicalSnapshot tree.
// Every PreVisitDirectory call is matched by exactly one PostVisitDirectory call.
type PhysicalSnapshotVisitor interface {
	// PreVisitDirectory is called before the contents of a directory.
	// Returning false skips the contents; PostVisitDirectory is still called.
	PreVisitDirectory(directory *DirectorySnapshot) bool
	// Visit is called for each regular or missing file.
	Visit(file PhysicalSnapshot)
	// PostVisitDirectory is called when leaving a directory.
	PostVisitDirectory()
}

// RelativePathTracker keeps track of the directories entered during a walk so visitors can
// compute paths relative to the root being visited. The root itself is not part of any
// relative path.
type RelativePathTracker struct {
	segments []string
}

// Enter records that the walk descended into a directory with the given name.
func (t *RelativePathTracker) Enter(name string) {
	t.segments = append(t.segments, name)
}

// Leave records that the walk left the current directory.
func (t *RelativePathTracker) Leave() {
	t.segments = t.segments[:len(t.segments)-1]
}

// IsRoot reports whether the walk is currently outside of any directory.
func (t *RelativePathTracker) IsRoot() bool {
	return len(t.segments) == 0
}

// Relative returns the root-relative path of an entry called name inside the current directory.
func (t *RelativePathTracker) Relative(name string) string {
	if len(t.segments) <= 1 {
		return name
	}
	return strings.Join(t.segments[1:], "/") + "/" + name
}
