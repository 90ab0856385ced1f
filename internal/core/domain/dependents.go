package domain

import (
	"fmt"
	"slices"
	"strings"
)

// DependentsSet describes which classes have to be recompiled when a class changes.
// The set of implementations is closed: ExactDependents and DependencyToAll. Consumers
// are expected to type-switch over both.
type DependentsSet interface {
	// IsDependencyToAll reports whether every class is a dependent.
	IsDependencyToAll() bool
	// Equal reports whether two sets describe the same dependents.
	Equal(other DependentsSet) bool
	fmt.Stringer

	isDependentsSet()
}

var (
	_ DependentsSet = ExactDependents{}
	_ DependentsSet = DependencyToAll{}
)

// ExactDependents is a finite, closed set of dependent class names.
type ExactDependents struct {
	classes []string // sorted, unique
}

// NewExactDependents creates an ExactDependents from the given class names.
// Duplicates are removed.
func NewExactDependents(classes ...string) ExactDependents {
	sorted := slices.Clone(classes)
	slices.Sort(sorted)
	return ExactDependents{classes: slices.Compact(sorted)}
}

// EmptyDependents returns an ExactDependents with no classes.
func EmptyDependents() ExactDependents {
	return ExactDependents{}
}

// Classes returns the dependent class names in sorted order.
func (e ExactDependents) Classes() []string {
	return slices.Clone(e.classes)
}

// Len returns the number of dependents.
func (e ExactDependents) Len() int {
	return len(e.classes)
}

// Contains reports whether className is a dependent.
func (e ExactDependents) Contains(className string) bool {
	_, found := slices.BinarySearch(e.classes, className)
	return found
}

// IsDependencyToAll returns false.
func (e ExactDependents) IsDependencyToAll() bool { return false }

// Equal reports whether other is an ExactDependents with the same classes.
func (e ExactDependents) Equal(other DependentsSet) bool {
	o, ok := other.(ExactDependents)
	return ok && slices.Equal(e.classes, o.classes)
}

func (e ExactDependents) String() string {
	return "[" + strings.Join(e.classes, " ") + "]"
}

func (e ExactDependents) isDependentsSet() {}

// DependencyToAll means every class has to be treated as a dependent.
// The cause is optional and only used for reporting.
type DependencyToAll struct {
	cause    string
	hasCause bool
}

// DependentsToAll creates a DependencyToAll carrying a human-readable cause.
func DependentsToAll(cause string) DependencyToAll {
	return DependencyToAll{cause: cause, hasCause: true}
}

// DependentsToAllWithoutCause creates a DependencyToAll with no recorded cause.
func DependentsToAllWithoutCause() DependencyToAll {
	return DependencyToAll{}
}

// Cause returns the recorded cause, if any.
func (d DependencyToAll) Cause() (string, bool) {
	return d.cause, d.hasCause
}

// IsDependencyToAll returns true.
func (d DependencyToAll) IsDependencyToAll() bool { return true }

// Equal reports whether other is a DependencyToAll with the same cause.
func (d DependencyToAll) Equal(other DependentsSet) bool {
	o, ok := other.(DependencyToAll)
	return ok && d == o
}

func (d DependencyToAll) String() string {
	if !d.hasCause {
		return "all"
	}
	return fmt.Sprintf("all (%s)", d.cause)
}

func (d DependencyToAll) isDependentsSet() {}
