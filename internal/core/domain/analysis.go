package domain

import (
	"iter"
	"maps"
	"slices"
	"strings"
)

// ClassSetAnalysisData is the immutable dependency graph of one compiled class set.
//
// When a full rebuild cause is recorded, Dependents reports DependencyToAll for every class;
// the per-class data is kept for Constants and Children.
type ClassSetAnalysisData struct {
	dependents map[string]DependentsSet
	constants  map[string]IntSet
	children   map[string][]string // values sorted, unique

	fullRebuildCause    string
	hasFullRebuildCause bool
}

// Dependents returns the classes that must be recompiled when className changes.
func (a *ClassSetAnalysisData) Dependents(className string) DependentsSet {
	if a.hasFullRebuildCause {
		return DependentsToAll(a.fullRebuildCause)
	}
	if set, ok := a.dependents[className]; ok {
		return set
	}
	return EmptyDependents()
}

// Constants returns the constant IDs referenced by className.
func (a *ClassSetAnalysisData) Constants(className string) IntSet {
	return a.constants[className]
}

// Children returns the direct subclasses of className in sorted order.
func (a *ClassSetAnalysisData) Children(className string) []string {
	return slices.Clone(a.children[className])
}

// FullRebuildCause returns the recorded full rebuild cause, if any.
func (a *ClassSetAnalysisData) FullRebuildCause() (string, bool) {
	return a.fullRebuildCause, a.hasFullRebuildCause
}

// DependentsEntries yields the stored dependents, ignoring any full rebuild cause,
// ordered by class name.
func (a *ClassSetAnalysisData) DependentsEntries() iter.Seq2[string, DependentsSet] {
	return sortedEntries(a.dependents)
}

// ConstantsEntries yields the stored constants ordered by class name.
func (a *ClassSetAnalysisData) ConstantsEntries() iter.Seq2[string, IntSet] {
	return sortedEntries(a.constants)
}

// ChildrenEntries yields the stored subclasses ordered by class name.
func (a *ClassSetAnalysisData) ChildrenEntries() iter.Seq2[string, []string] {
	return func(yield func(string, []string) bool) {
		for name, children := range sortedEntries(a.children) {
			if !yield(name, slices.Clone(children)) {
				return
			}
		}
	}
}

// DependentsLen returns the number of classes with a stored dependents entry.
func (a *ClassSetAnalysisData) DependentsLen() int { return len(a.dependents) }

// ConstantsLen returns the number of classes with a stored constants entry.
func (a *ClassSetAnalysisData) ConstantsLen() int { return len(a.constants) }

// ChildrenLen returns the number of classes with a stored children entry.
func (a *ClassSetAnalysisData) ChildrenLen() int { return len(a.children) }

// ClassNames returns every class name that appears as a key in any of the maps, sorted.
func (a *ClassSetAnalysisData) ClassNames() []string {
	names := make(map[string]struct{}, len(a.dependents))
	for name := range a.dependents {
		names[name] = struct{}{}
	}
	for name := range a.constants {
		names[name] = struct{}{}
	}
	for name := range a.children {
		names[name] = struct{}{}
	}
	return slices.Sorted(maps.Keys(names))
}

// ReferencingClasses returns, sorted, the classes that were read to produce this analysis.
// Those are the exact dependents, the children and the constant holders. Dependents keys
// are referenced classes and only appear when they qualify on their own.
func (a *ClassSetAnalysisData) ReferencingClasses() []string {
	names := make(map[string]struct{})
	for _, set := range a.dependents {
		if exact, ok := set.(ExactDependents); ok {
			for _, name := range exact.classes {
				names[name] = struct{}{}
			}
		}
	}
	for name := range a.constants {
		names[name] = struct{}{}
	}
	for _, children := range a.children {
		for _, name := range children {
			names[name] = struct{}{}
		}
	}
	return slices.Sorted(maps.Keys(names))
}

// Equal reports whether both aggregates hold the same maps and cause.
func (a *ClassSetAnalysisData) Equal(other *ClassSetAnalysisData) bool {
	if a.hasFullRebuildCause != other.hasFullRebuildCause || a.fullRebuildCause != other.fullRebuildCause {
		return false
	}
	return maps.EqualFunc(a.dependents, other.dependents, DependentsSet.Equal) &&
		maps.EqualFunc(a.constants, other.constants, IntSet.Equal) &&
		maps.EqualFunc(a.children, other.children, slices.Equal[[]string])
}

// String renders a deterministic, line-oriented dump of the aggregate.
func (a *ClassSetAnalysisData) String() string {
	var b strings.Builder
	if a.hasFullRebuildCause {
		b.WriteString("full rebuild cause: " + a.fullRebuildCause + "\n")
	}
	b.WriteString("dependents:\n")
	for name, set := range a.DependentsEntries() {
		b.WriteString("  " + name + " -> " + set.String() + "\n")
	}
	b.WriteString("constants:\n")
	for name, set := range a.ConstantsEntries() {
		b.WriteString("  " + name + " -> " + set.String() + "\n")
	}
	b.WriteString("children:\n")
	for name, children := range a.ChildrenEntries() {
		b.WriteString("  " + name + " -> [" + strings.Join(children, " ") + "]\n")
	}
	return b.String()
}

func sortedEntries[V any](m map[string]V) iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		for _, key := range slices.Sorted(maps.Keys(m)) {
			if !yield(key, m[key]) {
				return
			}
		}
	}
}
