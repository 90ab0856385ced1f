package domain

import (
	"maps"
	"slices"
)

// AnalysisBuilder accumulates per-class facts and produces an immutable ClassSetAnalysisData.
// It is not safe for concurrent use.
type AnalysisBuilder struct {
	dependents map[string]DependentsSet
	constants  map[string]IntSet
	children   map[string]map[string]struct{}

	fullRebuildCause    string
	hasFullRebuildCause bool
}

// NewAnalysisBuilder creates an empty AnalysisBuilder.
func NewAnalysisBuilder() *AnalysisBuilder {
	return &AnalysisBuilder{
		dependents: make(map[string]DependentsSet),
		constants:  make(map[string]IntSet),
		children:   make(map[string]map[string]struct{}),
	}
}

// SetDependents replaces the dependents entry for className.
func (b *AnalysisBuilder) SetDependents(className string, set DependentsSet) *AnalysisBuilder {
	b.dependents[className] = set
	return b
}

// AddDependents adds dependent classes to className's entry.
// An existing DependencyToAll entry absorbs them.
func (b *AnalysisBuilder) AddDependents(className string, dependents ...string) *AnalysisBuilder {
	switch existing := b.dependents[className].(type) {
	case DependencyToAll:
		return b
	case ExactDependents:
		b.dependents[className] = NewExactDependents(slices.Concat(existing.classes, dependents)...)
	default:
		b.dependents[className] = NewExactDependents(dependents...)
	}
	return b
}

// AddConstants records constant IDs referenced by className.
func (b *AnalysisBuilder) AddConstants(className string, ids ...int32) *AnalysisBuilder {
	b.constants[className] = b.constants[className].Union(NewIntSet(ids...))
	return b
}

// SetConstants replaces the constants entry for className.
func (b *AnalysisBuilder) SetConstants(className string, ids IntSet) *AnalysisBuilder {
	b.constants[className] = ids
	return b
}

// AddChildren records direct subclasses of parent.
func (b *AnalysisBuilder) AddChildren(parent string, children ...string) *AnalysisBuilder {
	set, ok := b.children[parent]
	if !ok {
		set = make(map[string]struct{}, len(children))
		b.children[parent] = set
	}
	for _, child := range children {
		set[child] = struct{}{}
	}
	return b
}

// SetFullRebuildCause records a cause that forces every class to be recompiled.
func (b *AnalysisBuilder) SetFullRebuildCause(cause string) *AnalysisBuilder {
	b.fullRebuildCause = cause
	b.hasFullRebuildCause = true
	return b
}

// Build returns the accumulated aggregate. The builder can keep being used afterwards
// without affecting the returned value.
func (b *AnalysisBuilder) Build() *ClassSetAnalysisData {
	children := make(map[string][]string, len(b.children))
	for parent, set := range b.children {
		children[parent] = slices.Sorted(maps.Keys(set))
	}
	return &ClassSetAnalysisData{
		dependents:          maps.Clone(b.dependents),
		constants:           maps.Clone(b.constants),
		children:            children,
		fullRebuildCause:    b.fullRebuildCause,
		hasFullRebuildCause: b.hasFullRebuildCause,
	}
}

// MergeAnalysis combines the analysis of a previous compilation with the analysis of the
// classes that were just recompiled. Classes listed in stale (recompiled or deleted) had
// their outgoing references re-derived by the delta, so everything the previous analysis
// learned from their bytecode is dropped: their constants, and their appearance as a
// dependent or as a child of another class, and a DependencyToAll recorded for them.
// Exact entries keyed by a stale class came from other classes' bytecode and are kept.
// The full rebuild cause of the result is the delta's.
func MergeAnalysis(previous, delta *ClassSetAnalysisData, stale []string) *ClassSetAnalysisData {
	isStale := make(map[string]struct{}, len(stale))
	for _, name := range stale {
		isStale[name] = struct{}{}
	}
	dropStale := func(name string) bool {
		_, gone := isStale[name]
		return gone
	}

	b := NewAnalysisBuilder()
	if previous != nil {
		for name, set := range previous.DependentsEntries() {
			switch s := set.(type) {
			case DependencyToAll:
				if !dropStale(name) {
					b.SetDependents(name, s)
				}
			case ExactDependents:
				kept := slices.DeleteFunc(s.Classes(), dropStale)
				if len(kept) > 0 || s.Len() == 0 {
					b.SetDependents(name, NewExactDependents(kept...))
				}
			}
		}
		for name, ids := range previous.ConstantsEntries() {
			if !dropStale(name) {
				b.SetConstants(name, ids)
			}
		}
		for parent, children := range previous.ChildrenEntries() {
			if kept := slices.DeleteFunc(children, dropStale); len(kept) > 0 {
				b.AddChildren(parent, kept...)
			}
		}
	}

	for name, set := range delta.DependentsEntries() {
		switch s := set.(type) {
		case DependencyToAll:
			b.SetDependents(name, s)
		case ExactDependents:
			b.AddDependents(name, s.classes...)
		}
	}
	for name, ids := range delta.ConstantsEntries() {
		b.SetConstants(name, ids)
	}
	for parent, children := range delta.ChildrenEntries() {
		b.AddChildren(parent, children...)
	}
	if cause, ok := delta.FullRebuildCause(); ok {
		b.SetFullRebuildCause(cause)
	}
	return b.Build()
}
