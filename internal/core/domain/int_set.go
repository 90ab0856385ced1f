package domain

import (
	"fmt"
	"slices"
)

// IntSet is an immutable set of integer constant IDs.
type IntSet struct {
	values []int32 // sorted, unique
}

// NewIntSet creates an IntSet from the given values. Duplicates are removed.
func NewIntSet(values ...int32) IntSet {
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	return IntSet{values: slices.Compact(sorted)}
}

// Values returns the members in ascending order.
func (s IntSet) Values() []int32 {
	return slices.Clone(s.values)
}

// Len returns the number of members.
func (s IntSet) Len() int {
	return len(s.values)
}

// Contains reports whether v is a member.
func (s IntSet) Contains(v int32) bool {
	_, found := slices.BinarySearch(s.values, v)
	return found
}

// Union returns a set holding the members of both sets.
func (s IntSet) Union(other IntSet) IntSet {
	return NewIntSet(slices.Concat(s.values, other.values)...)
}

// Equal reports whether both sets hold the same members.
func (s IntSet) Equal(other IntSet) bool {
	return slices.Equal(s.values, other.values)
}

func (s IntSet) String() string {
	return fmt.Sprint(s.values)
}
