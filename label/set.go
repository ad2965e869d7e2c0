package label

import (
	"slices"
	"strings"
)

// Set is a sorted, duplicate-free list of labels.
// Construct it with NewSet; a nil Set is the empty set.
type Set []Label

// NewSet de-duplicates and sorts the given labels. Invalid labels are kept
// so that callers can detect them via Set.Valid.
func NewSet(labels ...Label) Set {
	if len(labels) == 0 {
		return nil
	}
	out := make(Set, len(labels))
	copy(out, labels)
	slices.Sort(out)

	return slices.Compact(out)
}

// Len returns the number of distinct labels.
func (s Set) Len() int { return len(s) }

// Contains reports membership in O(log n).
func (s Set) Contains(l Label) bool {
	_, ok := slices.BinarySearch(s, l)

	return ok
}

// Valid reports whether every member belongs to the alphabet.
func (s Set) Valid() bool {
	for _, l := range s {
		if !l.Valid() {
			return false
		}
	}

	return true
}

// Union returns the merged set of s and o.
func (s Set) Union(o Set) Set {
	merged := make([]Label, 0, len(s)+len(o))
	merged = append(merged, s...)
	merged = append(merged, o...)

	return NewSet(merged...)
}

// String renders "{left, front}".
func (s Set) String() string {
	parts := make([]string, len(s))
	for i, l := range s {
		parts[i] = l.String()
	}

	return "{" + strings.Join(parts, ", ") + "}"
}
