// Package selection implements the small id sets visitors build up during a session,
// such as reserved books and the want-to-read list.
package selection

import "slices"

// Set is an ordered set of ids. The zero value is an empty set.
// Sets are values: Toggle returns a new Set and never modifies the receiver.
type Set struct {
	ids []string
}

// Of builds a set from ids, keeping the first occurrence of duplicates.
func Of(ids ...string) Set {
	var s Set
	for _, id := range ids {
		if !s.Has(id) {
			s.ids = append(s.ids, id)
		}
	}
	return s
}

// Toggle removes id when present and appends it otherwise.
// Ids are not checked against any collection.
func (s Set) Toggle(id string) Set {
	if i := slices.Index(s.ids, id); i >= 0 {
		return Set{ids: slices.Delete(slices.Clone(s.ids), i, i+1)}
	}
	next := make([]string, len(s.ids), len(s.ids)+1)
	copy(next, s.ids)
	return Set{ids: append(next, id)}
}

func (s Set) Has(id string) bool {
	return slices.Contains(s.ids, id)
}

func (s Set) Len() int {
	return len(s.ids)
}

// IDs returns the members in insertion order. The result is never nil.
func (s Set) IDs() []string {
	if len(s.ids) == 0 {
		return []string{}
	}
	return slices.Clone(s.ids)
}

// Equal reports whether both sets have the same members, regardless of order.
func (s Set) Equal(o Set) bool {
	if len(s.ids) != len(o.ids) {
		return false
	}
	for _, id := range s.ids {
		if !o.Has(id) {
			return false
		}
	}
	return true
}
