package store

import (
	"slices"

	"github.com/google/uuid"
	"github.com/kevinaaaquil/oct-library/apperr"
)

// checkUniqueIDs rejects collections where two records share an id.
func checkUniqueIDs[T any](items []T, id func(T) string, what string) error {
	seen := make(map[string]struct{}, len(items))
	for _, it := range items {
		key := id(it)
		if _, dup := seen[key]; dup {
			return apperr.Conflictf("duplicate %s id %q", what, key)
		}
		seen[key] = struct{}{}
	}
	return nil
}

// cloneNonNil copies items so the store never aliases caller memory. The result is never nil.
func cloneNonNil[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	return out
}

func indexByID[T any](items []T, id func(T) string, key string) int {
	return slices.IndexFunc(items, func(it T) bool { return id(it) == key })
}

// replaced returns a copy of items with the record at key swapped for item.
func replaced[T any](items []T, id func(T) string, key string, item T, what string) ([]T, error) {
	i := indexByID(items, id, key)
	if i < 0 {
		return nil, apperr.NotFoundf("%s %q not found", what, key)
	}
	next := cloneNonNil(items)
	next[i] = item
	return next, nil
}

// appended returns a copy of items with item added at the end.
func appended[T any](items []T, id func(T) string, item T, what string) ([]T, error) {
	if indexByID(items, id, id(item)) >= 0 {
		return nil, apperr.Conflictf("%s %q already exists", what, id(item))
	}
	next := make([]T, len(items), len(items)+1)
	copy(next, items)
	return append(next, item), nil
}

// without returns a copy of items minus the record at key.
func without[T any](items []T, id func(T) string, key string, what string) ([]T, error) {
	i := indexByID(items, id, key)
	if i < 0 {
		return nil, apperr.NotFoundf("%s %q not found", what, key)
	}
	return slices.Delete(cloneNonNil(items), i, i+1), nil
}

// newID generates an id for records added without one.
func newID() string {
	return uuid.NewString()
}
