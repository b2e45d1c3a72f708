package util

import "reflect"

// Equal reports whether a and b hold the same value. Comparable dynamic values
// use ==; anything else (slices, maps, structs holding them) falls back to
// reflect.DeepEqual.
func Equal(a, b any) bool {
	if isComparable(a) && isComparable(b) {
		return a == b
	}
	return reflect.DeepEqual(a, b)
}

// Contains checks if a slice contains a value according to Equal.
func Contains[T any](slice []T, val T) bool {
	return IndexOf(slice, val) >= 0
}

// IndexOf returns the position of the first element Equal to val, or -1.
func IndexOf[T any](slice []T, val T) int {
	for i, item := range slice {
		if Equal(item, val) {
			return i
		}
	}
	return -1
}

// Seen is an append-only set of dynamic values that keeps insertion order.
// Hashable values are looked up in a map; the rest are scanned linearly.
// The zero value is ready to use.
type Seen struct {
	hashed map[any]struct{}
	others []any
	order  []any
}

// Add records v and reports whether it was not present before.
func (s *Seen) Add(v any) bool {
	if s.Contains(v) {
		return false
	}
	if isComparable(v) {
		if s.hashed == nil {
			s.hashed = make(map[any]struct{})
		}
		s.hashed[v] = struct{}{}
	} else {
		s.others = append(s.others, v)
	}
	s.order = append(s.order, v)
	return true
}

// Contains reports whether v has been added.
func (s *Seen) Contains(v any) bool {
	if isComparable(v) {
		_, ok := s.hashed[v]
		return ok
	}
	for _, o := range s.others {
		if reflect.DeepEqual(o, v) {
			return true
		}
	}
	return false
}

// Len returns the number of distinct values added.
func (s *Seen) Len() int { return len(s.order) }

// Values returns the distinct values in first-occurrence order.
func (s *Seen) Values() []any {
	return append([]any(nil), s.order...)
}

func isComparable(v any) bool {
	if v == nil {
		return true
	}
	return reflect.ValueOf(v).Comparable()
}
