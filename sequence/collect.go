package sequence

// MapTo appends fn of each element to dst and returns it.
func MapTo[T, U any](s *Sequence[T], dst []U, fn func(T, int) U) ([]U, error) {
	err := s.each(func(v T, i int) bool {
		dst = append(dst, fn(v, i))
		return true
	})
	return dst, err
}

// FlatMapTo appends the elements of each fn result to dst and returns it. fn
// results are resolved as in FlatMap.
func FlatMapTo[T, U any](s *Sequence[T], dst []U, fn func(T, int) any) ([]U, error) {
	return FlatMap[T, U](s, fn).FilterTo(dst, matchAll[U])
}

// Associate builds a map from the key/value pairs returned by fn. Later keys
// overwrite earlier ones.
func Associate[T any, K comparable, V any](s *Sequence[T], fn func(T, int) (K, V)) (map[K]V, error) {
	return AssociateTo(s, make(map[K]V), fn)
}

// AssociateTo stores the key/value pairs returned by fn in dst and returns it.
func AssociateTo[T any, K comparable, V any](s *Sequence[T], dst map[K]V, fn func(T, int) (K, V)) (map[K]V, error) {
	err := s.each(func(v T, i int) bool {
		k, val := fn(v, i)
		dst[k] = val
		return true
	})
	return dst, err
}

// AssociateBy maps the key returned by fn to its element.
func AssociateBy[T any, K comparable](s *Sequence[T], fn func(T, int) K) (map[K]T, error) {
	return AssociateByTo(s, make(map[K]T), fn)
}

// AssociateByTo stores each element under the key returned by fn in dst.
func AssociateByTo[T any, K comparable](s *Sequence[T], dst map[K]T, fn func(T, int) K) (map[K]T, error) {
	return AssociateTo(s, dst, func(v T, i int) (K, T) { return fn(v, i), v })
}

// AssociateByValue maps keyFn of each element to valueFn of it.
func AssociateByValue[T any, K comparable, V any](s *Sequence[T], keyFn func(T, int) K, valueFn func(T, int) V) (map[K]V, error) {
	return AssociateByValueTo(s, make(map[K]V), keyFn, valueFn)
}

// AssociateByValueTo stores valueFn of each element under keyFn of it in dst.
func AssociateByValueTo[T any, K comparable, V any](s *Sequence[T], dst map[K]V, keyFn func(T, int) K, valueFn func(T, int) V) (map[K]V, error) {
	return AssociateTo(s, dst, func(v T, i int) (K, V) { return keyFn(v, i), valueFn(v, i) })
}

// AssociateWith maps each element to the value returned by fn.
func AssociateWith[T comparable, V any](s *Sequence[T], fn func(T, int) V) (map[T]V, error) {
	return AssociateWithTo(s, make(map[T]V), fn)
}

// AssociateWithTo stores the value returned by fn under each element in dst.
func AssociateWithTo[T comparable, V any](s *Sequence[T], dst map[T]V, fn func(T, int) V) (map[T]V, error) {
	return AssociateTo(s, dst, func(v T, i int) (T, V) { return v, fn(v, i) })
}

// GroupBy groups the elements by the key returned by fn, keeping their order
// within each group.
func GroupBy[T any, K comparable](s *Sequence[T], fn func(T, int) K) (map[K][]T, error) {
	return GroupByTo(s, make(map[K][]T), fn)
}

// GroupByTo appends each element to its group in dst.
func GroupByTo[T any, K comparable](s *Sequence[T], dst map[K][]T, fn func(T, int) K) (map[K][]T, error) {
	return GroupByValueTo(s, dst, fn, identity[T])
}

// GroupByValue groups valueFn of each element by keyFn of it.
func GroupByValue[T any, K comparable, V any](s *Sequence[T], keyFn func(T, int) K, valueFn func(T, int) V) (map[K][]V, error) {
	return GroupByValueTo(s, make(map[K][]V), keyFn, valueFn)
}

// GroupByValueTo appends valueFn of each element to the group for keyFn of it
// in dst.
func GroupByValueTo[T any, K comparable, V any](s *Sequence[T], dst map[K][]V, keyFn func(T, int) K, valueFn func(T, int) V) (map[K][]V, error) {
	err := s.each(func(v T, i int) bool {
		k := keyFn(v, i)
		dst[k] = append(dst[k], valueFn(v, i))
		return true
	})
	return dst, err
}
