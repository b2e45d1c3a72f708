package sequence

import (
	"cmp"

	"github.com/kbukum/seqkit/errors"
)

// Fold accumulates the elements into initial with fn.
func Fold[T, R any](s *Sequence[T], initial R, fn func(acc R, v T, i int) R) (R, error) {
	acc := initial
	err := s.each(func(v T, i int) bool {
		acc = fn(acc, v, i)
		return true
	})
	if err != nil {
		var zero R
		return zero, err
	}
	return acc, nil
}

// Max returns the largest element. Ties keep the first. It fails with
// EMPTY_SEQUENCE on an empty sequence.
func Max[T cmp.Ordered](s *Sequence[T]) (T, error) {
	return orEmpty[T](MaxOrNull(s))("max")
}

// MaxOrNull is Max reporting an empty sequence as false.
func MaxOrNull[T cmp.Ordered](s *Sequence[T]) (T, bool, error) {
	v, _, ok, err := extremum(s, identity[T], greater[T])
	return v, ok, err
}

// Min returns the smallest element. Ties keep the first. It fails with
// EMPTY_SEQUENCE on an empty sequence.
func Min[T cmp.Ordered](s *Sequence[T]) (T, error) {
	return orEmpty[T](MinOrNull(s))("min")
}

// MinOrNull is Min reporting an empty sequence as false.
func MinOrNull[T cmp.Ordered](s *Sequence[T]) (T, bool, error) {
	v, _, ok, err := extremum(s, identity[T], less[T])
	return v, ok, err
}

// MaxBy returns the element with the largest key.
func MaxBy[T any, K cmp.Ordered](s *Sequence[T], fn func(T, int) K) (T, error) {
	return orEmpty[T](MaxByOrNull(s, fn))("maxBy")
}

// MaxByOrNull is MaxBy reporting an empty sequence as false.
func MaxByOrNull[T any, K cmp.Ordered](s *Sequence[T], fn func(T, int) K) (T, bool, error) {
	v, _, ok, err := extremum(s, fn, greater[K])
	return v, ok, err
}

// MinBy returns the element with the smallest key.
func MinBy[T any, K cmp.Ordered](s *Sequence[T], fn func(T, int) K) (T, error) {
	return orEmpty[T](MinByOrNull(s, fn))("minBy")
}

// MinByOrNull is MinBy reporting an empty sequence as false.
func MinByOrNull[T any, K cmp.Ordered](s *Sequence[T], fn func(T, int) K) (T, bool, error) {
	v, _, ok, err := extremum(s, fn, less[K])
	return v, ok, err
}

// MaxOf returns the largest value of fn over the elements.
func MaxOf[T any, K cmp.Ordered](s *Sequence[T], fn func(T, int) K) (K, error) {
	return orEmpty[K](MaxOfOrNull(s, fn))("maxOf")
}

// MaxOfOrNull is MaxOf reporting an empty sequence as false.
func MaxOfOrNull[T any, K cmp.Ordered](s *Sequence[T], fn func(T, int) K) (K, bool, error) {
	_, k, ok, err := extremum(s, fn, greater[K])
	return k, ok, err
}

// MinOf returns the smallest value of fn over the elements.
func MinOf[T any, K cmp.Ordered](s *Sequence[T], fn func(T, int) K) (K, error) {
	return orEmpty[K](MinOfOrNull(s, fn))("minOf")
}

// MinOfOrNull is MinOf reporting an empty sequence as false.
func MinOfOrNull[T any, K cmp.Ordered](s *Sequence[T], fn func(T, int) K) (K, bool, error) {
	_, k, ok, err := extremum(s, fn, less[K])
	return k, ok, err
}

// MaxOfWith returns the value of fn kept by cmp, replacing the running value
// whenever cmp(current, candidate) returns 1.
func MaxOfWith[T, R any](s *Sequence[T], cmp func(a, b R) int, fn func(T, int) R) (R, error) {
	return orEmpty[R](MaxOfWithOrNull(s, cmp, fn))("maxOfWith")
}

// MaxOfWithOrNull is MaxOfWith reporting an empty sequence as false.
func MaxOfWithOrNull[T, R any](s *Sequence[T], cmp func(a, b R) int, fn func(T, int) R) (R, bool, error) {
	_, r, ok, err := extremum(s, fn, func(cur, cand R) bool { return cmp(cur, cand) == 1 })
	return r, ok, err
}

// MinOfWith returns the value of fn kept by cmp, replacing the running value
// whenever cmp(current, candidate) returns -1.
func MinOfWith[T, R any](s *Sequence[T], cmp func(a, b R) int, fn func(T, int) R) (R, error) {
	return orEmpty[R](MinOfWithOrNull(s, cmp, fn))("minOfWith")
}

// MinOfWithOrNull is MinOfWith reporting an empty sequence as false.
func MinOfWithOrNull[T, R any](s *Sequence[T], cmp func(a, b R) int, fn func(T, int) R) (R, bool, error) {
	_, r, ok, err := extremum(s, fn, func(cur, cand R) bool { return cmp(cur, cand) == -1 })
	return r, ok, err
}

// ToSet collects the distinct elements.
func ToSet[T comparable](s *Sequence[T]) (map[T]struct{}, error) {
	set := make(map[T]struct{})
	err := s.each(func(v T, _ int) bool {
		set[v] = struct{}{}
		return true
	})
	return set, err
}

// Unzip splits a sequence of pairs into two slices.
func Unzip[A, B any](s *Sequence[Pair[A, B]]) ([]A, []B, error) {
	firsts, seconds := []A{}, []B{}
	err := s.each(func(p Pair[A, B], _ int) bool {
		firsts = append(firsts, p.First)
		seconds = append(seconds, p.Second)
		return true
	})
	return firsts, seconds, err
}

// extremum scans s keeping the element whose key wins against every later
// key: the kept element is replaced when replace(kept, candidate) is true.
func extremum[T, K any](s *Sequence[T], key func(T, int) K, replace func(kept, candidate K) bool) (T, K, bool, error) {
	var (
		best    T
		bestKey K
		found   bool
	)
	err := s.each(func(v T, i int) bool {
		k := key(v, i)
		if !found || replace(bestKey, k) {
			best, bestKey, found = v, k, true
		}
		return true
	})
	if err != nil {
		var (
			zero  T
			zeroK K
		)
		return zero, zeroK, false, err
	}
	return best, bestKey, found, nil
}

// orEmpty turns an OrNull result into one failing with EMPTY_SEQUENCE for
// operation when nothing was found.
func orEmpty[T any](v T, ok bool, err error) func(operation string) (T, error) {
	return func(operation string) (T, error) {
		if err != nil {
			return v, err
		}
		if !ok {
			return v, errors.EmptySequence(operation)
		}
		return v, nil
	}
}

func identity[T any](v T, _ int) T { return v }

func greater[K cmp.Ordered](kept, candidate K) bool { return candidate > kept }

func less[K cmp.Ordered](kept, candidate K) bool { return candidate < kept }
