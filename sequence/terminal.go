package sequence

import (
	"github.com/kbukum/seqkit/errors"
	"github.com/kbukum/seqkit/stage"
	"github.com/kbukum/seqkit/util"
)

// All reports whether every element satisfies fn. It stops at the first
// element that does not.
func (s *Sequence[T]) All(fn func(T, int) bool) (bool, error) {
	result := true
	err := s.each(func(v T, i int) bool {
		result = fn(v, i)
		return result
	})
	return result, err
}

// Any reports whether some element satisfies fn. It stops at the first one
// that does.
func (s *Sequence[T]) Any(fn func(T, int) bool) (bool, error) {
	found := false
	err := s.each(func(v T, i int) bool {
		found = fn(v, i)
		return !found
	})
	return found, err
}

// None reports whether no element satisfies fn, or whether the sequence is
// empty when fn is omitted.
func (s *Sequence[T]) None(fn ...func(T, int) bool) (bool, error) {
	found, err := s.Any(predicate(fn))
	return !found, err
}

// Average returns the mean of the elements. It fails with
// NON_NUMERIC_SEQUENCE on a non-numeric element and EMPTY_SEQUENCE when there
// are none.
func (s *Sequence[T]) Average() (float64, error) {
	var (
		sum   float64
		count int
		bad   error
	)
	err := s.each(func(v T, _ int) bool {
		f, ok := util.ToFloat(v)
		if !ok {
			bad = errors.NonNumericSequence(v)
			return false
		}
		sum += f
		count++
		return true
	})
	if err != nil {
		return 0, err
	}
	if bad != nil {
		return 0, bad
	}
	if count == 0 {
		return 0, errors.EmptySequence("average")
	}
	return sum / float64(count), nil
}

// Contains reports whether an element equals v.
func (s *Sequence[T]) Contains(v T) (bool, error) {
	i, err := s.IndexOf(v)
	return i >= 0, err
}

// Count returns the number of elements satisfying fn, or of all elements
// when fn is omitted.
func (s *Sequence[T]) Count(fn ...func(T, int) bool) (int, error) {
	return s.CountFunc(predicate(fn))
}

// CountFunc returns the number of elements satisfying fn.
func (s *Sequence[T]) CountFunc(fn func(T, int) bool) (int, error) {
	count := 0
	err := s.each(func(v T, i int) bool {
		if fn(v, i) {
			count++
		}
		return true
	})
	return count, err
}

// ElementAt returns the element at index. It fails with ELEMENT_NOT_FOUND
// when there is no such element.
func (s *Sequence[T]) ElementAt(index int) (T, error) {
	v, ok, err := s.ElementAtOrNull(index)
	if err != nil {
		return v, err
	}
	if !ok {
		return v, errors.ElementNotFoundAt(index)
	}
	return v, nil
}

// ElementAtOrElse returns the element at index, or defaultValue.
func (s *Sequence[T]) ElementAtOrElse(index int, defaultValue T) (T, error) {
	v, ok, err := s.ElementAtOrNull(index)
	if err != nil {
		return v, err
	}
	if !ok {
		return defaultValue, nil
	}
	return v, nil
}

// ElementAtOrNull returns the element at index and whether it exists.
func (s *Sequence[T]) ElementAtOrNull(index int) (T, bool, error) {
	var zero T
	if index < 0 {
		return zero, false, nil
	}
	return s.Find(func(_ T, i int) bool { return i == index })
}

// Find returns the first element satisfying fn and whether there was one.
func (s *Sequence[T]) Find(fn func(T, int) bool) (T, bool, error) {
	var (
		found T
		ok    bool
	)
	err := s.each(func(v T, i int) bool {
		if fn(v, i) {
			found, ok = v, true
			return false
		}
		return true
	})
	if err != nil {
		var zero T
		return zero, false, err
	}
	return found, ok, nil
}

// FindLast returns the last element satisfying fn and whether there was one.
func (s *Sequence[T]) FindLast(fn func(T, int) bool) (T, bool, error) {
	var (
		found T
		ok    bool
	)
	err := s.each(func(v T, i int) bool {
		if fn(v, i) {
			found, ok = v, true
		}
		return true
	})
	if err != nil {
		var zero T
		return zero, false, err
	}
	return found, ok, nil
}

// First returns the first element satisfying fn, or the first element when
// fn is omitted. It fails with EMPTY_SEQUENCE when there is none. Elements
// after the match stay in the sequence.
func (s *Sequence[T]) First(fn ...func(T, int) bool) (T, error) {
	v, ok, err := s.FirstOrNull(fn...)
	if err != nil {
		return v, err
	}
	if !ok {
		return v, errors.EmptySequence("first")
	}
	return v, nil
}

// FirstOrNull is First reporting absence as false instead of an error.
func (s *Sequence[T]) FirstOrNull(fn ...func(T, int) bool) (T, bool, error) {
	match := predicate(fn)
	s.p = stage.DropWhile(s.p, func(v T, i int) bool { return !match(v, i) })
	st, err := s.p.Next()
	if err != nil || st.Done {
		var zero T
		return zero, false, err
	}
	return st.Value, true, nil
}

// ForEach calls fn for every element.
func (s *Sequence[T]) ForEach(fn func(T, int)) error {
	return s.each(func(v T, i int) bool {
		fn(v, i)
		return true
	})
}

// IndexOf returns the position of the first element equal to v, or -1.
func (s *Sequence[T]) IndexOf(v T) (int, error) {
	return s.IndexOfFirst(func(x T, _ int) bool { return util.Equal(x, v) })
}

// IndexOfFirst returns the position of the first element satisfying fn, or -1.
func (s *Sequence[T]) IndexOfFirst(fn func(T, int) bool) (int, error) {
	found := -1
	err := s.each(func(v T, i int) bool {
		if fn(v, i) {
			found = i
			return false
		}
		return true
	})
	if err != nil {
		return -1, err
	}
	return found, nil
}

// IndexOfLast returns the position of the last element satisfying fn, or -1.
func (s *Sequence[T]) IndexOfLast(fn func(T, int) bool) (int, error) {
	found := -1
	err := s.each(func(v T, i int) bool {
		if fn(v, i) {
			found = i
		}
		return true
	})
	if err != nil {
		return -1, err
	}
	return found, nil
}

// LastIndexOf returns the position of the last element equal to v, or -1.
func (s *Sequence[T]) LastIndexOf(v T) (int, error) {
	return s.IndexOfLast(func(x T, _ int) bool { return util.Equal(x, v) })
}

// Last returns the last element satisfying fn, or the last element when fn
// is omitted. It fails with ELEMENT_NOT_FOUND when there is none.
func (s *Sequence[T]) Last(fn ...func(T, int) bool) (T, error) {
	v, ok, err := s.LastOrNull(fn...)
	if err != nil {
		return v, err
	}
	if !ok {
		return v, errors.ElementNotFound("last")
	}
	return v, nil
}

// LastOrNull is Last reporting absence as false instead of an error.
func (s *Sequence[T]) LastOrNull(fn ...func(T, int) bool) (T, bool, error) {
	return s.FindLast(predicate(fn))
}

// MaxWith returns the element kept by cmp: the running element is replaced
// whenever cmp(current, candidate) returns 1. It fails with EMPTY_SEQUENCE on
// an empty sequence.
func (s *Sequence[T]) MaxWith(cmp func(a, b T) int) (T, error) {
	return orEmpty[T](s.MaxWithOrNull(cmp))("maxWith")
}

// MaxWithOrNull is MaxWith reporting an empty sequence as false.
func (s *Sequence[T]) MaxWithOrNull(cmp func(a, b T) int) (T, bool, error) {
	v, _, ok, err := extremum(s, identity[T], func(cur, cand T) bool { return cmp(cur, cand) == 1 })
	return v, ok, err
}

// MinWith returns the element kept by cmp: the running element is replaced
// whenever cmp(current, candidate) returns -1. It fails with EMPTY_SEQUENCE
// on an empty sequence.
func (s *Sequence[T]) MinWith(cmp func(a, b T) int) (T, error) {
	return orEmpty[T](s.MinWithOrNull(cmp))("minWith")
}

// MinWithOrNull is MinWith reporting an empty sequence as false.
func (s *Sequence[T]) MinWithOrNull(cmp func(a, b T) int) (T, bool, error) {
	v, _, ok, err := extremum(s, identity[T], func(cur, cand T) bool { return cmp(cur, cand) == -1 })
	return v, ok, err
}

// Partition splits the elements into those satisfying fn and the rest,
// keeping their order.
func (s *Sequence[T]) Partition(fn func(T, int) bool) (matching, rest []T, err error) {
	matching, rest = []T{}, []T{}
	err = s.each(func(v T, i int) bool {
		if fn(v, i) {
			matching = append(matching, v)
		} else {
			rest = append(rest, v)
		}
		return true
	})
	return matching, rest, err
}

// Reduce folds the elements into the first one. fn first sees index 1. It
// fails with EMPTY_SEQUENCE on an empty sequence.
func (s *Sequence[T]) Reduce(fn func(acc, v T, i int) T) (T, error) {
	return orEmpty[T](s.ReduceOrNull(fn))("reduce")
}

// ReduceOrNull is Reduce reporting an empty sequence as false.
func (s *Sequence[T]) ReduceOrNull(fn func(acc, v T, i int) T) (T, bool, error) {
	var acc T
	started := false
	err := s.each(func(v T, i int) bool {
		if !started {
			acc, started = v, true
		} else {
			acc = fn(acc, v, i)
		}
		return true
	})
	if err != nil {
		var zero T
		return zero, false, err
	}
	return acc, started, nil
}

// Single returns the only element satisfying fn, or the only element when
// fn is omitted. It fails with NOT_A_SINGLE_SEQUENCE on a second match and
// EMPTY_SEQUENCE on none.
func (s *Sequence[T]) Single(fn ...func(T, int) bool) (T, error) {
	v, n, err := s.single(predicate(fn))
	switch {
	case err != nil:
		return v, err
	case n == 0:
		return v, errors.EmptySequence("single")
	case n > 1:
		var zero T
		return zero, errors.NotASingleSequence()
	}
	return v, nil
}

// SingleOrNull is Single reporting both failure cases as false.
func (s *Sequence[T]) SingleOrNull(fn ...func(T, int) bool) (T, bool, error) {
	v, n, err := s.single(predicate(fn))
	if err != nil || n != 1 {
		var zero T
		return zero, false, err
	}
	return v, true, nil
}

// single returns the first match and the number of matches seen, stopping
// at the second.
func (s *Sequence[T]) single(fn func(T, int) bool) (T, int, error) {
	var found T
	n := 0
	err := s.each(func(v T, i int) bool {
		if !fn(v, i) {
			return true
		}
		n++
		if n == 1 {
			found = v
		}
		return n < 2
	})
	return found, n, err
}

// Sum returns the total of the elements as float64. It fails with
// NON_NUMERIC_SEQUENCE on a non-numeric element. An empty sequence sums to 0.
func (s *Sequence[T]) Sum() (float64, error) {
	var (
		sum float64
		bad error
	)
	err := s.each(func(v T, _ int) bool {
		f, ok := util.ToFloat(v)
		if !ok {
			bad = errors.NonNumericSequence(v)
			return false
		}
		sum += f
		return true
	})
	if err != nil {
		return 0, err
	}
	if bad != nil {
		return 0, bad
	}
	return sum, nil
}

// SumOf returns the total of fn over the elements.
func (s *Sequence[T]) SumOf(fn func(T, int) float64) (float64, error) {
	var sum float64
	err := s.each(func(v T, i int) bool {
		sum += fn(v, i)
		return true
	})
	return sum, err
}

// ToSlice collects the remaining elements.
func (s *Sequence[T]) ToSlice() ([]T, error) {
	return s.FilterTo([]T{}, matchAll[T])
}

// FilterTo appends the elements satisfying fn to dst and returns it.
func (s *Sequence[T]) FilterTo(dst []T, fn func(T, int) bool) ([]T, error) {
	err := s.each(func(v T, i int) bool {
		if fn(v, i) {
			dst = append(dst, v)
		}
		return true
	})
	return dst, err
}

// FilterNotTo appends the elements not satisfying fn to dst and returns it.
func (s *Sequence[T]) FilterNotTo(dst []T, fn func(T, int) bool) ([]T, error) {
	return s.FilterTo(dst, func(v T, i int) bool { return !fn(v, i) })
}

