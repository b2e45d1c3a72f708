package sequence

import (
	"github.com/kbukum/seqkit/errors"
	"github.com/kbukum/seqkit/producer"
	"github.com/kbukum/seqkit/stage"
)

// Go methods cannot declare type parameters, so operations that change the
// element type are package functions taking the source Sequence.

// Map transforms each element with fn.
func Map[T, U any](s *Sequence[T], fn func(T, int) U) *Sequence[U] {
	return From(stage.Map(s.p, fn))
}

// Chunked groups elements into slices of n. The last slice may be shorter.
// A non-positive n fails with OUT_OF_BOUNDS.
func Chunked[T any](s *Sequence[T], n int) *Sequence[[]T] {
	return ChunkedFunc(s, n, func(chunk []T, _ int) []T { return chunk })
}

// ChunkedFunc groups elements into slices of n and yields fn(chunk, index).
// Full chunks are numbered from 0; a trailing partial chunk receives its
// length as index.
func ChunkedFunc[T, U any](s *Sequence[T], n int, fn func([]T, int) U) *Sequence[U] {
	if n <= 0 {
		return rejected[T, U](s, errors.OutOfBounds("size", n))
	}
	return From(stage.Chunked(s.p, n, fn))
}

// Windowed yields windows of size elements, advancing by step. With partial
// set, the tail is emitted as shorter windows once the source is exhausted:
//
//	Windowed(Of(1, 2, 3, 4, 5, 6, 7, 8, 9, 10), 5, 3, true)
//	// [1 2 3 4 5] [4 5 6 7 8] [7 8 9 10] [10]
//
// A non-positive size or step fails with OUT_OF_BOUNDS.
func Windowed[T any](s *Sequence[T], size, step int, partial bool) *Sequence[[]T] {
	return WindowedFunc(s, size, step, partial, func(w []T, _ int) []T { return w })
}

// WindowedFunc is Windowed yielding fn(window, index), where index counts the
// elements pulled before the window was emitted. Each window is a fresh
// slice fn may keep.
func WindowedFunc[T, U any](s *Sequence[T], size, step int, partial bool, fn func([]T, int) U) *Sequence[U] {
	if size <= 0 {
		return rejected[T, U](s, errors.OutOfBounds("size", size))
	}
	if step <= 0 {
		return rejected[T, U](s, errors.OutOfBounds("step", step))
	}
	return From(stage.Windowed(s.p, size, step, partial, fn))
}

// WithIndex pairs each element with its position.
func WithIndex[T any](s *Sequence[T]) *Sequence[Indexed[T]] {
	return From(stage.WithIndex(s.p))
}

// Zip pairs elements of s and other until either runs out.
func Zip[T, U any](s *Sequence[T], other producer.Producer[U]) *Sequence[Pair[T, U]] {
	return ZipFunc(s, other, func(a T, b U, _ int) Pair[T, U] { return Pair[T, U]{First: a, Second: b} })
}

// ZipFunc combines elements of s and other with fn until either runs out.
func ZipFunc[T, U, R any](s *Sequence[T], other producer.Producer[U], fn func(T, U, int) R) *Sequence[R] {
	return From(stage.Zip(s.p, other, fn))
}

// ZipWithNext pairs consecutive elements: (0,1), (2,3), ... An odd trailing
// element is dropped.
func ZipWithNext[T any](s *Sequence[T]) *Sequence[Pair[T, T]] {
	return ZipWithNextFunc(s, func(a, b T, _ int) Pair[T, T] { return Pair[T, T]{First: a, Second: b} })
}

// ZipWithNextFunc combines consecutive element pairs with fn.
func ZipWithNextFunc[T, R any](s *Sequence[T], fn func(T, T, int) R) *Sequence[R] {
	return From(stage.ZipWithNext(s.p, fn))
}

// FlatMap yields the elements of each fn result in turn. fn may return a
// []U, an iter.Seq[U], a producer.Producer[U] (including a *Sequence[U]) or a
// producer.Iterable[U]; anything else fails with TYPE_NOT_ITERABLE.
func FlatMap[T, U any](s *Sequence[T], fn func(T, int) any) *Sequence[U] {
	return From(stage.FlatMap[T, U](s.p, fn))
}

// Flatten yields the elements of each element in turn. Elements that cannot
// be iterated as U fail with ITEM_NOT_ITERABLE.
func Flatten[T, U any](s *Sequence[T]) *Sequence[U] {
	return From(stage.Flatten[T, U](s.p))
}

// RunningFold yields initial and then the accumulator after each element.
func RunningFold[T, R any](s *Sequence[T], initial R, fn func(acc R, v T, i int) R) *Sequence[R] {
	return From(stage.RunningFold(s.p, initial, fn))
}

// Scan is RunningFold.
func Scan[T, R any](s *Sequence[T], initial R, fn func(acc R, v T, i int) R) *Sequence[R] {
	return RunningFold(s, initial, fn)
}
