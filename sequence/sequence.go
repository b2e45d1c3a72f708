package sequence

import (
	"iter"

	"github.com/kbukum/seqkit/producer"
	"github.com/kbukum/seqkit/stage"
)

// Pair holds two values produced side by side, as built by Zip and
// ZipWithNext.
type Pair[A, B any] = stage.Pair[A, B]

// Indexed pairs an element with its position, as built by WithIndex.
type Indexed[T any] = stage.Indexed[T]

// Sequence is a lazy, single-pass chain of stages over a producer.
//
// Intermediate methods replace the current producer and return the same
// Sequence, so
//
//	s.Filter(even).OnEach(log).Take(3)
//
// stays pull-driven end to end. Terminal methods drain the producer. A
// Sequence is not safe for concurrent use.
type Sequence[T any] struct {
	p   producer.Producer[T]
	err error
}

// From wraps an existing producer. The Sequence takes ownership of p.
func From[T any](p producer.Producer[T]) *Sequence[T] {
	return &Sequence[T]{p: p}
}

// Of creates a Sequence over the given values.
func Of[T any](items ...T) *Sequence[T] {
	return From(producer.FromSlice(items))
}

// FromSlice creates a Sequence over items.
func FromSlice[T any](items []T) *Sequence[T] {
	return From(producer.FromSlice(items))
}

// FromSeq creates a Sequence over a range-over-func iterator.
func FromSeq[T any](seq iter.Seq[T]) *Sequence[T] {
	return From(producer.FromSeq(seq))
}

// Generate creates an infinite Sequence yielding fn(prev, index), starting
// from seed. The seed itself is never yielded:
//
//	Generate(0, func(x, _ int) int { return x + 1 }) // 1, 2, 3, ...
func Generate[T any](seed T, fn func(T, int) T) *Sequence[T] {
	return From(stage.Generate(func() T { return seed }, fn))
}

// GenerateFunc is Generate with a seed computed on the first pull.
func GenerateFunc[T any](seed func() T, fn func(T, int) T) *Sequence[T] {
	return From(stage.Generate(seed, fn))
}

// Next pulls one step from the current producer.
func (s *Sequence[T]) Next() (producer.Step[T], error) {
	return s.p.Next()
}

// Return terminates the chain, releasing the innermost source, and reports
// value as the final payload.
func (s *Sequence[T]) Return(value T) producer.Step[T] {
	return s.p.Return(value)
}

// Throw injects err into the chain. A source with a recovery branch may
// resume and yield a value step.
func (s *Sequence[T]) Throw(err error) (producer.Step[T], error) {
	return s.p.Throw(err)
}

// Producer returns the current producer.
func (s *Sequence[T]) Producer() producer.Producer[T] {
	return s.p
}

// Iterator returns the current producer so a Sequence satisfies
// producer.Iterable.
func (s *Sequence[T]) Iterator() producer.Producer[T] {
	return s.p
}

// Values returns an iterator over the remaining elements. Breaking out of the
// loop closes the chain. An error raised while iterating ends the loop and is
// reported by Err.
//
//	for v := range s.Values() {
//	    ...
//	}
//	if err := s.Err(); err != nil {
//	    ...
//	}
func (s *Sequence[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		s.err = s.each(func(v T, _ int) bool { return yield(v) })
	}
}

// Err returns the error that ended the last Values loop, or the argument
// error recorded by the last rejected stage call, if any.
func (s *Sequence[T]) Err() error {
	return s.err
}

// each pulls elements with their positions until fn returns false, the
// producer is exhausted or it fails. Stopping early closes the chain.
func (s *Sequence[T]) each(fn func(T, int) bool) error {
	for i := 0; ; i++ {
		st, err := s.p.Next()
		if err != nil {
			return err
		}
		if st.Done {
			return nil
		}
		if !fn(st.Value, i) {
			var zero T
			s.p.Return(zero)
			return nil
		}
	}
}

// reject closes the current chain and replaces it with one that fails with
// err on the next pull. err is also recorded for Err.
func (s *Sequence[T]) reject(err error) *Sequence[T] {
	var zero T
	s.p.Return(zero)
	s.p = producer.Failed[T](err)
	s.err = err
	return s
}

// rejected closes s and returns a Sequence of another element type that
// fails with err on the first pull.
func rejected[T, U any](s *Sequence[T], err error) *Sequence[U] {
	var zero T
	s.p.Return(zero)
	out := From(producer.Failed[U](err))
	out.err = err
	return out
}

func matchAll[T any](T, int) bool { return true }

// predicate returns the first of fns, or a predicate accepting everything.
func predicate[T any](fns []func(T, int) bool) func(T, int) bool {
	if len(fns) > 0 && fns[0] != nil {
		return fns[0]
	}
	return matchAll[T]
}
