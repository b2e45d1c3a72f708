package stage

import (
	"github.com/kbukum/seqkit/errors"
	"github.com/kbukum/seqkit/producer"
)

// Indexed pairs an element with its position.
type Indexed[T any] struct {
	Value T
	Index int
}

// Map transforms each element with fn. When the source finishes with a
// payload, fn is applied to it and the result becomes this stage's payload.
func Map[T, U any](src producer.Producer[T], fn func(T, int) U) producer.Producer[U] {
	return &mapStage[T, U]{link: newLink[T, U](src), fn: fn}
}

// Filter keeps elements for which fn returns true.
func Filter[T any](src producer.Producer[T], fn func(T, int) bool) producer.Producer[T] {
	return &filterStage[T]{link: newLink[T, T](src), fn: fn}
}

// Tap calls onValue for each element and passes it through unchanged.
// onError, when set, sees any error raised upstream.
func Tap[T any](src producer.Producer[T], onValue func(T, int), onError func(error)) producer.Producer[T] {
	return &tapStage[T]{link: newLink[T, T](src), onValue: onValue, onError: onError}
}

// OnEach calls fn for each element and passes it through unchanged.
func OnEach[T any](src producer.Producer[T], fn func(T, int)) producer.Producer[T] {
	return Tap(src, fn, nil)
}

// WithIndex pairs each element with its position.
func WithIndex[T any](src producer.Producer[T]) producer.Producer[Indexed[T]] {
	return Map(src, func(v T, i int) Indexed[T] { return Indexed[T]{Value: v, Index: i} })
}

// FlatMap yields every element of fn's result in turn. The result must be
// iterable as U (see producer.Resolve); otherwise the stage fails with
// TYPE_NOT_ITERABLE.
func FlatMap[T, U any](src producer.Producer[T], fn func(T, int) any) producer.Producer[U] {
	return &flatMapStage[T, U]{
		link:        newLink[T, U](src),
		fn:          fn,
		notIterable: func(v any) error { return errors.TypeNotIterable(v) },
	}
}

// Flatten yields every element of each element in turn. Elements that are
// not iterable as U fail the stage with ITEM_NOT_ITERABLE.
func Flatten[T, U any](src producer.Producer[T]) producer.Producer[U] {
	return &flatMapStage[T, U]{
		link:        newLink[T, U](src),
		fn:          func(v T, _ int) any { return v },
		notIterable: func(v any) error { return errors.ItemNotIterable(v) },
	}
}

// Plus yields all of src followed by all of extra.
func Plus[T any](src, extra producer.Producer[T]) producer.Producer[T] {
	return &plusStage[T]{link: newLink[T, T](src), extra: extra}
}

// --- Stage implementations ---

type mapStage[T, U any] struct {
	link[T, U]
	fn func(T, int) U
	i  int
}

func (s *mapStage[T, U]) Next() (producer.Step[U], error) {
	if s.done {
		return producer.Done[U](), nil
	}
	st, err := s.in.next()
	if err != nil {
		return s.fail(err)
	}
	if st.Done {
		s.done = true
		if st.Returned {
			return producer.Final(s.fn(st.Value, s.i)), nil
		}
		return producer.Done[U](), nil
	}
	out := s.fn(st.Value, s.i)
	s.i++
	return producer.Yield(out), nil
}

func (s *mapStage[T, U]) Throw(err error) (producer.Step[U], error) { return s.throw(err, s.Next) }

type filterStage[T any] struct {
	link[T, T]
	fn func(T, int) bool
	i  int
}

func (s *filterStage[T]) Next() (producer.Step[T], error) {
	if s.done {
		return producer.Done[T](), nil
	}
	for {
		st, err := s.in.next()
		if err != nil {
			return s.fail(err)
		}
		if st.Done {
			return s.finish()
		}
		keep := s.fn(st.Value, s.i)
		s.i++
		if keep {
			return st, nil
		}
	}
}

func (s *filterStage[T]) Throw(err error) (producer.Step[T], error) { return s.throw(err, s.Next) }

type tapStage[T any] struct {
	link[T, T]
	onValue func(T, int)
	onError func(error)
	i       int
}

func (s *tapStage[T]) Next() (producer.Step[T], error) {
	if s.done {
		return producer.Done[T](), nil
	}
	st, err := s.in.next()
	if err != nil {
		if s.onError != nil {
			s.onError(err)
		}
		return s.fail(err)
	}
	if st.Done {
		return s.finish()
	}
	s.onValue(st.Value, s.i)
	s.i++
	return st, nil
}

func (s *tapStage[T]) Throw(err error) (producer.Step[T], error) { return s.throw(err, s.Next) }

type flatMapStage[T, U any] struct {
	link[T, U]
	fn          func(T, int) any
	notIterable func(any) error
	current     producer.Producer[U]
	i           int
}

func (s *flatMapStage[T, U]) Next() (producer.Step[U], error) {
	if s.done {
		return producer.Done[U](), nil
	}
	for {
		if s.current != nil {
			st, err := s.current.Next()
			if err != nil {
				return s.fail(err)
			}
			if !st.Done {
				return producer.Yield(st.Value), nil
			}
			s.current = nil
		}
		st, err := s.in.next()
		if err != nil {
			return s.fail(err)
		}
		if st.Done {
			return s.finish()
		}
		out := s.fn(st.Value, s.i)
		s.i++
		inner, ok := producer.Resolve[U](out)
		if !ok {
			return s.fail(s.notIterable(out))
		}
		s.current = inner
	}
}

func (s *flatMapStage[T, U]) Return(value U) producer.Step[U] {
	s.dropCurrent()
	return s.link.Return(value)
}

func (s *flatMapStage[T, U]) Throw(err error) (producer.Step[U], error) {
	s.dropCurrent()
	return s.throw(err, s.Next)
}

func (s *flatMapStage[T, U]) dropCurrent() {
	if s.current != nil {
		var zero U
		s.current.Return(zero)
		s.current = nil
	}
}

type plusStage[T any] struct {
	link[T, T]
	extra   producer.Producer[T]
	onExtra bool
}

func (s *plusStage[T]) Next() (producer.Step[T], error) {
	if s.done {
		return producer.Done[T](), nil
	}
	if !s.onExtra {
		st, err := s.in.next()
		if err != nil {
			return s.fail(err)
		}
		if !st.Done {
			return st, nil
		}
		s.onExtra = true
	}
	st, err := s.extra.Next()
	if err != nil {
		return s.fail(err)
	}
	if st.Done {
		return s.finish()
	}
	return st, nil
}

func (s *plusStage[T]) Return(value T) producer.Step[T] {
	if !s.done {
		var zero T
		s.extra.Return(zero)
	}
	return s.link.Return(value)
}

func (s *plusStage[T]) Throw(err error) (producer.Step[T], error) {
	if s.done || !s.onExtra {
		return s.throw(err, s.Next)
	}
	st, terr := s.extra.Throw(err)
	if terr != nil {
		return s.fail(terr)
	}
	if st.Done {
		return s.finish()
	}
	return st, nil
}
