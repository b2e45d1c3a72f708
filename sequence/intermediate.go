package sequence

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/kbukum/seqkit/errors"
	"github.com/kbukum/seqkit/logger"
	"github.com/kbukum/seqkit/observability"
	"github.com/kbukum/seqkit/producer"
	"github.com/kbukum/seqkit/stage"
	"github.com/kbukum/seqkit/util"
)

// Filter keeps elements for which fn returns true.
func (s *Sequence[T]) Filter(fn func(T, int) bool) *Sequence[T] {
	s.p = stage.Filter(s.p, fn)
	return s
}

// FilterNot keeps elements for which fn returns false.
func (s *Sequence[T]) FilterNot(fn func(T, int) bool) *Sequence[T] {
	s.p = stage.Filter(s.p, func(v T, i int) bool { return !fn(v, i) })
	return s
}

// Distinct drops elements equal to one already yielded.
func (s *Sequence[T]) Distinct() *Sequence[T] {
	s.p = stage.Distinct(s.p)
	return s
}

// DistinctBy drops elements whose key equals the key of one already yielded.
func (s *Sequence[T]) DistinctBy(fn func(T, int) any) *Sequence[T] {
	s.p = stage.DistinctBy(s.p, fn)
	return s
}

// Drop skips the first n elements. A negative n closes the chain and the
// NEGATIVE_DROP_SIZE error is returned by the next pull or terminal call, so
// chaining continues; Err reports it immediately.
func (s *Sequence[T]) Drop(n int) *Sequence[T] {
	if n < 0 {
		return s.reject(errors.NegativeDropSize(n))
	}
	s.p = stage.Drop(s.p, n)
	return s
}

// DropWhile skips elements while fn returns true.
func (s *Sequence[T]) DropWhile(fn func(T, int) bool) *Sequence[T] {
	s.p = stage.DropWhile(s.p, fn)
	return s
}

// Take keeps at most n elements. A negative n closes the chain and the
// OUT_OF_BOUNDS error is returned by the next pull or terminal call, so
// chaining continues; Err reports it immediately.
func (s *Sequence[T]) Take(n int) *Sequence[T] {
	if n < 0 {
		return s.reject(errors.OutOfBounds("n", n))
	}
	s.p = stage.Take(s.p, n)
	return s
}

// TakeWhile keeps elements until fn first returns false.
func (s *Sequence[T]) TakeWhile(fn func(T, int) bool) *Sequence[T] {
	s.p = stage.TakeWhile(s.p, fn)
	return s
}

// OnEach calls fn for every element as it passes.
func (s *Sequence[T]) OnEach(fn func(T, int)) *Sequence[T] {
	s.p = stage.OnEach(s.p, fn)
	return s
}

// Plus appends the elements of other. A *Sequence is itself a producer.
func (s *Sequence[T]) Plus(other producer.Producer[T]) *Sequence[T] {
	s.p = stage.Plus(s.p, other)
	return s
}

// PlusSlice appends items.
func (s *Sequence[T]) PlusSlice(items []T) *Sequence[T] {
	return s.Plus(producer.FromSlice(items))
}

// PlusElement appends a single element.
func (s *Sequence[T]) PlusElement(v T) *Sequence[T] {
	return s.Plus(producer.Of(v))
}

// Minus drops every element equal to one of elements.
func (s *Sequence[T]) Minus(elements ...T) *Sequence[T] {
	s.p = stage.Filter(s.p, func(v T, _ int) bool { return !util.Contains(elements, v) })
	return s
}

// MinusElement drops the first element equal to v.
func (s *Sequence[T]) MinusElement(v T) *Sequence[T] {
	found := false
	s.p = stage.Filter(s.p, func(x T, _ int) bool {
		if !found && util.Equal(x, v) {
			found = true
			return false
		}
		return true
	})
	return s
}

// RunningReduce yields the accumulated value after each element, starting
// with the first element itself.
func (s *Sequence[T]) RunningReduce(fn func(acc, v T, i int) T) *Sequence[T] {
	s.p = stage.RunningReduce(s.p, fn)
	return s
}

// Log writes each element at debug level, and any error at error level, to
// the logger registered under component.
func (s *Sequence[T]) Log(component string) *Sequence[T] {
	l := logger.Get(component)
	zl := l.GetLogger()
	s.p = stage.Tap(s.p,
		func(v T, i int) {
			if l.Enabled(zerolog.DebugLevel) {
				l.Debug("element", logger.ElementFields(i, v))
			}
		},
		func(err error) {
			zl.Error().
				Str(logger.FieldCode, string(errors.CodeOf(err))).
				Str(logger.FieldError, err.Error()).
				Msg("sequence failed")
		},
	)
	return s
}

// Observe records the elements, errors and completion of the chain under
// name. The run span starts on the first pull, as a child of any span in
// ctx. metrics may be nil to trace without recording metrics.
func (s *Sequence[T]) Observe(ctx context.Context, name string, metrics *observability.Metrics) *Sequence[T] {
	s.p = &observed[T]{src: s.p, ctx: ctx, name: name, metrics: metrics}
	return s
}
