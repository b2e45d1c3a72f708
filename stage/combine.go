package stage

import "github.com/kbukum/seqkit/producer"

// Pair holds two values produced side by side.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Zip pulls one element from each source per step and yields fn(a, b, index).
// It stops as soon as either source is exhausted.
func Zip[T, U, R any](src producer.Producer[T], other producer.Producer[U], fn func(T, U, int) R) producer.Producer[R] {
	return &zipStage[T, U, R]{link: newLink[T, R](src), other: other, fn: fn}
}

// ZipWithNext pulls two elements per step and yields fn(first, second, index).
// Pairs do not overlap; an odd trailing element is dropped.
func ZipWithNext[T, R any](src producer.Producer[T], fn func(T, T, int) R) producer.Producer[R] {
	return &zipWithNextStage[T, R]{link: newLink[T, R](src), fn: fn}
}

// RunningFold yields initial followed by every intermediate accumulator.
func RunningFold[T, R any](src producer.Producer[T], initial R, fn func(R, T, int) R) producer.Producer[R] {
	return &runningFoldStage[T, R]{link: newLink[T, R](src), acc: initial, fn: fn}
}

// RunningReduce seeds the accumulator with the first element and yields it
// after each element. fn receives the element's position, so its first call
// sees index 1.
func RunningReduce[T any](src producer.Producer[T], fn func(T, T, int) T) producer.Producer[T] {
	return &runningReduceStage[T]{link: newLink[T, T](src), fn: fn}
}

// Generate yields fn(prev, index) forever, starting from the value seed
// returns. seed is evaluated on the first pull and never yielded itself.
func Generate[T any](seed func() T, fn func(T, int) T) producer.Producer[T] {
	var (
		cur     T
		started bool
		i       int
	)
	return producer.FromFunc(func() (T, bool) {
		if !started {
			cur = seed()
			started = true
		}
		cur = fn(cur, i)
		i++
		return cur, true
	})
}

type zipStage[T, U, R any] struct {
	link[T, R]
	other producer.Producer[U]
	fn    func(T, U, int) R
	i     int
}

func (s *zipStage[T, U, R]) Next() (producer.Step[R], error) {
	if s.done {
		return producer.Done[R](), nil
	}
	one, err := s.in.next()
	if err != nil {
		return s.fail(err)
	}
	two, err := s.other.Next()
	if err != nil {
		return s.fail(err)
	}
	if one.Done || two.Done {
		return s.finish()
	}
	out := s.fn(one.Value, two.Value, s.i)
	s.i++
	return producer.Yield(out), nil
}

func (s *zipStage[T, U, R]) Return(value R) producer.Step[R] {
	if !s.done {
		var zero U
		s.other.Return(zero)
	}
	return s.link.Return(value)
}

func (s *zipStage[T, U, R]) Throw(err error) (producer.Step[R], error) { return s.throw(err, s.Next) }

type zipWithNextStage[T, R any] struct {
	link[T, R]
	fn func(T, T, int) R
	i  int
}

func (s *zipWithNextStage[T, R]) Next() (producer.Step[R], error) {
	if s.done {
		return producer.Done[R](), nil
	}
	one, err := s.in.next()
	if err != nil {
		return s.fail(err)
	}
	if one.Done {
		return s.finish()
	}
	two, err := s.in.next()
	if err != nil {
		return s.fail(err)
	}
	if two.Done {
		return s.finish()
	}
	out := s.fn(one.Value, two.Value, s.i)
	s.i++
	return producer.Yield(out), nil
}

func (s *zipWithNextStage[T, R]) Throw(err error) (producer.Step[R], error) {
	return s.throw(err, s.Next)
}

type runningFoldStage[T, R any] struct {
	link[T, R]
	acc     R
	fn      func(R, T, int) R
	started bool
	i       int
}

func (s *runningFoldStage[T, R]) Next() (producer.Step[R], error) {
	if s.done {
		return producer.Done[R](), nil
	}
	if !s.started {
		s.started = true
		return producer.Yield(s.acc), nil
	}
	st, err := s.in.next()
	if err != nil {
		return s.fail(err)
	}
	if st.Done {
		return s.finish()
	}
	s.acc = s.fn(s.acc, st.Value, s.i)
	s.i++
	return producer.Yield(s.acc), nil
}

func (s *runningFoldStage[T, R]) Throw(err error) (producer.Step[R], error) {
	return s.throw(err, s.Next)
}

type runningReduceStage[T any] struct {
	link[T, T]
	acc T
	fn  func(T, T, int) T
	i   int
}

func (s *runningReduceStage[T]) Next() (producer.Step[T], error) {
	if s.done {
		return producer.Done[T](), nil
	}
	st, err := s.in.next()
	if err != nil {
		return s.fail(err)
	}
	if st.Done {
		return s.finish()
	}
	if s.i == 0 {
		s.acc = st.Value
	} else {
		s.acc = s.fn(s.acc, st.Value, s.i)
	}
	s.i++
	return producer.Yield(s.acc), nil
}

func (s *runningReduceStage[T]) Throw(err error) (producer.Step[T], error) {
	return s.throw(err, s.Next)
}
