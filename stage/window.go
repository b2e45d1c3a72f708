package stage

import (
	"slices"

	"github.com/kbukum/seqkit/producer"
)

// Chunked groups elements into batches of n and yields fn(batch, index).
// Full batches are numbered from 0. A trailing partial batch receives the
// number of elements it holds as its index instead.
func Chunked[T, U any](src producer.Producer[T], n int, fn func([]T, int) U) producer.Producer[U] {
	return &chunkedStage[T, U]{link: newLink[T, U](src), n: n, fn: fn}
}

// Windowed slides a window of size elements over src, advancing by step, and
// yields fn(window, index) where index counts the elements pulled before the
// emission. After each emission the first step elements of the window are
// discarded, so a step of size or more starts the next window empty. With
// partial set, the tail is emitted as successively shorter windows once src
// is exhausted; an empty tail emits nothing.
func Windowed[T, U any](src producer.Producer[T], size, step int, partial bool, fn func([]T, int) U) producer.Producer[U] {
	return &windowedStage[T, U]{
		link:    newLink[T, U](src),
		size:    size,
		step:    step,
		partial: partial,
		fn:      fn,
		window:  make([]T, 0, size),
	}
}

type chunkedStage[T, U any] struct {
	link[T, U]
	n     int
	fn    func([]T, int) U
	batch int
}

func (s *chunkedStage[T, U]) Next() (producer.Step[U], error) {
	if s.done {
		return producer.Done[U](), nil
	}
	chunk := make([]T, 0, s.n)
	for i := 0; i < s.n; i++ {
		st, err := s.in.next()
		if err != nil {
			return s.fail(err)
		}
		if st.Done {
			s.done = true
			if len(chunk) > 0 {
				return producer.Yield(s.fn(chunk, i)), nil
			}
			return producer.Done[U](), nil
		}
		chunk = append(chunk, st.Value)
	}
	out := s.fn(chunk, s.batch)
	s.batch++
	return producer.Yield(out), nil
}

func (s *chunkedStage[T, U]) Throw(err error) (producer.Step[U], error) { return s.throw(err, s.Next) }

type windowedStage[T, U any] struct {
	link[T, U]
	size     int
	step     int
	partial  bool
	fn       func([]T, int) U
	window   []T
	pulled   int
	draining bool
}

func (s *windowedStage[T, U]) Next() (producer.Step[U], error) {
	if s.done {
		return producer.Done[U](), nil
	}
	if s.draining {
		return s.drain()
	}
	for {
		st, err := s.in.next()
		if err != nil {
			return s.fail(err)
		}
		if st.Done {
			if !s.partial {
				return s.finish()
			}
			s.draining = true
			return s.drain()
		}
		s.window = append(s.window, st.Value)
		if len(s.window) == s.size {
			out := s.fn(slices.Clone(s.window), s.pulled)
			s.pulled++
			s.slide()
			return producer.Yield(out), nil
		}
		s.pulled++
	}
}

// drain emits the remaining tail once the source is exhausted.
func (s *windowedStage[T, U]) drain() (producer.Step[U], error) {
	if len(s.window) == 0 {
		return s.finish()
	}
	out := s.fn(slices.Clone(s.window), s.pulled)
	if len(s.window) > s.step {
		s.window = s.window[s.step:]
	} else {
		s.window = s.window[:0]
	}
	return producer.Yield(out), nil
}

func (s *windowedStage[T, U]) slide() {
	if s.step >= s.size {
		s.window = s.window[:0]
		return
	}
	s.window = append(s.window[:0], s.window[s.step:]...)
}

func (s *windowedStage[T, U]) Throw(err error) (producer.Step[U], error) { return s.throw(err, s.Next) }
