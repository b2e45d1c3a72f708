package stage

import "github.com/kbukum/seqkit/producer"

// Take yields at most n elements and never pulls past the n-th. The next pull
// after the n-th closes the source; when the source ends first, its payload is
// passed through.
func Take[T any](src producer.Producer[T], n int) producer.Producer[T] {
	return &takeStage[T]{link: newLink[T, T](src), n: n}
}

// TakeWhile yields elements until fn first returns false. The failing
// element is not yielded and the source is closed.
func TakeWhile[T any](src producer.Producer[T], fn func(T, int) bool) producer.Producer[T] {
	return &takeWhileStage[T]{link: newLink[T, T](src), fn: fn}
}

// Drop discards the first n elements. The source payload is passed through.
func Drop[T any](src producer.Producer[T], n int) producer.Producer[T] {
	return &dropStage[T]{link: newLink[T, T](src), n: n}
}

// DropWhile discards elements while fn returns true. fn is not called again
// once it has returned false.
func DropWhile[T any](src producer.Producer[T], fn func(T, int) bool) producer.Producer[T] {
	return &dropWhileStage[T]{link: newLink[T, T](src), fn: fn}
}

type takeStage[T any] struct {
	link[T, T]
	n     int
	count int
}

func (s *takeStage[T]) Next() (producer.Step[T], error) {
	if s.done {
		return producer.Done[T](), nil
	}
	if s.count >= s.n {
		return s.stop()
	}
	st, err := s.in.next()
	if err != nil {
		return s.fail(err)
	}
	if st.Done {
		s.done = true
		return st, nil
	}
	s.count++
	return st, nil
}

func (s *takeStage[T]) Throw(err error) (producer.Step[T], error) { return s.throw(err, s.Next) }

type takeWhileStage[T any] struct {
	link[T, T]
	fn func(T, int) bool
	i  int
}

func (s *takeWhileStage[T]) Next() (producer.Step[T], error) {
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
	if !s.fn(st.Value, s.i) {
		return s.stop()
	}
	s.i++
	return st, nil
}

func (s *takeWhileStage[T]) Throw(err error) (producer.Step[T], error) { return s.throw(err, s.Next) }

type dropStage[T any] struct {
	link[T, T]
	n       int
	dropped int
}

func (s *dropStage[T]) Next() (producer.Step[T], error) {
	if s.done {
		return producer.Done[T](), nil
	}
	for {
		st, err := s.in.next()
		if err != nil {
			return s.fail(err)
		}
		if st.Done {
			s.done = true
			if s.dropped < s.n {
				return producer.Done[T](), nil
			}
			return st, nil
		}
		if s.dropped < s.n {
			s.dropped++
			continue
		}
		return st, nil
	}
}

func (s *dropStage[T]) Throw(err error) (producer.Step[T], error) { return s.throw(err, s.Next) }

type dropWhileStage[T any] struct {
	link[T, T]
	fn       func(T, int) bool
	i        int
	yielding bool
}

func (s *dropWhileStage[T]) Next() (producer.Step[T], error) {
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
		if !s.yielding {
			keep := !s.fn(st.Value, s.i)
			s.i++
			if !keep {
				continue
			}
			s.yielding = true
		}
		return st, nil
	}
}

func (s *dropWhileStage[T]) Throw(err error) (producer.Step[T], error) { return s.throw(err, s.Next) }
