package stage

import (
	"github.com/kbukum/seqkit/producer"
	"github.com/kbukum/seqkit/util"
)

// Distinct yields each value the first time it is seen. A source payload is
// passed through unless an equal value was already yielded.
func Distinct[T any](src producer.Producer[T]) producer.Producer[T] {
	return &distinctStage[T, T]{
		link: newLink[T, T](src),
		key:  func(v T, _ int) T { return v },
		tail: true,
	}
}

// DistinctBy yields each element whose key, as computed by fn, has not been
// seen before.
func DistinctBy[T, K any](src producer.Producer[T], fn func(T, int) K) producer.Producer[T] {
	return &distinctStage[T, K]{link: newLink[T, T](src), key: fn}
}

type distinctStage[T, K any] struct {
	link[T, T]
	key  func(T, int) K
	seen util.Seen
	tail bool
	i    int
}

func (s *distinctStage[T, K]) Next() (producer.Step[T], error) {
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
			if s.tail && st.Returned && s.seen.Add(st.Value) {
				return st, nil
			}
			return producer.Done[T](), nil
		}
		k := s.key(st.Value, s.i)
		s.i++
		if s.seen.Add(k) {
			return st, nil
		}
	}
}

func (s *distinctStage[T, K]) Throw(err error) (producer.Step[T], error) { return s.throw(err, s.Next) }
