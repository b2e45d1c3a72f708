package producer

// Step is one result of pulling a Producer.
//
// A value step has Done=false. A done step may carry a final payload in Value,
// in which case Returned is true; a plain exhaustion leaves Returned false and
// Value at its zero value.
type Step[T any] struct {
	Value    T
	Done     bool
	Returned bool
}

// Yield returns a value step.
func Yield[T any](v T) Step[T] {
	return Step[T]{Value: v}
}

// Done returns a done step without payload.
func Done[T any]() Step[T] {
	return Step[T]{Done: true}
}

// Final returns a done step carrying v as its payload.
func Final[T any](v T) Step[T] {
	return Step[T]{Value: v, Done: true, Returned: true}
}

// Producer is a single-pass pull source.
//
// After a done step or an error, every later Next returns a done step with no
// payload and a nil error. A Producer is owned by exactly one consumer.
type Producer[T any] interface {
	// Next pulls one step.
	Next() (Step[T], error)
	// Return terminates the producer, releasing whatever it reads from, and
	// reports value as the final payload.
	Return(value T) Step[T]
	// Throw injects err at the current suspension point. Producers with a
	// recovery branch may resume and yield a value step; all others terminate
	// and return err.
	Throw(err error) (Step[T], error)
}

// Iterable is anything that can hand out a fresh Producer.
type Iterable[T any] interface {
	Iterator() Producer[T]
}

// Collect drains p into a slice. On error the values pulled so far are
// returned along with it.
func Collect[T any](p Producer[T]) ([]T, error) {
	var result []T
	for {
		st, err := p.Next()
		if err != nil {
			return result, err
		}
		if st.Done {
			return result, nil
		}
		result = append(result, st.Value)
	}
}
