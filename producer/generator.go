package producer

// Generator describes a hand-written producer.
type Generator[T any] struct {
	// Next returns the next value, false once exhausted, or an error.
	Next func() (T, bool, error)
	// Recover, when set, is called with an error injected through Throw. It
	// may resume the generator by returning a value and true.
	Recover func(err error) (T, bool, error)
	// Final, when set, supplies the payload reported on exhaustion.
	Final func() T
}

// NewGenerator creates a producer driven by g.
func NewGenerator[T any](g Generator[T]) Producer[T] {
	return &generatorProducer[T]{g: g}
}

type generatorProducer[T any] struct {
	g    Generator[T]
	done bool
}

func (p *generatorProducer[T]) Next() (Step[T], error) {
	if p.done {
		return Done[T](), nil
	}
	v, ok, err := p.g.Next()
	if err != nil {
		p.done = true
		return Done[T](), err
	}
	if !ok {
		return p.exhaust(), nil
	}
	return Yield(v), nil
}

func (p *generatorProducer[T]) Return(value T) Step[T] {
	p.done = true
	return Final(value)
}

func (p *generatorProducer[T]) Throw(err error) (Step[T], error) {
	if p.done || p.g.Recover == nil {
		p.done = true
		return Done[T](), err
	}
	v, ok, rerr := p.g.Recover(err)
	if rerr != nil {
		p.done = true
		return Done[T](), rerr
	}
	if !ok {
		return p.exhaust(), nil
	}
	return Yield(v), nil
}

func (p *generatorProducer[T]) exhaust() Step[T] {
	p.done = true
	if p.g.Final != nil {
		return Final(p.g.Final())
	}
	return Done[T]()
}
