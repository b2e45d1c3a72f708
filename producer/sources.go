package producer

import "iter"

// --- Constructors ---

// FromSlice creates a producer over items. Throw terminates it and hands the
// error back.
func FromSlice[T any](items []T) Producer[T] {
	return &sliceProducer[T]{items: items}
}

// Of creates a producer over the given values.
func Of[T any](items ...T) Producer[T] {
	return FromSlice(items)
}

// Empty creates a producer that is done on the first pull.
func Empty[T any]() Producer[T] {
	return &sliceProducer[T]{}
}

// FromSeq adapts a range-over-func iterator. Return and Throw stop the
// underlying iterator.
func FromSeq[T any](seq iter.Seq[T]) Producer[T] {
	return &seqProducer[T]{seq: seq}
}

// FromFunc creates a producer from a function that returns the next value and
// false once exhausted.
func FromFunc[T any](next func() (T, bool)) Producer[T] {
	return NewGenerator(Generator[T]{
		Next: func() (T, bool, error) {
			v, ok := next()
			return v, ok, nil
		},
	})
}

// Failed creates a producer whose first pull returns err.
func Failed[T any](err error) Producer[T] {
	return &failedProducer[T]{err: err}
}

// --- Internal producers ---

type sliceProducer[T any] struct {
	items []T
	index int
	done  bool
}

func (p *sliceProducer[T]) Next() (Step[T], error) {
	if p.done || p.index >= len(p.items) {
		p.done = true
		return Done[T](), nil
	}
	v := p.items[p.index]
	p.index++
	return Yield(v), nil
}

func (p *sliceProducer[T]) Return(value T) Step[T] {
	p.done = true
	return Final(value)
}

func (p *sliceProducer[T]) Throw(err error) (Step[T], error) {
	p.done = true
	return Done[T](), err
}

type seqProducer[T any] struct {
	seq  iter.Seq[T]
	next func() (T, bool)
	stop func()
	done bool
}

func (p *seqProducer[T]) Next() (Step[T], error) {
	if p.done {
		return Done[T](), nil
	}
	if p.next == nil {
		p.next, p.stop = iter.Pull(p.seq)
	}
	v, ok := p.next()
	if !ok {
		p.finish()
		return Done[T](), nil
	}
	return Yield(v), nil
}

func (p *seqProducer[T]) Return(value T) Step[T] {
	p.finish()
	return Final(value)
}

func (p *seqProducer[T]) Throw(err error) (Step[T], error) {
	p.finish()
	return Done[T](), err
}

func (p *seqProducer[T]) finish() {
	p.done = true
	if p.stop != nil {
		p.stop()
	}
}

type failedProducer[T any] struct {
	err  error
	done bool
}

func (p *failedProducer[T]) Next() (Step[T], error) {
	if p.done {
		return Done[T](), nil
	}
	p.done = true
	return Done[T](), p.err
}

func (p *failedProducer[T]) Return(value T) Step[T] {
	p.done = true
	return Final(value)
}

func (p *failedProducer[T]) Throw(err error) (Step[T], error) {
	p.done = true
	return Done[T](), err
}
