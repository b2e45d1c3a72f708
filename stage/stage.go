package stage

import "github.com/kbukum/seqkit/producer"

// upstream reads from a source producer and holds at most one step handed
// back by a recovered Throw, so the stage can process it as if pulled.
type upstream[T any] struct {
	src     producer.Producer[T]
	pending *producer.Step[T]
}

func (u *upstream[T]) next() (producer.Step[T], error) {
	if u.pending != nil {
		st := *u.pending
		u.pending = nil
		return st, nil
	}
	return u.src.Next()
}

// link carries the state every single-source stage shares: its upstream and
// whether it has finished.
type link[In, Out any] struct {
	in   upstream[In]
	done bool
}

func newLink[In, Out any](src producer.Producer[In]) link[In, Out] {
	return link[In, Out]{in: upstream[In]{src: src}}
}

func (l *link[In, Out]) finish() (producer.Step[Out], error) {
	l.done = true
	return producer.Done[Out](), nil
}

func (l *link[In, Out]) fail(err error) (producer.Step[Out], error) {
	l.done = true
	return producer.Done[Out](), err
}

// stop ends the stage early, closing the upstream chain without a payload.
func (l *link[In, Out]) stop() (producer.Step[Out], error) {
	if !l.done {
		l.done = true
		var zero In
		l.in.src.Return(zero)
	}
	return producer.Done[Out](), nil
}

// Return closes the upstream chain and reports value as the final payload.
func (l *link[In, Out]) Return(value Out) producer.Step[Out] {
	if !l.done {
		l.done = true
		var zero In
		l.in.src.Return(zero)
	}
	return producer.Final(value)
}

// throw forwards err upstream. A recovered step is queued and resumed
// through next, the owning stage's Next.
func (l *link[In, Out]) throw(err error, next func() (producer.Step[Out], error)) (producer.Step[Out], error) {
	if l.done {
		return producer.Done[Out](), err
	}
	st, terr := l.in.src.Throw(err)
	if terr != nil {
		return l.fail(terr)
	}
	l.in.pending = &st
	return next()
}
