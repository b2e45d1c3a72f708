package sequence

import (
	"context"

	"github.com/kbukum/seqkit/observability"
	"github.com/kbukum/seqkit/producer"
)

type observed[T any] struct {
	src     producer.Producer[T]
	ctx     context.Context
	name    string
	metrics *observability.Metrics
	run     *observability.Run
	done    bool
}

func (o *observed[T]) start() {
	if o.run == nil {
		o.run = observability.StartRun(o.ctx, o.name, o.metrics)
	}
}

func (o *observed[T]) Next() (producer.Step[T], error) {
	if o.done {
		return producer.Done[T](), nil
	}
	o.start()
	st, err := o.src.Next()
	return o.record(st, err)
}

func (o *observed[T]) Return(value T) producer.Step[T] {
	if !o.done {
		o.done = true
		if o.run != nil {
			o.run.End(observability.StatusCancelled)
		}
		var zero T
		o.src.Return(zero)
	}
	return producer.Final(value)
}

func (o *observed[T]) Throw(err error) (producer.Step[T], error) {
	if o.done {
		return producer.Done[T](), err
	}
	o.start()
	st, terr := o.src.Throw(err)
	return o.record(st, terr)
}

func (o *observed[T]) record(st producer.Step[T], err error) (producer.Step[T], error) {
	switch {
	case err != nil:
		o.done = true
		o.run.Fail(err)
	case st.Done:
		o.done = true
		o.run.End(observability.StatusOK)
	default:
		o.run.Element()
	}
	return st, err
}
