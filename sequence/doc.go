// Package sequence provides a fluent, lazy, single-pass Sequence over any
// producer.
//
// A Sequence wraps the producer at the end of a chain of stages. Methods that
// keep the element type (Filter, Take, Distinct, ...) swap in a new stage and
// return the same Sequence. Operations that change the element type (Map,
// Chunked, Zip, FlatMap, ...) are package functions, because Go methods cannot
// declare type parameters. Terminal operations drain the chain and return
// their result together with any error raised while pulling.
//
// Every callback receives the element and its position. Invalid arguments
// (a negative Drop or Take, a non-positive chunk size) do not panic: the
// chain is closed and the error is reported by the next pull.
//
// # Usage
//
//	evens, err := sequence.Of(1, 2, 3, 4, 5, 6).
//	    Filter(func(n, _ int) bool { return n%2 == 0 }).
//	    Take(2).
//	    ToSlice() // [2 4]
//
//	squares := sequence.Map(sequence.Generate(0, func(n, _ int) int { return n + 1 }),
//	    func(n, _ int) int { return n * n })
//	s, err := squares.Take(3).JoinToString(sequence.WithPrefix("["), sequence.WithPostfix("]"))
//	// "[1, 4, 9]"
//
// # Observability
//
// Log writes every element through a named logger. Observe records element
// counts, errors and duration as OpenTelemetry metrics and wraps each run in
// a span:
//
//	m, _ := observability.DefaultMetrics()
//	total, err := sequence.FromSlice(orders).
//	    Observe(ctx, "orders", m).
//	    SumOf(func(o Order, _ int) float64 { return o.Amount })
//
// Configure applies library-wide settings loaded with config.Load.
package sequence
