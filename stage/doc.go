// Package stage implements the lazy transformer stages behind a Sequence.
//
// Each stage wraps one producer and is itself a producer: nothing is pulled
// until the consumer asks for a step, and every stage pulls from its source on
// demand. Callbacks receive the element together with its position, counted
// per stage from 0.
//
// Return on a stage closes its sources. Throw is forwarded to the source;
// when the innermost producer recovers, the recovered step flows back through
// the chain exactly as if it had been pulled.
//
// # Stages
//
// Bufferless:
//
//   - Map, Filter, Tap/OnEach, WithIndex
//   - FlatMap, Flatten: expand iterable results
//   - Plus: concatenate two producers
//   - Take, TakeWhile, Drop, DropWhile
//   - Zip, ZipWithNext, RunningFold, RunningReduce
//
// Buffered:
//
//   - Distinct, DistinctBy: remember every value or key seen
//   - Chunked: fixed-size batches
//   - Windowed: sliding windows with an optional partial tail
//
// Sources:
//
//   - Generate: infinite seed-based producer
//
// # Usage
//
//	src := producer.Of(1, 2, 3, 4, 5)
//	evens := stage.Filter(src, func(n, _ int) bool { return n%2 == 0 })
//	doubled := stage.Map(evens, func(n, _ int) int { return n * 2 })
//	got, _ := producer.Collect(doubled) // [4 8]
package stage
