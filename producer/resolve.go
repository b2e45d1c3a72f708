package producer

import "iter"

// Resolve turns v into a Producer[U] when v can be iterated as U values.
//
// Supported: []U, iter.Seq[U] (named or as a bare func), Producer[U],
// Iterable[U], and string when U is rune. It reports false for anything else.
func Resolve[U any](v any) (Producer[U], bool) {
	switch x := v.(type) {
	case []U:
		return FromSlice(x), true
	case iter.Seq[U]:
		return FromSeq(x), true
	case func(func(U) bool):
		return FromSeq(iter.Seq[U](x)), true
	case Producer[U]:
		return x, true
	case Iterable[U]:
		return x.Iterator(), true
	case string:
		p, ok := any(FromSlice([]rune(x))).(Producer[U])
		return p, ok
	}
	return nil, false
}
