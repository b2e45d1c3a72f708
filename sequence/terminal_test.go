package sequence

import (
	"cmp"
	"errors"
	"slices"
	"testing"

	seqerrors "github.com/kbukum/seqkit/errors"
)

func TestAllAnyNone(t *testing.T) {
	tests := []struct {
		name  string
		items []int
		all   bool
		any   bool
	}{
		{"empty", nil, true, false},
		{"all even", []int{2, 4}, true, true},
		{"mixed", []int{1, 2}, false, true},
		{"all odd", []int{1, 3}, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			all, err := FromSlice(tt.items).All(isEven)
			if err != nil || all != tt.all {
				t.Errorf("All: got %v, %v; want %v", all, err, tt.all)
			}
			anyMatch, err := FromSlice(tt.items).Any(isEven)
			if err != nil || anyMatch != tt.any {
				t.Errorf("Any: got %v, %v; want %v", anyMatch, err, tt.any)
			}
			none, err := FromSlice(tt.items).None(isEven)
			if err != nil || none != !tt.any {
				t.Errorf("None: got %v, %v; want %v", none, err, !tt.any)
			}
		})
	}
}

func TestNoneWithoutPredicate(t *testing.T) {
	if none, _ := Of[int]().None(); !none {
		t.Error("expected an empty sequence to have none")
	}
	if none, _ := Of(0).None(); none {
		t.Error("expected a non-empty sequence to have some")
	}
}

func TestEarlyExitClosesSource(t *testing.T) {
	src, pulls := counting(10)
	s := From(src)
	all, err := s.All(func(n, _ int) bool { return n < 3 })
	if err != nil || all {
		t.Fatalf("got %v, %v; want false", all, err)
	}
	if *pulls != 4 {
		t.Errorf("expected 4 pulls, got %d", *pulls)
	}
	if st, _ := s.Next(); !st.Done {
		t.Errorf("expected a closed chain, got %+v", st)
	}
}

func TestAverage(t *testing.T) {
	avg, err := Of(1, 2, 3, 4).Average()
	if err != nil || avg != 2.5 {
		t.Errorf("got %v, %v; want 2.5", avg, err)
	}
	if _, err := Of[float64]().Average(); !errors.Is(err, seqerrors.ErrEmptySequence) {
		t.Errorf("expected EMPTY_SEQUENCE, got %v", err)
	}
	if _, err := Of[any](1, "two").Average(); !errors.Is(err, seqerrors.ErrNonNumericSequence) {
		t.Errorf("expected NON_NUMERIC_SEQUENCE, got %v", err)
	}
}

func TestSum(t *testing.T) {
	tests := []struct {
		name    string
		seq     *Sequence[any]
		want    float64
		wantErr error
	}{
		{"ints", Of[any](1, 2, 3), 6, nil},
		{"mixed numeric", Of[any](1, 2.5, uint8(3)), 6.5, nil},
		{"empty", Of[any](), 0, nil},
		{"non numeric", Of[any](1, "x"), 0, seqerrors.ErrNonNumericSequence},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.seq.Sum()
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("got error %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}

	total, err := Of("a", "bb", "ccc").SumOf(func(s string, _ int) float64 { return float64(len(s)) })
	if err != nil || total != 6 {
		t.Errorf("SumOf: got %v, %v; want 6", total, err)
	}
}

func TestCount(t *testing.T) {
	if n, _ := Of(1, 2, 3, 4).Count(); n != 4 {
		t.Errorf("Count(): got %d, want 4", n)
	}
	if n, _ := Of(1, 2, 3, 4).Count(isEven); n != 2 {
		t.Errorf("Count(isEven): got %d, want 2", n)
	}
	if n, _ := Of(1, 2, 3, 4).CountFunc(func(_, i int) bool { return i > 0 }); n != 3 {
		t.Errorf("CountFunc: got %d, want 3", n)
	}
}

func TestElementAt(t *testing.T) {
	v, err := Of(10, 20, 30).ElementAt(1)
	if err != nil || v != 20 {
		t.Errorf("got %v, %v; want 20", v, err)
	}
	for _, index := range []int{3, -1} {
		if _, err := Of(10, 20, 30).ElementAt(index); !errors.Is(err, seqerrors.ErrElementNotFound) {
			t.Errorf("ElementAt(%d): expected ELEMENT_NOT_FOUND, got %v", index, err)
		}
	}
	if v, _ := Of(10, 20).ElementAtOrElse(5, 99); v != 99 {
		t.Errorf("ElementAtOrElse: got %v, want 99", v)
	}
	if v, ok, _ := Of(10, 20).ElementAtOrNull(0); !ok || v != 10 {
		t.Errorf("ElementAtOrNull(0): got %v, %v", v, ok)
	}
	if _, ok, _ := Of(10, 20).ElementAtOrNull(2); ok {
		t.Error("ElementAtOrNull(2): expected not found")
	}
}

func TestFind(t *testing.T) {
	items := []int{1, 2, 3, 4}
	if v, ok, _ := FromSlice(items).Find(isEven); !ok || v != 2 {
		t.Errorf("Find: got %v, %v; want 2", v, ok)
	}
	if v, ok, _ := FromSlice(items).FindLast(isEven); !ok || v != 4 {
		t.Errorf("FindLast: got %v, %v; want 4", v, ok)
	}
	if _, ok, _ := FromSlice(items).Find(func(n, _ int) bool { return n > 10 }); ok {
		t.Error("Find: expected no match")
	}
}

func TestFirstLast(t *testing.T) {
	if v, err := Of(3, 4, 5).First(); err != nil || v != 3 {
		t.Errorf("First(): got %v, %v; want 3", v, err)
	}
	if v, err := Of(3, 4, 5).Last(); err != nil || v != 5 {
		t.Errorf("Last(): got %v, %v; want 5", v, err)
	}
	if v, err := Of(3, 4, 5, 7).Last(isEven); err != nil || v != 4 {
		t.Errorf("Last(isEven): got %v, %v; want 4", v, err)
	}

	if _, err := Of[int]().First(); !errors.Is(err, seqerrors.ErrEmptySequence) {
		t.Errorf("First on empty: expected EMPTY_SEQUENCE, got %v", err)
	}
	if _, err := Of(1, 3).First(isEven); !errors.Is(err, seqerrors.ErrEmptySequence) {
		t.Errorf("First without match: expected EMPTY_SEQUENCE, got %v", err)
	}
	if _, err := Of[int]().Last(); !errors.Is(err, seqerrors.ErrElementNotFound) {
		t.Errorf("Last on empty: expected ELEMENT_NOT_FOUND, got %v", err)
	}
	if _, ok, err := Of[int]().LastOrNull(); ok || err != nil {
		t.Errorf("LastOrNull on empty: got %v, %v", ok, err)
	}
	if _, ok, err := Of[int]().FirstOrNull(); ok || err != nil {
		t.Errorf("FirstOrNull on empty: got %v, %v", ok, err)
	}
}

func TestFirstLeavesRemainder(t *testing.T) {
	s := Of(1, 2, 3, 4)
	v, err := s.First(isEven)
	if err != nil || v != 2 {
		t.Fatalf("got %v, %v; want 2", v, err)
	}
	if got := toSlice(t, s); !slices.Equal(got, []int{3, 4}) {
		t.Errorf("got remainder %v, want [3 4]", got)
	}
}

func TestIndexOf(t *testing.T) {
	items := []string{"a", "b", "a", "c"}
	tests := []struct {
		name string
		fn   func(s *Sequence[string]) (int, error)
		want int
	}{
		{"IndexOf", func(s *Sequence[string]) (int, error) { return s.IndexOf("a") }, 0},
		{"IndexOf missing", func(s *Sequence[string]) (int, error) { return s.IndexOf("z") }, -1},
		{"LastIndexOf", func(s *Sequence[string]) (int, error) { return s.LastIndexOf("a") }, 2},
		{"IndexOfFirst", func(s *Sequence[string]) (int, error) {
			return s.IndexOfFirst(func(v string, _ int) bool { return v > "a" })
		}, 1},
		{"IndexOfLast", func(s *Sequence[string]) (int, error) {
			return s.IndexOfLast(func(v string, _ int) bool { return v > "a" })
		}, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.fn(FromSlice(items))
			if err != nil || got != tt.want {
				t.Errorf("got %d, %v; want %d", got, err, tt.want)
			}
		})
	}

	if ok, _ := Of(1, 2, 3).Contains(2); !ok {
		t.Error("expected Contains(2)")
	}
	if ok, _ := Of([]int{1}, []int{2}).Contains([]int{2}); !ok {
		t.Error("expected Contains to compare slices by value")
	}
}

func TestForEach(t *testing.T) {
	var seen []int
	err := Of(5, 6).ForEach(func(v, i int) { seen = append(seen, v*10+i) })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slices.Equal(seen, []int{50, 61}) {
		t.Errorf("got %v, want [50 61]", seen)
	}
}

func TestMaxWithMinWith(t *testing.T) {
	tests := []struct {
		name  string
		items []int
		max   int
		min   int
	}{
		{"ascending", []int{0, 1, 2}, 0, 2},
		{"negative tail", []int{0, 1, 2, -1}, -1, 2},
		{"single", []int{7}, 7, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, err := FromSlice(tt.items).MaxWith(cmp.Compare[int]); err != nil || got != tt.max {
				t.Errorf("MaxWith: got %v, %v; want %v", got, err, tt.max)
			}
			if got, err := FromSlice(tt.items).MinWith(cmp.Compare[int]); err != nil || got != tt.min {
				t.Errorf("MinWith: got %v, %v; want %v", got, err, tt.min)
			}
		})
	}

	descending := func(a, b int) int { return cmp.Compare(b, a) }
	if got, _ := Of(3, 7, 5).MaxWith(descending); got != 7 {
		t.Errorf("MaxWith(descending): got %v, want 7", got)
	}
	if _, err := Of[int]().MaxWith(cmp.Compare[int]); !errors.Is(err, seqerrors.ErrEmptySequence) {
		t.Errorf("expected EMPTY_SEQUENCE, got %v", err)
	}
	if _, ok, err := Of[int]().MinWithOrNull(cmp.Compare[int]); ok || err != nil {
		t.Errorf("MinWithOrNull on empty: got %v, %v", ok, err)
	}
}

func TestReduce(t *testing.T) {
	var indices []int
	got, err := Of(1, 2, 3).Reduce(func(acc, v, i int) int {
		indices = append(indices, i)
		return acc + v
	})
	if err != nil || got != 6 {
		t.Errorf("got %v, %v; want 6", got, err)
	}
	if !slices.Equal(indices, []int{1, 2}) {
		t.Errorf("got indices %v, want [1 2]", indices)
	}
	if _, err := Of[int]().Reduce(func(acc, v, _ int) int { return acc + v }); !errors.Is(err, seqerrors.ErrEmptySequence) {
		t.Errorf("expected EMPTY_SEQUENCE, got %v", err)
	}
	if _, ok, err := Of[int]().ReduceOrNull(func(acc, v, _ int) int { return acc + v }); ok || err != nil {
		t.Errorf("ReduceOrNull on empty: got %v, %v", ok, err)
	}
}

func TestSingle(t *testing.T) {
	tests := []struct {
		name    string
		items   []int
		pred    []func(int, int) bool
		want    int
		wantErr error
	}{
		{"one element", []int{4}, nil, 4, nil},
		{"one match", []int{1, 2, 3}, []func(int, int) bool{isEven}, 2, nil},
		{"empty", nil, nil, 0, seqerrors.ErrEmptySequence},
		{"no match", []int{1, 3}, []func(int, int) bool{isEven}, 0, seqerrors.ErrEmptySequence},
		{"two elements", []int{1, 2}, nil, 0, seqerrors.ErrNotASingleSequence},
		{"two matches", []int{2, 3, 4}, []func(int, int) bool{isEven}, 0, seqerrors.ErrNotASingleSequence},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromSlice(tt.items).Single(tt.pred...)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("got error %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
			v, ok, err := FromSlice(tt.items).SingleOrNull(tt.pred...)
			if err != nil {
				t.Fatalf("SingleOrNull: unexpected error %v", err)
			}
			if ok != (tt.wantErr == nil) || v != tt.want {
				t.Errorf("SingleOrNull: got %v, %v", v, ok)
			}
		})
	}
}

func TestSingleOrNullStopsAtSecondMatch(t *testing.T) {
	src, pulls := counting(10)
	if _, ok, _ := From(src).SingleOrNull(); ok {
		t.Error("expected no single element")
	}
	if *pulls != 2 {
		t.Errorf("expected 2 pulls, got %d", *pulls)
	}
}

func TestFilterTo(t *testing.T) {
	dst := []int{100}
	got, err := Of(1, 2, 3, 4).FilterTo(dst, isEven)
	if err != nil || !slices.Equal(got, []int{100, 2, 4}) {
		t.Errorf("FilterTo: got %v, %v", got, err)
	}
	got, err = Of(1, 2, 3, 4).FilterNotTo(nil, isEven)
	if err != nil || !slices.Equal(got, []int{1, 3}) {
		t.Errorf("FilterNotTo: got %v, %v", got, err)
	}
}

func TestTerminalPropagatesStageError(t *testing.T) {
	s := FlatMap[int, int](Of(1), func(int, int) any { return 42 })
	if _, err := s.Count(); !errors.Is(err, seqerrors.ErrTypeNotIterable) {
		t.Errorf("expected TYPE_NOT_ITERABLE, got %v", err)
	}
}
