package sequence

import (
	"bytes"
	"errors"
	"strconv"
	"testing"

	"github.com/kbukum/seqkit/config"
	seqerrors "github.com/kbukum/seqkit/errors"
)

func TestJoinToString(t *testing.T) {
	tests := []struct {
		name  string
		items []int
		opts  []JoinOption
		want  string
	}{
		{"defaults", []int{1, 2, 3}, nil, "1, 2, 3"},
		{"empty", nil, []JoinOption{WithPrefix("["), WithPostfix("]")}, "[]"},
		{"truncated marker", []int{1, 2, 3}, []JoinOption{
			WithSeparator(","), WithPrefix("["), WithPostfix("]"), WithLimit(2), WithTruncated("|"),
		}, "[1,2,|]"},
		{"default truncation", []int{0, 1, 2, 3}, []JoinOption{WithLimit(2)}, "0, 1, ..."},
		{"limit not reached", []int{0, 1}, []JoinOption{WithLimit(2)}, "0, 1"},
		{"limit zero", []int{7}, []JoinOption{WithLimit(0)}, "..."},
		{"empty marker", []int{1, 2, 3}, []JoinOption{WithLimit(1), WithTruncated("")}, "1"},
		{"transform", []int{0, 1, 2}, []JoinOption{WithTransform(func(n, i int) string {
			return strconv.Itoa(n + i + 1)
		})}, "1, 3, 5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromSlice(tt.items).JoinToString(tt.opts...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestJoinToStopsAtLimit(t *testing.T) {
	src, pulls := counting(100)
	var buf bytes.Buffer
	if err := From(src).JoinTo(&buf, WithLimit(3)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.String() != "0, 1, 2, ..." {
		t.Errorf("got %q", buf.String())
	}
	if *pulls != 4 {
		t.Errorf("expected 4 pulls, got %d", *pulls)
	}
}

func TestJoinToTransformMismatch(t *testing.T) {
	_, err := Of(1, 2).JoinToString(WithTransform(func(s string, _ int) string { return s }))
	if !errors.Is(err, seqerrors.ErrInvalidConfig) {
		t.Errorf("expected INVALID_CONFIG, got %v", err)
	}
}

type failingWriter struct{ err error }

func (w failingWriter) Write([]byte) (int, error) { return 0, w.err }

func TestJoinToWriterError(t *testing.T) {
	boom := errors.New("disk full")
	if err := Of(1).JoinTo(failingWriter{boom}); !errors.Is(err, boom) {
		t.Errorf("expected writer error, got %v", err)
	}
}

func TestJoinToStageError(t *testing.T) {
	_, err := Of(1, 2).Drop(-1).JoinToString()
	if !errors.Is(err, seqerrors.ErrNegativeDropSize) {
		t.Errorf("expected NEGATIVE_DROP_SIZE, got %v", err)
	}
}

func TestConfigureJoinDefaults(t *testing.T) {
	t.Cleanup(func() { _ = Configure(nil) })

	limit, sep := 1, " | "
	settings := &config.Settings{
		Join: config.JoinConfig{Separator: &sep, Prefix: "<", Postfix: ">", Limit: &limit},
	}
	settings.Logging.Level = "error"
	if err := Configure(settings); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := Of(1, 2, 3).JoinToString()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := "<1 | ...>"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	got, _ = Of(1, 2).JoinToString(WithLimit(-1), WithSeparator("+"))
	if want := "<1+2>"; got != want {
		t.Errorf("options should override defaults: got %q, want %q", got, want)
	}

	if err := Configure(nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, _ := Of(1, 2).JoinToString(); got != "1, 2" {
		t.Errorf("expected built-in defaults after reset, got %q", got)
	}
}

func TestConfigureEmptyJoinStrings(t *testing.T) {
	t.Cleanup(func() { _ = Configure(nil) })

	limit, empty := 2, ""
	settings := &config.Settings{
		Join: config.JoinConfig{Separator: &empty, Truncated: &empty, Limit: &limit},
	}
	settings.Logging.Level = "error"
	if err := Configure(settings); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := Of(1, 2, 3).JoinToString()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "12" {
		t.Errorf("got %q, want %q", got, "12")
	}
}

func TestConfigureRejectsInvalidSettings(t *testing.T) {
	t.Cleanup(func() { _ = Configure(nil) })

	limit := -5
	err := Configure(&config.Settings{Join: config.JoinConfig{Limit: &limit}})
	if !errors.Is(err, seqerrors.ErrInvalidConfig) {
		t.Errorf("expected INVALID_CONFIG, got %v", err)
	}
	if got, _ := Of(1, 2).JoinToString(); got != "1, 2" {
		t.Errorf("defaults changed by a rejected configuration: %q", got)
	}
}
