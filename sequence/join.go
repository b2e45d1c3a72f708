package sequence

import (
	"fmt"
	"io"
	"strings"
	"sync/atomic"

	"github.com/kbukum/seqkit/config"
	"github.com/kbukum/seqkit/errors"
	"github.com/kbukum/seqkit/logger"
)

// JoinOptions controls JoinTo and JoinToString.
type JoinOptions struct {
	Separator string
	Prefix    string
	Postfix   string
	// Limit caps the number of joined elements; a negative value means no
	// limit.
	Limit     int
	Truncated string
	// Transform renders an element. It must be a func(T, int) string for
	// the sequence's T; nil renders with fmt.Sprint.
	Transform any
}

// JoinOption configures a single join call.
type JoinOption func(*JoinOptions)

// WithSeparator sets the text written between elements.
func WithSeparator(sep string) JoinOption {
	return func(o *JoinOptions) { o.Separator = sep }
}

// WithPrefix sets the text written before the first element.
func WithPrefix(prefix string) JoinOption {
	return func(o *JoinOptions) { o.Prefix = prefix }
}

// WithPostfix sets the text written after the last element.
func WithPostfix(postfix string) JoinOption {
	return func(o *JoinOptions) { o.Postfix = postfix }
}

// WithLimit caps the number of joined elements.
func WithLimit(limit int) JoinOption {
	return func(o *JoinOptions) { o.Limit = limit }
}

// WithTruncated sets the marker written in place of elements past the limit.
func WithTruncated(truncated string) JoinOption {
	return func(o *JoinOptions) { o.Truncated = truncated }
}

// WithTransform renders each element with fn.
func WithTransform[T any](fn func(T, int) string) JoinOption {
	return func(o *JoinOptions) { o.Transform = fn }
}

var joinDefaults atomic.Pointer[JoinOptions]

func builtinJoinOptions() JoinOptions {
	return JoinOptions{Separator: ", ", Limit: -1, Truncated: "..."}
}

func currentJoinOptions() JoinOptions {
	if o := joinDefaults.Load(); o != nil {
		return *o
	}
	return builtinJoinOptions()
}

// Configure validates settings, initialises the global logger from them and
// installs their join defaults for later JoinTo calls. A nil settings
// restores the built-in defaults.
func Configure(settings *config.Settings) error {
	if settings == nil {
		joinDefaults.Store(nil)
		return nil
	}
	cfg := *settings
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return err
	}
	logger.Init(cfg.Logging)

	o := builtinJoinOptions()
	o.Separator = *cfg.Join.Separator
	o.Prefix = cfg.Join.Prefix
	o.Postfix = cfg.Join.Postfix
	o.Truncated = *cfg.Join.Truncated
	if cfg.Join.Limit != nil {
		o.Limit = *cfg.Join.Limit
	}
	joinDefaults.Store(&o)

	logger.Info("sequence defaults configured", logger.Fields(
		"name", cfg.Name,
		"separator", o.Separator,
		"limit", o.Limit,
	))
	return nil
}

// JoinTo writes the elements to w: prefix, then each rendered element
// separated by the separator, then postfix. When a limit is set and more
// elements remain, the truncation marker replaces them and the chain is
// closed:
//
//	Of(0, 1, 2, 3).JoinTo(w, WithLimit(2)) // "0, 1, ..."
func (s *Sequence[T]) JoinTo(w io.Writer, opts ...JoinOption) error {
	o := currentJoinOptions()
	for _, opt := range opts {
		opt(&o)
	}
	render := func(v T, _ int) string { return fmt.Sprint(v) }
	if o.Transform != nil {
		fn, ok := o.Transform.(func(T, int) string)
		if !ok {
			var zero T
			s.p.Return(zero)
			return errors.InvalidConfig(fmt.Sprintf("join transform is %T, want %T", o.Transform, (func(T, int) string)(nil)))
		}
		render = fn
	}

	if _, err := io.WriteString(w, o.Prefix); err != nil {
		return err
	}
	var werr error
	write := func(parts ...string) bool {
		for _, p := range parts {
			if _, werr = io.WriteString(w, p); werr != nil {
				return false
			}
		}
		return true
	}
	err := s.each(func(v T, i int) bool {
		sep := ""
		if i > 0 {
			sep = o.Separator
		}
		if o.Limit >= 0 && i == o.Limit {
			if o.Truncated == "" {
				return false
			}
			write(sep, o.Truncated)
			return false
		}
		return write(sep, render(v, i))
	})
	if err != nil {
		return err
	}
	if werr != nil {
		return werr
	}
	_, err = io.WriteString(w, o.Postfix)
	return err
}

// JoinToString is JoinTo into a string.
func (s *Sequence[T]) JoinToString(opts ...JoinOption) (string, error) {
	var b strings.Builder
	if err := s.JoinTo(&b, opts...); err != nil {
		return "", err
	}
	return b.String(), nil
}
