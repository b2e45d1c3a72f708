package observability

import (
	"context"
	stderrors "errors"

	"github.com/kbukum/seqkit/config"
	"github.com/kbukum/seqkit/version"
)

// Setup starts the meter and tracer providers enabled in s. The returned
// shutdown function flushes and stops them; it is never nil.
func Setup(ctx context.Context, s *config.Settings) (func(context.Context) error, error) {
	var shutdowns []func(context.Context) error
	shutdown := func(ctx context.Context) error {
		var errs []error
		for i := len(shutdowns) - 1; i >= 0; i-- {
			errs = append(errs, shutdowns[i](ctx))
		}
		return stderrors.Join(errs...)
	}

	if s.Metrics.Enabled {
		mp, err := InitMeter(ctx, &MeterConfig{
			ServiceName:    s.Name,
			ServiceVersion: version.GetShortVersion(),
			Endpoint:       s.Metrics.Endpoint,
			Insecure:       s.Metrics.Insecure,
			Interval:       s.Metrics.Interval,
		})
		if err != nil {
			return shutdown, err
		}
		shutdowns = append(shutdowns, mp.Shutdown)
	}

	if s.Tracing.Enabled {
		rate := 1.0
		if s.Tracing.SampleRate != nil {
			rate = *s.Tracing.SampleRate
		}
		tp, err := InitTracer(ctx, &TracerConfig{
			ServiceName:    s.Name,
			ServiceVersion: version.GetShortVersion(),
			Endpoint:       s.Tracing.Endpoint,
			Insecure:       s.Tracing.Insecure,
			SampleRate:     rate,
		})
		if err != nil {
			return shutdown, err
		}
		shutdowns = append(shutdowns, tp.Shutdown)
	}

	return shutdown, nil
}
