package config

import (
	"fmt"
	"time"

	"github.com/kbukum/seqkit/errors"
	"github.com/kbukum/seqkit/logger"
	"github.com/kbukum/seqkit/validation"
)

// DefaultName is the name Load resolves config and env files for.
const DefaultName = "seqkit"

// Settings holds the library-wide defaults a program can load once and hand
// to sequence.Configure.
//
//	name: seqkit
//	logging: {level: info, format: console}
//	join: {separator: ", ", truncated: "...", limit: -1}
//	metrics: {enabled: false, endpoint: "localhost:4318", interval: 15s}
//	tracing: {enabled: false, endpoint: "localhost:4318", sample_rate: 1}
type Settings struct {
	Name    string        `yaml:"name" mapstructure:"name" validate:"required"`
	Logging logger.Config `yaml:"logging" mapstructure:"logging"`
	Join    JoinConfig    `yaml:"join" mapstructure:"join"`
	Metrics MetricsConfig `yaml:"metrics" mapstructure:"metrics"`
	Tracing TracingConfig `yaml:"tracing" mapstructure:"tracing"`
}

// JoinConfig holds the defaults used by JoinTo and JoinToString.
type JoinConfig struct {
	// Separator and Truncated keep an explicit empty string; nil means the
	// built-in default.
	Separator *string `yaml:"separator" mapstructure:"separator"`
	Prefix    string `yaml:"prefix" mapstructure:"prefix"`
	Postfix   string `yaml:"postfix" mapstructure:"postfix"`
	Truncated *string `yaml:"truncated" mapstructure:"truncated"`
	// Limit caps the number of joined elements; -1 means unlimited.
	Limit *int `yaml:"limit" mapstructure:"limit" validate:"omitempty,gte=-1"`
}

// MetricsConfig controls the OpenTelemetry meter provider.
type MetricsConfig struct {
	Enabled  bool          `yaml:"enabled" mapstructure:"enabled"`
	Endpoint string        `yaml:"endpoint" mapstructure:"endpoint" validate:"omitempty,hostname_port"`
	Insecure bool          `yaml:"insecure" mapstructure:"insecure"`
	Interval time.Duration `yaml:"interval" mapstructure:"interval" validate:"gte=0"`
}

// TracingConfig controls the OpenTelemetry tracer provider.
type TracingConfig struct {
	Enabled  bool   `yaml:"enabled" mapstructure:"enabled"`
	Endpoint string `yaml:"endpoint" mapstructure:"endpoint" validate:"omitempty,hostname_port"`
	Insecure bool   `yaml:"insecure" mapstructure:"insecure"`
	// SampleRate is the fraction of sequence runs traced, 0 to 1.
	SampleRate *float64 `yaml:"sample_rate" mapstructure:"sample_rate" validate:"omitempty,gte=0,lte=1"`
}

// ApplyDefaults fills unset fields.
func (s *Settings) ApplyDefaults() {
	if s.Name == "" {
		s.Name = DefaultName
	}
	s.Logging.ApplyDefaults()
	if s.Join.Separator == nil {
		sep := ", "
		s.Join.Separator = &sep
	}
	if s.Join.Truncated == nil {
		marker := "..."
		s.Join.Truncated = &marker
	}
	if s.Join.Limit == nil {
		unlimited := -1
		s.Join.Limit = &unlimited
	}
	if s.Metrics.Endpoint == "" {
		s.Metrics.Endpoint = "localhost:4318"
	}
	if s.Metrics.Interval == 0 {
		s.Metrics.Interval = 15 * time.Second
	}
	if s.Tracing.Endpoint == "" {
		s.Tracing.Endpoint = "localhost:4318"
	}
	if s.Tracing.SampleRate == nil {
		always := 1.0
		s.Tracing.SampleRate = &always
	}
}

// Validate checks struct tags first, then the cross-field rules.
func (s *Settings) Validate() error {
	if err := validation.Validate(s); err != nil {
		return err
	}
	v := validation.New()
	if err := s.Logging.Validate(); err != nil {
		v.AddError("logging", err.Error())
	}
	v.Custom(!s.Tracing.Enabled || s.Tracing.SampleRate == nil || *s.Tracing.SampleRate > 0,
		"tracing.sample_rate", "must be above 0 when tracing is enabled")
	if appErr := v.Validate(); appErr != nil {
		return appErr
	}
	return nil
}

// Load reads Settings from config.yml, .env and the environment, applies
// defaults and validates the result.
func Load(opts ...LoaderOption) (*Settings, error) {
	var s Settings
	if err := LoadConfig(DefaultName, &s, opts...); err != nil {
		return nil, errors.InvalidConfig(fmt.Sprintf("loading settings: %v", err)).WithCause(err)
	}
	s.ApplyDefaults()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	logger.Debug("settings loaded", logger.Fields(
		"name", s.Name,
		"log_level", s.Logging.Level,
		"metrics", s.Metrics.Enabled,
	))
	return &s, nil
}
