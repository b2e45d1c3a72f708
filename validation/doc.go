// Package validation checks seqkit settings.
//
// Struct tag validation (go-playground/validator) covers single-field rules;
// the programmatic Validator collects cross-field rules. Both report an
// INVALID_CONFIG AppError whose "fields" detail lists every failure.
//
// # Struct Tag Validation
//
//	type JoinConfig struct {
//	    Limit int `mapstructure:"limit" validate:"gte=-1"`
//	}
//	err := validation.Validate(cfg)
//
// # Programmatic Validation
//
//	v := validation.New()
//	v.Custom(!enabled || rate > 0, "tracing.sample_rate", "must be above 0 when tracing is enabled")
//	if appErr := v.Validate(); appErr != nil {
//	    return appErr
//	}
package validation
