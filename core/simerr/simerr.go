// core/simerr/simerr.go
package simerr

import (
	"errors"
	"fmt"
	"time"
)

// The simulator raises exactly three failure kinds. Empty results (no site,
// no amplicon) are successful outcomes and never surface as errors.

// ValidationError reports a malformed input: empty or non-canonical
// sequences, negative size bounds, a primer longer than a linear template.
type ValidationError struct {
	Subject string // "template", "primer", "request"
	Name    string // which template/primer, may be empty
	Reason  string
}

func (e *ValidationError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("invalid %s %q: %s", e.Subject, e.Name, e.Reason)
	}
	return fmt.Sprintf("invalid %s: %s", e.Subject, e.Reason)
}

// Validationf builds a ValidationError with a formatted reason.
func Validationf(subject, name, format string, a ...any) error {
	return &ValidationError{Subject: subject, Name: name, Reason: fmt.Sprintf(format, a...)}
}

// ConfigError reports contradictory or unusable configuration, e.g.
// min_product_size > max_product_size.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config %s: %s", e.Field, e.Reason)
}

func Configf(field, format string, a ...any) error {
	return &ConfigError{Field: field, Reason: fmt.Sprintf(format, a...)}
}

// TimeoutError reports that the scan exceeded its time budget. It carries
// progress counters so the caller can render a precise message; no partial
// result accompanies it.
type TimeoutError struct {
	Budget     time.Duration
	Elapsed    time.Duration
	PairsDone  int
	PairsTotal int
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("scan exceeded %s budget after %s (%d/%d primer pairs completed)",
		e.Budget, e.Elapsed.Round(time.Millisecond), e.PairsDone, e.PairsTotal)
}

// IsValidation reports whether any error in err's tree is a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

func IsConfig(err error) bool {
	var c *ConfigError
	return errors.As(err, &c)
}

func IsTimeout(err error) bool {
	var t *TimeoutError
	return errors.As(err, &t)
}
