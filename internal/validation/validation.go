package validation

import (
	"fmt"
	"regexp"
	"strings"
)

// Field-error reasons share a small fixed vocabulary so clients can match on them.
const (
	ReasonRequired      = "required"
	ReasonTooShort      = "too short"
	ReasonInvalidFormat = "invalid format"
	ReasonTypeMismatch  = "type mismatch"
	ReasonNegative      = "must be greater than or equal to 0"
	ReasonPasswordWord  = `must not contain "password"`
)

// FieldError describes a single failed field check.
type FieldError struct {
	Entity string `json:"entity"`
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s validation failed: %s: %s", e.Entity, e.Field, e.Reason)
}

// Errors accumulates field errors across an entire record. Checks do not
// short-circuit: every failing field is reported.
type Errors []FieldError

func (e Errors) Error() string {
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fe.Error()
	}
	return strings.Join(msgs, "; ")
}

// OrNil returns the accumulated errors as an error value, or nil when all
// checks passed.
func (e Errors) OrNil() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidEmail reports whether value looks like an email address. The check is
// deliberately loose; the address is never dereferenced, only stored.
func ValidEmail(value string) bool {
	return emailPattern.MatchString(value)
}
