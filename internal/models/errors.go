// ABOUTME: ValidationError type surfaced when a record violates field constraints.
// ABOUTME: Carries the offending field name so callers can show actionable messages.
package models

import "fmt"

// ValidationError reports a field constraint violation on a record write.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
