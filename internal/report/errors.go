// ABOUTME: Typed export failure for report artifacts.
// ABOUTME: Identifies which artifact failed and wraps the underlying cause.
package report

import "fmt"

// ExportError reports a failure producing a single report artifact.
type ExportError struct {
	Artifact string
	Err      error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("failed to export %s: %v", e.Artifact, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}
