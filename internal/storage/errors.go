// ABOUTME: Typed storage errors: not-found and storage-engine failures.
// ABOUTME: Validation errors live in models; export errors live in report.
package storage

import (
	"fmt"

	"github.com/harperreed/glucolog/internal/models"
)

// NotFoundError reports an operation targeting a nonexistent record id.
type NotFoundError struct {
	Kind models.Kind
	ID   int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s record %d not found", e.Kind, e.ID)
}

// StorageError wraps an underlying engine failure on a write path.
// Read paths never surface these; they recover to empty results.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage failure during %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
