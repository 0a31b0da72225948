// ABOUTME: InsulinDose model for logged insulin administrations.
// ABOUTME: Units must be positive; insulin type is a closed enum.
package models

import (
	"fmt"
	"time"
)

// InsulinDose is a logged insulin administration.
type InsulinDose struct {
	ID          int64       `json:"id" yaml:"id"`
	Units       float64     `json:"units" yaml:"units"`
	InsulinType InsulinType `json:"insulin_type" yaml:"insulin_type"`
	RecordedAt  time.Time   `json:"recorded_at" yaml:"recorded_at"`
	Notes       *string     `json:"notes,omitempty" yaml:"notes,omitempty"`
	CreatedAt   time.Time   `json:"created_at" yaml:"created_at"`
}

// NewInsulinDose creates a dose recorded now.
func NewInsulinDose(units float64, insulinType InsulinType) *InsulinDose {
	now := time.Now()
	return &InsulinDose{Units: units, InsulinType: insulinType, RecordedAt: now, CreatedAt: now}
}

// WithRecordedAt sets a custom recorded_at timestamp.
func (d *InsulinDose) WithRecordedAt(t time.Time) *InsulinDose {
	d.RecordedAt = t
	return d
}

// WithNotes sets notes on the dose.
func (d *InsulinDose) WithNotes(notes string) *InsulinDose {
	d.Notes = &notes
	return d
}

// Validate checks field constraints before the dose is persisted.
func (d *InsulinDose) Validate() error {
	if !isFinite(d.Units) {
		return &ValidationError{Field: "units", Reason: "must be a finite number"}
	}
	if d.Units <= 0 {
		return &ValidationError{Field: "units", Reason: "must be greater than zero"}
	}
	if !IsValidInsulinType(string(d.InsulinType)) {
		return &ValidationError{Field: "insulin_type", Reason: fmt.Sprintf("unrecognized insulin type %q", d.InsulinType)}
	}
	if d.RecordedAt.IsZero() {
		return &ValidationError{Field: "recorded_at", Reason: "timestamp is required"}
	}
	return nil
}
