// ABOUTME: A1CReading model for logged HbA1c lab results.
// ABOUTME: Value is a percentage.
package models

import "time"

// A1CReading is a logged HbA1c result.
type A1CReading struct {
	ID         int64     `json:"id" yaml:"id"`
	Value      float64   `json:"value" yaml:"value"` // percent
	RecordedAt time.Time `json:"recorded_at" yaml:"recorded_at"`
	Notes      *string   `json:"notes,omitempty" yaml:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at" yaml:"created_at"`
}

// NewA1CReading creates an A1C reading recorded now.
func NewA1CReading(value float64) *A1CReading {
	now := time.Now()
	return &A1CReading{Value: value, RecordedAt: now, CreatedAt: now}
}

// WithRecordedAt sets a custom recorded_at timestamp.
func (a *A1CReading) WithRecordedAt(t time.Time) *A1CReading {
	a.RecordedAt = t
	return a
}

// WithNotes sets notes on the reading.
func (a *A1CReading) WithNotes(notes string) *A1CReading {
	a.Notes = &notes
	return a
}

// Validate checks field constraints before the reading is persisted.
func (a *A1CReading) Validate() error {
	if !isFinite(a.Value) {
		return &ValidationError{Field: "value", Reason: "must be a finite number"}
	}
	if a.Value <= 0 {
		return &ValidationError{Field: "value", Reason: "must be greater than zero"}
	}
	if a.RecordedAt.IsZero() {
		return &ValidationError{Field: "recorded_at", Reason: "timestamp is required"}
	}
	return nil
}
