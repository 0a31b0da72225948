// ABOUTME: BloodPressureReading model for logged systolic/diastolic pairs.
// ABOUTME: Diastolic must be strictly below systolic.
package models

import "time"

// BloodPressureReading is a logged blood-pressure measurement in mmHg.
type BloodPressureReading struct {
	ID         int64     `json:"id" yaml:"id"`
	Systolic   int       `json:"systolic" yaml:"systolic"`
	Diastolic  int       `json:"diastolic" yaml:"diastolic"`
	RecordedAt time.Time `json:"recorded_at" yaml:"recorded_at"`
	Notes      *string   `json:"notes,omitempty" yaml:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at" yaml:"created_at"`
}

// NewBloodPressureReading creates a reading recorded now.
func NewBloodPressureReading(systolic, diastolic int) *BloodPressureReading {
	now := time.Now()
	return &BloodPressureReading{Systolic: systolic, Diastolic: diastolic, RecordedAt: now, CreatedAt: now}
}

// WithRecordedAt sets a custom recorded_at timestamp.
func (b *BloodPressureReading) WithRecordedAt(t time.Time) *BloodPressureReading {
	b.RecordedAt = t
	return b
}

// WithNotes sets notes on the reading.
func (b *BloodPressureReading) WithNotes(notes string) *BloodPressureReading {
	b.Notes = &notes
	return b
}

// Validate checks field constraints before the reading is persisted.
func (b *BloodPressureReading) Validate() error {
	if b.Systolic <= 0 {
		return &ValidationError{Field: "systolic", Reason: "must be greater than zero"}
	}
	if b.Diastolic <= 0 {
		return &ValidationError{Field: "diastolic", Reason: "must be greater than zero"}
	}
	if b.Diastolic >= b.Systolic {
		return &ValidationError{Field: "diastolic", Reason: "must be below systolic"}
	}
	if b.RecordedAt.IsZero() {
		return &ValidationError{Field: "recorded_at", Reason: "timestamp is required"}
	}
	return nil
}
