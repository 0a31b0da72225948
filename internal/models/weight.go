// ABOUTME: WeightMeasurement model for logged body weight.
// ABOUTME: Values are kilograms.
package models

import "time"

// WeightMeasurement is a logged body-weight measurement in kilograms.
type WeightMeasurement struct {
	ID         int64     `json:"id" yaml:"id"`
	Value      float64   `json:"value" yaml:"value"` // kg
	RecordedAt time.Time `json:"recorded_at" yaml:"recorded_at"`
	Notes      *string   `json:"notes,omitempty" yaml:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at" yaml:"created_at"`
}

// NewWeightMeasurement creates a measurement recorded now.
func NewWeightMeasurement(value float64) *WeightMeasurement {
	now := time.Now()
	return &WeightMeasurement{Value: value, RecordedAt: now, CreatedAt: now}
}

// WithRecordedAt sets a custom recorded_at timestamp.
func (w *WeightMeasurement) WithRecordedAt(t time.Time) *WeightMeasurement {
	w.RecordedAt = t
	return w
}

// WithNotes sets notes on the measurement.
func (w *WeightMeasurement) WithNotes(notes string) *WeightMeasurement {
	w.Notes = &notes
	return w
}

// Validate checks field constraints before the measurement is persisted.
func (w *WeightMeasurement) Validate() error {
	if !isFinite(w.Value) {
		return &ValidationError{Field: "value", Reason: "must be a finite number"}
	}
	if w.Value <= 0 {
		return &ValidationError{Field: "value", Reason: "must be greater than zero"}
	}
	if w.RecordedAt.IsZero() {
		return &ValidationError{Field: "recorded_at", Reason: "timestamp is required"}
	}
	return nil
}
