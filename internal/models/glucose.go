// ABOUTME: GlucoseReading model, mg/dL display conversion, and validation.
// ABOUTME: Values are stored in mg/dL regardless of the display unit setting.
package models

import (
	"fmt"
	"math"
	"time"
)

// MmolPerMgdl is the conversion factor from mg/dL to mmol/L.
const MmolPerMgdl = 18.0182

// GlucoseReading is a single blood-glucose measurement.
// ID is assigned by the store at creation time; RecordedAt is immutable
// once the reading has been created.
type GlucoseReading struct {
	ID         int64       `json:"id" yaml:"id"`
	Value      float64     `json:"value" yaml:"value"` // mg/dL
	RecordedAt time.Time   `json:"recorded_at" yaml:"recorded_at"`
	Context    MealContext `json:"context,omitempty" yaml:"context,omitempty"`
	Notes      *string     `json:"notes,omitempty" yaml:"notes,omitempty"`
	CreatedAt  time.Time   `json:"created_at" yaml:"created_at"`
}

// NewGlucoseReading creates a reading recorded now.
func NewGlucoseReading(value float64) *GlucoseReading {
	now := time.Now()
	return &GlucoseReading{Value: value, RecordedAt: now, CreatedAt: now}
}

// WithRecordedAt sets a custom recorded_at timestamp.
func (g *GlucoseReading) WithRecordedAt(t time.Time) *GlucoseReading {
	g.RecordedAt = t
	return g
}

// WithContext sets the meal context.
func (g *GlucoseReading) WithContext(c MealContext) *GlucoseReading {
	g.Context = c
	return g
}

// WithNotes sets notes on the reading.
func (g *GlucoseReading) WithNotes(notes string) *GlucoseReading {
	g.Notes = &notes
	return g
}

// Validate checks field constraints before the reading is persisted.
func (g *GlucoseReading) Validate() error {
	if !isFinite(g.Value) {
		return &ValidationError{Field: "value", Reason: "must be a finite number"}
	}
	if g.Value <= 0 {
		return &ValidationError{Field: "value", Reason: "must be greater than zero"}
	}
	if !IsValidMealContext(string(g.Context)) {
		return &ValidationError{Field: "context", Reason: fmt.Sprintf("unrecognized context %q", g.Context)}
	}
	if g.RecordedAt.IsZero() {
		return &ValidationError{Field: "recorded_at", Reason: "timestamp is required"}
	}
	return nil
}

// MgdlToMmol converts a mg/dL value to mmol/L, rounded to one decimal.
func MgdlToMmol(mgdl float64) float64 {
	return math.Round(mgdl/MmolPerMgdl*10) / 10
}

// MmolToMgdl converts a mmol/L value to mg/dL, rounded to the nearest integer.
func MmolToMgdl(mmol float64) float64 {
	return math.Round(mmol * MmolPerMgdl)
}

// FormatGlucose renders a stored mg/dL value in the given display unit.
func FormatGlucose(mgdl float64, units GlucoseUnits) string {
	if units == UnitsMmol {
		return fmt.Sprintf("%.1f mmol/L", MgdlToMmol(mgdl))
	}
	return fmt.Sprintf("%.0f mg/dL", mgdl)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
