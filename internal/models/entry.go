// ABOUTME: Kind discriminant and the tagged LogEntry union over all record kinds.
// ABOUTME: Exactly one payload pointer is set per entry, selected by Kind.
package models

import (
	"fmt"
	"time"
)

// Kind identifies one of the six persisted record kinds.
type Kind string

const (
	KindGlucose       Kind = "glucose"
	KindFood          Kind = "food"
	KindInsulin       Kind = "insulin"
	KindA1C           Kind = "a1c"
	KindWeight        Kind = "weight"
	KindBloodPressure Kind = "blood_pressure"
)

// AllKinds lists record kinds in display order.
var AllKinds = []Kind{
	KindGlucose, KindFood, KindInsulin, KindA1C, KindWeight, KindBloodPressure,
}

// IsValidKind checks if a string is a valid record kind.
func IsValidKind(s string) bool {
	for _, k := range AllKinds {
		if string(k) == s {
			return true
		}
	}
	return false
}

// LogEntry is a tagged variant over the six record kinds, used where
// records of different kinds are merged into one chronological view.
// The field matching Kind is non-nil; all others are nil.
type LogEntry struct {
	Kind          Kind                  `json:"kind"`
	Glucose       *GlucoseReading       `json:"glucose,omitempty"`
	Food          *FoodEntry            `json:"food,omitempty"`
	Insulin       *InsulinDose          `json:"insulin,omitempty"`
	A1C           *A1CReading           `json:"a1c,omitempty"`
	Weight        *WeightMeasurement    `json:"weight,omitempty"`
	BloodPressure *BloodPressureReading `json:"blood_pressure,omitempty"`
}

// EntryFromGlucose wraps a glucose reading.
func EntryFromGlucose(g *GlucoseReading) LogEntry {
	return LogEntry{Kind: KindGlucose, Glucose: g}
}

// EntryFromFood wraps a food entry.
func EntryFromFood(f *FoodEntry) LogEntry {
	return LogEntry{Kind: KindFood, Food: f}
}

// EntryFromInsulin wraps an insulin dose.
func EntryFromInsulin(d *InsulinDose) LogEntry {
	return LogEntry{Kind: KindInsulin, Insulin: d}
}

// EntryFromA1C wraps an A1C reading.
func EntryFromA1C(a *A1CReading) LogEntry {
	return LogEntry{Kind: KindA1C, A1C: a}
}

// EntryFromWeight wraps a weight measurement.
func EntryFromWeight(w *WeightMeasurement) LogEntry {
	return LogEntry{Kind: KindWeight, Weight: w}
}

// EntryFromBloodPressure wraps a blood-pressure reading.
func EntryFromBloodPressure(b *BloodPressureReading) LogEntry {
	return LogEntry{Kind: KindBloodPressure, BloodPressure: b}
}

// ID returns the payload's store-assigned id.
func (e LogEntry) ID() int64 {
	switch e.Kind {
	case KindGlucose:
		return e.Glucose.ID
	case KindFood:
		return e.Food.ID
	case KindInsulin:
		return e.Insulin.ID
	case KindA1C:
		return e.A1C.ID
	case KindWeight:
		return e.Weight.ID
	case KindBloodPressure:
		return e.BloodPressure.ID
	}
	return 0
}

// RecordedAt returns the payload's timestamp.
func (e LogEntry) RecordedAt() time.Time {
	switch e.Kind {
	case KindGlucose:
		return e.Glucose.RecordedAt
	case KindFood:
		return e.Food.RecordedAt
	case KindInsulin:
		return e.Insulin.RecordedAt
	case KindA1C:
		return e.A1C.RecordedAt
	case KindWeight:
		return e.Weight.RecordedAt
	case KindBloodPressure:
		return e.BloodPressure.RecordedAt
	}
	return time.Time{}
}

// Describe returns a one-line human summary of the payload.
func (e LogEntry) Describe(units GlucoseUnits) string {
	switch e.Kind {
	case KindGlucose:
		if e.Glucose.Context != "" {
			return fmt.Sprintf("%s (%s)", FormatGlucose(e.Glucose.Value, units), e.Glucose.Context)
		}
		return FormatGlucose(e.Glucose.Value, units)
	case KindFood:
		if e.Food.Carbs != nil {
			return fmt.Sprintf("%s, %.0fg carbs (%s)", e.Food.Name, *e.Food.Carbs, e.Food.MealType)
		}
		return fmt.Sprintf("%s (%s)", e.Food.Name, e.Food.MealType)
	case KindInsulin:
		return fmt.Sprintf("%.1f units %s", e.Insulin.Units, e.Insulin.InsulinType)
	case KindA1C:
		return fmt.Sprintf("%.1f%%", e.A1C.Value)
	case KindWeight:
		return fmt.Sprintf("%.1f kg", e.Weight.Value)
	case KindBloodPressure:
		return fmt.Sprintf("%d/%d mmHg", e.BloodPressure.Systolic, e.BloodPressure.Diastolic)
	}
	return ""
}
