// ABOUTME: Patch structs for partial record updates.
// ABOUTME: Nil fields are left untouched; RecordedAt is never patchable.
package models

import "fmt"

// GlucosePatch updates a subset of a glucose reading's mutable fields.
type GlucosePatch struct {
	Value   *float64
	Context *MealContext
	Notes   *string
}

// Apply merges the patch into the reading and re-validates it.
func (p *GlucosePatch) Apply(g *GlucoseReading) error {
	if p.Value != nil {
		g.Value = *p.Value
	}
	if p.Context != nil {
		g.Context = *p.Context
	}
	if p.Notes != nil {
		g.Notes = p.Notes
	}
	return g.Validate()
}

// FoodPatch updates a subset of a food entry's mutable fields.
type FoodPatch struct {
	Name     *string
	Carbs    *float64
	MealType *MealType
	Notes    *string
}

// Apply merges the patch into the entry and re-validates it.
func (p *FoodPatch) Apply(f *FoodEntry) error {
	if p.Name != nil {
		f.Name = *p.Name
	}
	if p.Carbs != nil {
		f.Carbs = p.Carbs
	}
	if p.MealType != nil {
		f.MealType = *p.MealType
	}
	if p.Notes != nil {
		f.Notes = p.Notes
	}
	return f.Validate()
}

// InsulinPatch updates a subset of an insulin dose's mutable fields.
type InsulinPatch struct {
	Units       *float64
	InsulinType *InsulinType
	Notes       *string
}

// Apply merges the patch into the dose and re-validates it.
func (p *InsulinPatch) Apply(d *InsulinDose) error {
	if p.Units != nil {
		d.Units = *p.Units
	}
	if p.InsulinType != nil {
		d.InsulinType = *p.InsulinType
	}
	if p.Notes != nil {
		d.Notes = p.Notes
	}
	return d.Validate()
}

// A1CPatch updates a subset of an A1C reading's mutable fields.
type A1CPatch struct {
	Value *float64
	Notes *string
}

// Apply merges the patch into the reading and re-validates it.
func (p *A1CPatch) Apply(a *A1CReading) error {
	if p.Value != nil {
		a.Value = *p.Value
	}
	if p.Notes != nil {
		a.Notes = p.Notes
	}
	return a.Validate()
}

// WeightPatch updates a subset of a weight measurement's mutable fields.
type WeightPatch struct {
	Value *float64
	Notes *string
}

// Apply merges the patch into the measurement and re-validates it.
func (p *WeightPatch) Apply(w *WeightMeasurement) error {
	if p.Value != nil {
		w.Value = *p.Value
	}
	if p.Notes != nil {
		w.Notes = p.Notes
	}
	return w.Validate()
}

// BloodPressurePatch updates a subset of a blood-pressure reading's mutable fields.
type BloodPressurePatch struct {
	Systolic  *int
	Diastolic *int
	Notes     *string
}

// Apply merges the patch into the reading and re-validates it.
func (p *BloodPressurePatch) Apply(b *BloodPressureReading) error {
	if p.Systolic != nil {
		b.Systolic = *p.Systolic
	}
	if p.Diastolic != nil {
		b.Diastolic = *p.Diastolic
	}
	if p.Notes != nil {
		b.Notes = p.Notes
	}
	return b.Validate()
}

// ParseKind converts a string into a Kind, or errors with the valid set.
func ParseKind(s string) (Kind, error) {
	if !IsValidKind(s) {
		return "", fmt.Errorf("unknown record kind: %s (valid: glucose, food, insulin, a1c, weight, blood_pressure)", s)
	}
	return Kind(s), nil
}
