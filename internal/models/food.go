// ABOUTME: FoodEntry model for logged meals with optional carb counts.
// ABOUTME: Carbs are grams; meal type is a closed enum.
package models

import (
	"fmt"
	"time"
)

// FoodEntry is a logged meal or snack.
type FoodEntry struct {
	ID         int64     `json:"id" yaml:"id"`
	Name       string    `json:"name" yaml:"name"`
	Carbs      *float64  `json:"carbs,omitempty" yaml:"carbs,omitempty"` // grams
	RecordedAt time.Time `json:"recorded_at" yaml:"recorded_at"`
	MealType   MealType  `json:"meal_type" yaml:"meal_type"`
	Notes      *string   `json:"notes,omitempty" yaml:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at" yaml:"created_at"`
}

// NewFoodEntry creates a food entry recorded now.
func NewFoodEntry(name string, mealType MealType) *FoodEntry {
	now := time.Now()
	return &FoodEntry{Name: name, MealType: mealType, RecordedAt: now, CreatedAt: now}
}

// WithCarbs sets the carbohydrate grams.
func (f *FoodEntry) WithCarbs(grams float64) *FoodEntry {
	f.Carbs = &grams
	return f
}

// WithRecordedAt sets a custom recorded_at timestamp.
func (f *FoodEntry) WithRecordedAt(t time.Time) *FoodEntry {
	f.RecordedAt = t
	return f
}

// WithNotes sets notes on the entry.
func (f *FoodEntry) WithNotes(notes string) *FoodEntry {
	f.Notes = &notes
	return f
}

// Validate checks field constraints before the entry is persisted.
func (f *FoodEntry) Validate() error {
	if f.Name == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if f.Carbs != nil {
		if !isFinite(*f.Carbs) {
			return &ValidationError{Field: "carbs", Reason: "must be a finite number"}
		}
		if *f.Carbs < 0 {
			return &ValidationError{Field: "carbs", Reason: "must not be negative"}
		}
	}
	if !IsValidMealType(string(f.MealType)) {
		return &ValidationError{Field: "meal_type", Reason: fmt.Sprintf("unrecognized meal type %q", f.MealType)}
	}
	if f.RecordedAt.IsZero() {
		return &ValidationError{Field: "recorded_at", Reason: "timestamp is required"}
	}
	return nil
}
