// ABOUTME: Closed enum types shared by the health record models.
// ABOUTME: Meal context, meal type, insulin type, glucose units, diabetes type.
package models

// MealContext tags a glucose reading with its relation to a meal.
type MealContext string

const (
	ContextBeforeMeal MealContext = "before_meal"
	ContextAfterMeal  MealContext = "after_meal"
	ContextFasting    MealContext = "fasting"
	ContextBedtime    MealContext = "bedtime"
	ContextOther      MealContext = "other"
)

// AllMealContexts lists valid contexts in display/enumeration order.
var AllMealContexts = []MealContext{
	ContextBeforeMeal, ContextAfterMeal, ContextFasting, ContextBedtime, ContextOther,
}

// IsValidMealContext checks if a string is a valid meal context.
// The empty string is valid: context is an optional field.
func IsValidMealContext(s string) bool {
	if s == "" {
		return true
	}
	for _, c := range AllMealContexts {
		if string(c) == s {
			return true
		}
	}
	return false
}

// MealType classifies a food entry.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

// AllMealTypes lists valid meal types.
var AllMealTypes = []MealType{MealBreakfast, MealLunch, MealDinner, MealSnack}

// IsValidMealType checks if a string is a valid meal type.
func IsValidMealType(s string) bool {
	for _, m := range AllMealTypes {
		if string(m) == s {
			return true
		}
	}
	return false
}

// InsulinType classifies an insulin dose.
type InsulinType string

const (
	InsulinRapid        InsulinType = "rapid"
	InsulinLong         InsulinType = "long"
	InsulinMixed        InsulinType = "mixed"
	InsulinShort        InsulinType = "short"
	InsulinIntermediate InsulinType = "intermediate"
	InsulinOther        InsulinType = "other"
)

// AllInsulinTypes lists valid insulin types.
var AllInsulinTypes = []InsulinType{
	InsulinRapid, InsulinLong, InsulinMixed, InsulinShort, InsulinIntermediate, InsulinOther,
}

// IsValidInsulinType checks if a string is a valid insulin type.
func IsValidInsulinType(s string) bool {
	for _, it := range AllInsulinTypes {
		if string(it) == s {
			return true
		}
	}
	return false
}

// GlucoseUnits selects the display unit for glucose values.
// Values are always stored in mg/dL; mmol/L is a display conversion.
type GlucoseUnits string

const (
	UnitsMgdl GlucoseUnits = "mg/dL"
	UnitsMmol GlucoseUnits = "mmol/L"
)

// IsValidGlucoseUnits checks if a string is a valid glucose unit.
func IsValidGlucoseUnits(s string) bool {
	return s == string(UnitsMgdl) || s == string(UnitsMmol)
}

// DiabetesType is an optional profile field.
type DiabetesType string

const (
	DiabetesType1        DiabetesType = "type1"
	DiabetesType2        DiabetesType = "type2"
	DiabetesGestational  DiabetesType = "gestational"
	DiabetesPrediabetes  DiabetesType = "prediabetes"
	DiabetesOther        DiabetesType = "other"
)

// IsValidDiabetesType checks if a string is a valid diabetes type.
// The empty string is valid: the profile field is optional.
func IsValidDiabetesType(s string) bool {
	switch DiabetesType(s) {
	case "", DiabetesType1, DiabetesType2, DiabetesGestational, DiabetesPrediabetes, DiabetesOther:
		return true
	}
	return false
}
