// ABOUTME: UserSettings singleton model with display, profile, and target-range fields.
// ABOUTME: The store guarantees exactly one settings row exists at all times.
package models

import "fmt"

// Default target range bounds in mg/dL.
const (
	DefaultTargetLow  = 70
	DefaultTargetHigh = 180
)

// UserSettings is the singleton preferences and profile record.
type UserSettings struct {
	Units         GlucoseUnits `json:"units" yaml:"units"`
	Notifications bool         `json:"notifications" yaml:"notifications"`
	DarkMode      bool         `json:"dark_mode" yaml:"dark_mode"`
	Email         string       `json:"email,omitempty" yaml:"email,omitempty"`
	FirstName     string       `json:"first_name,omitempty" yaml:"first_name,omitempty"`
	LastName      string       `json:"last_name,omitempty" yaml:"last_name,omitempty"`
	DiabetesType  DiabetesType `json:"diabetes_type,omitempty" yaml:"diabetes_type,omitempty"`
	HeightCm      float64      `json:"height_cm,omitempty" yaml:"height_cm,omitempty"`
	TargetLow     float64      `json:"target_low" yaml:"target_low"`  // mg/dL
	TargetHigh    float64      `json:"target_high" yaml:"target_high"` // mg/dL
}

// DefaultSettings returns the settings row created on first access.
func DefaultSettings() *UserSettings {
	return &UserSettings{
		Units:         UnitsMgdl,
		Notifications: true,
		TargetLow:     DefaultTargetLow,
		TargetHigh:    DefaultTargetHigh,
	}
}

// DisplayName returns the profile name, or empty if none is set.
func (s *UserSettings) DisplayName() string {
	switch {
	case s.FirstName != "" && s.LastName != "":
		return s.FirstName + " " + s.LastName
	case s.FirstName != "":
		return s.FirstName
	default:
		return s.LastName
	}
}

// SettingsPatch carries a partial settings update. Only non-nil fields
// are applied; unspecified fields are never reset.
type SettingsPatch struct {
	Units         *GlucoseUnits
	Notifications *bool
	DarkMode      *bool
	Email         *string
	FirstName     *string
	LastName      *string
	DiabetesType  *DiabetesType
	HeightCm      *float64
	TargetLow     *float64
	TargetHigh    *float64
}

// Apply merges the patch into the settings, validating enum and range fields.
func (p *SettingsPatch) Apply(s *UserSettings) error {
	if p.Units != nil {
		if !IsValidGlucoseUnits(string(*p.Units)) {
			return &ValidationError{Field: "units", Reason: fmt.Sprintf("unrecognized units %q", *p.Units)}
		}
		s.Units = *p.Units
	}
	if p.Notifications != nil {
		s.Notifications = *p.Notifications
	}
	if p.DarkMode != nil {
		s.DarkMode = *p.DarkMode
	}
	if p.Email != nil {
		s.Email = *p.Email
	}
	if p.FirstName != nil {
		s.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		s.LastName = *p.LastName
	}
	if p.DiabetesType != nil {
		if !IsValidDiabetesType(string(*p.DiabetesType)) {
			return &ValidationError{Field: "diabetes_type", Reason: fmt.Sprintf("unrecognized diabetes type %q", *p.DiabetesType)}
		}
		s.DiabetesType = *p.DiabetesType
	}
	if p.HeightCm != nil {
		if !isFinite(*p.HeightCm) || *p.HeightCm < 0 {
			return &ValidationError{Field: "height_cm", Reason: "must be a non-negative finite number"}
		}
		s.HeightCm = *p.HeightCm
	}
	if p.TargetLow != nil {
		if !isFinite(*p.TargetLow) || *p.TargetLow <= 0 {
			return &ValidationError{Field: "target_low", Reason: "must be greater than zero"}
		}
		s.TargetLow = *p.TargetLow
	}
	if p.TargetHigh != nil {
		if !isFinite(*p.TargetHigh) || *p.TargetHigh <= 0 {
			return &ValidationError{Field: "target_high", Reason: "must be greater than zero"}
		}
		s.TargetHigh = *p.TargetHigh
	}
	if s.TargetHigh <= s.TargetLow {
		return &ValidationError{Field: "target_high", Reason: "must be above target_low"}
	}
	return nil
}
