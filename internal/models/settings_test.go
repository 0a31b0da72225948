// ABOUTME: Tests for the UserSettings model and partial patch application.
// ABOUTME: Covers defaults, display name, and patch validation.
package models

import "testing"

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	if s.Units != UnitsMgdl {
		t.Errorf("Units = %v, want mg/dL", s.Units)
	}
	if !s.Notifications {
		t.Error("Expected notifications on by default")
	}
	if s.TargetLow != 70 || s.TargetHigh != 180 {
		t.Errorf("Target range = %v-%v, want 70-180", s.TargetLow, s.TargetHigh)
	}
	if s.DarkMode {
		t.Error("Expected dark mode off by default")
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		first, last, want string
	}{
		{"Harper", "Reed", "Harper Reed"},
		{"Harper", "", "Harper"},
		{"", "Reed", "Reed"},
		{"", "", ""},
	}
	for _, tt := range tests {
		s := &UserSettings{FirstName: tt.first, LastName: tt.last}
		if got := s.DisplayName(); got != tt.want {
			t.Errorf("DisplayName(%q, %q) = %q, want %q", tt.first, tt.last, got, tt.want)
		}
	}
}

func TestSettingsPatchApply(t *testing.T) {
	s := DefaultSettings()

	units := UnitsMmol
	high := 170.0
	dark := true
	patch := SettingsPatch{Units: &units, TargetHigh: &high, DarkMode: &dark}
	if err := patch.Apply(s); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	if s.Units != UnitsMmol {
		t.Errorf("Units = %v", s.Units)
	}
	if s.TargetHigh != 170 {
		t.Errorf("TargetHigh = %v", s.TargetHigh)
	}
	if !s.DarkMode {
		t.Error("DarkMode not applied")
	}
	// Unset fields untouched
	if s.TargetLow != 70 {
		t.Errorf("TargetLow = %v, want 70", s.TargetLow)
	}
}

func TestSettingsPatchValidation(t *testing.T) {
	units := GlucoseUnits("parsecs")
	if err := (&SettingsPatch{Units: &units}).Apply(DefaultSettings()); err == nil {
		t.Error("Expected error for unknown units")
	}

	dt := DiabetesType("type9")
	if err := (&SettingsPatch{DiabetesType: &dt}).Apply(DefaultSettings()); err == nil {
		t.Error("Expected error for unknown diabetes type")
	}

	low := 200.0
	if err := (&SettingsPatch{TargetLow: &low}).Apply(DefaultSettings()); err == nil {
		t.Error("Expected error for low above high")
	}

	height := -5.0
	if err := (&SettingsPatch{HeightCm: &height}).Apply(DefaultSettings()); err == nil {
		t.Error("Expected error for negative height")
	}
}

func TestSettingsPatchRangePair(t *testing.T) {
	s := DefaultSettings()

	// Moving both bounds at once is allowed as long as the pair stays ordered.
	low, high := 90.0, 160.0
	if err := (&SettingsPatch{TargetLow: &low, TargetHigh: &high}).Apply(s); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if s.TargetLow != 90 || s.TargetHigh != 160 {
		t.Errorf("Range = %v-%v", s.TargetLow, s.TargetHigh)
	}

	// Inverting via the pair is rejected.
	low, high = 150.0, 120.0
	if err := (&SettingsPatch{TargetLow: &low, TargetHigh: &high}).Apply(s); err == nil {
		t.Error("Expected error for inverted pair")
	}
}
