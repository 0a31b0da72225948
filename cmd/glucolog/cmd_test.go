// ABOUTME: Tests for CLI helper functions and command wiring.
// ABOUTME: Tests parseTime, truncate, padRight, normalizeKind, and command execution.
package main

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/harperreed/glucolog/internal/models"
	"github.com/harperreed/glucolog/internal/storage"
)

func TestParseTime(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{
			name:    "date and time with space",
			input:   "2026-01-31 08:30",
			wantErr: false,
		},
		{
			name:    "date and time with T",
			input:   "2026-01-31T08:30",
			wantErr: false,
		},
		{
			name:    "date only",
			input:   "2026-01-31",
			wantErr: false,
		},
		{
			name:    "RFC3339",
			input:   "2026-01-31T08:30:00Z",
			wantErr: false,
		},
		{
			name:    "RFC3339 with offset",
			input:   "2026-01-31T08:30:00+05:00",
			wantErr: false,
		},
		{
			name:    "invalid format",
			input:   "31-01-2026",
			wantErr: true,
		},
		{
			name:    "invalid random string",
			input:   "not a date",
			wantErr: true,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := parseTime(tt.input)

			if tt.wantErr {
				if err == nil {
					t.Errorf("parseTime(%q) expected error, got nil", tt.input)
				}
				return
			}

			if err != nil {
				t.Errorf("parseTime(%q) unexpected error: %v", tt.input, err)
				return
			}

			if result.IsZero() {
				t.Errorf("parseTime(%q) returned zero time", tt.input)
			}
		})
	}
}

func TestParseTimeValues(t *testing.T) {
	result, err := parseTime("2026-06-15")
	if err != nil {
		t.Fatalf("parseTime failed: %v", err)
	}

	if result.Year() != 2026 || result.Month() != time.June || result.Day() != 15 {
		t.Errorf("parseTime returned wrong date: got %v", result)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{
			name:   "short string no truncation",
			input:  "hello",
			maxLen: 10,
			want:   "hello",
		},
		{
			name:   "exact length",
			input:  "hello",
			maxLen: 5,
			want:   "hello",
		},
		{
			name:   "needs truncation",
			input:  "hello world this is a long string",
			maxLen: 10,
			want:   "hello w...",
		},
		{
			name:   "empty string",
			input:  "",
			maxLen: 10,
			want:   "",
		},
		{
			name:   "multibyte runes kept whole",
			input:  "frühstück müsli mit beeren und nüssen",
			maxLen: 10,
			want:   "frühstü...",
		},
		{
			name:   "multibyte within limit",
			input:  "müsli",
			maxLen: 5,
			want:   "müsli",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.input, tt.maxLen)
			if got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
			}
		})
	}
}

func TestPadRight(t *testing.T) {
	if got := padRight("abc", 6); got != "abc   " {
		t.Errorf("padRight(\"abc\", 6) = %q", got)
	}
	if got := padRight("abcdef", 4); got != "abcdef" {
		t.Errorf("padRight(\"abcdef\", 4) = %q", got)
	}
}

func TestNormalizeKind(t *testing.T) {
	if got := normalizeKind("bp"); got != "blood_pressure" {
		t.Errorf("normalizeKind(\"bp\") = %q, want %q", got, "blood_pressure")
	}
	if got := normalizeKind("glucose"); got != "glucose" {
		t.Errorf("normalizeKind(\"glucose\") = %q, want %q", got, "glucose")
	}
}

func TestEntryNotes(t *testing.T) {
	g := models.NewGlucoseReading(110).WithNotes("after walk")
	e := models.EntryFromGlucose(g)
	if got := entryNotes(e); got != "after walk" {
		t.Errorf("entryNotes = %q, want %q", got, "after walk")
	}

	w := models.NewWeightMeasurement(80)
	if got := entryNotes(models.EntryFromWeight(w)); got != "" {
		t.Errorf("entryNotes for nil notes = %q, want empty", got)
	}
}

// setupCmdTest points the global repo at a temp-dir store.
func setupCmdTest(t *testing.T) {
	t.Helper()

	db, err := storage.Open(filepath.Join(t.TempDir(), "glucolog.db"))
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() {
		db.Close()
		repo = nil
	})
	repo = db
}

func TestAddAndListCommands(t *testing.T) {
	setupCmdTest(t)

	addAt, addNotes, addContext = "", "fasting reading", "fasting"
	if err := addGlucoseCmd.RunE(addGlucoseCmd, []string{"112"}); err != nil {
		t.Fatalf("add glucose failed: %v", err)
	}

	readings := repo.ListGlucose(0)
	if len(readings) != 1 {
		t.Fatalf("Expected 1 reading, got %d", len(readings))
	}
	if readings[0].Value != 112 {
		t.Errorf("Value = %.0f, want 112", readings[0].Value)
	}
	if readings[0].Context != models.ContextFasting {
		t.Errorf("Context = %q, want fasting", readings[0].Context)
	}

	listKind, listLimit = "", 20
	if err := listCmd.RunE(listCmd, nil); err != nil {
		t.Errorf("list failed: %v", err)
	}
}

func TestAddGlucoseRejectsBadValue(t *testing.T) {
	setupCmdTest(t)

	addAt, addNotes, addContext = "", "", ""
	if err := addGlucoseCmd.RunE(addGlucoseCmd, []string{"not-a-number"}); err == nil {
		t.Error("Expected error for non-numeric value")
	}
	if err := addGlucoseCmd.RunE(addGlucoseCmd, []string{"-5"}); err == nil {
		t.Error("Expected error for negative value")
	}
}

func TestDeleteCommand(t *testing.T) {
	setupCmdTest(t)

	addAt, addNotes, addContext = "", "", ""
	if err := addGlucoseCmd.RunE(addGlucoseCmd, []string{"130"}); err != nil {
		t.Fatalf("add glucose failed: %v", err)
	}

	if err := deleteCmd.RunE(deleteCmd, []string{"glucose", "1"}); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if got := len(repo.ListGlucose(0)); got != 0 {
		t.Errorf("Expected 0 readings after delete, got %d", got)
	}

	// Idempotent: deleting again is not an error.
	if err := deleteCmd.RunE(deleteCmd, []string{"glucose", "1"}); err != nil {
		t.Errorf("repeat delete should be a no-op, got: %v", err)
	}

	if err := deleteCmd.RunE(deleteCmd, []string{"steps", "1"}); err == nil {
		t.Error("Expected error for unknown kind")
	}
}
