// ABOUTME: Tests for backup export and import functionality.
// ABOUTME: Verifies JSON and YAML envelopes and round-trip import.
package storage

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/harperreed/glucolog/internal/models"
	"gopkg.in/yaml.v3"
)

func TestExportJSON(t *testing.T) {
	db := setupTestDB(t)

	g := models.NewGlucoseReading(112).WithNotes("test note")
	if _, err := db.CreateGlucose(g); err != nil {
		t.Fatalf("CreateGlucose failed: %v", err)
	}
	if _, err := db.CreateWeight(models.NewWeightMeasurement(82.5)); err != nil {
		t.Fatalf("CreateWeight failed: %v", err)
	}

	data, err := db.ExportJSON()
	if err != nil {
		t.Fatalf("ExportJSON failed: %v", err)
	}

	var export BackupData
	if err := json.Unmarshal(data, &export); err != nil {
		t.Fatalf("Failed to parse JSON: %v", err)
	}

	if export.Version != "1.0" {
		t.Errorf("Expected version 1.0, got %s", export.Version)
	}
	if export.Tool != "glucolog" {
		t.Errorf("Expected tool glucolog, got %s", export.Tool)
	}
	if len(export.Glucose) != 1 {
		t.Errorf("Expected 1 glucose reading, got %d", len(export.Glucose))
	}
	if len(export.Weight) != 1 {
		t.Errorf("Expected 1 weight measurement, got %d", len(export.Weight))
	}
	if export.Settings == nil {
		t.Error("Expected settings in export")
	}
	if export.ExportID.String() == "00000000-0000-0000-0000-000000000000" {
		t.Error("Expected a non-zero export id")
	}
}

func TestExportYAML(t *testing.T) {
	db := setupTestDB(t)

	if _, err := db.CreateInsulin(models.NewInsulinDose(6.5, models.InsulinRapid)); err != nil {
		t.Fatalf("CreateInsulin failed: %v", err)
	}

	data, err := db.ExportYAML()
	if err != nil {
		t.Fatalf("ExportYAML failed: %v", err)
	}

	var export BackupData
	if err := yaml.Unmarshal(data, &export); err != nil {
		t.Fatalf("Failed to parse YAML: %v", err)
	}
	if len(export.Insulin) != 1 {
		t.Errorf("Expected 1 insulin dose, got %d", len(export.Insulin))
	}
	if !strings.Contains(string(data), "insulin") {
		t.Error("Expected insulin section in YAML output")
	}
}

func TestImportRoundTrip(t *testing.T) {
	src := setupTestDB(t)

	g := models.NewGlucoseReading(145).WithContext(models.ContextAfterMeal)
	if _, err := src.CreateGlucose(g); err != nil {
		t.Fatalf("CreateGlucose failed: %v", err)
	}
	f := models.NewFoodEntry("pasta", models.MealDinner).WithCarbs(70)
	if _, err := src.CreateFood(f); err != nil {
		t.Fatalf("CreateFood failed: %v", err)
	}
	if _, err := src.CreateBloodPressure(models.NewBloodPressureReading(118, 76)); err != nil {
		t.Fatalf("CreateBloodPressure failed: %v", err)
	}
	units := models.UnitsMmol
	if err := src.UpdateSettings(models.SettingsPatch{Units: &units}); err != nil {
		t.Fatalf("UpdateSettings failed: %v", err)
	}

	data, err := src.ExportJSON()
	if err != nil {
		t.Fatalf("ExportJSON failed: %v", err)
	}

	dst := setupTestDB(t)
	if err := dst.ImportJSON(data); err != nil {
		t.Fatalf("ImportJSON failed: %v", err)
	}

	if got := dst.ListGlucose(0); len(got) != 1 || got[0].Value != 145 {
		t.Errorf("Glucose after import: %+v", got)
	}
	if got := dst.ListFood(0); len(got) != 1 || got[0].Name != "pasta" {
		t.Errorf("Food after import: %+v", got)
	}
	if got := dst.ListBloodPressure(0); len(got) != 1 {
		t.Errorf("Expected 1 bp reading after import, got %d", len(got))
	}

	settings, err := dst.Settings()
	if err != nil {
		t.Fatalf("Settings failed: %v", err)
	}
	if settings.Units != models.UnitsMmol {
		t.Errorf("Units after import = %v, want mmol/L", settings.Units)
	}
}

func TestImportRejectsInvalidRecord(t *testing.T) {
	db := setupTestDB(t)

	backup := &BackupData{
		Glucose: []*models.GlucoseReading{models.NewGlucoseReading(-5)},
	}
	if err := db.ImportData(backup); err == nil {
		t.Fatal("Expected error importing invalid reading")
	}
}

func TestImportJSONRejectsGarbage(t *testing.T) {
	db := setupTestDB(t)

	if err := db.ImportJSON([]byte("not json")); err == nil {
		t.Error("Expected error for malformed JSON")
	}
}

func TestImportReassignsIDs(t *testing.T) {
	db := setupTestDB(t)

	// Pre-existing record occupies id 1.
	if _, err := db.CreateGlucose(models.NewGlucoseReading(99)); err != nil {
		t.Fatalf("CreateGlucose failed: %v", err)
	}

	imported := models.NewGlucoseReading(140)
	imported.ID = 1
	imported.Notes = strPtr("imported")
	if err := db.ImportData(&BackupData{Glucose: []*models.GlucoseReading{imported}}); err != nil {
		t.Fatalf("ImportData failed: %v", err)
	}

	readings := db.ListGlucose(0)
	if len(readings) != 2 {
		t.Fatalf("Expected 2 readings, got %d", len(readings))
	}
	if readings[0].ID == readings[1].ID {
		t.Error("Imported record should get a fresh id")
	}
}
