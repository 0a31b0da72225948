// ABOUTME: Full-store backup export and import.
// ABOUTME: Supports JSON and YAML envelopes carrying all record kinds.
package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/glucolog/internal/models"
	"gopkg.in/yaml.v3"
)

// BackupData is the full export envelope for the health record store.
type BackupData struct {
	Version       string                         `json:"version" yaml:"version"`
	ExportID      uuid.UUID                      `json:"export_id" yaml:"export_id"`
	ExportedAt    time.Time                      `json:"exported_at" yaml:"exported_at"`
	Tool          string                         `json:"tool" yaml:"tool"`
	Settings      *models.UserSettings           `json:"settings" yaml:"settings"`
	Glucose       []*models.GlucoseReading       `json:"glucose" yaml:"glucose"`
	Food          []*models.FoodEntry            `json:"food" yaml:"food"`
	Insulin       []*models.InsulinDose          `json:"insulin" yaml:"insulin"`
	A1C           []*models.A1CReading           `json:"a1c" yaml:"a1c"`
	Weight        []*models.WeightMeasurement    `json:"weight" yaml:"weight"`
	BloodPressure []*models.BloodPressureReading `json:"blood_pressure" yaml:"blood_pressure"`
}

// GetAllData retrieves all records for export.
func (d *DB) GetAllData() (*BackupData, error) {
	settings, err := d.Settings()
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	return &BackupData{
		Version:       "1.0",
		ExportID:      uuid.New(),
		ExportedAt:    time.Now(),
		Tool:          "glucolog",
		Settings:      settings,
		Glucose:       d.ListGlucose(0),
		Food:          d.ListFood(0),
		Insulin:       d.ListInsulin(0),
		A1C:           d.ListA1C(0),
		Weight:        d.ListWeight(0),
		BloodPressure: d.ListBloodPressure(0),
	}, nil
}

// ImportData imports records from a backup envelope. Imported records are
// re-created through the normal write path, so ids are reassigned and
// invalid records are rejected rather than silently stored.
func (d *DB) ImportData(data *BackupData) error {
	for _, g := range data.Glucose {
		if _, err := d.CreateGlucose(g); err != nil {
			return fmt.Errorf("import glucose reading: %w", err)
		}
	}
	for _, f := range data.Food {
		if _, err := d.CreateFood(f); err != nil {
			return fmt.Errorf("import food entry: %w", err)
		}
	}
	for _, dose := range data.Insulin {
		if _, err := d.CreateInsulin(dose); err != nil {
			return fmt.Errorf("import insulin dose: %w", err)
		}
	}
	for _, a := range data.A1C {
		if _, err := d.CreateA1C(a); err != nil {
			return fmt.Errorf("import a1c reading: %w", err)
		}
	}
	for _, w := range data.Weight {
		if _, err := d.CreateWeight(w); err != nil {
			return fmt.Errorf("import weight measurement: %w", err)
		}
	}
	for _, b := range data.BloodPressure {
		if _, err := d.CreateBloodPressure(b); err != nil {
			return fmt.Errorf("import blood pressure reading: %w", err)
		}
	}

	if data.Settings != nil {
		patch := models.SettingsPatch{
			Units:         &data.Settings.Units,
			Notifications: &data.Settings.Notifications,
			DarkMode:      &data.Settings.DarkMode,
			Email:         &data.Settings.Email,
			FirstName:     &data.Settings.FirstName,
			LastName:      &data.Settings.LastName,
			DiabetesType:  &data.Settings.DiabetesType,
			HeightCm:      &data.Settings.HeightCm,
			TargetLow:     &data.Settings.TargetLow,
			TargetHigh:    &data.Settings.TargetHigh,
		}
		if err := d.UpdateSettings(patch); err != nil {
			return fmt.Errorf("import settings: %w", err)
		}
	}

	return nil
}

// ExportJSON exports all data as JSON.
func (d *DB) ExportJSON() ([]byte, error) {
	data, err := d.GetAllData()
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(data, "", "  ")
}

// ExportYAML exports all data as YAML.
func (d *DB) ExportYAML() ([]byte, error) {
	data, err := d.GetAllData()
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(data)
}

// ImportJSON imports data from JSON bytes.
func (d *DB) ImportJSON(data []byte) error {
	var backup BackupData
	if err := json.Unmarshal(data, &backup); err != nil {
		return fmt.Errorf("unmarshal JSON: %w", err)
	}
	return d.ImportData(&backup)
}
