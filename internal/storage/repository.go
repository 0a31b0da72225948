// ABOUTME: Repository interface for the health record store.
// ABOUTME: Uniform CRUD contract across the six record kinds plus settings.
package storage

import (
	"time"

	"github.com/harperreed/glucolog/internal/models"
)

// Repository defines the storage interface for health records.
// This interface allows swapping implementations (e.g., for testing).
//
// List methods return the most-recent records first and never fail:
// an engine error on a read path is logged and yields an empty result.
// ListRange methods return records with start <= recorded_at <= end in
// ascending order. Write methods surface typed errors
// (models.ValidationError, NotFoundError, StorageError).
type Repository interface {
	// Glucose readings
	CreateGlucose(g *models.GlucoseReading) (int64, error)
	ListGlucose(limit int) []*models.GlucoseReading
	ListGlucoseRange(start, end time.Time) []*models.GlucoseReading
	UpdateGlucose(id int64, patch models.GlucosePatch) error
	DeleteGlucose(id int64) error

	// Food entries
	CreateFood(f *models.FoodEntry) (int64, error)
	ListFood(limit int) []*models.FoodEntry
	ListFoodRange(start, end time.Time) []*models.FoodEntry
	UpdateFood(id int64, patch models.FoodPatch) error
	DeleteFood(id int64) error

	// Insulin doses
	CreateInsulin(d *models.InsulinDose) (int64, error)
	ListInsulin(limit int) []*models.InsulinDose
	ListInsulinRange(start, end time.Time) []*models.InsulinDose
	UpdateInsulin(id int64, patch models.InsulinPatch) error
	DeleteInsulin(id int64) error

	// A1C readings
	CreateA1C(a *models.A1CReading) (int64, error)
	ListA1C(limit int) []*models.A1CReading
	ListA1CRange(start, end time.Time) []*models.A1CReading
	UpdateA1C(id int64, patch models.A1CPatch) error
	DeleteA1C(id int64) error

	// Weight measurements
	CreateWeight(w *models.WeightMeasurement) (int64, error)
	ListWeight(limit int) []*models.WeightMeasurement
	ListWeightRange(start, end time.Time) []*models.WeightMeasurement
	UpdateWeight(id int64, patch models.WeightPatch) error
	DeleteWeight(id int64) error

	// Blood pressure readings
	CreateBloodPressure(b *models.BloodPressureReading) (int64, error)
	ListBloodPressure(limit int) []*models.BloodPressureReading
	ListBloodPressureRange(start, end time.Time) []*models.BloodPressureReading
	UpdateBloodPressure(id int64, patch models.BloodPressurePatch) error
	DeleteBloodPressure(id int64) error

	// Settings (singleton; created with defaults on first access)
	Settings() (*models.UserSettings, error)
	UpdateSettings(patch models.SettingsPatch) error

	// Backup export/import
	GetAllData() (*BackupData, error)
	ImportData(data *BackupData) error
	ExportJSON() ([]byte, error)
	ExportYAML() ([]byte, error)
	ImportJSON(data []byte) error

	// Lifecycle
	Close() error
}
