// ABOUTME: Tests for report generation: snapshot math, artifacts, and naming.
// ABOUTME: Runs against a real SQLite store in a temp directory.
package report

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/harperreed/glucolog/internal/models"
	"github.com/harperreed/glucolog/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupGenerator(t *testing.T) (*Generator, storage.Repository, string) {
	t.Helper()

	tmpDir := t.TempDir()
	db, err := storage.Open(filepath.Join(tmpDir, "glucolog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	outDir := filepath.Join(tmpDir, "reports")
	return NewGenerator(db, outDir), db, outDir
}

func day(d, hour int) time.Time {
	return time.Date(2026, 2, d, hour, 0, 0, 0, time.UTC)
}

func TestGenerateWritesDocumentAndTables(t *testing.T) {
	gen, db, outDir := setupGenerator(t)

	_, err := db.CreateGlucose(models.NewGlucoseReading(112).WithRecordedAt(day(10, 8)))
	require.NoError(t, err)
	_, err = db.CreateInsulin(models.NewInsulinDose(6.5, models.InsulinRapid).WithRecordedAt(day(10, 9)))
	require.NoError(t, err)

	result, err := gen.Generate(day(1, 0), day(28, 23))
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(outDir, "report_2026-02-01_to_2026-02-28.html"), result.DocumentPath)
	assert.FileExists(t, result.DocumentPath)

	// One table per non-empty kind, none for the empty ones.
	require.Len(t, result.TablePaths, 2)
	assert.FileExists(t, filepath.Join(outDir, "glucose_2026-02-01_to_2026-02-28.csv"))
	assert.FileExists(t, filepath.Join(outDir, "insulin_2026-02-01_to_2026-02-28.csv"))
	assert.NoFileExists(t, filepath.Join(outDir, "food_2026-02-01_to_2026-02-28.csv"))
	assert.NoFileExists(t, filepath.Join(outDir, "weight_2026-02-01_to_2026-02-28.csv"))
}

func TestGenerateRejectsInvertedRange(t *testing.T) {
	gen, _, _ := setupGenerator(t)

	_, err := gen.Generate(day(28, 0), day(1, 0))
	assert.Error(t, err)
}

func TestGlucoseCSVContents(t *testing.T) {
	gen, db, outDir := setupGenerator(t)

	g := models.NewGlucoseReading(112).
		WithRecordedAt(day(10, 8)).
		WithContext(models.ContextFasting).
		WithNotes("notes, with comma")
	_, err := db.CreateGlucose(g)
	require.NoError(t, err)

	_, err = gen.Generate(day(1, 0), day(28, 23))
	require.NoError(t, err)

	f, err := os.Open(filepath.Join(outDir, "glucose_2026-02-01_to_2026-02-28.csv"))
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, []string{"date", "time", "value", "context", "notes"}, rows[0])
	assert.Equal(t, []string{"2026-02-10", "08:00", "112", "fasting", "notes, with comma"}, rows[1])
}

func TestRangeFiltersAllKinds(t *testing.T) {
	gen, db, _ := setupGenerator(t)

	// Inside the range.
	_, err := db.CreateWeight(models.NewWeightMeasurement(82).WithRecordedAt(day(10, 7)))
	require.NoError(t, err)
	// Outside the range.
	_, err = db.CreateWeight(models.NewWeightMeasurement(85).WithRecordedAt(day(28, 7)))
	require.NoError(t, err)

	snap, err := gen.buildSnapshot(day(1, 0), day(14, 23))
	require.NoError(t, err)
	require.Len(t, snap.Weight, 1)
	assert.Equal(t, 82.0, snap.Weight[0].Value)
}

func TestPerDayAggregates(t *testing.T) {
	gen, db, _ := setupGenerator(t)

	// 6 + 4 units on day 10, 8 units on day 11: 18 total over 2 days.
	for _, d := range []struct {
		units float64
		at    time.Time
	}{
		{6, day(10, 8)},
		{4, day(10, 19)},
		{8, day(11, 8)},
	} {
		_, err := db.CreateInsulin(models.NewInsulinDose(d.units, models.InsulinRapid).WithRecordedAt(d.at))
		require.NoError(t, err)
	}

	carbs := func(g float64, at time.Time) *models.FoodEntry {
		return models.NewFoodEntry("meal", models.MealLunch).WithCarbs(g).WithRecordedAt(at)
	}
	_, err := db.CreateFood(carbs(50, day(10, 12)))
	require.NoError(t, err)
	_, err = db.CreateFood(carbs(25, day(11, 12)))
	require.NoError(t, err)

	snap, err := gen.buildSnapshot(day(1, 0), day(28, 23))
	require.NoError(t, err)

	assert.Equal(t, 18.0, snap.InsulinTotal)
	assert.Equal(t, 9.0, snap.InsulinPerDay)
	assert.Equal(t, 75.0, snap.CarbsTotal)
	assert.Equal(t, 37.5, snap.CarbsPerDay)
}

func TestBodyMassIndex(t *testing.T) {
	gen, db, _ := setupGenerator(t)

	// No height: no BMI block.
	snap, err := gen.buildSnapshot(day(1, 0), day(28, 23))
	require.NoError(t, err)
	assert.Nil(t, snap.BMI)

	height := 178.0
	require.NoError(t, db.UpdateSettings(models.SettingsPatch{HeightCm: &height}))
	_, err = db.CreateWeight(models.NewWeightMeasurement(82.5).WithRecordedAt(day(10, 7)))
	require.NoError(t, err)

	snap, err = gen.buildSnapshot(day(1, 0), day(28, 23))
	require.NoError(t, err)
	require.NotNil(t, snap.BMI)
	// 82.5 / 1.78² = 26.0 to one decimal.
	assert.Equal(t, 26.0, snap.BMI.Value)
	assert.Equal(t, "Overweight", snap.BMI.Category)
}

func TestBMICategories(t *testing.T) {
	assert.Equal(t, "Underweight", bmiCategory(18.4))
	assert.Equal(t, "Normal", bmiCategory(18.5))
	assert.Equal(t, "Normal", bmiCategory(24.9))
	assert.Equal(t, "Overweight", bmiCategory(25))
	assert.Equal(t, "Obese", bmiCategory(30))
}

func TestDocumentContents(t *testing.T) {
	gen, db, _ := setupGenerator(t)

	_, err := db.CreateGlucose(models.NewGlucoseReading(112).
		WithRecordedAt(day(10, 8)).
		WithContext(models.ContextFasting).
		WithNotes("before breakfast walk"))
	require.NoError(t, err)
	_, err = db.CreateInsulin(models.NewInsulinDose(6.5, models.InsulinRapid).WithRecordedAt(day(10, 9)))
	require.NoError(t, err)
	_, err = db.CreateFood(models.NewFoodEntry("oatmeal", models.MealBreakfast).
		WithCarbs(42).
		WithRecordedAt(day(10, 8)))
	require.NoError(t, err)

	result, err := gen.Generate(day(1, 0), day(28, 23))
	require.NoError(t, err)

	data, err := os.ReadFile(result.DocumentPath)
	require.NoError(t, err)
	html := string(data)

	assert.Contains(t, html, "Health Report")
	assert.Contains(t, html, "112 mg/dL")

	// Individual rows for each kind, not just summary metrics.
	assert.Contains(t, html, "2026-02-10 08:00")
	assert.Contains(t, html, "before breakfast walk")
	assert.Contains(t, html, "2026-02-10 09:00")
	assert.Contains(t, html, "rapid")
	assert.Contains(t, html, "oatmeal")
	assert.Contains(t, html, "42")
}

func TestDocumentListsRowsChronologically(t *testing.T) {
	gen, db, _ := setupGenerator(t)

	// Inserted newest first; the document lists oldest first.
	_, err := db.CreateGlucose(models.NewGlucoseReading(140).WithRecordedAt(day(12, 8)))
	require.NoError(t, err)
	_, err = db.CreateGlucose(models.NewGlucoseReading(95).WithRecordedAt(day(10, 8)))
	require.NoError(t, err)

	result, err := gen.Generate(day(1, 0), day(28, 23))
	require.NoError(t, err)

	data, err := os.ReadFile(result.DocumentPath)
	require.NoError(t, err)
	html := string(data)

	earlier := strings.Index(html, "2026-02-10 08:00")
	later := strings.Index(html, "2026-02-12 08:00")
	require.NotEqual(t, -1, earlier)
	require.NotEqual(t, -1, later)
	assert.Less(t, earlier, later)
}

func TestRegenerateReplacesArtifacts(t *testing.T) {
	gen, db, _ := setupGenerator(t)

	_, err := db.CreateGlucose(models.NewGlucoseReading(112).WithRecordedAt(day(10, 8)))
	require.NoError(t, err)

	first, err := gen.Generate(day(1, 0), day(28, 23))
	require.NoError(t, err)

	_, err = db.CreateGlucose(models.NewGlucoseReading(250).WithRecordedAt(day(11, 8)))
	require.NoError(t, err)

	second, err := gen.Generate(day(1, 0), day(28, 23))
	require.NoError(t, err)
	assert.Equal(t, first.DocumentPath, second.DocumentPath)

	data, err := os.ReadFile(second.DocumentPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "250 mg/dL")
}

func TestNoTempFilesLeftBehind(t *testing.T) {
	gen, db, outDir := setupGenerator(t)

	_, err := db.CreateGlucose(models.NewGlucoseReading(112).WithRecordedAt(day(10, 8)))
	require.NoError(t, err)

	_, err = gen.Generate(day(1, 0), day(28, 23))
	require.NoError(t, err)

	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.False(t, strings.HasPrefix(e.Name(), ".tmp-"), "leftover temp file: %s", e.Name())
	}
}
