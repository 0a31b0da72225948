// ABOUTME: Date-range report generation over the health record store.
// ABOUTME: Builds a snapshot of all record kinds plus computed statistics.
package report

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/harperreed/glucolog/internal/models"
	"github.com/harperreed/glucolog/internal/stats"
	"github.com/harperreed/glucolog/internal/storage"
)

// Generator renders date-bounded reports from the record store.
type Generator struct {
	repo   storage.Repository
	outDir string
}

// NewGenerator creates a report generator writing artifacts to outDir.
func NewGenerator(repo storage.Repository, outDir string) *Generator {
	return &Generator{repo: repo, outDir: outDir}
}

// Result lists the artifacts produced by one report run.
type Result struct {
	DocumentPath string
	TablePaths   []string
}

// Snapshot is the full data set for one report: every record kind filtered
// to the date range, the settings row, and the derived metrics.
type Snapshot struct {
	Start, End time.Time
	Settings   *models.UserSettings

	Glucose       []*models.GlucoseReading
	Food          []*models.FoodEntry
	Insulin       []*models.InsulinDose
	A1C           []*models.A1CReading
	Weight        []*models.WeightMeasurement
	BloodPressure []*models.BloodPressureReading

	GlucoseSummary stats.Summary
	TimeOfDay      stats.TimeOfDayBuckets
	MealContext    stats.MealContextBuckets

	InsulinTotal  float64
	InsulinPerDay float64
	CarbsTotal    float64
	CarbsPerDay   float64

	BMI *BMIResult
}

// BMIResult is the optional body-mass-index block, computed from the
// latest weight and the profile height.
type BMIResult struct {
	Value    float64
	Category string
}

// Generate builds the snapshot for [start, end], renders the HTML document
// and one delimited table per non-empty record kind, and returns the
// artifact paths. Artifacts are written all-or-nothing: a failure discards
// partial output and surfaces an ExportError.
func (g *Generator) Generate(start, end time.Time) (*Result, error) {
	if end.Before(start) {
		return nil, fmt.Errorf("invalid date range: end %s before start %s",
			end.Format("2006-01-02"), start.Format("2006-01-02"))
	}
	if err := os.MkdirAll(g.outDir, 0750); err != nil {
		return nil, &ExportError{Artifact: "report directory", Err: err}
	}

	snap, err := g.buildSnapshot(start, end)
	if err != nil {
		return nil, err
	}

	docPath, err := g.writeDocument(snap)
	if err != nil {
		return nil, err
	}

	tablePaths, err := g.writeTables(snap)
	if err != nil {
		return nil, err
	}

	log.Debug("report generated", "document", docPath, "tables", len(tablePaths))
	return &Result{DocumentPath: docPath, TablePaths: tablePaths}, nil
}

// buildSnapshot fetches every record kind through range-filtered queries
// and computes the derived metrics.
func (g *Generator) buildSnapshot(start, end time.Time) (*Snapshot, error) {
	settings, err := g.repo.Settings()
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	snap := &Snapshot{
		Start:         start,
		End:           end,
		Settings:      settings,
		Glucose:       g.repo.ListGlucoseRange(start, end),
		Food:          g.repo.ListFoodRange(start, end),
		Insulin:       g.repo.ListInsulinRange(start, end),
		A1C:           g.repo.ListA1CRange(start, end),
		Weight:        g.repo.ListWeightRange(start, end),
		BloodPressure: g.repo.ListBloodPressureRange(start, end),
	}

	snap.GlucoseSummary = stats.Summarize(snap.Glucose, settings.TargetLow, settings.TargetHigh)
	snap.TimeOfDay = stats.BucketByTimeOfDay(snap.Glucose)
	snap.MealContext = stats.BucketByMealContext(snap.Glucose)

	snap.InsulinTotal, snap.InsulinPerDay = perDay(len(snap.Insulin), func(yield func(day string, v float64)) {
		for _, d := range snap.Insulin {
			yield(d.RecordedAt.Format("2006-01-02"), d.Units)
		}
	})
	snap.CarbsTotal, snap.CarbsPerDay = perDay(len(snap.Food), func(yield func(day string, v float64)) {
		for _, f := range snap.Food {
			if f.Carbs != nil {
				yield(f.RecordedAt.Format("2006-01-02"), *f.Carbs)
			}
		}
	})

	snap.BMI = g.bodyMassIndex(settings)

	return snap, nil
}

// perDay totals values and averages them over distinct calendar days.
func perDay(n int, iterate func(yield func(day string, v float64))) (total, avgPerDay float64) {
	if n == 0 {
		return 0, 0
	}
	days := make(map[string]struct{})
	iterate(func(day string, v float64) {
		days[day] = struct{}{}
		total += v
	})
	if len(days) == 0 {
		return 0, 0
	}
	avgPerDay = math.Round(total/float64(len(days))*10) / 10
	return total, avgPerDay
}

// bodyMassIndex computes BMI from the latest stored weight and the profile
// height. Returns nil when either is missing.
func (g *Generator) bodyMassIndex(settings *models.UserSettings) *BMIResult {
	if settings.HeightCm <= 0 {
		return nil
	}
	weights := g.repo.ListWeight(1)
	if len(weights) == 0 {
		return nil
	}
	heightM := settings.HeightCm / 100
	bmi := math.Round(weights[0].Value/(heightM*heightM)*10) / 10
	return &BMIResult{Value: bmi, Category: bmiCategory(bmi)}
}

func bmiCategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25:
		return "Normal"
	case bmi < 30:
		return "Overweight"
	default:
		return "Obese"
	}
}

// rangeSuffix builds the deterministic artifact name fragment for a range.
func rangeSuffix(start, end time.Time) string {
	return fmt.Sprintf("%s_to_%s", start.Format("2006-01-02"), end.Format("2006-01-02"))
}
