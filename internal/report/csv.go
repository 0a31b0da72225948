// ABOUTME: Per-kind CSV artifacts for a report snapshot.
// ABOUTME: Deterministic file names; temp-file plus rename for atomic writes.
package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/harperreed/glucolog/internal/models"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// writeTables writes one CSV file per record kind that has data in the
// snapshot. Empty kinds produce no file.
func (g *Generator) writeTables(snap *Snapshot) ([]string, error) {
	suffix := rangeSuffix(snap.Start, snap.End)
	var paths []string

	type table struct {
		name   string
		header []string
		rows   [][]string
	}

	tables := []table{
		{"glucose", []string{"date", "time", "value", "context", "notes"}, glucoseRows(snap.Glucose)},
		{"insulin", []string{"date", "time", "units", "type", "notes"}, insulinRows(snap.Insulin)},
		{"food", []string{"date", "time", "name", "carbs", "notes"}, foodRows(snap.Food)},
		{"a1c", []string{"date", "value", "notes"}, a1cRows(snap.A1C)},
		{"weight", []string{"date", "value", "notes"}, weightRows(snap.Weight)},
		{"blood_pressure", []string{"date", "systolic", "diastolic", "notes"}, bloodPressureRows(snap.BloodPressure)},
	}

	for _, t := range tables {
		if len(t.rows) == 0 {
			continue
		}
		path := filepath.Join(g.outDir, fmt.Sprintf("%s_%s.csv", t.name, suffix))
		if err := g.writeCSV(path, t.header, t.rows); err != nil {
			return nil, &ExportError{Artifact: t.name + " table", Err: err}
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// writeCSV renders the rows to a buffer, then lands the file via a temp
// file and rename so readers never see a partial table.
func (g *Generator) writeCSV(path string, header []string, rows [][]string) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return err
	}
	if err := w.WriteAll(rows); err != nil {
		return err
	}
	return atomicWrite(path, buf.Bytes())
}

// atomicWrite writes data to a temp file in the target directory and
// renames it into place.
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}

func glucoseRows(readings []*models.GlucoseReading) [][]string {
	rows := make([][]string, 0, len(readings))
	for _, r := range readings {
		rows = append(rows, []string{
			r.RecordedAt.Format(dateLayout),
			r.RecordedAt.Format(timeLayout),
			formatFloat(r.Value),
			string(r.Context),
			noteText(r.Notes),
		})
	}
	return rows
}

func insulinRows(doses []*models.InsulinDose) [][]string {
	rows := make([][]string, 0, len(doses))
	for _, d := range doses {
		rows = append(rows, []string{
			d.RecordedAt.Format(dateLayout),
			d.RecordedAt.Format(timeLayout),
			formatFloat(d.Units),
			string(d.InsulinType),
			noteText(d.Notes),
		})
	}
	return rows
}

func foodRows(entries []*models.FoodEntry) [][]string {
	rows := make([][]string, 0, len(entries))
	for _, f := range entries {
		carbs := ""
		if f.Carbs != nil {
			carbs = formatFloat(*f.Carbs)
		}
		rows = append(rows, []string{
			f.RecordedAt.Format(dateLayout),
			f.RecordedAt.Format(timeLayout),
			f.Name,
			carbs,
			noteText(f.Notes),
		})
	}
	return rows
}

func a1cRows(readings []*models.A1CReading) [][]string {
	rows := make([][]string, 0, len(readings))
	for _, r := range readings {
		rows = append(rows, []string{
			r.RecordedAt.Format(dateLayout),
			formatFloat(r.Value),
			noteText(r.Notes),
		})
	}
	return rows
}

func weightRows(measurements []*models.WeightMeasurement) [][]string {
	rows := make([][]string, 0, len(measurements))
	for _, m := range measurements {
		rows = append(rows, []string{
			m.RecordedAt.Format(dateLayout),
			formatFloat(m.Value),
			noteText(m.Notes),
		})
	}
	return rows
}

func bloodPressureRows(readings []*models.BloodPressureReading) [][]string {
	rows := make([][]string, 0, len(readings))
	for _, r := range readings {
		rows = append(rows, []string{
			r.RecordedAt.Format(dateLayout),
			strconv.Itoa(r.Systolic),
			strconv.Itoa(r.Diastolic),
			noteText(r.Notes),
		})
	}
	return rows
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func noteText(notes *string) string {
	if notes == nil {
		return ""
	}
	return *notes
}
