// ABOUTME: HTML report document rendered from a snapshot via html/template.
// ABOUTME: Single self-contained file; glucose values shown in the user's units.
package report

import (
	"bytes"
	"fmt"
	"html/template"
	"path/filepath"

	"github.com/harperreed/glucolog/internal/models"
)

// writeDocument renders the HTML summary document and lands it atomically.
func (g *Generator) writeDocument(snap *Snapshot) (string, error) {
	path := filepath.Join(g.outDir, fmt.Sprintf("report_%s.html", rangeSuffix(snap.Start, snap.End)))

	var buf bytes.Buffer
	if err := documentTemplate.Execute(&buf, snap); err != nil {
		return "", &ExportError{Artifact: "report document", Err: err}
	}
	if err := atomicWrite(path, buf.Bytes()); err != nil {
		return "", &ExportError{Artifact: "report document", Err: err}
	}
	return path, nil
}

var documentTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"glucose": func(v float64, s *models.UserSettings) string {
		return models.FormatGlucose(v, s.Units)
	},
	"date": func(snap *Snapshot) string {
		return fmt.Sprintf("%s to %s",
			snap.Start.Format("January 2, 2006"), snap.End.Format("January 2, 2006"))
	},
	"notes": noteText,
}).Parse(documentHTML))

const documentHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Health Report {{date .}}</title>
<style>
body { font-family: -apple-system, "Segoe UI", sans-serif; margin: 2rem auto; max-width: 52rem; color: #1a1a1a; }
h1 { border-bottom: 2px solid #2563eb; padding-bottom: 0.3rem; }
h2 { margin-top: 2rem; color: #2563eb; }
table { border-collapse: collapse; width: 100%; margin: 0.5rem 0; }
th, td { border: 1px solid #d1d5db; padding: 0.35rem 0.6rem; text-align: left; font-size: 0.9rem; }
th { background: #f3f4f6; }
.metric { display: inline-block; margin: 0.5rem 1.5rem 0.5rem 0; }
.metric b { font-size: 1.3rem; display: block; }
.empty { color: #6b7280; font-style: italic; }
</style>
</head>
<body>
<h1>Health Report</h1>
<p>{{date .}}{{with .Settings.DisplayName}} &mdash; {{.}}{{end}}</p>

<h2>Glucose</h2>
{{if .Glucose}}
<div>
  <span class="metric"><b>{{glucose .GlucoseSummary.Average .Settings}}</b>average</span>
  <span class="metric"><b>{{printf "%.0f%%" .GlucoseSummary.TimeInRangePercent}}</b>time in range</span>
  <span class="metric"><b>{{glucose .GlucoseSummary.Min .Settings}}</b>lowest</span>
  <span class="metric"><b>{{glucose .GlucoseSummary.Max .Settings}}</b>highest</span>
  <span class="metric"><b>{{.GlucoseSummary.Count}}</b>readings</span>
</div>
<table>
<tr><th>Time of day</th><th>Average</th><th>Readings</th></tr>
<tr><td>Morning</td><td>{{if .TimeOfDay.Morning.Count}}{{glucose .TimeOfDay.Morning.Avg .Settings}}{{else}}&mdash;{{end}}</td><td>{{.TimeOfDay.Morning.Count}}</td></tr>
<tr><td>Afternoon</td><td>{{if .TimeOfDay.Afternoon.Count}}{{glucose .TimeOfDay.Afternoon.Avg .Settings}}{{else}}&mdash;{{end}}</td><td>{{.TimeOfDay.Afternoon.Count}}</td></tr>
<tr><td>Evening</td><td>{{if .TimeOfDay.Evening.Count}}{{glucose .TimeOfDay.Evening.Avg .Settings}}{{else}}&mdash;{{end}}</td><td>{{.TimeOfDay.Evening.Count}}</td></tr>
<tr><td>Night</td><td>{{if .TimeOfDay.Night.Count}}{{glucose .TimeOfDay.Night.Avg .Settings}}{{else}}&mdash;{{end}}</td><td>{{.TimeOfDay.Night.Count}}</td></tr>
</table>
<table>
<tr><th>Time</th><th>Value</th><th>Context</th><th>Notes</th></tr>
{{range .Glucose}}<tr><td>{{.RecordedAt.Format "2006-01-02 15:04"}}</td><td>{{glucose .Value $.Settings}}</td><td>{{.Context}}</td><td>{{notes .Notes}}</td></tr>
{{end}}</table>
{{else}}<p class="empty">No glucose readings in this period.</p>{{end}}

<h2>Insulin</h2>
{{if .Insulin}}
<div>
  <span class="metric"><b>{{printf "%.1f" .InsulinTotal}}</b>total units</span>
  <span class="metric"><b>{{printf "%.1f" .InsulinPerDay}}</b>units per day</span>
  <span class="metric"><b>{{len .Insulin}}</b>doses</span>
</div>
<table>
<tr><th>Time</th><th>Units</th><th>Type</th><th>Notes</th></tr>
{{range .Insulin}}<tr><td>{{.RecordedAt.Format "2006-01-02 15:04"}}</td><td>{{printf "%.1f" .Units}}</td><td>{{.InsulinType}}</td><td>{{notes .Notes}}</td></tr>
{{end}}</table>
{{else}}<p class="empty">No insulin doses in this period.</p>{{end}}

<h2>Food</h2>
{{if .Food}}
<div>
  <span class="metric"><b>{{printf "%.0f" .CarbsTotal}}</b>total carbs (g)</span>
  <span class="metric"><b>{{printf "%.1f" .CarbsPerDay}}</b>carbs per day (g)</span>
  <span class="metric"><b>{{len .Food}}</b>entries</span>
</div>
<table>
<tr><th>Time</th><th>Name</th><th>Carbs (g)</th><th>Notes</th></tr>
{{range .Food}}<tr><td>{{.RecordedAt.Format "2006-01-02 15:04"}}</td><td>{{.Name}}</td><td>{{with .Carbs}}{{printf "%.0f" .}}{{end}}</td><td>{{notes .Notes}}</td></tr>
{{end}}</table>
{{else}}<p class="empty">No food entries in this period.</p>{{end}}

<h2>A1C</h2>
{{if .A1C}}
<table>
<tr><th>Date</th><th>Value</th><th>Notes</th></tr>
{{range .A1C}}<tr><td>{{.RecordedAt.Format "2006-01-02"}}</td><td>{{printf "%.1f%%" .Value}}</td><td>{{notes .Notes}}</td></tr>
{{end}}</table>
{{else}}<p class="empty">No A1C readings in this period.</p>{{end}}

<h2>Weight</h2>
{{if .Weight}}
<table>
<tr><th>Date</th><th>Weight (kg)</th><th>Notes</th></tr>
{{range .Weight}}<tr><td>{{.RecordedAt.Format "2006-01-02"}}</td><td>{{printf "%.1f" .Value}}</td><td>{{notes .Notes}}</td></tr>
{{end}}</table>
{{else}}<p class="empty">No weight measurements in this period.</p>{{end}}
{{with .BMI}}
<div>
  <span class="metric"><b>{{printf "%.1f" .Value}}</b>BMI ({{.Category}})</span>
</div>
{{end}}

<h2>Blood Pressure</h2>
{{if .BloodPressure}}
<table>
<tr><th>Date</th><th>Systolic</th><th>Diastolic</th><th>Notes</th></tr>
{{range .BloodPressure}}<tr><td>{{.RecordedAt.Format "2006-01-02"}}</td><td>{{.Systolic}}</td><td>{{.Diastolic}}</td><td>{{notes .Notes}}</td></tr>
{{end}}</table>
{{else}}<p class="empty">No blood pressure readings in this period.</p>{{end}}

</body>
</html>
`
