// ABOUTME: MCP tool implementations for the glucolog record store.
// ABOUTME: Logging tools per record kind plus stats, insights, reports, and settings.
package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/harperreed/glucolog/internal/insight"
	"github.com/harperreed/glucolog/internal/models"
	"github.com/harperreed/glucolog/internal/report"
	"github.com/harperreed/glucolog/internal/stats"
	"github.com/harperreed/glucolog/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_glucose",
		Description: "Record a blood glucose reading in mg/dL",
	}, s.handleLogGlucose)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_food",
		Description: "Record a food entry with optional carbs",
	}, s.handleLogFood)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_insulin",
		Description: "Record an insulin dose",
	}, s.handleLogInsulin)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_a1c",
		Description: "Record an A1C lab result (percent)",
	}, s.handleLogA1C)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_weight",
		Description: "Record a weight measurement in kg",
	}, s.handleLogWeight)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_blood_pressure",
		Description: "Record a blood pressure reading (systolic/diastolic mmHg)",
	}, s.handleLogBloodPressure)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_entries",
		Description: "List recent entries across all record kinds, optionally filtered by kind",
	}, s.handleListEntries)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_entry",
		Description: "Delete a record by kind and ID",
	}, s.handleDeleteEntry)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "glucose_stats",
		Description: "Summary statistics and time-of-day/meal-context breakdowns for recent glucose readings",
	}, s.handleGlucoseStats)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "insights",
		Description: "Textual insights derived from recent glucose readings",
	}, s.handleInsights)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "generate_report",
		Description: "Generate an HTML report plus CSV tables for a date range",
	}, s.handleGenerateReport)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_settings",
		Description: "Get user settings and profile",
	}, s.handleGetSettings)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "update_settings",
		Description: "Update user settings; only provided fields change",
	}, s.handleUpdateSettings)
}

// parseWhen accepts ISO 8601 and two friendlier layouts; zero time and
// nil error when the input is empty.
func parseWhen(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04", "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp: %s", value)
}

// Tool input/output types

type logGlucoseInput struct {
	Value      float64 `json:"value" jsonschema:"Glucose value in mg/dL"`
	Context    string  `json:"context,omitempty" jsonschema:"Meal context (before_meal, after_meal, fasting, bedtime, other)"`
	RecordedAt string  `json:"recorded_at,omitempty" jsonschema:"Timestamp (ISO 8601), defaults to now"`
	Notes      string  `json:"notes,omitempty" jsonschema:"Optional notes"`
}

type entryOutput struct {
	ID      int64  `json:"id"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type logFoodInput struct {
	Name       string  `json:"name" jsonschema:"Food name"`
	MealType   string  `json:"meal_type" jsonschema:"Meal type (breakfast, lunch, dinner, snack)"`
	Carbs      float64 `json:"carbs,omitempty" jsonschema:"Carbohydrates in grams"`
	RecordedAt string  `json:"recorded_at,omitempty" jsonschema:"Timestamp (ISO 8601), defaults to now"`
	Notes      string  `json:"notes,omitempty" jsonschema:"Optional notes"`
}

type logInsulinInput struct {
	Units       float64 `json:"units" jsonschema:"Dose size in units"`
	InsulinType string  `json:"insulin_type" jsonschema:"Insulin type (rapid, long, mixed, short, intermediate, other)"`
	RecordedAt  string  `json:"recorded_at,omitempty" jsonschema:"Timestamp (ISO 8601), defaults to now"`
	Notes       string  `json:"notes,omitempty" jsonschema:"Optional notes"`
}

type logA1CInput struct {
	Value      float64 `json:"value" jsonschema:"A1C percentage"`
	RecordedAt string  `json:"recorded_at,omitempty" jsonschema:"Timestamp (ISO 8601), defaults to now"`
	Notes      string  `json:"notes,omitempty" jsonschema:"Optional notes"`
}

type logWeightInput struct {
	Value      float64 `json:"value" jsonschema:"Weight in kg"`
	RecordedAt string  `json:"recorded_at,omitempty" jsonschema:"Timestamp (ISO 8601), defaults to now"`
	Notes      string  `json:"notes,omitempty" jsonschema:"Optional notes"`
}

type logBloodPressureInput struct {
	Systolic   int    `json:"systolic" jsonschema:"Systolic pressure in mmHg"`
	Diastolic  int    `json:"diastolic" jsonschema:"Diastolic pressure in mmHg"`
	RecordedAt string `json:"recorded_at,omitempty" jsonschema:"Timestamp (ISO 8601), defaults to now"`
	Notes      string `json:"notes,omitempty" jsonschema:"Optional notes"`
}

type listEntriesInput struct {
	Kind  string `json:"kind,omitempty" jsonschema:"Filter by record kind (glucose, food, insulin, a1c, weight, blood_pressure)"`
	Limit int    `json:"limit,omitempty" jsonschema:"Max results (default 20)"`
}

type deleteEntryInput struct {
	Kind string `json:"kind" jsonschema:"Record kind (glucose, food, insulin, a1c, weight, blood_pressure)"`
	ID   int64  `json:"id" jsonschema:"Record ID"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

type glucoseStatsInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"Number of recent readings to analyze (default 30)"`
}

type insightsInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"Number of recent readings to analyze (default 30)"`
}

type generateReportInput struct {
	Start string `json:"start" jsonschema:"Range start date (YYYY-MM-DD)"`
	End   string `json:"end" jsonschema:"Range end date (YYYY-MM-DD)"`
}

type reportOutput struct {
	Document string   `json:"document"`
	Tables   []string `json:"tables"`
	Message  string   `json:"message"`
}

type updateSettingsInput struct {
	Units         *string  `json:"units,omitempty" jsonschema:"Glucose display units (mg/dL or mmol/L)"`
	Notifications *bool    `json:"notifications,omitempty" jsonschema:"Enable notifications"`
	DarkMode      *bool    `json:"dark_mode,omitempty" jsonschema:"Enable dark mode"`
	Email         *string  `json:"email,omitempty" jsonschema:"Profile email"`
	FirstName     *string  `json:"first_name,omitempty" jsonschema:"Profile first name"`
	LastName      *string  `json:"last_name,omitempty" jsonschema:"Profile last name"`
	DiabetesType  *string  `json:"diabetes_type,omitempty" jsonschema:"Diabetes type (type1, type2, gestational, prediabetes, other)"`
	HeightCm      *float64 `json:"height_cm,omitempty" jsonschema:"Height in cm"`
	TargetLow     *float64 `json:"target_low,omitempty" jsonschema:"Target range lower bound in mg/dL"`
	TargetHigh    *float64 `json:"target_high,omitempty" jsonschema:"Target range upper bound in mg/dL"`
}

// Tool handlers

func (s *Server) handleLogGlucose(ctx context.Context, req *mcp.CallToolRequest, input logGlucoseInput) (*mcp.CallToolResult, entryOutput, error) {
	g := models.NewGlucoseReading(input.Value)
	if input.Context != "" {
		g.WithContext(models.MealContext(input.Context))
	}
	if t, err := parseWhen(input.RecordedAt); err != nil {
		return nil, entryOutput{}, err
	} else if !t.IsZero() {
		g.WithRecordedAt(t)
	}
	if input.Notes != "" {
		g.WithNotes(input.Notes)
	}

	id, err := s.repo.CreateGlucose(g)
	if err != nil {
		return nil, entryOutput{}, fmt.Errorf("failed to log glucose: %w", err)
	}

	return nil, entryOutput{
		ID:      id,
		Kind:    string(models.KindGlucose),
		Message: fmt.Sprintf("Logged glucose %.0f mg/dL (ID: %d)", g.Value, id),
	}, nil
}

func (s *Server) handleLogFood(ctx context.Context, req *mcp.CallToolRequest, input logFoodInput) (*mcp.CallToolResult, entryOutput, error) {
	f := models.NewFoodEntry(input.Name, models.MealType(input.MealType))
	if input.Carbs > 0 {
		f.WithCarbs(input.Carbs)
	}
	if t, err := parseWhen(input.RecordedAt); err != nil {
		return nil, entryOutput{}, err
	} else if !t.IsZero() {
		f.WithRecordedAt(t)
	}
	if input.Notes != "" {
		f.WithNotes(input.Notes)
	}

	id, err := s.repo.CreateFood(f)
	if err != nil {
		return nil, entryOutput{}, fmt.Errorf("failed to log food: %w", err)
	}

	return nil, entryOutput{
		ID:      id,
		Kind:    string(models.KindFood),
		Message: fmt.Sprintf("Logged %s (ID: %d)", f.Name, id),
	}, nil
}

func (s *Server) handleLogInsulin(ctx context.Context, req *mcp.CallToolRequest, input logInsulinInput) (*mcp.CallToolResult, entryOutput, error) {
	d := models.NewInsulinDose(input.Units, models.InsulinType(input.InsulinType))
	if t, err := parseWhen(input.RecordedAt); err != nil {
		return nil, entryOutput{}, err
	} else if !t.IsZero() {
		d.WithRecordedAt(t)
	}
	if input.Notes != "" {
		d.WithNotes(input.Notes)
	}

	id, err := s.repo.CreateInsulin(d)
	if err != nil {
		return nil, entryOutput{}, fmt.Errorf("failed to log insulin: %w", err)
	}

	return nil, entryOutput{
		ID:      id,
		Kind:    string(models.KindInsulin),
		Message: fmt.Sprintf("Logged %.1f units %s insulin (ID: %d)", d.Units, d.InsulinType, id),
	}, nil
}

func (s *Server) handleLogA1C(ctx context.Context, req *mcp.CallToolRequest, input logA1CInput) (*mcp.CallToolResult, entryOutput, error) {
	a := models.NewA1CReading(input.Value)
	if t, err := parseWhen(input.RecordedAt); err != nil {
		return nil, entryOutput{}, err
	} else if !t.IsZero() {
		a.WithRecordedAt(t)
	}
	if input.Notes != "" {
		a.WithNotes(input.Notes)
	}

	id, err := s.repo.CreateA1C(a)
	if err != nil {
		return nil, entryOutput{}, fmt.Errorf("failed to log A1C: %w", err)
	}

	return nil, entryOutput{
		ID:      id,
		Kind:    string(models.KindA1C),
		Message: fmt.Sprintf("Logged A1C %.1f%% (ID: %d)", a.Value, id),
	}, nil
}

func (s *Server) handleLogWeight(ctx context.Context, req *mcp.CallToolRequest, input logWeightInput) (*mcp.CallToolResult, entryOutput, error) {
	w := models.NewWeightMeasurement(input.Value)
	if t, err := parseWhen(input.RecordedAt); err != nil {
		return nil, entryOutput{}, err
	} else if !t.IsZero() {
		w.WithRecordedAt(t)
	}
	if input.Notes != "" {
		w.WithNotes(input.Notes)
	}

	id, err := s.repo.CreateWeight(w)
	if err != nil {
		return nil, entryOutput{}, fmt.Errorf("failed to log weight: %w", err)
	}

	return nil, entryOutput{
		ID:      id,
		Kind:    string(models.KindWeight),
		Message: fmt.Sprintf("Logged weight %.1f kg (ID: %d)", w.Value, id),
	}, nil
}

func (s *Server) handleLogBloodPressure(ctx context.Context, req *mcp.CallToolRequest, input logBloodPressureInput) (*mcp.CallToolResult, entryOutput, error) {
	b := models.NewBloodPressureReading(input.Systolic, input.Diastolic)
	if t, err := parseWhen(input.RecordedAt); err != nil {
		return nil, entryOutput{}, err
	} else if !t.IsZero() {
		b.WithRecordedAt(t)
	}
	if input.Notes != "" {
		b.WithNotes(input.Notes)
	}

	id, err := s.repo.CreateBloodPressure(b)
	if err != nil {
		return nil, entryOutput{}, fmt.Errorf("failed to log blood pressure: %w", err)
	}

	return nil, entryOutput{
		ID:      id,
		Kind:    string(models.KindBloodPressure),
		Message: fmt.Sprintf("Logged blood pressure %d/%d mmHg (ID: %d)", b.Systolic, b.Diastolic, id),
	}, nil
}

func (s *Server) handleListEntries(ctx context.Context, req *mcp.CallToolRequest, input listEntriesInput) (*mcp.CallToolResult, any, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}

	var kinds []models.Kind
	if input.Kind != "" {
		if !models.IsValidKind(input.Kind) {
			return nil, nil, fmt.Errorf("unknown record kind: %s", input.Kind)
		}
		kinds = append(kinds, models.Kind(input.Kind))
	}

	entries := storage.Entries(s.repo, input.Limit, kinds...)
	if len(entries) == 0 {
		return nil, map[string]interface{}{"message": "No entries found."}, nil
	}

	return nil, entries, nil
}

func (s *Server) handleDeleteEntry(ctx context.Context, req *mcp.CallToolRequest, input deleteEntryInput) (*mcp.CallToolResult, simpleOutput, error) {
	var err error
	switch models.Kind(input.Kind) {
	case models.KindGlucose:
		err = s.repo.DeleteGlucose(input.ID)
	case models.KindFood:
		err = s.repo.DeleteFood(input.ID)
	case models.KindInsulin:
		err = s.repo.DeleteInsulin(input.ID)
	case models.KindA1C:
		err = s.repo.DeleteA1C(input.ID)
	case models.KindWeight:
		err = s.repo.DeleteWeight(input.ID)
	case models.KindBloodPressure:
		err = s.repo.DeleteBloodPressure(input.ID)
	default:
		return nil, simpleOutput{}, fmt.Errorf("unknown record kind: %s", input.Kind)
	}
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete %s %d: %w", input.Kind, input.ID, err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Deleted %s entry %d", input.Kind, input.ID),
	}, nil
}

func (s *Server) handleGlucoseStats(ctx context.Context, req *mcp.CallToolRequest, input glucoseStatsInput) (*mcp.CallToolResult, any, error) {
	if input.Limit <= 0 {
		input.Limit = 30
	}

	settings, err := s.repo.Settings()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load settings: %w", err)
	}

	readings := s.repo.ListGlucose(input.Limit)
	if len(readings) == 0 {
		return nil, map[string]interface{}{"message": "No glucose readings logged yet."}, nil
	}

	timeOfDay := stats.BucketByTimeOfDay(readings)
	mealContext := stats.BucketByMealContext(readings)

	return nil, map[string]interface{}{
		"summary":              stats.Summarize(readings, settings.TargetLow, settings.TargetHigh),
		"time_of_day":          timeOfDay,
		"meal_context":         mealContext,
		"time_of_day_insight":  stats.TimeOfDayInsight(timeOfDay, len(readings)),
		"meal_context_insight": stats.MealContextInsight(mealContext, len(readings)),
	}, nil
}

func (s *Server) handleInsights(ctx context.Context, req *mcp.CallToolRequest, input insightsInput) (*mcp.CallToolResult, any, error) {
	if input.Limit <= 0 {
		input.Limit = 30
	}

	settings, err := s.repo.Settings()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load settings: %w", err)
	}

	readings := s.repo.ListGlucose(input.Limit)
	if len(readings) == 0 {
		return nil, map[string]interface{}{"message": "No glucose readings logged yet."}, nil
	}

	lines := insight.Rules{}.Insights(readings, settings.TargetLow, settings.TargetHigh)
	return nil, map[string]interface{}{"insights": lines}, nil
}

func (s *Server) handleGenerateReport(ctx context.Context, req *mcp.CallToolRequest, input generateReportInput) (*mcp.CallToolResult, reportOutput, error) {
	start, err := time.Parse("2006-01-02", input.Start)
	if err != nil {
		return nil, reportOutput{}, fmt.Errorf("invalid start date: %s", input.Start)
	}
	end, err := time.Parse("2006-01-02", input.End)
	if err != nil {
		return nil, reportOutput{}, fmt.Errorf("invalid end date: %s", input.End)
	}
	// Include the whole end day.
	end = end.Add(24*time.Hour - time.Millisecond)

	result, err := report.NewGenerator(s.repo, s.reportDir).Generate(start, end)
	if err != nil {
		return nil, reportOutput{}, fmt.Errorf("failed to generate report: %w", err)
	}

	return nil, reportOutput{
		Document: result.DocumentPath,
		Tables:   result.TablePaths,
		Message:  fmt.Sprintf("Report written to %s", result.DocumentPath),
	}, nil
}

func (s *Server) handleGetSettings(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	settings, err := s.repo.Settings()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load settings: %w", err)
	}
	return nil, settings, nil
}

func (s *Server) handleUpdateSettings(ctx context.Context, req *mcp.CallToolRequest, input updateSettingsInput) (*mcp.CallToolResult, any, error) {
	patch := models.SettingsPatch{
		Notifications: input.Notifications,
		DarkMode:      input.DarkMode,
		Email:         input.Email,
		FirstName:     input.FirstName,
		LastName:      input.LastName,
		HeightCm:      input.HeightCm,
		TargetLow:     input.TargetLow,
		TargetHigh:    input.TargetHigh,
	}
	if input.Units != nil {
		u := models.GlucoseUnits(*input.Units)
		patch.Units = &u
	}
	if input.DiabetesType != nil {
		dt := models.DiabetesType(*input.DiabetesType)
		patch.DiabetesType = &dt
	}

	if err := s.repo.UpdateSettings(patch); err != nil {
		return nil, nil, fmt.Errorf("failed to update settings: %w", err)
	}

	settings, err := s.repo.Settings()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load settings: %w", err)
	}
	return nil, settings, nil
}
