// ABOUTME: CLI commands for logging records of every kind.
// ABOUTME: One subcommand per kind under 'add', with shared --at and --notes flags.
package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/glucolog/internal/models"
	"github.com/spf13/cobra"
)

var (
	addAt      string
	addNotes   string
	addContext string
	addCarbs   float64
)

var addCmd = &cobra.Command{
	Use:     "add",
	Aliases: []string{"a", "log"},
	Short:   "Log a new entry",
	Long: `Log a new entry of any record kind.

Examples:
  glucolog add glucose 112 --context fasting
  glucolog add food "oatmeal" breakfast --carbs 42
  glucolog add insulin 6.5 rapid
  glucolog add a1c 6.8
  glucolog add weight 82.5
  glucolog add bp 120 80 --at "2026-02-14 07:00"`,
}

var addGlucoseCmd = &cobra.Command{
	Use:   "glucose <value>",
	Short: "Log a blood glucose reading (mg/dL)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid value: %s", args[0])
		}

		g := models.NewGlucoseReading(value)
		if addContext != "" {
			g.WithContext(models.MealContext(addContext))
		}
		if err := applyAt(func(t time.Time) { g.WithRecordedAt(t) }); err != nil {
			return err
		}
		if addNotes != "" {
			g.WithNotes(addNotes)
		}

		id, err := repo.CreateGlucose(g)
		if err != nil {
			return fmt.Errorf("failed to log glucose: %w", err)
		}

		settings, _ := repo.Settings()
		display := fmt.Sprintf("%.0f mg/dL", g.Value)
		if settings != nil {
			display = models.FormatGlucose(g.Value, settings.Units)
		}
		color.Green("✓ Logged glucose")
		fmt.Printf("  %s %s\n", color.New(color.Faint).Sprintf("#%d", id), display)
		return nil
	},
}

var addFoodCmd = &cobra.Command{
	Use:   "food <name> <meal-type>",
	Short: "Log a food entry",
	Long: `Log a food entry with its meal type.

Meal types: breakfast, lunch, dinner, snack`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		f := models.NewFoodEntry(args[0], models.MealType(args[1]))
		if cmd.Flags().Changed("carbs") {
			f.WithCarbs(addCarbs)
		}
		if err := applyAt(func(t time.Time) { f.WithRecordedAt(t) }); err != nil {
			return err
		}
		if addNotes != "" {
			f.WithNotes(addNotes)
		}

		id, err := repo.CreateFood(f)
		if err != nil {
			return fmt.Errorf("failed to log food: %w", err)
		}

		color.Green("✓ Logged food")
		fmt.Printf("  %s %s (%s)\n", color.New(color.Faint).Sprintf("#%d", id), f.Name, f.MealType)
		return nil
	},
}

var addInsulinCmd = &cobra.Command{
	Use:   "insulin <units> <type>",
	Short: "Log an insulin dose",
	Long: `Log an insulin dose.

Insulin types: rapid, long, mixed, short, intermediate, other`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		units, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid units: %s", args[0])
		}

		d := models.NewInsulinDose(units, models.InsulinType(args[1]))
		if err := applyAt(func(t time.Time) { d.WithRecordedAt(t) }); err != nil {
			return err
		}
		if addNotes != "" {
			d.WithNotes(addNotes)
		}

		id, err := repo.CreateInsulin(d)
		if err != nil {
			return fmt.Errorf("failed to log insulin: %w", err)
		}

		color.Green("✓ Logged insulin")
		fmt.Printf("  %s %.1f units %s\n", color.New(color.Faint).Sprintf("#%d", id), d.Units, d.InsulinType)
		return nil
	},
}

var addA1CCmd = &cobra.Command{
	Use:   "a1c <value>",
	Short: "Log an A1C lab result (percent)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid value: %s", args[0])
		}

		a := models.NewA1CReading(value)
		if err := applyAt(func(t time.Time) { a.WithRecordedAt(t) }); err != nil {
			return err
		}
		if addNotes != "" {
			a.WithNotes(addNotes)
		}

		id, err := repo.CreateA1C(a)
		if err != nil {
			return fmt.Errorf("failed to log A1C: %w", err)
		}

		color.Green("✓ Logged A1C")
		fmt.Printf("  %s %.1f%%\n", color.New(color.Faint).Sprintf("#%d", id), a.Value)
		return nil
	},
}

var addWeightCmd = &cobra.Command{
	Use:   "weight <kg>",
	Short: "Log a weight measurement (kg)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid value: %s", args[0])
		}

		w := models.NewWeightMeasurement(value)
		if err := applyAt(func(t time.Time) { w.WithRecordedAt(t) }); err != nil {
			return err
		}
		if addNotes != "" {
			w.WithNotes(addNotes)
		}

		id, err := repo.CreateWeight(w)
		if err != nil {
			return fmt.Errorf("failed to log weight: %w", err)
		}

		color.Green("✓ Logged weight")
		fmt.Printf("  %s %.1f kg\n", color.New(color.Faint).Sprintf("#%d", id), w.Value)
		return nil
	},
}

var addBloodPressureCmd = &cobra.Command{
	Use:     "bp <systolic> <diastolic>",
	Aliases: []string{"blood_pressure"},
	Short:   "Log a blood pressure reading (mmHg)",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		sys, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid systolic value: %s", args[0])
		}
		dia, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid diastolic value: %s", args[1])
		}

		b := models.NewBloodPressureReading(sys, dia)
		if err := applyAt(func(t time.Time) { b.WithRecordedAt(t) }); err != nil {
			return err
		}
		if addNotes != "" {
			b.WithNotes(addNotes)
		}

		id, err := repo.CreateBloodPressure(b)
		if err != nil {
			return fmt.Errorf("failed to log blood pressure: %w", err)
		}

		color.Green("✓ Logged blood pressure")
		fmt.Printf("  %s %d/%d mmHg\n", color.New(color.Faint).Sprintf("#%d", id), b.Systolic, b.Diastolic)
		return nil
	},
}

// applyAt parses the shared --at flag and passes the result to set.
func applyAt(set func(time.Time)) error {
	if addAt == "" {
		return nil
	}
	t, err := parseTime(addAt)
	if err != nil {
		return fmt.Errorf("invalid timestamp: %s", addAt)
	}
	set(t)
	return nil
}

func parseTime(s string) (time.Time, error) {
	formats := []string{
		"2006-01-02 15:04",
		"2006-01-02T15:04",
		"2006-01-02",
		time.RFC3339,
	}
	for _, f := range formats {
		if t, err := time.Parse(f, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time format")
}

func init() {
	addCmd.PersistentFlags().StringVar(&addAt, "at", "", "timestamp (YYYY-MM-DD HH:MM)")
	addCmd.PersistentFlags().StringVar(&addNotes, "notes", "", "notes for the entry")
	addGlucoseCmd.Flags().StringVar(&addContext, "context", "",
		"meal context ("+strings.Join(mealContextNames(), ", ")+")")
	addFoodCmd.Flags().Float64Var(&addCarbs, "carbs", 0, "carbohydrates in grams")

	addCmd.AddCommand(addGlucoseCmd)
	addCmd.AddCommand(addFoodCmd)
	addCmd.AddCommand(addInsulinCmd)
	addCmd.AddCommand(addA1CCmd)
	addCmd.AddCommand(addWeightCmd)
	addCmd.AddCommand(addBloodPressureCmd)
	rootCmd.AddCommand(addCmd)
}

func mealContextNames() []string {
	names := make([]string, 0, len(models.AllMealContexts))
	for _, c := range models.AllMealContexts {
		names = append(names, string(c))
	}
	return names
}
