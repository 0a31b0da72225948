// ABOUTME: CLI command for updating existing entries.
// ABOUTME: Flag-driven partial updates; only flags that were set are applied.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/harperreed/glucolog/internal/models"
	"github.com/spf13/cobra"
)

var (
	updValue     float64
	updContext   string
	updNotes     string
	updName      string
	updCarbs     float64
	updMealType  string
	updUnits     float64
	updInsType   string
	updSystolic  int
	updDiastolic int
)

var updateCmd = &cobra.Command{
	Use:     "update <kind> <id>",
	Aliases: []string{"edit"},
	Short:   "Update an entry",
	Long: `Update an existing entry. Only the flags you pass are changed;
everything else, including the recorded timestamp, stays as it is.

EXAMPLES:

  glucolog update glucose 42 --value 118
  glucolog update glucose 42 --context after_meal --notes "retest"
  glucolog update food 7 --carbs 55
  glucolog update insulin 3 --units 8 --type long
  glucolog update bp 9 --systolic 118 --diastolic 76`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := models.ParseKind(normalizeKind(args[0]))
		if err != nil {
			return err
		}
		id, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id: %s", args[1])
		}

		changed := func(name string) bool { return cmd.Flags().Changed(name) }

		var notes *string
		if changed("notes") {
			notes = &updNotes
		}

		switch kind {
		case models.KindGlucose:
			patch := models.GlucosePatch{Notes: notes}
			if changed("value") {
				patch.Value = &updValue
			}
			if changed("context") {
				c := models.MealContext(updContext)
				patch.Context = &c
			}
			err = repo.UpdateGlucose(id, patch)
		case models.KindFood:
			patch := models.FoodPatch{Notes: notes}
			if changed("name") {
				patch.Name = &updName
			}
			if changed("carbs") {
				patch.Carbs = &updCarbs
			}
			if changed("meal-type") {
				mt := models.MealType(updMealType)
				patch.MealType = &mt
			}
			err = repo.UpdateFood(id, patch)
		case models.KindInsulin:
			patch := models.InsulinPatch{Notes: notes}
			if changed("units") {
				patch.Units = &updUnits
			}
			if changed("type") {
				it := models.InsulinType(updInsType)
				patch.InsulinType = &it
			}
			err = repo.UpdateInsulin(id, patch)
		case models.KindA1C:
			patch := models.A1CPatch{Notes: notes}
			if changed("value") {
				patch.Value = &updValue
			}
			err = repo.UpdateA1C(id, patch)
		case models.KindWeight:
			patch := models.WeightPatch{Notes: notes}
			if changed("value") {
				patch.Value = &updValue
			}
			err = repo.UpdateWeight(id, patch)
		case models.KindBloodPressure:
			patch := models.BloodPressurePatch{Notes: notes}
			if changed("systolic") {
				patch.Systolic = &updSystolic
			}
			if changed("diastolic") {
				patch.Diastolic = &updDiastolic
			}
			err = repo.UpdateBloodPressure(id, patch)
		}
		if err != nil {
			return fmt.Errorf("failed to update %s %d: %w", kind, id, err)
		}

		color.Green("✓ Updated %s #%d", kind, id)
		return nil
	},
}

// normalizeKind accepts the bp shorthand used elsewhere in the CLI.
func normalizeKind(s string) string {
	if s == "bp" {
		return string(models.KindBloodPressure)
	}
	return s
}

func init() {
	updateCmd.Flags().Float64Var(&updValue, "value", 0, "new value (glucose, a1c, weight)")
	updateCmd.Flags().StringVar(&updContext, "context", "", "new meal context (glucose)")
	updateCmd.Flags().StringVar(&updNotes, "notes", "", "new notes")
	updateCmd.Flags().StringVar(&updName, "name", "", "new food name")
	updateCmd.Flags().Float64Var(&updCarbs, "carbs", 0, "new carbs in grams (food)")
	updateCmd.Flags().StringVar(&updMealType, "meal-type", "", "new meal type (food)")
	updateCmd.Flags().Float64Var(&updUnits, "units", 0, "new dose size (insulin)")
	updateCmd.Flags().StringVar(&updInsType, "type", "", "new insulin type")
	updateCmd.Flags().IntVar(&updSystolic, "systolic", 0, "new systolic value (bp)")
	updateCmd.Flags().IntVar(&updDiastolic, "diastolic", 0, "new diastolic value (bp)")
	rootCmd.AddCommand(updateCmd)
}
