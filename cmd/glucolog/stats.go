// ABOUTME: CLI command for glucose statistics.
// ABOUTME: Prints summary metrics plus time-of-day and meal-context breakdowns.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/glucolog/internal/models"
	"github.com/harperreed/glucolog/internal/stats"
	"github.com/spf13/cobra"
)

var statsLimit int

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Glucose statistics",
	Long: `Show summary statistics for your recent glucose readings.

Includes average, min/max, standard deviation, and time in range against
your configured target range, plus averages broken down by time of day
and by meal context.

EXAMPLES:

  glucolog stats           # Analyze last 30 readings
  glucolog stats -n 100    # Analyze last 100 readings`,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := repo.Settings()
		if err != nil {
			return fmt.Errorf("failed to load settings: %w", err)
		}

		readings := repo.ListGlucose(statsLimit)
		if len(readings) == 0 {
			fmt.Println("No glucose readings logged yet.")
			return nil
		}

		summary := stats.Summarize(readings, settings.TargetLow, settings.TargetHigh)

		bold := color.New(color.Bold)
		faint := color.New(color.Faint)

		bold.Printf("Glucose summary (last %d readings)\n", summary.Count)
		fmt.Printf("  Average   %s\n", models.FormatGlucose(summary.Average, settings.Units))
		fmt.Printf("  Range     %s - %s\n",
			models.FormatGlucose(summary.Min, settings.Units),
			models.FormatGlucose(summary.Max, settings.Units))
		fmt.Printf("  Std dev   %.0f\n", summary.StdDev)
		fmt.Printf("  In range  %.0f%%  %s\n", summary.TimeInRangePercent,
			faint.Sprintf("(target %s - %s; %d below, %d above)",
				models.FormatGlucose(settings.TargetLow, settings.Units),
				models.FormatGlucose(settings.TargetHigh, settings.Units),
				summary.BelowCount, summary.AboveCount))

		timeOfDay := stats.BucketByTimeOfDay(readings)
		bold.Println("\nBy time of day")
		printBucket("morning", timeOfDay.Morning, settings.Units)
		printBucket("afternoon", timeOfDay.Afternoon, settings.Units)
		printBucket("evening", timeOfDay.Evening, settings.Units)
		printBucket("night", timeOfDay.Night, settings.Units)
		fmt.Println("  " + faint.Sprint(stats.TimeOfDayInsight(timeOfDay, len(readings))))

		mealContext := stats.BucketByMealContext(readings)
		bold.Println("\nBy meal context")
		printBucket("before meal", mealContext.BeforeMeal, settings.Units)
		printBucket("after meal", mealContext.AfterMeal, settings.Units)
		printBucket("fasting", mealContext.Fasting, settings.Units)
		printBucket("bedtime", mealContext.Bedtime, settings.Units)
		printBucket("other", mealContext.Other, settings.Units)
		fmt.Println("  " + faint.Sprint(stats.MealContextInsight(mealContext, len(readings))))

		return nil
	},
}

func printBucket(name string, b stats.Bucket, units models.GlucoseUnits) {
	if b.Count == 0 {
		fmt.Printf("  %s -\n", padRight(name, 12))
		return
	}
	fmt.Printf("  %s %s  (%d)\n", padRight(name, 12), models.FormatGlucose(b.Avg, units), b.Count)
}

func init() {
	statsCmd.Flags().IntVarP(&statsLimit, "limit", "n", 30, "number of recent readings to analyze")
	rootCmd.AddCommand(statsCmd)
}
