// ABOUTME: CLI command for textual glucose insights.
// ABOUTME: Runs the rule-based generator over recent readings.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/glucolog/internal/insight"
	"github.com/spf13/cobra"
)

var insightsLimit int

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Pattern observations from recent readings",
	Long: `Generate textual observations from your recent glucose readings:
latest-reading status, time in range, trends, variability, and
morning/evening patterns against your target range.

The same readings always produce the same observations.

EXAMPLES:

  glucolog insights          # Analyze last 30 readings
  glucolog insights -n 90    # Analyze last 90 readings`,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := repo.Settings()
		if err != nil {
			return fmt.Errorf("failed to load settings: %w", err)
		}

		readings := repo.ListGlucose(insightsLimit)
		if len(readings) == 0 {
			fmt.Println("No glucose readings logged yet.")
			return nil
		}

		lines := insight.Rules{}.Insights(readings, settings.TargetLow, settings.TargetHigh)
		for _, line := range lines {
			fmt.Printf("%s %s\n", color.CyanString("•"), line)
		}

		return nil
	},
}

func init() {
	insightsCmd.Flags().IntVarP(&insightsLimit, "limit", "n", 30, "number of recent readings to analyze")
	rootCmd.AddCommand(insightsCmd)
}
