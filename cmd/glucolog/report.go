// ABOUTME: CLI command for generating date-range reports.
// ABOUTME: Writes an HTML document plus per-kind CSV tables.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/glucolog/internal/report"
	"github.com/spf13/cobra"
)

var (
	reportStart string
	reportEnd   string
	reportDays  int
	reportOut   string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate a report for a date range",
	Long: `Generate a report covering a date range: an HTML summary document plus
one CSV table per record kind that has data in the range.

Files are named after the range (e.g. report_2026-01-01_to_2026-01-31.html)
and land in the report directory, default ~/.local/share/glucolog/reports.
Existing files for the same range are replaced.

EXAMPLES:

  glucolog report                                   # Last 30 days
  glucolog report --days 90                         # Last 90 days
  glucolog report --start 2026-01-01 --end 2026-01-31
  glucolog report --out ~/Desktop/reports           # Custom output dir`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var start, end time.Time
		var err error

		if reportStart != "" || reportEnd != "" {
			if reportStart == "" || reportEnd == "" {
				return fmt.Errorf("--start and --end must be used together")
			}
			start, err = time.Parse("2006-01-02", reportStart)
			if err != nil {
				return fmt.Errorf("invalid start date: %s (use YYYY-MM-DD)", reportStart)
			}
			end, err = time.Parse("2006-01-02", reportEnd)
			if err != nil {
				return fmt.Errorf("invalid end date: %s (use YYYY-MM-DD)", reportEnd)
			}
			// Include the whole end day.
			end = end.Add(24*time.Hour - time.Millisecond)
		} else {
			end = time.Now()
			start = end.AddDate(0, 0, -reportDays)
		}

		outDir := reportOut
		if outDir == "" {
			outDir = cfg.GetReportDir()
		}

		result, err := report.NewGenerator(repo, outDir).Generate(start, end)
		if err != nil {
			return err
		}

		color.Green("✓ Report generated")
		fmt.Printf("  %s\n", result.DocumentPath)
		for _, p := range result.TablePaths {
			fmt.Printf("  %s\n", p)
		}

		return nil
	},
}

func init() {
	reportCmd.Flags().StringVar(&reportStart, "start", "", "range start date (YYYY-MM-DD)")
	reportCmd.Flags().StringVar(&reportEnd, "end", "", "range end date (YYYY-MM-DD)")
	reportCmd.Flags().IntVar(&reportDays, "days", 30, "range length when no explicit dates are given")
	reportCmd.Flags().StringVarP(&reportOut, "out", "o", "", "output directory (default: configured report dir)")
	rootCmd.AddCommand(reportCmd)
}
