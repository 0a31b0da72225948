// ABOUTME: CLI command for listing entries across all record kinds.
// ABOUTME: Merges kinds into one chronological view with optional kind filter.
package main

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/harperreed/glucolog/internal/models"
	"github.com/harperreed/glucolog/internal/storage"
	"github.com/spf13/cobra"
)

var (
	listKind  string
	listLimit int
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "l"},
	Short:   "List recent entries",
	Long: `List recent entries from your log, newest first.

OUTPUT FORMAT:

  Each line shows: #ID  TIMESTAMP  KIND  SUMMARY  (NOTES)

  The #ID together with the kind identifies an entry for update and
  delete commands.

FILTERING:

  Use --kind to show a single record kind:
    glucose, food, insulin, a1c, weight, blood_pressure

EXAMPLES:

  glucolog list                    # Last 20 entries, all kinds
  glucolog list --kind glucose     # Only glucose readings
  glucolog list -k insulin -n 50   # Last 50 insulin doses`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var kinds []models.Kind
		if listKind != "" {
			if !models.IsValidKind(listKind) {
				return fmt.Errorf("unknown record kind: %s\nValid kinds: glucose, food, insulin, a1c, weight, blood_pressure", listKind)
			}
			kinds = append(kinds, models.Kind(listKind))
		}

		entries := storage.Entries(repo, listLimit, kinds...)
		if len(entries) == 0 {
			fmt.Println("No entries found.")
			return nil
		}

		units := models.UnitsMgdl
		if settings, err := repo.Settings(); err == nil {
			units = settings.Units
		}

		faint := color.New(color.Faint)
		for _, e := range entries {
			notes := ""
			if n := entryNotes(e); n != "" {
				notes = faint.Sprintf(" (%s)", truncate(n, 30))
			}
			fmt.Printf("%s %s %s %s%s\n",
				faint.Sprintf("#%-4d", e.ID()),
				faint.Sprint(e.RecordedAt().Format("2006-01-02 15:04")),
				padRight(string(e.Kind), 15),
				e.Describe(units),
				notes)
		}

		return nil
	},
}

func entryNotes(e models.LogEntry) string {
	var notes *string
	switch e.Kind {
	case models.KindGlucose:
		notes = e.Glucose.Notes
	case models.KindFood:
		notes = e.Food.Notes
	case models.KindInsulin:
		notes = e.Insulin.Notes
	case models.KindA1C:
		notes = e.A1C.Notes
	case models.KindWeight:
		notes = e.Weight.Notes
	case models.KindBloodPressure:
		notes = e.BloodPressure.Notes
	}
	if notes == nil {
		return ""
	}
	return *notes
}

func truncate(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	runes := []rune(s)
	return string(runes[:maxLen-3]) + "..."
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

func init() {
	listCmd.Flags().StringVarP(&listKind, "kind", "k", "", "filter by record kind")
	listCmd.Flags().IntVarP(&listLimit, "limit", "n", 20, "max number of results")
	rootCmd.AddCommand(listCmd)
}
