// ABOUTME: CLI command for deleting entries.
// ABOUTME: Identifies an entry by record kind and numeric ID.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/harperreed/glucolog/internal/models"
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "delete <kind> <id>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete an entry",
	Long: `Delete an entry by its record kind and ID.

The ID is shown in the first column of 'glucolog list' output.
Deleting an ID that does not exist is a no-op.

EXAMPLES:

  glucolog delete glucose 42
  glucolog rm insulin 7

CAUTION:

  This permanently deletes the entry. There is no undo.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind := args[0]
		if !models.IsValidKind(kind) {
			return fmt.Errorf("unknown record kind: %s", kind)
		}

		id, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id: %s", args[1])
		}

		switch models.Kind(kind) {
		case models.KindGlucose:
			err = repo.DeleteGlucose(id)
		case models.KindFood:
			err = repo.DeleteFood(id)
		case models.KindInsulin:
			err = repo.DeleteInsulin(id)
		case models.KindA1C:
			err = repo.DeleteA1C(id)
		case models.KindWeight:
			err = repo.DeleteWeight(id)
		case models.KindBloodPressure:
			err = repo.DeleteBloodPressure(id)
		}
		if err != nil {
			return fmt.Errorf("failed to delete %s %d: %w", kind, id, err)
		}

		color.Yellow("✗ Deleted %s #%d", kind, id)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
