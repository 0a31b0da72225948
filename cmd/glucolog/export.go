// ABOUTME: CLI commands for exporting and importing backup data.
// ABOUTME: Supports JSON and YAML export envelopes and JSON import.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export <format>",
	Short: "Export all data",
	Long: `Export all records and settings in a backup envelope.

FORMATS:

  json   Full JSON export (suitable for backup/restore)
  yaml   YAML export (human-readable)

OPTIONS:

  --output, -o   Write to file instead of stdout

EXAMPLES:

  glucolog export json                 # Export all data as JSON
  glucolog export json -o backup.json  # Save to file
  glucolog export yaml                 # Export as YAML`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"json", "yaml"},
	RunE: func(cmd *cobra.Command, args []string) error {
		format := args[0]

		var data []byte
		var err error

		switch format {
		case "json":
			data, err = repo.ExportJSON()
		case "yaml":
			data, err = repo.ExportYAML()
		default:
			return fmt.Errorf("unknown format: %s (use json or yaml)", format)
		}

		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		if exportOutput != "" {
			if err := os.WriteFile(exportOutput, data, 0600); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}
			color.Green("✓ Exported to %s", exportOutput)
		} else {
			fmt.Println(string(data))
		}

		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import data from a JSON backup",
	Long: `Import records and settings from a previously exported JSON file.

Imported records go through the normal write path: ids are reassigned
and invalid records abort the import.

EXAMPLES:

  glucolog import backup.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filename := args[0]

		data, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}

		if err := repo.ImportJSON(data); err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		color.Green("✓ Imported from %s", filename)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: stdout)")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
