// ABOUTME: Root Cobra command for glucolog CLI.
// ABOUTME: Handles store lifecycle via PersistentPre/PostRunE.
package main

import (
	"fmt"

	"github.com/harperreed/glucolog/internal/config"
	"github.com/harperreed/glucolog/internal/storage"
	"github.com/spf13/cobra"
)

var (
	cfg  *config.Config
	repo storage.Repository
)

var rootCmd = &cobra.Command{
	Use:   "glucolog",
	Short: "Personal diabetes and health tracker",
	Long: `Glucolog is a CLI tool for tracking diabetes-related health data.

WHAT IT TRACKS:

  glucose         Blood glucose readings (mg/dL) with meal context
  food            Food entries with carbs and meal type
  insulin         Insulin doses by type
  a1c             A1C lab results
  weight          Weight measurements (kg)
  blood_pressure  Blood pressure readings (mmHg)

QUICK START:

  $ glucolog add glucose 112 --context fasting   # Log a reading
  $ glucolog add food "oatmeal" breakfast --carbs 42
  $ glucolog add insulin 6.5 rapid               # Log a dose
  $ glucolog list                                # Recent entries, all kinds
  $ glucolog stats                               # Summary + breakdowns
  $ glucolog insights                            # Pattern observations

REPORTS:

  $ glucolog report --start 2026-01-01 --end 2026-01-31

  Writes an HTML summary plus one CSV per record kind to the report
  directory (default ~/.local/share/glucolog/reports).

MCP INTEGRATION:

  Run 'glucolog mcp' to start the Model Context Protocol server for use
  with Claude Desktop or other MCP-compatible AI assistants. Add to your
  Claude config:

  {
    "mcpServers": {
      "glucolog": { "command": "glucolog", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  Records are stored in SQLite at ~/.local/share/glucolog/glucolog.db.
  Override with data_dir in ~/.config/glucolog/config.json.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip store setup for commands that don't need it
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		repo, err = cfg.OpenStorage()
		if err != nil {
			return fmt.Errorf("failed to open store: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if repo != nil {
			return repo.Close()
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
