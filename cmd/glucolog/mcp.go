// ABOUTME: CLI command for starting MCP server.
// ABOUTME: Runs stdio-based MCP server for Claude integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/harperreed/glucolog/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

MCP allows AI assistants like Claude to interact with your health data through
a standardized protocol. The server communicates via stdin/stdout.

CLAUDE DESKTOP CONFIGURATION:

  Add this to your Claude Desktop config (claude_desktop_config.json):

  {
    "mcpServers": {
      "glucolog": {
        "command": "glucolog",
        "args": ["mcp"]
      }
    }
  }

  On macOS, the config is at:
    ~/Library/Application Support/Claude/claude_desktop_config.json

AVAILABLE TOOLS:

  log_glucose         Record a glucose reading
  log_food            Record a food entry
  log_insulin         Record an insulin dose
  log_a1c             Record an A1C result
  log_weight          Record a weight measurement
  log_blood_pressure  Record a blood pressure reading
  list_entries        List recent entries across kinds
  delete_entry        Delete an entry by kind and ID
  glucose_stats       Summary statistics and breakdowns
  insights            Pattern observations
  generate_report     HTML report plus CSV tables for a date range
  get_settings        Read user settings
  update_settings     Update user settings

AVAILABLE RESOURCES:

  glucolog://recent   Recent entries across all kinds
  glucolog://today    Today's entries
  glucolog://stats    Glucose statistics dashboard`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(repo, cfg.GetReportDir())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
