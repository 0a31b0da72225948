// ABOUTME: Integration tests for glucolog CLI.
// ABOUTME: Tests full workflow from CLI commands.
package test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func TestFullWorkflow(t *testing.T) {
	// Build the binary
	projectRoot, _ := filepath.Abs("..")
	binary := filepath.Join(projectRoot, "glucolog")

	buildCmd := exec.Command("go", "build", "-o", binary, "./cmd/glucolog")
	buildCmd.Dir = projectRoot
	if output, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build: %v\n%s", err, output)
	}
	defer os.Remove(binary)

	// Sandbox the data and config directories
	tmpDir := t.TempDir()
	env := append(os.Environ(),
		"XDG_DATA_HOME="+filepath.Join(tmpDir, "data"),
		"XDG_CONFIG_HOME="+filepath.Join(tmpDir, "config"),
	)

	run := func(args ...string) (string, error) {
		cmd := exec.Command(binary, args...)
		cmd.Env = env
		output, err := cmd.CombinedOutput()
		return string(output), err
	}

	// Log a glucose reading
	output, err := run("add", "glucose", "112", "--context", "fasting")
	if err != nil {
		t.Fatalf("Failed to add glucose: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Logged glucose") {
		t.Errorf("Expected 'Logged glucose' in output, got: %s", output)
	}

	// Log food and insulin
	output, err = run("add", "food", "oatmeal", "breakfast", "--carbs", "42")
	if err != nil {
		t.Fatalf("Failed to add food: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Logged food") {
		t.Errorf("Expected 'Logged food' in output, got: %s", output)
	}

	output, err = run("add", "insulin", "6.5", "rapid")
	if err != nil {
		t.Fatalf("Failed to add insulin: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Logged insulin") {
		t.Errorf("Expected 'Logged insulin' in output, got: %s", output)
	}

	// Blood pressure
	output, err = run("add", "bp", "120", "80")
	if err != nil {
		t.Fatalf("Failed to add bp: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Logged blood pressure") {
		t.Errorf("Expected 'Logged blood pressure' in output, got: %s", output)
	}

	// Listing shows all kinds
	output, err = run("list")
	if err != nil {
		t.Fatalf("Failed to list: %v\n%s", err, output)
	}
	for _, want := range []string{"glucose", "oatmeal", "insulin", "120/80"} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected %q in list output, got: %s", want, output)
		}
	}

	// Stats over the single reading
	output, err = run("stats")
	if err != nil {
		t.Fatalf("Failed to get stats: %v\n%s", err, output)
	}
	if !strings.Contains(output, "112 mg/dL") {
		t.Errorf("Expected '112 mg/dL' in stats output, got: %s", output)
	}

	// Insights
	output, err = run("insights")
	if err != nil {
		t.Fatalf("Failed to get insights: %v\n%s", err, output)
	}
	if !strings.Contains(output, "target range") {
		t.Errorf("Expected a target range insight, got: %s", output)
	}

	// Settings round trip
	output, err = run("settings", "set", "--target-low", "80", "--target-high", "160")
	if err != nil {
		t.Fatalf("Failed to update settings: %v\n%s", err, output)
	}
	output, err = run("settings")
	if err != nil {
		t.Fatalf("Failed to show settings: %v\n%s", err, output)
	}
	if !strings.Contains(output, "80 mg/dL") || !strings.Contains(output, "160 mg/dL") {
		t.Errorf("Expected updated target range in settings output, got: %s", output)
	}

	// Report generation
	output, err = run("report", "--days", "7")
	if err != nil {
		t.Fatalf("Failed to generate report: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Report generated") {
		t.Errorf("Expected 'Report generated' in output, got: %s", output)
	}
	if !strings.Contains(output, ".html") {
		t.Errorf("Expected document path in output, got: %s", output)
	}

	// Export backup
	exportPath := filepath.Join(tmpDir, "backup.json")
	output, err = run("export", "json", "--output", exportPath)
	if err != nil {
		t.Fatalf("Failed to export: %v\n%s", err, output)
	}
	data, err := os.ReadFile(exportPath)
	if err != nil {
		t.Fatalf("Export file not written: %v", err)
	}
	if !strings.Contains(string(data), `"glucose"`) || !strings.Contains(string(data), `"export_id"`) {
		t.Errorf("Expected glucose records and export metadata in export, got: %s", data)
	}

	// Delete is idempotent
	output, err = run("delete", "glucose", "1")
	if err != nil {
		t.Fatalf("Failed to delete: %v\n%s", err, output)
	}
	output, err = run("delete", "glucose", "1")
	if err != nil {
		t.Fatalf("Repeat delete should succeed: %v\n%s", err, output)
	}
}
