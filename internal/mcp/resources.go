// ABOUTME: MCP resource implementations for the glucolog record store.
// ABOUTME: Provides glucolog://recent, glucolog://today, and glucolog://stats resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/harperreed/glucolog/internal/models"
	"github.com/harperreed/glucolog/internal/stats"
	"github.com/harperreed/glucolog/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	// glucolog://recent - Last 10 entries across all kinds
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "glucolog://recent",
		Name:        "Recent Entries",
		Description: "Last 10 entries across all record kinds",
		MIMEType:    "application/json",
	}, s.handleRecentResource)

	// glucolog://today - All entries logged today
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "glucolog://today",
		Name:        "Today's Entries",
		Description: "All entries recorded today",
		MIMEType:    "application/json",
	}, s.handleTodayResource)

	// glucolog://stats - Glucose dashboard with summary and breakdowns
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "glucolog://stats",
		Name:        "Glucose Statistics",
		Description: "Summary statistics and breakdowns for recent glucose readings",
		MIMEType:    "application/json",
	}, s.handleStatsResource)
}

func (s *Server) resourceResult(uri string, payload interface{}) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// Resource handlers

func (s *Server) handleRecentResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	entries := storage.Entries(s.repo, 10)

	return s.resourceResult("glucolog://recent", map[string]interface{}{
		"entries": entries,
		"count":   len(entries),
	})
}

func (s *Server) handleTodayResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var today []models.LogEntry
	for _, e := range storage.Entries(s.repo, 1000) {
		if !e.RecordedAt().Before(todayStart) {
			today = append(today, e)
		}
	}

	return s.resourceResult("glucolog://today", map[string]interface{}{
		"date":    todayStart.Format("2006-01-02"),
		"entries": today,
		"count":   len(today),
	})
}

func (s *Server) handleStatsResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	settings, err := s.repo.Settings()
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	readings := s.repo.ListGlucose(30)

	timeOfDay := stats.BucketByTimeOfDay(readings)
	mealContext := stats.BucketByMealContext(readings)

	return s.resourceResult("glucolog://stats", map[string]interface{}{
		"generated_at": time.Now().Format(time.RFC3339),
		"target_range": map[string]float64{
			"low":  settings.TargetLow,
			"high": settings.TargetHigh,
		},
		"summary":      stats.Summarize(readings, settings.TargetLow, settings.TargetHigh),
		"time_of_day":  timeOfDay,
		"meal_context": mealContext,
	})
}
