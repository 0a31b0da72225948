// ABOUTME: Generator interface for producing textual insights from glucose readings.
// ABOUTME: A future scoring or learned backend can replace Rules without touching callers.
package insight

import "github.com/harperreed/glucolog/internal/models"

// Generator turns a set of glucose readings into human-readable insight
// sentences. Readings are most-recent-first, as returned by the store's
// list operations. Output order is generation order, not severity.
type Generator interface {
	Insights(readings []*models.GlucoseReading, rangeLow, rangeHigh float64) []string
}
