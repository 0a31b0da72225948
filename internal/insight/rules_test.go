// ABOUTME: Tests for the rule-based insight generator.
// ABOUTME: Covers every rule family and its minimum-data gates.
package insight

import (
	"strings"
	"testing"
	"time"

	"github.com/harperreed/glucolog/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	low  = 70.0
	high = 180.0
)

func reading(value float64, at time.Time) *models.GlucoseReading {
	return models.NewGlucoseReading(value).WithRecordedAt(at)
}

// series builds most-recent-first readings spaced an hour apart, all at
// mid-day so the day-pattern rules stay quiet.
func series(values ...float64) []*models.GlucoseReading {
	base := time.Date(2026, 2, 10, 13, 0, 0, 0, time.Local)
	out := make([]*models.GlucoseReading, len(values))
	for i, v := range values {
		out[i] = reading(v, base.Add(-time.Duration(i)*time.Hour))
	}
	return out
}

func joined(lines []string) string {
	return strings.Join(lines, "\n")
}

func TestInsightsEmpty(t *testing.T) {
	assert.Nil(t, Rules{}.Insights(nil, low, high))
}

func TestLatestReadingClassification(t *testing.T) {
	assert.Contains(t, joined(Rules{}.Insights(series(110), low, high)), "within your target range")
	assert.Contains(t, joined(Rules{}.Insights(series(60), low, high)), "below your target range")
	assert.Contains(t, joined(Rules{}.Insights(series(240), low, high)), "above your target range")
}

func TestTimeInRangeTiers(t *testing.T) {
	// 5 readings, all in range: excellent.
	lines := joined(Rules{}.Insights(series(100, 110, 120, 130, 140), low, high))
	assert.Contains(t, lines, "Excellent")

	// 3 of 5 in range: 60%, on track.
	lines = joined(Rules{}.Insights(series(100, 110, 120, 200, 210), low, high))
	assert.Contains(t, lines, "on track")

	// 1 of 5 in range: room for improvement.
	lines = joined(Rules{}.Insights(series(100, 200, 210, 220, 230), low, high))
	assert.Contains(t, lines, "room for improvement")
}

func TestTimeInRangeNeedsFiveReadings(t *testing.T) {
	lines := joined(Rules{}.Insights(series(100, 110, 120, 130), low, high))
	assert.NotContains(t, lines, "in range.")
}

func TestUpwardTrendWarning(t *testing.T) {
	// Strictly rising toward now and latest above range.
	lines := joined(Rules{}.Insights(series(220, 200, 190), low, high))
	assert.Contains(t, lines, "trending upward")
}

func TestDownwardTrendWarning(t *testing.T) {
	lines := joined(Rules{}.Insights(series(55, 62, 68), low, high))
	assert.Contains(t, lines, "trending downward")
}

func TestTrendNeedsStrictMonotonicRun(t *testing.T) {
	// Plateau breaks the run even though the latest is above range.
	lines := joined(Rules{}.Insights(series(220, 220, 190), low, high))
	assert.NotContains(t, lines, "trending")

	// Rising but still in range: no warning.
	lines = joined(Rules{}.Insights(series(140, 120, 100), low, high))
	assert.NotContains(t, lines, "trending")
}

func TestVariabilityWarning(t *testing.T) {
	lines := joined(Rules{}.Insights(series(100, 210, 120, 105, 95), low, high))
	assert.Contains(t, lines, "vary by")

	// Spread of exactly 100 does not fire.
	lines = joined(Rules{}.Insights(series(100, 200, 120, 105, 100), low, high))
	assert.NotContains(t, lines, "vary by")
}

func TestVariabilityNeedsFiveReadings(t *testing.T) {
	lines := joined(Rules{}.Insights(series(100, 260, 120), low, high))
	assert.NotContains(t, lines, "vary by")
}

func TestMorningPattern(t *testing.T) {
	morning := func(day, hour int, v float64) *models.GlucoseReading {
		return reading(v, time.Date(2026, 2, day, hour, 15, 0, 0, time.Local))
	}

	rs := []*models.GlucoseReading{
		morning(12, 7, 200),
		morning(11, 8, 210),
		morning(10, 9, 205),
	}
	lines := Rules{}.Insights(rs, low, high)
	require.NotEmpty(t, lines)
	assert.Contains(t, joined(lines), "morning readings average")
	assert.Contains(t, joined(lines), "dawn phenomenon")
}

func TestEveningPattern(t *testing.T) {
	evening := func(day int, v float64) *models.GlucoseReading {
		return reading(v, time.Date(2026, 2, day, 20, 0, 0, 0, time.Local))
	}

	rs := []*models.GlucoseReading{evening(12, 200), evening(11, 210), evening(10, 205)}
	assert.Contains(t, joined(Rules{}.Insights(rs, low, high)), "evening readings average")
}

func TestDayPatternNeedsThreeReadingsInWindow(t *testing.T) {
	morning := func(day int, v float64) *models.GlucoseReading {
		return reading(v, time.Date(2026, 2, day, 7, 0, 0, 0, time.Local))
	}

	rs := []*models.GlucoseReading{morning(12, 200), morning(11, 210)}
	assert.NotContains(t, joined(Rules{}.Insights(rs, low, high)), "morning readings average")
}

func TestDayPatternNeedsElevatedAverage(t *testing.T) {
	morning := func(day int, v float64) *models.GlucoseReading {
		return reading(v, time.Date(2026, 2, day, 7, 0, 0, 0, time.Local))
	}

	rs := []*models.GlucoseReading{morning(12, 110), morning(11, 120), morning(10, 115)}
	assert.NotContains(t, joined(Rules{}.Insights(rs, low, high)), "morning readings average")
}

func TestInsightsDeterministic(t *testing.T) {
	rs := series(100, 210, 120, 105, 95)
	first := Rules{}.Insights(rs, low, high)
	second := Rules{}.Insights(rs, low, high)
	assert.Equal(t, first, second)
}
