// ABOUTME: Rule-based insight generation: range checks, trends, variability, day patterns.
// ABOUTME: Deterministic given identical input; no randomness and no external calls.
package insight

import (
	"fmt"

	"github.com/harperreed/glucolog/internal/models"
	"github.com/harperreed/glucolog/internal/stats"
)

// Minimum reading counts per rule.
const (
	minForTrend       = 3
	minForTimeInRange = 5
	minForVariability = 5
	minForDayPattern  = 3
)

// VariabilitySpread is the max-minus-min threshold, in mg/dL, above which
// a variability warning is emitted.
const VariabilitySpread = 100

// Time-in-range tier boundaries, in percent.
const (
	tirExcellent = 80
	tirOnTrack   = 60
)

// Morning and evening pattern windows, inclusive local hours.
const (
	morningStartHour = 6
	morningEndHour   = 9
	eveningStartHour = 18
	eveningEndHour   = 22
)

// Rules is the default rule-based Generator.
type Rules struct{}

var _ Generator = Rules{}

// Insights applies each rule in a fixed order and collects the sentences
// that fire. Readings must be most-recent-first.
func (Rules) Insights(readings []*models.GlucoseReading, rangeLow, rangeHigh float64) []string {
	if len(readings) == 0 {
		return nil
	}

	var out []string

	out = append(out, latestReadingInsight(readings[0], rangeLow, rangeHigh))

	if len(readings) >= minForTimeInRange {
		summary := stats.Summarize(readings, rangeLow, rangeHigh)
		out = append(out, timeInRangeInsight(summary.TimeInRangePercent))
	}

	if s := trendInsight(readings, rangeLow, rangeHigh); s != "" {
		out = append(out, s)
	}

	if s := variabilityInsight(readings); s != "" {
		out = append(out, s)
	}

	if s := dayPatternInsight(readings, rangeHigh, morningStartHour, morningEndHour,
		"Your morning readings average %.0f mg/dL, above your target range. This can be a sign of the dawn phenomenon; consider discussing it with your care team."); s != "" {
		out = append(out, s)
	}
	if s := dayPatternInsight(readings, rangeHigh, eveningStartHour, eveningEndHour,
		"Your evening readings average %.0f mg/dL, above your target range. Reviewing dinner carbs or evening doses may help."); s != "" {
		out = append(out, s)
	}

	return out
}

func latestReadingInsight(latest *models.GlucoseReading, low, high float64) string {
	switch {
	case latest.Value < low:
		return fmt.Sprintf("Your latest reading of %.0f mg/dL is below your target range.", latest.Value)
	case latest.Value > high:
		return fmt.Sprintf("Your latest reading of %.0f mg/dL is above your target range.", latest.Value)
	default:
		return fmt.Sprintf("Your latest reading of %.0f mg/dL is within your target range.", latest.Value)
	}
}

func timeInRangeInsight(tir float64) string {
	switch {
	case tir >= tirExcellent:
		return fmt.Sprintf("Excellent: %.0f%% of your recent readings are in range.", tir)
	case tir >= tirOnTrack:
		return fmt.Sprintf("You're on track: %.0f%% of your recent readings are in range.", tir)
	default:
		return fmt.Sprintf("Only %.0f%% of your recent readings are in range; there's room for improvement.", tir)
	}
}

// trendInsight fires only on a strict three-point monotonic run that is
// heading the wrong way: rising while already above range, or falling
// while already below it.
func trendInsight(readings []*models.GlucoseReading, low, high float64) string {
	if len(readings) < minForTrend {
		return ""
	}
	v0, v1, v2 := readings[0].Value, readings[1].Value, readings[2].Value

	if v0 > v1 && v1 > v2 && v0 > high {
		return fmt.Sprintf("Your glucose is trending upward and your latest reading (%.0f mg/dL) is above range.", v0)
	}
	if v0 < v1 && v1 < v2 && v0 < low {
		return fmt.Sprintf("Your glucose is trending downward and your latest reading (%.0f mg/dL) is below range.", v0)
	}
	return ""
}

func variabilityInsight(readings []*models.GlucoseReading) string {
	if len(readings) < minForVariability {
		return ""
	}
	min, max := readings[0].Value, readings[0].Value
	for _, r := range readings {
		if r.Value < min {
			min = r.Value
		}
		if r.Value > max {
			max = r.Value
		}
	}
	if spread := max - min; spread > VariabilitySpread {
		return fmt.Sprintf("Your readings vary by %.0f mg/dL over the recent window; more consistent timing of meals and doses may reduce swings.", spread)
	}
	return ""
}

// dayPatternInsight averages readings whose local hour falls in
// [startHour, endHour] and fires the template when at least three such
// readings average above the upper range bound.
func dayPatternInsight(readings []*models.GlucoseReading, high float64, startHour, endHour int, template string) string {
	sum := 0.0
	count := 0
	for _, r := range readings {
		if r.RecordedAt.IsZero() {
			continue
		}
		h := r.RecordedAt.Hour()
		if h >= startHour && h <= endHour {
			sum += r.Value
			count++
		}
	}
	if count < minForDayPattern {
		return ""
	}
	avg := sum / float64(count)
	if avg > high {
		return fmt.Sprintf(template, avg)
	}
	return ""
}
