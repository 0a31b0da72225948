// ABOUTME: Summary statistics over glucose readings: mean, spread, time in range.
// ABOUTME: Pure functions; empty input yields a zeroed result, never an error.
package stats

import (
	"math"

	"github.com/harperreed/glucolog/internal/models"
)

// Summary holds aggregate display metrics for a set of glucose readings.
// Average, StdDev and TimeInRangePercent are rounded half away from zero;
// rounding applies to the final value only, never to intermediate sums.
type Summary struct {
	Average            float64 `json:"average"`
	Min                float64 `json:"min"`
	Max                float64 `json:"max"`
	StdDev             float64 `json:"std_dev"`
	InRangeCount       int     `json:"in_range_count"`
	BelowCount         int     `json:"below_count"`
	AboveCount         int     `json:"above_count"`
	TimeInRangePercent float64 `json:"time_in_range_percent"`
	Count              int     `json:"count"`
}

// Summarize computes summary statistics for readings against the inclusive
// target range [rangeMin, rangeMax]. Values below rangeMin count as below,
// values above rangeMax as above. StdDev is the population standard
// deviation (denominator n): it is a display metric, not an unbiased
// estimator, and consumers depend on that exact definition.
func Summarize(readings []*models.GlucoseReading, rangeMin, rangeMax float64) Summary {
	if len(readings) == 0 {
		return Summary{}
	}

	n := len(readings)
	sum := 0.0
	min := readings[0].Value
	max := readings[0].Value
	var inRange, below, above int

	for _, r := range readings {
		v := r.Value
		sum += v
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
		switch {
		case v < rangeMin:
			below++
		case v > rangeMax:
			above++
		default:
			inRange++
		}
	}

	avg := math.Round(sum / float64(n))

	// Deviations are taken from the rounded average, matching the displayed
	// value rather than the exact mean.
	sumSq := 0.0
	for _, r := range readings {
		d := r.Value - avg
		sumSq += d * d
	}
	stdDev := math.Round(math.Sqrt(sumSq / float64(n)))

	return Summary{
		Average:            avg,
		Min:                min,
		Max:                max,
		StdDev:             stdDev,
		InRangeCount:       inRange,
		BelowCount:         below,
		AboveCount:         above,
		TimeInRangePercent: math.Round(100 * float64(inRange) / float64(n)),
		Count:              n,
	}
}
