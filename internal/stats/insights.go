// ABOUTME: Single-sentence observations derived from bucketed glucose averages.
// ABOUTME: Identifies the highest and lowest bucket and words the spread by tier.
package stats

import "fmt"

// MinReadingsForInsight is the minimum total reading count before a
// bucket insight is computed instead of the add-more-data message.
const MinReadingsForInsight = 3

// Spread tiers in mg/dL between the highest and lowest bucket average.
const (
	SpreadModerate    = 30
	SpreadSignificant = 50
)

// MoreDataMessage is returned when too few readings or buckets exist.
const MoreDataMessage = "Log more readings to unlock pattern insights."

type namedBucket struct {
	name string
	b    Bucket
}

// highLow returns the non-empty buckets with the highest and lowest average.
// Ties keep the first bucket in enumeration order. The third result is the
// number of non-empty buckets.
func highLow(buckets []namedBucket) (namedBucket, namedBucket, int) {
	var high, low namedBucket
	nonEmpty := 0
	for _, nb := range buckets {
		if nb.b.Count == 0 {
			continue
		}
		nonEmpty++
		if high.b.Count == 0 || nb.b.Avg > high.b.Avg {
			high = nb
		}
		if low.b.Count == 0 || nb.b.Avg < low.b.Avg {
			low = nb
		}
	}
	return high, low, nonEmpty
}

// TimeOfDayInsight produces one sentence describing when readings run
// highest and lowest. total is the number of readings that were bucketed.
func TimeOfDayInsight(buckets TimeOfDayBuckets, total int) string {
	high, low, nonEmpty := highLow([]namedBucket{
		{"morning", buckets.Morning},
		{"afternoon", buckets.Afternoon},
		{"evening", buckets.Evening},
		{"night", buckets.Night},
	})
	if total < MinReadingsForInsight || nonEmpty < 2 {
		return MoreDataMessage
	}

	spread := high.b.Avg - low.b.Avg
	if spread > SpreadModerate {
		return fmt.Sprintf("Your glucose runs highest in the %s (avg %.0f mg/dL) and lowest in the %s (avg %.0f mg/dL).",
			high.name, high.b.Avg, low.name, low.b.Avg)
	}
	return fmt.Sprintf("Your glucose is steady through the day: %s averages %.0f mg/dL and %s averages %.0f mg/dL.",
		high.name, high.b.Avg, low.name, low.b.Avg)
}

// MealContextInsight produces one sentence describing meal impact,
// worded by spread tier: significant above 50 mg/dL, moderate above 30,
// otherwise minimal.
func MealContextInsight(buckets MealContextBuckets, total int) string {
	high, low, nonEmpty := highLow([]namedBucket{
		{"before meals", buckets.BeforeMeal},
		{"after meals", buckets.AfterMeal},
		{"fasting", buckets.Fasting},
		{"at bedtime", buckets.Bedtime},
		{"other times", buckets.Other},
	})
	if total < MinReadingsForInsight || nonEmpty < 2 {
		return MoreDataMessage
	}

	spread := high.b.Avg - low.b.Avg
	var impact string
	switch {
	case spread > SpreadSignificant:
		impact = "significant"
	case spread > SpreadModerate:
		impact = "moderate"
	default:
		impact = "minimal"
	}
	return fmt.Sprintf("Meal timing has a %s impact on your glucose: %s averages %.0f mg/dL while %s averages %.0f mg/dL.",
		impact, high.name, high.b.Avg, low.name, low.b.Avg)
}
