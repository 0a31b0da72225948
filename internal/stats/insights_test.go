// ABOUTME: Tests for bucketed insight sentences.
// ABOUTME: Covers spread tiers, tie-breaking, and the more-data fallback.
package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimeOfDayInsightSpread(t *testing.T) {
	buckets := TimeOfDayBuckets{
		Morning: Bucket{Avg: 160, Count: 3},
		Evening: Bucket{Avg: 100, Count: 3},
	}

	got := TimeOfDayInsight(buckets, 6)
	assert.Contains(t, got, "highest in the morning")
	assert.Contains(t, got, "lowest in the evening")
	assert.Contains(t, got, "160")
	assert.Contains(t, got, "100")
}

func TestTimeOfDayInsightSteady(t *testing.T) {
	buckets := TimeOfDayBuckets{
		Morning:   Bucket{Avg: 110, Count: 2},
		Afternoon: Bucket{Avg: 105, Count: 2},
	}

	got := TimeOfDayInsight(buckets, 4)
	assert.Contains(t, got, "steady")
}

func TestTimeOfDayInsightNeedsData(t *testing.T) {
	// Too few readings overall.
	few := TimeOfDayBuckets{
		Morning: Bucket{Avg: 120, Count: 1},
		Evening: Bucket{Avg: 100, Count: 1},
	}
	assert.Equal(t, MoreDataMessage, TimeOfDayInsight(few, 2))

	// Enough readings but only one non-empty bucket.
	oneBucket := TimeOfDayBuckets{
		Morning: Bucket{Avg: 120, Count: 5},
	}
	assert.Equal(t, MoreDataMessage, TimeOfDayInsight(oneBucket, 5))
}

func TestMealContextInsightTiers(t *testing.T) {
	tiered := func(spread float64) string {
		buckets := MealContextBuckets{
			BeforeMeal: Bucket{Avg: 100, Count: 2},
			AfterMeal:  Bucket{Avg: 100 + spread, Count: 2},
		}
		return MealContextInsight(buckets, 4)
	}

	assert.Contains(t, tiered(60), "significant")
	assert.Contains(t, tiered(40), "moderate")
	assert.Contains(t, tiered(10), "minimal")
}

func TestMealContextInsightTieKeepsFirst(t *testing.T) {
	// Equal averages: enumeration order decides both high and low.
	buckets := MealContextBuckets{
		BeforeMeal: Bucket{Avg: 110, Count: 2},
		Fasting:    Bucket{Avg: 110, Count: 2},
	}

	got := MealContextInsight(buckets, 4)
	assert.Contains(t, got, "minimal")
	assert.Contains(t, got, "before meals")
}
