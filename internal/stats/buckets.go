// ABOUTME: Time-of-day and meal-context bucketing of glucose readings.
// ABOUTME: Bucket averages are rounded display values with reading counts.
package stats

import (
	"math"

	"github.com/harperreed/glucolog/internal/models"
)

// Bucket holds the rounded average and count for one group of readings.
type Bucket struct {
	Avg   float64 `json:"avg"`
	Count int     `json:"count"`
}

// TimeOfDayBuckets groups readings by local hour of day.
// Boundaries are half-open: morning [6,12), afternoon [12,18),
// evening [18,22), night [22,24) and [0,6).
type TimeOfDayBuckets struct {
	Morning   Bucket `json:"morning"`
	Afternoon Bucket `json:"afternoon"`
	Evening   Bucket `json:"evening"`
	Night     Bucket `json:"night"`
}

// MealContextBuckets groups readings by their meal context tag.
// Readings with no context or an unrecognized one land in Other.
type MealContextBuckets struct {
	BeforeMeal Bucket `json:"before_meal"`
	AfterMeal  Bucket `json:"after_meal"`
	Fasting    Bucket `json:"fasting"`
	Bedtime    Bucket `json:"bedtime"`
	Other      Bucket `json:"other"`
}

type accumulator struct {
	sum   float64
	count int
}

func (a *accumulator) add(v float64) {
	a.sum += v
	a.count++
}

func (a *accumulator) bucket() Bucket {
	if a.count == 0 {
		return Bucket{}
	}
	return Bucket{Avg: math.Round(a.sum / float64(a.count)), Count: a.count}
}

// BucketByTimeOfDay groups readings into four local-time-of-day buckets.
// Readings without a usable timestamp are excluded, not defaulted.
func BucketByTimeOfDay(readings []*models.GlucoseReading) TimeOfDayBuckets {
	var morning, afternoon, evening, night accumulator

	for _, r := range readings {
		if r.RecordedAt.IsZero() {
			continue
		}
		hour := r.RecordedAt.Hour()
		switch {
		case hour >= 6 && hour < 12:
			morning.add(r.Value)
		case hour >= 12 && hour < 18:
			afternoon.add(r.Value)
		case hour >= 18 && hour < 22:
			evening.add(r.Value)
		default:
			night.add(r.Value)
		}
	}

	return TimeOfDayBuckets{
		Morning:   morning.bucket(),
		Afternoon: afternoon.bucket(),
		Evening:   evening.bucket(),
		Night:     night.bucket(),
	}
}

// BucketByMealContext groups readings by meal context.
func BucketByMealContext(readings []*models.GlucoseReading) MealContextBuckets {
	var before, after, fasting, bedtime, other accumulator

	for _, r := range readings {
		switch r.Context {
		case models.ContextBeforeMeal:
			before.add(r.Value)
		case models.ContextAfterMeal:
			after.add(r.Value)
		case models.ContextFasting:
			fasting.add(r.Value)
		case models.ContextBedtime:
			bedtime.add(r.Value)
		default:
			other.add(r.Value)
		}
	}

	return MealContextBuckets{
		BeforeMeal: before.bucket(),
		AfterMeal:  after.bucket(),
		Fasting:    fasting.bucket(),
		Bedtime:    bedtime.bucket(),
		Other:      other.bucket(),
	}
}
