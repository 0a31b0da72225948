// ABOUTME: Merged chronological view across all record kinds.
// ABOUTME: Fetches each kind and interleaves by recorded_at, newest first.
package storage

import (
	"sort"

	"github.com/harperreed/glucolog/internal/models"
)

// Entries returns up to limit records across every kind, merged into one
// newest-first list. kinds filters the view; empty means all kinds.
func Entries(r Repository, limit int, kinds ...models.Kind) []models.LogEntry {
	want := make(map[models.Kind]bool, len(kinds))
	for _, k := range kinds {
		want[k] = true
	}
	include := func(k models.Kind) bool {
		return len(kinds) == 0 || want[k]
	}

	var entries []models.LogEntry
	if include(models.KindGlucose) {
		for _, g := range r.ListGlucose(limit) {
			entries = append(entries, models.EntryFromGlucose(g))
		}
	}
	if include(models.KindFood) {
		for _, f := range r.ListFood(limit) {
			entries = append(entries, models.EntryFromFood(f))
		}
	}
	if include(models.KindInsulin) {
		for _, d := range r.ListInsulin(limit) {
			entries = append(entries, models.EntryFromInsulin(d))
		}
	}
	if include(models.KindA1C) {
		for _, a := range r.ListA1C(limit) {
			entries = append(entries, models.EntryFromA1C(a))
		}
	}
	if include(models.KindWeight) {
		for _, w := range r.ListWeight(limit) {
			entries = append(entries, models.EntryFromWeight(w))
		}
	}
	if include(models.KindBloodPressure) {
		for _, b := range r.ListBloodPressure(limit) {
			entries = append(entries, models.EntryFromBloodPressure(b))
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].RecordedAt().After(entries[j].RecordedAt())
	})

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}
