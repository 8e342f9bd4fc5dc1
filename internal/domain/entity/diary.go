// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// Diary is the per-user collection of consumed-item entries.
// Exactly one exists per user; it is created lazily on the first logged
// consumption and is never deleted in normal operation.
type Diary struct {
	ID        uuid.UUID     // Unique identifier of the diary.
	UserID    uuid.UUID     // The owning user; unique across diaries.
	Entries   []*DiaryEntry // Owned entries in insertion order. Order is not semantically significant.
	CreatedAt time.Time     // Timestamp of when this diary was created.
	UpdatedAt time.Time     // Timestamp of the last modification to this diary.
}

// DiaryEntry is a single consumed item. Within one diary there is at most one
// entry per (product, UTC calendar day); re-logging the same product on the
// same day replaces the existing entry instead of appending.
type DiaryEntry struct {
	ID        uuid.UUID // Unique identifier of the entry, used for removal.
	DiaryID   uuid.UUID // Foreign key back to the owning diary.
	ProductID uuid.UUID // The consumed product.
	Weight    float64   // Consumed weight in grams. Always > 0.
	Calories  float64   // Calories for this consumption, derived from the product's density.
	EatenAt   time.Time // The write instant; defines the entry's UTC day bucket.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CaloriesFor computes the calories of a consumption from the product's
// calorie density (per 100 grams) and the consumed weight.
func CaloriesFor(caloriesPer100 float64, weight float64) float64 {
	return caloriesPer100 * weight / 100
}

// Round2 rounds v to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// UpsertEntry reconciles a new consumption into the diary. If an entry for the
// same product on the same UTC day as entry.EatenAt already exists, it is
// replaced in place, keeping its identity and position; otherwise the entry is
// appended. The resulting entry is returned.
func (d *Diary) UpsertEntry(entry *DiaryEntry) *DiaryEntry {
	for _, existing := range d.Entries {
		if existing.ProductID == entry.ProductID && SameUTCDay(existing.EatenAt, entry.EatenAt) {
			existing.Weight = entry.Weight
			existing.Calories = entry.Calories
			existing.EatenAt = entry.EatenAt

			return existing
		}
	}

	entry.DiaryID = d.ID
	d.Entries = append(d.Entries, entry)

	return entry
}

// EntriesOn returns the entries whose EatenAt falls on the same UTC calendar
// day as day, preserving insertion order. An empty result is a valid state.
func (d *Diary) EntriesOn(day time.Time) []*DiaryEntry {
	var matched []*DiaryEntry
	for _, entry := range d.Entries {
		if SameUTCDay(entry.EatenAt, day) {
			matched = append(matched, entry)
		}
	}

	return matched
}

// RemoveEntry deletes the entry with the given id from the diary.
// It reports whether an entry was removed.
func (d *Diary) RemoveEntry(entryID uuid.UUID) bool {
	for i, entry := range d.Entries {
		if entry.ID == entryID {
			d.Entries = append(d.Entries[:i], d.Entries[i+1:]...)

			return true
		}
	}

	return false
}

// ConsumedOn sums the calories of all entries on the given UTC day.
func (d *Diary) ConsumedOn(day time.Time) float64 {
	var total float64
	for _, entry := range d.EntriesOn(day) {
		total += entry.Calories
	}

	return total
}
