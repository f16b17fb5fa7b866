package buddy

import (
	"buddyfridge/entities"
	"buddyfridge/internal/utils"
	"time"
)

// Mood is the single aggregate freshness signal derived from the whole
// inventory.
type Mood string

const (
	MoodEmpty    Mood = "empty"
	MoodFresh    Mood = "fresh"
	MoodWarning  Mood = "warning"
	MoodCritical Mood = "critical"
)

// Freshness values for a single batch.
const (
	FreshnessSafe    = "safe"
	FreshnessWarning = "warning"
	FreshnessExpired = "expired"
)

// WarningHorizonDays is how close an expiry date has to be before the
// inventory starts worrying.
const WarningHorizonDays = 2

// Classify reduces the inventory to one mood. Freezer stock never drives
// anxiety: frozen time is considered stopped, so a fully frozen inventory
// is fresh even when dates have passed.
func Classify(batches []*entities.FoodBatch, now time.Time) Mood {
	if len(batches) == 0 {
		return MoodEmpty
	}

	var active []*entities.FoodBatch
	for _, batch := range batches {
		if batch.Location != entities.LocationFreezer {
			active = append(active, batch)
		}
	}
	if len(active) == 0 {
		return MoodFresh
	}

	horizon := utils.AddDays(now, WarningHorizonDays)
	warning := false
	for _, batch := range active {
		if batch.IsExpired(now) {
			return MoodCritical
		}
		if batch.ExpiryDate != nil && !batch.ExpiryDate.After(horizon) {
			warning = true
		}
	}
	if warning {
		return MoodWarning
	}

	return MoodFresh
}

func Message(mood Mood) string {
	switch mood {
	case MoodFresh:
		return "All fresh! 😎"
	case MoodWarning:
		return "Watch those expiry dates... 😬"
	case MoodCritical:
		return "Something went bad! 🤢"
	default:
		return "The fridge is empty. Shopping time?"
	}
}

// FreshnessOf classifies a single batch for display purposes.
func FreshnessOf(batch *entities.FoodBatch, now time.Time) string {
	if batch.IsExpired(now) {
		return FreshnessExpired
	}
	if batch.ExpiryDate != nil && !batch.ExpiryDate.After(utils.AddDays(now, WarningHorizonDays)) {
		return FreshnessWarning
	}
	return FreshnessSafe
}
