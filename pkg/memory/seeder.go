package memory

import (
	"buddyfridge/entities"
	"buddyfridge/internal/utils"
	"context"

	"github.com/google/uuid"
)

type starterItem struct {
	name         string
	emoji        string
	quantity     int
	measureValue float64
	measureUnit  entities.MeasureUnit
	location     entities.StorageLocation
	recurring    bool
	shelfLife    int
}

// The preset memories a new user starts with, so suggestions work before
// the app has learned anything.
var starterPack = []starterItem{
	{"Fresh Milk", "🥛", 1, 1, entities.UnitLiters, entities.LocationFridge, true, 6},
	{"Eggs", "🥚", 6, 0, entities.UnitPieces, entities.LocationFridge, true, 20},
	{"Yogurt", "🥣", 2, 125, entities.UnitGrams, entities.LocationFridge, true, 14},
	{"Butter", "🧈", 1, 250, entities.UnitGrams, entities.LocationFridge, false, 60},
	{"Chicken Breast", "🍗", 1, 400, entities.UnitGrams, entities.LocationFridge, false, 3},
	{"Salmon", "🐟", 1, 200, entities.UnitGrams, entities.LocationFridge, false, 2},
	{"Parmesan", "🧀", 1, 300, entities.UnitGrams, entities.LocationFridge, true, 45},
	{"Salad", "🥬", 1, 0, entities.UnitPieces, entities.LocationFridge, true, 4},
	{"Bananas", "🍌", 4, 0, entities.UnitPieces, entities.LocationPantry, true, 5},
	{"Apples", "🍎", 4, 0, entities.UnitPieces, entities.LocationFridge, true, 14},
	{"Tomatoes", "🍅", 6, 0, entities.UnitPieces, entities.LocationFridge, true, 7},
	{"Pasta", "🍝", 1, 500, entities.UnitGrams, entities.LocationPantry, true, 730},
	{"Bread", "🍞", 1, 0, entities.UnitPieces, entities.LocationPantry, true, 3},
	{"Canned Tuna", "🥫", 3, 80, entities.UnitGrams, entities.LocationPantry, false, 1000},
	{"Coffee", "☕️", 1, 250, entities.UnitGrams, entities.LocationPantry, true, 180},
	{"Peas", "🟢", 1, 450, entities.UnitGrams, entities.LocationFreezer, false, 365},
	{"Spinach", "🍃", 1, 450, entities.UnitGrams, entities.LocationFreezer, false, 365},
	{"Ice Cream", "🍦", 1, 500, entities.UnitGrams, entities.LocationFreezer, false, 180},
}

// SeedStarterPack preloads the starter memories for a user. It is a no-op
// once the user has any memory record, so it is safe to call on every
// registration or startup.
func SeedStarterPack(ctx context.Context, frequentRepository FrequentRepository, clock utils.Clock, userID uuid.UUID) error {
	count, err := frequentRepository.CountByUser(ctx, userID.String())
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := clock.Now()
	for _, preset := range starterPack {
		shelfLife := preset.shelfLife
		item := &entities.FrequentItem{
			ID:                  uuid.New(),
			UserID:              userID,
			NameKey:             utils.NormalizeName(preset.name),
			Name:                preset.name,
			Emoji:               preset.emoji,
			DefaultQuantity:     preset.quantity,
			DefaultMeasureValue: preset.measureValue,
			DefaultMeasureUnit:  preset.measureUnit,
			DefaultLocation:     preset.location,
			IsRecurring:         preset.recurring,
			ShelfLifeDays:       &shelfLife,
			LastUsed:            now,
		}
		if err := frequentRepository.Insert(ctx, item); err != nil {
			return err
		}
	}

	return nil
}
