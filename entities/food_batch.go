package entities

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type StorageLocation string

const (
	LocationFridge  StorageLocation = "fridge"
	LocationFreezer StorageLocation = "freezer"
	LocationPantry  StorageLocation = "pantry"
)

func (l StorageLocation) Valid() bool {
	switch l {
	case LocationFridge, LocationFreezer, LocationPantry:
		return true
	}
	return false
}

type MeasureUnit string

const (
	UnitPieces      MeasureUnit = "pieces"
	UnitGrams       MeasureUnit = "grams"
	UnitKilograms   MeasureUnit = "kilograms"
	UnitLiters      MeasureUnit = "liters"
	UnitMilliliters MeasureUnit = "milliliters"
)

func (u MeasureUnit) Valid() bool {
	switch u {
	case UnitPieces, UnitGrams, UnitKilograms, UnitLiters, UnitMilliliters:
		return true
	}
	return false
}

func (u MeasureUnit) Label() string {
	switch u {
	case UnitGrams:
		return "g"
	case UnitKilograms:
		return "kg"
	case UnitLiters:
		return "L"
	case UnitMilliliters:
		return "ml"
	default:
		return ""
	}
}

type BatchStatus string

const (
	StatusAvailable BatchStatus = "available"
	StatusConsumed  BatchStatus = "consumed"
	StatusThrown    BatchStatus = "thrown"
	StatusToBuy     BatchStatus = "to_buy"
)

type FoodBatch struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID       uuid.UUID       `json:"user_id"`
	Name         string          `json:"name"`
	NameKey      string          `gorm:"index" json:"-"`
	Emoji        string          `json:"emoji"`
	Quantity     int             `json:"quantity"`
	ExpiryDate   *time.Time      `json:"expiry_date,omitempty"`
	AddedDate    time.Time       `json:"added_date"`
	Location     StorageLocation `json:"location"`
	IsRecurring  bool            `json:"is_recurring"`
	MeasureValue float64         `json:"measure_value"`
	MeasureUnit  MeasureUnit     `json:"measure_unit"`
	IsOpened     bool            `json:"is_opened"`
	Status       BatchStatus     `json:"status"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}

// IsExpired reports whether the batch has passed its expiry date. Batches
// without an expiry date never expire.
func (b *FoodBatch) IsExpired(now time.Time) bool {
	return b.Status == StatusAvailable && b.ExpiryDate != nil && b.ExpiryDate.Before(now)
}

// FormattedMeasure renders "500 g" style labels. Plain pieces carry no
// magnitude, so the label is empty.
func (b *FoodBatch) FormattedMeasure() string {
	if b.MeasureUnit == UnitPieces {
		return ""
	}
	return fmt.Sprintf("%g %s", b.MeasureValue, b.MeasureUnit.Label())
}
