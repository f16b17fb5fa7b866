package entities

import (
	"time"

	"github.com/google/uuid"
)

// FrequentItem is one learned memory record per normalized product name.
// It stores the defaults used the last time the product was saved so the
// next entry can be prefilled.
type FrequentItem struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID              uuid.UUID       `gorm:"uniqueIndex:idx_frequent_items_user_name" json:"user_id"`
	NameKey             string          `gorm:"uniqueIndex:idx_frequent_items_user_name" json:"-"`
	Name                string          `json:"name"`
	Emoji               string          `json:"emoji"`
	DefaultQuantity     int             `json:"default_quantity"`
	DefaultMeasureValue float64         `json:"default_measure_value"`
	DefaultMeasureUnit  MeasureUnit     `json:"default_measure_unit"`
	DefaultLocation     StorageLocation `json:"default_location"`
	IsRecurring         bool            `json:"is_recurring"`
	ShelfLifeDays       *int            `json:"shelf_life_days,omitempty"`
	LastUsed            time.Time       `json:"last_used"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
