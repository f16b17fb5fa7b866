package entities

import (
	"time"

	"github.com/google/uuid"
)

type ShoppingEntry struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Name        string    `json:"name"`
	IsCompleted bool      `json:"is_completed"`
	AddedDate   time.Time `json:"added_date"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
