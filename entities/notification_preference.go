package entities

import "github.com/google/uuid"

// NotificationPreference holds the per-user reminder toggles. Defaults are
// applied on first read: enabled, same-day and one-day on, five-days off.
type NotificationPreference struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID         uuid.UUID `gorm:"uniqueIndex" json:"user_id"`
	Enabled        bool      `json:"enabled"`
	SameDay        bool      `json:"same_day"`
	OneDayBefore   bool      `json:"one_day_before"`
	FiveDaysBefore bool      `json:"five_days_before"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
