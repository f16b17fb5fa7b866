package entities

import (
	"time"

	"github.com/google/uuid"
)

// Reminder keys. The (batch_id, key) pair is the identifier external
// dispatchers must preserve for cancellation to work.
const (
	ReminderKeyToday    = "today"
	ReminderKeyOneDay   = "1day"
	ReminderKeyFiveDays = "5days"
)

type Reminder struct {
	ID      uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	BatchID uuid.UUID  `gorm:"uniqueIndex:idx_reminders_batch_key" json:"batch_id"`
	Key     string     `gorm:"uniqueIndex:idx_reminders_batch_key" json:"key"`
	UserID  uuid.UUID  `json:"user_id"`
	FireAt  time.Time  `gorm:"index" json:"fire_at"`
	Title   string     `json:"title"`
	Body    string     `json:"body"`
	SentAt  *time.Time `json:"sent_at,omitempty"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
