package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	MessageSuccessGetPreferences    = "notification preferences retrieved successfully"
	MessageSuccessUpdatePreferences = "notification preferences updated successfully"

	MessageFailedGetPreferences    = "failed to retrieve notification preferences"
	MessageFailedUpdatePreferences = "failed to update notification preferences"

	ErrDispatchUnavailable = errors.New("notification dispatch unavailable")
)

type (
	// ReminderPreferences is a plain value passed into the scheduler at call
	// time. Callers fetch the current preferences first; the scheduler never
	// reads them from ambient state.
	ReminderPreferences struct {
		Enabled        bool `json:"enabled"`
		SameDay        bool `json:"same_day"`
		OneDayBefore   bool `json:"one_day_before"`
		FiveDaysBefore bool `json:"five_days_before"`
	}

	ReminderTrigger struct {
		BatchID uuid.UUID `json:"batch_id"`
		Key     string    `json:"key"`
		FireAt  time.Time `json:"fire_at"`
		Title   string    `json:"title"`
		Body    string    `json:"body"`
	}

	UpdatePreferencesRequest struct {
		Enabled        *bool `json:"enabled"`
		SameDay        *bool `json:"same_day"`
		OneDayBefore   *bool `json:"one_day_before"`
		FiveDaysBefore *bool `json:"five_days_before"`
	}
)

func DefaultReminderPreferences() ReminderPreferences {
	return ReminderPreferences{
		Enabled:        true,
		SameDay:        true,
		OneDayBefore:   true,
		FiveDaysBefore: false,
	}
}
