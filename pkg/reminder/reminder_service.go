package reminder

import (
	"buddyfridge/domain"
	"buddyfridge/entities"
	"buddyfridge/internal/utils"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	// ReminderService derives absolute-time reminder triggers from a batch's
	// expiry date and the user's preferences, and keeps the persisted set in
	// sync with batch mutations. Schedule is always a full cancel-and-replace;
	// incremental patching would let stale triggers drift out of sync.
	ReminderService interface {
		ComputeReminders(batch *entities.FoodBatch, prefs domain.ReminderPreferences, now time.Time) []domain.ReminderTrigger
		Schedule(ctx context.Context, batch *entities.FoodBatch, prefs domain.ReminderPreferences) error
		Reschedule(ctx context.Context, batch *entities.FoodBatch, prefs domain.ReminderPreferences) error
		Cancel(ctx context.Context, batchID uuid.UUID) error

		PreferencesFor(ctx context.Context, userID string) (domain.ReminderPreferences, error)
		UpdatePreferences(ctx context.Context, userID string, req domain.UpdatePreferencesRequest) (domain.ReminderPreferences, error)
	}

	reminderService struct {
		reminderRepository ReminderRepository
		clock              utils.Clock
		location           *time.Location
	}
)

const (
	sameDayHour    = 9
	daysBeforeHour = 18
)

func NewReminderService(reminderRepository ReminderRepository, clock utils.Clock, location *time.Location) ReminderService {
	if location == nil {
		location = time.Local
	}
	return &reminderService{
		reminderRepository: reminderRepository,
		clock:              clock,
		location:           location,
	}
}

// ComputeReminders maps (expiryDate, preferences) to triggers. Freezer
// batches and batches without an expiry date yield none; frozen time is
// considered stopped.
func (s *reminderService) ComputeReminders(batch *entities.FoodBatch, prefs domain.ReminderPreferences, now time.Time) []domain.ReminderTrigger {
	if !prefs.Enabled || batch.Location == entities.LocationFreezer || batch.ExpiryDate == nil {
		return nil
	}

	expiry := batch.ExpiryDate.In(s.location)
	var triggers []domain.ReminderTrigger

	if prefs.SameDay {
		y, m, d := expiry.Date()
		triggers = append(triggers, domain.ReminderTrigger{
			BatchID: batch.ID,
			Key:     entities.ReminderKeyToday,
			FireAt:  time.Date(y, m, d, sameDayHour, 0, 0, 0, s.location),
			Title:   "Expires today! ⚠️",
			Body:    fmt.Sprintf("'%s %s' expires today. Use it now!", batch.Emoji, batch.Name),
		})
	}

	offsets := []struct {
		days    int
		key     string
		enabled bool
		title   string
		body    string
	}{
		{
			days:    1,
			key:     entities.ReminderKeyOneDay,
			enabled: prefs.OneDayBefore,
			title:   "Expires tomorrow 🕒",
			body:    fmt.Sprintf("Remember: '%s %s' expires tomorrow.", batch.Emoji, batch.Name),
		},
		{
			days:    5,
			key:     entities.ReminderKeyFiveDays,
			enabled: prefs.FiveDaysBefore,
			title:   "Expires in 5 days 📅",
			body:    fmt.Sprintf("Heads up: '%s %s' expires in 5 days.", batch.Emoji, batch.Name),
		},
	}

	for _, offset := range offsets {
		if !offset.enabled {
			continue
		}
		target := utils.AddDays(expiry, -offset.days)
		// Never schedule a reminder strictly in the past.
		if !target.After(now) {
			continue
		}
		y, m, d := target.Date()
		triggers = append(triggers, domain.ReminderTrigger{
			BatchID: batch.ID,
			Key:     offset.key,
			FireAt:  time.Date(y, m, d, daysBeforeHour, 0, 0, 0, s.location),
			Title:   offset.title,
			Body:    offset.body,
		})
	}

	return triggers
}

func (s *reminderService) Schedule(ctx context.Context, batch *entities.FoodBatch, prefs domain.ReminderPreferences) error {
	triggers := s.ComputeReminders(batch, prefs, s.clock.Now())

	reminders := make([]*entities.Reminder, 0, len(triggers))
	for _, trigger := range triggers {
		reminders = append(reminders, &entities.Reminder{
			ID:      uuid.New(),
			BatchID: trigger.BatchID,
			Key:     trigger.Key,
			UserID:  batch.UserID,
			FireAt:  trigger.FireAt,
			Title:   trigger.Title,
			Body:    trigger.Body,
		})
	}

	if err := s.reminderRepository.ReplaceForBatch(ctx, batch.ID, reminders); err != nil {
		return domain.ErrDispatchUnavailable
	}
	return nil
}

// Reschedule is a full replace, identical to Schedule, so calling it twice
// with an unchanged expiry settles on the same reminder set.
func (s *reminderService) Reschedule(ctx context.Context, batch *entities.FoodBatch, prefs domain.ReminderPreferences) error {
	return s.Schedule(ctx, batch, prefs)
}

func (s *reminderService) Cancel(ctx context.Context, batchID uuid.UUID) error {
	if err := s.reminderRepository.DeleteForBatch(ctx, batchID); err != nil {
		return domain.ErrDispatchUnavailable
	}
	return nil
}

// PreferencesFor returns the stored toggles, falling back to the defaults
// for users who never touched the settings.
func (s *reminderService) PreferencesFor(ctx context.Context, userID string) (domain.ReminderPreferences, error) {
	prefs, err := s.reminderRepository.GetPreferences(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.DefaultReminderPreferences(), nil
		}
		return domain.ReminderPreferences{}, err
	}

	return domain.ReminderPreferences{
		Enabled:        prefs.Enabled,
		SameDay:        prefs.SameDay,
		OneDayBefore:   prefs.OneDayBefore,
		FiveDaysBefore: prefs.FiveDaysBefore,
	}, nil
}

func (s *reminderService) UpdatePreferences(ctx context.Context, userID string, req domain.UpdatePreferencesRequest) (domain.ReminderPreferences, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ReminderPreferences{}, domain.ErrParseUUID
	}

	stored, err := s.reminderRepository.GetPreferences(ctx, userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ReminderPreferences{}, err
		}
		defaults := domain.DefaultReminderPreferences()
		stored = &entities.NotificationPreference{
			ID:             uuid.New(),
			UserID:         userUUID,
			Enabled:        defaults.Enabled,
			SameDay:        defaults.SameDay,
			OneDayBefore:   defaults.OneDayBefore,
			FiveDaysBefore: defaults.FiveDaysBefore,
		}
	}

	if req.Enabled != nil {
		stored.Enabled = *req.Enabled
	}
	if req.SameDay != nil {
		stored.SameDay = *req.SameDay
	}
	if req.OneDayBefore != nil {
		stored.OneDayBefore = *req.OneDayBefore
	}
	if req.FiveDaysBefore != nil {
		stored.FiveDaysBefore = *req.FiveDaysBefore
	}

	if err := s.reminderRepository.SavePreferences(ctx, stored); err != nil {
		return domain.ReminderPreferences{}, err
	}

	return domain.ReminderPreferences{
		Enabled:        stored.Enabled,
		SameDay:        stored.SameDay,
		OneDayBefore:   stored.OneDayBefore,
		FiveDaysBefore: stored.FiveDaysBefore,
	}, nil
}
