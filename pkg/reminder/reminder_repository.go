package reminder

import (
	"buddyfridge/entities"
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ReminderRepository interface {
		ReplaceForBatch(ctx context.Context, batchID uuid.UUID, reminders []*entities.Reminder) error
		DeleteForBatch(ctx context.Context, batchID uuid.UUID) error
		ListForBatch(ctx context.Context, batchID uuid.UUID) ([]*entities.Reminder, error)
		ListDue(ctx context.Context, now time.Time) ([]*entities.Reminder, error)
		MarkSent(ctx context.Context, id uuid.UUID, at time.Time) error

		GetPreferences(ctx context.Context, userID string) (*entities.NotificationPreference, error)
		SavePreferences(ctx context.Context, prefs *entities.NotificationPreference) error
	}

	reminderRepository struct {
		db *gorm.DB
	}
)

func NewReminderRepository(db *gorm.DB) ReminderRepository {
	return &reminderRepository{db: db}
}

// ReplaceForBatch swaps the whole reminder set for a batch in one
// transaction, so a stale trigger can never outlive a reschedule.
func (r *reminderRepository) ReplaceForBatch(ctx context.Context, batchID uuid.UUID, reminders []*entities.Reminder) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("batch_id = ?", batchID).Delete(&entities.Reminder{}).Error; err != nil {
			return err
		}
		if len(reminders) == 0 {
			return nil
		}
		return tx.Create(reminders).Error
	})
}

func (r *reminderRepository) DeleteForBatch(ctx context.Context, batchID uuid.UUID) error {
	return r.db.WithContext(ctx).Unscoped().Where("batch_id = ?", batchID).Delete(&entities.Reminder{}).Error
}

func (r *reminderRepository) ListForBatch(ctx context.Context, batchID uuid.UUID) ([]*entities.Reminder, error) {
	var reminders []*entities.Reminder
	if err := r.db.WithContext(ctx).
		Where("batch_id = ?", batchID).
		Order("fire_at asc").
		Find(&reminders).Error; err != nil {
		return nil, err
	}
	return reminders, nil
}

func (r *reminderRepository) ListDue(ctx context.Context, now time.Time) ([]*entities.Reminder, error) {
	var reminders []*entities.Reminder
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("sent_at IS NULL AND fire_at <= ?", now).
		Order("fire_at asc").
		Find(&reminders).Error; err != nil {
		return nil, err
	}
	return reminders, nil
}

func (r *reminderRepository) MarkSent(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.db.WithContext(ctx).Model(&entities.Reminder{}).
		Where("id = ?", id).
		Update("sent_at", at).Error
}

func (r *reminderRepository) GetPreferences(ctx context.Context, userID string) (*entities.NotificationPreference, error) {
	var prefs entities.NotificationPreference
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&prefs).Error; err != nil {
		return nil, err
	}
	return &prefs, nil
}

func (r *reminderRepository) SavePreferences(ctx context.Context, prefs *entities.NotificationPreference) error {
	return r.db.WithContext(ctx).Save(prefs).Error
}
