package reminder

import (
	"buddyfridge/internal/utils"
	"context"
	"time"

	"github.com/gofiber/fiber/v2/log"
)

// Worker scans for due reminders on a fixed interval and hands them to the
// dispatcher. A failed dispatch is logged and retried on the next cycle;
// the reminder row stays unsent until delivery succeeds.
type Worker struct {
	reminderRepository ReminderRepository
	dispatcher         Dispatcher
	clock              utils.Clock
}

func NewWorker(reminderRepository ReminderRepository, dispatcher Dispatcher, clock utils.Clock) *Worker {
	return &Worker{
		reminderRepository: reminderRepository,
		dispatcher:         dispatcher,
		clock:              clock,
	}
}

func (w *Worker) Start(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Infof("reminder worker started, interval %s", interval)

	if err := w.RunOnce(ctx); err != nil {
		log.Errorf("reminder cycle failed: %v", err)
	}

	for {
		select {
		case <-ctx.Done():
			log.Info("reminder worker stopped")
			return
		case <-ticker.C:
			if err := w.RunOnce(ctx); err != nil {
				log.Errorf("reminder cycle failed: %v", err)
			}
		}
	}
}

func (w *Worker) RunOnce(ctx context.Context) error {
	now := w.clock.Now()

	due, err := w.reminderRepository.ListDue(ctx, now)
	if err != nil {
		return err
	}

	for _, reminder := range due {
		if reminder.User == nil || reminder.User.Email == "" {
			log.Warnf("reminder %s has no deliverable user, skipping", reminder.ID)
			continue
		}

		if err := w.dispatcher.Dispatch(reminder.User.Email, reminder.Title, reminder.Body); err != nil {
			log.Errorf("failed to dispatch reminder %s (%s): %v", reminder.ID, reminder.Key, err)
			continue
		}

		if err := w.reminderRepository.MarkSent(ctx, reminder.ID, now); err != nil {
			log.Errorf("failed to mark reminder %s as sent: %v", reminder.ID, err)
		}
	}

	return nil
}
