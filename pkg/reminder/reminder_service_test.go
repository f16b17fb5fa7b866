package reminder

import (
	"buddyfridge/domain"
	"buddyfridge/entities"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

type fakeReminderRepository struct {
	reminders map[uuid.UUID][]*entities.Reminder
	prefs     map[string]*entities.NotificationPreference
	failAll   bool
}

func newFakeReminderRepository() *fakeReminderRepository {
	return &fakeReminderRepository{
		reminders: make(map[uuid.UUID][]*entities.Reminder),
		prefs:     make(map[string]*entities.NotificationPreference),
	}
}

func (f *fakeReminderRepository) ReplaceForBatch(_ context.Context, batchID uuid.UUID, reminders []*entities.Reminder) error {
	if f.failAll {
		return errors.New("storage down")
	}
	f.reminders[batchID] = reminders
	return nil
}

func (f *fakeReminderRepository) DeleteForBatch(_ context.Context, batchID uuid.UUID) error {
	if f.failAll {
		return errors.New("storage down")
	}
	delete(f.reminders, batchID)
	return nil
}

func (f *fakeReminderRepository) ListForBatch(_ context.Context, batchID uuid.UUID) ([]*entities.Reminder, error) {
	return f.reminders[batchID], nil
}

func (f *fakeReminderRepository) ListDue(_ context.Context, now time.Time) ([]*entities.Reminder, error) {
	var due []*entities.Reminder
	for _, set := range f.reminders {
		for _, r := range set {
			if r.SentAt == nil && !r.FireAt.After(now) {
				due = append(due, r)
			}
		}
	}
	return due, nil
}

func (f *fakeReminderRepository) MarkSent(_ context.Context, id uuid.UUID, at time.Time) error {
	for _, set := range f.reminders {
		for _, r := range set {
			if r.ID == id {
				r.SentAt = &at
			}
		}
	}
	return nil
}

func (f *fakeReminderRepository) GetPreferences(_ context.Context, userID string) (*entities.NotificationPreference, error) {
	prefs, ok := f.prefs[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return prefs, nil
}

func (f *fakeReminderRepository) SavePreferences(_ context.Context, prefs *entities.NotificationPreference) error {
	f.prefs[prefs.UserID.String()] = prefs
	return nil
}

func testBatch(location entities.StorageLocation, expiry *time.Time) *entities.FoodBatch {
	return &entities.FoodBatch{
		ID:         uuid.New(),
		UserID:     uuid.New(),
		Name:       "Fresh Milk",
		Emoji:      "🥛",
		Quantity:   1,
		ExpiryDate: expiry,
		Location:   location,
		Status:     entities.StatusAvailable,
	}
}

func allPrefs() domain.ReminderPreferences {
	return domain.ReminderPreferences{
		Enabled:        true,
		SameDay:        true,
		OneDayBefore:   true,
		FiveDaysBefore: true,
	}
}

func TestComputeRemindersAllToggles(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	expiry := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)
	svc := NewReminderService(newFakeReminderRepository(), fixedClock{now}, time.UTC)

	triggers := svc.ComputeReminders(testBatch(entities.LocationFridge, &expiry), allPrefs(), now)

	if len(triggers) != 3 {
		t.Fatalf("expected 3 triggers, got %d", len(triggers))
	}

	want := map[string]time.Time{
		entities.ReminderKeyToday:    time.Date(2025, 3, 11, 9, 0, 0, 0, time.UTC),
		entities.ReminderKeyOneDay:   time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC),
		entities.ReminderKeyFiveDays: time.Date(2025, 3, 6, 18, 0, 0, 0, time.UTC),
	}
	for _, trigger := range triggers {
		expected, ok := want[trigger.Key]
		if !ok {
			t.Fatalf("unexpected trigger key %q", trigger.Key)
		}
		if !trigger.FireAt.Equal(expected) {
			t.Errorf("trigger %q fires at %s, want %s", trigger.Key, trigger.FireAt, expected)
		}
	}
}

func TestComputeRemindersSkipsPastOffsets(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	expiry := time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)
	svc := NewReminderService(newFakeReminderRepository(), fixedClock{now}, time.UTC)

	triggers := svc.ComputeReminders(testBatch(entities.LocationFridge, &expiry), allPrefs(), now)

	// Only the same-day reminder survives: both offsets land today or
	// earlier.
	if len(triggers) != 1 {
		t.Fatalf("expected 1 trigger, got %d", len(triggers))
	}
	if triggers[0].Key != entities.ReminderKeyToday {
		t.Errorf("expected %q, got %q", entities.ReminderKeyToday, triggers[0].Key)
	}
}

func TestComputeRemindersFreezerYieldsNone(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	expiry := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)
	svc := NewReminderService(newFakeReminderRepository(), fixedClock{now}, time.UTC)

	if triggers := svc.ComputeReminders(testBatch(entities.LocationFreezer, &expiry), allPrefs(), now); len(triggers) != 0 {
		t.Fatalf("expected no triggers for freezer batch, got %d", len(triggers))
	}
}

func TestComputeRemindersDisabledYieldsNone(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	expiry := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)
	svc := NewReminderService(newFakeReminderRepository(), fixedClock{now}, time.UTC)

	prefs := allPrefs()
	prefs.Enabled = false
	if triggers := svc.ComputeReminders(testBatch(entities.LocationFridge, &expiry), prefs, now); len(triggers) != 0 {
		t.Fatalf("expected no triggers when disabled, got %d", len(triggers))
	}

	if triggers := svc.ComputeReminders(testBatch(entities.LocationFridge, nil), allPrefs(), now); len(triggers) != 0 {
		t.Fatalf("expected no triggers without expiry date, got %d", len(triggers))
	}
}

func TestScheduleIsIdempotentReplace(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	expiry := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)
	repo := newFakeReminderRepository()
	svc := NewReminderService(repo, fixedClock{now}, time.UTC)
	batch := testBatch(entities.LocationFridge, &expiry)

	if err := svc.Schedule(context.Background(), batch, allPrefs()); err != nil {
		t.Fatalf("schedule: %v", err)
	}
	if err := svc.Reschedule(context.Background(), batch, allPrefs()); err != nil {
		t.Fatalf("reschedule: %v", err)
	}

	stored, _ := repo.ListForBatch(context.Background(), batch.ID)
	if len(stored) != 3 {
		t.Fatalf("expected 3 reminders after reschedule, got %d", len(stored))
	}
}

func TestScheduleRepositoryFailure(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	expiry := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)
	repo := newFakeReminderRepository()
	repo.failAll = true
	svc := NewReminderService(repo, fixedClock{now}, time.UTC)

	err := svc.Schedule(context.Background(), testBatch(entities.LocationFridge, &expiry), allPrefs())
	if !errors.Is(err, domain.ErrDispatchUnavailable) {
		t.Fatalf("expected ErrDispatchUnavailable, got %v", err)
	}
}

func TestCancelRemovesReminders(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	expiry := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)
	repo := newFakeReminderRepository()
	svc := NewReminderService(repo, fixedClock{now}, time.UTC)
	batch := testBatch(entities.LocationFridge, &expiry)

	if err := svc.Schedule(context.Background(), batch, allPrefs()); err != nil {
		t.Fatalf("schedule: %v", err)
	}
	if err := svc.Cancel(context.Background(), batch.ID); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	stored, _ := repo.ListForBatch(context.Background(), batch.ID)
	if len(stored) != 0 {
		t.Fatalf("expected no reminders after cancel, got %d", len(stored))
	}
}

func TestPreferencesForDefaults(t *testing.T) {
	svc := NewReminderService(newFakeReminderRepository(), fixedClock{time.Now()}, time.UTC)

	prefs, err := svc.PreferencesFor(context.Background(), uuid.NewString())
	if err != nil {
		t.Fatalf("preferences: %v", err)
	}

	want := domain.DefaultReminderPreferences()
	if prefs != want {
		t.Fatalf("expected defaults %+v, got %+v", want, prefs)
	}
}

func TestUpdatePreferencesPartialPatch(t *testing.T) {
	repo := newFakeReminderRepository()
	svc := NewReminderService(repo, fixedClock{time.Now()}, time.UTC)
	userID := uuid.NewString()

	on := true
	prefs, err := svc.UpdatePreferences(context.Background(), userID, domain.UpdatePreferencesRequest{FiveDaysBefore: &on})
	if err != nil {
		t.Fatalf("update preferences: %v", err)
	}

	if !prefs.FiveDaysBefore {
		t.Error("five-days toggle should be on")
	}
	// Untouched toggles keep their defaults.
	if !prefs.Enabled || !prefs.SameDay || !prefs.OneDayBefore {
		t.Errorf("defaults lost: %+v", prefs)
	}
}
