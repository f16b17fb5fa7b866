package memory

import (
	"buddyfridge/entities"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

type fakeFrequentRepository struct {
	items map[string]*entities.FrequentItem
}

func newFakeFrequentRepository() *fakeFrequentRepository {
	return &fakeFrequentRepository{items: make(map[string]*entities.FrequentItem)}
}

func key(userID, nameKey string) string { return userID + "/" + nameKey }

func (f *fakeFrequentRepository) Insert(_ context.Context, item *entities.FrequentItem) error {
	f.items[key(item.UserID.String(), item.NameKey)] = item
	return nil
}

func (f *fakeFrequentRepository) Save(_ context.Context, item *entities.FrequentItem) error {
	f.items[key(item.UserID.String(), item.NameKey)] = item
	return nil
}

func (f *fakeFrequentRepository) GetByNameKey(_ context.Context, userID string, nameKey string) (*entities.FrequentItem, error) {
	item, ok := f.items[key(userID, nameKey)]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return item, nil
}

func (f *fakeFrequentRepository) Delete(_ context.Context, userID string, nameKey string) error {
	delete(f.items, key(userID, nameKey))
	return nil
}

func (f *fakeFrequentRepository) ListByUser(_ context.Context, userID string) ([]*entities.FrequentItem, error) {
	var items []*entities.FrequentItem
	for _, item := range f.items {
		if item.UserID.String() == userID {
			items = append(items, item)
		}
	}
	return items, nil
}

func (f *fakeFrequentRepository) SearchByName(_ context.Context, userID string, partialKey string) ([]*entities.FrequentItem, error) {
	var items []*entities.FrequentItem
	for _, item := range f.items {
		if item.UserID.String() == userID && strings.Contains(item.NameKey, partialKey) {
			items = append(items, item)
		}
	}
	return items, nil
}

func (f *fakeFrequentRepository) CountByUser(_ context.Context, userID string) (int64, error) {
	var count int64
	for _, item := range f.items {
		if item.UserID.String() == userID {
			count++
		}
	}
	return count, nil
}

func usageBatch(userID uuid.UUID, name string, expiry *time.Time) *entities.FoodBatch {
	return &entities.FoodBatch{
		ID:           uuid.New(),
		UserID:       userID,
		Name:         name,
		Emoji:        "🥛",
		Quantity:     2,
		ExpiryDate:   expiry,
		Location:     entities.LocationFridge,
		IsRecurring:  true,
		MeasureValue: 1,
		MeasureUnit:  entities.UnitLiters,
		Status:       entities.StatusAvailable,
	}
}

func TestRecordUsageLearnsShelfLife(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	repo := newFakeFrequentRepository()
	svc := NewFrequentService(repo, fixedClock{now})
	userID := uuid.New()

	expiry := now.AddDate(0, 0, 6)
	if err := svc.RecordUsage(context.Background(), usageBatch(userID, "Fresh Milk", &expiry)); err != nil {
		t.Fatalf("record usage: %v", err)
	}

	item, err := repo.GetByNameKey(context.Background(), userID.String(), "fresh milk")
	if err != nil {
		t.Fatalf("memory not stored: %v", err)
	}
	if item.ShelfLifeDays == nil || *item.ShelfLifeDays != 6 {
		t.Fatalf("expected shelf life 6, got %v", item.ShelfLifeDays)
	}
}

func TestRecordUsageKeepsShelfLifeOnDegenerateExpiry(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	repo := newFakeFrequentRepository()
	svc := NewFrequentService(repo, fixedClock{now})
	userID := uuid.New()

	expiry := now.AddDate(0, 0, 6)
	if err := svc.RecordUsage(context.Background(), usageBatch(userID, "Fresh Milk", &expiry)); err != nil {
		t.Fatalf("record usage: %v", err)
	}

	// Re-adding the product with an already-passed date must not wipe the
	// learned estimate.
	past := now.AddDate(0, 0, -1)
	if err := svc.RecordUsage(context.Background(), usageBatch(userID, "Fresh Milk", &past)); err != nil {
		t.Fatalf("record usage: %v", err)
	}

	item, _ := repo.GetByNameKey(context.Background(), userID.String(), "fresh milk")
	if item.ShelfLifeDays == nil || *item.ShelfLifeDays != 6 {
		t.Fatalf("expected shelf life to stay 6, got %v", item.ShelfLifeDays)
	}
}

func TestRecordUsageNormalizesName(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	repo := newFakeFrequentRepository()
	svc := NewFrequentService(repo, fixedClock{now})
	userID := uuid.New()

	if err := svc.RecordUsage(context.Background(), usageBatch(userID, "  Fresh MILK ", nil)); err != nil {
		t.Fatalf("record usage: %v", err)
	}
	if err := svc.RecordUsage(context.Background(), usageBatch(userID, "fresh milk", nil)); err != nil {
		t.Fatalf("record usage: %v", err)
	}

	count, _ := repo.CountByUser(context.Background(), userID.String())
	if count != 1 {
		t.Fatalf("variant spellings should share one memory, got %d", count)
	}
}

func TestSuggestExcludesExactMatch(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	repo := newFakeFrequentRepository()
	svc := NewFrequentService(repo, fixedClock{now})
	userID := uuid.New()

	if err := svc.RecordUsage(context.Background(), usageBatch(userID, "Milk", nil)); err != nil {
		t.Fatalf("record usage: %v", err)
	}
	if err := svc.RecordUsage(context.Background(), usageBatch(userID, "Milk Chocolate", nil)); err != nil {
		t.Fatalf("record usage: %v", err)
	}

	suggestions, err := svc.Suggest(context.Background(), userID.String(), "milk")
	if err != nil {
		t.Fatalf("suggest: %v", err)
	}

	if len(suggestions) != 1 {
		t.Fatalf("expected 1 suggestion, got %d", len(suggestions))
	}
	if suggestions[0].Name != "Milk Chocolate" {
		t.Errorf("expected partial match only, got %q", suggestions[0].Name)
	}
}

func TestSuggestProjectsExpiry(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	repo := newFakeFrequentRepository()
	svc := NewFrequentService(repo, fixedClock{now})
	userID := uuid.New()

	expiry := now.AddDate(0, 0, 6)
	if err := svc.RecordUsage(context.Background(), usageBatch(userID, "Fresh Milk", &expiry)); err != nil {
		t.Fatalf("record usage: %v", err)
	}

	suggestions, err := svc.Suggest(context.Background(), userID.String(), "fresh")
	if err != nil {
		t.Fatalf("suggest: %v", err)
	}
	if len(suggestions) != 1 {
		t.Fatalf("expected 1 suggestion, got %d", len(suggestions))
	}

	want := now.AddDate(0, 0, 6)
	if suggestions[0].SuggestedExpiry == nil || !suggestions[0].SuggestedExpiry.Equal(want) {
		t.Errorf("expected suggested expiry %s, got %v", want, suggestions[0].SuggestedExpiry)
	}
}

func TestTouchOnlyRefreshesLastUsed(t *testing.T) {
	start := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	repo := newFakeFrequentRepository()
	svc := NewFrequentService(repo, fixedClock{start})
	userID := uuid.New()

	if err := svc.RecordUsage(context.Background(), usageBatch(userID, "Milk", nil)); err != nil {
		t.Fatalf("record usage: %v", err)
	}

	later := start.Add(48 * time.Hour)
	laterSvc := NewFrequentService(repo, fixedClock{later})
	if err := laterSvc.Touch(context.Background(), userID.String(), "Milk"); err != nil {
		t.Fatalf("touch: %v", err)
	}

	item, _ := repo.GetByNameKey(context.Background(), userID.String(), "milk")
	if !item.LastUsed.Equal(later) {
		t.Errorf("expected last used %s, got %s", later, item.LastUsed)
	}
	if item.DefaultQuantity != 2 {
		t.Errorf("touch must not change learned defaults")
	}

	// Touching an unknown product is a no-op, not an error.
	if err := laterSvc.Touch(context.Background(), userID.String(), "Unknown"); err != nil {
		t.Fatalf("touch unknown: %v", err)
	}
}

func TestSeedStarterPackRunsOnce(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	repo := newFakeFrequentRepository()
	userID := uuid.New()

	if err := SeedStarterPack(context.Background(), repo, fixedClock{now}, userID); err != nil {
		t.Fatalf("seed: %v", err)
	}
	first, _ := repo.CountByUser(context.Background(), userID.String())
	if first == 0 {
		t.Fatal("starter pack should create memories")
	}

	if err := SeedStarterPack(context.Background(), repo, fixedClock{now}, userID); err != nil {
		t.Fatalf("second seed: %v", err)
	}
	second, _ := repo.CountByUser(context.Background(), userID.String())
	if second != first {
		t.Fatalf("seeding twice changed the count: %d vs %d", first, second)
	}
}
