package memory

import (
	"buddyfridge/domain"
	"buddyfridge/entities"
	"buddyfridge/internal/utils"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	// FrequentService maintains one learned record per normalized product
	// name. RecordUsage is invoked on every batch save so the next entry of
	// the same product can be prefilled with the last-used defaults.
	FrequentService interface {
		RecordUsage(ctx context.Context, batch *entities.FoodBatch) error
		Touch(ctx context.Context, userID string, name string) error
		Suggest(ctx context.Context, userID string, partialName string) ([]domain.FrequentItemResponse, error)
		List(ctx context.Context, userID string) ([]domain.FrequentItemResponse, error)
		Forget(ctx context.Context, userID string, name string) error
	}

	frequentService struct {
		frequentRepository FrequentRepository
		clock              utils.Clock
	}
)

func NewFrequentService(frequentRepository FrequentRepository, clock utils.Clock) FrequentService {
	return &frequentService{
		frequentRepository: frequentRepository,
		clock:              clock,
	}
}

func (s *frequentService) RecordUsage(ctx context.Context, batch *entities.FoodBatch) error {
	now := s.clock.Now()
	nameKey := utils.NormalizeName(batch.Name)

	// Degenerate estimates (expiry today or in the past) are discarded so
	// they never overwrite a previously learned shelf life.
	var shelfLife *int
	if batch.ExpiryDate != nil {
		if days := utils.DaysBetween(now, *batch.ExpiryDate); days > 0 {
			shelfLife = &days
		}
	}

	existing, err := s.frequentRepository.GetByNameKey(ctx, batch.UserID.String(), nameKey)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return s.frequentRepository.Insert(ctx, &entities.FrequentItem{
			ID:                  uuid.New(),
			UserID:              batch.UserID,
			NameKey:             nameKey,
			Name:                batch.Name,
			Emoji:               batch.Emoji,
			DefaultQuantity:     batch.Quantity,
			DefaultMeasureValue: batch.MeasureValue,
			DefaultMeasureUnit:  batch.MeasureUnit,
			DefaultLocation:     batch.Location,
			IsRecurring:         batch.IsRecurring,
			ShelfLifeDays:       shelfLife,
			LastUsed:            now,
		})
	}

	existing.Name = batch.Name
	existing.Emoji = batch.Emoji
	existing.DefaultQuantity = batch.Quantity
	existing.DefaultMeasureValue = batch.MeasureValue
	existing.DefaultMeasureUnit = batch.MeasureUnit
	existing.DefaultLocation = batch.Location
	existing.IsRecurring = batch.IsRecurring
	existing.LastUsed = now
	if shelfLife != nil {
		existing.ShelfLifeDays = shelfLife
	}

	return s.frequentRepository.Save(ctx, existing)
}

// Touch refreshes LastUsed without touching the learned defaults. Used by
// the quick consume/add-one-more paths where no full form was filled in.
func (s *frequentService) Touch(ctx context.Context, userID string, name string) error {
	item, err := s.frequentRepository.GetByNameKey(ctx, userID, utils.NormalizeName(name))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	item.LastUsed = s.clock.Now()
	return s.frequentRepository.Save(ctx, item)
}

func (s *frequentService) Suggest(ctx context.Context, userID string, partialName string) ([]domain.FrequentItemResponse, error) {
	partialKey := utils.NormalizeName(partialName)
	if partialKey == "" {
		return nil, nil
	}

	items, err := s.frequentRepository.SearchByName(ctx, userID, partialKey)
	if err != nil {
		return nil, err
	}

	var response []domain.FrequentItemResponse
	for _, item := range items {
		// An exact match means the name is already fully typed; suggesting
		// it back adds nothing.
		if item.NameKey == partialKey {
			continue
		}
		response = append(response, s.toResponse(item))
	}

	return response, nil
}

func (s *frequentService) List(ctx context.Context, userID string) ([]domain.FrequentItemResponse, error) {
	items, err := s.frequentRepository.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	var response []domain.FrequentItemResponse
	for _, item := range items {
		response = append(response, s.toResponse(item))
	}

	return response, nil
}

func (s *frequentService) Forget(ctx context.Context, userID string, name string) error {
	nameKey := utils.NormalizeName(name)

	if _, err := s.frequentRepository.GetByNameKey(ctx, userID, nameKey); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrMemoryNotFound
		}
		return err
	}

	return s.frequentRepository.Delete(ctx, userID, nameKey)
}

func (s *frequentService) toResponse(item *entities.FrequentItem) domain.FrequentItemResponse {
	response := domain.FrequentItemResponse{
		Name:            item.Name,
		Emoji:           item.Emoji,
		DefaultQuantity: item.DefaultQuantity,
		MeasureValue:    item.DefaultMeasureValue,
		MeasureUnit:     string(item.DefaultMeasureUnit),
		Location:        string(item.DefaultLocation),
		IsRecurring:     item.IsRecurring,
		ShelfLifeDays:   item.ShelfLifeDays,
		LastUsed:        item.LastUsed,
	}

	if item.ShelfLifeDays != nil {
		projected := utils.AddDays(s.clock.Now(), *item.ShelfLifeDays)
		response.SuggestedExpiry = &projected
	}

	return response
}
