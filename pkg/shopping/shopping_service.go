package shopping

import (
	"buddyfridge/domain"
	"buddyfridge/entities"
	"buddyfridge/internal/utils"
	"buddyfridge/pkg/batch"
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	// ShoppingService manages the shopping list. MoveToInventory is the
	// bridge back into the fridge: the entry becomes a real food batch and
	// leaves the list.
	ShoppingService interface {
		AddEntry(ctx context.Context, userID string, req domain.AddShoppingEntryRequest) (domain.ShoppingEntryResponse, error)
		GetEntries(ctx context.Context, userID string) ([]domain.ShoppingEntryResponse, error)
		ToggleEntry(ctx context.Context, userID string, entryID string) (domain.ShoppingEntryResponse, error)
		DeleteEntry(ctx context.Context, userID string, entryID string) error
		MoveToInventory(ctx context.Context, userID string, entryID string, req domain.MoveToInventoryRequest) (domain.BatchResponse, error)
	}

	shoppingService struct {
		shoppingRepository ShoppingRepository
		batchService       batch.BatchService
		clock              utils.Clock
	}
)

func NewShoppingService(shoppingRepository ShoppingRepository, batchService batch.BatchService, clock utils.Clock) ShoppingService {
	return &shoppingService{
		shoppingRepository: shoppingRepository,
		batchService:       batchService,
		clock:              clock,
	}
}

func (s *shoppingService) AddEntry(ctx context.Context, userID string, req domain.AddShoppingEntryRequest) (domain.ShoppingEntryResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ShoppingEntryResponse{}, domain.ErrParseUUID
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.ShoppingEntryResponse{}, domain.ErrEmptyShoppingName
	}

	entry := &entities.ShoppingEntry{
		ID:        uuid.New(),
		UserID:    userUUID,
		Name:      name,
		AddedDate: s.clock.Now(),
	}

	if err := s.shoppingRepository.Insert(ctx, entry); err != nil {
		return domain.ShoppingEntryResponse{}, err
	}

	return toResponse(entry), nil
}

func (s *shoppingService) GetEntries(ctx context.Context, userID string) ([]domain.ShoppingEntryResponse, error) {
	entries, err := s.shoppingRepository.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.ShoppingEntryResponse, 0, len(entries))
	for _, entry := range entries {
		response = append(response, toResponse(entry))
	}

	return response, nil
}

func (s *shoppingService) ToggleEntry(ctx context.Context, userID string, entryID string) (domain.ShoppingEntryResponse, error) {
	entry, err := s.ownedEntry(ctx, userID, entryID)
	if err != nil {
		return domain.ShoppingEntryResponse{}, err
	}

	entry.IsCompleted = !entry.IsCompleted
	if err := s.shoppingRepository.Update(ctx, entry); err != nil {
		return domain.ShoppingEntryResponse{}, err
	}

	return toResponse(entry), nil
}

func (s *shoppingService) DeleteEntry(ctx context.Context, userID string, entryID string) error {
	entry, err := s.ownedEntry(ctx, userID, entryID)
	if err != nil {
		return err
	}
	return s.shoppingRepository.Delete(ctx, entry)
}

// MoveToInventory creates a batch via the regular creation path, so the
// usual memory update and reminder scheduling both happen, then removes the
// entry from the list.
func (s *shoppingService) MoveToInventory(ctx context.Context, userID string, entryID string, req domain.MoveToInventoryRequest) (domain.BatchResponse, error) {
	entry, err := s.ownedEntry(ctx, userID, entryID)
	if err != nil {
		return domain.BatchResponse{}, err
	}

	created, err := s.batchService.CreateBatch(ctx, userID, domain.CreateBatchRequest{
		Name:         entry.Name,
		Emoji:        req.Emoji,
		Quantity:     req.Quantity,
		ExpiryDate:   req.ExpiryDate,
		Location:     req.Location,
		IsRecurring:  req.IsRecurring,
		MeasureValue: req.MeasureValue,
		MeasureUnit:  req.MeasureUnit,
	})
	if err != nil {
		return domain.BatchResponse{}, err
	}

	if err := s.shoppingRepository.Delete(ctx, entry); err != nil {
		return domain.BatchResponse{}, err
	}

	return created, nil
}

func (s *shoppingService) ownedEntry(ctx context.Context, userID string, entryID string) (*entities.ShoppingEntry, error) {
	if _, err := uuid.Parse(entryID); err != nil {
		return nil, domain.ErrParseUUID
	}

	entry, err := s.shoppingRepository.GetByID(ctx, entryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrShoppingEntryNotFound
		}
		return nil, err
	}

	if entry.UserID.String() != userID {
		return nil, domain.ErrUserNotAllowed
	}

	return entry, nil
}

func toResponse(entry *entities.ShoppingEntry) domain.ShoppingEntryResponse {
	return domain.ShoppingEntryResponse{
		ID:          entry.ID.String(),
		Name:        entry.Name,
		IsCompleted: entry.IsCompleted,
		AddedDate:   entry.AddedDate,
	}
}
