package batch

import (
	"buddyfridge/domain"
	"buddyfridge/entities"
	"buddyfridge/internal/utils"
	"buddyfridge/pkg/buddy"
	"buddyfridge/pkg/memory"
	"buddyfridge/pkg/reminder"
	"context"
	"errors"
	"math"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	// BatchService owns the lifecycle of food batches: creation, edits,
	// consumption, the open flow, and disposal. Every mutation that changes an
	// expiry-relevant field ends with a reminder reschedule; reminder failures
	// are logged and swallowed so the inventory never loses a write because
	// the notification side is down.
	BatchService interface {
		CreateBatch(ctx context.Context, userID string, req domain.CreateBatchRequest) (domain.BatchResponse, error)
		GetBatches(ctx context.Context, userID string, location string) ([]domain.ProductGroupResponse, error)
		GetBatchByID(ctx context.Context, userID string, batchID string) (domain.BatchResponse, error)
		UpdateBatch(ctx context.Context, userID string, batchID string, req domain.UpdateBatchRequest) (domain.BatchResponse, error)
		DeleteBatch(ctx context.Context, userID string, batchID string) error

		ConsumeOne(ctx context.Context, userID string, batchID string) (domain.ConsumeOneResponse, error)
		ConsumePartial(ctx context.Context, userID string, batchID string, req domain.ConsumePartialRequest) (domain.ConsumePartialResponse, error)
		RequestOpen(ctx context.Context, userID string, batchID string, req domain.RequestOpenRequest) (domain.OpenDecision, error)
		ConfirmOpen(ctx context.Context, userID string, batchID string, req domain.ConfirmOpenRequest) (domain.OpenResult, error)

		GetBuddy(ctx context.Context, userID string) (domain.BuddyResponse, error)
	}

	batchService struct {
		batchRepository BatchRepository
		reminderService reminder.ReminderService
		frequentService memory.FrequentService
		clock           utils.Clock
	}
)

const expiryDateLayout = "2006-01-02"

// Fractions at or below this are treated as "finished it" rather than
// keeping a batch with a dusting of product in it.
const minRemainingFraction = 0.01

func NewBatchService(
	batchRepository BatchRepository,
	reminderService reminder.ReminderService,
	frequentService memory.FrequentService,
	clock utils.Clock,
) BatchService {
	return &batchService{
		batchRepository: batchRepository,
		reminderService: reminderService,
		frequentService: frequentService,
		clock:           clock,
	}
}

func (s *batchService) CreateBatch(ctx context.Context, userID string, req domain.CreateBatchRequest) (domain.BatchResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.BatchResponse{}, domain.ErrParseUUID
	}

	if req.Quantity < 1 {
		return domain.BatchResponse{}, domain.ErrInvalidQuantity
	}

	location := entities.StorageLocation(req.Location)
	if !location.Valid() {
		return domain.BatchResponse{}, domain.ErrInvalidLocation
	}

	unit := entities.MeasureUnit(req.MeasureUnit)
	if req.MeasureUnit == "" {
		unit = entities.UnitPieces
	}
	if !unit.Valid() {
		return domain.BatchResponse{}, domain.ErrInvalidMeasureUnit
	}

	var expiry *time.Time
	if req.ExpiryDate != "" {
		parsed, err := time.Parse(expiryDateLayout, req.ExpiryDate)
		if err != nil {
			return domain.BatchResponse{}, domain.ErrInvalidExpiryDate
		}
		expiry = &parsed
	}

	batch := &entities.FoodBatch{
		ID:           uuid.New(),
		UserID:       userUUID,
		Name:         req.Name,
		NameKey:      utils.NormalizeName(req.Name),
		Emoji:        req.Emoji,
		Quantity:     req.Quantity,
		ExpiryDate:   expiry,
		AddedDate:    s.clock.Now(),
		Location:     location,
		IsRecurring:  req.IsRecurring,
		MeasureValue: req.MeasureValue,
		MeasureUnit:  unit,
		IsOpened:     false,
		Status:       entities.StatusAvailable,
	}

	if err := s.batchRepository.Insert(ctx, batch); err != nil {
		return domain.BatchResponse{}, err
	}

	if err := s.frequentService.RecordUsage(ctx, batch); err != nil {
		log.Errorf("record usage for %q: %v", batch.Name, err)
	}

	s.scheduleReminders(ctx, batch)

	return s.toResponse(batch), nil
}

func (s *batchService) GetBatches(ctx context.Context, userID string, location string) ([]domain.ProductGroupResponse, error) {
	if location != "" && location != "all" && !entities.StorageLocation(location).Valid() {
		return nil, domain.ErrInvalidLocation
	}

	batches, err := s.batchRepository.ListByUser(ctx, userID, location)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()

	// Group batches of the same product while preserving the earliest-expiry
	// ordering the repository returned.
	var order []string
	groups := make(map[string]*domain.ProductGroupResponse)
	for _, batch := range batches {
		group, ok := groups[batch.NameKey]
		if !ok {
			order = append(order, batch.NameKey)
			group = &domain.ProductGroupResponse{
				Name:      batch.Name,
				Emoji:     batch.Emoji,
				Freshness: buddy.FreshnessSafe,
			}
			groups[batch.NameKey] = group
		}

		group.TotalQuantity += batch.Quantity
		group.BatchCount++
		group.Batches = append(group.Batches, s.toResponse(batch))
		group.Freshness = worstFreshness(group.Freshness, buddy.FreshnessOf(batch, now))
	}

	response := make([]domain.ProductGroupResponse, 0, len(order))
	for _, key := range order {
		response = append(response, *groups[key])
	}

	return response, nil
}

func (s *batchService) GetBatchByID(ctx context.Context, userID string, batchID string) (domain.BatchResponse, error) {
	batch, err := s.ownedBatch(ctx, userID, batchID)
	if err != nil {
		return domain.BatchResponse{}, err
	}
	return s.toResponse(batch), nil
}

func (s *batchService) UpdateBatch(ctx context.Context, userID string, batchID string, req domain.UpdateBatchRequest) (domain.BatchResponse, error) {
	batch, err := s.ownedBatch(ctx, userID, batchID)
	if err != nil {
		return domain.BatchResponse{}, err
	}

	if req.Location != "" {
		newLocation := entities.StorageLocation(req.Location)
		if !newLocation.Valid() {
			return domain.BatchResponse{}, domain.ErrInvalidLocation
		}
		// Leaving the freezer restarts the expiry clock, so the move has to
		// be acknowledged explicitly.
		if batch.Location == entities.LocationFreezer && newLocation != entities.LocationFreezer && !req.ConfirmThaw {
			return domain.BatchResponse{}, domain.ErrThawConfirmationRequired
		}
		batch.Location = newLocation
	}

	if req.Name != "" {
		batch.Name = req.Name
		batch.NameKey = utils.NormalizeName(req.Name)
	}
	if req.Emoji != "" {
		batch.Emoji = req.Emoji
	}
	if req.Quantity > 0 {
		batch.Quantity = req.Quantity
	}
	if req.MeasureValue != nil {
		batch.MeasureValue = *req.MeasureValue
	}
	if req.MeasureUnit != "" {
		unit := entities.MeasureUnit(req.MeasureUnit)
		if !unit.Valid() {
			return domain.BatchResponse{}, domain.ErrInvalidMeasureUnit
		}
		batch.MeasureUnit = unit
	}

	if req.HasExpiry != nil && !*req.HasExpiry {
		batch.ExpiryDate = nil
	} else if req.ExpiryDate != "" {
		parsed, err := time.Parse(expiryDateLayout, req.ExpiryDate)
		if err != nil {
			return domain.BatchResponse{}, domain.ErrInvalidExpiryDate
		}
		batch.ExpiryDate = &parsed
	}

	if err := s.batchRepository.Update(ctx, batch); err != nil {
		return domain.BatchResponse{}, err
	}

	if err := s.frequentService.RecordUsage(ctx, batch); err != nil {
		log.Errorf("record usage for %q: %v", batch.Name, err)
	}

	s.scheduleReminders(ctx, batch)

	return s.toResponse(batch), nil
}

func (s *batchService) DeleteBatch(ctx context.Context, userID string, batchID string) error {
	batch, err := s.ownedBatch(ctx, userID, batchID)
	if err != nil {
		return err
	}

	if err := s.batchRepository.Terminate(ctx, batch, entities.StatusThrown); err != nil {
		return err
	}

	s.cancelReminders(ctx, batch.ID)
	return nil
}

func (s *batchService) ConsumeOne(ctx context.Context, userID string, batchID string) (domain.ConsumeOneResponse, error) {
	batch, err := s.ownedBatch(ctx, userID, batchID)
	if err != nil {
		return domain.ConsumeOneResponse{}, err
	}

	response := domain.ConsumeOneResponse{Name: batch.Name}

	if batch.Quantity > 1 {
		batch.Quantity--
		if err := s.batchRepository.Update(ctx, batch); err != nil {
			return domain.ConsumeOneResponse{}, err
		}
		response.RemainingQuantity = batch.Quantity
	} else {
		if err := s.batchRepository.Terminate(ctx, batch, entities.StatusConsumed); err != nil {
			return domain.ConsumeOneResponse{}, err
		}
		response.Deleted = true

		// The restock nudge fires when this was the last batch of the
		// product in the whole inventory.
		siblings, err := s.batchRepository.CountSiblings(ctx, userID, batch.NameKey, batch.ID)
		if err != nil {
			return domain.ConsumeOneResponse{}, err
		}
		response.SuggestRestock = siblings == 0

		s.cancelReminders(ctx, batch.ID)
	}

	if err := s.frequentService.Touch(ctx, userID, batch.Name); err != nil {
		log.Errorf("touch memory for %q: %v", batch.Name, err)
	}

	return response, nil
}

func (s *batchService) ConsumePartial(ctx context.Context, userID string, batchID string, req domain.ConsumePartialRequest) (domain.ConsumePartialResponse, error) {
	batch, err := s.ownedBatch(ctx, userID, batchID)
	if err != nil {
		return domain.ConsumePartialResponse{}, err
	}

	if req.RemainingFraction <= 0 || req.RemainingFraction > 1 {
		return domain.ConsumePartialResponse{}, domain.ErrInvalidFraction
	}
	// Piece-counted batches are consumed a unit at a time, not by fraction.
	if batch.MeasureUnit == entities.UnitPieces || batch.MeasureValue <= 0 {
		return domain.ConsumePartialResponse{}, domain.ErrInvalidOperation
	}

	remaining := math.Round(batch.MeasureValue*req.RemainingFraction*100) / 100

	if req.RemainingFraction <= minRemainingFraction || remaining <= 0 {
		if err := s.batchRepository.Terminate(ctx, batch, entities.StatusConsumed); err != nil {
			return domain.ConsumePartialResponse{}, err
		}

		siblings, err := s.batchRepository.CountSiblings(ctx, userID, batch.NameKey, batch.ID)
		if err != nil {
			return domain.ConsumePartialResponse{}, err
		}

		s.cancelReminders(ctx, batch.ID)

		if err := s.frequentService.Touch(ctx, userID, batch.Name); err != nil {
			log.Errorf("touch memory for %q: %v", batch.Name, err)
		}

		return domain.ConsumePartialResponse{
			Deleted:        true,
			SuggestRestock: siblings == 0,
			Name:           batch.Name,
		}, nil
	}

	batch.MeasureValue = remaining
	if err := s.batchRepository.Update(ctx, batch); err != nil {
		return domain.ConsumePartialResponse{}, err
	}

	if err := s.frequentService.Touch(ctx, userID, batch.Name); err != nil {
		log.Errorf("touch memory for %q: %v", batch.Name, err)
	}

	return domain.ConsumePartialResponse{
		RemainingMeasure: remaining,
		Name:             batch.Name,
	}, nil
}

// RequestOpen starts the open flow. A single-unit batch has nothing to
// split, so the open is applied straight away; a multi-unit batch needs
// the caller to choose between opening one unit and opening everything.
func (s *batchService) RequestOpen(ctx context.Context, userID string, batchID string, req domain.RequestOpenRequest) (domain.OpenDecision, error) {
	batch, err := s.ownedBatch(ctx, userID, batchID)
	if err != nil {
		return domain.OpenDecision{}, err
	}

	if req.ShelfLifeDays < 1 {
		return domain.OpenDecision{}, domain.ErrInvalidOperation
	}
	// Frozen food is not "opened"; it is thawed first via an edit.
	if batch.Location == entities.LocationFreezer {
		return domain.OpenDecision{}, domain.ErrInvalidOperation
	}
	if batch.IsOpened {
		return domain.OpenDecision{}, domain.ErrInvalidOperation
	}

	decision := domain.OpenDecision{
		BatchID:       batch.ID.String(),
		ShelfLifeDays: req.ShelfLifeDays,
	}

	if batch.Quantity > 1 {
		decision.NeedsChoice = true
		return decision, nil
	}

	result, err := s.ConfirmOpen(ctx, userID, batchID, domain.ConfirmOpenRequest{
		ShelfLifeDays: req.ShelfLifeDays,
		OpenAll:       true,
	})
	if err != nil {
		return domain.OpenDecision{}, err
	}
	decision.AutoConfirmed = &result

	return decision, nil
}

// ConfirmOpen moves one unit (or all units) into a new opened batch whose
// expiry is now plus the after-opening shelf life. The opened batch gets its
// own reminders; the remainder keeps the original ones.
func (s *batchService) ConfirmOpen(ctx context.Context, userID string, batchID string, req domain.ConfirmOpenRequest) (domain.OpenResult, error) {
	batch, err := s.ownedBatch(ctx, userID, batchID)
	if err != nil {
		return domain.OpenResult{}, err
	}

	if req.ShelfLifeDays < 1 {
		return domain.OpenResult{}, domain.ErrInvalidOperation
	}
	if batch.Location == entities.LocationFreezer || batch.IsOpened {
		return domain.OpenResult{}, domain.ErrInvalidOperation
	}

	moved := 1
	if req.OpenAll {
		moved = batch.Quantity
	}

	openedExpiry := utils.AddDays(s.clock.Now(), req.ShelfLifeDays)
	opened := &entities.FoodBatch{
		ID:           uuid.New(),
		UserID:       batch.UserID,
		Name:         batch.Name,
		NameKey:      batch.NameKey,
		Emoji:        batch.Emoji,
		Quantity:     moved,
		ExpiryDate:   &openedExpiry,
		AddedDate:    batch.AddedDate,
		Location:     batch.Location,
		IsRecurring:  batch.IsRecurring,
		MeasureValue: batch.MeasureValue,
		MeasureUnit:  batch.MeasureUnit,
		IsOpened:     true,
		Status:       entities.StatusAvailable,
	}

	result := domain.OpenResult{}

	if moved >= batch.Quantity {
		// Nothing sealed remains; the original record and its reminders go.
		if err := s.batchRepository.Delete(ctx, batch); err != nil {
			return domain.OpenResult{}, err
		}
		s.cancelReminders(ctx, batch.ID)
		result.OriginalDeleted = true
	} else {
		batch.Quantity -= moved
		if err := s.batchRepository.Update(ctx, batch); err != nil {
			return domain.OpenResult{}, err
		}
		remainder := s.toResponse(batch)
		result.RemainderBatch = &remainder
	}

	if err := s.batchRepository.Insert(ctx, opened); err != nil {
		return domain.OpenResult{}, err
	}

	s.scheduleReminders(ctx, opened)

	result.OpenedBatch = s.toResponse(opened)
	return result, nil
}

func (s *batchService) GetBuddy(ctx context.Context, userID string) (domain.BuddyResponse, error) {
	batches, err := s.batchRepository.ListByUser(ctx, userID, "")
	if err != nil {
		return domain.BuddyResponse{}, err
	}

	now := s.clock.Now()
	mood := buddy.Classify(batches, now)

	response := domain.BuddyResponse{
		Mood:         string(mood),
		Message:      buddy.Message(mood),
		TotalBatches: len(batches),
	}

	for _, batch := range batches {
		if batch.Location == entities.LocationFreezer {
			continue
		}
		switch buddy.FreshnessOf(batch, now) {
		case buddy.FreshnessExpired:
			response.Expired++
		case buddy.FreshnessWarning:
			response.ExpiringSoon++
		}
	}

	return response, nil
}

// ownedBatch loads the batch and enforces ownership.
func (s *batchService) ownedBatch(ctx context.Context, userID string, batchID string) (*entities.FoodBatch, error) {
	if _, err := uuid.Parse(batchID); err != nil {
		return nil, domain.ErrParseUUID
	}

	batch, err := s.batchRepository.GetByID(ctx, batchID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBatchNotFound
		}
		return nil, err
	}

	if batch.UserID.String() != userID {
		return nil, domain.ErrUnauthorizedAccess
	}

	return batch, nil
}

func (s *batchService) scheduleReminders(ctx context.Context, batch *entities.FoodBatch) {
	prefs, err := s.reminderService.PreferencesFor(ctx, batch.UserID.String())
	if err != nil {
		log.Errorf("load reminder preferences for batch %s: %v", batch.ID, err)
		return
	}
	if err := s.reminderService.Schedule(ctx, batch, prefs); err != nil {
		log.Errorf("schedule reminders for batch %s: %v", batch.ID, err)
	}
}

func (s *batchService) cancelReminders(ctx context.Context, batchID uuid.UUID) {
	if err := s.reminderService.Cancel(ctx, batchID); err != nil {
		log.Errorf("cancel reminders for batch %s: %v", batchID, err)
	}
}

func (s *batchService) toResponse(batch *entities.FoodBatch) domain.BatchResponse {
	return domain.BatchResponse{
		ID:           batch.ID.String(),
		Name:         batch.Name,
		Emoji:        batch.Emoji,
		Quantity:     batch.Quantity,
		ExpiryDate:   batch.ExpiryDate,
		AddedDate:    batch.AddedDate,
		Location:     string(batch.Location),
		IsRecurring:  batch.IsRecurring,
		MeasureValue: batch.MeasureValue,
		MeasureUnit:  string(batch.MeasureUnit),
		Measure:      batch.FormattedMeasure(),
		IsOpened:     batch.IsOpened,
		Status:       string(batch.Status),
		Freshness:    buddy.FreshnessOf(batch, s.clock.Now()),
		CreatedAt:    batch.CreatedAt,
	}
}

func worstFreshness(a, b string) string {
	rank := func(f string) int {
		switch f {
		case buddy.FreshnessExpired:
			return 2
		case buddy.FreshnessWarning:
			return 1
		default:
			return 0
		}
	}
	if rank(b) > rank(a) {
		return b
	}
	return a
}
