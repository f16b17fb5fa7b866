package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateBatch    = "food batch created successfully"
	MessageSuccessUpdateBatch    = "food batch updated successfully"
	MessageSuccessDeleteBatch    = "food batch deleted successfully"
	MessageSuccessGetBatches     = "food batches retrieved successfully"
	MessageSuccessConsumeOne     = "one unit consumed"
	MessageSuccessConsumePartial = "partial amount consumed"
	MessageSuccessRequestOpen    = "open request evaluated"
	MessageSuccessConfirmOpen    = "food batch opened"

	MessageFailedCreateBatch    = "failed to create food batch"
	MessageFailedUpdateBatch    = "failed to update food batch"
	MessageFailedDeleteBatch    = "failed to delete food batch"
	MessageFailedGetBatches     = "failed to retrieve food batches"
	MessageFailedConsumeOne     = "failed to consume unit"
	MessageFailedConsumePartial = "failed to consume partial amount"
	MessageFailedRequestOpen    = "failed to evaluate open request"
	MessageFailedConfirmOpen    = "failed to open food batch"

	ErrBatchNotFound            = errors.New("food batch not found")
	ErrInvalidQuantity          = errors.New("quantity must be at least 1")
	ErrInvalidExpiryDate        = errors.New("invalid expiry date")
	ErrInvalidLocation          = errors.New("invalid storage location")
	ErrInvalidMeasureUnit       = errors.New("invalid measure unit")
	ErrInvalidFraction          = errors.New("remaining fraction must be in (0, 1]")
	ErrInvalidOperation         = errors.New("operation not allowed for this batch")
	ErrThawConfirmationRequired = errors.New("moving out of the freezer requires thaw confirmation")
	ErrUnauthorizedAccess       = errors.New("unauthorized access to food batch")
)

type (
	CreateBatchRequest struct {
		Name         string  `json:"name" validate:"required"`
		Emoji        string  `json:"emoji"`
		Quantity     int     `json:"quantity" validate:"required,min=1"`
		ExpiryDate   string  `json:"expiry_date" validate:"omitempty"`
		Location     string  `json:"location" validate:"required,oneof=fridge freezer pantry"`
		IsRecurring  bool    `json:"is_recurring"`
		MeasureValue float64 `json:"measure_value"`
		MeasureUnit  string  `json:"measure_unit" validate:"omitempty,oneof=pieces grams kilograms liters milliliters"`
	}

	UpdateBatchRequest struct {
		Name         string   `json:"name" validate:"omitempty"`
		Emoji        string   `json:"emoji" validate:"omitempty"`
		Quantity     int      `json:"quantity" validate:"omitempty,min=1"`
		Location     string   `json:"location" validate:"omitempty,oneof=fridge freezer pantry"`
		MeasureValue *float64 `json:"measure_value"`
		MeasureUnit  string   `json:"measure_unit" validate:"omitempty,oneof=pieces grams kilograms liters milliliters"`
		HasExpiry    *bool    `json:"has_expiry"`
		ExpiryDate   string   `json:"expiry_date" validate:"omitempty"`
		ConfirmThaw  bool     `json:"confirm_thaw"`
	}

	ConsumePartialRequest struct {
		RemainingFraction float64 `json:"remaining_fraction" validate:"required,gt=0,lte=1"`
	}

	RequestOpenRequest struct {
		ShelfLifeDays int `json:"shelf_life_days" validate:"required,min=1"`
	}

	ConfirmOpenRequest struct {
		ShelfLifeDays int  `json:"shelf_life_days" validate:"required,min=1"`
		OpenAll       bool `json:"open_all"`
	}

	BatchResponse struct {
		ID           string     `json:"id"`
		Name         string     `json:"name"`
		Emoji        string     `json:"emoji"`
		Quantity     int        `json:"quantity"`
		ExpiryDate   *time.Time `json:"expiry_date,omitempty"`
		AddedDate    time.Time  `json:"added_date"`
		Location     string     `json:"location"`
		IsRecurring  bool       `json:"is_recurring"`
		MeasureValue float64    `json:"measure_value"`
		MeasureUnit  string     `json:"measure_unit"`
		Measure      string     `json:"measure,omitempty"`
		IsOpened     bool       `json:"is_opened"`
		Status       string     `json:"status"`
		Freshness    string     `json:"freshness"`
		CreatedAt    time.Time  `json:"created_at"`
	}

	ProductGroupResponse struct {
		Name          string          `json:"name"`
		Emoji         string          `json:"emoji"`
		TotalQuantity int             `json:"total_quantity"`
		BatchCount    int             `json:"batch_count"`
		Freshness     string          `json:"freshness"`
		Batches       []BatchResponse `json:"batches"`
	}

	ConsumeOneResponse struct {
		Deleted           bool   `json:"deleted"`
		RemainingQuantity int    `json:"remaining_quantity"`
		SuggestRestock    bool   `json:"suggest_restock"`
		Name              string `json:"name"`
	}

	ConsumePartialResponse struct {
		Deleted          bool    `json:"deleted"`
		RemainingMeasure float64 `json:"remaining_measure"`
		SuggestRestock   bool    `json:"suggest_restock"`
		Name             string  `json:"name"`
	}

	// OpenDecision is the pending-decision value returned by RequestOpen.
	// When the batch holds a single unit the open is applied immediately and
	// AutoConfirmed carries the result; otherwise the caller must resolve the
	// single-unit vs whole-batch ambiguity and call ConfirmOpen.
	OpenDecision struct {
		BatchID       string      `json:"batch_id"`
		ShelfLifeDays int         `json:"shelf_life_days"`
		NeedsChoice   bool        `json:"needs_choice"`
		AutoConfirmed *OpenResult `json:"auto_confirmed,omitempty"`
	}

	OpenResult struct {
		OpenedBatch     BatchResponse  `json:"opened_batch"`
		RemainderBatch  *BatchResponse `json:"remainder_batch,omitempty"`
		OriginalDeleted bool           `json:"original_deleted"`
	}
)
