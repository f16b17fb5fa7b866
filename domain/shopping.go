package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessAddShoppingEntry    = "shopping entry added successfully"
	MessageSuccessGetShoppingEntries  = "shopping entries retrieved successfully"
	MessageSuccessDeleteShoppingEntry = "shopping entry deleted successfully"
	MessageSuccessToggleShoppingEntry = "shopping entry toggled"
	MessageSuccessMoveToInventory     = "shopping entry moved to inventory"

	MessageFailedAddShoppingEntry    = "failed to add shopping entry"
	MessageFailedGetShoppingEntries  = "failed to retrieve shopping entries"
	MessageFailedDeleteShoppingEntry = "failed to delete shopping entry"
	MessageFailedToggleShoppingEntry = "failed to toggle shopping entry"
	MessageFailedMoveToInventory     = "failed to move shopping entry to inventory"

	ErrShoppingEntryNotFound = errors.New("shopping entry not found")
	ErrEmptyShoppingName     = errors.New("shopping entry name must not be empty")
)

type (
	AddShoppingEntryRequest struct {
		Name string `json:"name" validate:"required"`
	}

	ShoppingEntryResponse struct {
		ID          string    `json:"id"`
		Name        string    `json:"name"`
		IsCompleted bool      `json:"is_completed"`
		AddedDate   time.Time `json:"added_date"`
	}

	// MoveToInventoryRequest turns a bought entry into a fresh food batch.
	MoveToInventoryRequest struct {
		Emoji        string  `json:"emoji"`
		Quantity     int     `json:"quantity" validate:"required,min=1"`
		ExpiryDate   string  `json:"expiry_date" validate:"omitempty"`
		Location     string  `json:"location" validate:"required,oneof=fridge freezer pantry"`
		IsRecurring  bool    `json:"is_recurring"`
		MeasureValue float64 `json:"measure_value"`
		MeasureUnit  string  `json:"measure_unit" validate:"omitempty,oneof=pieces grams kilograms liters milliliters"`
	}
)
