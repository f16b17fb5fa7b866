package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetMemories   = "product memories retrieved successfully"
	MessageSuccessForgetMemory  = "product memory forgotten"
	MessageSuccessGetSuggestion = "suggestions retrieved successfully"

	MessageFailedGetMemories   = "failed to retrieve product memories"
	MessageFailedForgetMemory  = "failed to forget product memory"
	MessageFailedGetSuggestion = "failed to retrieve suggestions"

	ErrMemoryNotFound = errors.New("product memory not found")
)

type (
	FrequentItemResponse struct {
		Name            string     `json:"name"`
		Emoji           string     `json:"emoji"`
		DefaultQuantity int        `json:"default_quantity"`
		MeasureValue    float64    `json:"measure_value"`
		MeasureUnit     string     `json:"measure_unit"`
		Location        string     `json:"location"`
		IsRecurring     bool       `json:"is_recurring"`
		ShelfLifeDays   *int       `json:"shelf_life_days,omitempty"`
		SuggestedExpiry *time.Time `json:"suggested_expiry,omitempty"`
		LastUsed        time.Time  `json:"last_used"`
	}
)
