package domain

import "errors"

var (
	MessageSuccessLookup = "product lookup successful"
	MessageFailedLookup  = "failed to look up product"

	ErrProductNotFound = errors.New("product not found")
	ErrLookupFailed    = errors.New("product lookup failed")
)

type (
	// ProductLookupResponse is advisory input for a new batch: the caller may
	// take or ignore any of it.
	ProductLookupResponse struct {
		Name              string `json:"name"`
		Emoji             string `json:"emoji"`
		Category          string `json:"category"`
		SuggestedLocation string `json:"suggested_location"`
	}
)
