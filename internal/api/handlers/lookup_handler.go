package handlers

import (
	"buddyfridge/domain"
	"buddyfridge/internal/api/presenters"
	"buddyfridge/pkg/lookup"
	"errors"

	"github.com/gofiber/fiber/v2"
)

type (
	LookupHandler interface {
		SearchProducts(c *fiber.Ctx) error
		FetchByBarcode(c *fiber.Ctx) error
	}

	lookupHandler struct {
		lookupService lookup.LookupService
	}
)

func NewLookupHandler(lookupService lookup.LookupService) LookupHandler {
	return &lookupHandler{lookupService: lookupService}
}

func (h *lookupHandler) SearchProducts(c *fiber.Ctx) error {
	query := c.Query("q")

	results, err := h.lookupService.SearchProducts(c.Context(), query)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadGateway, domain.MessageFailedLookup, err)
	}

	return presenters.SuccessResponse(c, results, fiber.StatusOK, domain.MessageSuccessLookup)
}

func (h *lookupHandler) FetchByBarcode(c *fiber.Ctx) error {
	barcode := c.Params("barcode")

	res, err := h.lookupService.FetchByBarcode(c.Context(), barcode)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedLookup, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadGateway, domain.MessageFailedLookup, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessLookup)
}
