package handlers

import (
	"buddyfridge/domain"
	"buddyfridge/internal/api/presenters"
	"buddyfridge/pkg/batch"

	"github.com/gofiber/fiber/v2"
)

type (
	BuddyHandler interface {
		GetBuddy(c *fiber.Ctx) error
	}

	buddyHandler struct {
		batchService batch.BatchService
	}
)

func NewBuddyHandler(batchService batch.BatchService) BuddyHandler {
	return &buddyHandler{batchService: batchService}
}

func (h *buddyHandler) GetBuddy(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.batchService.GetBuddy(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetBuddy, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetBuddy)
}
