package handlers

import (
	"buddyfridge/domain"
	"buddyfridge/internal/api/presenters"
	"buddyfridge/pkg/memory"
	"errors"

	"github.com/gofiber/fiber/v2"
)

type (
	MemoryHandler interface {
		GetMemories(c *fiber.Ctx) error
		Suggest(c *fiber.Ctx) error
		ForgetMemory(c *fiber.Ctx) error
	}

	memoryHandler struct {
		frequentService memory.FrequentService
	}
)

func NewMemoryHandler(frequentService memory.FrequentService) MemoryHandler {
	return &memoryHandler{frequentService: frequentService}
}

func (h *memoryHandler) GetMemories(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	items, err := h.frequentService.List(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetMemories, err)
	}

	return presenters.SuccessResponse(c, items, fiber.StatusOK, domain.MessageSuccessGetMemories)
}

func (h *memoryHandler) Suggest(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	query := c.Query("q")

	items, err := h.frequentService.Suggest(c.Context(), userID, query)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetSuggestion, err)
	}

	return presenters.SuccessResponse(c, items, fiber.StatusOK, domain.MessageSuccessGetSuggestion)
}

func (h *memoryHandler) ForgetMemory(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	name := c.Params("name")

	if err := h.frequentService.Forget(c.Context(), userID, name); err != nil {
		if errors.Is(err, domain.ErrMemoryNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedForgetMemory, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedForgetMemory, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessForgetMemory)
}
