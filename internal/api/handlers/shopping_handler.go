package handlers

import (
	"buddyfridge/domain"
	"buddyfridge/internal/api/presenters"
	"buddyfridge/pkg/shopping"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ShoppingHandler interface {
		AddEntry(c *fiber.Ctx) error
		GetEntries(c *fiber.Ctx) error
		ToggleEntry(c *fiber.Ctx) error
		DeleteEntry(c *fiber.Ctx) error
		MoveToInventory(c *fiber.Ctx) error
	}

	shoppingHandler struct {
		shoppingService shopping.ShoppingService
		validator       *validator.Validate
	}
)

func NewShoppingHandler(shoppingService shopping.ShoppingService, validator *validator.Validate) ShoppingHandler {
	return &shoppingHandler{
		shoppingService: shoppingService,
		validator:       validator,
	}
}

func (h *shoppingHandler) AddEntry(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.AddShoppingEntryRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddShoppingEntry, err)
	}

	res, err := h.shoppingService.AddEntry(c.Context(), userID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddShoppingEntry, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddShoppingEntry)
}

func (h *shoppingHandler) GetEntries(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	entries, err := h.shoppingService.GetEntries(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetShoppingEntries, err)
	}

	return presenters.SuccessResponse(c, entries, fiber.StatusOK, domain.MessageSuccessGetShoppingEntries)
}

func (h *shoppingHandler) ToggleEntry(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	entryID := c.Params("id")

	res, err := h.shoppingService.ToggleEntry(c.Context(), userID, entryID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedToggleShoppingEntry, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessToggleShoppingEntry)
}

func (h *shoppingHandler) DeleteEntry(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	entryID := c.Params("id")

	if err := h.shoppingService.DeleteEntry(c.Context(), userID, entryID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteShoppingEntry, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteShoppingEntry)
}

func (h *shoppingHandler) MoveToInventory(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	entryID := c.Params("id")
	req := new(domain.MoveToInventoryRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedMoveToInventory, err)
	}

	res, err := h.shoppingService.MoveToInventory(c.Context(), userID, entryID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedMoveToInventory, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessMoveToInventory)
}
