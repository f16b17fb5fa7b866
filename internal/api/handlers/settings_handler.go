package handlers

import (
	"buddyfridge/domain"
	"buddyfridge/internal/api/presenters"
	"buddyfridge/pkg/reminder"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	SettingsHandler interface {
		GetPreferences(c *fiber.Ctx) error
		UpdatePreferences(c *fiber.Ctx) error
	}

	settingsHandler struct {
		reminderService reminder.ReminderService
		validator       *validator.Validate
	}
)

func NewSettingsHandler(reminderService reminder.ReminderService, validator *validator.Validate) SettingsHandler {
	return &settingsHandler{
		reminderService: reminderService,
		validator:       validator,
	}
}

func (h *settingsHandler) GetPreferences(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	prefs, err := h.reminderService.PreferencesFor(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetPreferences, err)
	}

	return presenters.SuccessResponse(c, prefs, fiber.StatusOK, domain.MessageSuccessGetPreferences)
}

func (h *settingsHandler) UpdatePreferences(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.UpdatePreferencesRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	prefs, err := h.reminderService.UpdatePreferences(c.Context(), userID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdatePreferences, err)
	}

	return presenters.SuccessResponse(c, prefs, fiber.StatusOK, domain.MessageSuccessUpdatePreferences)
}
