package handlers

import (
	"buddyfridge/domain"
	"buddyfridge/internal/api/presenters"
	"buddyfridge/pkg/batch"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	BatchHandler interface {
		CreateBatch(c *fiber.Ctx) error
		GetBatches(c *fiber.Ctx) error
		GetBatchDetails(c *fiber.Ctx) error
		UpdateBatch(c *fiber.Ctx) error
		DeleteBatch(c *fiber.Ctx) error
		ConsumeOne(c *fiber.Ctx) error
		ConsumePartial(c *fiber.Ctx) error
		RequestOpen(c *fiber.Ctx) error
		ConfirmOpen(c *fiber.Ctx) error
	}

	batchHandler struct {
		batchService batch.BatchService
		validator    *validator.Validate
	}
)

func NewBatchHandler(batchService batch.BatchService, validator *validator.Validate) BatchHandler {
	return &batchHandler{
		batchService: batchService,
		validator:    validator,
	}
}

func (h *batchHandler) CreateBatch(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CreateBatchRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateBatch, err)
	}

	res, err := h.batchService.CreateBatch(c.Context(), userID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateBatch, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateBatch)
}

func (h *batchHandler) GetBatches(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	location := c.Query("location", "all")

	groups, err := h.batchService.GetBatches(c.Context(), userID, location)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetBatches, err)
	}

	return presenters.SuccessResponse(c, groups, fiber.StatusOK, domain.MessageSuccessGetBatches)
}

func (h *batchHandler) GetBatchDetails(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	batchID := c.Params("id")

	res, err := h.batchService.GetBatchByID(c.Context(), userID, batchID)
	if err != nil {
		if errors.Is(err, domain.ErrBatchNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetBatches, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetBatches, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetBatches)
}

func (h *batchHandler) UpdateBatch(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	batchID := c.Params("id")
	req := new(domain.UpdateBatchRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateBatch, err)
	}

	res, err := h.batchService.UpdateBatch(c.Context(), userID, batchID, *req)
	if err != nil {
		if errors.Is(err, domain.ErrThawConfirmationRequired) {
			return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageFailedUpdateBatch, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateBatch, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateBatch)
}

func (h *batchHandler) DeleteBatch(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	batchID := c.Params("id")

	if err := h.batchService.DeleteBatch(c.Context(), userID, batchID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteBatch, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteBatch)
}

func (h *batchHandler) ConsumeOne(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	batchID := c.Params("id")

	res, err := h.batchService.ConsumeOne(c.Context(), userID, batchID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedConsumeOne, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessConsumeOne)
}

func (h *batchHandler) ConsumePartial(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	batchID := c.Params("id")
	req := new(domain.ConsumePartialRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedConsumePartial, err)
	}

	res, err := h.batchService.ConsumePartial(c.Context(), userID, batchID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedConsumePartial, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessConsumePartial)
}

func (h *batchHandler) RequestOpen(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	batchID := c.Params("id")
	req := new(domain.RequestOpenRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRequestOpen, err)
	}

	res, err := h.batchService.RequestOpen(c.Context(), userID, batchID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRequestOpen, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessRequestOpen)
}

func (h *batchHandler) ConfirmOpen(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	batchID := c.Params("id")
	req := new(domain.ConfirmOpenRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedConfirmOpen, err)
	}

	res, err := h.batchService.ConfirmOpen(c.Context(), userID, batchID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedConfirmOpen, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessConfirmOpen)
}
