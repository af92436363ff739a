package handlers

import (
	"Bakehouse-Backend/domain"
	"Bakehouse-Backend/internal/api/presenters"
	"Bakehouse-Backend/pkg/production"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ProductionHandler interface {
		CreateSheet(c *fiber.Ctx) error
		GetSheets(c *fiber.Ctx) error
		GetSheetDetails(c *fiber.Ctx) error
		DeleteSheet(c *fiber.Ctx) error
	}

	productionHandler struct {
		productionService production.ProductionService
		validator         *validator.Validate
	}
)

func NewProductionHandler(productionService production.ProductionService, validator *validator.Validate) ProductionHandler {
	return &productionHandler{
		productionService: productionService,
		validator:         validator,
	}
}

func (h *productionHandler) CreateSheet(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CreateSheetRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateSheet, err)
	}

	res, err := h.productionService.CreateSheet(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateSheet, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateSheet)
}

func (h *productionHandler) GetSheets(c *fiber.Ctx) error {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	sheets, count, err := h.productionService.GetSheets(c.Context(), page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetSheets, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"sheets": sheets,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       count,
			"total_pages": (count + int64(limit) - 1) / int64(limit),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetSheets)
}

func (h *productionHandler) GetSheetDetails(c *fiber.Ctx) error {
	sheetID := c.Params("id")

	res, err := h.productionService.GetSheetByID(c.Context(), sheetID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetSheets, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetSheets)
}

func (h *productionHandler) DeleteSheet(c *fiber.Ctx) error {
	sheetID := c.Params("id")

	if err := h.productionService.DeleteSheet(c.Context(), sheetID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteSheet, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteSheet)
}
