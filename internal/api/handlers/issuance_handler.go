package handlers

import (
	"Bakehouse-Backend/domain"
	"Bakehouse-Backend/internal/api/presenters"
	"Bakehouse-Backend/pkg/issuance"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	IssuanceHandler interface {
		CreateIssuance(c *fiber.Ctx) error
		GetIssuances(c *fiber.Ctx) error
		GetAvailableIssuances(c *fiber.Ctx) error
		DeleteIssuance(c *fiber.Ctx) error
	}

	issuanceHandler struct {
		issuanceService issuance.IssuanceService
		validator       *validator.Validate
	}
)

func NewIssuanceHandler(issuanceService issuance.IssuanceService, validator *validator.Validate) IssuanceHandler {
	return &issuanceHandler{
		issuanceService: issuanceService,
		validator:       validator,
	}
}

func (h *issuanceHandler) CreateIssuance(c *fiber.Ctx) error {
	req := new(domain.CreateIssuanceRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateIssuance, err)
	}

	res, err := h.issuanceService.CreateIssuance(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateIssuance, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateIssuance)
}

func (h *issuanceHandler) GetIssuances(c *fiber.Ctx) error {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	issuances, count, err := h.issuanceService.GetIssuances(c.Context(), page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetIssuances, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"issuances": issuances,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       count,
			"total_pages": (count + int64(limit) - 1) / int64(limit),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetIssuances)
}

func (h *issuanceHandler) GetAvailableIssuances(c *fiber.Ctx) error {
	res, err := h.issuanceService.GetAvailableIssuances(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetIssuances, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetAvailableIssuances)
}

func (h *issuanceHandler) DeleteIssuance(c *fiber.Ctx) error {
	issuanceID := c.Params("id")

	if err := h.issuanceService.DeleteIssuance(c.Context(), issuanceID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteIssuance, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteIssuance)
}
