package handlers

import (
	"Bakehouse-Backend/domain"
	"Bakehouse-Backend/internal/api/presenters"
	"Bakehouse-Backend/pkg/staff"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	StaffHandler interface {
		CreateStaff(c *fiber.Ctx) error
		GetStaff(c *fiber.Ctx) error
		GetStaffDetails(c *fiber.Ctx) error
		UpdateStaff(c *fiber.Ctx) error
		DeleteStaff(c *fiber.Ctx) error
		UploadStaffPhoto(c *fiber.Ctx) error
	}

	staffHandler struct {
		staffService staff.StaffService
		validator    *validator.Validate
	}
)

func NewStaffHandler(staffService staff.StaffService, validator *validator.Validate) StaffHandler {
	return &staffHandler{
		staffService: staffService,
		validator:    validator,
	}
}

func (h *staffHandler) CreateStaff(c *fiber.Ctx) error {
	req := new(domain.CreateStaffRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateStaff, err)
	}

	res, err := h.staffService.CreateStaff(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateStaff, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateStaff)
}

func (h *staffHandler) GetStaff(c *fiber.Ctx) error {
	search := c.Query("search", "")

	res, err := h.staffService.GetStaff(c.Context(), search)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetStaff, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetStaff)
}

func (h *staffHandler) GetStaffDetails(c *fiber.Ctx) error {
	staffID := c.Params("id")

	res, err := h.staffService.GetStaffByID(c.Context(), staffID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetStaff, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetStaff)
}

func (h *staffHandler) UpdateStaff(c *fiber.Ctx) error {
	staffID := c.Params("id")
	req := new(domain.UpdateStaffRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateStaff, err)
	}

	if err := h.staffService.UpdateStaff(c.Context(), staffID, *req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateStaff, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateStaff)
}

func (h *staffHandler) DeleteStaff(c *fiber.Ctx) error {
	staffID := c.Params("id")

	if err := h.staffService.DeleteStaff(c.Context(), staffID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteStaff, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteStaff)
}

func (h *staffHandler) UploadStaffPhoto(c *fiber.Ctx) error {
	req := new(domain.UploadStaffPhotoRequest)
	req.StaffID = c.Params("id")

	file, err := c.FormFile("photo")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	req.Photo = file

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadStaffPhoto, err)
	}

	url, err := h.staffService.UploadStaffPhoto(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadStaffPhoto, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"photo_url": url}, fiber.StatusOK, domain.MessageSuccessUploadStaffPhoto)
}
