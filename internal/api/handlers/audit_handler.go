package handlers

import (
	"Bakehouse-Backend/domain"
	"Bakehouse-Backend/internal/api/presenters"
	"Bakehouse-Backend/pkg/audit"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	AuditHandler interface {
		GetVarianceReport(c *fiber.Ctx) error
		RecordAudit(c *fiber.Ctx) error
		GetChecklistDates(c *fiber.Ctx) error
		GetChecklist(c *fiber.Ctx) error
		DeleteChecklist(c *fiber.Ctx) error
		ExportChecklist(c *fiber.Ctx) error
	}

	auditHandler struct {
		auditService audit.AuditService
		validator    *validator.Validate
	}
)

func NewAuditHandler(auditService audit.AuditService, validator *validator.Validate) AuditHandler {
	return &auditHandler{
		auditService: auditService,
		validator:    validator,
	}
}

func (h *auditHandler) GetVarianceReport(c *fiber.Ctx) error {
	rows, err := h.auditService.ComputeReport(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetVarianceReport, err)
	}

	return presenters.SuccessResponse(c, rows, fiber.StatusOK, domain.MessageSuccessGetVarianceReport)
}

func (h *auditHandler) RecordAudit(c *fiber.Ctx) error {
	date := c.Query("date", "")
	req := new(domain.RecordAuditRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRecordAudit, err)
	}

	snapshots, err := h.auditService.RecordAudit(c.Context(), date, *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRecordAudit, err)
	}

	return presenters.SuccessResponse(c, snapshots, fiber.StatusCreated, domain.MessageSuccessRecordAudit)
}

func (h *auditHandler) GetChecklistDates(c *fiber.Ctx) error {
	dates, err := h.auditService.GetChecklistDates(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetChecklists, err)
	}

	return presenters.SuccessResponse(c, dates, fiber.StatusOK, domain.MessageSuccessGetChecklists)
}

func (h *auditHandler) GetChecklist(c *fiber.Ctx) error {
	date := c.Params("date")

	snapshots, err := h.auditService.GetChecklist(c.Context(), date)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetChecklists, err)
	}

	return presenters.SuccessResponse(c, snapshots, fiber.StatusOK, domain.MessageSuccessGetChecklists)
}

func (h *auditHandler) DeleteChecklist(c *fiber.Ctx) error {
	date := c.Params("date")

	if err := h.auditService.DeleteChecklist(c.Context(), date); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteChecklist, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteChecklist)
}

func (h *auditHandler) ExportChecklist(c *fiber.Ctx) error {
	date := c.Params("date")

	data, filename, err := h.auditService.ExportChecklist(c.Context(), date)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedExportChecklist, err)
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(data)
}
