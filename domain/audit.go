package domain

import (
	"errors"
)

var (
	MessageSuccessGetVarianceReport = "variance report computed successfully"
	MessageSuccessRecordAudit       = "audit recorded successfully"
	MessageSuccessGetChecklists     = "audit checklists retrieved successfully"
	MessageSuccessDeleteChecklist   = "audit checklist deleted successfully"
	MessageSuccessExportChecklist   = "audit checklist exported successfully"

	MessageFailedGetVarianceReport = "failed to compute variance report"
	MessageFailedRecordAudit       = "failed to record audit"
	MessageFailedGetChecklists     = "failed to retrieve audit checklists"
	MessageFailedDeleteChecklist   = "failed to delete audit checklist"
	MessageFailedExportChecklist   = "failed to export audit checklist"

	ErrChecklistNotFound = errors.New("no audit snapshots for that date")
	ErrEmptyAudit        = errors.New("audit needs at least one counted ingredient")
	ErrInvalidAuditDate  = errors.New("invalid audit date")
)

type (
	VarianceReportRow struct {
		IngredientID   string  `json:"ingredient_id"`
		IngredientName string  `json:"ingredient_name"`
		BaseUnit       string  `json:"base_unit"`
		Withdrawn      float64 `json:"withdrawn"`
		Consumed       float64 `json:"consumed"`
		Theoretical    float64 `json:"theoretical"`
	}

	AuditItemRequest struct {
		IngredientID string  `json:"ingredient_id" validate:"required,uuid"`
		Actual       float64 `json:"actual" validate:"gte=0"`
	}

	RecordAuditRequest struct {
		Items []AuditItemRequest `json:"items" validate:"required,min=1,dive"`
	}

	SnapshotResponse struct {
		ID             string  `json:"id"`
		IngredientID   string  `json:"ingredient_id"`
		IngredientName string  `json:"ingredient_name,omitempty"`
		Withdrawn      float64 `json:"withdrawn"`
		Consumed       float64 `json:"consumed"`
		Theoretical    float64 `json:"theoretical"`
		Actual         float64 `json:"actual"`
		Waste          float64 `json:"waste"`
		AuditDate      string  `json:"audit_date"`
	}
)
