package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateSheet = "production sheet created and signed successfully"
	MessageSuccessGetSheets   = "production sheets retrieved successfully"
	MessageSuccessDeleteSheet = "production sheet deleted successfully"

	MessageFailedCreateSheet = "failed to create production sheet"
	MessageFailedGetSheets   = "failed to retrieve production sheets"
	MessageFailedDeleteSheet = "failed to delete production sheet"

	ErrSheetNotFound     = errors.New("production sheet not found")
	ErrEmptyConsumptions = errors.New("production sheet needs at least one consumption line")
	ErrWrongPassword     = errors.New("password confirmation failed")
)

type (
	ConsumptionLineRequest struct {
		IssuanceID string  `json:"issuance_id" validate:"required,uuid"`
		Quantity   float64 `json:"quantity" validate:"required,gt=0"`
		Unit       string  `json:"unit" validate:"required,oneof=kg g l ml un"`
	}

	CreateSheetRequest struct {
		ProductID     string                   `json:"product_id" validate:"required,uuid"`
		ProductWeight float64                  `json:"product_weight" validate:"required,gt=0"`
		Password      string                   `json:"password" validate:"required"`
		Consumptions  []ConsumptionLineRequest `json:"consumptions" validate:"required,dive"`
	}

	ConsumptionLineResponse struct {
		ID             string  `json:"id"`
		IngredientID   string  `json:"ingredient_id"`
		IngredientName string  `json:"ingredient_name,omitempty"`
		IssuanceID     string  `json:"issuance_id"`
		Quantity       float64 `json:"quantity"`
		Unit           string  `json:"unit"`
		QuantityBase   float64 `json:"quantity_base"`
	}

	SheetResponse struct {
		ID            string                    `json:"id"`
		ProductID     string                    `json:"product_id"`
		ProductName   string                    `json:"product_name,omitempty"`
		SignedBy      string                    `json:"signed_by"`
		ProductWeight float64                   `json:"product_weight"`
		SignedAt      time.Time                 `json:"signed_at"`
		Consumptions  []ConsumptionLineResponse `json:"consumptions,omitempty"`
	}
)
