package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateIngredient  = "ingredient created successfully"
	MessageSuccessUpdateIngredient  = "ingredient updated successfully"
	MessageSuccessDeleteIngredient  = "ingredient deleted successfully"
	MessageSuccessGetIngredients    = "ingredients retrieved successfully"
	MessageSuccessAdjustStock       = "stock adjusted successfully"
	MessageSuccessGetStockMovements = "stock movements retrieved successfully"

	MessageFailedCreateIngredient  = "failed to create ingredient"
	MessageFailedUpdateIngredient  = "failed to update ingredient"
	MessageFailedDeleteIngredient  = "failed to delete ingredient"
	MessageFailedGetIngredients    = "failed to retrieve ingredients"
	MessageFailedAdjustStock       = "failed to adjust stock"
	MessageFailedGetStockMovements = "failed to retrieve stock movements"

	ErrIngredientNotFound = errors.New("ingredient not found")
	ErrIngredientInUse    = errors.New("ingredient has issuance or consumption records")
	ErrInsufficientStock  = errors.New("requested quantity exceeds available stock")
	ErrNegativeQuantity   = errors.New("quantity must not be negative")
	ErrUnknownUnitClass   = errors.New("unknown unit class")
	ErrInvalidUnit        = errors.New("unit does not match ingredient unit class")
)

type (
	CreateIngredientRequest struct {
		Name         string  `json:"name" validate:"required"`
		UnitClass    string  `json:"unit_class" validate:"required,oneof=mass volume count"`
		InitialStock float64 `json:"initial_stock" validate:"gte=0"`
	}

	UpdateIngredientRequest struct {
		Name string `json:"name" validate:"required"`
	}

	AdjustStockRequest struct {
		Type     string  `json:"type" validate:"required,oneof=credit debit"`
		Quantity float64 `json:"quantity" validate:"required,gt=0"`
		Note     string  `json:"note" validate:"omitempty"`
	}

	IngredientResponse struct {
		ID           string  `json:"id"`
		Name         string  `json:"name"`
		UnitClass    string  `json:"unit_class"`
		StockBase    float64 `json:"stock_base"`
		BaseUnit     string  `json:"base_unit"`
		StockDisplay string  `json:"stock_display"`
	}

	StockMovementResponse struct {
		ID           string    `json:"id"`
		IngredientID string    `json:"ingredient_id"`
		Quantity     float64   `json:"quantity"`
		Reason       string    `json:"reason"`
		ReferenceID  string    `json:"reference_id,omitempty"`
		Note         string    `json:"note,omitempty"`
		CreatedAt    time.Time `json:"created_at"`
	}
)
