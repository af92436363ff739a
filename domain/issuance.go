package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateIssuance        = "issuance registered successfully"
	MessageSuccessDeleteIssuance        = "issuance removed and stock returned"
	MessageSuccessGetIssuances          = "issuances retrieved successfully"
	MessageSuccessGetAvailableIssuances = "available issuances retrieved successfully"

	MessageFailedCreateIssuance = "failed to register issuance"
	MessageFailedDeleteIssuance = "failed to remove issuance"
	MessageFailedGetIssuances   = "failed to retrieve issuances"

	ErrIssuanceNotFound = errors.New("issuance not found")
	ErrOverconsumption  = errors.New("requested consumption exceeds issuance remainder")
)

type (
	CreateIssuanceRequest struct {
		IngredientID  string  `json:"ingredient_id" validate:"required,uuid"`
		IssuedByID    string  `json:"issued_by_id" validate:"required,uuid"`
		ReceivedByID  string  `json:"received_by_id" validate:"required,uuid"`
		Principal     float64 `json:"principal" validate:"gte=0"`
		Complementary float64 `json:"complementary" validate:"gte=0"`
		Unit          string  `json:"unit" validate:"required,oneof=kg g l ml un"`
	}

	IssuanceResponse struct {
		ID               string    `json:"id"`
		IngredientID     string    `json:"ingredient_id"`
		IngredientName   string    `json:"ingredient_name"`
		IssuedByID       string    `json:"issued_by_id"`
		IssuedByName     string    `json:"issued_by_name,omitempty"`
		ReceivedByID     string    `json:"received_by_id"`
		ReceivedByName   string    `json:"received_by_name,omitempty"`
		EntryUnit        string    `json:"entry_unit"`
		IssuedBase       float64   `json:"issued_base"`
		RemainingBase    float64   `json:"remaining_base"`
		RemainingDisplay string    `json:"remaining_display"`
		IssuedAt         time.Time `json:"issued_at"`
	}
)
