package entities

import (
	"github.com/google/uuid"
)

type Ingredient struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name      string    `json:"name"`
	UnitClass string    `json:"unit_class"` // mass, volume, count
	StockBase float64   `json:"stock_base"` // canonical base units: g, ml or un

	Timestamp
}

type StockMovement struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	IngredientID uuid.UUID  `json:"ingredient_id"`
	Quantity     float64    `json:"quantity"` // signed base quantity, negative for debits
	Reason       string     `json:"reason"`   // Issuance, IssuanceReturn, Adjustment
	ReferenceID  *uuid.UUID `json:"reference_id,omitempty"`
	Note         string     `json:"note,omitempty"`

	Ingredient *Ingredient `gorm:"foreignKey:IngredientID"`
	Timestamp
}
