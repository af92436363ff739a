package entities

import (
	"github.com/google/uuid"
	"time"
)

type ProductionSheet struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	ProductID     uuid.UUID  `json:"product_id"`
	StaffID       *uuid.UUID `json:"staff_id,omitempty"`
	SignedBy      string     `json:"signed_by"`
	ProductWeight float64    `json:"product_weight"` // declared weight in grams
	SignedAt      time.Time  `json:"signed_at"`

	Product      *FinishedProduct     `gorm:"foreignKey:ProductID"`
	Staff        *Staff               `gorm:"foreignKey:StaffID"`
	Consumptions []*ConsumptionRecord `gorm:"foreignKey:SheetID"`
	Timestamp
}

type ConsumptionRecord struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	SheetID      uuid.UUID `json:"sheet_id"`
	IngredientID uuid.UUID `json:"ingredient_id"`
	IssuanceID   uuid.UUID `json:"issuance_id"`
	Quantity     float64   `json:"quantity"`
	EntryUnit    string    `json:"entry_unit"`
	QuantityBase float64   `json:"quantity_base"` // converted at write time

	Sheet      *ProductionSheet `gorm:"foreignKey:SheetID"`
	Ingredient *Ingredient      `gorm:"foreignKey:IngredientID"`
	Issuance   *IssuanceRecord  `gorm:"foreignKey:IssuanceID"`
	Timestamp
}
