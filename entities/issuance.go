package entities

import (
	"github.com/google/uuid"
	"time"
)

// IssuanceRecord is a single withdrawal of an ingredient from stock. The
// remaining principal/complementary pair is stored in the ingredient's base
// unit and is drawn down as production sheets consume it; IssuedBase keeps
// the originally withdrawn total for reconciliation.
type IssuanceRecord struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	IngredientID uuid.UUID `json:"ingredient_id"`
	IssuedByID   uuid.UUID `json:"issued_by_id"`
	ReceivedByID uuid.UUID `json:"received_by_id"`

	RemainingPrincipal     float64   `json:"remaining_principal"`
	RemainingComplementary float64   `json:"remaining_complementary"`
	EntryUnit              string    `json:"entry_unit"` // kg, g, l, ml, un
	IssuedBase             float64   `json:"issued_base"`
	IssuedAt               time.Time `json:"issued_at"`

	Ingredient *Ingredient `gorm:"foreignKey:IngredientID"`
	IssuedBy   *Staff      `gorm:"foreignKey:IssuedByID"`
	ReceivedBy *Staff      `gorm:"foreignKey:ReceivedByID"`
	Timestamp
}
