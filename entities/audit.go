package entities

import (
	"github.com/google/uuid"
	"time"
)

// VarianceSnapshot is one ingredient's line in a dated stock audit. Waste may
// be negative when the counted quantity exceeds the theoretical remainder.
type VarianceSnapshot struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	IngredientID uuid.UUID `json:"ingredient_id"`
	Withdrawn    float64   `json:"withdrawn"`
	Consumed     float64   `json:"consumed"`
	Theoretical  float64   `json:"theoretical"`
	Actual       float64   `json:"actual"`
	Waste        float64   `json:"waste"`
	AuditDate    time.Time `gorm:"type:date" json:"audit_date"`

	Ingredient *Ingredient `gorm:"foreignKey:IngredientID"`
	Timestamp
}
