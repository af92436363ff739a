package entities

import (
	"github.com/google/uuid"
	"time"
)

type CatalogEntry struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name        string    `json:"name"`
	Description string    `gorm:"type:text" json:"description,omitempty"`

	Products []*FinishedProduct `gorm:"foreignKey:CatalogID"`
	Timestamp
}

type FinishedProduct struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	CatalogID      uuid.UUID  `json:"catalog_id"`
	Quantity       int        `json:"quantity"`
	UnitWeight     float64    `json:"unit_weight"` // grams per unit
	ProductionDate *time.Time `json:"production_date,omitempty"`
	ExpiryDate     *time.Time `json:"expiry_date,omitempty"`
	Price          *float64   `json:"price,omitempty"`

	Catalog *CatalogEntry `gorm:"foreignKey:CatalogID"`
	Timestamp
}
