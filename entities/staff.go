package entities

import (
	"github.com/google/uuid"
	"time"
)

type Staff struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RegistrationCode string    `gorm:"uniqueIndex" json:"registration_code"`
	Name             string    `json:"name"`
	BirthDate        time.Time `json:"birth_date"`
	Sex              string    `json:"sex"` // M or F
	JobRole          string    `json:"job_role"`
	NationalID       string    `gorm:"uniqueIndex" json:"national_id"`
	Email            string    `json:"email,omitempty"`
	Phone            string    `json:"phone,omitempty"`

	PostalCode  string `json:"postal_code,omitempty"`
	Street      string `json:"street,omitempty"`
	Number      string `json:"number,omitempty"`
	District    string `json:"district,omitempty"`
	City        string `json:"city,omitempty"`
	State       string `json:"state,omitempty"`
	AddressNote string `json:"address_note,omitempty"`

	PhotoURL string `json:"photo_url,omitempty"`

	Timestamp
}
