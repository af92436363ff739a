package entities

import (
	"github.com/google/uuid"
)

type User struct {
	ID       uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Username string     `gorm:"uniqueIndex" json:"username"`
	Password string     `json:"-"`
	Role     string     `json:"role"` // admin, hr, inventory, pastry
	StaffID  *uuid.UUID `json:"staff_id,omitempty"`

	Staff *Staff `gorm:"foreignKey:StaffID"`
	Timestamp
}
