package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultBusinessName is used whenever a contact's owner has no profile
// or left the business name blank.
const DefaultBusinessName = "Our Team"

type Profile struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID       uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	BusinessName string    `gorm:"not null"`

	gorm.Model
}

func (p *Profile) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return
}
