package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Message tones a contact can opt into.
const (
	ToneFriendly     = "friendly"
	ToneProfessional = "professional"
	ToneFormal       = "formal"
)

type Contact struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID uuid.UUID `gorm:"type:uuid;index;not null"`

	Name  string `gorm:"not null"`
	Email string `gorm:"not null"`
	Phone string
	// DOB's year is whatever the user entered; only month and day matter
	// for the birthday sweep.
	DOB  time.Time `gorm:"column:dob;not null"`
	Tone string    `gorm:"type:varchar(20);default:'friendly'"`

	gorm.Model
}

func (c *Contact) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return
}
