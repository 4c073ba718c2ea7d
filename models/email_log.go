package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Send-attempt outcomes.
const (
	StatusSent   = "sent"
	StatusFailed = "failed"
)

// EmailLog records one birthday send attempt. Rows are written once by the
// pipeline and never updated; contact name and email are captured at send
// time so the history survives later edits to the contact.
type EmailLog struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	ContactID uuid.UUID `gorm:"type:uuid;index:idx_contact_status_sent,priority:1;not null"`
	UserID    uuid.UUID `gorm:"type:uuid;index;not null"`

	ContactName    string    `gorm:"not null"`
	ContactEmail   string    `gorm:"not null"`
	MessageContent string    `gorm:"type:text"`
	Status         string    `gorm:"type:varchar(20);index:idx_contact_status_sent,priority:2"`
	ErrorMessage   string    `gorm:"type:text"`
	SentAt         time.Time `gorm:"index:idx_contact_status_sent,priority:3"`

	gorm.Model
}

func (l *EmailLog) BeforeCreate(tx *gorm.DB) (err error) {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return
}
