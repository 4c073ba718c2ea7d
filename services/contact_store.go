// services/contact_store.go
package services

import (
	"time"

	"birthdaywish-backend/models"
	"birthdaywish-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BirthdayContact is one row of the pipeline sweep: a contact joined with its
// owner's business display name.
type BirthdayContact struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Name         string
	Email        string
	Phone        string
	DOB          time.Time
	Tone         string
	BusinessName string
}

// ContactStore is the pipeline's view of persistent storage.
type ContactStore interface {
	// AllWithBusinessName returns every contact with the owning profile's
	// business name joined in (empty when the owner has no profile).
	AllWithBusinessName() ([]BirthdayContact, error)
	// SentThisYear reports whether a sent-status log entry exists for the
	// contact within the given calendar year.
	SentThisYear(contactID uuid.UUID, year int) (bool, error)
	// CreateLog appends one send-attempt record. Entries are never updated.
	CreateLog(entry *models.EmailLog) error
}

type GormContactStore struct {
	db *gorm.DB
}

func NewGormContactStore(db *gorm.DB) *GormContactStore {
	return &GormContactStore{db: db}
}

func (s *GormContactStore) AllWithBusinessName() ([]BirthdayContact, error) {
	var rows []BirthdayContact
	err := s.db.Table("contacts").
		Select("contacts.id, contacts.user_id, contacts.name, contacts.email, contacts.phone, contacts.dob, contacts.tone, profiles.business_name").
		Joins("LEFT JOIN profiles ON profiles.user_id = contacts.user_id AND profiles.deleted_at IS NULL").
		Where("contacts.deleted_at IS NULL").
		Scan(&rows).Error
	return rows, err
}

func (s *GormContactStore) SentThisYear(contactID uuid.UUID, year int) (bool, error) {
	start, end := utils.YearRange(year, time.Local)

	var count int64
	err := s.db.Model(&models.EmailLog{}).
		Where("contact_id = ? AND status = ? AND sent_at BETWEEN ? AND ?",
			contactID, models.StatusSent, start, end).
		Count(&count).Error
	return count > 0, err
}

func (s *GormContactStore) CreateLog(entry *models.EmailLog) error {
	return s.db.Create(entry).Error
}
