// services/birthday_service.go
package services

import (
	"fmt"
	"log"
	"time"

	"birthdaywish-backend/models"
	"birthdaywish-backend/utils"

	"github.com/robfig/cron/v3"
)

const DefaultCronExpression = "0 9 * * *" // daily at 9 AM

// MessageComposer produces the message body for one contact. It never fails;
// the bool reports whether the fallback template was used.
type MessageComposer interface {
	ComposeBirthdayMessage(name, tone, businessName string) (string, bool)
}

// BirthdaySender delivers one email and returns a delivery identifier.
type BirthdaySender interface {
	SendBirthdayEmail(to, name, message string) (string, error)
}

// SMSNotifier is the optional secondary wish channel.
type SMSNotifier interface {
	SendBirthdaySMS(to, name, businessName string) error
}

// RunResult summarizes one sweep.
type RunResult struct {
	Matched int `json:"matched"`
	Sent    int `json:"sent"`
	Failed  int `json:"failed"`
	Skipped int `json:"skipped"`
}

// BirthdayService runs the daily birthday sweep: find today's birthdays,
// skip contacts already wished this year, generate a message, send it, and
// record the outcome per contact.
type BirthdayService struct {
	store    ContactStore
	composer MessageComposer
	sender   BirthdaySender
	sms      SMSNotifier // nil when SMS is not configured
}

func NewBirthdayService(store ContactStore, composer MessageComposer, sender BirthdaySender, sms SMSNotifier) *BirthdayService {
	return &BirthdayService{
		store:    store,
		composer: composer,
		sender:   sender,
		sms:      sms,
	}
}

// RunOnce sweeps all contacts for birthdays matching now's month and day.
// Contacts are processed sequentially; a delivery failure is logged against
// that contact and the sweep continues. Only a failure to fetch contacts
// aborts the run, and it does so before any log entry is written.
//
// The sent-this-year check is advisory: two overlapping runs can still
// double-send for the same contact. Nothing locks the log table.
func (s *BirthdayService) RunOnce(now time.Time) (RunResult, error) {
	log.Println("Checking for birthdays today...")

	contacts, err := s.store.AllWithBusinessName()
	if err != nil {
		return RunResult{}, fmt.Errorf("fetching contacts: %w", err)
	}

	today := utils.MonthDay(now)
	var result RunResult

	for _, contact := range contacts {
		if utils.MonthDay(contact.DOB) != today {
			continue
		}
		result.Matched++

		alreadySent, err := s.store.SentThisYear(contact.ID, now.Year())
		if err != nil {
			log.Printf("Failed to check send log for %s: %v", contact.Name, err)
		}
		if alreadySent {
			log.Printf("Already sent birthday email to %s this year", contact.Name)
			result.Skipped++
			continue
		}

		businessName := contact.BusinessName
		if businessName == "" {
			businessName = models.DefaultBusinessName
		}
		tone := contact.Tone
		if tone == "" {
			tone = models.ToneFriendly
		}

		log.Printf("Generating message for %s...", contact.Name)
		message, usedFallback := s.composer.ComposeBirthdayMessage(contact.Name, tone, businessName)
		if usedFallback {
			log.Printf("AI generation unavailable, using %s fallback template for %s", tone, contact.Name)
		}

		entry := models.EmailLog{
			ContactID:    contact.ID,
			UserID:       contact.UserID,
			ContactName:  contact.Name,
			ContactEmail: contact.Email,
			SentAt:       now,
		}

		log.Printf("Sending email to %s...", contact.Email)
		if _, err := s.sender.SendBirthdayEmail(contact.Email, contact.Name, message); err != nil {
			log.Printf("Failed to send email to %s: %v", contact.Name, err)
			result.Failed++
			entry.Status = models.StatusFailed
			entry.ErrorMessage = err.Error()
		} else {
			log.Printf("Successfully sent birthday email to %s", contact.Name)
			result.Sent++
			entry.Status = models.StatusSent
			entry.MessageContent = message

			if s.sms != nil && contact.Phone != "" {
				if err := s.sms.SendBirthdaySMS(contact.Phone, contact.Name, businessName); err != nil {
					log.Printf("Failed to send SMS wish to %s: %v", contact.Name, err)
				}
			}
		}

		// Log write happens only after the delivery outcome is known, so a
		// crash mid-send can lose a log entry but never fake a sent one.
		if err := s.store.CreateLog(&entry); err != nil {
			log.Printf("Failed to log birthday email for %s: %v", contact.Name, err)
		}
	}

	log.Printf("Birthday check completed: %d matched, %d sent, %d failed, %d skipped",
		result.Matched, result.Sent, result.Failed, result.Skipped)
	return result, nil
}

// StartScheduler registers the daily sweep on a cron schedule and starts it.
// The returned cron can be stopped by the caller.
func (s *BirthdayService) StartScheduler(expr string) (*cron.Cron, error) {
	if expr == "" {
		expr = DefaultCronExpression
	}

	c := cron.New()
	_, err := c.AddFunc(expr, func() {
		log.Printf("Birthday scheduler running - %s", time.Now().Format(time.RFC3339))
		if _, err := s.RunOnce(time.Now()); err != nil {
			log.Printf("Birthday run failed: %v", err)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("invalid cron expression %q: %w", expr, err)
	}

	c.Start()
	log.Printf("Birthday scheduler started (%s)", expr)
	return c, nil
}
