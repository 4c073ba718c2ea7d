package services

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"birthdaywish-backend/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore implements ContactStore in memory
type fakeStore struct {
	contacts []BirthdayContact
	sentYear map[uuid.UUID]int // contact -> year a sent entry exists for
	logs     []models.EmailLog

	fetchErr error
	checkErr error
	logErr   error
}

func newFakeStore(contacts ...BirthdayContact) *fakeStore {
	return &fakeStore{contacts: contacts, sentYear: map[uuid.UUID]int{}}
}

func (f *fakeStore) AllWithBusinessName() ([]BirthdayContact, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return f.contacts, nil
}

func (f *fakeStore) SentThisYear(contactID uuid.UUID, year int) (bool, error) {
	if f.checkErr != nil {
		return false, f.checkErr
	}
	if y, ok := f.sentYear[contactID]; ok && y == year {
		return true, nil
	}
	for _, l := range f.logs {
		if l.ContactID == contactID && l.Status == models.StatusSent && l.SentAt.Year() == year {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStore) CreateLog(entry *models.EmailLog) error {
	if f.logErr != nil {
		return f.logErr
	}
	f.logs = append(f.logs, *entry)
	return nil
}

func (f *fakeStore) sentLogs() []models.EmailLog {
	var out []models.EmailLog
	for _, l := range f.logs {
		if l.Status == models.StatusSent {
			out = append(out, l)
		}
	}
	return out
}

// fakeComposer records calls and returns a deterministic message
type fakeComposer struct {
	calls []string // "name/tone/business"
}

func (f *fakeComposer) ComposeBirthdayMessage(name, tone, businessName string) (string, bool) {
	f.calls = append(f.calls, fmt.Sprintf("%s/%s/%s", name, tone, businessName))
	return fmt.Sprintf("Happy Birthday, %s!\n\nWarm regards,\n%s", name, businessName), false
}

// fakeSender can be told to fail for specific addresses
type fakeSender struct {
	sent    []string
	failFor map[string]error
}

func (f *fakeSender) SendBirthdayEmail(to, name, message string) (string, error) {
	if err, ok := f.failFor[to]; ok {
		return "", err
	}
	f.sent = append(f.sent, to)
	return "<" + to + ">", nil
}

type fakeSMS struct {
	sent []string
	err  error
}

func (f *fakeSMS) SendBirthdaySMS(to, name, businessName string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, to)
	return nil
}

func birthdayContact(name, email string, dob time.Time) BirthdayContact {
	return BirthdayContact{
		ID:           uuid.New(),
		UserID:       uuid.New(),
		Name:         name,
		Email:        email,
		DOB:          dob,
		Tone:         models.ToneFriendly,
		BusinessName: "Sweet Treats",
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestRunOnceMatchesOnlyTodaysBirthdays(t *testing.T) {
	ana := birthdayContact("Ana", "ana@example.com", date(1990, time.March, 15))
	bo := birthdayContact("Bo", "bo@example.com", date(1985, time.July, 1))
	store := newFakeStore(ana, bo)
	sender := &fakeSender{}
	composer := &fakeComposer{}

	svc := NewBirthdayService(store, composer, sender, nil)
	result, err := svc.RunOnce(date(2024, time.March, 15))

	require.NoError(t, err)
	assert.Equal(t, RunResult{Matched: 1, Sent: 1}, result)
	assert.Equal(t, []string{"ana@example.com"}, sender.sent)
	assert.Equal(t, []string{"Ana/friendly/Sweet Treats"}, composer.calls)

	require.Len(t, store.logs, 1)
	entry := store.logs[0]
	assert.Equal(t, ana.ID, entry.ContactID)
	assert.Equal(t, models.StatusSent, entry.Status)
	assert.Equal(t, "Ana", entry.ContactName)
	assert.Equal(t, "ana@example.com", entry.ContactEmail)
	assert.Regexp(t, "Warm regards,\nSweet Treats$", entry.MessageContent)
}

func TestRunOnceMatchIgnoresBirthYear(t *testing.T) {
	old := birthdayContact("Maud", "maud@example.com", date(1932, time.January, 2))
	store := newFakeStore(old)
	sender := &fakeSender{}

	svc := NewBirthdayService(store, &fakeComposer{}, sender, nil)
	result, err := svc.RunOnce(date(2025, time.January, 2))

	require.NoError(t, err)
	assert.Equal(t, 1, result.Sent)
}

func TestRunOnceSkipsContactsAlreadySentThisYear(t *testing.T) {
	ana := birthdayContact("Ana", "ana@example.com", date(1990, time.March, 15))
	store := newFakeStore(ana)
	sender := &fakeSender{}
	svc := NewBirthdayService(store, &fakeComposer{}, sender, nil)

	first, err := svc.RunOnce(date(2024, time.March, 15))
	require.NoError(t, err)
	assert.Equal(t, 1, first.Sent)

	// A later run in the same year must not send again
	second, err := svc.RunOnce(date(2024, time.March, 15))
	require.NoError(t, err)
	assert.Equal(t, RunResult{Matched: 1, Skipped: 1}, second)
	assert.Len(t, store.sentLogs(), 1)
	assert.Len(t, sender.sent, 1)
}

func TestRunOnceSendsAgainNextYear(t *testing.T) {
	ana := birthdayContact("Ana", "ana@example.com", date(1990, time.March, 15))
	store := newFakeStore(ana)
	store.sentYear[ana.ID] = 2023
	sender := &fakeSender{}

	svc := NewBirthdayService(store, &fakeComposer{}, sender, nil)
	result, err := svc.RunOnce(date(2024, time.March, 15))

	require.NoError(t, err)
	assert.Equal(t, 1, result.Sent)
	assert.Equal(t, 0, result.Skipped)
}

func TestRunOnceContinuesAfterDeliveryFailure(t *testing.T) {
	day := date(2024, time.June, 10)
	a := birthdayContact("Ada", "ada@example.com", date(1970, time.June, 10))
	b := birthdayContact("Ben", "ben@example.com", date(1980, time.June, 10))
	c := birthdayContact("Cleo", "cleo@example.com", date(1990, time.June, 10))
	store := newFakeStore(a, b, c)
	sender := &fakeSender{failFor: map[string]error{
		"ben@example.com": errors.New("smtp: connection refused"),
	}}

	svc := NewBirthdayService(store, &fakeComposer{}, sender, nil)
	result, err := svc.RunOnce(day)

	require.NoError(t, err)
	assert.Equal(t, RunResult{Matched: 3, Sent: 2, Failed: 1}, result)

	// Failure is isolated: contacts after Ben were still processed
	assert.Equal(t, []string{"ada@example.com", "cleo@example.com"}, sender.sent)

	require.Len(t, store.logs, 3)
	failed := store.logs[1]
	assert.Equal(t, models.StatusFailed, failed.Status)
	assert.Equal(t, b.ID, failed.ContactID)
	assert.Contains(t, failed.ErrorMessage, "connection refused")
	assert.Empty(t, failed.MessageContent)
}

func TestRunOnceAbortsWhenStoreUnreachable(t *testing.T) {
	store := newFakeStore()
	store.fetchErr = errors.New("connection timed out")
	sender := &fakeSender{}

	svc := NewBirthdayService(store, &fakeComposer{}, sender, nil)
	_, err := svc.RunOnce(date(2024, time.March, 15))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetching contacts")
	assert.Empty(t, store.logs)
	assert.Empty(t, sender.sent)
}

func TestRunOnceZeroMatchesIsSuccess(t *testing.T) {
	bo := birthdayContact("Bo", "bo@example.com", date(1985, time.July, 1))
	store := newFakeStore(bo)

	svc := NewBirthdayService(store, &fakeComposer{}, &fakeSender{}, nil)
	result, err := svc.RunOnce(date(2024, time.March, 15))

	require.NoError(t, err)
	assert.Equal(t, RunResult{}, result)
	assert.Empty(t, store.logs)
}

func TestRunOnceDefaultsBusinessNameAndTone(t *testing.T) {
	contact := birthdayContact("Ana", "ana@example.com", date(1990, time.March, 15))
	contact.BusinessName = ""
	contact.Tone = ""
	store := newFakeStore(contact)
	composer := &fakeComposer{}

	svc := NewBirthdayService(store, composer, &fakeSender{}, nil)
	_, err := svc.RunOnce(date(2024, time.March, 15))

	require.NoError(t, err)
	assert.Equal(t, []string{"Ana/friendly/Our Team"}, composer.calls)
}

func TestRunOnceSMSIsBestEffort(t *testing.T) {
	withPhone := birthdayContact("Ana", "ana@example.com", date(1990, time.March, 15))
	withPhone.Phone = "+15551234567"
	noPhone := birthdayContact("Ben", "ben@example.com", date(1980, time.March, 15))
	store := newFakeStore(withPhone, noPhone)
	sms := &fakeSMS{}

	svc := NewBirthdayService(store, &fakeComposer{}, &fakeSender{}, sms)
	result, err := svc.RunOnce(date(2024, time.March, 15))

	require.NoError(t, err)
	assert.Equal(t, 2, result.Sent)
	assert.Equal(t, []string{"+15551234567"}, sms.sent)

	// An SMS failure must not change the email outcome
	store2 := newFakeStore(withPhone)
	svc2 := NewBirthdayService(store2, &fakeComposer{}, &fakeSender{}, &fakeSMS{err: errors.New("twilio down")})
	result2, err := svc2.RunOnce(date(2024, time.March, 15))
	require.NoError(t, err)
	assert.Equal(t, 1, result2.Sent)
	assert.Equal(t, models.StatusSent, store2.logs[0].Status)
}
