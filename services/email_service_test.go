package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendFailsFastWhenNotConfigured(t *testing.T) {
	svc := NewEmailService(EmailConfig{})

	_, err := svc.SendBirthdayEmail("ana@example.com", "Ana", "Happy Birthday!")
	require.ErrorIs(t, err, ErrEmailNotConfigured)

	// Partial configuration is still not configured
	svc = NewEmailService(EmailConfig{Host: "smtp.example.com", User: "mailer"})
	_, err = svc.SendBirthdayEmail("ana@example.com", "Ana", "Happy Birthday!")
	require.ErrorIs(t, err, ErrEmailNotConfigured)
}

func TestVerifyConfigFailsFastWhenNotConfigured(t *testing.T) {
	svc := NewEmailService(EmailConfig{})
	assert.ErrorIs(t, svc.VerifyConfig(), ErrEmailNotConfigured)
}

func TestRenderBirthdayHTMLPreservesLines(t *testing.T) {
	message := "Happy Birthday, Ana!\nHave a wonderful day.\n\nWarm regards,\nSweet Treats"

	html := RenderBirthdayHTML(message, "Sweet Treats")

	// Every newline becomes exactly one <br>, so the visual line count of
	// the original text is preserved
	assert.Equal(t, strings.Count(message, "\n"), strings.Count(html, "<br>"))
	assert.NotContains(t, html, "\nHave a wonderful day")
	for _, line := range strings.Split(message, "\n") {
		if line != "" {
			assert.Contains(t, html, line)
		}
	}
}

func TestRenderBirthdayHTMLEscapesMarkup(t *testing.T) {
	html := RenderBirthdayHTML("Hi <script>alert(1)</script>", "A&B Co")

	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
	assert.Contains(t, html, "A&amp;B Co")
}

func TestEmailConfigDefaults(t *testing.T) {
	svc := NewEmailService(EmailConfig{Host: "smtp.example.com", User: "u", Password: "p"})
	assert.Equal(t, 587, svc.cfg.Port)
	assert.Equal(t, "Birthday Wisher", svc.cfg.FromName)
}
