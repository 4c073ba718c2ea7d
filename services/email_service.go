// services/email_service.go
package services

import (
	"errors"
	"fmt"
	"html"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/gomail.v2"
)

// ErrEmailNotConfigured signals missing SMTP settings. It is distinct from a
// transient delivery failure so callers can tell the two apart.
var ErrEmailNotConfigured = errors.New("email service not configured: set SMTP_HOST, SMTP_USER and SMTP_PASS")

type EmailConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	FromName string
}

type EmailService struct {
	cfg EmailConfig
}

func NewEmailService(cfg EmailConfig) *EmailService {
	if cfg.Port == 0 {
		cfg.Port = 587
	}
	if cfg.FromName == "" {
		cfg.FromName = "Birthday Wisher"
	}
	return &EmailService{cfg: cfg}
}

func (s *EmailService) configured() bool {
	return s.cfg.Host != "" && s.cfg.User != "" && s.cfg.Password != ""
}

// SendBirthdayEmail delivers one birthday message and returns its Message-ID.
// The call blocks until the SMTP server accepts or rejects the mail.
func (s *EmailService) SendBirthdayEmail(to, name, message string) (string, error) {
	if !s.configured() {
		return "", ErrEmailNotConfigured
	}

	messageID := fmt.Sprintf("<%s@%s>", uuid.New().String(), s.cfg.Host)

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.cfg.User, s.cfg.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("🎂 Happy Birthday, %s!", name))
	m.SetHeader("Message-ID", messageID)
	m.SetBody("text/plain", message)
	m.AddAlternative("text/html", RenderBirthdayHTML(message, s.cfg.FromName))

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.User, s.cfg.Password)

	if err := d.DialAndSend(m); err != nil {
		return "", fmt.Errorf("failed to send email: %w", err)
	}

	return messageID, nil
}

// VerifyConfig dials and authenticates against the SMTP server without
// sending anything, for diagnostics.
func (s *EmailService) VerifyConfig() error {
	if !s.configured() {
		return ErrEmailNotConfigured
	}

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.User, s.cfg.Password)
	closer, err := d.Dial()
	if err != nil {
		return fmt.Errorf("email configuration error: %w", err)
	}
	return closer.Close()
}

// RenderBirthdayHTML wraps a plain-text message in the themed email layout.
// Every newline becomes a <br> so the rendered mail keeps the original line
// structure.
func RenderBirthdayHTML(message, fromName string) string {
	escaped := html.EscapeString(message)
	body := strings.ReplaceAll(escaped, "\n", "<br>")

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <style>
    body {
      font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif;
      line-height: 1.6;
      color: #333;
      max-width: 600px;
      margin: 0 auto;
      padding: 20px;
    }
    .container {
      background: linear-gradient(135deg, #667eea 0%%, #764ba2 100%%);
      border-radius: 10px;
      padding: 40px;
      text-align: center;
      color: white;
    }
    .emoji {
      font-size: 60px;
      margin-bottom: 20px;
    }
    .message {
      background: white;
      color: #333;
      padding: 30px;
      border-radius: 8px;
      margin: 20px 0;
    }
    .footer {
      margin-top: 20px;
      font-size: 12px;
      opacity: 0.9;
    }
  </style>
</head>
<body>
  <div class="container">
    <div class="emoji">🎉🎂🎈</div>
    <h1>Happy Birthday!</h1>
    <div class="message">%s</div>
    <div class="footer">
      Sent automatically by <strong>%s</strong>
    </div>
  </div>
</body>
</html>`, body, html.EscapeString(fromName))
}
