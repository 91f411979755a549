package email

import (
	"fmt"
	"log"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/audiomint/backend/pkg/logger"
)

// client is the part of the SendGrid client the service uses.
type client interface {
	Send(email *mail.SGMailV3) (*rest.Response, error)
}

// Service handles email sending
type Service struct {
	fromEmail   string
	fromName    string
	sendGridKey string
	useSendGrid bool
	client      client
	log         logger.Logger
}

// NewService creates a new email service
// If sendGridAPIKey is provided, emails will be sent via SendGrid
// Otherwise, emails will be logged to console (development mode)
func NewService(fromEmail, fromName, sendGridAPIKey string, l logger.Logger) *Service {
	if l == nil {
		l = logger.Nop()
	}
	s := &Service{
		fromEmail:   fromEmail,
		fromName:    fromName,
		sendGridKey: sendGridAPIKey,
		useSendGrid: sendGridAPIKey != "",
		log:         l.With("component", "email"),
	}
	if s.useSendGrid {
		s.client = sendgrid.NewSendClient(sendGridAPIKey)
		log.Printf("✅ Email service initialized with SendGrid")
	} else {
		log.Printf("⚠️  Email service in console-only mode (set SENDGRID_API_KEY for production)")
	}
	return s
}

// SendEmail sends an email with the given subject and bodies.
// Uses SendGrid in production, logs to console in development.
func (s *Service) SendEmail(toEmail, toName, subject, htmlBody, plainTextBody string) error {
	if toEmail == "" {
		return fmt.Errorf("email: empty recipient")
	}
	if !s.useSendGrid {
		s.log.Info("Email NOT sent (development mode)",
			"subject", subject,
			"to", toEmail,
			"to_name", toName,
			"from", s.fromEmail,
		)
		return nil
	}
	return s.sendViaSendGrid(toEmail, toName, subject, htmlBody, plainTextBody)
}

// sendViaSendGrid sends email using SendGrid API
func (s *Service) sendViaSendGrid(toEmail, toName, subject, htmlBody, plainTextBody string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, plainTextBody, htmlBody)

	response, err := s.client.Send(message)
	if err != nil {
		s.log.Error("SendGrid error", "error", err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	if response.StatusCode >= 400 {
		s.log.Error("SendGrid returned error status", "status", response.StatusCode, "body", response.Body)
		return fmt.Errorf("sendgrid returned error status: %d", response.StatusCode)
	}

	s.log.Info("Email sent", "to", toEmail, "status", response.StatusCode)
	return nil
}
