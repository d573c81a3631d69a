package service

import (
	"context"
	"fmt"

	"fleetrent-backend/internal/billing"
	"fleetrent-backend/internal/domain"
	"fleetrent-backend/internal/logger"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type sendgridEmailService struct {
	client *sendgrid.Client
	from   *mail.Email
}

// NewEmailService returns a SendGrid-backed mailer, or a logging noop when no
// API key is configured (local development).
func NewEmailService(apiKey, fromName, fromAddr string) EmailService {
	if apiKey == "" {
		logger.Warn("Email disabled: no SendGrid API key configured")
		return &noopEmailService{}
	}
	return &sendgridEmailService{
		client: sendgrid.NewSendClient(apiKey),
		from:   mail.NewEmail(fromName, fromAddr),
	}
}

func (s *sendgridEmailService) SendOverdueReminder(ctx context.Context, toEmail, toName string, rental *domain.Rental) error {
	subject := fmt.Sprintf("Vehicle return overdue (rental #%d)", rental.ID)
	body := fmt.Sprintf(
		"Hello %s,\n\nOur records show rental #%d was due back on %s and the vehicle has not been returned yet. "+
			"Please return it as soon as possible; the final amount is recalculated from the actual return date.\n",
		toName, rental.ID, rental.EndDate.Format(billing.DateFormat))

	message := mail.NewSingleEmail(s.from, subject, mail.NewEmail(toName, toEmail), body, "")
	resp, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid rejected overdue reminder: status %d", resp.StatusCode)
	}
	return nil
}

type noopEmailService struct{}

func (s *noopEmailService) SendOverdueReminder(ctx context.Context, toEmail, toName string, rental *domain.Rental) error {
	logger.Info("Email disabled, skipping overdue reminder", "to", toEmail, "rental_id", rental.ID)
	return nil
}
