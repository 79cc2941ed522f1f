package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *emailService) SendOverdueReminder(ctx context.Context, toEmail, toName, vehicleDesc string, scheduledReturn time.Time) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, toEmail)

	subject := fmt.Sprintf("Vehicle return overdue: %s", vehicleDesc)
	plainText := fmt.Sprintf(
		"Hello %s,\n\nThe %s you rented was due back on %s. Please return it as soon as possible.\nLate days are charged at 1.5x the daily rate.\n\nThank you",
		toName, vehicleDesc, scheduledReturn.Format("2006-01-02"))
	htmlContent := fmt.Sprintf(
		"<p>Hello %s,</p><p>The <strong>%s</strong> you rented was due back on <strong>%s</strong>. Please return it as soon as possible.</p><p>Late days are charged at 1.5x the daily rate.</p>",
		toName, vehicleDesc, scheduledReturn.Format("2006-01-02"))

	message := mail.NewSingleEmail(from, subject, recipient, plainText, htmlContent)

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send overdue reminder: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}
