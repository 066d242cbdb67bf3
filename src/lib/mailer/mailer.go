// Package mailer renders and sends the transactional emails.
package mailer

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log"

	"travelbook/src/config"
	"travelbook/src/lib"
	"travelbook/src/models"
)

type Mailer interface {
	SendBookingConfirmation(ctx context.Context, b models.Booking) error
	SendOTP(ctx context.Context, email, code string) error
	SendNotification(ctx context.Context, to []string, subject, message string) error
}

// SendFunc delivers a prepared message. lib.SendMail in production.
type SendFunc func(input *lib.SendMailInput) error

type SMTPMailer struct {
	from     string
	fromName string
	send     SendFunc
	attach   func(b models.Booking) (*lib.Attachment, error)
}

func New(send SendFunc) *SMTPMailer {
	if send == nil {
		send = lib.SendMail
	}
	return &SMTPMailer{
		from:     config.MailFrom(),
		fromName: config.MailFromName(),
		send:     send,
	}
}

// WithTicketAttachment attaches the generated e-ticket to confirmation emails.
func (m *SMTPMailer) WithTicketAttachment(fn func(b models.Booking) (*lib.Attachment, error)) *SMTPMailer {
	m.attach = fn
	return m
}

func (m *SMTPMailer) deliver(ctx context.Context, input *lib.SendMailInput) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	input.From = m.from
	input.FromName = m.fromName
	if err := m.send(input); err != nil {
		log.Printf("[Mailer] Error sending %q to %v: %s\n", input.Subject, input.To, err.Error())
		return fmt.Errorf("sending email: %w", err)
	}
	return nil
}

func render(t *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (m *SMTPMailer) SendBookingConfirmation(ctx context.Context, b models.Booking) error {
	body, err := render(confirmationTemplate, b)
	if err != nil {
		return err
	}
	input := &lib.SendMailInput{
		To:      []string{b.ContactEmail},
		Subject: fmt.Sprintf("Booking confirmed: %s to %s on %s (%s)", b.Origin, b.Destination, b.Date, b.TicketCode),
		Body:    body,
		Html:    true,
	}
	if m.attach != nil {
		a, err := m.attach(b)
		if err != nil {
			log.Printf("[Mailer] Could not attach ticket for %s: %s\n", b.ID, err.Error())
		} else if a != nil {
			input.Attachments = append(input.Attachments, *a)
		}
	}
	return m.deliver(ctx, input)
}

func (m *SMTPMailer) SendOTP(ctx context.Context, email, code string) error {
	body, err := render(otpTemplate, map[string]any{
		"Code":    code,
		"Minutes": int(config.OTP_TTL.Minutes()),
	})
	if err != nil {
		return err
	}
	return m.deliver(ctx, &lib.SendMailInput{
		To:      []string{email},
		Subject: "Your verification code",
		Body:    body,
		Html:    true,
		Text:    fmt.Sprintf("Your verification code is %s", code),
	})
}

func (m *SMTPMailer) SendNotification(ctx context.Context, to []string, subject, message string) error {
	body, err := render(notificationTemplate, map[string]any{
		"Subject": subject,
		"Message": message,
	})
	if err != nil {
		return err
	}
	return m.deliver(ctx, &lib.SendMailInput{
		To:      to,
		Subject: subject,
		Body:    body,
		Html:    true,
		Text:    message,
	})
}
