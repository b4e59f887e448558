package adapter

import (
	"context"
	"fmt"
	"time"

	gomail "github.com/wneessen/go-mail"

	"github.com/MKhiriev/occupa-lo-studente/internal/config"
	"github.com/MKhiriev/occupa-lo-studente/internal/logger"
	"github.com/MKhiriev/occupa-lo-studente/models"
)

type smtpMailer struct {
	cfg     config.Mail
	timeout time.Duration

	logger *logger.Logger
}

// NewSMTPMailer returns a [Mailer] that opens one authenticated SMTP
// connection per message.
func NewSMTPMailer(cfg config.Mail, timeout time.Duration, logger *logger.Logger) Mailer {
	return &smtpMailer{cfg: cfg, timeout: timeout, logger: logger}
}

func (m *smtpMailer) Send(ctx context.Context, mail models.Mail) error {
	msg, err := newMessage(mail)
	if err != nil {
		return err
	}
	if m.cfg.Server == "" {
		return ErrMailNotConfigured
	}

	opts := []gomail.Option{
		gomail.WithPort(m.cfg.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(m.cfg.Username),
		gomail.WithPassword(m.cfg.Password),
	}
	if m.timeout > 0 {
		opts = append(opts, gomail.WithTimeout(m.timeout))
	}

	client, err := gomail.NewClient(m.cfg.Server, opts...)
	if err != nil {
		return fmt.Errorf("%w: smtp client: %w", ErrSendingMail, err)
	}
	if err = client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("%w: %w", ErrSendingMail, err)
	}

	m.logger.Debug().Str("func", "*smtpMailer.Send").Str("to", mail.To).Str("subject", mail.Subject).Msg("mail sent")
	return nil
}

func newMessage(mail models.Mail) (*gomail.Msg, error) {
	msg := gomail.NewMsg()
	if err := msg.From(mail.From); err != nil {
		return nil, fmt.Errorf("%w: from address: %w", ErrSendingMail, err)
	}
	if err := msg.To(mail.To); err != nil {
		return nil, fmt.Errorf("%w: to address: %w", ErrSendingMail, err)
	}
	msg.Subject(mail.Subject)
	msg.SetBodyString(gomail.TypeTextHTML, mail.HTML)
	return msg, nil
}
