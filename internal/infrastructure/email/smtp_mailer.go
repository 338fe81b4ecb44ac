// Package email implementa el transporte de correo saliente sobre SMTP.
package email

import (
	"context"
	"fmt"

	mail "github.com/wneessen/go-mail"

	"github.com/jhoicas/cumplimiento-api/internal/application/notify"
	"github.com/jhoicas/cumplimiento-api/pkg/config"
)

var _ notify.Mailer = (*SMTPMailer)(nil)

// SMTPMailer implementa notify.Mailer usando go-mail.
type SMTPMailer struct {
	client *mail.Client
	from   string
}

// NewSMTPMailer construye el cliente SMTP a partir de la configuración.
func NewSMTPMailer(cfg config.SMTPConfig) (*SMTPMailer, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTLSPortPolicy(mail.TLSOpportunistic),
	}
	if cfg.User != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.User),
			mail.WithPassword(cfg.Password),
		)
	}
	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("email: crear cliente SMTP: %w", err)
	}
	return &SMTPMailer{client: client, from: cfg.From}, nil
}

// Send envía un correo HTML a un destinatario.
func (m *SMTPMailer) Send(ctx context.Context, to, subject, html string) error {
	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return fmt.Errorf("email: remitente inválido: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("email: destinatario inválido: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, html)

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("email: enviar a %s: %w", to, err)
	}
	return nil
}
