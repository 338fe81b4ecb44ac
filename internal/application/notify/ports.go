package notify

import "context"

// Mailer puerto de transporte de correo saliente.
type Mailer interface {
	Send(ctx context.Context, to, subject, html string) error
}
