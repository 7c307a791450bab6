package service

import "context"

// Mail describes one outbound template email.
type Mail struct {
	To         string
	Subject    string
	TemplateID string
	Data       map[string]string
}

// Mailer sends notification emails. Calls are bounded by the context
// deadline; a send failure must never abort the caller's primary operation,
// so callers log and continue.
type Mailer interface {
	Send(ctx context.Context, mail Mail) error
}
