// Package mailer implements outbound email delivery through the Unisender
// HTTP API.
package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"linkvault/config"
	"linkvault/internal/domain/service"

	"github.com/pkg/errors"
)

const defaultEndpoint = "https://go1.unisender.ru/ru/transactional/api/v1/email/send.json"

// unisenderMailer is a concrete implementation of the Mailer interface. Sends
// are bounded by the configured timeout; callers treat failures as
// log-and-continue, never as a reason to abort their primary operation.
type unisenderMailer struct {
	endpoint string
	cfg      *config.MailerConfig
	client   *http.Client
}

// NewUnisenderMailer is the constructor for unisenderMailer.
func NewUnisenderMailer(cfg *config.Config) (service.Mailer, error) {
	if cfg.Mailer == nil || cfg.Mailer.APIKey == "" {
		return nil, errors.New("mailer api key must be provided")
	}

	return &unisenderMailer{
		endpoint: defaultEndpoint,
		cfg:      cfg.Mailer,
		client:   &http.Client{Timeout: cfg.Mailer.SendTimeout},
	}, nil
}

type sendRequest struct {
	APIKey  string      `json:"api_key"`
	Message sendMessage `json:"message"`
}

type sendMessage struct {
	TemplateID    string            `json:"template_id"`
	Subject       string            `json:"subject"`
	FromName      string            `json:"from_name"`
	FromEmail     string            `json:"from_email"`
	Recipients    []recipient       `json:"recipients"`
	Substitutions map[string]string `json:"global_substitutions,omitempty"`
}

type recipient struct {
	Email string `json:"email"`
}

// Send posts one template email. The request is bounded by both the caller's
// context and the client timeout.
func (m *unisenderMailer) Send(ctx context.Context, mail service.Mail) error {
	body, err := json.Marshal(sendRequest{
		APIKey: m.cfg.APIKey,
		Message: sendMessage{
			TemplateID:    mail.TemplateID,
			Subject:       mail.Subject,
			FromName:      m.cfg.SenderName,
			FromEmail:     m.cfg.SenderEmail,
			Recipients:    []recipient{{Email: mail.To}},
			Substitutions: mail.Data,
		},
	})
	if err != nil {
		return errors.Wrap(err, "marshal mail request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "build mail request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "send mail request")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))

		return errors.Errorf("mail provider returned %d: %s", resp.StatusCode, string(detail))
	}

	return nil
}
