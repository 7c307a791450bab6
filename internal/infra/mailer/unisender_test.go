package mailer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"linkvault/config"
	"linkvault/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMailer(endpoint string) *unisenderMailer {
	return &unisenderMailer{
		endpoint: endpoint,
		cfg: &config.MailerConfig{
			APIKey:      "test-key",
			SenderName:  "LinkVault",
			SenderEmail: "noreply@linkvault.test",
			SendTimeout: time.Second,
		},
		client: &http.Client{Timeout: time.Second},
	}
}

func TestUnisenderMailer_Send(t *testing.T) {
	var got sendRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	mailer := newTestMailer(server.URL)

	err := mailer.Send(context.Background(), service.Mail{
		To:         "user@example.com",
		Subject:    "Verify your email",
		TemplateID: "tpl-registration",
		Data:       map[string]string{"code": "abc123"},
	})

	require.NoError(t, err)
	assert.Equal(t, "test-key", got.APIKey)
	assert.Equal(t, "tpl-registration", got.Message.TemplateID)
	assert.Equal(t, "noreply@linkvault.test", got.Message.FromEmail)
	require.Len(t, got.Message.Recipients, 1)
	assert.Equal(t, "user@example.com", got.Message.Recipients[0].Email)
	assert.Equal(t, "abc123", got.Message.Substitutions["code"])
}

func TestUnisenderMailer_Send_ProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"failure_reason":"invalid api key"}`, http.StatusUnauthorized)
	}))
	defer server.Close()

	mailer := newTestMailer(server.URL)

	err := mailer.Send(context.Background(), service.Mail{To: "user@example.com"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
	assert.Contains(t, err.Error(), "invalid api key")
}

func TestNewUnisenderMailer_RequiresAPIKey(t *testing.T) {
	_, err := NewUnisenderMailer(&config.Config{Mailer: &config.MailerConfig{}})

	require.Error(t, err)
}
