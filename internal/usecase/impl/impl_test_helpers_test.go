package impl

import (
	"io"
	"log/slog"
	"time"

	"linkvault/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		JWT: &config.JWTConfig{
			SecretKey:    "test-secret",
			AccessTTL:    time.Hour,
			RefreshTTL:   7 * 24 * time.Hour,
			UserProperty: "user_info",
			ScopeUser:    "user",
			ScopeAdmin:   "admin",
		},
		Auth: &config.AuthConfig{
			BcryptCost: 10,
		},
		Mailer: &config.MailerConfig{
			RegistrationTplID:   "tpl-registration",
			PasswordResetTplID:  "tpl-reset",
			SubjectVerification: "Verify your email",
			SubjectReset:        "Reset your password",
			SendTimeout:         time.Second,
		},
	}
}
