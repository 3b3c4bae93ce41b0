package email

import (
	"context"
	"fmt"

	"careerpro_backend/internal/config"
	"careerpro_backend/internal/logger"
)

// Provider sends transactional mail. The log provider is the default so
// local development never needs SMTP credentials.
type Provider interface {
	Send(ctx context.Context, to, subject, body string) error
}

// NewProvider builds a provider from config.
func NewProvider(cfg config.EmailConfig) Provider {
	if cfg.Provider == "smtp" && cfg.Host != "" {
		return &smtpProvider{cfg: cfg}
	}
	return &logProvider{}
}

// logProvider writes outgoing mail to the log instead of sending it.
type logProvider struct{}

func (p *logProvider) Send(ctx context.Context, to, subject, body string) error {
	logger.CtxInfo(ctx, "outgoing email (log provider)",
		"to", to,
		"subject", subject,
		"body", body,
	)
	return nil
}

// SendVerificationCode delivers the 6-digit signup code.
func SendVerificationCode(ctx context.Context, p Provider, to, code string) error {
	subject := "Verify your email"
	body := fmt.Sprintf("Your verification code is %s. It expires in 15 minutes.", code)
	return p.Send(ctx, to, subject, body)
}

// SendPasswordReset delivers the reset token.
func SendPasswordReset(ctx context.Context, p Provider, to, token string) error {
	subject := "Reset your password"
	body := fmt.Sprintf("Use this token to reset your password: %s. It expires in 1 hour.", token)
	return p.Send(ctx, to, subject, body)
}
