// Package notifier delivers match confirmation emails.
//
// Delivery is fire-and-forget from the scheduling core's point of view: a
// failed send never rolls back a lifecycle mutation. Transient SMTP
// failures are retried here because the send happens outside any database
// transaction.
package notifier

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	gomail "gopkg.in/gomail.v2"

	appConfig "github.com/clubsports/matchday/internal/config"
	"github.com/clubsports/matchday/pkg/retry"
)

// Notifier sends a message to a single recipient.
type Notifier interface {
	Send(ctx context.Context, recipient, subject, htmlBody string) error
}

type mailNotifier struct {
	cfg    appConfig.SMTPConfig
	dialer *gomail.Dialer
	logger *zap.SugaredLogger
}

// New creates an SMTP-backed notifier. When SMTP is not configured it
// returns a no-op notifier that only logs, so local development does not
// need a mail server.
func New(cfg appConfig.SMTPConfig, logger *zap.SugaredLogger) Notifier {
	if !cfg.Enabled() {
		return &noopNotifier{logger: logger}
	}
	return &mailNotifier{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		logger: logger,
	}
}

// Send delivers an HTML email, retrying transient failures.
func (n *mailNotifier) Send(ctx context.Context, recipient, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", n.cfg.From)
	msg.SetHeader("To", recipient)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	retryCfg := retry.SMTPConfig()
	retryCfg.MaxAttempts = 3
	retryCfg.InitialDelay = 500 * time.Millisecond
	retryCfg.MaxDelay = 5 * time.Second

	err := retry.Do(ctx, retryCfg, func() error {
		return n.dialer.DialAndSend(msg)
	})
	if err != nil {
		return fmt.Errorf("failed to send mail to %s: %w", recipient, err)
	}

	n.logger.Infow("confirmation mail sent", "recipient", recipient, "subject", subject)
	return nil
}

// NewNoop returns a notifier that logs and drops every message.
func NewNoop(logger *zap.SugaredLogger) Notifier {
	return &noopNotifier{logger: logger}
}

type noopNotifier struct {
	logger *zap.SugaredLogger
}

func (n *noopNotifier) Send(_ context.Context, recipient, subject, _ string) error {
	n.logger.Infow("mail delivery disabled, dropping message",
		"recipient", recipient,
		"subject", subject,
	)
	return nil
}
