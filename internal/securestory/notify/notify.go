// Package notify delivers out-of-band messages to users. The only message
// today is the password-reset link.
package notify

import (
	"context"
	"errors"
	"fmt"

	"gopkg.in/gomail.v2"
)

const resetSubject = "Reset your SecureStory password"

// ErrNotConfigured is returned when no mail transport is configured.
var ErrNotConfigured = errors.New("notify: mail delivery not configured")

// Sender delivers a reset link to an email address.
type Sender interface {
	SendPasswordReset(ctx context.Context, to, resetURL string) error
}

// SMTPConfig holds the SMTP transport settings.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Configured reports whether every field needed to dial is set.
func (c SMTPConfig) Configured() bool {
	return c.Host != "" && c.Port > 0 && c.From != ""
}

// dialer is the subset of *gomail.Dialer used by SMTPSender.
type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPSender sends mail through an SMTP relay. Port 465 uses implicit TLS.
type SMTPSender struct {
	from   string
	dialer dialer
}

func NewSMTPSender(cfg SMTPConfig) *SMTPSender {
	return &SMTPSender{
		from:   cfg.From,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
	}
}

func (s *SMTPSender) SendPasswordReset(ctx context.Context, to, resetURL string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", resetSubject)
	m.SetBody("text/plain", resetBody(resetURL))

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send reset email: %w", err)
	}
	return nil
}

func resetBody(resetURL string) string {
	return "Reset link:\n" + resetURL + "\n\nIf you didn't request this, ignore this email."
}

// DisabledSender is used when SMTP is not configured.
type DisabledSender struct{}

func (DisabledSender) SendPasswordReset(context.Context, string, string) error {
	return ErrNotConfigured
}

// New returns an SMTPSender when cfg is complete and a DisabledSender otherwise.
func New(cfg SMTPConfig) Sender {
	if !cfg.Configured() {
		return DisabledSender{}
	}
	return NewSMTPSender(cfg)
}
