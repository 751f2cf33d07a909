package notify

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

type recordingDialer struct {
	sent []*gomail.Message
	err  error
}

func (d *recordingDialer) DialAndSend(m ...*gomail.Message) error {
	d.sent = append(d.sent, m...)
	return d.err
}

func TestSMTPSenderBuildsResetMessage(t *testing.T) {
	d := &recordingDialer{}
	s := &SMTPSender{from: "noreply@securestory.test", dialer: d}

	link := "https://app.test/reset-password?token=abc&email=alice%40example.com"
	require.NoError(t, s.SendPasswordReset(context.Background(), "alice@example.com", link))
	require.Len(t, d.sent, 1)

	m := d.sent[0]
	require.Equal(t, []string{"noreply@securestory.test"}, m.GetHeader("From"))
	require.Equal(t, []string{"alice@example.com"}, m.GetHeader("To"))
	require.Equal(t, []string{"Reset your SecureStory password"}, m.GetHeader("Subject"))

	var buf bytes.Buffer
	_, err := m.WriteTo(&buf)
	require.NoError(t, err)
	require.Contains(t, buf.String(), "Reset link:")
}

func TestSMTPSenderWrapsDialErrors(t *testing.T) {
	boom := errors.New("connection refused")
	s := &SMTPSender{from: "noreply@securestory.test", dialer: &recordingDialer{err: boom}}

	err := s.SendPasswordReset(context.Background(), "alice@example.com", "https://x")
	require.ErrorIs(t, err, boom)
}

func TestSMTPSenderHonoursCancelledContext(t *testing.T) {
	d := &recordingDialer{}
	s := &SMTPSender{from: "noreply@securestory.test", dialer: d}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, s.SendPasswordReset(ctx, "alice@example.com", "https://x"), context.Canceled)
	require.Empty(t, d.sent)
}

func TestNewSelectsTransport(t *testing.T) {
	require.IsType(t, DisabledSender{}, New(SMTPConfig{}))
	require.IsType(t, &SMTPSender{}, New(SMTPConfig{Host: "smtp.test", Port: 587, From: "a@b.c"}))

	err := DisabledSender{}.SendPasswordReset(context.Background(), "a@b.c", "https://x")
	require.ErrorIs(t, err, ErrNotConfigured)
}
