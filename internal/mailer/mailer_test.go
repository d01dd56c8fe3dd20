package mailer

import (
	"context"
	"net/smtp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/estate-cli/internal/config"
)

func TestSMTPSendBuildsMessage(t *testing.T) {
	var gotAddr, gotFrom string
	var gotTo []string
	var gotMsg []byte

	m := NewSMTP(config.SMTPConfig{
		Host:     "smtp.example.com",
		Port:     587,
		From:     "executor@example.com",
		Password: "app-password",
	})
	m.send = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotFrom, gotTo, gotMsg = addr, from, to, msg
		return nil
	}

	err := m.Send(context.Background(), "accounts-support@google.com", "Recovery Request", "Dear Support Team,")
	require.NoError(t, err)

	assert.Equal(t, "smtp.example.com:587", gotAddr)
	assert.Equal(t, "executor@example.com", gotFrom)
	assert.Equal(t, []string{"accounts-support@google.com"}, gotTo)
	assert.Contains(t, string(gotMsg), "Subject: Recovery Request\r\n")
	assert.Contains(t, string(gotMsg), "Message-ID: <")
	assert.Contains(t, string(gotMsg), "\r\n\r\nDear Support Team,")
}

func TestSMTPSendFailureIsWrapped(t *testing.T) {
	m := NewSMTP(config.SMTPConfig{Host: "smtp.example.com", Port: 587, From: "a@b.c", Password: "x"})
	m.send = func(string, smtp.Auth, string, []string, []byte) error {
		return assert.AnError
	}

	err := m.Send(context.Background(), "support@fb.com", "s", "b")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mailer: send to support@fb.com")
}

func TestSMTPConfiguredGate(t *testing.T) {
	assert.False(t, config.SMTPConfig{From: "a@b.c"}.Configured())
	assert.False(t, config.SMTPConfig{Password: "x"}.Configured())
	assert.True(t, config.SMTPConfig{From: "a@b.c", Password: "x"}.Configured())
}
