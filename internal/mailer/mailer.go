// Package mailer sends generated correspondence over SMTP. It is an
// optional collaborator: callers treat a nil Transport as "not
// configured" and fall back to demo results.
package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"golang.org/x/time/rate"

	"github.com/sells-group/estate-cli/internal/config"
)

// Transport delivers one message. Failures are returned as values for
// the caller to convert into an error-status result; they never abort
// the generating operation.
type Transport interface {
	Send(ctx context.Context, to, subject, body string) error
}

// SMTP implements Transport over a plain-auth SMTP relay. Sends are
// rate-limited so a burst of outreach generation cannot trip relay
// throttling.
type SMTP struct {
	host     string
	port     int
	from     string
	password string
	limiter  *rate.Limiter
	send     func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewSMTP builds an SMTP transport from config. Callers must check
// cfg.Configured() first.
func NewSMTP(cfg config.SMTPConfig) *SMTP {
	limit := cfg.RateLimit
	if limit <= 0 {
		limit = 1
	}
	return &SMTP{
		host:     cfg.Host,
		port:     cfg.Port,
		from:     cfg.From,
		password: cfg.Password,
		limiter:  rate.NewLimiter(rate.Limit(limit), 1),
		send:     smtp.SendMail,
	}
}

func (m *SMTP) Send(ctx context.Context, to, subject, body string) error {
	if err := m.limiter.Wait(ctx); err != nil {
		return eris.Wrap(err, "mailer: rate limit wait")
	}

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", m.from)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	fmt.Fprintf(&msg, "Message-ID: <%s@%s>\r\n", uuid.New().String(), m.host)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)

	auth := smtp.PlainAuth("", m.from, m.password, m.host)
	addr := fmt.Sprintf("%s:%d", m.host, m.port)
	if err := m.send(addr, auth, m.from, []string{to}, []byte(msg.String())); err != nil {
		return eris.Wrapf(err, "mailer: send to %s", to)
	}
	return nil
}
