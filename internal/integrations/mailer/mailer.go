package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/sirupsen/logrus"
)

// Mailer sends plain-text mail through an SMTP relay.
type Mailer struct {
	host     string
	port     int
	username string
	password string
	from     string
	log      *logrus.Logger

	// sendMail is swapped out in tests
	sendMail func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewMailer(host string, port int, username, password, from string, log *logrus.Logger) *Mailer {
	return &Mailer{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
		log:      log,
		sendMail: smtp.SendMail,
	}
}

// Send delivers a plain-text email. The context is honored only up to the
// SMTP handshake; net/smtp has no per-request cancellation.
func (m *Mailer) Send(ctx context.Context, recipient, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := buildMessage(m.from, recipient, subject, body)
	addr := fmt.Sprintf("%s:%d", m.host, m.port)

	var auth smtp.Auth
	if m.username != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.host)
	}

	if err := m.sendMail(addr, auth, m.from, []string{recipient}, msg); err != nil {
		return fmt.Errorf("failed to send mail to %s: %w", recipient, err)
	}

	m.log.Debugf("Email accepted for %s", recipient)
	return nil
}

func buildMessage(from, to, subject, body string) []byte {
	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + subject + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	return []byte(b.String())
}
