package smtp

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/go-notes-api/internal/config"
)

// Mailer delivers transactional mail. The only traffic today is one-time
// passcodes, so the interface stays at a single plain-text send.
type Mailer interface {
	SendEmail(to, subject, body string) error
}

type mailer struct {
	host     string
	port     string
	from     string
	username string
	password string
}

// NewMailer builds a Mailer from the SMTP settings in cfg. An empty username
// means an unauthenticated relay, which is what a local debug server expects.
func NewMailer(cfg *config.Config) Mailer {
	return &mailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		from:     cfg.SMTPFrom,
		username: cfg.SMTPUsername,
		password: cfg.SMTPPassword,
	}
}

func (m *mailer) SendEmail(to, subject, body string) error {
	msg := strings.Join([]string{
		fmt.Sprintf("From: Notes App <%s>", m.from),
		"To: " + to,
		"Subject: " + subject,
		"",
		body,
	}, "\r\n")

	var auth smtp.Auth
	if m.username != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.host)
	}

	addr := m.host + ":" + m.port
	return smtp.SendMail(addr, auth, m.from, []string{to}, []byte(msg))
}
