package infra

import (
	"fmt"
	"net/smtp"

	"gastropos/internal/config"

	"github.com/jordan-wright/email"
)

// Mailer sends invoice PDFs through the configured SMTP relay.
type Mailer struct {
	host     string
	user     string
	password string
	from     string
	addr     string
	send     func(e *email.Email, addr string, auth smtp.Auth) error
}

// NewMailer returns nil when SMTP is not configured.
func NewMailer(cfg *config.Config) *Mailer {
	if !cfg.SMTPEnabled() {
		return nil
	}
	return &Mailer{
		host:     cfg.SMTPHost,
		user:     cfg.SMTPUser,
		password: cfg.SMTPPassword,
		from:     fmt.Sprintf("%s <%s>", cfg.BusinessName, cfg.SMTPFrom),
		addr:     fmt.Sprintf("%s:%d", cfg.SMTPHost, cfg.SMTPPort),
		send: func(e *email.Email, addr string, auth smtp.Auth) error {
			return e.Send(addr, auth)
		},
	}
}

// Message builds the e-mail for a rendered invoice. pdfPath may be empty.
func (m *Mailer) Message(to, subject, body, pdfPath string) (*email.Email, error) {
	e := email.NewEmail()
	e.From = m.from
	e.To = []string{to}
	e.Subject = subject
	e.Text = []byte(body)
	if pdfPath != "" {
		if _, err := e.AttachFile(pdfPath); err != nil {
			return nil, fmt.Errorf("mailer: attach pdf: %w", err)
		}
	}
	return e, nil
}

// SendComprobante e-mails an invoice PDF.
func (m *Mailer) SendComprobante(to, subject, body, pdfPath string) error {
	e, err := m.Message(to, subject, body, pdfPath)
	if err != nil {
		return err
	}
	var auth smtp.Auth
	if m.user != "" {
		auth = smtp.PlainAuth("", m.user, m.password, m.host)
	}
	return m.send(e, m.addr, auth)
}
