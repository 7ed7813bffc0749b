// Package mail provides a fluent mailer with two transports:
//
//   - "smtp": plain SMTP / STARTTLS / implicit TLS on :465
//   - "mailgun": the Mailgun messages API with server-side templates
//
// Usage:
//
//	mail.To("user@example.com").
//	    Subject("Verify Your Email").
//	    Template("confirm-account", map[string]string{"code": code}).
//	    Send()
//
// The transport is picked from MAIL_DRIVER. Template() only has an effect
// on the Mailgun driver; the SMTP driver falls back to the Body.
package mail

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/shashiranjanraj/platter/config"
)

// SMTPConfig holds SMTP connection credentials.
type SMTPConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
	FromName string
}

func defaultSMTP() SMTPConfig {
	return SMTPConfig{
		Host:     config.MailHost(),
		Port:     config.MailPort(),
		Username: config.MailUsername(),
		Password: config.MailPassword(),
		From:     config.MailFrom(),
		FromName: config.MailFromName(),
	}
}

// Message is a fluent builder for one outbound email.
type Message struct {
	to       []string
	subject  string
	body     string
	isHTML   bool
	template string
	vars     map[string]string
	smtpCfg  SMTPConfig
	driver   string
}

// To starts a message to the given recipients.
func To(addresses ...string) *Message {
	return &Message{
		to:      addresses,
		isHTML:  true,
		smtpCfg: defaultSMTP(),
		driver:  config.MailDriver(),
	}
}

// Subject sets the email subject.
func (m *Message) Subject(s string) *Message {
	m.subject = s
	return m
}

// Body sets an HTML body.
func (m *Message) Body(html string) *Message {
	m.body = html
	m.isHTML = true
	return m
}

// Text sets a plain-text body.
func (m *Message) Text(text string) *Message {
	m.body = text
	m.isHTML = false
	return m
}

// Template selects a provider-side template and its variables.
// On the SMTP driver the variables are rendered into a plain fallback body.
func (m *Message) Template(name string, vars map[string]string) *Message {
	m.template = name
	m.vars = vars
	return m
}

// UseSMTP overrides the SMTP settings for this message and forces the
// SMTP driver. Tests use this to point at a local sink.
func (m *Message) UseSMTP(cfg SMTPConfig) *Message {
	m.smtpCfg = cfg
	m.driver = "smtp"
	return m
}

// Send delivers the email via the configured transport.
func (m *Message) Send() error {
	if m.driver == "mailgun" {
		return m.sendMailgun()
	}
	return m.sendSMTP()
}

// ── SMTP transport ───────────────────────────────────────────────────────────

func (m *Message) sendSMTP() error {
	cfg := m.smtpCfg
	if cfg.Username == "" {
		return fmt.Errorf("mail: MAIL_USERNAME not configured")
	}

	from := fmt.Sprintf("%s <%s>", cfg.FromName, cfg.From)
	raw := m.buildRaw(from)

	addr := cfg.Host + ":" + cfg.Port
	auth := smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)

	// Implicit TLS on 465, STARTTLS elsewhere.
	if cfg.Port == "465" {
		return m.sendTLS(addr, auth, cfg.From, m.to, raw, cfg.Host)
	}
	return smtp.SendMail(addr, auth, cfg.From, m.to, raw)
}

func (m *Message) sendTLS(addr string, auth smtp.Auth, from string, to []string, raw []byte, host string) error {
	conn, err := tls.Dial("tcp", addr, &tls.Config{ServerName: host})
	if err != nil {
		return fmt.Errorf("mail: TLS dial: %w", err)
	}
	client, err := smtp.NewClient(conn, host)
	if err != nil {
		return err
	}
	defer client.Quit()

	if err := client.Auth(auth); err != nil {
		return err
	}
	if err := client.Mail(from); err != nil {
		return err
	}
	for _, rcpt := range to {
		if err := client.Rcpt(rcpt); err != nil {
			return err
		}
	}
	w, err := client.Data()
	if err != nil {
		return err
	}
	defer w.Close()
	_, err = w.Write(raw)
	return err
}

func (m *Message) buildRaw(from string) []byte {
	body := m.body
	if body == "" && m.template != "" {
		// SMTP has no provider templates; render a minimal fallback.
		var sb strings.Builder
		sb.WriteString(m.subject)
		for k, v := range m.vars {
			sb.WriteString(fmt.Sprintf("\r\n%s: %s", k, v))
		}
		body = sb.String()
		m.isHTML = false
	}

	contentType := "text/plain"
	if m.isHTML {
		contentType = "text/html"
	}

	var b bytes.Buffer
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + strings.Join(m.to, ", ") + "\r\n")
	b.WriteString("Subject: " + m.subject + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&b, "Content-Type: %s; charset=\"UTF-8\"\r\n", contentType)
	b.WriteString("\r\n")
	b.WriteString(body)
	return b.Bytes()
}
