package service

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"net"
	"net/smtp"
	"strconv"
	"strings"

	"teleradiology-api/config"

	"github.com/sirupsen/logrus"
)

// MailMessage is a single HTML email.
type MailMessage struct {
	To      []string
	Subject string
	HTML    string
}

type Mailer interface {
	Send(ctx context.Context, msg MailMessage) error
}

// NewMailer returns an SMTP mailer, or a mailer that only logs when no SMTP
// host is configured.
func NewMailer(cfg config.SMTPConfig, log *logrus.Logger) Mailer {
	if cfg.Host == "" {
		return &logMailer{log: log}
	}
	return &smtpMailer{cfg: cfg, log: log}
}

type smtpMailer struct {
	cfg config.SMTPConfig
	log *logrus.Logger
}

func (m *smtpMailer) Send(ctx context.Context, msg MailMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	port := m.cfg.Port
	if port == 0 {
		port = 587
	}
	addr := net.JoinHostPort(m.cfg.Host, strconv.Itoa(port))

	var body bytes.Buffer
	body.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&body, "From: %s\r\n", m.cfg.From)
	fmt.Fprintf(&body, "To: %s\r\n", strings.Join(msg.To, ", "))
	fmt.Fprintf(&body, "Subject: %s\r\n", msg.Subject)
	body.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	body.WriteString("\r\n")
	body.WriteString(msg.HTML)

	var auth smtp.Auth
	if m.cfg.User != "" {
		auth = smtp.PlainAuth("", m.cfg.User, m.cfg.Password, m.cfg.Host)
	}
	if err := smtp.SendMail(addr, auth, m.cfg.From, msg.To, body.Bytes()); err != nil {
		m.log.Warnf("Failed to send email to %v: %+v", msg.To, err)
		return err
	}
	return nil
}

type logMailer struct {
	log *logrus.Logger
}

func (m *logMailer) Send(_ context.Context, msg MailMessage) error {
	m.log.WithFields(logrus.Fields{
		"to":      msg.To,
		"subject": msg.Subject,
	}).Info("SMTP not configured, email not sent")
	return nil
}

var mailLayout = template.Must(template.New("mail").Parse(`<!DOCTYPE html>
<html>
<body style="font-family:Arial,Helvetica,sans-serif;color:#1f2937;max-width:560px;margin:0 auto;padding:24px">
  <h2 style="color:#0c4a6e">{{.Heading}}</h2>
  <p>Hello {{.Name}},</p>
  <p>{{.Body}}</p>
  {{if .Link}}<p><a href="{{.Link}}" style="display:inline-block;padding:10px 18px;background:#0369a1;color:#fff;text-decoration:none;border-radius:4px">{{.Action}}</a></p>
  <p style="font-size:12px;color:#6b7280">{{.Link}}</p>{{end}}
</body>
</html>`))

type mailView struct {
	Heading string
	Name    string
	Body    string
	Action  string
	Link    string
}

func renderMail(v mailView) string {
	var buf bytes.Buffer
	if err := mailLayout.Execute(&buf, v); err != nil {
		return template.HTMLEscapeString(v.Body)
	}
	return buf.String()
}

func PasswordResetMessage(to, name, link string) MailMessage {
	return MailMessage{
		To:      []string{to},
		Subject: "Reset your password",
		HTML: renderMail(mailView{
			Heading: "Password reset",
			Name:    name,
			Body:    "We received a request to reset your password. The link below is valid for one hour.",
			Action:  "Reset password",
			Link:    link,
		}),
	}
}

func VerificationMessage(to, name, link string) MailMessage {
	return MailMessage{
		To:      []string{to},
		Subject: "Verify your email address",
		HTML: renderMail(mailView{
			Heading: "Confirm your email",
			Name:    name,
			Body:    "Please confirm your email address. The link below is valid for 24 hours.",
			Action:  "Verify email",
			Link:    link,
		}),
	}
}

func ContactReceivedMessage(to, name, subject string) MailMessage {
	return MailMessage{
		To:      []string{to},
		Subject: "We received your message: " + subject,
		HTML: renderMail(mailView{
			Heading: "Thanks for reaching out",
			Name:    name,
			Body:    "Our team has received your inquiry and will get back to you within one business day.",
		}),
	}
}

func ApplicationReceivedMessage(to, name string) MailMessage {
	return MailMessage{
		To:      []string{to},
		Subject: "Your radiologist application",
		HTML: renderMail(mailView{
			Heading: "Application received",
			Name:    name,
			Body:    "Thank you for applying. Our recruiting team will review your credentials and contact you.",
		}),
	}
}
