// Package mailer sends the intake system's notification email. Callers
// treat delivery as best-effort: submission and status changes never wait
// on, or fail because of, the mail relay.
package mailer

import (
	"fmt"
	"log"

	"gopkg.in/gomail.v2"

	"fiber/khayalethu/app/model"
)

// Notifier is the mail surface used by the services. Tests substitute a
// recording fake.
type Notifier interface {
	// SubmissionReceived mails the operator the full application detail
	// and the applicant a confirmation.
	SubmissionReceived(a model.Application) error
	// DecisionMade mails the applicant the accept/decline outcome with the
	// reviewer's optional note.
	DecisionMade(a model.Application, note string) error
	// Probe sends a test message so operators can verify mail settings.
	Probe(to string) error
}

// Config carries the SMTP transport settings and the operator recipient.
type Config struct {
	Host       string
	Port       int
	User       string
	Password   string
	FromName   string
	AdminEmail string
}

type SMTPNotifier struct {
	dialer *gomail.Dialer
	cfg    Config
}

func NewSMTPNotifier(cfg Config) *SMTPNotifier {
	return &SMTPNotifier{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		cfg:    cfg,
	}
}

func (n *SMTPNotifier) send(to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", n.cfg.User, n.cfg.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)
	return n.dialer.DialAndSend(m)
}

func (n *SMTPNotifier) SubmissionReceived(a model.Application) error {
	admin := n.cfg.AdminEmail
	if admin == "" {
		admin = n.cfg.User
	}
	if err := n.send(admin,
		fmt.Sprintf("New Application: %s (%s)", a.FullNames, a.StudentNumber),
		adminDetailHTML(a)); err != nil {
		return fmt.Errorf("admin notification: %w", err)
	}
	if err := n.send(a.Email,
		fmt.Sprintf("Application Confirmation - Khayalethu Student Accommodation (%s)", a.StudentNumber),
		confirmationHTML(a)); err != nil {
		return fmt.Errorf("applicant confirmation: %w", err)
	}
	return nil
}

func (n *SMTPNotifier) DecisionMade(a model.Application, note string) error {
	subject := fmt.Sprintf("Application Update - Khayalethu Student Accommodation (%s)", a.StudentNumber)
	if err := n.send(a.Email, subject, decisionHTML(a, note)); err != nil {
		return fmt.Errorf("decision notification: %w", err)
	}
	return nil
}

func (n *SMTPNotifier) Probe(to string) error {
	return n.send(to, "Test: Admin Email Notification System", probeHTML())
}

// LogNotifier stands in when mail is not configured: it records what would
// have been sent and succeeds, so submissions keep working without SMTP.
type LogNotifier struct{}

func (LogNotifier) SubmissionReceived(a model.Application) error {
	log.Printf("[mail] not configured; skipped submission notices for application %d (%s)", a.ID, a.Email)
	return nil
}

func (LogNotifier) DecisionMade(a model.Application, note string) error {
	log.Printf("[mail] not configured; skipped %s notice for application %d (%s)", a.Status, a.ID, a.Email)
	return nil
}

func (LogNotifier) Probe(to string) error {
	return fmt.Errorf("email not configured - missing EMAIL_USER or EMAIL_PASS")
}
