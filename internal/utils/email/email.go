package email

import (
	"fmt"
	"net/smtp"

	"github.com/Dan9191/rent-portal/internal/config"
	"github.com/Dan9191/rent-portal/internal/models"
	"github.com/jordan-wright/email"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// Sender handles sending emails via SMTP
type Sender struct {
	cfg    *config.Config
	logger *logrus.Logger
	send   func(e *email.Email) error
}

// NewSender creates a new email sender
func NewSender(cfg *config.Config, logger *logrus.Logger) *Sender {
	s := &Sender{
		cfg:    cfg,
		logger: logger,
	}
	s.send = s.smtpSend
	return s
}

func (s *Sender) smtpSend(e *email.Email) error {
	addr := fmt.Sprintf("%s:%s", s.cfg.SMTPHost, s.cfg.SMTPPort)
	var auth smtp.Auth
	if s.cfg.SMTPUsername != "" {
		auth = smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	}
	return e.Send(addr, auth)
}

// SendOverdueReminder tells a tenant that a rent installment is overdue
func (s *Sender) SendOverdueReminder(to string, p models.OverduePayment, currency string) error {
	e := email.NewEmail()
	e.From = s.cfg.SenderEmail
	e.To = []string{to}
	e.Subject = fmt.Sprintf("Overdue rent for %s", p.PropertyTitle)

	outstanding := p.AmountDue.Sub(p.AmountPaid)
	if outstanding.IsNegative() {
		outstanding = decimal.Zero
	}
	body := fmt.Sprintf("Dear %s,\n\n", p.TenantName)
	body += fmt.Sprintf(
		"Your rent of %s %s for %s was due on %s and is now %d day(s) overdue.\n"+
			"Amount paid so far: %s %s. Outstanding: %s %s.\n"+
			"Please settle the balance as soon as possible or contact your landlord.\n",
		p.AmountDue.StringFixed(2), currency, p.PropertyTitle, p.DueDate.String(), p.DaysOverdue,
		p.AmountPaid.StringFixed(2), currency, outstanding.StringFixed(2), currency,
	)
	body += "\nBest regards,\nRent Portal"
	e.Text = []byte(body)

	return s.deliver(e, to)
}

// SendExpiryNotice tells a tenant that their lease ends soon
func (s *Sender) SendExpiryNotice(to string, l models.ExpiringLease) error {
	e := email.NewEmail()
	e.From = s.cfg.SenderEmail
	e.To = []string{to}
	e.Subject = fmt.Sprintf("Your lease for %s ends on %s", l.PropertyTitle, l.EndDate.String())

	body := fmt.Sprintf("Dear %s,\n\n", l.TenantName)
	body += fmt.Sprintf(
		"Your lease for %s ends on %s (%d day(s) from today).\n"+
			"If you would like to renew, please get in touch with your landlord.\n",
		l.PropertyTitle, l.EndDate.String(), l.DaysRemaining,
	)
	body += "\nBest regards,\nRent Portal"
	e.Text = []byte(body)

	return s.deliver(e, to)
}

func (s *Sender) deliver(e *email.Email, to string) error {
	if err := s.send(e); err != nil {
		s.logger.Errorf("Failed to send email to %s: %v", to, err)
		return fmt.Errorf("failed to send email: %w", err)
	}
	s.logger.Infof("Email sent to %s: %s", to, e.Subject)
	return nil
}
