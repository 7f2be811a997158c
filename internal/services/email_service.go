package services

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"nanofrontier/internal/config"
)

type EmailService interface {
	SendSubmissionReceipt(email, investorName string, off config.Offering, amount, projected float64) error
}

type emailService struct {
	dialer *gomail.Dialer
	from   string
}

func NewEmailService(smtpHost string, smtpPort int, smtpUser, smtpPassword, fromEmail string) EmailService {
	dialer := gomail.NewDialer(smtpHost, smtpPort, smtpUser, smtpPassword)
	return &emailService{
		dialer: dialer,
		from:   fromEmail,
	}
}

func (s *emailService) SendSubmissionReceipt(email, investorName string, off config.Offering, amount, projected float64) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email)
	m.SetHeader("Subject", fmt.Sprintf("Your interest in %s has been registered", off.ProductName))

	body := fmt.Sprintf(`
		<h2>Thank you, %s!</h2>
		<p>We have registered your allocation interest in <strong>%s</strong>.</p>
		<ul>
			<li>Nominal investment: %.2f %s</li>
			<li>Indicative projected value: %.2f %s (%.2f&times;)</li>
		</ul>
		<p>Our team will contact you within 24&ndash;48 hours with onboarding details.</p>
		<p><em>The projected value is indicative only and does not constitute financial advice.</em></p>
	`, investorName, off.ProductName, amount, off.Currency, projected, off.Currency, off.Multiplier)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send submission receipt: %w", err)
	}

	return nil
}
