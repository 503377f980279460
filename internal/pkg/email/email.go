package email

import (
	"fmt"
	"net/smtp"
	"strconv"

	"github.com/rs/zerolog"
)

// EmailService sends transactional mail to students.
type EmailService interface {
	SendInstallmentReminder(toEmail, toName string, amount string, dueDate string) error
}

// SMTPConfig holds configuration for the SMTP server
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromName  string
	FromEmail string
}

// EmailServiceImpl implements EmailService
type EmailServiceImpl struct {
	config SMTPConfig
	logger zerolog.Logger
}

// NewEmailService creates a new EmailService
func NewEmailService(config SMTPConfig, logger zerolog.Logger) EmailService {
	return &EmailServiceImpl{
		config: config,
		logger: logger,
	}
}

// SendInstallmentReminder sends an overdue installment reminder to a student.
func (s *EmailServiceImpl) SendInstallmentReminder(toEmail, toName string, amount string, dueDate string) error {
	// Without SMTP credentials, log instead of sending (development setups)
	if s.config.Username == "" || s.config.Password == "" {
		s.logger.Warn().
			Str("toEmail", toEmail).
			Str("amount", amount).
			Str("dueDate", dueDate).
			Msg("SMTP credentials not configured - reminder not sent")
		return nil
	}

	subject := "Payment Reminder - Pleeno"
	body := fmt.Sprintf(`
		<html>
		<body>
			<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
				<h2 style="color: #333;">Payment Reminder</h2>
				<p>Hello %s,</p>
				<p>An installment of <strong>%s</strong> was due on <strong>%s</strong> and is still outstanding.</p>
				<p>Please contact your agency if you have already made this payment.</p>
			</div>
		</body>
		</html>`, toName, amount, dueDate)

	return s.send(toEmail, subject, body)
}

func (s *EmailServiceImpl) send(toEmail, subject, body string) error {
	addr := s.config.Host + ":" + strconv.Itoa(s.config.Port)
	auth := smtp.PlainAuth("", s.config.Username, s.config.Password, s.config.Host)

	msg := []byte("From: " + s.config.FromName + " <" + s.config.FromEmail + ">\r\n" +
		"To: " + toEmail + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: text/html; charset=\"UTF-8\"\r\n" +
		"\r\n" + body)

	if err := smtp.SendMail(addr, auth, s.config.FromEmail, []string{toEmail}, msg); err != nil {
		s.logger.Error().Err(err).Str("toEmail", toEmail).Msg("Failed to send email")
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
