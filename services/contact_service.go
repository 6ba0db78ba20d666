package services

import (
	"fmt"
	"html"
	"strconv"

	"storefront-api/config"
	"storefront-api/models"

	"gopkg.in/gomail.v2"
)

type ContactService struct {
	dialer *gomail.Dialer
}

func NewContactService() (*ContactService, error) {
	cfg := config.AppConfig
	if cfg.SMTPHost == "" || cfg.SMTPUser == "" || cfg.SMTPPass == "" {
		return nil, fmt.Errorf("SMTP configuration missing")
	}

	port, err := strconv.Atoi(cfg.SMTPPort)
	if err != nil {
		port = 587
	}

	return &ContactService{
		dialer: gomail.NewDialer(cfg.SMTPHost, port, cfg.SMTPUser, cfg.SMTPPass),
	}, nil
}

// SendInquiry forwards a storefront contact form submission to the store
// inbox, with reply-to pointing at the visitor.
func (s *ContactService) SendInquiry(req models.ContactRequest) error {
	cfg := config.AppConfig

	m := gomail.NewMessage()
	m.SetHeader("From", cfg.SMTPFrom)
	m.SetHeader("To", cfg.StoreEmail)
	m.SetHeader("Reply-To", req.Email)
	m.SetHeader("Subject", fmt.Sprintf("Store inquiry from %s", req.Name))

	body := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif;">
    <h2>New inquiry from the storefront</h2>
    <p><strong>Name:</strong> %s</p>
    <p><strong>Email:</strong> %s</p>
    <p><strong>Message:</strong></p>
    <p>%s</p>
</body>
</html>
	`, html.EscapeString(req.Name), html.EscapeString(req.Email), html.EscapeString(req.Message))

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
