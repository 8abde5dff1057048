package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/resend/resend-go/v2"
)

type EmailService struct {
	client    *resend.Client
	fromEmail string
	isDev     bool
	appURL    string
	appName   string
}

func NewEmailService(apiKey, fromEmail, appURL, appName string, isDev bool) *EmailService {
	var client *resend.Client
	if apiKey != "" && !isDev {
		client = resend.NewClient(apiKey)
	}

	return &EmailService{
		client:    client,
		fromEmail: fromEmail,
		isDev:     isDev,
		appURL:    appURL,
		appName:   appName,
	}
}

func (s *EmailService) SendExportReadyEmail(ctx context.Context, email, name, downloadURL, format string) error {
	subject, body := exportReadyEmailTemplate(name, downloadURL, format, s.appName)

	if s.isDev {
		slog.Info("email sent (dev mode)", "type", "export_ready", "to", email, "subject", subject, "url", downloadURL)
		return nil
	}

	return s.send(ctx, "export_ready", email, subject, body)
}

func (s *EmailService) SendExportFailedEmail(ctx context.Context, email, name string) error {
	settingsURL := fmt.Sprintf("%s/app/settings?tab=export", s.appURL)
	subject, body := exportFailedEmailTemplate(name, settingsURL, s.appName)

	if s.isDev {
		slog.Info("email sent (dev mode)", "type", "export_failed", "to", email, "subject", subject)
		return nil
	}

	return s.send(ctx, "export_failed", email, subject, body)
}

func (s *EmailService) send(ctx context.Context, kind, to, subject, body string) error {
	if s.client == nil {
		return fmt.Errorf("email service not configured (missing RESEND_API_KEY)")
	}

	params := &resend.SendEmailRequest{
		From:    s.fromEmail,
		To:      []string{to},
		Subject: subject,
		Text:    body,
	}

	_, err := s.client.Emails.SendWithContext(ctx, params)
	if err == nil {
		slog.Info("email sent", "type", kind, "to", to)
	}
	return err
}
