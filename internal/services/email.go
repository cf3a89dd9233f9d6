package services

import (
	"context"
	"fmt"
	"log/slog"

	"feriascalendar/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
	to       string
	logger   *slog.Logger
}

// NewEmailService returns a NotificationService that mails the moderator address.
// With an empty address notifications are skipped.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, moderatorEmail string, logger *slog.Logger) domain.NotificationService {
	return &emailService{mailer: mailer, renderer: renderer, to: moderatorEmail, logger: logger}
}

// NotifyNewSuggestion sends the "new_suggestion" template for event.
func (s *emailService) NotifyNewSuggestion(ctx context.Context, event *domain.Event) error {
	if event == nil {
		return fmt.Errorf("suggestion event is nil")
	}
	if s.to == "" {
		return nil
	}
	data := &domain.NewSuggestionEmailData{To: s.to, Event: event}
	subject, htmlBody, textBody, err := s.renderer.Render("new_suggestion", data)
	if err != nil {
		return fmt.Errorf("failed to render new_suggestion template: %w", err)
	}
	if err := s.mailer.Send(s.to, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send new suggestion email: %w", err)
	}
	s.logger.InfoContext(ctx, "new suggestion email sent", "to", s.to, "event_id", event.ID)
	return nil
}
