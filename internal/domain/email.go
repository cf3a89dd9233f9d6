package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// NewSuggestionEmailData holds data for the moderator notification about a new suggestion.
type NewSuggestionEmailData struct {
	To    string
	Event *Event
}

// NotificationService sends domain-level notifications.
type NotificationService interface {
	NotifyNewSuggestion(ctx context.Context, event *Event) error
}
