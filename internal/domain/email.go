package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(ctx context.Context, to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// NextEventEmailData holds data for the next-event announcement email.
type NextEventEmailData struct {
	Title       string
	Date        string
	Location    string
	Description string
	RegisterURL string
	Presenters  []string
}
