package core

import "net/mail"

type (
	// EmailMessage is a plain-text email. Subjects and bodies are rendered
	// upstream from the user-configured notification templates.
	EmailMessage struct {
		To      []mail.Address
		Subject string
		Body    string
	}

	// EmailService is any service that can send emails.
	EmailService interface {
		// SendMessage sends a single message and reports its outcome;
		// implementations must return an error rather than panic.
		SendMessage(msg *EmailMessage) error
	}
)

func (m *EmailMessage) HasRecipients() bool { return len(m.To) > 0 }
func (m *EmailMessage) HasContent() bool    { return m.Body != "" }
