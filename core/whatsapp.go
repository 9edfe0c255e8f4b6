package core

type (
	// WhatsAppMessage is a text message addressed to a phone number.
	WhatsAppMessage struct {
		To   string
		Body string
	}

	// WhatsAppService is any service that can deliver WhatsApp messages.
	WhatsAppService interface {
		// SendMessage sends a single message and reports its outcome;
		// implementations must return an error rather than panic.
		SendMessage(msg *WhatsAppMessage) error
	}
)
