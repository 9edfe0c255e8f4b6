// Package whatsappsvc provides WhatsApp channel bindings. Only a console
// simulation exists: a production binding would call the WhatsApp Business
// API and report its errors through the same interface.
package whatsappsvc

import (
	"log"
	"sync"

	"github.com/trezcool/cantina/core"
)

var (
	SentMessages = make([]core.WhatsAppMessage, 0)
	mu           sync.Mutex
)

type consoleService struct {
	disableOutput bool
}

var _ core.WhatsAppService = (*consoleService)(nil)

// NewConsoleService returns a WhatsAppService that writes messages to the
// console instead of delivering them; it always succeeds.
func NewConsoleService() core.WhatsAppService {
	return &consoleService{}
}

func (svc *consoleService) SendMessage(msg *core.WhatsAppMessage) error {
	if msg.To == "" || msg.Body == "" {
		return nil
	}
	if !svc.disableOutput {
		log.Printf("[WHATSAPP] To: %s\n%s\n", msg.To, msg.Body)
	}
	mu.Lock()
	SentMessages = append(SentMessages, *msg)
	mu.Unlock()
	return nil
}

// NewConsoleServiceMock returns a silent console service for tests; sent
// messages are still recorded in SentMessages.
func NewConsoleServiceMock() core.WhatsAppService {
	return &consoleService{disableOutput: true}
}

// ClearSentMessages empties the SentMessages record between tests.
func ClearSentMessages() {
	mu.Lock()
	SentMessages = SentMessages[:0]
	mu.Unlock()
}
