package notif

import (
	"net/mail"

	"github.com/pkg/errors"

	"github.com/trezcool/cantina/core"
	"github.com/trezcool/cantina/core/guardian"
	"github.com/trezcool/cantina/core/student"
)

// Channels
const (
	ChannelEmail    = "email"
	ChannelWhatsApp = "whatsapp"
	ChannelNone     = "none"
)

const disabledMessage = "Notificações desativadas nas configurações."

type (
	// Result is the per-channel outcome of a notification attempt.
	Result struct {
		Success bool   `json:"success"`
		Channel string `json:"method"`
		To      string `json:"to"`
		Message string `json:"message"`
		Error   string `json:"error,omitempty"`
	}

	// Params describes one notification to a student's guardian.
	// Sale is optional: balance reminders carry none. Channels, when set,
	// overrides the configuration's per-channel flags.
	Params struct {
		Guardian guardian.Guardian
		Student  student.Student
		Sale     *SaleInfo
		Balance  float64
		Channels []string
	}

	// Dispatcher decides whether notifications go out, renders their
	// content and fans them out to the channel send services.
	Dispatcher struct {
		store   ConfigStore
		mailSvc core.EmailService
		waSvc   core.WhatsAppService
		logger  core.Logger
	}
)

// Succeeded reports whether at least one channel succeeded (or-semantics).
func Succeeded(results []Result) bool {
	for _, r := range results {
		if r.Success {
			return true
		}
	}
	return false
}

func NewDispatcher(store ConfigStore, mailSvc core.EmailService, waSvc core.WhatsAppService, logger core.Logger) *Dispatcher {
	return &Dispatcher{
		store:   store,
		mailSvc: mailSvc,
		waSvc:   waSvc,
		logger:  logger,
	}
}

// Notify renders and sends one notification per active, eligible channel
// and returns all per-channel results. A channel is skipped when the
// guardian lacks its contact field, even if globally enabled. When the
// configuration is disabled, a single non-error "disabled" result is
// returned and nothing is sent. Send failures are reported inside the
// results, never as a returned error.
func (d *Dispatcher) Notify(p Params) ([]Result, error) {
	cfg, err := d.store.Load()
	if err != nil {
		return nil, errors.Wrap(err, "loading notification config")
	}

	if !cfg.Enabled {
		d.logger.Info("notifications are disabled; nothing sent")
		return []Result{{
			Success: false,
			Channel: ChannelNone,
			Message: disabledMessage,
			Error:   disabledMessage,
		}}, nil
	}

	msg := RenderMessage(cfg.Content.Message, p, cfg.Content)
	subject := RenderSubject(cfg.Content.Subject, p)

	channels := p.Channels
	if channels == nil {
		channels = cfg.enabledChannels()
	}

	results := make([]Result, 0, len(channels))
	for _, ch := range channels {
		switch ch {
		case ChannelEmail:
			if p.Guardian.Email == "" {
				continue
			}
			res := Result{Channel: ChannelEmail, To: p.Guardian.Email, Message: msg}
			err := d.mailSvc.SendMessage(&core.EmailMessage{
				To:      []mail.Address{{Name: p.Guardian.Name, Address: p.Guardian.Email}},
				Subject: subject,
				Body:    msg,
			})
			if err != nil {
				res.Error = err.Error()
				d.logger.Error("sending notification email failed", err)
			} else {
				res.Success = true
			}
			results = append(results, res)

		case ChannelWhatsApp:
			if p.Guardian.Phone == "" {
				continue
			}
			res := Result{Channel: ChannelWhatsApp, To: p.Guardian.Phone, Message: msg}
			err := d.waSvc.SendMessage(&core.WhatsAppMessage{
				To:   p.Guardian.Phone,
				Body: msg,
			})
			if err != nil {
				res.Error = err.Error()
				d.logger.Error("sending whatsapp notification failed", err)
			} else {
				res.Success = true
			}
			results = append(results, res)
		}
	}
	return results, nil
}

// NotifyCreditSale notifies a guardian about a credit sale and the
// resulting balance.
func (d *Dispatcher) NotifyCreditSale(g guardian.Guardian, std student.Student, sale SaleInfo, balance float64) ([]Result, error) {
	return d.Notify(Params{
		Guardian: g,
		Student:  std,
		Sale:     &sale,
		Balance:  balance,
	})
}

// NotifyBalance sends a balance-only reminder (no purchase details).
func (d *Dispatcher) NotifyBalance(g guardian.Guardian, std student.Student, balance float64) ([]Result, error) {
	return d.Notify(Params{
		Guardian: g,
		Student:  std,
		Balance:  balance,
	})
}

func (c *Config) enabledChannels() []string {
	channels := make([]string, 0, 2)
	if c.Channels.Email {
		channels = append(channels, ChannelEmail)
	}
	if c.Channels.WhatsApp {
		channels = append(channels, ChannelWhatsApp)
	}
	return channels
}
