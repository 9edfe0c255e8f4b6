package notif

import (
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/cantina/core"
)

// Frequencies. Stored and validated, but not enforced by any scheduler:
// dispatch is always immediate in this core.
const (
	FrequencyImmediate = "imediato"
	FrequencyDaily     = "diario"
	FrequencyWeekly    = "semanal"
)

type (
	// Config is the singleton notification configuration. JSON keys mirror
	// the persisted schema (`notificacaoConfig`), so stored settings
	// round-trip field-for-field.
	Config struct {
		Enabled   bool     `json:"ativa"`
		Channels  Channels `json:"metodos"`
		Frequency string   `json:"frequencia" validate:"required,oneof=imediato diario semanal"`
		Content   Content  `json:"conteudo"`
	}

	// Channels holds the per-channel enabled flags.
	Channels struct {
		Email    bool `json:"email"`
		WhatsApp bool `json:"whatsapp"`
	}

	// Content is the message template configuration.
	Content struct {
		IncludePurchaseDetails bool   `json:"incluirDetalhesCompra"`
		IncludeTotalBalance    bool   `json:"incluirSaldoTotal"`
		Subject                string `json:"assunto" validate:"required"`
		Message                string `json:"mensagem" validate:"required"`
	}

	// ConfigStore is the explicit load/save contract for the persisted
	// configuration. Reads/writes are last-writer-wins; there is a single
	// logical session.
	ConfigStore interface {
		Load() (Config, error)
		Save(cfg Config) error
	}
)

// DefaultConfig returns the configuration used until the user saves one,
// and the value a reset overwrites with wholesale.
func DefaultConfig() Config {
	return Config{
		Enabled: true,
		Channels: Channels{
			Email:    true,
			WhatsApp: false,
		},
		Frequency: FrequencyImmediate,
		Content: Content{
			IncludePurchaseDetails: true,
			IncludeTotalBalance:    true,
			Subject:                "Notificação de consumo na cantina",
			Message: "Olá {responsavel}, informamos que {aluno} realizou um consumo " +
				"na cantina da escola. {detalhes_compra} {saldo_total}",
		},
	}
}

func (c *Config) Validate(validate *validator.Validate) error {
	c.Frequency = core.CleanString(c.Frequency, true /* lower */)
	c.Content.Subject = core.CleanString(c.Content.Subject)
	c.Content.Message = core.CleanString(c.Content.Message)
	return validate.Struct(c)
}
