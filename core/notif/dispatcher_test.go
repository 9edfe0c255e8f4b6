package notif_test

import (
	"io/ioutil"
	"log"
	"net/mail"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trezcool/cantina/core"
	"github.com/trezcool/cantina/core/guardian"
	"github.com/trezcool/cantina/core/notif"
	"github.com/trezcool/cantina/core/student"
	emailsvc "github.com/trezcool/cantina/services/email"
	logsvc "github.com/trezcool/cantina/services/logger"
	whatsappsvc "github.com/trezcool/cantina/services/whatsapp"
	"github.com/trezcool/cantina/storage/settings"
)

func setup(t *testing.T) (*notif.Dispatcher, *settings.Store) {
	t.Cleanup(emailsvc.ClearSentMessages)
	t.Cleanup(whatsappsvc.ClearSentMessages)

	conf := &core.Config{
		AppName:          "Cantina",
		DefaultFromEmail: mail.Address{Name: "Cantina", Address: "noreply@localhost"},
	}
	logger := logsvc.NewStdLogger(log.New(ioutil.Discard, "", 0))
	store := settings.NewStore(filepath.Join(t.TempDir(), "config.json"), logger)
	d := notif.NewDispatcher(
		store,
		emailsvc.NewConsoleServiceMock(conf),
		whatsappsvc.NewConsoleServiceMock(),
		logger,
	)
	return d, store
}

var (
	fullGuardian = guardian.Guardian{ID: 1, Name: "Maria Silva", Email: "maria@example.com", Phone: "11999990001"}
	mailGuardian = guardian.Guardian{ID: 2, Name: "João Santos", Email: "joao@example.com"}
	testStudent  = student.Student{ID: 1, Name: "Ana Silva", Class: "5º Ano A"}
)

func Test_Dispatcher_Notify_disabled(t *testing.T) {
	d, store := setup(t)

	cfg := notif.DefaultConfig()
	cfg.Enabled = false
	if err := store.Save(cfg); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	results, err := d.NotifyBalance(fullGuardian, testStudent, 45.50)
	if err != nil {
		t.Fatalf("NotifyBalance() failed: %v", err)
	}

	if assert.Len(t, results, 1) {
		assert.False(t, results[0].Success)
		assert.Equal(t, "none", results[0].Channel)
		assert.NotEmpty(t, results[0].Error)
	}
	assert.False(t, notif.Succeeded(results))
	assert.Empty(t, emailsvc.SentMessages)
	assert.Empty(t, whatsappsvc.SentMessages)
}

func Test_Dispatcher_Notify_defaultConfig(t *testing.T) {
	d, _ := setup(t)

	// no saved config; defaults apply (email on, whatsapp off)
	results, err := d.NotifyCreditSale(fullGuardian, testStudent, notif.SaleInfo{
		ProductName: "Coxinha", Quantity: 2, Total: 11.00,
	}, 11.00)
	if err != nil {
		t.Fatalf("NotifyCreditSale() failed: %v", err)
	}

	if assert.Len(t, results, 1) {
		assert.True(t, results[0].Success)
		assert.Equal(t, "email", results[0].Channel)
		assert.Equal(t, fullGuardian.Email, results[0].To)
		assert.Contains(t, results[0].Message, "Maria Silva")
		assert.Contains(t, results[0].Message, "Ana Silva")
	}
	assert.True(t, notif.Succeeded(results))

	if assert.Len(t, emailsvc.SentMessages, 1) {
		msg := emailsvc.SentMessages[0]
		assert.Equal(t, "Notificação de consumo na cantina", msg.Subject)
		assert.Contains(t, msg.Body, "Produto: Coxinha")
		assert.Contains(t, msg.Body, "O saldo devedor atual é de R$ 11.00.")
	}
	assert.Empty(t, whatsappsvc.SentMessages)
}

func Test_Dispatcher_Notify_bothChannels(t *testing.T) {
	d, store := setup(t)

	cfg := notif.DefaultConfig()
	cfg.Channels.WhatsApp = true
	if err := store.Save(cfg); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	results, err := d.NotifyBalance(fullGuardian, testStudent, 45.50)
	if err != nil {
		t.Fatalf("NotifyBalance() failed: %v", err)
	}

	if assert.Len(t, results, 2) {
		assert.Equal(t, "email", results[0].Channel)
		assert.Equal(t, "whatsapp", results[1].Channel)
		assert.Equal(t, fullGuardian.Phone, results[1].To)
		assert.True(t, results[0].Success)
		assert.True(t, results[1].Success)
	}
	assert.Len(t, emailsvc.SentMessages, 1)
	assert.Len(t, whatsappsvc.SentMessages, 1)
}

func Test_Dispatcher_Notify_skipsChannelsWithoutContact(t *testing.T) {
	d, store := setup(t)

	cfg := notif.DefaultConfig()
	cfg.Channels.WhatsApp = true
	if err := store.Save(cfg); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	// guardian has no phone: whatsapp is skipped entirely, not failed
	results, err := d.NotifyBalance(mailGuardian, testStudent, 23.75)
	if err != nil {
		t.Fatalf("NotifyBalance() failed: %v", err)
	}

	if assert.Len(t, results, 1) {
		assert.Equal(t, "email", results[0].Channel)
		assert.True(t, results[0].Success)
	}
	assert.Empty(t, whatsappsvc.SentMessages)
}

func Test_Dispatcher_Notify_channelOverride(t *testing.T) {
	d, _ := setup(t)

	// explicit channels override the config flags (whatsapp is off by default)
	results, err := d.Notify(notif.Params{
		Guardian: fullGuardian,
		Student:  testStudent,
		Balance:  45.50,
		Channels: []string{notif.ChannelWhatsApp},
	})
	if err != nil {
		t.Fatalf("Notify() failed: %v", err)
	}

	if assert.Len(t, results, 1) {
		assert.Equal(t, "whatsapp", results[0].Channel)
		assert.True(t, results[0].Success)
	}
	assert.Empty(t, emailsvc.SentMessages)
}
