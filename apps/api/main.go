package main

import (
	"context"
	"expvar"
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	echoapi "github.com/trezcool/cantina/apps/api/echo"
	"github.com/trezcool/cantina/core"
	"github.com/trezcool/cantina/core/guardian"
	"github.com/trezcool/cantina/core/ledger"
	"github.com/trezcool/cantina/core/notif"
	"github.com/trezcool/cantina/core/product"
	"github.com/trezcool/cantina/core/sale"
	"github.com/trezcool/cantina/core/student"
	emailsvc "github.com/trezcool/cantina/services/email"
	logsvc "github.com/trezcool/cantina/services/logger"
	whatsappsvc "github.com/trezcool/cantina/services/whatsapp"
	inmemdb "github.com/trezcool/cantina/storage/database/inmem"
	"github.com/trezcool/cantina/storage/settings"
)

func main() {
	// =========================================================================
	// Set up Dependencies

	conf := core.NewConfig()

	logger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)
	logger.Enable(!conf.Debug)

	// set up DB
	db, err := inmemdb.Open()
	if err != nil {
		logger.Fatal(fmt.Sprintf("setting up database: %v", err), err)
	}
	if conf.Debug {
		if err = inmemdb.Seed(db); err != nil {
			logger.Fatal(fmt.Sprintf("seeding database: %v", err), err)
		}
	}

	// set up services
	var mailSvc core.EmailService
	if conf.Debug {
		mailSvc = emailsvc.NewConsoleService(conf)
	} else {
		mailSvc = emailsvc.NewSendgridService(conf, logger)
	}
	waSvc := whatsappsvc.NewConsoleService()

	cfgStore := settings.NewStore(conf.SettingsPath, logger)
	dispatcher := notif.NewDispatcher(cfgStore, mailSvc, waSvc, logger)

	guardianRepo := inmemdb.NewGuardianRepository(db)
	studentRepo := inmemdb.NewStudentRepository(db)
	productRepo := inmemdb.NewProductRepository(db)

	grdSvc := guardian.NewService(guardianRepo)
	stdSvc := student.NewService(studentRepo)
	prodSvc := product.NewService(productRepo)
	ledgerSvc := ledger.NewService(inmemdb.NewDebtorRepository(db))
	saleSvc := sale.NewService(
		inmemdb.NewSaleRepository(db),
		studentRepo, productRepo, guardianRepo,
		ledgerSvc, dispatcher, logger,
	)

	// =========================================================================
	// Initialize App

	logger.Info(fmt.Sprintf("Application initializing : version %q", conf.Build))
	defer logger.Info("Application stopped")

	validate := validator.New()
	translator := newTranslator()
	core.InitValidators(validate, translator)

	// =========================================================================
	// Start Debug Service
	//
	// /debug/pprof - Added to the default mux by importing the net/http/pprof package.
	// /debug/vars - Added to the default mux by importing the expvar package.

	// Expose important info under /debug/vars.
	expvar.NewString("build").Set(conf.Build)
	expvar.NewString("env").Set(conf.Env)

	go func() {
		if err = http.ListenAndServe(conf.Server.DebugHost, http.DefaultServeMux); err != nil {
			logger.Error(fmt.Sprintf("debug server closed: %v", err), err)
		}
	}()

	// =========================================================================
	// Start API Service

	server := echoapi.NewServer(
		echoapi.ServerDeps{
			Conf:        conf,
			Logger:      logger,
			StudentSvc:  stdSvc,
			GuardianSvc: grdSvc,
			ProductSvc:  prodSvc,
			SaleSvc:     saleSvc,
			LedgerSvc:   ledgerSvc,
			Dispatcher:  dispatcher,
			ConfigStore: cfgStore,
			Validate:    validate,
			Translator:  translator,
		},
	)

	go func() {
		server.Start()
	}()

	// =========================================================================
	// Shutdown

	select {
	case err = <-server.Errors():
		logger.Fatal(fmt.Sprintf("server error: %v", err), err)

	case sig := <-server.ShutdownSignal():
		logger.Info(fmt.Sprintf("%v: Start shutdown...", sig))

		// give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
		defer cancel()

		// asking listener to shutdown and shed load
		if err = server.Shutdown(ctx); err != nil {
			logger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)

			if err = server.Close(); err != nil {
				logger.Fatal(fmt.Sprintf("could not force stop server: %v", err), err)
			}
		}
	}
}

func newTranslator() ut.Translator {
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	return translator
}
