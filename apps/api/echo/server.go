package echoapi

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/trezcool/cantina/core"
	"github.com/trezcool/cantina/core/guardian"
	"github.com/trezcool/cantina/core/ledger"
	"github.com/trezcool/cantina/core/notif"
	"github.com/trezcool/cantina/core/product"
	"github.com/trezcool/cantina/core/sale"
	"github.com/trezcool/cantina/core/student"
)

type (
	ServerDeps struct {
		Conf        *core.Config
		Logger      core.Logger
		StudentSvc  *student.Service
		GuardianSvc *guardian.Service
		ProductSvc  *product.Service
		SaleSvc     *sale.Service
		LedgerSvc   *ledger.Service
		Dispatcher  *notif.Dispatcher
		ConfigStore notif.ConfigStore
		Validate    *validator.Validate
		Translator  ut.Translator
	}

	Server interface {
		http.Handler
		Start()
		Shutdown(ctx context.Context) error
		Close() error
		Errors() <-chan error
		ShutdownSignal() <-chan os.Signal
	}

	server struct {
		deps     ServerDeps
		app      *echo.Echo
		errors   chan error
		shutdown chan os.Signal
	}
)

var _ Server = (*server)(nil)

func NewServer(deps ServerDeps) Server {
	s := &server{
		deps:     deps,
		app:      echo.New(),
		errors:   make(chan error, 1),
		shutdown: make(chan os.Signal, 1),
	}
	signal.Notify(s.shutdown, os.Interrupt, syscall.SIGTERM)
	s.setup()
	return s
}

func (s *server) setup() {
	conf := s.deps.Conf

	s.app.Pre(middleware.RemoveTrailingSlash())
	if !conf.TestMode {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(conf.Debug || conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.deps.Logger, s.deps.Translator, s.signalShutdown)
	s.app.Debug = conf.Debug
	s.app.HideBanner = true

	s.app.GET("/", home)

	v1 := s.app.Group("/v1")
	registerStudentAPI(v1, s.deps.StudentSvc, s.deps.Validate)
	registerGuardianAPI(v1, s.deps.GuardianSvc, s.deps.Validate)
	registerProductAPI(v1, s.deps.ProductSvc, s.deps.Validate)
	registerSaleAPI(v1, s.deps.SaleSvc, s.deps.Validate)
	registerFiadoAPI(v1, s.deps.LedgerSvc, s.deps.Dispatcher, s.deps.Validate)
	registerNotifConfigAPI(v1, s.deps.ConfigStore, s.deps.Validate)
}

func (s *server) Start() {
	s.errors <- s.app.Start(s.deps.Conf.Address())
}

func (s *server) Shutdown(ctx context.Context) error { return s.app.Shutdown(ctx) }
func (s *server) Close() error                       { return s.app.Close() }
func (s *server) Errors() <-chan error               { return s.errors }
func (s *server) ShutdownSignal() <-chan os.Signal   { return s.shutdown }

// signalShutdown is called by the error handler to gracefully bring the
// server down on unrecoverable errors.
func (s *server) signalShutdown() {
	s.shutdown <- syscall.SIGTERM
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func home(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Welcome to Cantina API!")
}
