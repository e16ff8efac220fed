package echoapi

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/crestview/admin/core"
	"github.com/crestview/admin/core/dashboard"
	"github.com/crestview/admin/core/invoice"
	"github.com/crestview/admin/core/parent"
	"github.com/crestview/admin/core/settings"
	"github.com/crestview/admin/core/student"
	"github.com/crestview/admin/core/teacher"
)

type (
	ServerDeps struct {
		Conf         *core.Config
		Logger       core.Logger
		DashboardSvc *dashboard.Service
		StudentSvc   *student.Service
		ParentSvc    *parent.Service
		TeacherSvc   *teacher.Service
		InvoiceSvc   *invoice.Service
		Settings     *settings.Store
	}

	Server struct {
		deps     ServerDeps
		app      *echo.Echo
		errChan  chan error
		shutChan chan os.Signal
	}
)

func NewServer(deps ServerDeps) *Server {
	s := &Server{
		deps:     deps,
		app:      echo.New(),
		errChan:  make(chan error, 1),
		shutChan: make(chan os.Signal, 1),
	}
	signal.Notify(s.shutChan, os.Interrupt, syscall.SIGTERM)
	s.setup()
	return s
}

func (s *Server) setup() {
	conf := s.deps.Conf

	s.app.Pre(middleware.RemoveTrailingSlash())
	if !conf.TestMode {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(conf.Debug || conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.deps.Logger, s.signalShutdown)
	s.app.Debug = conf.Debug
	s.app.HideBanner = true

	s.app.GET("/", s.home)

	v1 := s.app.Group("/v1")
	registerDashboardAPI(v1, s.deps.DashboardSvc)
	registerStudentAPI(v1, s.deps.StudentSvc)
	registerParentAPI(v1, s.deps.ParentSvc)
	registerTeacherAPI(v1, s.deps.TeacherSvc)
	registerInvoiceAPI(v1, s.deps.InvoiceSvc)
	registerSettingsAPI(v1, s.deps.Settings)
}

func (s *Server) Start() {
	s.errChan <- s.app.Start(s.deps.Conf.Server.Addr)
}

func (s *Server) Errors() <-chan error {
	return s.errChan
}

func (s *Server) ShutdownSignal() <-chan os.Signal {
	return s.shutChan
}

// signalShutdown is handed to the error handler so an unrecoverable error can
// trigger the same graceful shutdown path as an OS signal.
func (s *Server) signalShutdown() {
	s.shutChan <- syscall.SIGTERM
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *Server) Close() error {
	return s.app.Close()
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func (s *Server) home(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Welcome to the "+s.deps.Conf.AppName+" API!")
}
