package main

import (
	"context"
	"fmt"
	"log"
	"os"

	echoapi "github.com/crestview/admin/apps/api/echo"
	"github.com/crestview/admin/core"
	"github.com/crestview/admin/core/dashboard"
	"github.com/crestview/admin/core/invoice"
	"github.com/crestview/admin/core/parent"
	"github.com/crestview/admin/core/settings"
	"github.com/crestview/admin/core/student"
	"github.com/crestview/admin/core/teacher"
	logsvc "github.com/crestview/admin/services/logger"
	inmemdb "github.com/crestview/admin/storage/database/inmem"
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

	db, err := inmemdb.Open()
	if err != nil {
		logger.Fatal(fmt.Sprintf("setting up database: %v", err), err)
	}
	if err = inmemdb.Seed(db); err != nil {
		logger.Fatal(fmt.Sprintf("seeding database: %v", err), err)
	}

	// set up services
	dashSvc := dashboard.NewService(inmemdb.NewDashboardRepository(db), logger)
	studentSvc := student.NewService(inmemdb.NewStudentRepository(db))
	parentSvc := parent.NewService(inmemdb.NewParentRepository(db))
	teacherSvc := teacher.NewService(inmemdb.NewTeacherRepository(db))
	invoiceSvc := invoice.NewService(inmemdb.NewInvoiceRepository(db))
	settingsStore := settings.NewStore()

	// =========================================================================
	// Start API Service

	logger.Info(fmt.Sprintf("Application initializing : version %q", conf.Build))
	defer logger.Info("Application stopped")

	server := echoapi.NewServer(
		echoapi.ServerDeps{
			Conf:         conf,
			Logger:       logger,
			DashboardSvc: dashSvc,
			StudentSvc:   studentSvc,
			ParentSvc:    parentSvc,
			TeacherSvc:   teacherSvc,
			InvoiceSvc:   invoiceSvc,
			Settings:     settingsStore,
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
