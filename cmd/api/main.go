package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/rosterly/attendance-backend-go/internal/config"
	appHTTP "github.com/rosterly/attendance-backend-go/internal/handler/http"
	"github.com/rosterly/attendance-backend-go/internal/pkg/clock"
	"github.com/rosterly/attendance-backend-go/internal/pkg/cron"
	"github.com/rosterly/attendance-backend-go/internal/pkg/database"
	"github.com/rosterly/attendance-backend-go/internal/pkg/schema"
	"github.com/rosterly/attendance-backend-go/internal/pkg/storage"
	"github.com/rosterly/attendance-backend-go/internal/repository/mongodb"
	attendanceService "github.com/rosterly/attendance-backend-go/internal/service/attendance"
	authService "github.com/rosterly/attendance-backend-go/internal/service/auth"
	customerService "github.com/rosterly/attendance-backend-go/internal/service/customer"
	reportService "github.com/rosterly/attendance-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewMongoDB(cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer func() {
		_ = db.Close(context.Background())
	}()

	if err := mongodb.EnsureIndexes(context.Background(), db); err != nil {
		log.Fatal("Failed to ensure indexes: ", err)
	}

	workerRepo := mongodb.NewWorkerRepository(db)
	attendanceRepo := mongodb.NewAttendanceRepository(db)
	customerRepo := mongodb.NewCustomerRepository(db)
	userRepo := mongodb.NewUserRepository(db)

	var archive storage.FileStorage
	if cfg.Report.ArchiveDir != "" {
		archive, err = storage.NewLocalStorage(cfg.Report.ArchiveDir)
		if err != nil {
			log.Fatal("Failed to initialize report archive: ", err)
		}
	}

	clk := clock.System()
	schemaLoader := schema.NewLoader(cfg.Client.SchemaPath)

	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, workerRepo, customerRepo, clk)
	customerSvc := customerService.NewCustomerService(customerRepo, schemaLoader, clk)
	authSvc := authService.NewAuthService(userRepo)
	reportSvc := reportService.NewReportService(attendanceRepo, archive)

	healthHandler := appHTTP.NewHealthHandler(db, cfg.App.Version)
	authHandler := appHTTP.NewAuthHandler(authSvc)
	workerHandler := appHTTP.NewWorkerHandler(workerRepo, attendanceSvc, reportSvc)
	customerHandler := appHTTP.NewCustomerHandler(customerSvc, attendanceSvc)

	router := appHTTP.NewRouter(
		cfg,
		healthHandler,
		authHandler,
		workerHandler,
		customerHandler,
	)

	scheduler := cron.NewScheduler()
	cron.NewAttendanceJobs(attendanceSvc).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
