package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"

	api "fleetrent-backend/internal/api/http"
	"fleetrent-backend/internal/config"
	"fleetrent-backend/internal/jobs"
	"fleetrent-backend/internal/logger"
	"fleetrent-backend/internal/repository/postgres"
	"fleetrent-backend/internal/scheduler"
	"fleetrent-backend/internal/service"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting fleetrent backend",
		"address", cfg.GetServerAddress(), "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		os.Exit(1)
	}
	logger.Info("Database connection established",
		"host", cfg.Database.Host, "database", cfg.Database.Database)

	store := postgres.NewStore(db)

	emailSvc := service.NewEmailService(cfg.Email.SendGridAPIKey, cfg.Email.FromName, cfg.Email.FromAddress)
	catalogSvc := service.NewCatalogService(store.ManufacturerRepository, store.VehicleRepository)
	customerSvc := service.NewCustomerService(store.CustomerRepository)
	rentalSvc := service.NewRentalService(store.RentalRepository, store.VehicleRepository, store.CustomerRepository)
	paymentSvc := service.NewPaymentService(store.PaymentRepository, store.RentalRepository, cfg.Billing.OverpaymentToleranceCents)
	querySvc := service.NewQueryService(store.RentalRepository, store.VehicleRepository, store.CustomerRepository, store.PaymentRepository)

	jobRunner := jobs.NewJobRunner(store.RentalRepository, store.CustomerRepository, emailSvc)
	sched := scheduler.NewScheduler(jobRunner, cfg.Scheduler)
	sched.Start()
	defer sched.Stop()

	router := api.NewRouter(catalogSvc, customerSvc, rentalSvc, paymentSvc, querySvc)

	srv := &http.Server{
		Addr:    cfg.GetServerAddress(),
		Handler: router,
	}

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("Shutting down")
	if err := srv.Close(); err != nil {
		logger.Error("HTTP server close error", "error", err)
	}
}
