package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelAppointmentHandler "github.com/davidrm-dev/BarberShop-BookingService/internal/api/handlers/cancel_appointment"
	createAppointmentHandler "github.com/davidrm-dev/BarberShop-BookingService/internal/api/handlers/create_appointment"
	createTreatmentHandler "github.com/davidrm-dev/BarberShop-BookingService/internal/api/handlers/create_treatment"
	deleteTreatmentHandler "github.com/davidrm-dev/BarberShop-BookingService/internal/api/handlers/delete_treatment"
	getAppointmentHandler "github.com/davidrm-dev/BarberShop-BookingService/internal/api/handlers/get_appointment"
	getAppointmentsHandler "github.com/davidrm-dev/BarberShop-BookingService/internal/api/handlers/get_appointments"
	getAvailabilityHandler "github.com/davidrm-dev/BarberShop-BookingService/internal/api/handlers/get_availability"
	getCalendarHandler "github.com/davidrm-dev/BarberShop-BookingService/internal/api/handlers/get_calendar"
	getScheduleHandler "github.com/davidrm-dev/BarberShop-BookingService/internal/api/handlers/get_schedule"
	getTreatmentStatsHandler "github.com/davidrm-dev/BarberShop-BookingService/internal/api/handlers/get_treatment_stats"
	listClientsHandler "github.com/davidrm-dev/BarberShop-BookingService/internal/api/handlers/list_clients"
	listTreatmentsHandler "github.com/davidrm-dev/BarberShop-BookingService/internal/api/handlers/list_treatments"
	updateAppointmentStatusHandler "github.com/davidrm-dev/BarberShop-BookingService/internal/api/handlers/update_appointment_status"
	updateScheduleHandler "github.com/davidrm-dev/BarberShop-BookingService/internal/api/handlers/update_schedule"
	updateTreatmentHandler "github.com/davidrm-dev/BarberShop-BookingService/internal/api/handlers/update_treatment"
	"github.com/davidrm-dev/BarberShop-BookingService/internal/api/middleware"
	"github.com/davidrm-dev/BarberShop-BookingService/internal/config"
	appointmentRepo "github.com/davidrm-dev/BarberShop-BookingService/internal/infra/storage/appointment"
	clientRepo "github.com/davidrm-dev/BarberShop-BookingService/internal/infra/storage/client"
	scheduleRepo "github.com/davidrm-dev/BarberShop-BookingService/internal/infra/storage/schedule"
	treatmentRepo "github.com/davidrm-dev/BarberShop-BookingService/internal/infra/storage/treatment"
	"github.com/davidrm-dev/BarberShop-BookingService/internal/integrations/smsgateway"
	appointmentsService "github.com/davidrm-dev/BarberShop-BookingService/internal/service/appointments"
	clientsService "github.com/davidrm-dev/BarberShop-BookingService/internal/service/clients"
	reportsService "github.com/davidrm-dev/BarberShop-BookingService/internal/service/reports"
	scheduleService "github.com/davidrm-dev/BarberShop-BookingService/internal/service/schedule"
	treatmentsService "github.com/davidrm-dev/BarberShop-BookingService/internal/service/treatments"
	createAppointmentUC "github.com/davidrm-dev/BarberShop-BookingService/internal/usecase/create_appointment"
	getAvailabilityUC "github.com/davidrm-dev/BarberShop-BookingService/internal/usecase/get_availability"
	getCalendarUC "github.com/davidrm-dev/BarberShop-BookingService/internal/usecase/get_calendar"
	"github.com/davidrm-dev/BarberShop-BookingService/pkg/dbmetrics"
	"github.com/davidrm-dev/BarberShop-BookingService/pkg/logger"
	"github.com/davidrm-dev/BarberShop-BookingService/pkg/metrics"
	"github.com/davidrm-dev/BarberShop-BookingService/pkg/simpletxmanager"
	"github.com/davidrm-dev/BarberShop-BookingService/pkg/txmanager"
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting BarberShop-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// The barbershop's wall-clock zone, everything slot-related runs in it.
	location, err := cfg.Booking.Location()
	if err != nil {
		log.Fatal("Failed to resolve booking timezone: %v", err)
	}
	log.Info("Booking timezone: %s", location)

	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Confirmation SMS client (optional).
	var smsSender createAppointmentUC.SMSSender
	if cfg.SMSGateway.Enabled {
		smsSender = smsgateway.NewClient(
			cfg.SMSGateway.URL,
			cfg.SMSGateway.APIKey,
			cfg.SMSGateway.Sender,
			time.Duration(cfg.SMSGateway.Timeout)*time.Second,
			log,
		)
		log.Info("SMS gateway client initialized (url=%s, timeout=%ds)",
			cfg.SMSGateway.URL, cfg.SMSGateway.Timeout)
	} else {
		log.Info("SMS gateway disabled, booking confirmations will not be sent")
	}

	// Repositories and the transaction manager, with metrics or without.
	var (
		appointmentRepository *appointmentRepo.Repository
		clientRepository      *clientRepo.Repository
		treatmentRepository   *treatmentRepo.Repository
		scheduleRepository    *scheduleRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		clientRepository = clientRepo.NewRepository(wrappedDB)
		treatmentRepository = treatmentRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		clientRepository = clientRepo.NewRepository(db)
		treatmentRepository = treatmentRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Services
	appointmentsSvc := appointmentsService.NewService(appointmentRepository, location, log)
	scheduleSvc := scheduleService.NewService(scheduleRepository, log)
	treatmentsSvc := treatmentsService.NewService(treatmentRepository, log)
	clientsSvc := clientsService.NewService(clientRepository, log)
	reportsSvc := reportsService.NewService(appointmentRepository, log)

	// Use cases
	getCalendarUseCase := getCalendarUC.NewUseCase(location, log)
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		scheduleRepository,
		appointmentRepository,
		location,
		log,
	)
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		clientRepository,
		treatmentRepository,
		scheduleRepository,
		txMgr,
		smsSender,
		location,
		log,
	)

	// Handlers
	getCalendar := getCalendarHandler.NewHandler(getCalendarUseCase, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	getAppointments := getAppointmentsHandler.NewHandler(appointmentsSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentsSvc, log)
	updateAppointmentStatus := updateAppointmentStatusHandler.NewHandler(appointmentsSvc, log)
	getSchedule := getScheduleHandler.NewHandler(scheduleSvc, log)
	updateSchedule := updateScheduleHandler.NewHandler(scheduleSvc, log)
	listTreatments := listTreatmentsHandler.NewHandler(treatmentsSvc, log)
	createTreatment := createTreatmentHandler.NewHandler(treatmentsSvc, log)
	updateTreatment := updateTreatmentHandler.NewHandler(treatmentsSvc, log)
	deleteTreatment := deleteTreatmentHandler.NewHandler(treatmentsSvc, log)
	listClients := listClientsHandler.NewHandler(clientsSvc, log)
	getTreatmentStats := getTreatmentStatsHandler.NewHandler(reportsSvc, log)

	// Router
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (the booking page)
	// ============================================================

	// Classified calendar window
	api.HandleFunc("/availability/calendar", getCalendar.Handle).Methods(http.MethodGet)

	// Slot availability for one date
	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)

	// Stored week schedule
	api.HandleFunc("/schedule", getSchedule.Handle).Methods(http.MethodGet)

	// Treatment catalog
	api.HandleFunc("/treatments", listTreatments.Handle).Methods(http.MethodGet)

	// Booking submission
	api.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Appointment lookup by confirmation code
	api.HandleFunc("/appointments/code/{code}", getAppointment.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (back office, X-Admin-Token)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.AdminAuth(cfg.Auth.AdminToken))

	// --- Appointments ---
	protected.HandleFunc("/appointments", getAppointments.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/appointments/{appointmentId}/status", updateAppointmentStatus.Handle).Methods(http.MethodPatch)

	// --- Schedule ---
	protected.HandleFunc("/schedule/{day}", updateSchedule.Handle).Methods(http.MethodPut)

	// --- Treatment catalog ---
	protected.HandleFunc("/treatments", createTreatment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/treatments/{treatmentId}", updateTreatment.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/treatments/{treatmentId}", deleteTreatment.Handle).Methods(http.MethodDelete)

	// --- Clients and reports ---
	protected.HandleFunc("/clients", listClients.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reports/treatments", getTreatmentStats.Handle).Methods(http.MethodGet)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
