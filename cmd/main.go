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
	"github.com/robfig/cron/v3"

	addBlockedDateHandler "github.com/clearpath-advisory/booking-service/internal/api/handlers/add_blocked_date"
	cancelAppointmentHandler "github.com/clearpath-advisory/booking-service/internal/api/handlers/cancel_appointment"
	checkDateHandler "github.com/clearpath-advisory/booking-service/internal/api/handlers/check_date_availability"
	createAppointmentHandler "github.com/clearpath-advisory/booking-service/internal/api/handlers/create_appointment"
	getAvailableSlotsHandler "github.com/clearpath-advisory/booking-service/internal/api/handlers/get_available_slots"
	getScheduleConfigHandler "github.com/clearpath-advisory/booking-service/internal/api/handlers/get_schedule_config"
	listAppointmentsHandler "github.com/clearpath-advisory/booking-service/internal/api/handlers/list_appointments"
	listBlockedDatesHandler "github.com/clearpath-advisory/booking-service/internal/api/handlers/list_blocked_dates"
	removeBlockedDateHandler "github.com/clearpath-advisory/booking-service/internal/api/handlers/remove_blocked_date"
	rescheduleAppointmentHandler "github.com/clearpath-advisory/booking-service/internal/api/handlers/reschedule_appointment"
	runRemindersHandler "github.com/clearpath-advisory/booking-service/internal/api/handlers/run_reminders"
	updateScheduleConfigHandler "github.com/clearpath-advisory/booking-service/internal/api/handlers/update_schedule_config"
	"github.com/clearpath-advisory/booking-service/internal/api/middleware"
	"github.com/clearpath-advisory/booking-service/internal/config"
	appointmentRepo "github.com/clearpath-advisory/booking-service/internal/infra/storage/appointment"
	scheduleRepo "github.com/clearpath-advisory/booking-service/internal/infra/storage/schedule"
	"github.com/clearpath-advisory/booking-service/internal/integrations/calendarfeed"
	"github.com/clearpath-advisory/booking-service/internal/integrations/mailer"
	"github.com/clearpath-advisory/booking-service/internal/integrations/zoom"
	appointmentsService "github.com/clearpath-advisory/booking-service/internal/service/appointments"
	notificationsService "github.com/clearpath-advisory/booking-service/internal/service/notifications"
	scheduleService "github.com/clearpath-advisory/booking-service/internal/service/schedule"
	cancelAppointmentUC "github.com/clearpath-advisory/booking-service/internal/usecase/cancel_appointment"
	createAppointmentUC "github.com/clearpath-advisory/booking-service/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/clearpath-advisory/booking-service/internal/usecase/get_available_slots"
	rescheduleAppointmentUC "github.com/clearpath-advisory/booking-service/internal/usecase/reschedule_appointment"
	sendRemindersUC "github.com/clearpath-advisory/booking-service/internal/usecase/send_reminders"
	"github.com/clearpath-advisory/booking-service/pkg/dbmetrics"
	"github.com/clearpath-advisory/booking-service/pkg/logger"
	"github.com/clearpath-advisory/booking-service/pkg/metrics"
	"github.com/clearpath-advisory/booking-service/pkg/simpletxmanager"
	"github.com/clearpath-advisory/booking-service/pkg/txmanager"
)

// noopUsecaseMetrics satisfies the usecase metrics contracts when
// prometheus is disabled.
type noopUsecaseMetrics struct{}

func (noopUsecaseMetrics) IncReminderSent(string)   {}
func (noopUsecaseMetrics) IncReminderSweepFailure() {}
func (noopUsecaseMetrics) IncMeetinglessBooking()   {}

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

	log.Info("Starting booking-service...")

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
	log.Info("Connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Integrations.
	calendarClient := calendarfeed.NewClient(
		cfg.CalendarFeed.ICSURL,
		time.Duration(cfg.CalendarFeed.Timeout)*time.Second,
		log,
	)
	zoomClient := zoom.NewClient(
		cfg.Zoom.BaseURL,
		cfg.Zoom.OAuthURL,
		cfg.Zoom.AccountID,
		cfg.Zoom.ClientID,
		cfg.Zoom.ClientSecret,
		time.Duration(cfg.Zoom.Timeout)*time.Second,
		log,
	)
	smtpSender := mailer.NewSMTPSender(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.From)

	// Repositories and transaction manager, with or without db metrics.
	var (
		appointmentRepository *appointmentRepo.Repository
		scheduleRepository    *scheduleRepo.Repository
		txMgr                 createAppointmentUC.TransactionManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
		log.Info("Database metrics collection started")
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Services.
	notifier := notificationsService.NewService(smtpSender, cfg.Site.BaseURL, log)
	appointmentsSvc := appointmentsService.NewService(appointmentRepository, log)
	scheduleSvc := scheduleService.NewService(scheduleRepository, log)

	// Use cases.
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		appointmentRepository,
		scheduleRepository,
		calendarClient,
		log,
	)
	var bookingMetrics createAppointmentUC.Metrics = noopUsecaseMetrics{}
	if cfg.Metrics.Enabled {
		bookingMetrics = metricsCollector
	}
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		scheduleRepository,
		getAvailableSlotsUseCase,
		zoomClient,
		notifier,
		txMgr,
		bookingMetrics,
		log,
	)
	cancelAppointmentUseCase := cancelAppointmentUC.NewUseCase(
		appointmentRepository,
		scheduleRepository,
		notifier,
		log,
	)
	rescheduleAppointmentUseCase := rescheduleAppointmentUC.NewUseCase(
		appointmentRepository,
		scheduleRepository,
		createAppointmentUseCase,
		notifier,
		log,
	)

	var reminderMetrics sendRemindersUC.Metrics = noopUsecaseMetrics{}
	if cfg.Metrics.Enabled {
		reminderMetrics = metricsCollector
	}
	sendRemindersUseCase := sendRemindersUC.NewUseCase(
		appointmentRepository,
		scheduleRepository,
		notifier,
		reminderMetrics,
		log,
	)

	// Handlers.
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	checkDate := checkDateHandler.NewHandler(getAvailableSlotsUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(cancelAppointmentUseCase, log)
	rescheduleAppointment := rescheduleAppointmentHandler.NewHandler(rescheduleAppointmentUseCase, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentsSvc, log)
	getScheduleConfig := getScheduleConfigHandler.NewHandler(scheduleSvc, log)
	updateScheduleConfig := updateScheduleConfigHandler.NewHandler(scheduleSvc, log)
	listBlockedDates := listBlockedDatesHandler.NewHandler(scheduleSvc, log)
	addBlockedDate := addBlockedDateHandler.NewHandler(scheduleSvc, log)
	removeBlockedDate := removeBlockedDateHandler.NewHandler(scheduleSvc, log)
	runReminders := runRemindersHandler.NewHandler(sendRemindersUseCase, log)

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// ============================================================
	// PUBLIC ROUTES (booking widget)
	// ============================================================

	api := r.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/dates/{date}/availability", checkDate.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	api.HandleFunc("/appointments/cancel", cancelAppointment.Handle).Methods(http.MethodPost)
	api.HandleFunc("/appointments/reschedule", rescheduleAppointment.Handle).Methods(http.MethodPost)

	// ============================================================
	// INTERNAL ROUTES (operator, shared-secret header)
	// ============================================================

	internal := r.PathPrefix("/internal").Subrouter()
	internal.Use(middleware.InternalAuth(cfg.Site.InternalToken))

	internal.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)
	internal.HandleFunc("/schedule", getScheduleConfig.Handle).Methods(http.MethodGet)
	internal.HandleFunc("/schedule", updateScheduleConfig.Handle).Methods(http.MethodPut)
	internal.HandleFunc("/blocked-dates", listBlockedDates.Handle).Methods(http.MethodGet)
	internal.HandleFunc("/blocked-dates", addBlockedDate.Handle).Methods(http.MethodPost)
	internal.HandleFunc("/blocked-dates/{date}", removeBlockedDate.Handle).Methods(http.MethodDelete)
	internal.HandleFunc("/reminders/run", runReminders.Handle).Methods(http.MethodPost)

	// Reminder sweep cron.
	var reminderCron *cron.Cron
	if cfg.Reminders.Enabled {
		reminderCron = cron.New()
		_, err := reminderCron.AddFunc(cfg.Reminders.Schedule, func() {
			if _, err := sendRemindersUseCase.Execute(context.Background()); err != nil {
				log.Error("Reminder sweep failed: %v", err)
			}
		})
		if err != nil {
			log.Fatal("Invalid reminder schedule %q: %v", cfg.Reminders.Schedule, err)
		}
		reminderCron.Start()
		log.Info("Reminder sweep scheduled: %s", cfg.Reminders.Schedule)
	}

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

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

	if reminderCron != nil {
		cronCtx := reminderCron.Stop()
		// Let an in-flight sweep finish before the DB goes away.
		<-cronCtx.Done()
		log.Info("Reminder sweep stopped")
	}

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
