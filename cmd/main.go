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

	cancelBookingHandler "github.com/glowtress/booking-service/internal/api/handlers/cancel_booking"
	createBlockedTimeHandler "github.com/glowtress/booking-service/internal/api/handlers/create_blocked_time"
	createBookingHandler "github.com/glowtress/booking-service/internal/api/handlers/create_booking"
	createServiceHandler "github.com/glowtress/booking-service/internal/api/handlers/create_service"
	deleteBlockedTimeHandler "github.com/glowtress/booking-service/internal/api/handlers/delete_blocked_time"
	deleteServiceHandler "github.com/glowtress/booking-service/internal/api/handlers/delete_service"
	getAvailableSlotsHandler "github.com/glowtress/booking-service/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/glowtress/booking-service/internal/api/handlers/get_booking"
	getClientHandler "github.com/glowtress/booking-service/internal/api/handlers/get_client"
	getSettingsHandler "github.com/glowtress/booking-service/internal/api/handlers/get_settings"
	listBlockedTimesHandler "github.com/glowtress/booking-service/internal/api/handlers/list_blocked_times"
	listBookingsHandler "github.com/glowtress/booking-service/internal/api/handlers/list_bookings"
	listClientsHandler "github.com/glowtress/booking-service/internal/api/handlers/list_clients"
	listMessagesHandler "github.com/glowtress/booking-service/internal/api/handlers/list_messages"
	listServicesHandler "github.com/glowtress/booking-service/internal/api/handlers/list_services"
	markMessageReadHandler "github.com/glowtress/booking-service/internal/api/handlers/mark_message_read"
	sendMessageHandler "github.com/glowtress/booking-service/internal/api/handlers/send_message"
	updateBookingStatusHandler "github.com/glowtress/booking-service/internal/api/handlers/update_booking_status"
	updateServiceHandler "github.com/glowtress/booking-service/internal/api/handlers/update_service"
	updateSettingsHandler "github.com/glowtress/booking-service/internal/api/handlers/update_settings"
	"github.com/glowtress/booking-service/internal/api/middleware"
	"github.com/glowtress/booking-service/internal/config"
	"github.com/glowtress/booking-service/internal/domain"
	appointmentRepo "github.com/glowtress/booking-service/internal/infra/storage/appointment"
	blockedtimeRepo "github.com/glowtress/booking-service/internal/infra/storage/blockedtime"
	catalogRepo "github.com/glowtress/booking-service/internal/infra/storage/catalog"
	clientRepo "github.com/glowtress/booking-service/internal/infra/storage/client"
	messageRepo "github.com/glowtress/booking-service/internal/infra/storage/message"
	settingsRepo "github.com/glowtress/booking-service/internal/infra/storage/settings"
	"github.com/glowtress/booking-service/internal/integrations/emailservice"
	"github.com/glowtress/booking-service/internal/integrations/smsservice"
	"github.com/glowtress/booking-service/internal/notifier"
	"github.com/glowtress/booking-service/internal/reminder"
	blockedtimesService "github.com/glowtress/booking-service/internal/service/blockedtimes"
	bookingsService "github.com/glowtress/booking-service/internal/service/bookings"
	catalogService "github.com/glowtress/booking-service/internal/service/catalog"
	clientsService "github.com/glowtress/booking-service/internal/service/clients"
	messagesService "github.com/glowtress/booking-service/internal/service/messages"
	settingsService "github.com/glowtress/booking-service/internal/service/settings"
	createBookingUC "github.com/glowtress/booking-service/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/glowtress/booking-service/internal/usecase/get_available_slots"
	"github.com/glowtress/booking-service/pkg/dbmetrics"
	"github.com/glowtress/booking-service/pkg/logger"
	"github.com/glowtress/booking-service/pkg/metrics"
	"github.com/glowtress/booking-service/pkg/simpletxmanager"
	"github.com/glowtress/booking-service/pkg/txmanager"
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

	log.Info("Starting booking service...")
	log.Info("Configuration loaded from config.toml")

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

	// Notification channels. A disabled channel stays nil and the notifier
	// skips it.
	var emailSender notifier.EmailSender
	if cfg.Email.Enabled {
		emailSender = emailservice.NewClient(emailservice.Config{
			BaseURL:   cfg.Email.BaseURL,
			ServiceID: cfg.Email.ServiceID,
			UserID:    cfg.Email.UserID,
		}, time.Duration(cfg.Email.Timeout)*time.Second, log)
		log.Info("Email notifications enabled (provider=%s)", cfg.Email.BaseURL)
	}

	var smsSender notifier.SMSSender
	if cfg.SMS.Enabled {
		smsSender = smsservice.NewClient(smsservice.Config{
			BaseURL:    cfg.SMS.BaseURL,
			AccountSID: cfg.SMS.AccountSID,
			AuthToken:  cfg.SMS.AuthToken,
			FromNumber: cfg.SMS.FromNumber,
		}, time.Duration(cfg.SMS.Timeout)*time.Second, log)
		log.Info("SMS notifications enabled (provider=%s)", cfg.SMS.BaseURL)
	}

	notify := notifier.New(emailSender, smsSender, notifier.Templates{
		Received:  cfg.Email.ReceivedTemplateID,
		Confirmed: cfg.Email.ConfirmedTemplateID,
		Reminder:  cfg.Email.ReminderTemplateID,
	}, log)

	var (
		appointmentRepository *appointmentRepo.Repository
		catalogRepository     *catalogRepo.Repository
		clientRepository      *clientRepo.Repository
		blockedtimeRepository *blockedtimeRepo.Repository
		messageRepository     *messageRepo.Repository
		settingsRepository    *settingsRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		catalogRepository = catalogRepo.NewRepository(wrappedDB)
		clientRepository = clientRepo.NewRepository(wrappedDB)
		blockedtimeRepository = blockedtimeRepo.NewRepository(wrappedDB)
		messageRepository = messageRepo.NewRepository(wrappedDB)
		settingsRepository = settingsRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		catalogRepository = catalogRepo.NewRepository(db)
		clientRepository = clientRepo.NewRepository(db)
		blockedtimeRepository = blockedtimeRepo.NewRepository(db)
		messageRepository = messageRepo.NewRepository(db)
		settingsRepository = settingsRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	bookingSvc := bookingsService.NewService(appointmentRepository, clientRepository, notify, log)
	catalogSvc := catalogService.NewService(catalogRepository, log)
	clientsSvc := clientsService.NewService(clientRepository, log)
	messagesSvc := messagesService.NewService(messageRepository, appointmentRepository, log)
	blockedtimesSvc := blockedtimesService.NewService(blockedtimeRepository, log)
	settingsSvc := settingsService.NewService(settingsRepository, log)

	createBookingUseCase := createBookingUC.NewUseCase(
		appointmentRepository,
		blockedtimeRepository,
		catalogRepository,
		clientRepository,
		settingsRepository,
		txMgr,
		notify,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		appointmentRepository,
		blockedtimeRepository,
		catalogRepository,
		settingsRepository,
		log,
	)

	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	listServices := listServicesHandler.NewHandler(catalogSvc, log)
	createService := createServiceHandler.NewHandler(catalogSvc, log)
	updateService := updateServiceHandler.NewHandler(catalogSvc, log)
	deleteService := deleteServiceHandler.NewHandler(catalogSvc, log)
	listClients := listClientsHandler.NewHandler(clientsSvc, log)
	getClient := getClientHandler.NewHandler(clientsSvc, log)
	listMessages := listMessagesHandler.NewHandler(messagesSvc, log)
	sendClientMessage := sendMessageHandler.NewHandler(messagesSvc, domain.SenderClient, log)
	sendAdminMessage := sendMessageHandler.NewHandler(messagesSvc, domain.SenderAdmin, log)
	markMessageRead := markMessageReadHandler.NewHandler(messagesSvc, log)
	listBlockedTimes := listBlockedTimesHandler.NewHandler(blockedtimesSvc, log)
	createBlockedTime := createBlockedTimeHandler.NewHandler(blockedtimesSvc, log)
	deleteBlockedTime := deleteBlockedTimeHandler.NewHandler(blockedtimesSvc, log)
	getSettings := getSettingsHandler.NewHandler(settingsSvc, log)
	updateSettings := updateSettingsHandler.NewHandler(settingsSvc, log)

	var reminderJob *reminder.Job
	if cfg.Reminders.Enabled {
		reminderJob, err = reminder.New(cfg.Reminders.CronExpr, appointmentRepository, clientRepository, notify, log)
		if err != nil {
			log.Fatal("Failed to create reminder job: %v", err)
		}
		reminderJob.Start()
		log.Info("Reminders scheduled (cron=%s)", cfg.Reminders.CronExpr)
	}

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes: the booking site.
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/availability", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingRef}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingRef}/messages", listMessages.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingRef}/messages", sendClientMessage.Handle).Methods(http.MethodPost)

	// Admin routes: the back office, guarded by the shared API key.
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Admin.APIKey))

	admin.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	admin.HandleFunc("/services", createService.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/services/{serviceId}", updateService.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/services/{serviceId}", deleteService.Handle).Methods(http.MethodDelete)

	admin.HandleFunc("/clients", listClients.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/clients/{clientId}", getClient.Handle).Methods(http.MethodGet)

	admin.HandleFunc("/bookings/{bookingRef}/messages", sendAdminMessage.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/messages/{messageId}/read", markMessageRead.Handle).Methods(http.MethodPatch)

	admin.HandleFunc("/blocked-times", listBlockedTimes.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/blocked-times", createBlockedTime.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/blocked-times/{blockedTimeId}", deleteBlockedTime.Handle).Methods(http.MethodDelete)

	admin.HandleFunc("/settings", getSettings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/settings", updateSettings.Handle).Methods(http.MethodPut)

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

	if reminderJob != nil {
		if err := reminderJob.Stop(); err != nil {
			log.Error("Failed to stop reminder job: %v", err)
		}
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
