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

	bookSlotHandler "github.com/m04kA/SMC-TrainerService/internal/api/handlers/book_slot"
	cancelBookingHandler "github.com/m04kA/SMC-TrainerService/internal/api/handlers/cancel_booking"
	createTimeSlotsHandler "github.com/m04kA/SMC-TrainerService/internal/api/handlers/create_time_slots"
	dashboardAnalyticsHandler "github.com/m04kA/SMC-TrainerService/internal/api/handlers/dashboard_analytics"
	getAvailabilityHandler "github.com/m04kA/SMC-TrainerService/internal/api/handlers/get_availability"
	getBookingHandler "github.com/m04kA/SMC-TrainerService/internal/api/handlers/get_booking"
	getTrainerBookingsHandler "github.com/m04kA/SMC-TrainerService/internal/api/handlers/get_trainer_bookings"
	listTrainerSlotsHandler "github.com/m04kA/SMC-TrainerService/internal/api/handlers/list_trainer_slots"
	markAttendedHandler "github.com/m04kA/SMC-TrainerService/internal/api/handlers/mark_attended"
	rescheduleBookingHandler "github.com/m04kA/SMC-TrainerService/internal/api/handlers/reschedule_booking"
	setAvailabilityHandler "github.com/m04kA/SMC-TrainerService/internal/api/handlers/set_availability"
	updateAccoladesHandler "github.com/m04kA/SMC-TrainerService/internal/api/handlers/update_accolades"
	"github.com/m04kA/SMC-TrainerService/internal/api/middleware"
	"github.com/m04kA/SMC-TrainerService/internal/config"
	availabilityRepo "github.com/m04kA/SMC-TrainerService/internal/infra/storage/availability"
	bookingRepo "github.com/m04kA/SMC-TrainerService/internal/infra/storage/booking"
	timeslotRepo "github.com/m04kA/SMC-TrainerService/internal/infra/storage/timeslot"
	identityServiceClient "github.com/m04kA/SMC-TrainerService/internal/integrations/identityservice"
	analyticsService "github.com/m04kA/SMC-TrainerService/internal/service/analytics"
	availabilityService "github.com/m04kA/SMC-TrainerService/internal/service/availability"
	bookingsService "github.com/m04kA/SMC-TrainerService/internal/service/bookings"
	slotsService "github.com/m04kA/SMC-TrainerService/internal/service/slots"
	bookSlotUC "github.com/m04kA/SMC-TrainerService/internal/usecase/book_slot"
	cancelBookingUC "github.com/m04kA/SMC-TrainerService/internal/usecase/cancel_booking"
	createTimeSlotsUC "github.com/m04kA/SMC-TrainerService/internal/usecase/create_time_slots"
	rescheduleBookingUC "github.com/m04kA/SMC-TrainerService/internal/usecase/reschedule_booking"
	setAvailabilityUC "github.com/m04kA/SMC-TrainerService/internal/usecase/set_availability"
	"github.com/m04kA/SMC-TrainerService/pkg/dbmetrics"
	"github.com/m04kA/SMC-TrainerService/pkg/logger"
	"github.com/m04kA/SMC-TrainerService/pkg/metrics"
	"github.com/m04kA/SMC-TrainerService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-TrainerService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-TrainerService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем клиента IdentityService
	identityClient := identityServiceClient.NewClient(
		cfg.IdentityService.URL,
		time.Duration(cfg.IdentityService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (IdentityService=%s timeout=%ds)",
		cfg.IdentityService.URL, cfg.IdentityService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		availabilityRepository *availabilityRepo.Repository
		timeSlotRepository     *timeslotRepo.Repository
		bookingRepository      *bookingRepo.Repository
	)

	// Интерфейс transaction manager для usecases
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		availabilityRepository = availabilityRepo.NewRepository(wrappedDB)
		timeSlotRepository = timeslotRepo.NewRepository(wrappedDB)
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		availabilityRepository = availabilityRepo.NewRepository(db)
		timeSlotRepository = timeslotRepo.NewRepository(db)
		bookingRepository = bookingRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	availabilitySvc := availabilityService.NewService(availabilityRepository, timeSlotRepository, log)
	slotsSvc := slotsService.NewService(timeSlotRepository, log)
	bookingsSvc := bookingsService.NewService(bookingRepository, timeSlotRepository, identityClient, log)
	analyticsSvc := analyticsService.NewService(
		bookingRepository,
		timeSlotRepository,
		availabilityRepository,
		analyticsService.RealTimeProvider{},
		log,
	)

	// Инициализируем use cases
	setAvailabilityUseCase := setAvailabilityUC.NewUseCase(
		availabilityRepository,
		timeSlotRepository,
		identityClient,
		txMgr,
		cfg.Scheduling.RequiredMinutesPerWeek,
		log,
	)
	createTimeSlotsUseCase := createTimeSlotsUC.NewUseCase(
		timeSlotRepository,
		identityClient,
		txMgr,
		log,
	)
	bookSlotUseCase := bookSlotUC.NewUseCase(
		bookingRepository,
		timeSlotRepository,
		identityClient,
		txMgr,
		log,
	)
	cancelBookingUseCase := cancelBookingUC.NewUseCase(
		bookingRepository,
		timeSlotRepository,
		txMgr,
		log,
	)
	rescheduleBookingUseCase := rescheduleBookingUC.NewUseCase(
		bookingRepository,
		timeSlotRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	getAvailability := getAvailabilityHandler.NewHandler(availabilitySvc, log)
	setAvailability := setAvailabilityHandler.NewHandler(setAvailabilityUseCase, log)
	listTrainerSlots := listTrainerSlotsHandler.NewHandler(slotsSvc, log)
	createTimeSlots := createTimeSlotsHandler.NewHandler(createTimeSlotsUseCase, log)
	bookSlot := bookSlotHandler.NewHandler(bookSlotUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingsSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(cancelBookingUseCase, log)
	rescheduleBooking := rescheduleBookingHandler.NewHandler(rescheduleBookingUseCase, log)
	markAttended := markAttendedHandler.NewHandler(bookingsSvc, log)
	updateAccolades := updateAccoladesHandler.NewHandler(bookingsSvc, log)
	getTrainerBookings := getTrainerBookingsHandler.NewHandler(bookingsSvc, log)
	dashboardAnalytics := dashboardAnalyticsHandler.NewHandler(analyticsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Дневная доступность тренера
	api.HandleFunc("/trainers/{trainerId}/availability", getAvailability.Handle).Methods(http.MethodGet)

	// Реестр слотов тренера
	api.HandleFunc("/trainers/{trainerId}/slots", listTrainerSlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Доступность и слоты ---
	// Установка дневной доступности тренера
	protected.HandleFunc("/trainers/{trainerId}/availability", setAvailability.Handle).Methods(http.MethodPut)

	// Прямое создание слотов (админ или сам тренер)
	protected.HandleFunc("/trainers/{trainerId}/slots", createTimeSlots.Handle).Methods(http.MethodPost)

	// --- Бронирования ---
	// Бронирование слота клиентом
	protected.HandleFunc("/bookings", bookSlot.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPost)

	// Перенос бронирования на другой слот
	protected.HandleFunc("/bookings/{bookingId}/reschedule", rescheduleBooking.Handle).Methods(http.MethodPost)

	// Отметка тренера о посещении
	protected.HandleFunc("/bookings/{bookingId}/attendance", markAttended.Handle).Methods(http.MethodPatch)

	// Награды бронирования
	protected.HandleFunc("/bookings/{bookingId}/accolades", updateAccolades.Handle).Methods(http.MethodPut)

	// --- Кабинет тренера ---
	// Бронирования тренера
	protected.HandleFunc("/trainers/{trainerId}/bookings", getTrainerBookings.Handle).Methods(http.MethodGet)

	// Статистика тренера
	protected.HandleFunc("/trainers/{trainerId}/analytics/dashboard", dashboardAnalytics.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
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

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
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
