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

	cancelAppointmentHandler "github.com/rentora/RIA-SchedulingService/internal/api/handlers/cancel_appointment"
	confirmBookingHandler "github.com/rentora/RIA-SchedulingService/internal/api/handlers/confirm_booking"
	getAppointmentHandler "github.com/rentora/RIA-SchedulingService/internal/api/handlers/get_appointment"
	getAppointmentsHandler "github.com/rentora/RIA-SchedulingService/internal/api/handlers/get_appointments"
	getAvailabilityHandler "github.com/rentora/RIA-SchedulingService/internal/api/handlers/get_availability"
	getBookingInfoHandler "github.com/rentora/RIA-SchedulingService/internal/api/handlers/get_booking_info"
	offerSlotsHandler "github.com/rentora/RIA-SchedulingService/internal/api/handlers/offer_slots"
	setAvailabilityHandler "github.com/rentora/RIA-SchedulingService/internal/api/handlers/set_availability"
	"github.com/rentora/RIA-SchedulingService/internal/api/middleware"
	"github.com/rentora/RIA-SchedulingService/internal/config"
	appointmentRepo "github.com/rentora/RIA-SchedulingService/internal/infra/storage/appointment"
	availabilityRepo "github.com/rentora/RIA-SchedulingService/internal/infra/storage/availability"
	tokenRepo "github.com/rentora/RIA-SchedulingService/internal/infra/storage/token"
	meetLinkClient "github.com/rentora/RIA-SchedulingService/internal/integrations/meetlink"
	appointmentsService "github.com/rentora/RIA-SchedulingService/internal/service/appointments"
	availabilityService "github.com/rentora/RIA-SchedulingService/internal/service/availability"
	"github.com/rentora/RIA-SchedulingService/internal/service/conflictguard"
	"github.com/rentora/RIA-SchedulingService/internal/service/slotgen"
	tokensService "github.com/rentora/RIA-SchedulingService/internal/service/tokens"
	offerSlotsUC "github.com/rentora/RIA-SchedulingService/internal/usecase/offer_slots"
	redeemBookingUC "github.com/rentora/RIA-SchedulingService/internal/usecase/redeem_booking"
	"github.com/rentora/RIA-SchedulingService/internal/worker/tokensweep"
	"github.com/rentora/RIA-SchedulingService/pkg/dbmetrics"
	"github.com/rentora/RIA-SchedulingService/pkg/logger"
	"github.com/rentora/RIA-SchedulingService/pkg/metrics"
	"github.com/rentora/RIA-SchedulingService/pkg/simpletxmanager"
	"github.com/rentora/RIA-SchedulingService/pkg/txmanager"
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

	log.Info("Starting RIA-SchedulingService...")
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

	// Инициализируем клиент провайдера видеовстреч
	meetClient := meetLinkClient.NewClient(
		cfg.MeetLink.URL,
		time.Duration(cfg.MeetLink.Timeout)*time.Second,
		log,
	)
	log.Info("MeetLink client initialized (url=%s, timeout=%ds)", cfg.MeetLink.URL, cfg.MeetLink.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		availabilityRepository *availabilityRepo.Repository
		appointmentRepository  *appointmentRepo.Repository
		tokenRepository        *tokenRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		availabilityRepository = availabilityRepo.NewRepository(wrappedDB)
		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		tokenRepository = tokenRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		availabilityRepository = availabilityRepo.NewRepository(db)
		appointmentRepository = appointmentRepo.NewRepository(db)
		tokenRepository = tokenRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	availabilitySvc := availabilityService.NewService(availabilityRepository, log)
	appointmentsSvc := appointmentsService.NewService(appointmentRepository, log)
	slotGenerator := slotgen.NewGenerator(availabilityRepository, log)
	guard := conflictguard.NewGuard(appointmentRepository, log)
	tokensSvc := tokensService.NewService(tokenRepository, log)

	// Инициализируем use cases
	offerSlotsUseCase := offerSlotsUC.NewUseCase(
		slotGenerator,
		guard,
		tokensSvc,
		offerSlotsUC.Defaults{
			DaysAhead:           cfg.Scheduling.DaysAhead,
			MinSlotsToOffer:     cfg.Scheduling.MinSlotsToOffer,
			SlotDurationMinutes: cfg.Scheduling.SlotDurationMinutes,
			LinkTTLDays:         cfg.Scheduling.LinkTTLDays,
		},
		log,
	)

	redeemBookingUseCase := redeemBookingUC.NewUseCase(
		tokensSvc,
		guard,
		appointmentRepository,
		meetClient,
		txMgr,
		log,
	)

	// Инициализируем handlers
	setAvailability := setAvailabilityHandler.NewHandler(availabilitySvc, log)
	getAvailability := getAvailabilityHandler.NewHandler(availabilitySvc, log)
	offerSlots := offerSlotsHandler.NewHandler(offerSlotsUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	getAppointments := getAppointmentsHandler.NewHandler(appointmentsSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentsSvc, log)
	getBookingInfo := getBookingInfoHandler.NewHandler(tokensSvc, log)
	confirmBooking := confirmBookingHandler.NewHandler(redeemBookingUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// ============================================================
	// PUBLIC ROUTES (секрет ссылки - единственный credential)
	// ============================================================

	public := r.PathPrefix("/public").Subrouter()

	// Данные слота для страницы подтверждения
	public.HandleFunc("/booking/{secret}", getBookingInfo.Handle).Methods(http.MethodGet)

	// Подтверждение брони по одноразовой ссылке
	public.HandleFunc("/booking/{secret}/confirm", confirmBooking.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Manager-ID header)
	// ============================================================

	protected := r.PathPrefix("/api/v1").Subrouter()
	protected.Use(middleware.ManagerAuth(log))

	// --- Доступность менеджера ---
	protected.HandleFunc("/managers/availability/{kind}", setAvailability.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/managers/availability/{kind}", getAvailability.Handle).Methods(http.MethodGet)

	// --- Предложения слотов по заявке ---
	protected.HandleFunc("/inquiries/{inquiryId}/slot-offers", offerSlots.Handle).Methods(http.MethodPost)

	// --- Встречи ---
	protected.HandleFunc("/appointments", getAppointments.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)

	// Запускаем фоновую чистку истекших токенов
	var sweeper *tokensweep.Worker
	if cfg.TokenSweeper.Enabled {
		sweeper = tokensweep.NewWorker(
			tokensSvc,
			time.Duration(cfg.TokenSweeper.IntervalMinutes)*time.Minute,
			time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
			log,
		)
		sweeper.Start()
	}

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

	// Останавливаем фоновую чистку токенов
	if sweeper != nil {
		sweeper.Stop()
	}

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
