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

	cancelBookingHandler "github.com/m04kA/SMC-VenueBooking/internal/api/handlers/cancel_booking"
	checkAvailabilityHandler "github.com/m04kA/SMC-VenueBooking/internal/api/handlers/check_availability"
	createBookingHandler "github.com/m04kA/SMC-VenueBooking/internal/api/handlers/create_booking"
	exportReportHandler "github.com/m04kA/SMC-VenueBooking/internal/api/handlers/export_report"
	getBookingHandler "github.com/m04kA/SMC-VenueBooking/internal/api/handlers/get_booking"
	getBookingsHandler "github.com/m04kA/SMC-VenueBooking/internal/api/handlers/get_bookings"
	getHallsHandler "github.com/m04kA/SMC-VenueBooking/internal/api/handlers/get_halls"
	getQuoteHandler "github.com/m04kA/SMC-VenueBooking/internal/api/handlers/get_quote"
	getReportSummaryHandler "github.com/m04kA/SMC-VenueBooking/internal/api/handlers/get_report_summary"
	getUserBookingsHandler "github.com/m04kA/SMC-VenueBooking/internal/api/handlers/get_user_bookings"
	rescheduleBookingHandler "github.com/m04kA/SMC-VenueBooking/internal/api/handlers/reschedule_booking"
	updateBookingStatusHandler "github.com/m04kA/SMC-VenueBooking/internal/api/handlers/update_booking_status"
	updateRoomStatusHandler "github.com/m04kA/SMC-VenueBooking/internal/api/handlers/update_room_status"
	"github.com/m04kA/SMC-VenueBooking/internal/api/middleware"
	"github.com/m04kA/SMC-VenueBooking/internal/config"
	"github.com/m04kA/SMC-VenueBooking/internal/engine"
	catalogCache "github.com/m04kA/SMC-VenueBooking/internal/infra/cache/catalog"
	bookingRepo "github.com/m04kA/SMC-VenueBooking/internal/infra/storage/booking"
	roomRepo "github.com/m04kA/SMC-VenueBooking/internal/infra/storage/room"
	bookingsService "github.com/m04kA/SMC-VenueBooking/internal/service/bookings"
	catalogService "github.com/m04kA/SMC-VenueBooking/internal/service/catalog"
	reportsService "github.com/m04kA/SMC-VenueBooking/internal/service/reports"
	checkAvailabilityUC "github.com/m04kA/SMC-VenueBooking/internal/usecase/check_availability"
	createBookingUC "github.com/m04kA/SMC-VenueBooking/internal/usecase/create_booking"
	getQuoteUC "github.com/m04kA/SMC-VenueBooking/internal/usecase/get_quote"
	rescheduleBookingUC "github.com/m04kA/SMC-VenueBooking/internal/usecase/reschedule_booking"
	"github.com/m04kA/SMC-VenueBooking/internal/worker/completer"
	"github.com/m04kA/SMC-VenueBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-VenueBooking/pkg/logger"
	"github.com/m04kA/SMC-VenueBooking/pkg/metrics"
	"github.com/m04kA/SMC-VenueBooking/pkg/txmanager"
)

// dbConn соединение, с которым работают репозитории и менеджер транзакций
type dbConn interface {
	dbmetrics.DBExecutor
	txmanager.Beginner
}

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

	log.Info("Starting SMC-VenueBooking...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
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

	// С метриками запросы идут через обёртку, без метрик напрямую
	var conn dbConn = db
	if cfg.Metrics.Enabled {
		conn = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	}

	bookingRepository := bookingRepo.NewRepository(conn)
	roomRepository := roomRepo.NewRepository(conn)
	txMgr := txmanager.NewTransactionManager(conn)

	// Кэш каталога в Redis (необязателен)
	var roomCache catalogService.RoomCache
	if cfg.Redis.Enabled {
		redisClient := catalogCache.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		defer redisClient.Close()

		pingCtx, pingCancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			log.Warn("Redis is unavailable, catalog cache disabled: %v", err)
		} else {
			roomCache = catalogCache.NewCache(redisClient, cfg.Redis.CacheTTLDuration())
			log.Info("Catalog cache enabled (addr=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.CacheTTL)
		}
		pingCancel()
	}

	// Ставки и прайс позиций
	rates := cfg.Pricing.RateTable()
	calculator := engine.NewCalculator(rates, cfg.Pricing.AddonPrices())

	// Инициализируем сервисы
	catalogSvc := catalogService.NewService(roomRepository, roomCache, cfg.Admin, rates, log)
	bookingSvc := bookingsService.NewService(bookingRepository, cfg.Admin, log)
	reportSvc := reportsService.NewService(bookingRepository, cfg.Admin, log)

	// Инициализируем use cases
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(
		catalogSvc,
		bookingRepository,
		metricsCollector,
		log,
	)

	getQuoteUseCase := getQuoteUC.NewUseCase(calculator, metricsCollector, log)

	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		catalogSvc,
		calculator,
		txMgr,
		metricsCollector,
		log,
	)

	rescheduleBookingUseCase := rescheduleBookingUC.NewUseCase(
		bookingRepository,
		catalogSvc,
		calculator,
		txMgr,
		cfg.Admin,
		metricsCollector,
		log,
	)

	// Инициализируем handlers
	getHalls := getHallsHandler.NewHandler(catalogSvc, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	getQuote := getQuoteHandler.NewHandler(getQuoteUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	rescheduleBooking := rescheduleBookingHandler.NewHandler(rescheduleBookingUseCase, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getBookings := getBookingsHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	updateRoomStatus := updateRoomStatusHandler.NewHandler(catalogSvc, log)
	getReportSummary := getReportSummaryHandler.NewHandler(reportSvc, log)
	exportReport := exportReportHandler.NewHandler(reportSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint (публичный, без аутентификации)
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(
			cfg.RateLimit.RequestsPerSecond,
			cfg.RateLimit.Burst,
			cfg.RateLimit.TrustedProxies,
		)
		api.Use(limiter.Middleware())
		log.Info("Rate limiting enabled (rps=%.1f, burst=%d)", cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	}

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Каталог залов со ставками
	api.HandleFunc("/halls", getHalls.Handle).Methods(http.MethodGet)

	// Проверка доступности залов категории на окно
	api.HandleFunc("/availability", checkAvailability.Handle).Methods(http.MethodGet)

	// Предварительный расчёт стоимости
	api.HandleFunc("/quotes", getQuote.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/reschedule", rescheduleBooking.Handle).Methods(http.MethodPatch)

	// История бронирований пользователя
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// --- Администрирование (права проверяют сервисы) ---
	protected.HandleFunc("/admin/bookings", getBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/admin/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/admin/rooms/status", updateRoomStatus.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/admin/reports/summary", getReportSummary.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/admin/reports/export", exportReport.Handle).Methods(http.MethodGet)

	// Фоновое завершение прошедших бронирований
	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()
	workerDone := make(chan struct{})

	if cfg.Worker.Enabled {
		worker := completer.NewWorker(
			bookingRepository,
			time.Duration(cfg.Worker.CompletionInterval)*time.Second,
			log,
		)
		go func() {
			defer close(workerDone)
			worker.Run(workerCtx)
		}()
		log.Info("Completion worker started (interval=%ds)", cfg.Worker.CompletionInterval)
	} else {
		close(workerDone)
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

	stopWorker()
	<-workerDone

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
