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
	"github.com/redis/go-redis/v9"

	getAvailableSlotsHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_available_slots"
	healthHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/health"
	"github.com/m04kA/SMC-AvailabilityService/internal/api/middleware"
	"github.com/m04kA/SMC-AvailabilityService/internal/config"
	providerCache "github.com/m04kA/SMC-AvailabilityService/internal/infra/cache/provider"
	availabilityRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/availability"
	bookingRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/booking"
	busyBlockRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/busyblock"
	providerRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/provider"
	serviceRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/service"
	getAvailableSlotsUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
	"github.com/m04kA/SMC-AvailabilityService/pkg/metrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load(config.DefaultPath)
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

	log.Info("Starting SMC-AvailabilityService...")

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

	// Инициализируем репозитории (с метриками или без)
	var (
		executor  dbmetrics.DBExecutor
		txManager *txmanager.TransactionManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")

		executor = wrappedDB
		txManager = txmanager.NewTransactionManager(wrappedDB)
	} else {
		executor = db
		txManager = txmanager.NewSQLTransactionManager(db)
	}

	var providers getAvailableSlotsUC.ProviderRepository = providerRepo.NewRepository(executor)
	services := serviceRepo.NewRepository(executor)
	availability := availabilityRepo.NewRepository(executor)
	bookings := bookingRepo.NewRepository(executor)
	busyBlocks := busyBlockRepo.NewRepository(executor)

	// Кэш провайдеров в Redis (опционально)
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			// Сервис работает и без кэша: ошибки Redis только логируются
			log.Warn("Redis is unavailable at %s: %v", cfg.Redis.Addr, err)
		}
		cancel()

		providers = providerCache.NewCachedRepository(providers, redisClient, cfg.Redis.CacheTTL(), log)
		log.Info("Provider cache enabled (addr=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.TTL)
	}

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		providers,
		services,
		availability,
		bookings,
		busyBlocks,
		txManager,
		log,
	)
	if cfg.Metrics.Enabled {
		getAvailableSlotsUseCase.WithSlotsObserver(metricsCollector)
	}

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	health := healthHandler.NewHandler(db, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/healthz", health.Live).Methods(http.MethodGet)
	r.HandleFunc("/readyz", health.Ready).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Получение доступных слотов (provider - UUID или username)
	api.HandleFunc("/providers/{provider}/services/{serviceId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

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
	close(stopMetricsCh)

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
