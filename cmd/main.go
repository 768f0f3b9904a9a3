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

	getAvailabilityHandler "github.com/akash925/Dock-BookingService/internal/api/handlers/get_availability"
	getFacilityScheduleHandler "github.com/akash925/Dock-BookingService/internal/api/handlers/get_facility_schedule"
	"github.com/akash925/Dock-BookingService/internal/api/middleware"
	"github.com/akash925/Dock-BookingService/internal/config"
	appointmentRepo "github.com/akash925/Dock-BookingService/internal/infra/storage/appointment"
	appointmentTypeRepo "github.com/akash925/Dock-BookingService/internal/infra/storage/appointmenttype"
	facilityRepo "github.com/akash925/Dock-BookingService/internal/infra/storage/facility"
	scheduleRepo "github.com/akash925/Dock-BookingService/internal/infra/storage/schedule"
	scheduleService "github.com/akash925/Dock-BookingService/internal/service/schedule"
	getAvailabilityUC "github.com/akash925/Dock-BookingService/internal/usecase/get_availability"
	"github.com/akash925/Dock-BookingService/pkg/logger"
	"github.com/akash925/Dock-BookingService/pkg/metrics"
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

	log.Info("Starting Dock-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
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

	// Инициализируем репозитории
	facilityRepository := facilityRepo.NewRepository(db)
	appointmentTypeRepository := appointmentTypeRepo.NewRepository(db)
	scheduleRepository := scheduleRepo.NewRepository(db)
	appointmentRepository := appointmentRepo.NewRepository(db)

	// Инициализируем сервисы
	scheduleSvc := scheduleService.NewService(
		facilityRepository,
		appointmentTypeRepository,
		scheduleRepository,
		log,
	)

	// Инициализируем use cases. Флаг запрета выходных читается из
	// конфигурации один раз на старте и инжектируется в расчёт.
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		facilityRepository,
		appointmentTypeRepository,
		scheduleRepository,
		appointmentRepository,
		cfg.Booking.BlockWeekends,
		log,
	)
	if cfg.Booking.BlockWeekends {
		log.Info("Weekend booking is globally blocked")
	}

	// Инициализируем handlers
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	getFacilitySchedule := getFacilityScheduleHandler.NewHandler(scheduleSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Расчёт доступных слотов на дату
	api.HandleFunc("/facilities/{facilityId}/availability",
		getAvailability.Handle).Methods(http.MethodGet)

	// Эффективное недельное расписание площадки для типа записи
	api.HandleFunc("/facilities/{facilityId}/schedule",
		getFacilitySchedule.Handle).Methods(http.MethodGet)

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
