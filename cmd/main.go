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

	closeSessionHandler "github.com/m04kA/BMS-ScheduleService/internal/api/handlers/close_session"
	getScheduleHandler "github.com/m04kA/BMS-ScheduleService/internal/api/handlers/get_schedule"
	getScheduleHistoryHandler "github.com/m04kA/BMS-ScheduleService/internal/api/handlers/get_schedule_history"
	openSessionHandler "github.com/m04kA/BMS-ScheduleService/internal/api/handlers/open_session"
	saveSessionHandler "github.com/m04kA/BMS-ScheduleService/internal/api/handlers/save_session"
	setLunchBreakHandler "github.com/m04kA/BMS-ScheduleService/internal/api/handlers/set_lunch_break"
	toggleDayHandler "github.com/m04kA/BMS-ScheduleService/internal/api/handlers/toggle_day"
	toggleSlotHandler "github.com/m04kA/BMS-ScheduleService/internal/api/handlers/toggle_slot"
	updateScheduleHandler "github.com/m04kA/BMS-ScheduleService/internal/api/handlers/update_schedule"
	"github.com/m04kA/BMS-ScheduleService/internal/api/middleware"
	"github.com/m04kA/BMS-ScheduleService/internal/config"
	auditRepo "github.com/m04kA/BMS-ScheduleService/internal/infra/storage/audit"
	barberBackendClient "github.com/m04kA/BMS-ScheduleService/internal/integrations/barberbackend"
	editorService "github.com/m04kA/BMS-ScheduleService/internal/service/editor"
	loadScheduleUC "github.com/m04kA/BMS-ScheduleService/internal/usecase/load_schedule"
	saveScheduleUC "github.com/m04kA/BMS-ScheduleService/internal/usecase/save_schedule"
	"github.com/m04kA/BMS-ScheduleService/pkg/dbmetrics"
	"github.com/m04kA/BMS-ScheduleService/pkg/logger"
	"github.com/m04kA/BMS-ScheduleService/pkg/metrics"
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

	log.Info("Starting BMS-ScheduleService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных только если включён журнал сохранений.
	// Без журнала сервис работает целиком поверх бэкенда барбершопа.
	var auditRepository *auditRepo.Repository

	if cfg.Audit.Enabled {
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

		if cfg.Metrics.Enabled {
			wrappedDB := dbmetrics.WrapWithPoolStats(db, metricsCollector, cfg.Database.DBName, stopCh)
			auditRepository = auditRepo.NewRepository(wrappedDB)
			log.Info("Database metrics collection started")
		} else {
			auditRepository = auditRepo.NewRepository(db)
		}
	} else {
		log.Info("Audit journal disabled, running without database")
	}

	// Клиент бэкенда барбершопа
	var backendCollector barberBackendClient.MetricsCollector
	if cfg.Metrics.Enabled {
		backendCollector = metricsCollector
	}
	backendClient := barberBackendClient.NewClient(
		cfg.BarberBackend.URL,
		cfg.BarberBackend.Token,
		time.Duration(cfg.BarberBackend.Timeout)*time.Second,
		backendCollector,
		log,
	)
	log.Info("Barber backend client initialized (url=%s, timeout=%ds)",
		cfg.BarberBackend.URL, cfg.BarberBackend.Timeout)

	// Инициализируем use cases
	loadScheduleUseCase := loadScheduleUC.NewUseCase(backendClient, log)

	var saveScheduleUseCase *saveScheduleUC.UseCase
	if auditRepository != nil {
		saveScheduleUseCase = saveScheduleUC.NewUseCase(backendClient, auditRepository, log)
	} else {
		saveScheduleUseCase = saveScheduleUC.NewUseCase(backendClient, nil, log)
	}

	// Сервис сессий редактирования
	editorSvc := editorService.NewService(
		loadScheduleUseCase,
		saveScheduleUseCase,
		time.Duration(cfg.Editor.SessionTTL)*time.Second,
		log,
	)
	go editorSvc.RunCleanup(time.Duration(cfg.Editor.CleanupInterval)*time.Second, stopCh)

	// Инициализируем handlers
	getSchedule := getScheduleHandler.NewHandler(loadScheduleUseCase, log)
	updateSchedule := updateScheduleHandler.NewHandler(saveScheduleUseCase, log)
	openSession := openSessionHandler.NewHandler(editorSvc, log)
	toggleDay := toggleDayHandler.NewHandler(editorSvc, log)
	toggleSlot := toggleSlotHandler.NewHandler(editorSvc, log)
	setLunchBreak := setLunchBreakHandler.NewHandler(editorSvc, log)
	saveSession := saveSessionHandler.NewHandler(editorSvc, log)
	closeSession := closeSessionHandler.NewHandler(editorSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Просмотр недельного расписания барбера
	api.HandleFunc("/barbers/{barberId}/schedule", getSchedule.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Прямое сохранение расписания ---
	protected.HandleFunc("/barbers/{barberId}/schedule", updateSchedule.Handle).Methods(http.MethodPut)

	// --- Сессии редактирования ---
	protected.HandleFunc("/barbers/{barberId}/schedule/sessions", openSession.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/schedule-sessions/{sessionId}/toggle-day", toggleDay.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/schedule-sessions/{sessionId}/toggle-slot", toggleSlot.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/schedule-sessions/{sessionId}/lunch-break", setLunchBreak.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/schedule-sessions/{sessionId}/save", saveSession.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/schedule-sessions/{sessionId}", closeSession.Handle).Methods(http.MethodDelete)

	// --- Журнал сохранений (только при включённом audit) ---
	if auditRepository != nil {
		getScheduleHistory := getScheduleHistoryHandler.NewHandler(auditRepository, log)
		protected.HandleFunc("/barbers/{barberId}/schedule/history", getScheduleHistory.Handle).Methods(http.MethodGet)
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

	// Останавливаем фоновые горутины (метрики пула и чистку сессий)
	close(stopCh)

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
