package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Dosada05/cricket-tournament/config"
	"github.com/Dosada05/cricket-tournament/db"
	"github.com/Dosada05/cricket-tournament/events"
	"github.com/Dosada05/cricket-tournament/handlers"
	"github.com/Dosada05/cricket-tournament/middleware"
	"github.com/Dosada05/cricket-tournament/models"
	"github.com/Dosada05/cricket-tournament/repositories"
	api "github.com/Dosada05/cricket-tournament/routes"
	"github.com/Dosada05/cricket-tournament/services"
	"github.com/Dosada05/cricket-tournament/storage"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const shutdownTimeout = 15 * time.Second

func main() {
	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		slog.New(slog.NewJSONHandler(os.Stdout, nil)).Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	// Настройка логгера
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)
	logger.Info("configuration loaded",
		slog.Int("port", cfg.ServerPort),
		slog.String("storage_driver", cfg.StorageDriver),
		slog.Bool("check_references", cfg.CheckReferences),
	)

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// Инициализация репозиториев
	var (
		dbConn         *sql.DB
		tournamentRepo repositories.TournamentRepository
		teamRepo       repositories.TeamRepository
		playerRepo     repositories.PlayerRepository
		matchRepo      repositories.MatchRepository
	)
	switch cfg.StorageDriver {
	case config.StorageDriverMemory:
		tournamentRepo = repositories.NewMemoryRepository(repositories.TournamentTable)
		teamRepo = repositories.NewMemoryRepository(repositories.TeamTable)
		playerRepo = repositories.NewMemoryRepository(repositories.PlayerTable)
		matchRepo = repositories.NewMemoryRepository(repositories.MatchTable)
		logger.Warn("using in-memory storage, data will not survive a restart")
	default:
		// Подключение к базе данных
		dbConn, err = db.Connect(cfg.DatabaseURL, cfg.DBConnectTimeout)
		if err != nil {
			logger.Error("failed to connect to database", slog.Any("error", err))
			os.Exit(1)
		}
		defer func() {
			if err := dbConn.Close(); err != nil {
				logger.Error("failed to close database connection", slog.Any("error", err))
			} else {
				logger.Info("database connection closed")
			}
		}()
		logger.Info("database connection established")

		if cfg.AutoMigrate {
			// Миграции идут через отдельное соединение, которое закрывается сразу после применения.
			applied, err := db.MigrateUp(cfg.DatabaseURL)
			if err != nil {
				logger.Error("failed to apply migrations", slog.Any("error", err))
				os.Exit(1)
			}
			logger.Info("schema is up to date", slog.Bool("applied", applied))
		}

		tournamentRepo = repositories.NewPostgresTournamentRepository(dbConn)
		teamRepo = repositories.NewPostgresTeamRepository(dbConn)
		playerRepo = repositories.NewPostgresPlayerRepository(dbConn)
		matchRepo = repositories.NewPostgresMatchRepository(dbConn)
	}
	logger.Info("repositories initialized")

	// Инициализация загрузчика файлов (Cloudflare R2)
	var uploader storage.FileUploader
	r2Config := storage.CloudflareR2UploaderConfig{
		AccountID:       cfg.R2AccountID,
		AccessKeyID:     cfg.R2AccessKeyID,
		SecretAccessKey: cfg.R2SecretAccessKey,
		BucketName:      cfg.R2BucketName,
		PublicBaseURL:   cfg.R2PublicBaseURL,
	}
	if r2Config.Enabled() {
		uploader, err = storage.NewCloudflareR2Uploader(ctx, r2Config)
		if err != nil {
			logger.Error("failed to initialize Cloudflare R2 uploader", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("Cloudflare R2 uploader initialized", slog.String("bucket", cfg.R2BucketName))
	} else {
		logger.Info("Cloudflare R2 is not configured, snapshot export disabled")
	}

	// Инициализация WebSocket Hub
	wsHub := events.NewHub(logger)
	go wsHub.Run(ctx)
	logger.Info("WebSocket hub started")

	// Инициализация сервисов
	var refs services.ReferenceChecker
	if cfg.CheckReferences {
		refs = services.NewReferenceChecker(tournamentRepo, teamRepo)
	}
	tournamentService := services.NewCRUDService(models.KindTournament, tournamentRepo, refs, wsHub, logger)
	teamService := services.NewCRUDService(models.KindTeam, teamRepo, refs, wsHub, logger)
	playerService := services.NewCRUDService(models.KindPlayer, playerRepo, refs, wsHub, logger)
	matchService := services.NewCRUDService(models.KindMatch, matchRepo, refs, wsHub, logger)
	dashboardService := services.NewDashboardService(tournamentRepo, teamRepo, playerRepo, matchRepo)
	exportService := services.NewExportService(tournamentService, teamService, playerService, matchService, uploader, logger)
	logger.Info("services initialized")

	// Инициализация обработчиков HTTP
	var pinger handlers.Pinger
	if dbConn != nil {
		pinger = dbConn
	}
	h := api.Handlers{
		Tournaments: handlers.NewCRUDHandler(tournamentService, func() *models.Tournament { return &models.Tournament{} }, logger),
		Teams:       handlers.NewCRUDHandler(teamService, func() *models.Team { return &models.Team{} }, logger),
		Players:     handlers.NewCRUDHandler(playerService, func() *models.Player { return &models.Player{} }, logger),
		Matches:     handlers.NewCRUDHandler(matchService, func() *models.Match { return &models.Match{} }, logger),
		Legacy:      handlers.NewLegacyHandler(tournamentService, teamService, playerService, matchService, logger),
		Dashboard:   handlers.NewDashboardHandler(dashboardService, logger),
		Export:      handlers.NewExportHandler(exportService, logger),
		Health:      handlers.NewHealthHandler(pinger, logger),
		WebSocket:   handlers.NewWebSocketHandler(wsHub, cfg.AllowedOrigins, logger),
	}
	logger.Info("HTTP handlers initialized")

	// Метрики
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	if dbConn != nil {
		registry.MustRegister(collectors.NewDBStatsCollector(dbConn, "cricket"))
	}

	// Настройка маршрутизатора
	router := chi.NewRouter()
	api.SetupRoutes(router, h, api.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		Metrics:        middleware.NewMetrics(registry),
		MetricsHandler: promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry}),
		RequestLogging: cfg.RequestLogging,
	})
	logger.Info("routes configured")

	// Настройка и запуск HTTP-сервера
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	// Ожидание сигнала завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			stop()
			os.Exit(1)
		}
		logger.Info("server stopped gracefully")
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))
		// Hub закрывает WebSocket соединения до остановки сервера.
		stop()

		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancelShutdown()

		logger.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			os.Exit(1)
		}
		logger.Info("server shutdown complete")
	}
	logger.Info("application exited")
}
