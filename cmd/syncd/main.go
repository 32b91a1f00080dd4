package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"matchsync/internal/config"
	"matchsync/internal/provider/sportmonks"
	"matchsync/internal/publisher"
	"matchsync/internal/scheduler"
	"matchsync/internal/service"
	"matchsync/internal/storage/postgres"
	"matchsync/internal/transport/httpapi"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	logger := setupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	logger.Info("connected to database")

	var pub service.Publisher
	if cfg.RabbitMQ.URL != "" {
		rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
			QueueName:  cfg.RabbitMQ.QueueName,
		}, logger)
		if err != nil {
			logger.Error("failed to connect to rabbitmq", "error", err)
			os.Exit(1)
		}
		defer rabbitMQ.Close()
		pub = rabbitMQ
	} else {
		logger.Warn("rabbitmq not configured, score change events disabled")
	}

	fixtureStore := postgres.NewFixtureStore(db)
	oddsStore := postgres.NewOddsStore(db)
	teamStore := postgres.NewTeamStore(db)
	countryStore := postgres.NewCountryStore(db)
	leagueStore := postgres.NewLeagueStore(db)
	bookmakerStore := postgres.NewBookmakerStore(db)
	tvStationStore := postgres.NewTVStationStore(db)
	seasonStore := postgres.NewSeasonStore(db)
	standingStore := postgres.NewStandingStore(db)
	operationStore := postgres.NewOperationStore(db)
	lock := postgres.NewAdvisoryLock(db)

	client := sportmonks.New(sportmonks.Config{
		BaseURL:        cfg.API.BaseURL,
		Token:          cfg.API.Token,
		PerPage:        cfg.API.PerPage,
		PageDelay:      cfg.API.PageDelay,
		Timeout:        cfg.API.Timeout,
		MaxAttempts:    cfg.API.Retry.MaxAttempts,
		InitialBackoff: cfg.API.Retry.InitialBackoff,
		MaxBackoff:     cfg.API.Retry.MaxBackoff,
	}, logger)

	maxPages := cfg.API.MaxPages
	runner := service.NewRunner(
		lockerAdapter{lock},
		operationStore,
		cfg.Jobs,
		logger,
		service.NewFixtureJob(client, fixtureStore, maxPages, logger),
		service.NewOddsJob(client, fixtureStore, oddsStore, bookmakerStore, maxPages, logger),
		service.NewTVChannelJob(client, fixtureStore, tvStationStore, maxPages, logger),
		service.NewTeamLogoJob(client, teamStore, logger),
		service.NewLiveUpdateJob(client, fixtureStore, pub, logger),
		service.NewStandingsJob(client, seasonStore, standingStore, maxPages, logger),
		service.NewStaticDataJob(client, countryStore, leagueStore, teamStore, bookmakerStore, tvStationStore, maxPages, logger),
	)

	sched := scheduler.New(runner, logger)
	for job, expression := range cfg.Jobs.Schedules {
		if expression == "" {
			continue
		}
		if err := sched.Add(job, expression); err != nil {
			logger.Error("failed to schedule job", "error", err)
			os.Exit(1)
		}
	}
	sched.Start()
	defer sched.Stop()

	app := fiber.New(fiber.Config{
		AppName:               "matchsync",
		DisableStartupMessage: true,
	})
	httpapi.NewServer(runner, operationStore, cfg.HTTP.AdminSecret, logger).Register(app)

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listen(cfg.HTTP.Addr)
	}()
	logger.Info("http server listening", "addr", cfg.HTTP.Addr, "jobs", runner.JobNames())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Info("received shutdown signal", "signal", sig)
		if err := app.Shutdown(); err != nil {
			logger.Error("http shutdown", "error", err)
		}
	case err := <-errCh:
		if err != nil {
			logger.Error("http server error", "error", err)
			os.Exit(1)
		}
	}
}

// lockerAdapter narrows *postgres.LockHandle to the service interface.
type lockerAdapter struct {
	lock *postgres.AdvisoryLock
}

func (a lockerAdapter) TryAcquire(ctx context.Context, scope string) (service.Unlocker, bool, error) {
	handle, acquired, err := a.lock.TryAcquire(ctx, scope)
	if handle == nil {
		return nil, acquired, err
	}
	return handle, acquired, err
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
