package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SergeyKozhin/reminder-bot/internal/api"
	"github.com/SergeyKozhin/reminder-bot/internal/assistant"
	events_service "github.com/SergeyKozhin/reminder-bot/internal/business/events"
	"github.com/SergeyKozhin/reminder-bot/internal/config"
	"github.com/SergeyKozhin/reminder-bot/internal/conversation"
	"github.com/SergeyKozhin/reminder-bot/internal/database"
	"github.com/SergeyKozhin/reminder-bot/internal/database/events"
	"github.com/SergeyKozhin/reminder-bot/internal/notifications"
	"github.com/SergeyKozhin/reminder-bot/internal/redis"
	"github.com/SergeyKozhin/reminder-bot/internal/telegram"
	"github.com/xlab/closer"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	defer closer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := config.Load(); err != nil {
		log.Fatalf("unable to load config: %v", err)
	}

	logger, err := initLogger()
	if err != nil {
		log.Fatalf("unable to initializae logger: %v", err)
	}

	db, err := database.Open(ctx, config.DatabasePath())
	if err != nil {
		logger.Fatalw("unable to initialize db", "path", config.DatabasePath(), "err", err)
	}
	closer.Bind(func() {
		if err := db.Close(); err != nil {
			logger.Errorw("Failed closing database", "err", err)
		}
	})

	var sessions conversation.Store
	if url := config.RedisURL(); url != "" {
		redisPool := redis.NewRedisPool(url, logger)
		sessions = redis.NewSessionRepository(redisPool, config.SessionTTL(), logger)
		logger.Infow("Using redis sessions", "url", url)
	} else {
		sessions = conversation.NewMemoryStore(config.SessionTTL(), time.Now)
	}

	eventsRepository := events.NewRepository(logger)
	eventsService := events_service.NewService(db, eventsRepository)

	bot, err := telegram.New(config.Token(), logger)
	if err != nil {
		logger.Fatalw("unable to initialize bot", "err", err)
	}

	bot.SetHandler(assistant.New(logger, bot, eventsService, sessions, config.Location()))

	sender := notifications.NewSender(logger, eventsService, bot, config.Location(), config.NotifySchedule())
	if err := sender.Start(ctx); err != nil {
		logger.Fatalw("unable to start notifier", "err", err)
	}

	if config.HealthcheckEnabled() {
		startServer(ctx, logger, api.NewApi(logger, db))
	}

	bot.Start(ctx)
	logger.Infow("Shutting down")
}

func startServer(ctx context.Context, logger *zap.SugaredLogger, handler http.Handler) {
	errLogger, err := zap.NewStdLogAt(logger.Desugar(), zap.ErrorLevel)
	if err != nil {
		logger.Fatalw("error initiating server logger", "err", err)
	}

	server := &http.Server{
		Addr:     ":" + config.Port(),
		Handler:  handler,
		ErrorLog: errLogger,
	}

	go func() {
		logger.Infow("Started server", "port", config.Port())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Errorw("server error", "err", err)
		}
	}()

	closer.Bind(func() {
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Errorw("Failed shutting down server", "err", err)
		}
	})

	go func() {
		<-ctx.Done()
		_ = server.Close()
	}()
}

func initLogger() (*zap.SugaredLogger, error) {
	var logger *zap.Logger
	var err error

	if config.Production() {
		logger, err = zap.NewProduction()
	} else {
		conf := zap.NewDevelopmentConfig()
		conf.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		logger, err = conf.Build()
	}

	if err != nil {
		return nil, err
	}

	closer.Bind(func() {
		_ = logger.Sync()
	})

	return logger.Sugar(), nil
}
