package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/go-ddd-example/order-service/internal/app"
	"github.com/go-ddd-example/order-service/internal/config"
	"github.com/go-ddd-example/order-service/internal/events"
	"github.com/go-ddd-example/order-service/internal/handler"
	"github.com/go-ddd-example/order-service/internal/repo"
	"github.com/go-ddd-example/order-service/internal/service"
	"github.com/go-ddd-example/order-service/internal/storage"
	"github.com/go-ddd-example/order-service/pkg/cache"
	"github.com/go-ddd-example/order-service/pkg/trm"
)

func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	var orderRepo service.OrderRepo
	txManager := trm.Nop()

	switch conf.Storage.Driver {
	case "sqlite":
		db, err := storage.NewSQLite(conf.Storage.DSN)
		panicIfErr("failed to open sqlite", err)
		defer db.Close()

		sqliteRepo := repo.NewSQLiteRepo(db)
		panicIfErr("failed to migrate sqlite", sqliteRepo.Migrate(ctx))

		orderRepo = sqliteRepo
		txManager = trm.NewManager(db)
		logger.Info("sqlite storage ready", slog.String("dsn", conf.Storage.DSN))
	default:
		orderRepo = repo.NewMemoryRepo()
		logger.Info("in-memory storage ready")
	}

	var publisher service.EventPublisher = events.NewNopPublisher()
	if conf.Kafka.Enabled {
		kafkaPublisher := events.NewKafkaPublisher(logger, conf.Kafka)
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
		logger.Info("kafka publisher ready", slog.String("topic", conf.Kafka.Topic))
	}

	snapshotCache := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL)
	snapshotCache.StartJanitor(ctx)

	orderService := service.NewOrderService(logger, txManager, orderRepo, snapshotCache, publisher)
	httpHandler := handler.NewHTTPHandler(logger, orderService)

	application := app.New(logger, conf)
	application.SetHTTPHandlers(httpHandler)

	panicIfErr("application failed", application.Run(ctx))
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}
