package app

import (
	"context"
	"fmt"

	"go-biztime/internal/bootstrap"
	"go-biztime/internal/config"
	"go-biztime/internal/messaging/kafka"
	"go-biztime/internal/observability"
	"go-biztime/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const eventSource = "go-biztime-api"

// BuildApp connects the infrastructure and returns the router together with
// the cleanups to run after the server stops. Redis and Kafka are optional:
// without them idempotency is off and events are dropped.
func BuildApp(ctx context.Context, cfg config.Config) (*gin.Engine, []bootstrap.CleanupFunc, error) {
	log := zap.L().Named("app")
	var cleanups []bootstrap.CleanupFunc

	shutdownTracing, err := observability.InitTracing(ctx, observability.TracingConfig{
		Enabled:     cfg.OtelEnabled,
		Environment: cfg.Env,
		Endpoint:    cfg.OtelEndpoint,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("init tracing: %w", err)
	}

	db, err := connection.ConnectGORMWithRetry(cfg.Database)
	if err != nil {
		return nil, nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, err
	}
	log.Info("database connection established")

	deps := Dependencies{DB: db, Publisher: kafka.NewNoopPublisher()}

	if cfg.RedisAddr != "" {
		rdb, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, cfg.Database.MaxRetries)
		if err != nil {
			return nil, nil, err
		}
		deps.Redis = rdb
		cleanups = append(cleanups, func(context.Context) error { return rdb.Close() })
		log.Info("redis connection established")
	} else {
		log.Warn("REDIS_ADDR not set, idempotency keys are ignored")
	}

	if cfg.KafkaBroker != "" {
		writer, err := connection.ConnectKafkaWithRetry(cfg.KafkaBroker, cfg.Database.MaxRetries)
		if err != nil {
			return nil, nil, err
		}
		deps.Publisher = kafka.NewPublisher(writer, eventSource)
		cleanups = append(cleanups, func(context.Context) error { return writer.Close() })
		log.Info("kafka writer ready", zap.String("broker", cfg.KafkaBroker))
	} else {
		log.Warn("KAFKA_BROKER not set, lifecycle events are dropped")
	}

	cleanups = append(cleanups,
		func(context.Context) error { return sqlDB.Close() },
		func(ctx context.Context) error { return shutdownTracing(ctx) },
	)

	return NewRouter(cfg, deps), cleanups, nil
}
