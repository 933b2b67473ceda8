package app

import (
	"context"
	"time"

	"elms-portal/internal/audit"
	"elms-portal/internal/config"
	"elms-portal/internal/messaging/kafka"
	"elms-portal/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	outboxCapacity    = 1024
	outboxPollEvery   = 3 * time.Second
	sweepEvery        = 5 * time.Minute
	connectRetries    = 5
	connectRetryDelay = 2 * time.Second
)

// App is the running portal: its audit trail plus the background goroutines
// started by BuildApp.
type App struct {
	Audit audit.Logger

	cancel  context.CancelFunc
	closers []func()
}

// Close stops background work and releases connections, newest first.
func (a *App) Close() {
	a.cancel()
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

// BuildApp connects the infrastructure named by cfg and mounts every module on router.
func BuildApp(router *gin.Engine, cfg *config.Config) (*App, error) {
	logger := zap.L().Named("app")
	ctx, cancel := context.WithCancel(context.Background())
	a := &App{cancel: cancel}

	// 1. Setup Infrastructure
	var rdb *redis.Client
	if cfg.Session.RedisAddr != "" {
		var err error
		rdb, err = connection.ConnectRedisWithRetry(ctx, cfg.Session.RedisAddr, connectRetries, connectRetryDelay)
		if err != nil {
			a.Close()
			return nil, err
		}
		a.closers = append(a.closers, func() { _ = rdb.Close() })
	} else {
		logger.Info("REDIS_ADDR not set, sessions kept in memory")
	}

	auditLogger, err := a.buildAudit(ctx, cfg, logger)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.Audit = auditLogger

	// 2. Register Modules & Routes
	sweepers, err := registerModules(router, cfg, rdb, auditLogger)
	if err != nil {
		a.Close()
		return nil, err
	}
	go sweepSessions(ctx, sweepEvery, logger, sweepers...)

	return a, nil
}

// buildAudit always logs to stdout. With brokers configured it also queues
// events in an outbox drained to Kafka by a background worker.
func (a *App) buildAudit(ctx context.Context, cfg *config.Config, logger *zap.Logger) (audit.Logger, error) {
	stdout := audit.NewStdoutLogger()
	if len(cfg.Audit.KafkaBrokers) == 0 {
		logger.Info("KAFKA_BROKERS not set, audit trail goes to stdout only")
		return stdout, nil
	}

	writer, err := connection.ConnectKafkaWithRetry(ctx, cfg.Audit.KafkaBrokers, cfg.Audit.Topic, connectRetries, connectRetryDelay)
	if err != nil {
		return nil, err
	}

	outbox := kafka.NewMemoryOutbox(outboxCapacity)
	done := startOutboxWorker(ctx, outbox, writer, logger)
	a.closers = append(a.closers, func() {
		<-done
		_ = writer.Close()
	})

	return audit.Multi{stdout, audit.NewOutboxLogger(outbox, cfg.Audit.Topic)}, nil
}

// sweepSessions periodically evicts dashboard state of sessions gone idle.
func sweepSessions(ctx context.Context, every time.Duration, logger *zap.Logger, sweepers ...func() int) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			dropped := 0
			for _, sweep := range sweepers {
				dropped += sweep()
			}
			if dropped > 0 {
				logger.Debug("idle dashboard state swept", zap.Int("dropped", dropped))
			}
		}
	}
}
