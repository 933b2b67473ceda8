package app

import (
	"context"

	"elms-portal/internal/messaging/kafka"
	"elms-portal/internal/messaging/kafka/producer"

	"go.uber.org/zap"
)

// startOutboxWorker drains outbox into writer until ctx is done. The returned
// channel closes once the worker has made its final flush.
func startOutboxWorker(
	ctx context.Context,
	outbox kafka.OutboxRepository,
	writer producer.MessageWriter,
	logger *zap.Logger,
) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		producer.NewWorker(outbox, writer, logger, outboxPollEvery).Run(ctx)
	}()
	return done
}
