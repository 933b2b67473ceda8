package producer

import (
	"context"
	"time"

	"elms-portal/internal/messaging/kafka"

	"go.uber.org/zap"
)

const (
	batchSize           = 50
	defaultPollInterval = 3 * time.Second
	flushTimeout        = 5 * time.Second
)

// Worker moves queued audit events from the outbox to Kafka.
type Worker struct {
	repo         kafka.OutboxRepository
	writer       MessageWriter
	pollInterval time.Duration
	log          *zap.Logger
}

func NewWorker(repo kafka.OutboxRepository, writer MessageWriter, logger *zap.Logger, pollInterval time.Duration) *Worker {
	if pollInterval <= 0 {
		pollInterval = defaultPollInterval
	}
	return &Worker{
		repo:         repo,
		writer:       writer,
		pollInterval: pollInterval,
		log:          logger.Named("kafka.producer.worker"),
	}
}

// Run flushes every pollInterval until ctx is done, then once more within
// flushTimeout so events queued during shutdown still go out.
func (w *Worker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	w.log.Info("outbox worker started", zap.Duration("poll_interval", w.pollInterval))
	defer w.log.Info("outbox worker stopped")

	for {
		select {
		case <-ticker.C:
			if _, err := w.Flush(ctx); err != nil {
				w.log.Error("flush outbox failed", zap.Error(err))
			}
		case <-ctx.Done():
			last, cancel := context.WithTimeout(context.WithoutCancel(ctx), flushTimeout)
			sent, err := w.Flush(last)
			cancel()
			if err != nil {
				w.log.Error("final outbox flush failed", zap.Error(err))
			}
			w.log.Info("final outbox flush", zap.Int("sent", sent))
			return
		}
	}
}

// Flush publishes batches until the outbox is drained or a batch leaves
// something behind, and reports how many events were sent. A failed event
// is marked and retried on a later flush.
func (w *Worker) Flush(ctx context.Context) (int, error) {
	sent := 0
	for {
		batch, err := w.repo.ListPending(ctx, batchSize)
		if err != nil {
			return sent, err
		}

		n := 0
		for _, event := range batch {
			if w.send(ctx, event) {
				n++
			}
		}
		sent += n

		if len(batch) < batchSize || n < len(batch) || ctx.Err() != nil {
			return sent, nil
		}
	}
}

func (w *Worker) send(ctx context.Context, event kafka.OutboxEvent) bool {
	log := w.log.With(
		zap.String("outbox_id", event.ID),
		zap.String("event_type", event.EventType),
		zap.String("topic", event.Topic),
	)

	if err := publishEvent(ctx, w.writer, event); err != nil {
		log.Warn("publish audit event failed", zap.Int("retry_count", event.RetryCount), zap.Error(err))
		if err := w.repo.MarkFailed(ctx, event.ID, err.Error()); err != nil {
			log.Error("mark outbox failed failed", zap.Error(err))
		}
		return false
	}

	if err := w.repo.MarkSent(ctx, event.ID); err != nil {
		log.Error("mark outbox sent failed", zap.Error(err))
		return false
	}
	log.Debug("audit event sent")
	return true
}
