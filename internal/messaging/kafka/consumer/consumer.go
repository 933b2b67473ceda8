package consumer

import (
	"context"
	"encoding/json"

	"elms-portal/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the part of *kafkago.Reader the consumer needs.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// AuditSink receives every decoded portal event.
type AuditSink func(ctx context.Context, event events.PortalEvent) error

// ConsumePortalAudit reads the portal audit topic until ctx is done. Undecodable
// messages are committed and skipped; a sink failure leaves the message
// uncommitted so the group sees it again after a rebalance.
func ConsumePortalAudit(
	ctx context.Context,
	reader MessageReader,
	sink AuditSink,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.portal_audit")
	log.Info("portal audit consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("portal audit consumer stopped")
				return
			}
			log.Error("fetch portal audit message failed", zap.Error(err))
			continue
		}

		var event events.PortalEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode portal event failed", zap.Int64("offset", msg.Offset), zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if err := sink(ctx, event); err != nil {
			log.Error("handle portal event failed",
				zap.String("event_type", event.EventType),
				zap.String("actor", event.Actor),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit portal audit message failed", zap.Error(err))
			continue
		}
	}
}

// LogSink writes each event as one structured log line.
func LogSink(logger *zap.Logger) AuditSink {
	log := logger.Named("audit.trail")
	return func(_ context.Context, event events.PortalEvent) error {
		log.Info(event.EventType,
			zap.Time("occurred_at", event.OccurredAt),
			zap.String("actor", event.Actor),
			zap.String("role", event.Role),
			zap.String("subject", event.Subject),
			zap.String("outcome", event.Outcome),
			zap.String("message", event.Message),
			zap.String("request_id", event.RequestID),
			zap.Any("meta", event.Meta),
		)
		return nil
	}
}
