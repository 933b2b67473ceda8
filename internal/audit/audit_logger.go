package audit

import (
	"context"
	"encoding/json"
	"time"

	"elms-portal/internal/events"
	"elms-portal/internal/messaging/kafka"
	"elms-portal/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Entry is one auditable portal action.
type Entry struct {
	Action  string
	Actor   string
	Role    string
	Subject string
	Outcome string
	Message string
	Meta    map[string]any
}

type Logger interface {
	Log(ctx context.Context, entry Entry)
}

func toEvent(ctx context.Context, entry Entry, now time.Time) events.PortalEvent {
	outcome := entry.Outcome
	if outcome == "" {
		outcome = OutcomeSuccess
	}
	return events.PortalEvent{
		EventType:  entry.Action,
		Actor:      entry.Actor,
		Role:       entry.Role,
		Subject:    entry.Subject,
		Outcome:    outcome,
		Message:    entry.Message,
		RequestID:  contextutil.GetRequestID(ctx),
		Meta:       entry.Meta,
		OccurredAt: now.UTC(),
	}
}

type StdoutLogger struct{}

func NewStdoutLogger() *StdoutLogger {
	return &StdoutLogger{}
}

func (l *StdoutLogger) Log(ctx context.Context, entry Entry) {
	ev := toEvent(ctx, entry, time.Now())
	zap.L().Named("audit").Info("audit event",
		zap.String("timestamp", ev.OccurredAt.Format(time.RFC3339)),
		zap.String("action", ev.EventType),
		zap.String("actor", ev.Actor),
		zap.String("role", ev.Role),
		zap.String("subject", ev.Subject),
		zap.String("outcome", ev.Outcome),
		zap.String("message", ev.Message),
		zap.String("request_id", ev.RequestID),
		zap.Any("meta", ev.Meta),
	)
}

// OutboxLogger queues audit events for the kafka producer worker.
type OutboxLogger struct {
	outbox kafka.OutboxRepository
	topic  string
	logger *zap.Logger
}

func NewOutboxLogger(outbox kafka.OutboxRepository, topic string, logger ...*zap.Logger) *OutboxLogger {
	l := zap.L().Named("audit.outbox")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("audit.outbox")
	}
	if topic == "" {
		topic = events.PortalAuditTopic
	}
	return &OutboxLogger{outbox: outbox, topic: topic, logger: l}
}

// Log never fails the caller; an event that cannot be queued is logged and dropped.
func (l *OutboxLogger) Log(ctx context.Context, entry Entry) {
	ev := toEvent(ctx, entry, time.Now())
	payload, err := json.Marshal(ev)
	if err != nil {
		l.logger.Error("marshal audit event failed", zap.String("action", entry.Action), zap.Error(err))
		return
	}

	err = l.outbox.Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     ev.RequestID,
		AggregateType: "portal_" + entry.Role,
		AggregateID:   entry.Actor,
		EventType:     entry.Action,
		Topic:         l.topic,
		Payload:       payload,
	})
	if err != nil {
		l.logger.Warn("audit event dropped", zap.String("action", entry.Action), zap.Error(err))
	}
}

// Multi fans every entry out to each logger.
type Multi []Logger

func (m Multi) Log(ctx context.Context, entry Entry) {
	for _, l := range m {
		l.Log(ctx, entry)
	}
}
