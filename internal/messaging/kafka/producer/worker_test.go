package producer

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"elms-portal/internal/messaging/kafka"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeWriter struct {
	writeFn func(msgs ...kafkago.Message) error
	sent    []kafkago.Message
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...kafkago.Message) error {
	if f.writeFn != nil {
		if err := f.writeFn(msgs...); err != nil {
			return err
		}
	}
	f.sent = append(f.sent, msgs...)
	return nil
}

func TestWorker_Flush(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		outbox := kafka.NewMemoryOutbox(10)
		_ = outbox.Create(ctx, kafka.OutboxEvent{ID: "1", Topic: "t", AggregateID: "EMP001", EventType: "leave_submitted", Payload: []byte(`{}`)})
		_ = outbox.Create(ctx, kafka.OutboxEvent{ID: "2", Topic: "t", AggregateID: "EMP002", EventType: "leave_submitted"})
		w := &fakeWriter{}

		sent, err := NewWorker(outbox, w, zap.NewNop(), 0).Flush(ctx)

		assert.NoError(t, err)
		assert.Equal(t, 2, sent)
		assert.Len(t, w.sent, 2)
		assert.Equal(t, "EMP001", string(w.sent[0].Key))
		assert.Equal(t, "leave_submitted", string(w.sent[0].Headers[0].Value))
		assert.Zero(t, outbox.Len())
	})

	t.Run("negative - failed publish stays queued until retries run out", func(t *testing.T) {
		outbox := kafka.NewMemoryOutbox(10)
		_ = outbox.Create(ctx, kafka.OutboxEvent{ID: "1", Topic: "t"})
		w := &fakeWriter{writeFn: func(...kafkago.Message) error { return errors.New("broker down") }}
		worker := NewWorker(outbox, w, zap.NewNop(), 0)

		for i := 1; i < kafka.MaxOutboxRetries; i++ {
			sent, err := worker.Flush(ctx)
			assert.NoError(t, err)
			assert.Zero(t, sent)
			assert.Equal(t, 1, outbox.Len())
		}
		_, err := worker.Flush(ctx)
		assert.NoError(t, err)
		assert.Zero(t, outbox.Len())
	})
}

func TestWorker_FlushDrainsMoreThanOneBatch(t *testing.T) {
	ctx := context.Background()
	outbox := kafka.NewMemoryOutbox(2 * batchSize)
	for i := 0; i < batchSize+5; i++ {
		_ = outbox.Create(ctx, kafka.OutboxEvent{ID: fmt.Sprintf("ev-%d", i), Topic: "t"})
	}
	w := &fakeWriter{}

	sent, err := NewWorker(outbox, w, zap.NewNop(), 0).Flush(ctx)

	assert.NoError(t, err)
	assert.Equal(t, batchSize+5, sent)
	assert.Zero(t, outbox.Len())
}

func TestWorker_RunFlushesOnStop(t *testing.T) {
	outbox := kafka.NewMemoryOutbox(10)
	_ = outbox.Create(context.Background(), kafka.OutboxEvent{ID: "1", Topic: "t"})
	w := &fakeWriter{}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	NewWorker(outbox, w, zap.NewNop(), time.Hour).Run(ctx)

	assert.Len(t, w.sent, 1)
}
