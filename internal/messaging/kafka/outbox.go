package kafka

import (
	"context"
	"errors"
	"sync"
	"time"
)

const (
	OutboxStatusPending = "pending"
	OutboxStatusSent    = "sent"
	OutboxStatusFailed  = "failed"
)

// MaxOutboxRetries bounds how often a failed event is offered again.
const MaxOutboxRetries = 3

var ErrOutboxFull = errors.New("outbox is full")

type OutboxEvent struct {
	ID            string
	RequestID     string
	AggregateType string
	AggregateID   string
	EventType     string
	Topic         string
	Payload       []byte
	Status        string
	RetryCount    int
	CreatedAt     time.Time
}

type OutboxRepository interface {
	Create(ctx context.Context, event OutboxEvent) error
	ListPending(ctx context.Context, limit int) ([]OutboxEvent, error)
	MarkSent(ctx context.Context, id string) error
	MarkFailed(ctx context.Context, id string, reason string) error
}

// MemoryOutbox buffers events in process until the producer worker sends them.
// Sent events and events that exhausted their retries are dropped.
type MemoryOutbox struct {
	mu       sync.Mutex
	capacity int
	order    []string
	events   map[string]OutboxEvent
}

func NewMemoryOutbox(capacity int) *MemoryOutbox {
	if capacity <= 0 {
		capacity = 1000
	}
	return &MemoryOutbox{
		capacity: capacity,
		events:   make(map[string]OutboxEvent),
	}
}

func (o *MemoryOutbox) Create(_ context.Context, event OutboxEvent) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if len(o.events) >= o.capacity {
		return ErrOutboxFull
	}
	if event.Status == "" {
		event.Status = OutboxStatusPending
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now().UTC()
	}
	if _, exists := o.events[event.ID]; !exists {
		o.order = append(o.order, event.ID)
	}
	o.events[event.ID] = event
	return nil
}

// ListPending returns up to limit events in insertion order, failed ones included
// while they still have retries left.
func (o *MemoryOutbox) ListPending(_ context.Context, limit int) ([]OutboxEvent, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	out := make([]OutboxEvent, 0, min(limit, len(o.order)))
	for _, id := range o.order {
		if len(out) == limit {
			break
		}
		if ev, ok := o.events[id]; ok {
			out = append(out, ev)
		}
	}
	return out, nil
}

func (o *MemoryOutbox) MarkSent(_ context.Context, id string) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.removeLocked(id)
	return nil
}

func (o *MemoryOutbox) MarkFailed(_ context.Context, id string, _ string) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	ev, ok := o.events[id]
	if !ok {
		return nil
	}
	ev.RetryCount++
	ev.Status = OutboxStatusFailed
	if ev.RetryCount >= MaxOutboxRetries {
		o.removeLocked(id)
		return nil
	}
	o.events[id] = ev
	return nil
}

// Len reports how many events are still waiting.
func (o *MemoryOutbox) Len() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.events)
}

func (o *MemoryOutbox) removeLocked(id string) {
	if _, ok := o.events[id]; !ok {
		return
	}
	delete(o.events, id)
	for i, v := range o.order {
		if v == id {
			o.order = append(o.order[:i], o.order[i+1:]...)
			break
		}
	}
}
