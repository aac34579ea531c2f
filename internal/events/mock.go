package events

import (
	"context"
	"log/slog"
	"sync"
)

// PublishedEvent records one Publish call for inspection in tests.
type PublishedEvent struct {
	Topic string
	Event interface{}
}

// MockEventPublisher logs events instead of sending them. Used when no
// broker is configured, and in tests.
type MockEventPublisher struct {
	logger *slog.Logger

	mu     sync.Mutex
	events []PublishedEvent
}

func NewMockEventPublisher(logger *slog.Logger) *MockEventPublisher {
	return &MockEventPublisher{logger: logger}
}

func (p *MockEventPublisher) Publish(ctx context.Context, topic string, event interface{}) error {
	p.mu.Lock()
	p.events = append(p.events, PublishedEvent{Topic: topic, Event: event})
	p.mu.Unlock()

	if p.logger != nil {
		p.logger.DebugContext(ctx, "event published", "topic", topic)
	}
	return nil
}

func (p *MockEventPublisher) Close() error {
	return nil
}

// Events returns a copy of everything published so far.
func (p *MockEventPublisher) Events() []PublishedEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]PublishedEvent, len(p.events))
	copy(out, p.events)
	return out
}
