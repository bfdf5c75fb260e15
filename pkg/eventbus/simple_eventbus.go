package eventbus

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/amirasaad/ledger/pkg/domain/events"
)

// ErrNilEvent is returned when publishing a nil event.
var ErrNilEvent = errors.New("nil event")

// SimpleEventBus dispatches events synchronously, in subscription order.
type SimpleEventBus struct {
	handlers map[string][]HandlerFunc
	mu       sync.RWMutex
	logger   *slog.Logger
}

func NewSimpleEventBus(logger *slog.Logger) *SimpleEventBus {
	if logger == nil {
		logger = slog.Default()
	}
	return &SimpleEventBus{
		handlers: make(map[string][]HandlerFunc),
		logger:   logger.With("bus", "simple"),
	}
}

func (b *SimpleEventBus) Publish(ctx context.Context, event events.Event) error {
	if event == nil {
		return ErrNilEvent
	}
	b.logger.Debug("EventBus.Publish", "event_type", event.Type(), "concrete_type", fmt.Sprintf("%T", event))
	b.mu.RLock()
	handlers := append([]HandlerFunc(nil), b.handlers[event.Type()]...)
	b.mu.RUnlock()
	for _, handler := range handlers {
		b.dispatch(ctx, handler, event)
	}
	return nil
}

// dispatch keeps a panicking subscriber from aborting the publisher.
func (b *SimpleEventBus) dispatch(ctx context.Context, handler HandlerFunc, event events.Event) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("event handler panicked", "event_type", event.Type(), "panic", r)
		}
	}()
	handler(ctx, event)
}

func (b *SimpleEventBus) Subscribe(eventType events.EventType, handler HandlerFunc) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventType.String()] = append(b.handlers[eventType.String()], handler)
}

var _ Bus = (*SimpleEventBus)(nil)
