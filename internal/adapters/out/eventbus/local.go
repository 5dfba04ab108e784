// Package eventbus implements the realtime notification ports. Events are
// hints that tell clients to refresh: delivery is at most once and a failing
// subscriber never affects the publisher.
package eventbus

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"deliveryops/internal/core/ports"

	"go.uber.org/zap"
)

// LocalBus dispatches events to in-process subscribers. Handlers run on the
// publishing goroutine and must not block.
type LocalBus struct {
	mu       sync.RWMutex
	handlers map[ports.EventName]map[uint64]ports.EventHandler
	nextID   uint64
	logger   *zap.Logger
}

// NewLocalBus creates an empty bus.
func NewLocalBus(logger *zap.Logger) *LocalBus {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LocalBus{
		handlers: make(map[ports.EventName]map[uint64]ports.EventHandler),
		logger:   logger,
	}
}

// Publish encodes payload as JSON and hands it to every subscriber of name.
func (b *LocalBus) Publish(ctx context.Context, name ports.EventName, payload any) error {
	data, err := encode(name, payload)
	if err != nil {
		return err
	}
	b.Dispatch(ctx, name, data)
	return nil
}

// Dispatch delivers an already encoded payload.
func (b *LocalBus) Dispatch(ctx context.Context, name ports.EventName, data []byte) {
	b.mu.RLock()
	handlers := make([]ports.EventHandler, 0, len(b.handlers[name]))
	for _, h := range b.handlers[name] {
		handlers = append(handlers, h)
	}
	b.mu.RUnlock()

	for _, h := range handlers {
		b.call(ctx, name, h, data)
	}
}

// Subscribe registers handler for name.
func (b *LocalBus) Subscribe(name ports.EventName, handler ports.EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	if b.handlers[name] == nil {
		b.handlers[name] = make(map[uint64]ports.EventHandler)
	}
	b.handlers[name][id] = handler

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			delete(b.handlers[name], id)
		})
	}
}

func (b *LocalBus) call(ctx context.Context, name ports.EventName, h ports.EventHandler, data []byte) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("event handler panicked", zap.String("event", string(name)), zap.Any("panic", r))
		}
	}()
	h(ctx, data)
}

func encode(name ports.EventName, payload any) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", name, err)
	}
	return data, nil
}
