package events

import (
	"sync"

	"todolists/domain/events"
	"todolists/logging"
)

// SessionEventBus provides type-safe publishing and subscription for session
// lifecycle events. Handlers run on their own goroutine and never block the
// publishing request.
type SessionEventBus struct {
	mu     sync.RWMutex
	logger *logging.Logger

	createdHandlers []func(events.SessionCreatedEvent)
	prunedHandlers  []func(events.SessionsPrunedEvent)
}

// NewSessionEventBus creates a new session event bus
func NewSessionEventBus() *SessionEventBus {
	return &SessionEventBus{
		logger: logging.Default().WithComponent("session_event_bus"),
	}
}

var _ events.SessionEventPublisher = (*SessionEventBus)(nil)

func (bus *SessionEventBus) OnSessionCreated(handler func(events.SessionCreatedEvent)) {
	bus.mu.Lock()
	defer bus.mu.Unlock()
	bus.createdHandlers = append(bus.createdHandlers, handler)
}

func (bus *SessionEventBus) OnSessionsPruned(handler func(events.SessionsPrunedEvent)) {
	bus.mu.Lock()
	defer bus.mu.Unlock()
	bus.prunedHandlers = append(bus.prunedHandlers, handler)
}

func (bus *SessionEventBus) PublishSessionCreated(event events.SessionCreatedEvent) {
	bus.mu.RLock()
	handlers := make([]func(events.SessionCreatedEvent), len(bus.createdHandlers))
	copy(handlers, bus.createdHandlers)
	bus.mu.RUnlock()

	for _, handler := range handlers {
		go func(h func(events.SessionCreatedEvent)) {
			defer func() {
				if r := recover(); r != nil {
					bus.logger.Error("Event handler panicked in SessionCreated",
						"session_id", event.SessionID,
						"panic", r)
				}
			}()
			h(event)
		}(handler)
	}
}

func (bus *SessionEventBus) PublishSessionsPruned(event events.SessionsPrunedEvent) {
	bus.mu.RLock()
	handlers := make([]func(events.SessionsPrunedEvent), len(bus.prunedHandlers))
	copy(handlers, bus.prunedHandlers)
	bus.mu.RUnlock()

	for _, handler := range handlers {
		go func(h func(events.SessionsPrunedEvent)) {
			defer func() {
				if r := recover(); r != nil {
					bus.logger.Error("Event handler panicked in SessionsPruned",
						"removed", event.Removed,
						"panic", r)
				}
			}()
			h(event)
		}(handler)
	}
}
