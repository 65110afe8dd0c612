package eventbus

import (
	"log"
	"runtime/debug"
	"sync"

	"selectree/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventConfigLoaded     = domain.EventConfigLoaded
	EventConfigSaved      = domain.EventConfigSaved
	EventOptionsLoaded    = domain.EventOptionsLoaded
	EventSelectionChanged = domain.EventSelectionChanged
	EventFilterApplied    = domain.EventFilterApplied
	EventHighlightMoved   = domain.EventHighlightMoved
	EventValueSubmitted   = domain.EventValueSubmitted
	EventValueChanged     = domain.EventValueChanged
	EventError            = domain.EventError
)

// Re-export domain event types
type ConfigLoadedEvent = domain.ConfigLoadedEvent
type ConfigSavedEvent = domain.ConfigSavedEvent
type OptionsLoadedEvent = domain.OptionsLoadedEvent
type SelectionChangedEvent = domain.SelectionChangedEvent
type FilterAppliedEvent = domain.FilterAppliedEvent
type HighlightMovedEvent = domain.HighlightMovedEvent
type ValueSubmittedEvent = domain.ValueSubmittedEvent
type ValueChangedEvent = domain.ValueChangedEvent
type ErrorEvent = domain.ErrorEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
	Close()
}

type subscription struct {
	id      uint64
	handler EventHandler
}

// bus is the concrete implementation of EventBus
type bus struct {
	mu        sync.RWMutex
	handlers  map[EventType][]subscription
	nextID    uint64
	eventChan chan DomainEvent
	wg        sync.WaitGroup
	quit      chan struct{}
	closeOnce sync.Once
}

// New creates a new event bus
func New() EventBus {
	return NewWithBuffer(256)
}

// NewWithBuffer creates an event bus whose queue holds size events
func NewWithBuffer(size int) EventBus {
	b := &bus{
		handlers:  make(map[EventType][]subscription),
		eventChan: make(chan DomainEvent, size),
		quit:      make(chan struct{}),
	}

	b.wg.Add(1)
	go b.dispatch()

	return b
}

// Publish queues an event for all subscribers. It never blocks: when the
// queue is full the event is dropped.
func (b *bus) Publish(event DomainEvent) {
	// highlight moves follow every keystroke
	if event.Type() != EventHighlightMoved {
		log.Printf("EventBus: Publishing event %s", event.Type())
	}

	select {
	case <-b.quit:
		return
	default:
	}

	select {
	case b.eventChan <- event:
	default:
		log.Printf("Event bus channel full, dropping event: %v", event.Type())
	}
}

// Subscribe subscribes to events of a specific type
// Returns an unsubscribe function
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		subs := b.handlers[eventType]
		for i, s := range subs {
			if s.id == id {
				b.handlers[eventType] = append(subs[:i:i], subs[i+1:]...)
				break
			}
		}
	}
}

// Close stops the dispatcher. Queued events that were not dispatched yet
// are discarded.
func (b *bus) Close() {
	b.closeOnce.Do(func() {
		close(b.quit)
	})
	b.wg.Wait()
}

// dispatch handles event distribution to subscribers
func (b *bus) dispatch() {
	defer b.wg.Done()

	for {
		select {
		case event := <-b.eventChan:
			b.mu.RLock()
			subs := make([]subscription, len(b.handlers[event.Type()]))
			copy(subs, b.handlers[event.Type()])
			b.mu.RUnlock()

			for _, s := range subs {
				go func(h EventHandler, eventType EventType) {
					defer func() {
						if r := recover(); r != nil {
							log.Printf("Event handler panic for %s: %v\nStack: %s", eventType, r, debug.Stack())
						}
					}()
					h(event)
				}(s.handler, event.Type())
			}

		case <-b.quit:
			for {
				select {
				case <-b.eventChan:
				default:
					return
				}
			}
		}
	}
}

// NullBus drops every event. It is handy for tests and one-shot commands.
type NullBus struct{}

func (NullBus) Publish(DomainEvent)                      {}
func (NullBus) Subscribe(EventType, EventHandler) func() { return func() {} }
func (NullBus) Close()                                   {}
