package logic

import (
	"slices"
	"sync"

	"selectree/internal/eventbus"
	"selectree/internal/options"
)

// MemoryValueStore is an in-memory implementation of ValueStore
type MemoryValueStore struct {
	mu      sync.RWMutex
	bus     eventbus.EventBus
	value   []string
	version uint64
}

// NewMemoryValueStore creates a store holding initial
func NewMemoryValueStore(initial []string) *MemoryValueStore {
	return NewMemoryValueStoreWithBus(nil, initial)
}

// NewMemoryValueStoreWithBus creates a store that publishes a ValueChanged
// event every time its value changes
func NewMemoryValueStoreWithBus(bus eventbus.EventBus, initial []string) *MemoryValueStore {
	if bus == nil {
		bus = eventbus.NullBus{}
	}
	return &MemoryValueStore{bus: bus, value: slices.Clone(initial)}
}

func (s *MemoryValueStore) Value() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	// Return a copy to prevent external modification
	return slices.Clone(s.value)
}

func (s *MemoryValueStore) SetValue(value []string) bool {
	s.mu.Lock()
	if options.EqualValues(s.value, value) {
		s.mu.Unlock()
		return false
	}
	s.value = slices.Clone(value)
	s.version++
	event := eventbus.ValueChangedEvent{Value: slices.Clone(value), Version: s.version}
	s.mu.Unlock()

	s.bus.Publish(event)
	return true
}

func (s *MemoryValueStore) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// Pull copies the store's value into list when the two differ. It reports
// whether the list changed.
func Pull(store ValueStore, list *options.OptionList) bool {
	value := store.Value()
	if options.EqualValues(list.Value(), value) {
		return false
	}
	list.SetValue(value)
	return true
}

// Push writes the list's value to the store when the two differ
func Push(store ValueStore, list *options.OptionList) bool {
	return store.SetValue(list.Value())
}
