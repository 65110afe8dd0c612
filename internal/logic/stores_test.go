package logic

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"selectree/internal/domain"
	"selectree/internal/eventbus"
	"selectree/internal/options"
)

func TestMemoryValueStore(t *testing.T) {
	s := NewMemoryValueStore([]string{"a", "b"})
	assert.Equal(t, []string{"a", "b"}, s.Value())
	assert.Equal(t, uint64(0), s.Version())

	assert.False(t, s.SetValue([]string{"b", "a"}), "same values in another order")
	assert.Equal(t, uint64(0), s.Version())

	assert.True(t, s.SetValue([]string{"c"}))
	assert.Equal(t, []string{"c"}, s.Value())
	assert.Equal(t, uint64(1), s.Version())

	v := s.Value()
	v[0] = "mutated"
	assert.Equal(t, []string{"c"}, s.Value())
}

func TestPullAndPush(t *testing.T) {
	list := options.NewOptionList([]domain.OptionSpec{
		{Value: "a"},
		{Value: "g", Children: []domain.OptionSpec{{Value: "b"}}},
	})
	store := NewMemoryValueStore([]string{"b"})

	assert.True(t, Pull(store, list))
	assert.Equal(t, []string{"b"}, list.Value())
	assert.False(t, Pull(store, list))

	list.SetValue([]string{"a", "b"})
	assert.True(t, Push(store, list))
	assert.ElementsMatch(t, []string{"a", "b"}, store.Value())
	assert.False(t, Push(store, list))
}

func TestMemoryValueStorePublishesChanges(t *testing.T) {
	bus := eventbus.New()
	defer bus.Close()

	got := make(chan eventbus.ValueChangedEvent, 4)
	bus.Subscribe(eventbus.EventValueChanged, func(e eventbus.DomainEvent) {
		got <- e.(eventbus.ValueChangedEvent)
	})

	s := NewMemoryValueStoreWithBus(bus, []string{"a"})
	assert.False(t, s.SetValue([]string{"a"}))
	require.True(t, s.SetValue([]string{"b", "c"}))

	select {
	case ev := <-got:
		assert.Equal(t, []string{"b", "c"}, ev.Value)
		assert.Equal(t, uint64(1), ev.Version)
	case <-time.After(time.Second):
		t.Fatal("no ValueChanged event")
	}

	// an unchanged write stays silent
	select {
	case ev := <-got:
		t.Fatalf("unexpected event %v", ev)
	case <-time.After(50 * time.Millisecond):
	}
}
