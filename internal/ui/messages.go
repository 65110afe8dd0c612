package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"selectree/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// ValueChangedMsg tells the model that its value store was written by
// someone else
type ValueChangedMsg struct{}

// clearStatusMsg clears the status line
type clearStatusMsg struct{}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}

// ForwardEvents hands the bus events the model reacts to over to send,
// usually a program's Send. The returned function stops forwarding.
func ForwardEvents(bus eventbus.EventBus, send func(tea.Msg)) func() {
	unsubscribeError := bus.Subscribe(eventbus.EventError, func(e eventbus.DomainEvent) {
		send(EventMsg{Event: e})
	})
	unsubscribeValue := bus.Subscribe(eventbus.EventValueChanged, func(eventbus.DomainEvent) {
		send(ValueChangedMsg{})
	})
	return func() {
		unsubscribeError()
		unsubscribeValue()
	}
}
