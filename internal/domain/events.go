package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventConfigLoaded     EventType = "ConfigLoaded"
	EventConfigSaved      EventType = "ConfigSaved"
	EventOptionsLoaded    EventType = "OptionsLoaded"
	EventSelectionChanged EventType = "SelectionChanged"
	EventFilterApplied    EventType = "FilterApplied"
	EventHighlightMoved   EventType = "HighlightMoved"
	EventValueSubmitted   EventType = "ValueSubmitted"
	EventValueChanged     EventType = "ValueChanged"
	EventError            EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path        string
	OptionCount int
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// OptionsLoadedEvent is emitted when the widget (re)builds its option tree
type OptionsLoadedEvent struct {
	Count int
}

func (e OptionsLoadedEvent) Type() EventType { return EventOptionsLoaded }

// SelectionChangedEvent is emitted when the selected value set changes
type SelectionChangedEvent struct {
	Added   []string
	Removed []string
	Value   []string
}

func (e SelectionChangedEvent) Type() EventType { return EventSelectionChanged }

// FilterAppliedEvent is emitted after every filter pass
type FilterAppliedEvent struct {
	Query       string
	AnyShown    bool
	Suggestions []string
}

func (e FilterAppliedEvent) Type() EventType { return EventFilterApplied }

// HighlightMovedEvent is emitted when keyboard focus lands on another option
type HighlightMovedEvent struct {
	Value string
	Label string
}

func (e HighlightMovedEvent) Type() EventType { return EventHighlightMoved }

// ValueSubmittedEvent is emitted when the user confirms the selection
type ValueSubmittedEvent struct {
	Value []string
}

func (e ValueSubmittedEvent) Type() EventType { return EventValueSubmitted }

// ValueChangedEvent is emitted when a value store receives a different value
type ValueChangedEvent struct {
	Value   []string
	Version uint64
}

func (e ValueChangedEvent) Type() EventType { return EventValueChanged }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
