package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventRangeChanged   EventType = "RangeChanged"
	EventGestureStarted EventType = "GestureStarted"
	EventError          EventType = "Error"
	EventConfigLoaded   EventType = "ConfigLoaded"
	EventConfigSaved    EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// RangeChangedEvent is emitted every time a handle is released and the
// selection is committed, even when the committed values did not change
type RangeChangedEvent struct {
	SliderID string
	Handle   Handle
	Range    Range
}

func (e RangeChangedEvent) Type() EventType { return EventRangeChanged }

// GestureStartedEvent is emitted when a pointer-down arms a handle
type GestureStartedEvent struct {
	SliderID string
	Handle   Handle
}

func (e GestureStartedEvent) Type() EventType { return EventGestureStarted }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path  string
	Steps int
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
