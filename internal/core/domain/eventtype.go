package domain

import "fmt"

// =============================================================================
// EventType State
// =============================================================================

// EventTypeState classifies whether events of a type demand follow-up work.
type EventTypeState string

const (
	StateRequired  EventTypeState = "required"
	StateOptional  EventTypeState = "optional"
	StateCompleted EventTypeState = "completed"
)

// IsValid checks if the state is a recognized value.
func (s EventTypeState) IsValid() bool {
	switch s {
	case StateRequired, StateOptional, StateCompleted:
		return true
	default:
		return false
	}
}

// =============================================================================
// EventType
// =============================================================================

// EventType is a catalog entry classifying Events by category and state.
// Category and state are immutable once set; only the description may change.
type EventType struct {
	ID          int64          `json:"id"`
	Category    string         `json:"category"`
	State       EventTypeState `json:"state"`
	Description string         `json:"description"`
}

// NewEventType creates an EventType. All three fields are mandatory.
func NewEventType(category string, state EventTypeState, description string) (*EventType, error) {
	if category == "" {
		return nil, ErrCategoryRequired
	}
	if state == "" {
		return nil, ErrStateRequired
	}
	if !state.IsValid() {
		return nil, ErrStateInvalid
	}
	if description == "" {
		return nil, ErrDescriptionRequired
	}
	return &EventType{
		Category:    category,
		State:       state,
		Description: description,
	}, nil
}

// Redescribe replaces the description, the only mutable field.
func (t *EventType) Redescribe(description string) error {
	if description == "" {
		return ErrDescriptionRequired
	}
	t.Description = description
	return nil
}

// EntityID returns the numeric identity of the event type.
func (t EventType) EntityID() int64 { return t.ID }

// HRef returns the canonical link path for the event type.
func (t EventType) HRef(base string) string {
	return fmt.Sprintf("%s/eventtypes/%d", base, t.ID)
}

// Document returns the full field-level representation of the event type.
func (t EventType) Document(base string) any {
	return eventTypeDoc{
		ID:          t.ID,
		Category:    t.Category,
		State:       string(t.State),
		Description: t.Description,
		HRef:        t.HRef(base),
	}
}

type eventTypeDoc struct {
	ID          int64  `json:"id"`
	Category    string `json:"category"`
	State       string `json:"state"`
	Description string `json:"description"`
	HRef        string `json:"href"`
}
