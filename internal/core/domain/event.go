package domain

import (
	"fmt"
	"time"
)

// TimestampFormat is the textual form timestamps take in API documents.
const TimestampFormat = "2006-01-02 15:04:05"

// FormatTimestamp renders a timestamp for API documents. The zero time
// renders as the empty string.
func FormatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(TimestampFormat)
}

// =============================================================================
// Event
// =============================================================================

// Event is a timestamped occurrence reported against a Host, classified by
// an EventType. Events are immutable once created.
type Event struct {
	ID          int64     `json:"id"`
	HostID      int64     `json:"hostId"`
	EventTypeID int64     `json:"eventTypeId"`
	Timestamp   time.Time `json:"timestamp"`
	User        string    `json:"user"`
	Note        string    `json:"note"`
}

// NewEvent creates an Event against a host. The timestamp is taken as given
// so the caller controls the clock.
func NewEvent(hostID, eventTypeID int64, timestamp time.Time, user, note string) (*Event, error) {
	if hostID == 0 {
		return nil, ErrEventHostRequired
	}
	if eventTypeID == 0 {
		return nil, ErrEventTypeRequired
	}
	return &Event{
		HostID:      hostID,
		EventTypeID: eventTypeID,
		Timestamp:   timestamp,
		User:        user,
		Note:        note,
	}, nil
}

// EntityID returns the numeric identity of the event.
func (e Event) EntityID() int64 { return e.ID }

// HRef returns the canonical link path for the event.
func (e Event) HRef(base string) string {
	return fmt.Sprintf("%s/events/%d", base, e.ID)
}

// Document returns the full field-level representation of the event.
func (e Event) Document(base string) any {
	return eventDoc{
		ID:          e.ID,
		HostID:      e.HostID,
		EventTypeID: e.EventTypeID,
		Timestamp:   FormatTimestamp(e.Timestamp),
		User:        e.User,
		Note:        e.Note,
		HRef:        e.HRef(base),
	}
}

type eventDoc struct {
	ID          int64  `json:"id"`
	HostID      int64  `json:"hostId"`
	EventTypeID int64  `json:"eventTypeId"`
	Timestamp   string `json:"timestamp"`
	User        string `json:"user"`
	Note        string `json:"note"`
	HRef        string `json:"href"`
}
