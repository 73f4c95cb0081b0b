package render

import (
	"context"
	"fmt"

	"github.com/hermeshq/hermes/internal/core/domain"
	"github.com/hermeshq/hermes/internal/core/paging"
)

// Relation names the expand parameter matches against.
const (
	RelationLabors = "labors"
	RelationQuests = "quests"
	RelationEvents = "events"
	RelationFates  = "fates"
)

// =============================================================================
// Repository
// =============================================================================

// Repository supplies the ordered, windowed relation collections the
// aggregator composes. Implemented by the store.
type Repository interface {
	// LaborsForHost returns the host's labors joined to their owning quests,
	// ordered by creation time ascending, windowed.
	LaborsForHost(ctx context.Context, hostID int64, w paging.Window) ([]domain.LaborQuest, error)

	// EventsForHost returns the host's events ordered by timestamp ascending,
	// windowed.
	EventsForHost(ctx context.Context, hostID int64, w paging.Window) ([]domain.Event, error)

	// LatestEventForHost returns the host's maximum-timestamp event,
	// independent of any window. Nil when the host has no events.
	LatestEventForHost(ctx context.Context, hostID int64) (*domain.Event, error)

	// EventsForType returns the type's events ordered by timestamp ascending,
	// windowed.
	EventsForType(ctx context.Context, eventTypeID int64, w paging.Window) ([]domain.Event, error)

	// FatesForType returns every fate associated with the event type,
	// unpaginated.
	FatesForType(ctx context.Context, eventTypeID int64) ([]domain.Fate, error)
}

// =============================================================================
// Views
// =============================================================================

// HostView is the composite document for one host. The labors and quests
// arrays are the same length: quests[i] is the quest owning labors[i], with
// repeats preserved when labors share a quest.
type HostView struct {
	ID        int64            `json:"id"`
	Hostname  string           `json:"hostname"`
	HRef      string           `json:"href"`
	Limit     int              `json:"limit"`
	Offset    int              `json:"offset"`
	Labors    []Representation `json:"labors"`
	Quests    []Representation `json:"quests"`
	LastEvent string           `json:"lastEvent"`
	Events    []Representation `json:"events"`
}

// EventTypeView is the composite document for one event type. The fates
// array is keyed "fate" on the wire for compatibility.
type EventTypeView struct {
	ID          int64            `json:"id"`
	Category    string           `json:"category"`
	State       string           `json:"state"`
	Description string           `json:"description"`
	HRef        string           `json:"href"`
	Limit       int              `json:"limit"`
	Offset      int              `json:"offset"`
	Events      []Representation `json:"events"`
	Fates       []Representation `json:"fate"`
}

// =============================================================================
// Aggregator
// =============================================================================

// Aggregator composes primary-entity fields with windowed, expand-aware
// renderings of each related collection. One window is shared by every
// relation in a response; do not give relations independent windows.
type Aggregator struct {
	repo Repository
	base string
}

// NewAggregator creates an aggregator that links entities under base
// (e.g. "/api/v1").
func NewAggregator(repo Repository, base string) *Aggregator {
	return &Aggregator{repo: repo, base: base}
}

// HostView assembles the composite document for a resolved host.
func (a *Aggregator) HostView(ctx context.Context, host domain.Host, p paging.Params) (*HostView, error) {
	view := &HostView{
		ID:       host.ID,
		Hostname: host.Hostname,
		HRef:     host.HRef(a.base),
		Limit:    p.Limit,
		Offset:   p.Offset,
		Labors:   []Representation{},
		Quests:   []Representation{},
		Events:   []Representation{},
	}

	labors, err := a.repo.LaborsForHost(ctx, host.ID, p.Window)
	if err != nil {
		return nil, fmt.Errorf("labors for host %q: %w", host.Hostname, err)
	}
	for _, lq := range labors {
		view.Labors = append(view.Labors, Select(RelationLabors, p.Expand, a.base, lq.Labor))
		view.Quests = append(view.Quests, Select(RelationQuests, p.Expand, a.base, lq.Quest))
	}

	last, err := a.repo.LatestEventForHost(ctx, host.ID)
	if err != nil {
		return nil, fmt.Errorf("latest event for host %q: %w", host.Hostname, err)
	}
	if last != nil {
		view.LastEvent = domain.FormatTimestamp(last.Timestamp)
	}

	events, err := a.repo.EventsForHost(ctx, host.ID, p.Window)
	if err != nil {
		return nil, fmt.Errorf("events for host %q: %w", host.Hostname, err)
	}
	for _, e := range events {
		view.Events = append(view.Events, Select(RelationEvents, p.Expand, a.base, e))
	}

	return view, nil
}

// EventTypeView assembles the composite document for a resolved event type.
func (a *Aggregator) EventTypeView(ctx context.Context, et domain.EventType, p paging.Params) (*EventTypeView, error) {
	view := &EventTypeView{
		ID:          et.ID,
		Category:    et.Category,
		State:       string(et.State),
		Description: et.Description,
		HRef:        et.HRef(a.base),
		Limit:       p.Limit,
		Offset:      p.Offset,
		Events:      []Representation{},
		Fates:       []Representation{},
	}

	events, err := a.repo.EventsForType(ctx, et.ID, p.Window)
	if err != nil {
		return nil, fmt.Errorf("events for event type %d: %w", et.ID, err)
	}
	for _, e := range events {
		view.Events = append(view.Events, Select(RelationEvents, p.Expand, a.base, e))
	}

	fates, err := a.repo.FatesForType(ctx, et.ID)
	if err != nil {
		return nil, fmt.Errorf("fates for event type %d: %w", et.ID, err)
	}
	for _, f := range fates {
		view.Fates = append(view.Fates, Select(RelationFates, p.Expand, a.base, f))
	}

	return view, nil
}
