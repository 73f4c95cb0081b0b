package store

import (
	"context"

	"github.com/hermeshq/hermes/internal/core/domain"
	"github.com/hermeshq/hermes/internal/core/paging"
	"github.com/hermeshq/hermes/internal/core/render"
)

// =============================================================================
// Store Interface
// =============================================================================

// Store defines the persistence interface for Hermes entities. The relation
// queries the aggregator needs are the render.Repository methods.
type Store interface {
	render.Repository

	// Host operations
	CreateHost(ctx context.Context, host *domain.Host) error
	GetHostByHostname(ctx context.Context, hostname string) (*domain.Host, error)
	ListHosts(ctx context.Context, filter HostFilter, w paging.Window) ([]domain.Host, int, error)
	UpdateHost(ctx context.Context, host *domain.Host) error
	DeleteHost(ctx context.Context, hostname string) error

	// EventType operations. There is no DeleteEventType: event types are
	// referenced by the event log and the API declines to remove them.
	CreateEventType(ctx context.Context, et *domain.EventType) error
	GetEventType(ctx context.Context, id int64) (*domain.EventType, error)
	ListEventTypes(ctx context.Context, filter EventTypeFilter, w paging.Window) ([]domain.EventType, int, error)
	UpdateEventTypeDescription(ctx context.Context, id int64, description string) (*domain.EventType, error)

	// Event operations. Events are immutable once created.
	CreateEvent(ctx context.Context, event *domain.Event) error
	GetEvent(ctx context.Context, id int64) (*domain.Event, error)
	ListEvents(ctx context.Context, filter EventFilter, w paging.Window) ([]domain.Event, int, error)

	// Workflow entities, read-only from this service's perspective.
	GetLabor(ctx context.Context, id int64) (*domain.Labor, error)
	ListLabors(ctx context.Context, w paging.Window) ([]domain.Labor, int, error)
	GetQuest(ctx context.Context, id int64) (*domain.Quest, error)
	ListQuests(ctx context.Context, w paging.Window) ([]domain.Quest, int, error)
	GetFate(ctx context.Context, id int64) (*domain.Fate, error)
	ListFates(ctx context.Context, w paging.Window) ([]domain.Fate, int, error)

	// Lifecycle
	Ping(ctx context.Context) error
	Close() error
}

// =============================================================================
// Filters
// =============================================================================

// HostFilter narrows host listings.
type HostFilter struct {
	Hostname string
}

// EventTypeFilter narrows event-type listings.
type EventTypeFilter struct {
	Category string
	State    string
}

// EventFilter narrows event listings.
type EventFilter struct {
	HostID      int64
	EventTypeID int64
}
