package api

// =============================================================================
// Request Types
// =============================================================================

// CreateHostRequest is the request body for creating a host.
type CreateHostRequest struct {
	Hostname string `json:"hostname"`
}

// UpdateHostRequest is the request body for renaming a host.
type UpdateHostRequest struct {
	Hostname string `json:"hostname"`
}

// CreateEventTypeRequest is the request body for creating an event type.
type CreateEventTypeRequest struct {
	Category    string `json:"category"`
	State       string `json:"state"`
	Description string `json:"description"`
}

// UpdateEventTypeRequest is the request body for updating an event type.
// Only the description is mutable.
type UpdateEventTypeRequest struct {
	Description *string `json:"description"`
}

// CreateEventRequest is the request body for reporting an event against a
// host.
type CreateEventRequest struct {
	Hostname    string `json:"hostname"`
	EventTypeID int64  `json:"eventTypeId"`
	User        string `json:"user"`
	Note        string `json:"note"`
}

// =============================================================================
// Response Types
// =============================================================================

// ListHostsResponse is the paginated host listing.
type ListHostsResponse struct {
	Limit      int   `json:"limit"`
	Offset     int   `json:"offset"`
	TotalHosts int   `json:"totalHosts"`
	Hosts      []any `json:"hosts"`
}

// ListEventTypesResponse is the paginated event-type listing.
type ListEventTypesResponse struct {
	Limit           int   `json:"limit"`
	Offset          int   `json:"offset"`
	TotalEventTypes int   `json:"totalEventTypes"`
	EventTypes      []any `json:"eventTypes"`
}

// ListEventsResponse is the paginated event listing.
type ListEventsResponse struct {
	Limit       int   `json:"limit"`
	Offset      int   `json:"offset"`
	TotalEvents int   `json:"totalEvents"`
	Events      []any `json:"events"`
}

// ListLaborsResponse is the paginated labor listing.
type ListLaborsResponse struct {
	Limit       int   `json:"limit"`
	Offset      int   `json:"offset"`
	TotalLabors int   `json:"totalLabors"`
	Labors      []any `json:"labors"`
}

// ListQuestsResponse is the paginated quest listing.
type ListQuestsResponse struct {
	Limit       int   `json:"limit"`
	Offset      int   `json:"offset"`
	TotalQuests int   `json:"totalQuests"`
	Quests      []any `json:"quests"`
}

// ListFatesResponse is the paginated fate listing.
type ListFatesResponse struct {
	Limit      int   `json:"limit"`
	Offset     int   `json:"offset"`
	TotalFates int   `json:"totalFates"`
	Fates      []any `json:"fates"`
}

// MessageResponse carries an informational message, such as the outcome of a
// delete.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the error body for failed requests.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HealthResponse is the response for health checks.
type HealthResponse struct {
	Status string `json:"status"`
}

// ReadyResponse is the response for readiness checks.
type ReadyResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}
