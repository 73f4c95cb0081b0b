// Package api provides HTTP handlers for the Hermes API.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/hermeshq/hermes/internal/core/domain"
	"github.com/hermeshq/hermes/internal/core/paging"
	"github.com/hermeshq/hermes/internal/core/render"
	"github.com/hermeshq/hermes/internal/shell/store"
)

// =============================================================================
// Handler
// =============================================================================

// Handler provides HTTP handlers for the API.
type Handler struct {
	store    store.Store
	agg      *render.Aggregator
	policy   paging.Policy
	basePath string
	logger   *slog.Logger
}

// NewHandler creates a new API handler. basePath is the URL prefix entity
// links are built under, e.g. "/api/v1".
func NewHandler(s store.Store, policy paging.Policy, basePath string, l *slog.Logger) *Handler {
	if l == nil {
		l = slog.Default()
	}
	if basePath == "" {
		basePath = "/api/v1"
	}
	return &Handler{
		store:    s,
		agg:      render.NewAggregator(s, basePath),
		policy:   policy,
		basePath: basePath,
		logger:   l,
	}
}

// Routes returns the router with all routes configured.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(h.jsonContentType)
	r.Use(h.requestIDHeader)

	// Health endpoints
	r.Get("/health", h.handleHealth)
	r.Get("/ready", h.handleReady)

	r.Route(h.basePath, func(r chi.Router) {
		r.Route("/hosts", func(r chi.Router) {
			r.Post("/", h.handleCreateHost)
			r.Get("/", h.handleListHosts)
			r.Get("/{hostname}", h.handleGetHost)
			r.Put("/{hostname}", h.handleUpdateHost)
			r.Delete("/{hostname}", h.handleDeleteHost)
		})

		r.Route("/eventtypes", func(r chi.Router) {
			r.Post("/", h.handleCreateEventType)
			r.Get("/", h.handleListEventTypes)
			r.Get("/{id}", h.handleGetEventType)
			r.Put("/{id}", h.handleUpdateEventType)
			r.Delete("/{id}", h.handleDeleteEventType)
		})

		r.Route("/events", func(r chi.Router) {
			r.Post("/", h.handleCreateEvent)
			r.Get("/", h.handleListEvents)
			r.Get("/{id}", h.handleGetEvent)
		})

		// Labors, quests, and fates are owned by the workflow engine; this
		// API only reads them, so the href targets the views emit resolve.
		r.Route("/labors", func(r chi.Router) {
			r.Get("/", h.handleListLabors)
			r.Get("/{id}", h.handleGetLabor)
		})
		r.Route("/quests", func(r chi.Router) {
			r.Get("/", h.handleListQuests)
			r.Get("/{id}", h.handleGetQuest)
		})
		r.Route("/fates", func(r chi.Router) {
			r.Get("/", h.handleListFates)
			r.Get("/{id}", h.handleGetFate)
		})
	})

	return r
}

// =============================================================================
// Middleware
// =============================================================================

// jsonContentType sets Content-Type header to application/json.
func (h *Handler) jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}

// requestIDHeader copies the request ID to the response header.
func (h *Handler) requestIDHeader(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if reqID := middleware.GetReqID(r.Context()); reqID != "" {
			w.Header().Set("X-Request-ID", reqID)
		}
		next.ServeHTTP(w, r)
	})
}

// =============================================================================
// Health Handlers
// =============================================================================

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, HealthResponse{Status: "healthy"})
}

func (h *Handler) handleReady(w http.ResponseWriter, r *http.Request) {
	checks := make(map[string]string)

	if err := h.store.Ping(r.Context()); err != nil {
		checks["database"] = "failed"
		h.writeJSON(w, http.StatusServiceUnavailable, ReadyResponse{
			Status: "not_ready",
			Checks: checks,
		})
		return
	}
	checks["database"] = "ok"

	h.writeJSON(w, http.StatusOK, ReadyResponse{
		Status: "ready",
		Checks: checks,
	})
}

// =============================================================================
// Host Handlers
// =============================================================================

func (h *Handler) handleCreateHost(w http.ResponseWriter, r *http.Request) {
	var req CreateHostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON", "validation_error")
		return
	}
	if req.Hostname == "" {
		h.writeError(w, http.StatusBadRequest, "Missing Required Argument: hostname", "validation_error")
		return
	}

	host, err := domain.NewHost(req.Hostname)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error(), "validation_error")
		return
	}

	if err := h.store.CreateHost(r.Context(), host); err != nil {
		if isConflict(err) {
			h.writeError(w, http.StatusConflict, err.Error(), "conflict")
			return
		}
		h.logger.Error("failed to create host", "hostname", req.Hostname, "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to create host", "internal_error")
		return
	}

	w.Header().Set("Location", host.HRef(h.basePath))
	h.writeJSON(w, http.StatusCreated, host.Document(h.basePath))
}

func (h *Handler) handleListHosts(w http.ResponseWriter, r *http.Request) {
	p, ok := h.pagination(w, r)
	if !ok {
		return
	}

	filter := store.HostFilter{Hostname: r.URL.Query().Get("hostname")}
	hosts, total, err := h.store.ListHosts(r.Context(), filter, p.Window)
	if err != nil {
		h.logger.Error("failed to list hosts", "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to list hosts", "internal_error")
		return
	}

	resp := ListHostsResponse{
		Limit:      p.Limit,
		Offset:     p.Offset,
		TotalHosts: total,
		Hosts:      make([]any, 0, len(hosts)),
	}
	for _, host := range hosts {
		resp.Hosts = append(resp.Hosts, host.Document(h.basePath))
	}

	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleGetHost(w http.ResponseWriter, r *http.Request) {
	p, ok := h.pagination(w, r)
	if !ok {
		return
	}
	hostname := chi.URLParam(r, "hostname")

	host, err := h.store.GetHostByHostname(r.Context(), hostname)
	if err != nil {
		if isNotFound(err) {
			h.writeError(w, http.StatusNotFound, fmt.Sprintf("No such Host %s found", hostname), "not_found")
			return
		}
		h.logger.Error("failed to get host", "hostname", hostname, "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to get host", "internal_error")
		return
	}

	view, err := h.agg.HostView(r.Context(), *host, p)
	if err != nil {
		h.logger.Error("failed to assemble host view", "hostname", hostname, "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to assemble host view", "internal_error")
		return
	}

	h.writeJSON(w, http.StatusOK, view)
}

func (h *Handler) handleUpdateHost(w http.ResponseWriter, r *http.Request) {
	hostname := chi.URLParam(r, "hostname")

	host, err := h.store.GetHostByHostname(r.Context(), hostname)
	if err != nil {
		if isNotFound(err) {
			h.writeError(w, http.StatusNotFound, fmt.Sprintf("No such Host %s found", hostname), "not_found")
			return
		}
		h.logger.Error("failed to get host", "hostname", hostname, "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to get host", "internal_error")
		return
	}

	var req UpdateHostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON", "validation_error")
		return
	}
	if req.Hostname == "" {
		h.writeError(w, http.StatusBadRequest, "Missing Required Argument: hostname", "validation_error")
		return
	}

	if err := host.Rename(req.Hostname); err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error(), "validation_error")
		return
	}

	if err := h.store.UpdateHost(r.Context(), host); err != nil {
		if isConflict(err) {
			h.writeError(w, http.StatusConflict, err.Error(), "conflict")
			return
		}
		h.logger.Error("failed to update host", "hostname", hostname, "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to update host", "internal_error")
		return
	}

	h.writeJSON(w, http.StatusOK, host.Document(h.basePath))
}

func (h *Handler) handleDeleteHost(w http.ResponseWriter, r *http.Request) {
	hostname := chi.URLParam(r, "hostname")

	if err := h.store.DeleteHost(r.Context(), hostname); err != nil {
		if isNotFound(err) {
			h.writeError(w, http.StatusNotFound, fmt.Sprintf("No such Host %s found", hostname), "not_found")
			return
		}
		if isConflict(err) {
			h.writeError(w, http.StatusConflict, err.Error(), "conflict")
			return
		}
		h.logger.Error("failed to delete host", "hostname", hostname, "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to delete host", "internal_error")
		return
	}

	h.writeJSON(w, http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Host %s deleted.", hostname),
	})
}

// =============================================================================
// EventType Handlers
// =============================================================================

func (h *Handler) handleCreateEventType(w http.ResponseWriter, r *http.Request) {
	var req CreateEventTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON", "validation_error")
		return
	}

	if req.Category == "" {
		h.writeError(w, http.StatusBadRequest, "Missing Required Argument: category", "validation_error")
		return
	}
	if req.State == "" {
		h.writeError(w, http.StatusBadRequest, "Missing Required Argument: state", "validation_error")
		return
	}
	if req.Description == "" {
		h.writeError(w, http.StatusBadRequest, "Missing Required Argument: description", "validation_error")
		return
	}

	et, err := domain.NewEventType(req.Category, domain.EventTypeState(req.State), req.Description)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error(), "validation_error")
		return
	}

	if err := h.store.CreateEventType(r.Context(), et); err != nil {
		if isConflict(err) {
			h.writeError(w, http.StatusConflict, err.Error(), "conflict")
			return
		}
		h.logger.Error("failed to create event type", "category", req.Category, "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to create event type", "internal_error")
		return
	}

	w.Header().Set("Location", et.HRef(h.basePath))
	h.writeJSON(w, http.StatusCreated, et.Document(h.basePath))
}

func (h *Handler) handleListEventTypes(w http.ResponseWriter, r *http.Request) {
	p, ok := h.pagination(w, r)
	if !ok {
		return
	}

	filter := store.EventTypeFilter{
		Category: r.URL.Query().Get("category"),
		State:    r.URL.Query().Get("state"),
	}
	types, total, err := h.store.ListEventTypes(r.Context(), filter, p.Window)
	if err != nil {
		h.logger.Error("failed to list event types", "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to list event types", "internal_error")
		return
	}

	resp := ListEventTypesResponse{
		Limit:           p.Limit,
		Offset:          p.Offset,
		TotalEventTypes: total,
		EventTypes:      make([]any, 0, len(types)),
	}
	for _, et := range types {
		resp.EventTypes = append(resp.EventTypes, et.Document(h.basePath))
	}

	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleGetEventType(w http.ResponseWriter, r *http.Request) {
	p, ok := h.pagination(w, r)
	if !ok {
		return
	}
	id, ok := h.idParam(w, r)
	if !ok {
		return
	}

	et, err := h.store.GetEventType(r.Context(), id)
	if err != nil {
		if isNotFound(err) {
			h.writeError(w, http.StatusNotFound, fmt.Sprintf("No such EventType %d found", id), "not_found")
			return
		}
		h.logger.Error("failed to get event type", "id", id, "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to get event type", "internal_error")
		return
	}

	view, err := h.agg.EventTypeView(r.Context(), *et, p)
	if err != nil {
		h.logger.Error("failed to assemble event type view", "id", id, "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to assemble event type view", "internal_error")
		return
	}

	h.writeJSON(w, http.StatusOK, view)
}

func (h *Handler) handleUpdateEventType(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idParam(w, r)
	if !ok {
		return
	}

	var req UpdateEventTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON", "validation_error")
		return
	}
	if req.Description == nil {
		h.writeError(w, http.StatusBadRequest, "Missing Required Argument: description", "validation_error")
		return
	}
	if *req.Description == "" {
		h.writeError(w, http.StatusBadRequest, domain.ErrDescriptionRequired.Error(), "validation_error")
		return
	}

	et, err := h.store.UpdateEventTypeDescription(r.Context(), id, *req.Description)
	if err != nil {
		if isNotFound(err) {
			h.writeError(w, http.StatusNotFound, fmt.Sprintf("No such EventType %d found", id), "not_found")
			return
		}
		h.logger.Error("failed to update event type", "id", id, "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to update event type", "internal_error")
		return
	}

	h.writeJSON(w, http.StatusOK, et.Document(h.basePath))
}

// handleDeleteEventType always declines without touching storage. This is a
// success with an informational message, not an error: event types are
// referenced by the event log and are never removed.
func (h *Handler) handleDeleteEventType(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, MessageResponse{Message: "Not supported."})
}

// =============================================================================
// Event Handlers
// =============================================================================

func (h *Handler) handleCreateEvent(w http.ResponseWriter, r *http.Request) {
	var req CreateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON", "validation_error")
		return
	}
	if req.Hostname == "" {
		h.writeError(w, http.StatusBadRequest, "Missing Required Argument: hostname", "validation_error")
		return
	}
	if req.EventTypeID == 0 {
		h.writeError(w, http.StatusBadRequest, "Missing Required Argument: eventTypeId", "validation_error")
		return
	}

	host, err := h.store.GetHostByHostname(r.Context(), req.Hostname)
	if err != nil {
		if isNotFound(err) {
			h.writeError(w, http.StatusNotFound, fmt.Sprintf("No such Host %s found", req.Hostname), "not_found")
			return
		}
		h.logger.Error("failed to get host", "hostname", req.Hostname, "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to get host", "internal_error")
		return
	}

	if _, err := h.store.GetEventType(r.Context(), req.EventTypeID); err != nil {
		if isNotFound(err) {
			h.writeError(w, http.StatusNotFound, fmt.Sprintf("No such EventType %d found", req.EventTypeID), "not_found")
			return
		}
		h.logger.Error("failed to get event type", "id", req.EventTypeID, "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to get event type", "internal_error")
		return
	}

	event, err := domain.NewEvent(host.ID, req.EventTypeID, time.Now().UTC(), req.User, req.Note)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error(), "validation_error")
		return
	}

	if err := h.store.CreateEvent(r.Context(), event); err != nil {
		if isConflict(err) {
			h.writeError(w, http.StatusConflict, err.Error(), "conflict")
			return
		}
		h.logger.Error("failed to create event", "hostname", req.Hostname, "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to create event", "internal_error")
		return
	}

	w.Header().Set("Location", event.HRef(h.basePath))
	h.writeJSON(w, http.StatusCreated, event.Document(h.basePath))
}

func (h *Handler) handleListEvents(w http.ResponseWriter, r *http.Request) {
	p, ok := h.pagination(w, r)
	if !ok {
		return
	}

	var filter store.EventFilter
	if raw := r.URL.Query().Get("hostId"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.writeError(w, http.StatusBadRequest, "hostId must be an integer", "validation_error")
			return
		}
		filter.HostID = n
	}
	if raw := r.URL.Query().Get("eventTypeId"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.writeError(w, http.StatusBadRequest, "eventTypeId must be an integer", "validation_error")
			return
		}
		filter.EventTypeID = n
	}

	events, total, err := h.store.ListEvents(r.Context(), filter, p.Window)
	if err != nil {
		h.logger.Error("failed to list events", "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to list events", "internal_error")
		return
	}

	resp := ListEventsResponse{
		Limit:       p.Limit,
		Offset:      p.Offset,
		TotalEvents: total,
		Events:      make([]any, 0, len(events)),
	}
	for _, e := range events {
		resp.Events = append(resp.Events, e.Document(h.basePath))
	}

	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleGetEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idParam(w, r)
	if !ok {
		return
	}

	event, err := h.store.GetEvent(r.Context(), id)
	if err != nil {
		if isNotFound(err) {
			h.writeError(w, http.StatusNotFound, fmt.Sprintf("No such Event %d found", id), "not_found")
			return
		}
		h.logger.Error("failed to get event", "id", id, "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to get event", "internal_error")
		return
	}

	h.writeJSON(w, http.StatusOK, event.Document(h.basePath))
}

// =============================================================================
// Labor / Quest / Fate Handlers (read-only)
// =============================================================================

func (h *Handler) handleListLabors(w http.ResponseWriter, r *http.Request) {
	p, ok := h.pagination(w, r)
	if !ok {
		return
	}

	labors, total, err := h.store.ListLabors(r.Context(), p.Window)
	if err != nil {
		h.logger.Error("failed to list labors", "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to list labors", "internal_error")
		return
	}

	resp := ListLaborsResponse{
		Limit:       p.Limit,
		Offset:      p.Offset,
		TotalLabors: total,
		Labors:      make([]any, 0, len(labors)),
	}
	for _, l := range labors {
		resp.Labors = append(resp.Labors, l.Document(h.basePath))
	}

	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleGetLabor(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idParam(w, r)
	if !ok {
		return
	}

	labor, err := h.store.GetLabor(r.Context(), id)
	if err != nil {
		if isNotFound(err) {
			h.writeError(w, http.StatusNotFound, fmt.Sprintf("No such Labor %d found", id), "not_found")
			return
		}
		h.logger.Error("failed to get labor", "id", id, "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to get labor", "internal_error")
		return
	}

	h.writeJSON(w, http.StatusOK, labor.Document(h.basePath))
}

func (h *Handler) handleListQuests(w http.ResponseWriter, r *http.Request) {
	p, ok := h.pagination(w, r)
	if !ok {
		return
	}

	quests, total, err := h.store.ListQuests(r.Context(), p.Window)
	if err != nil {
		h.logger.Error("failed to list quests", "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to list quests", "internal_error")
		return
	}

	resp := ListQuestsResponse{
		Limit:       p.Limit,
		Offset:      p.Offset,
		TotalQuests: total,
		Quests:      make([]any, 0, len(quests)),
	}
	for _, q := range quests {
		resp.Quests = append(resp.Quests, q.Document(h.basePath))
	}

	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleGetQuest(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idParam(w, r)
	if !ok {
		return
	}

	quest, err := h.store.GetQuest(r.Context(), id)
	if err != nil {
		if isNotFound(err) {
			h.writeError(w, http.StatusNotFound, fmt.Sprintf("No such Quest %d found", id), "not_found")
			return
		}
		h.logger.Error("failed to get quest", "id", id, "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to get quest", "internal_error")
		return
	}

	h.writeJSON(w, http.StatusOK, quest.Document(h.basePath))
}

func (h *Handler) handleListFates(w http.ResponseWriter, r *http.Request) {
	p, ok := h.pagination(w, r)
	if !ok {
		return
	}

	fates, total, err := h.store.ListFates(r.Context(), p.Window)
	if err != nil {
		h.logger.Error("failed to list fates", "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to list fates", "internal_error")
		return
	}

	resp := ListFatesResponse{
		Limit:      p.Limit,
		Offset:     p.Offset,
		TotalFates: total,
		Fates:      make([]any, 0, len(fates)),
	}
	for _, f := range fates {
		resp.Fates = append(resp.Fates, f.Document(h.basePath))
	}

	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleGetFate(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idParam(w, r)
	if !ok {
		return
	}

	fate, err := h.store.GetFate(r.Context(), id)
	if err != nil {
		if isNotFound(err) {
			h.writeError(w, http.StatusNotFound, fmt.Sprintf("No such Fate %d found", id), "not_found")
			return
		}
		h.logger.Error("failed to get fate", "id", id, "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to get fate", "internal_error")
		return
	}

	h.writeJSON(w, http.StatusOK, fate.Document(h.basePath))
}

// =============================================================================
// Helpers
// =============================================================================

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("failed to encode JSON", "error", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message, code string) {
	h.writeJSON(w, status, ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// pagination resolves the request's one shared pagination window. A false
// return means the error response has been written.
func (h *Handler) pagination(w http.ResponseWriter, r *http.Request) (paging.Params, bool) {
	p, err := h.policy.Parse(r.URL.Query())
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error(), "validation_error")
		return paging.Params{}, false
	}
	return p, true
}

func (h *Handler) idParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid id %q", raw), "validation_error")
		return 0, false
	}
	return id, true
}

// isNotFound checks if an error is a not found error.
func isNotFound(err error) bool {
	return errors.Is(err, store.ErrNotFound)
}

// isConflict checks if an error is a storage constraint violation.
func isConflict(err error) bool {
	return errors.Is(err, store.ErrConflict)
}
