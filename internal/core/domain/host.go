// Package domain contains the core domain types and validation logic.
// This is part of the Functional Core - all functions are pure with no I/O.
package domain

import (
	"errors"
	"fmt"
)

// =============================================================================
// Errors
// =============================================================================

var (
	// Host validation errors
	ErrHostnameRequired = errors.New("hostname is required")

	// EventType validation errors
	ErrCategoryRequired    = errors.New("category is required")
	ErrStateRequired       = errors.New("state is required")
	ErrStateInvalid        = errors.New("state must be one of: required, optional, completed")
	ErrDescriptionRequired = errors.New("description is required")

	// Event validation errors
	ErrEventHostRequired = errors.New("event must reference a host")
	ErrEventTypeRequired = errors.New("event must reference an event type")
)

// =============================================================================
// Host
// =============================================================================

// Host is a managed machine tracked by its unique hostname.
type Host struct {
	ID       int64  `json:"id"`
	Hostname string `json:"hostname"`
}

// NewHost creates a Host from a hostname. Hostname uniqueness is enforced
// by the storage layer, not here.
func NewHost(hostname string) (*Host, error) {
	if hostname == "" {
		return nil, ErrHostnameRequired
	}
	return &Host{Hostname: hostname}, nil
}

// Rename changes the hostname. The same uniqueness constraint applies on
// write as on create.
func (h *Host) Rename(hostname string) error {
	if hostname == "" {
		return ErrHostnameRequired
	}
	h.Hostname = hostname
	return nil
}

// EntityID returns the numeric identity of the host.
func (h Host) EntityID() int64 { return h.ID }

// HRef returns the canonical link path for the host under the given base.
func (h Host) HRef(base string) string {
	return fmt.Sprintf("%s/hosts/%s", base, h.Hostname)
}

// Document returns the full field-level representation of the host.
func (h Host) Document(base string) any {
	return hostDoc{
		ID:       h.ID,
		Hostname: h.Hostname,
		HRef:     h.HRef(base),
	}
}

type hostDoc struct {
	ID       int64  `json:"id"`
	Hostname string `json:"hostname"`
	HRef     string `json:"href"`
}
