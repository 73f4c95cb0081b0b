// Package paging converts client-supplied offset/limit/expand query
// parameters into validated, bounded values. Pure logic, no I/O.
package paging

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
)

// ErrInvalidArgument marks malformed pagination input: non-integer or
// negative offset, non-integer or non-positive limit.
var ErrInvalidArgument = errors.New("invalid argument")

// =============================================================================
// Policy
// =============================================================================

// Policy holds the system-wide pagination bounds. DefaultLimit applies when
// the client omits limit; MaxLimit caps whatever the client asks for.
type Policy struct {
	DefaultLimit int
	MaxLimit     int
}

// DefaultPolicy returns the built-in pagination bounds.
func DefaultPolicy() Policy {
	return Policy{DefaultLimit: 10, MaxLimit: 500}
}

// =============================================================================
// Window and ExpandSet
// =============================================================================

// Window is a validated (offset, limit) pair. One window is resolved per
// request and reused for every relation rendered in that response.
type Window struct {
	Offset int
	Limit  int
}

// ExpandSet is the set of relation names the client asked to render in full.
// Membership is case-sensitive. Unknown names are carried but never matched.
type ExpandSet map[string]struct{}

// Has reports whether the relation was requested for expansion.
func (s ExpandSet) Has(relation string) bool {
	_, ok := s[relation]
	return ok
}

// NewExpandSet builds an ExpandSet from relation names. Useful in tests.
func NewExpandSet(relations ...string) ExpandSet {
	s := make(ExpandSet, len(relations))
	for _, r := range relations {
		s[r] = struct{}{}
	}
	return s
}

// Params is the resolved pagination state for one request.
type Params struct {
	Window
	Expand ExpandSet
}

// =============================================================================
// Parsing
// =============================================================================

// Parse validates raw query parameters against the policy. The expand
// parameter is repeatable; unrecognized relation names pass through without
// error so clients can send them ahead of server support.
func (p Policy) Parse(q url.Values) (Params, error) {
	params := Params{
		Window: Window{Offset: 0, Limit: p.DefaultLimit},
		Expand: make(ExpandSet),
	}

	if raw := q.Get("offset"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return Params{}, fmt.Errorf("%w: offset must be a non-negative integer, got %q", ErrInvalidArgument, raw)
		}
		params.Offset = n
	}

	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return Params{}, fmt.Errorf("%w: limit must be a positive integer, got %q", ErrInvalidArgument, raw)
		}
		params.Limit = n
	}
	if params.Limit > p.MaxLimit {
		params.Limit = p.MaxLimit
	}

	for _, relation := range q["expand"] {
		if relation != "" {
			params.Expand[relation] = struct{}{}
		}
	}

	return params, nil
}
