// Package render assembles composite resource documents: it windows each of
// a primary entity's related collections and renders every member either in
// full or as a minimal reference, driven by the client's expand set.
package render

import (
	"encoding/json"

	"github.com/hermeshq/hermes/internal/core/paging"
)

// =============================================================================
// Entity
// =============================================================================

// Entity is anything with a numeric identity, a canonical link path, and a
// full field-level document. The domain types implement it.
type Entity interface {
	EntityID() int64
	HRef(base string) string
	Document(base string) any
}

// =============================================================================
// Representation
// =============================================================================

// Ref is the minimal reference form of a related entity.
type Ref struct {
	ID   int64  `json:"id"`
	HRef string `json:"href"`
}

// Representation is either a full document or a Ref, never both. The JSON
// encoding is whichever side is set.
type Representation struct {
	full any
	ref  *Ref
}

// Full wraps a complete document.
func Full(doc any) Representation {
	return Representation{full: doc}
}

// Reference wraps a minimal id+href reference.
func Reference(id int64, href string) Representation {
	return Representation{ref: &Ref{ID: id, HRef: href}}
}

// IsRef reports whether the representation is the reference form.
func (r Representation) IsRef() bool { return r.ref != nil }

// Full returns the wrapped document, or nil for a reference.
func (r Representation) FullDoc() any { return r.full }

// Ref returns the wrapped reference, or nil for a full document.
func (r Representation) Ref() *Ref { return r.ref }

// MarshalJSON encodes whichever side of the union is populated.
func (r Representation) MarshalJSON() ([]byte, error) {
	if r.ref != nil {
		return json.Marshal(r.ref)
	}
	return json.Marshal(r.full)
}

// =============================================================================
// Selector
// =============================================================================

// Select renders one related entity. When the relation is in the expand set
// the entity's own document is used; otherwise a minimal reference.
func Select(relation string, expand paging.ExpandSet, base string, e Entity) Representation {
	if expand.Has(relation) {
		return Full(e.Document(base))
	}
	return Reference(e.EntityID(), e.HRef(base))
}
