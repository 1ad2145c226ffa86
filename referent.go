package rbxcore

import (
	uuid "github.com/satori/go.uuid"
)

// Referent is a stable, opaque identifier for an Instance within a DOM. The
// zero Referent is the "none" value and never refers to an Instance.
//
// Referents are assigned when an Instance is created and never change. The
// binary codec renumbers referents to dense int32 values for the wire
// format; that numbering is private to the bin package and never escapes
// to the DOM.
type Referent struct {
	id    uuid.UUID
	valid bool
}

// NewReferent generates a new, effectively-unique Referent.
func NewReferent() Referent {
	return Referent{id: uuid.NewV4(), valid: true}
}

// NoneReferent is the "none" referent. It is equal to the zero Referent.
var NoneReferent = Referent{}

// IsNone reports whether the referent is the "none" value.
func (r Referent) IsNone() bool {
	return !r.valid
}

// String returns the canonical string form of the referent, or "null" for
// the none value.
func (r Referent) String() string {
	if !r.valid {
		return "null"
	}
	return r.id.String()
}
