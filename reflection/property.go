// Package reflection implements a small reflection database (RDB):
// knowledge of which properties a class serializes, their canonical type,
// and how legacy properties migrate to current ones. It plays the role
// that the external rbxdump.API collaborator plays in the teacher's
// file.go, but is supplied directly rather than left as an unavailable
// import, since the reflection database is in scope for this module.
package reflection

import "github.com/robloxapi/rbxcore"

// Serialization describes how a property participates in the wire format.
type Serialization int

const (
	// Serializes is the common case: the property round-trips under its
	// own canonical name and type.
	Serializes Serialization = iota

	// DoesNotSerialize marks a property that is computed or otherwise
	// excluded from the file format; decoded values for it are dropped.
	DoesNotSerialize

	// Migrates marks a legacy property whose decoded value must be
	// converted and stored under a different, current property name.
	Migrates
)

// MigrateFunc converts a value decoded under a legacy property into the
// value of its replacement property. It returns an error if the value
// cannot be converted.
type MigrateFunc func(old rbxcore.Value) (rbxcore.Value, error)

// Property is a reflection database entry for one serialized property
// name under one class.
type Property struct {
	// Name is the serialized (wire) name of the property.
	Name string

	// Type is the canonical value type for this property. For a
	// Migrates property, this is the type of the legacy value as decoded
	// from the wire, not the replacement's type.
	Type rbxcore.Type

	Serialization Serialization

	// MigrateTo is the property name values are stored under after
	// MigrateFunc runs. Only meaningful when Serialization is Migrates.
	MigrateTo string

	// MigrateFunc performs the conversion. Only meaningful when
	// Serialization is Migrates.
	MigrateFunc MigrateFunc
}
