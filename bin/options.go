package bin

import (
	"go.uber.org/zap"

	"github.com/robloxapi/rbxcore/reflection"
)

// UnknownTypeBehavior controls what the decoder does when a PROP chunk
// carries a wire-type byte outside the type catalog.
type UnknownTypeBehavior int

const (
	UnknownTypeIgnore UnknownTypeBehavior = iota
	UnknownTypeWarn
	UnknownTypeError
)

// UnknownPropertyBehavior controls what the decoder does with a property
// the reflection database has never heard of for its class.
type UnknownPropertyBehavior int

const (
	UnknownPropertyKeep UnknownPropertyBehavior = iota
	UnknownPropertyDrop
	UnknownPropertyError
)

// PropertyBehavior controls how the encoder treats a property present on
// an Instance but absent from the reflection database.
type PropertyBehavior int

const (
	PropertyIgnoreUnknown PropertyBehavior = iota
	PropertyWriteUnknown
	PropertyErrorOnUnknown
	PropertyBypassReflection
)

// DecodeOptions configures Decoder.Decode.
type DecodeOptions struct {
	// ReflectionDatabase resolves wire properties to canonical types and
	// applies migrations. reflection.Default() is used if nil.
	ReflectionDatabase *reflection.Database

	UnknownTypeBehavior     UnknownTypeBehavior
	UnknownPropertyBehavior UnknownPropertyBehavior

	// Logger receives one entry per soft error. A no-op logger is used if
	// nil.
	Logger *zap.Logger
}

func (o DecodeOptions) database() *reflection.Database {
	if o.ReflectionDatabase != nil {
		return o.ReflectionDatabase
	}
	return reflection.Default()
}

func (o DecodeOptions) logger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return zap.NewNop()
}

// EncodeOptions configures Encoder.Encode.
type EncodeOptions struct {
	ReflectionDatabase *reflection.Database
	PropertyBehavior   PropertyBehavior

	// IncludeMeta controls whether a META chunk is written. Roblox tolerates
	// its absence but Studio always writes one.
	IncludeMeta bool

	// Compress controls whether every chunk except END (META, SSTR, INST,
	// PROP and PRNT) is LZ4-compressed.
	Compress bool

	Logger *zap.Logger
}

func (o EncodeOptions) database() *reflection.Database {
	if o.ReflectionDatabase != nil {
		return o.ReflectionDatabase
	}
	return reflection.Default()
}

func (o EncodeOptions) logger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return zap.NewNop()
}

// Result carries the soft-error warnings accumulated during a decode or
// encode, mirroring the teacher's formatModel.Warnings slice.
type Result struct {
	Warnings []error
}

func (r *Result) warn(err error) {
	r.Warnings = append(r.Warnings, err)
}
