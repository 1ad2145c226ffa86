package rbxcore

import (
	"fmt"
	"strconv"
)

// ValueString is a generic byte string. The binary format does not
// distinguish between String, ProtectedString and Content at the wire
// level; all three share wire-type String (0x01) and are told apart only
// by the reflection database's canonical type for the property.
type ValueString string

func (ValueString) Type() Type       { return TypeString }
func (v ValueString) String() string { return string(v) }
func (v ValueString) Copy() Value    { return v }

// ValueBinaryString is an opaque byte buffer, used both for properties
// whose canonical type is BinaryString and as the fallback representation
// for values the decoder could not interpret any other way.
type ValueBinaryString []byte

func (ValueBinaryString) Type() Type { return TypeBinaryString }
func (v ValueBinaryString) String() string {
	return fmt.Sprintf("<binary, %d bytes>", len(v))
}
func (v ValueBinaryString) Copy() Value {
	c := make(ValueBinaryString, len(v))
	copy(c, v)
	return c
}

// ValueContentId is a simple URI-valued string, the canonical type a
// String-typed wire property widens to when the reflection database
// declares the property's type as ContentId.
type ValueContentId string

func (ValueContentId) Type() Type       { return TypeContentId }
func (v ValueContentId) String() string { return string(v) }
func (v ValueContentId) Copy() Value    { return v }

// ValueBool is a single boolean.
type ValueBool bool

func (ValueBool) Type() Type       { return TypeBool }
func (v ValueBool) String() string { return strconv.FormatBool(bool(v)) }
func (v ValueBool) Copy() Value    { return v }

// ValueInt32 is a signed 32-bit integer.
type ValueInt32 int32

func (ValueInt32) Type() Type       { return TypeInt32 }
func (v ValueInt32) String() string { return strconv.FormatInt(int64(v), 10) }
func (v ValueInt32) Copy() Value    { return v }

// ValueFloat32 is a single-precision float.
type ValueFloat32 float32

func (ValueFloat32) Type() Type       { return TypeFloat32 }
func (v ValueFloat32) String() string { return strconv.FormatFloat(float64(v), 'g', -1, 32) }
func (v ValueFloat32) Copy() Value    { return v }

// ValueFloat64 is a double-precision float.
type ValueFloat64 float64

func (ValueFloat64) Type() Type       { return TypeFloat64 }
func (v ValueFloat64) String() string { return strconv.FormatFloat(float64(v), 'g', -1, 64) }
func (v ValueFloat64) Copy() Value    { return v }

// ValueInt64 is a signed 64-bit integer.
type ValueInt64 int64

func (ValueInt64) Type() Type       { return TypeInt64 }
func (v ValueInt64) String() string { return strconv.FormatInt(int64(v), 10) }
func (v ValueInt64) Copy() Value    { return v }

// ValueBrickColor is a palette index into Roblox's fixed BrickColor table.
// The table itself is outside this module's scope; only the numeric index
// round-trips.
type ValueBrickColor uint32

func (ValueBrickColor) Type() Type       { return TypeBrickColor }
func (v ValueBrickColor) String() string { return strconv.FormatUint(uint64(v), 10) }
func (v ValueBrickColor) Copy() Value    { return v }

// ValueEnum is the ordinal of an enum value. Roblox calls this type "Token"
// internally; this module uses "Enum" to match current terminology.
type ValueEnum uint32

func (ValueEnum) Type() Type       { return TypeEnum }
func (v ValueEnum) String() string { return strconv.FormatUint(uint64(v), 10) }
func (v ValueEnum) Copy() Value    { return v }

// ValueSecurityCapabilities is a bit mask of engine capability flags.
type ValueSecurityCapabilities uint64

func (ValueSecurityCapabilities) Type() Type { return TypeSecurityCapabilities }
func (v ValueSecurityCapabilities) String() string {
	return "0x" + strconv.FormatUint(uint64(v), 16)
}
func (v ValueSecurityCapabilities) Copy() Value { return v }
