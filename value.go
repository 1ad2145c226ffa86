package rbxcore

import "strings"

// Type identifies the kind of value held by a Value. It is the DOM-level
// analogue of the wire-type byte in the bin package's PROP chunks; the two
// are related by a (mostly 1:1) mapping rather than sharing a numbering.
type Type byte

// The complete value catalog. Names match the Type Catalog table's "Name"
// column, plus a handful of canonical-only types that never appear as a
// wire-type byte on their own (they are reached by widening from String or
// SharedString, per the canonical property resolution rules).
const (
	TypeInvalid Type = iota
	TypeString
	TypeBinaryString
	TypeContentId
	TypeTags
	TypeAttributes
	TypeMaterialColors
	TypeBool
	TypeInt32
	TypeFloat32
	TypeFloat64
	TypeUDim
	TypeUDim2
	TypeRay
	TypeFaces
	TypeAxes
	TypeBrickColor
	TypeColor3
	TypeVector2
	TypeVector3
	TypeCFrame
	TypeEnum
	TypeReference
	TypeVector3int16
	TypeNumberSequence
	TypeColorSequence
	TypeNumberRange
	TypeRect
	TypePhysicalProperties
	TypeColor3uint8
	TypeInt64
	TypeSharedString
	TypeNetAssetRef
	TypeOptionalCFrame
	TypeUniqueId
	TypeFont
	TypeSecurityCapabilities
	TypeContent
)

var typeStrings = map[Type]string{
	TypeString:               "String",
	TypeBinaryString:         "BinaryString",
	TypeContentId:            "ContentId",
	TypeTags:                 "Tags",
	TypeAttributes:           "Attributes",
	TypeMaterialColors:       "MaterialColors",
	TypeBool:                 "Bool",
	TypeInt32:                "Int32",
	TypeFloat32:              "Float32",
	TypeFloat64:              "Float64",
	TypeUDim:                 "UDim",
	TypeUDim2:                "UDim2",
	TypeRay:                  "Ray",
	TypeFaces:                "Faces",
	TypeAxes:                 "Axes",
	TypeBrickColor:           "BrickColor",
	TypeColor3:               "Color3",
	TypeVector2:              "Vector2",
	TypeVector3:              "Vector3",
	TypeCFrame:               "CFrame",
	TypeEnum:                 "Enum",
	TypeReference:            "Reference",
	TypeVector3int16:         "Vector3int16",
	TypeNumberSequence:       "NumberSequence",
	TypeColorSequence:        "ColorSequence",
	TypeNumberRange:          "NumberRange",
	TypeRect:                 "Rect",
	TypePhysicalProperties:   "PhysicalProperties",
	TypeColor3uint8:          "Color3uint8",
	TypeInt64:                "Int64",
	TypeSharedString:         "SharedString",
	TypeNetAssetRef:          "NetAssetRef",
	TypeOptionalCFrame:       "OptionalCFrame",
	TypeUniqueId:             "UniqueId",
	TypeFont:                 "Font",
	TypeSecurityCapabilities: "SecurityCapabilities",
	TypeContent:              "Content",
}

// String returns the name of the type, or "Invalid" if it is not a known
// type.
func (t Type) String() string {
	if s, ok := typeStrings[t]; ok {
		return s
	}
	return "Invalid"
}

// TypeFromString returns the Type whose name matches s, case-insensitively.
// TypeInvalid is returned if no type matches.
func TypeFromString(s string) Type {
	for t, str := range typeStrings {
		if strings.EqualFold(s, str) {
			return t
		}
	}
	return TypeInvalid
}

// Value holds a value of a particular Type. Concrete implementations are
// value types named Value<Type>, e.g. ValueString, ValueVector3.
//
// Values are immutable once placed into an Instance's property map; callers
// that need to mutate a value in place should Copy it first.
type Value interface {
	// Type returns the type of the value.
	Type() Type

	// String returns a human-readable representation of the value.
	String() string

	// Copy returns a shallow copy of the value that can be safely given a
	// new owner.
	Copy() Value
}

type valueGenerator func() Value

var valueGenerators = map[Type]valueGenerator{
	TypeString:               func() Value { return ValueString("") },
	TypeBinaryString:         func() Value { return ValueBinaryString(nil) },
	TypeContentId:            func() Value { return ValueContentId("") },
	TypeTags:                 func() Value { return ValueTags(nil) },
	TypeAttributes:           func() Value { return ValueAttributes(nil) },
	TypeMaterialColors:       func() Value { return ValueMaterialColors(nil) },
	TypeBool:                 func() Value { return ValueBool(false) },
	TypeInt32:                func() Value { return ValueInt32(0) },
	TypeFloat32:              func() Value { return ValueFloat32(0) },
	TypeFloat64:              func() Value { return ValueFloat64(0) },
	TypeUDim:                 func() Value { return ValueUDim{} },
	TypeUDim2:                func() Value { return ValueUDim2{} },
	TypeRay:                  func() Value { return ValueRay{} },
	TypeFaces:                func() Value { return ValueFaces(0) },
	TypeAxes:                 func() Value { return ValueAxes(0) },
	TypeBrickColor:           func() Value { return ValueBrickColor(0) },
	TypeColor3:               func() Value { return ValueColor3{} },
	TypeVector2:              func() Value { return ValueVector2{} },
	TypeVector3:              func() Value { return ValueVector3{} },
	TypeCFrame:               func() Value { return ValueCFrame{Rotation: identityRotation} },
	TypeEnum:                 func() Value { return ValueEnum(0) },
	TypeReference:            func() Value { return ValueReference{} },
	TypeVector3int16:         func() Value { return ValueVector3int16{} },
	TypeNumberSequence:       func() Value { return ValueNumberSequence(nil) },
	TypeColorSequence:        func() Value { return ValueColorSequence(nil) },
	TypeNumberRange:          func() Value { return ValueNumberRange{} },
	TypeRect:                 func() Value { return ValueRect{} },
	TypePhysicalProperties:   func() Value { return ValuePhysicalProperties{} },
	TypeColor3uint8:          func() Value { return ValueColor3uint8{} },
	TypeInt64:                func() Value { return ValueInt64(0) },
	TypeSharedString:         func() Value { return ValueSharedString{} },
	TypeNetAssetRef:          func() Value { return ValueNetAssetRef{} },
	TypeOptionalCFrame:       func() Value { return ValueOptionalCFrame{} },
	TypeUniqueId:             func() Value { return ValueUniqueId{} },
	TypeFont:                 func() Value { return ValueFont{} },
	TypeSecurityCapabilities: func() Value { return ValueSecurityCapabilities(0) },
	TypeContent:              func() Value { return ValueContent{} },
}

// NewValue returns the default value for typ: the zero value, except that a
// CFrame gets the identity rotation. Nil is returned if typ is not a known
// type.
func NewValue(typ Type) Value {
	if gen, ok := valueGenerators[typ]; ok {
		return gen()
	}
	return nil
}

var identityRotation = [9]float32{1, 0, 0, 0, 1, 0, 0, 0, 1}
