package bin

import "github.com/robloxapi/rbxcore"

// wireType is the single-byte type tag that precedes a PROP chunk's
// column data, distinct from rbxcore.Type's DOM-level numbering. Names
// match the Type Catalog's "Name" column.
type wireType byte

const (
	wireString                wireType = 0x01
	wireBool                  wireType = 0x02
	wireInt32                 wireType = 0x03
	wireFloat32               wireType = 0x04
	wireFloat64               wireType = 0x05
	wireUDim                  wireType = 0x06
	wireUDim2                 wireType = 0x07
	wireRay                   wireType = 0x08
	wireFaces                 wireType = 0x09
	wireAxes                  wireType = 0x0A
	wireBrickColor            wireType = 0x0B
	wireColor3                wireType = 0x0C
	wireVector2               wireType = 0x0D
	wireVector3               wireType = 0x0E
	wireCFrame                wireType = 0x10
	wireEnum                  wireType = 0x12
	wireRef                   wireType = 0x13
	wireVector3int16          wireType = 0x14
	wireNumberSequence        wireType = 0x15
	wireColorSequence         wireType = 0x16
	wireNumberRange           wireType = 0x17
	wireRect                  wireType = 0x18
	wirePhysicalProperties    wireType = 0x19
	wireColor3uint8           wireType = 0x1A
	wireInt64                 wireType = 0x1B
	wireSharedString          wireType = 0x1C
	wireOptionalCFrame        wireType = 0x1E
	wireUniqueId              wireType = 0x1F
	wireFont                  wireType = 0x20
	wireSecurityCapabilities  wireType = 0x21
	wireContent               wireType = 0x22
)

// defaultCanonicalType gives the canonical rbxcore.Type a wire type maps to
// when the reflection database has no descriptor for the property (spec
// rule: "use the default variant that the wire type maps to"). It is the
// identity mapping for every wire type except the handful the catalog
// defines only as a canonical widening target (ContentId, Tags,
// Attributes, MaterialColors, NetAssetRef), which never appear here since
// they are never themselves a wire type.
var defaultCanonicalType = map[wireType]rbxcore.Type{
	wireString:               rbxcore.TypeString,
	wireBool:                 rbxcore.TypeBool,
	wireInt32:                rbxcore.TypeInt32,
	wireFloat32:              rbxcore.TypeFloat32,
	wireFloat64:              rbxcore.TypeFloat64,
	wireUDim:                 rbxcore.TypeUDim,
	wireUDim2:                rbxcore.TypeUDim2,
	wireRay:                  rbxcore.TypeRay,
	wireFaces:                rbxcore.TypeFaces,
	wireAxes:                 rbxcore.TypeAxes,
	wireBrickColor:           rbxcore.TypeBrickColor,
	wireColor3:               rbxcore.TypeColor3,
	wireVector2:              rbxcore.TypeVector2,
	wireVector3:              rbxcore.TypeVector3,
	wireCFrame:               rbxcore.TypeCFrame,
	wireEnum:                 rbxcore.TypeEnum,
	wireRef:                  rbxcore.TypeReference,
	wireVector3int16:         rbxcore.TypeVector3int16,
	wireNumberSequence:       rbxcore.TypeNumberSequence,
	wireColorSequence:        rbxcore.TypeColorSequence,
	wireNumberRange:          rbxcore.TypeNumberRange,
	wireRect:                 rbxcore.TypeRect,
	wirePhysicalProperties:   rbxcore.TypePhysicalProperties,
	wireColor3uint8:          rbxcore.TypeColor3uint8,
	wireInt64:                rbxcore.TypeInt64,
	wireSharedString:         rbxcore.TypeSharedString,
	wireOptionalCFrame:       rbxcore.TypeOptionalCFrame,
	wireUniqueId:             rbxcore.TypeUniqueId,
	wireFont:                 rbxcore.TypeFont,
	wireSecurityCapabilities: rbxcore.TypeSecurityCapabilities,
	wireContent:              rbxcore.TypeContent,
}

// canonicalWireType is the inverse used by the encoder: given the
// canonical type a property actually holds, which wire type should be
// emitted. Canonical-only widening targets map back to the wire type they
// widen from.
var canonicalWireType = map[rbxcore.Type]wireType{
	rbxcore.TypeString:               wireString,
	rbxcore.TypeBinaryString:         wireString,
	rbxcore.TypeContentId:            wireString,
	rbxcore.TypeTags:                 wireString,
	rbxcore.TypeAttributes:           wireString,
	rbxcore.TypeMaterialColors:       wireString,
	rbxcore.TypeBool:                 wireBool,
	rbxcore.TypeInt32:                wireInt32,
	rbxcore.TypeFloat32:              wireFloat32,
	rbxcore.TypeFloat64:              wireFloat64,
	rbxcore.TypeUDim:                 wireUDim,
	rbxcore.TypeUDim2:                wireUDim2,
	rbxcore.TypeRay:                  wireRay,
	rbxcore.TypeFaces:                wireFaces,
	rbxcore.TypeAxes:                 wireAxes,
	rbxcore.TypeBrickColor:           wireBrickColor,
	rbxcore.TypeColor3:               wireColor3,
	rbxcore.TypeVector2:              wireVector2,
	rbxcore.TypeVector3:              wireVector3,
	rbxcore.TypeCFrame:               wireCFrame,
	rbxcore.TypeEnum:                 wireEnum,
	rbxcore.TypeReference:            wireRef,
	rbxcore.TypeVector3int16:         wireVector3int16,
	rbxcore.TypeNumberSequence:       wireNumberSequence,
	rbxcore.TypeColorSequence:        wireColorSequence,
	rbxcore.TypeNumberRange:          wireNumberRange,
	rbxcore.TypeRect:                 wireRect,
	rbxcore.TypePhysicalProperties:   wirePhysicalProperties,
	rbxcore.TypeColor3uint8:          wireColor3uint8,
	rbxcore.TypeInt64:                wireInt64,
	rbxcore.TypeSharedString:         wireSharedString,
	rbxcore.TypeNetAssetRef:          wireSharedString,
	rbxcore.TypeOptionalCFrame:       wireOptionalCFrame,
	rbxcore.TypeUniqueId:             wireUniqueId,
	rbxcore.TypeFont:                 wireFont,
	rbxcore.TypeSecurityCapabilities: wireSecurityCapabilities,
	rbxcore.TypeContent:              wireContent,
}
