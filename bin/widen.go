package bin

import "github.com/robloxapi/rbxcore"

// applyWidening converts a value decoded at its wire type into the target
// canonical type a property's reflection descriptor declares, per the
// widening table in the type catalog. warn is set (with err nil) when a
// String-wire value could not be parsed as Attributes and is returned as a
// BinaryString instead; err is non-nil only for a widening this codec does
// not allow at all.
func applyWidening(canonical rbxcore.Type, v rbxcore.Value) (result rbxcore.Value, warn error, err error) {
	if v.Type() == canonical {
		return v, nil, nil
	}

	switch {
	case v.Type() == rbxcore.TypeInt32 && canonical == rbxcore.TypeInt64:
		return rbxcore.ValueInt64(int64(v.(rbxcore.ValueInt32))), nil, nil

	case v.Type() == rbxcore.TypeFloat32 && canonical == rbxcore.TypeFloat64:
		return rbxcore.ValueFloat64(float64(v.(rbxcore.ValueFloat32))), nil, nil

	case v.Type() == rbxcore.TypeColor3uint8 && canonical == rbxcore.TypeColor3:
		c := v.(rbxcore.ValueColor3uint8)
		return rbxcore.ValueColor3{
			R: float32(c.R) / 255,
			G: float32(c.G) / 255,
			B: float32(c.B) / 255,
		}, nil, nil

	case v.Type() == rbxcore.TypeSharedString && canonical == rbxcore.TypeNetAssetRef:
		s := v.(rbxcore.ValueSharedString)
		return rbxcore.ValueNetAssetRef{Value: s.Value}, nil, nil

	case v.Type() == rbxcore.TypeString:
		buf, berr := stringBytes(v)
		if berr != nil {
			return v, nil, berr
		}
		switch canonical {
		case rbxcore.TypeContentId:
			return rbxcore.ValueContentId(string(buf)), nil, nil
		case rbxcore.TypeTags:
			return rbxcore.TagsFromBuffer(buf), nil, nil
		case rbxcore.TypeAttributes:
			attrs, perr := rbxcore.AttributesFromBuffer(buf)
			if perr != nil {
				return rbxcore.ValueBinaryString(buf), perr, nil
			}
			return attrs, nil, nil
		case rbxcore.TypeMaterialColors:
			return rbxcore.ValueMaterialColors(buf), nil, nil
		case rbxcore.TypeBinaryString:
			return rbxcore.ValueBinaryString(buf), nil, nil
		}
	}

	return v, nil, PropTypeMismatch{
		Expected: canonical.String(),
		Actual:   v.Type().String(),
	}
}
