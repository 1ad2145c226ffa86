package bin

import (
	"fmt"

	"github.com/robloxapi/rbxcore"
)

// refAssigner turns a DOM-level Referent into the dense wire-file referent
// assigned to it during this encode (-1 for none or a referent outside the
// exported set).
type refAssigner func(r rbxcore.Referent) int32

// poolAssigner interns a shared string into the encode's pool, returning
// its wire index.
type poolAssigner func(s *rbxcore.SharedString) uint32

// encodeValues is the inverse of decodeValues: it renders n values (all of
// the same canonical type, mapped to wt by canonicalWireType) into a PROP
// chunk payload.
func encodeValues(wt wireType, values []rbxcore.Value, refs refAssigner, pool poolAssigner) ([]byte, error) {
	switch wt {
	case wireString:
		return encodeStringColumn(values)
	case wireBool:
		return encodeBoolColumn(values)
	case wireInt32:
		return encodeInt32ValueColumn(values)
	case wireFloat32:
		return encodeFloat32ValueColumn(values)
	case wireFloat64:
		return encodeFloat64Column(values)
	case wireUDim:
		return encodeUDimColumn(values)
	case wireUDim2:
		return encodeUDim2Column(values)
	case wireRay:
		return encodeRayColumn(values)
	case wireFaces:
		return encodeFacesColumn(values)
	case wireAxes:
		return encodeAxesColumn(values)
	case wireBrickColor:
		return encodeBrickColorColumn(values)
	case wireColor3:
		return encodeColor3Column(values)
	case wireVector2:
		return encodeVector2Column(values)
	case wireVector3:
		return encodeVector3Column(values)
	case wireCFrame:
		return encodeCFrameColumn(values)
	case wireEnum:
		return encodeEnumColumn(values)
	case wireRef:
		return encodeRefColumn(values, refs)
	case wireVector3int16:
		return encodeVector3int16Column(values)
	case wireNumberSequence:
		return encodeNumberSequenceColumn(values)
	case wireColorSequence:
		return encodeColorSequenceColumn(values)
	case wireNumberRange:
		return encodeNumberRangeColumn(values)
	case wireRect:
		return encodeRectColumn(values)
	case wirePhysicalProperties:
		return encodePhysicalPropertiesColumn(values)
	case wireColor3uint8:
		return encodeColor3uint8Column(values)
	case wireInt64:
		return encodeInt64ValueColumn(values)
	case wireSharedString:
		return encodeSharedStringColumn(values, pool)
	case wireOptionalCFrame:
		return encodeOptionalCFrameColumn(values)
	case wireUniqueId:
		return encodeUniqueIdColumn(values)
	case wireFont:
		return encodeFontColumn(values)
	case wireSecurityCapabilities:
		return encodeSecurityCapabilitiesColumn(values)
	case wireContent:
		return encodeContentColumn(values, refs)
	default:
		return nil, UnknownWireType{Byte: byte(wt)}
	}
}

// stringBytes extracts the raw bytes behind any of the canonical types
// that widen from/to a String wire property.
func stringBytes(v rbxcore.Value) ([]byte, error) {
	switch val := v.(type) {
	case rbxcore.ValueString:
		return []byte(string(val)), nil
	case rbxcore.ValueBinaryString:
		return []byte(val), nil
	case rbxcore.ValueContentId:
		return []byte(string(val)), nil
	case rbxcore.ValueTags:
		return val.Buffer(), nil
	case rbxcore.ValueAttributes:
		return val.Buffer(), nil
	case rbxcore.ValueMaterialColors:
		return []byte(val), nil
	default:
		return nil, fmt.Errorf("bin: %T cannot be encoded as a String wire value", v)
	}
}

func encodeStringColumn(values []rbxcore.Value) ([]byte, error) {
	w := newByteWriter()
	for _, v := range values {
		b, err := stringBytes(v)
		if err != nil {
			return nil, err
		}
		w.lengthPrefixedString(string(b))
	}
	return w.Bytes(), nil
}

func encodeBoolColumn(values []rbxcore.Value) ([]byte, error) {
	buf := make([]byte, len(values))
	for i, v := range values {
		b, ok := v.(rbxcore.ValueBool)
		if !ok {
			return nil, fmt.Errorf("bin: expected ValueBool, got %T", v)
		}
		if b {
			buf[i] = 1
		}
	}
	return buf, nil
}

func encodeInt32ValueColumn(values []rbxcore.Value) ([]byte, error) {
	ints := make([]int32, len(values))
	for i, v := range values {
		n, ok := v.(rbxcore.ValueInt32)
		if !ok {
			return nil, fmt.Errorf("bin: expected ValueInt32, got %T", v)
		}
		ints[i] = int32(n)
	}
	return encodeInt32Column(ints), nil
}

func encodeFloat32ValueColumn(values []rbxcore.Value) ([]byte, error) {
	floats := make([]float32, len(values))
	for i, v := range values {
		f, ok := v.(rbxcore.ValueFloat32)
		if !ok {
			return nil, fmt.Errorf("bin: expected ValueFloat32, got %T", v)
		}
		floats[i] = float32(f)
	}
	return encodeFloat32Column(floats), nil
}

func encodeFloat64Column(values []rbxcore.Value) ([]byte, error) {
	w := newByteWriter()
	for _, v := range values {
		f, ok := v.(rbxcore.ValueFloat64)
		if !ok {
			return nil, fmt.Errorf("bin: expected ValueFloat64, got %T", v)
		}
		w.float64le(float64(f))
	}
	return w.Bytes(), nil
}

func encodeInt64ValueColumn(values []rbxcore.Value) ([]byte, error) {
	ints := make([]int64, len(values))
	for i, v := range values {
		n, ok := v.(rbxcore.ValueInt64)
		if !ok {
			return nil, fmt.Errorf("bin: expected ValueInt64, got %T", v)
		}
		ints[i] = int64(n)
	}
	return encodeInt64Column(ints), nil
}

func encodeUDimColumn(values []rbxcore.Value) ([]byte, error) {
	scales := make([]float32, len(values))
	offsets := make([]int32, len(values))
	for i, v := range values {
		u, ok := v.(rbxcore.ValueUDim)
		if !ok {
			return nil, fmt.Errorf("bin: expected ValueUDim, got %T", v)
		}
		scales[i] = u.Scale
		offsets[i] = u.Offset
	}
	out := append([]byte{}, encodeFloat32Column(scales)...)
	out = append(out, encodeInt32Column(offsets)...)
	return out, nil
}

func encodeUDim2Column(values []rbxcore.Value) ([]byte, error) {
	scaleX := make([]float32, len(values))
	scaleY := make([]float32, len(values))
	offX := make([]int32, len(values))
	offY := make([]int32, len(values))
	for i, v := range values {
		u, ok := v.(rbxcore.ValueUDim2)
		if !ok {
			return nil, fmt.Errorf("bin: expected ValueUDim2, got %T", v)
		}
		scaleX[i], offX[i] = u.X.Scale, u.X.Offset
		scaleY[i], offY[i] = u.Y.Scale, u.Y.Offset
	}
	var out []byte
	out = append(out, encodeFloat32Column(scaleX)...)
	out = append(out, encodeFloat32Column(scaleY)...)
	out = append(out, encodeInt32Column(offX)...)
	out = append(out, encodeInt32Column(offY)...)
	return out, nil
}

func encodeRayColumn(values []rbxcore.Value) ([]byte, error) {
	w := newByteWriter()
	for _, v := range values {
		ray, ok := v.(rbxcore.ValueRay)
		if !ok {
			return nil, fmt.Errorf("bin: expected ValueRay, got %T", v)
		}
		w.float32le(ray.Origin.X)
		w.float32le(ray.Origin.Y)
		w.float32le(ray.Origin.Z)
		w.float32le(ray.Direction.X)
		w.float32le(ray.Direction.Y)
		w.float32le(ray.Direction.Z)
	}
	return w.Bytes(), nil
}

func encodeFacesColumn(values []rbxcore.Value) ([]byte, error) {
	buf := make([]byte, len(values))
	for i, v := range values {
		f, ok := v.(rbxcore.ValueFaces)
		if !ok {
			return nil, fmt.Errorf("bin: expected ValueFaces, got %T", v)
		}
		if f >= 64 {
			return nil, InvalidPropData{Reason: fmt.Sprintf("Faces value %d out of range", f)}
		}
		buf[i] = byte(f)
	}
	return buf, nil
}

func encodeAxesColumn(values []rbxcore.Value) ([]byte, error) {
	buf := make([]byte, len(values))
	for i, v := range values {
		a, ok := v.(rbxcore.ValueAxes)
		if !ok {
			return nil, fmt.Errorf("bin: expected ValueAxes, got %T", v)
		}
		if a >= 8 {
			return nil, InvalidPropData{Reason: fmt.Sprintf("Axes value %d out of range", a)}
		}
		buf[i] = byte(a)
	}
	return buf, nil
}

func encodeBrickColorColumn(values []rbxcore.Value) ([]byte, error) {
	ids := make([]uint32, len(values))
	for i, v := range values {
		b, ok := v.(rbxcore.ValueBrickColor)
		if !ok {
			return nil, fmt.Errorf("bin: expected ValueBrickColor, got %T", v)
		}
		ids[i] = uint32(b)
	}
	return encodeUint32Column(ids), nil
}

func encodeColor3Column(values []rbxcore.Value) ([]byte, error) {
	rC := make([]float32, len(values))
	gC := make([]float32, len(values))
	bC := make([]float32, len(values))
	for i, v := range values {
		c, ok := v.(rbxcore.ValueColor3)
		if !ok {
			return nil, fmt.Errorf("bin: expected ValueColor3, got %T", v)
		}
		rC[i], gC[i], bC[i] = c.R, c.G, c.B
	}
	var out []byte
	out = append(out, encodeFloat32Column(rC)...)
	out = append(out, encodeFloat32Column(gC)...)
	out = append(out, encodeFloat32Column(bC)...)
	return out, nil
}

func encodeVector2Column(values []rbxcore.Value) ([]byte, error) {
	xs := make([]float32, len(values))
	ys := make([]float32, len(values))
	for i, v := range values {
		p, ok := v.(rbxcore.ValueVector2)
		if !ok {
			return nil, fmt.Errorf("bin: expected ValueVector2, got %T", v)
		}
		xs[i], ys[i] = p.X, p.Y
	}
	var out []byte
	out = append(out, encodeFloat32Column(xs)...)
	out = append(out, encodeFloat32Column(ys)...)
	return out, nil
}

func encodeVector3Column(values []rbxcore.Value) ([]byte, error) {
	xs := make([]float32, len(values))
	ys := make([]float32, len(values))
	zs := make([]float32, len(values))
	for i, v := range values {
		p, ok := v.(rbxcore.ValueVector3)
		if !ok {
			return nil, fmt.Errorf("bin: expected ValueVector3, got %T", v)
		}
		xs[i], ys[i], zs[i] = p.X, p.Y, p.Z
	}
	var out []byte
	out = append(out, encodeFloat32Column(xs)...)
	out = append(out, encodeFloat32Column(ys)...)
	out = append(out, encodeFloat32Column(zs)...)
	return out, nil
}

func encodeVector3int16Column(values []rbxcore.Value) ([]byte, error) {
	w := newByteWriter()
	for _, v := range values {
		p, ok := v.(rbxcore.ValueVector3int16)
		if !ok {
			return nil, fmt.Errorf("bin: expected ValueVector3int16, got %T", v)
		}
		w.uint16(uint16(p.X))
		w.uint16(uint16(p.Y))
		w.uint16(uint16(p.Z))
	}
	return w.Bytes(), nil
}

func encodeEnumColumn(values []rbxcore.Value) ([]byte, error) {
	ords := make([]uint32, len(values))
	for i, v := range values {
		e, ok := v.(rbxcore.ValueEnum)
		if !ok {
			return nil, fmt.Errorf("bin: expected ValueEnum, got %T", v)
		}
		ords[i] = uint32(e)
	}
	return encodeUint32Column(ords), nil
}

func encodeRefColumn(values []rbxcore.Value, refs refAssigner) ([]byte, error) {
	wireRefs := make([]int32, len(values))
	for i, v := range values {
		ref, ok := v.(rbxcore.ValueReference)
		if !ok {
			return nil, fmt.Errorf("bin: expected ValueReference, got %T", v)
		}
		wireRefs[i] = refs(ref.Referent)
	}
	return encodeReferentColumn(wireRefs), nil
}

func encodeNumberSequenceColumn(values []rbxcore.Value) ([]byte, error) {
	w := newByteWriter()
	for _, v := range values {
		seq, ok := v.(rbxcore.ValueNumberSequence)
		if !ok {
			return nil, fmt.Errorf("bin: expected ValueNumberSequence, got %T", v)
		}
		w.uint32(uint32(len(seq)))
		for _, kp := range seq {
			w.float32le(kp.Time)
			w.float32le(kp.Value)
			w.float32le(kp.Envelope)
		}
	}
	return w.Bytes(), nil
}

func encodeColorSequenceColumn(values []rbxcore.Value) ([]byte, error) {
	w := newByteWriter()
	for _, v := range values {
		seq, ok := v.(rbxcore.ValueColorSequence)
		if !ok {
			return nil, fmt.Errorf("bin: expected ValueColorSequence, got %T", v)
		}
		w.uint32(uint32(len(seq)))
		for _, kp := range seq {
			w.float32le(kp.Time)
			w.float32le(kp.Value.R)
			w.float32le(kp.Value.G)
			w.float32le(kp.Value.B)
			w.float32le(0) // envelope: always written as zero
		}
	}
	return w.Bytes(), nil
}

func encodeNumberRangeColumn(values []rbxcore.Value) ([]byte, error) {
	w := newByteWriter()
	for _, v := range values {
		r, ok := v.(rbxcore.ValueNumberRange)
		if !ok {
			return nil, fmt.Errorf("bin: expected ValueNumberRange, got %T", v)
		}
		w.float32le(r.Min)
		w.float32le(r.Max)
	}
	return w.Bytes(), nil
}

func encodeRectColumn(values []rbxcore.Value) ([]byte, error) {
	xmin := make([]float32, len(values))
	ymin := make([]float32, len(values))
	xmax := make([]float32, len(values))
	ymax := make([]float32, len(values))
	for i, v := range values {
		r, ok := v.(rbxcore.ValueRect)
		if !ok {
			return nil, fmt.Errorf("bin: expected ValueRect, got %T", v)
		}
		xmin[i], ymin[i] = r.Min.X, r.Min.Y
		xmax[i], ymax[i] = r.Max.X, r.Max.Y
	}
	var out []byte
	out = append(out, encodeFloat32Column(xmin)...)
	out = append(out, encodeFloat32Column(ymin)...)
	out = append(out, encodeFloat32Column(xmax)...)
	out = append(out, encodeFloat32Column(ymax)...)
	return out, nil
}

func encodePhysicalPropertiesColumn(values []rbxcore.Value) ([]byte, error) {
	w := newByteWriter()
	for _, v := range values {
		p, ok := v.(rbxcore.ValuePhysicalProperties)
		if !ok {
			return nil, fmt.Errorf("bin: expected ValuePhysicalProperties, got %T", v)
		}
		if !p.Custom {
			w.byte(0)
			continue
		}
		if p.MassWeight == 1.0 {
			w.byte(1)
			w.float32le(p.Density)
			w.float32le(p.Friction)
			w.float32le(p.Elasticity)
			w.float32le(p.FrictionWeight)
			w.float32le(p.ElasticityWeight)
			continue
		}
		w.byte(3)
		w.float32le(p.Density)
		w.float32le(p.Friction)
		w.float32le(p.Elasticity)
		w.float32le(p.FrictionWeight)
		w.float32le(p.ElasticityWeight)
		w.float32le(p.MassWeight)
	}
	return w.Bytes(), nil
}

func encodeColor3uint8Column(values []rbxcore.Value) ([]byte, error) {
	n := len(values)
	buf := make([]byte, n*3)
	for i, v := range values {
		c, ok := v.(rbxcore.ValueColor3uint8)
		if !ok {
			return nil, fmt.Errorf("bin: expected ValueColor3uint8, got %T", v)
		}
		buf[0*n+i] = c.R
		buf[1*n+i] = c.G
		buf[2*n+i] = c.B
	}
	return buf, nil
}

func encodeSharedStringColumn(values []rbxcore.Value, pool poolAssigner) ([]byte, error) {
	indices := make([]uint32, len(values))
	for i, v := range values {
		switch s := v.(type) {
		case rbxcore.ValueSharedString:
			indices[i] = pool(s.Value)
		case rbxcore.ValueNetAssetRef:
			indices[i] = pool(s.Value)
		default:
			return nil, fmt.Errorf("bin: expected ValueSharedString or ValueNetAssetRef, got %T", v)
		}
	}
	return encodeUint32Column(indices), nil
}

func encodeCFrameBlock(w *byteWriter, cframes []rbxcore.ValueCFrame) {
	for _, cf := range cframes {
		if id, ok := rotationIDForMatrix(cf.Rotation); ok {
			w.byte(id)
			continue
		}
		w.byte(0x00)
		for _, f := range cf.Rotation {
			w.float32le(f)
		}
	}
	xs := make([]float32, len(cframes))
	ys := make([]float32, len(cframes))
	zs := make([]float32, len(cframes))
	for i, cf := range cframes {
		xs[i], ys[i], zs[i] = cf.Position.X, cf.Position.Y, cf.Position.Z
	}
	w.bytes(encodeFloat32Column(xs))
	w.bytes(encodeFloat32Column(ys))
	w.bytes(encodeFloat32Column(zs))
}

func encodeCFrameColumn(values []rbxcore.Value) ([]byte, error) {
	cframes := make([]rbxcore.ValueCFrame, len(values))
	for i, v := range values {
		cf, ok := v.(rbxcore.ValueCFrame)
		if !ok {
			return nil, fmt.Errorf("bin: expected ValueCFrame, got %T", v)
		}
		cframes[i] = cf
	}
	w := newByteWriter()
	encodeCFrameBlock(w, cframes)
	return w.Bytes(), nil
}

func encodeOptionalCFrameColumn(values []rbxcore.Value) ([]byte, error) {
	cframes := make([]rbxcore.ValueCFrame, len(values))
	flags := make([]byte, len(values))
	for i, v := range values {
		opt, ok := v.(rbxcore.ValueOptionalCFrame)
		if !ok {
			return nil, fmt.Errorf("bin: expected ValueOptionalCFrame, got %T", v)
		}
		if opt.Value != nil {
			cframes[i] = *opt.Value
			flags[i] = 1
		}
	}
	w := newByteWriter()
	w.byte(byte(wireCFrame))
	encodeCFrameBlock(w, cframes)
	w.byte(byte(wireBool))
	w.bytes(flags)
	return w.Bytes(), nil
}

func encodeUniqueIdColumn(values []rbxcore.Value) ([]byte, error) {
	n := len(values)
	buf := make([]byte, n*16)
	for i, v := range values {
		u, ok := v.(rbxcore.ValueUniqueId)
		if !ok {
			return nil, fmt.Errorf("bin: expected ValueUniqueId, got %T", v)
		}
		rec := buf[i*16 : i*16+16]
		rec[0] = byte(u.Index >> 24)
		rec[1] = byte(u.Index >> 16)
		rec[2] = byte(u.Index >> 8)
		rec[3] = byte(u.Index)
		rec[4] = byte(u.Time >> 24)
		rec[5] = byte(u.Time >> 16)
		rec[6] = byte(u.Time >> 8)
		rec[7] = byte(u.Time)
		// Rotate the natural value left by one bit, moving its sign bit
		// into the lowest bit (the inverse of the decoder's right rotation).
		wireBits := (uint64(u.Random) << 1) | (uint64(u.Random) >> 63)
		for k := 0; k < 8; k++ {
			rec[8+k] = byte(wireBits >> uint(56-8*k))
		}
	}
	if err := interleave(buf, 16); err != nil {
		return nil, err
	}
	return buf, nil
}

func encodeFontColumn(values []rbxcore.Value) ([]byte, error) {
	w := newByteWriter()
	for _, v := range values {
		f, ok := v.(rbxcore.ValueFont)
		if !ok {
			return nil, fmt.Errorf("bin: expected ValueFont, got %T", v)
		}
		w.lengthPrefixedString(f.Family)
		w.uint16(f.Weight)
		w.byte(f.Style)
		w.lengthPrefixedString(f.CachedFaceId)
	}
	return w.Bytes(), nil
}

func encodeSecurityCapabilitiesColumn(values []rbxcore.Value) ([]byte, error) {
	ints := make([]int64, len(values))
	for i, v := range values {
		s, ok := v.(rbxcore.ValueSecurityCapabilities)
		if !ok {
			return nil, fmt.Errorf("bin: expected ValueSecurityCapabilities, got %T", v)
		}
		ints[i] = int64(uint64(s))
	}
	return encodeInt64Column(ints), nil
}

func encodeContentColumn(values []rbxcore.Value, refs refAssigner) ([]byte, error) {
	sourceTypes := make([]int32, len(values))
	var uris []string
	var objectRefs []int32
	var externalReserved []byte

	for i, v := range values {
		c, ok := v.(rbxcore.ValueContent)
		if !ok {
			return nil, fmt.Errorf("bin: expected ValueContent, got %T", v)
		}
		sourceTypes[i] = int32(c.SourceType)
		switch c.SourceType {
		case rbxcore.ContentSourceURI:
			uris = append(uris, c.URI)
		case rbxcore.ContentSourceReferent:
			objectRefs = append(objectRefs, refs(c.Object))
		}
		if r := c.ExternalReserved(); len(r) > 0 {
			externalReserved = r
		}
	}

	// URIs are consumed in reverse insertion order on decode, so the pool
	// is written in that same reversed order.
	for i, j := 0, len(uris)-1; i < j; i, j = i+1, j-1 {
		uris[i], uris[j] = uris[j], uris[i]
	}

	w := newByteWriter()
	w.bytes(encodeInt32Column(sourceTypes))
	w.uint32(uint32(len(uris)))
	for _, u := range uris {
		w.lengthPrefixedString(u)
	}
	w.uint32(uint32(len(objectRefs)))
	w.bytes(encodeReferentColumn(objectRefs))
	w.uint32(uint32(len(externalReserved) / 4))
	w.bytes(externalReserved)
	return w.Bytes(), nil
}
