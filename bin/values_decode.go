package bin

import (
	"fmt"

	"github.com/robloxapi/rbxcore"
)

// refResolver turns a dense wire-file referent (-1 meaning none) into a
// DOM-level Referent; it is backed by the decoder's per-class referent
// tables built during the Instances stage.
type refResolver func(wireRef int32) rbxcore.Referent

// poolResolver looks up a shared-string pool entry by wire index.
type poolResolver func(index uint32) (*rbxcore.SharedString, bool)

// decodeValues parses a PROP chunk's payload (everything after the
// wire-type byte) into n values, one per member of the owning class, in
// the wire type's own native representation. Widening to a property's
// canonical type happens separately, in widen.go.
func decodeValues(wt wireType, payload []byte, n int, refs refResolver, pool poolResolver) ([]rbxcore.Value, error) {
	switch wt {
	case wireString:
		return decodeStringColumn(payload, n)
	case wireBool:
		return decodeBoolColumn(payload, n)
	case wireInt32:
		return decodeInt32ValueColumn(payload, n)
	case wireFloat32:
		return decodeFloat32ValueColumn(payload, n)
	case wireFloat64:
		return decodeFloat64Column(payload, n)
	case wireUDim:
		return decodeUDimColumn(payload, n)
	case wireUDim2:
		return decodeUDim2Column(payload, n)
	case wireRay:
		return decodeRayColumn(payload, n)
	case wireFaces:
		return decodeFacesColumn(payload, n)
	case wireAxes:
		return decodeAxesColumn(payload, n)
	case wireBrickColor:
		return decodeBrickColorColumn(payload, n)
	case wireColor3:
		return decodeColor3Column(payload, n)
	case wireVector2:
		return decodeVector2Column(payload, n)
	case wireVector3:
		return decodeVector3Column(payload, n)
	case wireCFrame:
		return decodeCFrameColumn(payload, n)
	case wireEnum:
		return decodeEnumColumn(payload, n)
	case wireRef:
		return decodeRefColumn(payload, n, refs)
	case wireVector3int16:
		return decodeVector3int16Column(payload, n)
	case wireNumberSequence:
		return decodeNumberSequenceColumn(payload, n)
	case wireColorSequence:
		return decodeColorSequenceColumn(payload, n)
	case wireNumberRange:
		return decodeNumberRangeColumn(payload, n)
	case wireRect:
		return decodeRectColumn(payload, n)
	case wirePhysicalProperties:
		return decodePhysicalPropertiesColumn(payload, n)
	case wireColor3uint8:
		return decodeColor3uint8Column(payload, n)
	case wireInt64:
		return decodeInt64ValueColumn(payload, n)
	case wireSharedString:
		return decodeSharedStringColumn(payload, n, pool)
	case wireOptionalCFrame:
		return decodeOptionalCFrameColumn(payload, n)
	case wireUniqueId:
		return decodeUniqueIdColumn(payload, n)
	case wireFont:
		return decodeFontColumn(payload, n)
	case wireSecurityCapabilities:
		return decodeSecurityCapabilitiesColumn(payload, n)
	case wireContent:
		return decodeContentColumn(payload, n, refs)
	default:
		return nil, UnknownWireType{Byte: byte(wt)}
	}
}

func decodeStringColumn(payload []byte, n int) ([]rbxcore.Value, error) {
	r := newByteReader(payload)
	out := make([]rbxcore.Value, n)
	for i := 0; i < n; i++ {
		out[i] = rbxcore.ValueString(r.lengthPrefixedString())
	}
	if r.err != nil {
		return nil, IoError{Cause: r.err}
	}
	return out, nil
}

func decodeBoolColumn(payload []byte, n int) ([]rbxcore.Value, error) {
	if len(payload) != n {
		return nil, fmt.Errorf("bin: bool column expects %d bytes, got %d", n, len(payload))
	}
	out := make([]rbxcore.Value, n)
	for i, b := range payload {
		out[i] = rbxcore.ValueBool(b != 0)
	}
	return out, nil
}

func decodeInt32ValueColumn(payload []byte, n int) ([]rbxcore.Value, error) {
	ints, err := decodeInt32Column(payload, n)
	if err != nil {
		return nil, err
	}
	out := make([]rbxcore.Value, n)
	for i, v := range ints {
		out[i] = rbxcore.ValueInt32(v)
	}
	return out, nil
}

func decodeFloat32ValueColumn(payload []byte, n int) ([]rbxcore.Value, error) {
	floats, err := decodeFloat32Column(payload, n)
	if err != nil {
		return nil, err
	}
	out := make([]rbxcore.Value, n)
	for i, v := range floats {
		out[i] = rbxcore.ValueFloat32(v)
	}
	return out, nil
}

func decodeFloat64Column(payload []byte, n int) ([]rbxcore.Value, error) {
	if len(payload) != n*8 {
		return nil, fmt.Errorf("bin: float64 column expects %d bytes, got %d", n*8, len(payload))
	}
	r := newByteReader(payload)
	out := make([]rbxcore.Value, n)
	for i := 0; i < n; i++ {
		out[i] = rbxcore.ValueFloat64(r.float64le())
	}
	return out, nil
}

func decodeInt64ValueColumn(payload []byte, n int) ([]rbxcore.Value, error) {
	ints, err := decodeInt64Column(payload, n)
	if err != nil {
		return nil, err
	}
	out := make([]rbxcore.Value, n)
	for i, v := range ints {
		out[i] = rbxcore.ValueInt64(v)
	}
	return out, nil
}

func decodeUDimColumn(payload []byte, n int) ([]rbxcore.Value, error) {
	if len(payload) != n*8 {
		return nil, fmt.Errorf("bin: UDim column expects %d bytes, got %d", n*8, len(payload))
	}
	scales, err := decodeFloat32Column(payload[:n*4], n)
	if err != nil {
		return nil, err
	}
	offsets, err := decodeInt32Column(payload[n*4:], n)
	if err != nil {
		return nil, err
	}
	out := make([]rbxcore.Value, n)
	for i := range out {
		out[i] = rbxcore.ValueUDim{Scale: scales[i], Offset: offsets[i]}
	}
	return out, nil
}

func decodeUDim2Column(payload []byte, n int) ([]rbxcore.Value, error) {
	if len(payload) != n*16 {
		return nil, fmt.Errorf("bin: UDim2 column expects %d bytes, got %d", n*16, len(payload))
	}
	scaleX, err := decodeFloat32Column(payload[0*n*4:1*n*4], n)
	if err != nil {
		return nil, err
	}
	scaleY, err := decodeFloat32Column(payload[1*n*4:2*n*4], n)
	if err != nil {
		return nil, err
	}
	offX, err := decodeInt32Column(payload[2*n*4:3*n*4], n)
	if err != nil {
		return nil, err
	}
	offY, err := decodeInt32Column(payload[3*n*4:4*n*4], n)
	if err != nil {
		return nil, err
	}
	out := make([]rbxcore.Value, n)
	for i := range out {
		out[i] = rbxcore.ValueUDim2{
			X: rbxcore.ValueUDim{Scale: scaleX[i], Offset: offX[i]},
			Y: rbxcore.ValueUDim{Scale: scaleY[i], Offset: offY[i]},
		}
	}
	return out, nil
}

func decodeRayColumn(payload []byte, n int) ([]rbxcore.Value, error) {
	if len(payload) != n*24 {
		return nil, fmt.Errorf("bin: Ray column expects %d bytes, got %d", n*24, len(payload))
	}
	r := newByteReader(payload)
	out := make([]rbxcore.Value, n)
	for i := 0; i < n; i++ {
		ox, oy, oz := r.float32le(), r.float32le(), r.float32le()
		dx, dy, dz := r.float32le(), r.float32le(), r.float32le()
		out[i] = rbxcore.ValueRay{
			Origin:    rbxcore.ValueVector3{X: ox, Y: oy, Z: oz},
			Direction: rbxcore.ValueVector3{X: dx, Y: dy, Z: dz},
		}
	}
	return out, nil
}

func decodeFacesColumn(payload []byte, n int) ([]rbxcore.Value, error) {
	if len(payload) != n {
		return nil, fmt.Errorf("bin: Faces column expects %d bytes, got %d", n, len(payload))
	}
	out := make([]rbxcore.Value, n)
	for i, b := range payload {
		if b >= 64 {
			return nil, InvalidPropData{Reason: fmt.Sprintf("Faces value %d out of range", b)}
		}
		out[i] = rbxcore.ValueFaces(b)
	}
	return out, nil
}

func decodeAxesColumn(payload []byte, n int) ([]rbxcore.Value, error) {
	if len(payload) != n {
		return nil, fmt.Errorf("bin: Axes column expects %d bytes, got %d", n, len(payload))
	}
	out := make([]rbxcore.Value, n)
	for i, b := range payload {
		if b >= 8 {
			return nil, InvalidPropData{Reason: fmt.Sprintf("Axes value %d out of range", b)}
		}
		out[i] = rbxcore.ValueAxes(b)
	}
	return out, nil
}

func decodeBrickColorColumn(payload []byte, n int) ([]rbxcore.Value, error) {
	ids, err := decodeUint32Column(payload, n)
	if err != nil {
		return nil, err
	}
	out := make([]rbxcore.Value, n)
	for i, v := range ids {
		out[i] = rbxcore.ValueBrickColor(v)
	}
	return out, nil
}

func decodeColor3Column(payload []byte, n int) ([]rbxcore.Value, error) {
	if len(payload) != n*12 {
		return nil, fmt.Errorf("bin: Color3 column expects %d bytes, got %d", n*12, len(payload))
	}
	rC, err := decodeFloat32Column(payload[0*n*4:1*n*4], n)
	if err != nil {
		return nil, err
	}
	gC, err := decodeFloat32Column(payload[1*n*4:2*n*4], n)
	if err != nil {
		return nil, err
	}
	bC, err := decodeFloat32Column(payload[2*n*4:3*n*4], n)
	if err != nil {
		return nil, err
	}
	out := make([]rbxcore.Value, n)
	for i := range out {
		out[i] = rbxcore.ValueColor3{R: rC[i], G: gC[i], B: bC[i]}
	}
	return out, nil
}

func decodeVector2Column(payload []byte, n int) ([]rbxcore.Value, error) {
	if len(payload) != n*8 {
		return nil, fmt.Errorf("bin: Vector2 column expects %d bytes, got %d", n*8, len(payload))
	}
	xs, err := decodeFloat32Column(payload[0*n*4:1*n*4], n)
	if err != nil {
		return nil, err
	}
	ys, err := decodeFloat32Column(payload[1*n*4:2*n*4], n)
	if err != nil {
		return nil, err
	}
	out := make([]rbxcore.Value, n)
	for i := range out {
		out[i] = rbxcore.ValueVector2{X: xs[i], Y: ys[i]}
	}
	return out, nil
}

func decodeVector3Column(payload []byte, n int) ([]rbxcore.Value, error) {
	if len(payload) != n*12 {
		return nil, fmt.Errorf("bin: Vector3 column expects %d bytes, got %d", n*12, len(payload))
	}
	xs, err := decodeFloat32Column(payload[0*n*4:1*n*4], n)
	if err != nil {
		return nil, err
	}
	ys, err := decodeFloat32Column(payload[1*n*4:2*n*4], n)
	if err != nil {
		return nil, err
	}
	zs, err := decodeFloat32Column(payload[2*n*4:3*n*4], n)
	if err != nil {
		return nil, err
	}
	out := make([]rbxcore.Value, n)
	for i := range out {
		out[i] = rbxcore.ValueVector3{X: xs[i], Y: ys[i], Z: zs[i]}
	}
	return out, nil
}

func decodeVector3int16Column(payload []byte, n int) ([]rbxcore.Value, error) {
	if len(payload) != n*6 {
		return nil, fmt.Errorf("bin: Vector3int16 column expects %d bytes, got %d", n*6, len(payload))
	}
	r := newByteReader(payload)
	out := make([]rbxcore.Value, n)
	for i := 0; i < n; i++ {
		x := int16(r.uint16())
		y := int16(r.uint16())
		z := int16(r.uint16())
		out[i] = rbxcore.ValueVector3int16{X: x, Y: y, Z: z}
	}
	return out, nil
}

func decodeEnumColumn(payload []byte, n int) ([]rbxcore.Value, error) {
	ords, err := decodeUint32Column(payload, n)
	if err != nil {
		return nil, err
	}
	out := make([]rbxcore.Value, n)
	for i, v := range ords {
		out[i] = rbxcore.ValueEnum(v)
	}
	return out, nil
}

func decodeRefColumn(payload []byte, n int, refs refResolver) ([]rbxcore.Value, error) {
	wireRefs, err := decodeReferentColumn(payload, n)
	if err != nil {
		return nil, err
	}
	out := make([]rbxcore.Value, n)
	for i, w := range wireRefs {
		out[i] = rbxcore.ValueReference{Referent: refs(w)}
	}
	return out, nil
}

func decodeNumberSequenceColumn(payload []byte, n int) ([]rbxcore.Value, error) {
	r := newByteReader(payload)
	out := make([]rbxcore.Value, n)
	for i := 0; i < n; i++ {
		count := r.uint32()
		keypoints := make(rbxcore.ValueNumberSequence, count)
		for k := range keypoints {
			keypoints[k] = rbxcore.ValueNumberSequenceKeypoint{
				Time:     r.float32le(),
				Value:    r.float32le(),
				Envelope: r.float32le(),
			}
		}
		if r.err != nil {
			return nil, IoError{Cause: r.err}
		}
		out[i] = keypoints
	}
	return out, nil
}

func decodeColorSequenceColumn(payload []byte, n int) ([]rbxcore.Value, error) {
	r := newByteReader(payload)
	out := make([]rbxcore.Value, n)
	for i := 0; i < n; i++ {
		count := r.uint32()
		keypoints := make(rbxcore.ValueColorSequence, count)
		for k := range keypoints {
			t := r.float32le()
			red := r.float32le()
			green := r.float32le()
			blue := r.float32le()
			env := r.float32le()
			keypoints[k] = rbxcore.ValueColorSequenceKeypoint{
				Time:     t,
				Value:    rbxcore.ValueColor3{R: red, G: green, B: blue},
				Envelope: env,
			}
		}
		if r.err != nil {
			return nil, IoError{Cause: r.err}
		}
		out[i] = keypoints
	}
	return out, nil
}

func decodeNumberRangeColumn(payload []byte, n int) ([]rbxcore.Value, error) {
	if len(payload) != n*8 {
		return nil, fmt.Errorf("bin: NumberRange column expects %d bytes, got %d", n*8, len(payload))
	}
	r := newByteReader(payload)
	out := make([]rbxcore.Value, n)
	for i := 0; i < n; i++ {
		out[i] = rbxcore.ValueNumberRange{Min: r.float32le(), Max: r.float32le()}
	}
	return out, nil
}

func decodeRectColumn(payload []byte, n int) ([]rbxcore.Value, error) {
	if len(payload) != n*16 {
		return nil, fmt.Errorf("bin: Rect column expects %d bytes, got %d", n*16, len(payload))
	}
	xmin, err := decodeFloat32Column(payload[0*n*4:1*n*4], n)
	if err != nil {
		return nil, err
	}
	ymin, err := decodeFloat32Column(payload[1*n*4:2*n*4], n)
	if err != nil {
		return nil, err
	}
	xmax, err := decodeFloat32Column(payload[2*n*4:3*n*4], n)
	if err != nil {
		return nil, err
	}
	ymax, err := decodeFloat32Column(payload[3*n*4:4*n*4], n)
	if err != nil {
		return nil, err
	}
	out := make([]rbxcore.Value, n)
	for i := range out {
		out[i] = rbxcore.ValueRect{
			Min: rbxcore.ValueVector2{X: xmin[i], Y: ymin[i]},
			Max: rbxcore.ValueVector2{X: xmax[i], Y: ymax[i]},
		}
	}
	return out, nil
}

func decodePhysicalPropertiesColumn(payload []byte, n int) ([]rbxcore.Value, error) {
	r := newByteReader(payload)
	out := make([]rbxcore.Value, n)
	for i := 0; i < n; i++ {
		tag := r.byte()
		switch tag {
		case 0, 2:
			out[i] = rbxcore.ValuePhysicalProperties{}
		case 1:
			v := rbxcore.ValuePhysicalProperties{
				Custom:           true,
				Density:          r.float32le(),
				Friction:         r.float32le(),
				Elasticity:       r.float32le(),
				FrictionWeight:   r.float32le(),
				ElasticityWeight: r.float32le(),
				MassWeight:       1.0,
			}
			out[i] = v
		case 3:
			v := rbxcore.ValuePhysicalProperties{
				Custom:           true,
				Density:          r.float32le(),
				Friction:         r.float32le(),
				Elasticity:       r.float32le(),
				FrictionWeight:   r.float32le(),
				ElasticityWeight: r.float32le(),
				MassWeight:       r.float32le(),
			}
			out[i] = v
		default:
			return nil, BadPhysicalPropertiesTag{Tag: tag}
		}
		if r.err != nil {
			return nil, IoError{Cause: r.err}
		}
	}
	return out, nil
}

func decodeColor3uint8Column(payload []byte, n int) ([]rbxcore.Value, error) {
	if len(payload) != n*3 {
		return nil, fmt.Errorf("bin: Color3uint8 column expects %d bytes, got %d", n*3, len(payload))
	}
	out := make([]rbxcore.Value, n)
	for i := range out {
		out[i] = rbxcore.ValueColor3uint8{
			R: payload[0*n+i],
			G: payload[1*n+i],
			B: payload[2*n+i],
		}
	}
	return out, nil
}

func decodeSharedStringColumn(payload []byte, n int, pool poolResolver) ([]rbxcore.Value, error) {
	indices, err := decodeUint32Column(payload, n)
	if err != nil {
		return nil, err
	}
	out := make([]rbxcore.Value, n)
	for i, idx := range indices {
		s, ok := pool(idx)
		if !ok {
			return nil, InvalidPropData{Reason: fmt.Sprintf("shared string pool index %d out of range", idx)}
		}
		out[i] = rbxcore.ValueSharedString{Value: s}
	}
	return out, nil
}

// decodeCFrameBlock reads the CFrame wire block (variable-length rotation
// section followed by three interleaved f32 position columns) for n
// values directly off r, so it can be reused inside OptionalCFrame's
// larger frame without knowing its length up front.
func decodeCFrameBlock(r *byteReader, n int) ([]rbxcore.ValueCFrame, error) {
	out := make([]rbxcore.ValueCFrame, n)
	for i := 0; i < n; i++ {
		id := r.byte()
		if r.err != nil {
			return nil, IoError{Cause: r.err}
		}
		if id == 0x00 {
			var m [9]float32
			for k := range m {
				m[k] = r.float32le()
			}
			if r.err != nil {
				return nil, IoError{Cause: r.err}
			}
			out[i].Rotation = m
			continue
		}
		m, ok := matrixForRotationID(id)
		if !ok {
			return nil, BadRotationID{ID: id}
		}
		out[i].Rotation = m
	}

	posBuf := r.take(n * 12)
	if r.err != nil {
		return nil, IoError{Cause: r.err}
	}
	xs, err := decodeFloat32Column(posBuf[0*n*4:1*n*4], n)
	if err != nil {
		return nil, err
	}
	ys, err := decodeFloat32Column(posBuf[1*n*4:2*n*4], n)
	if err != nil {
		return nil, err
	}
	zs, err := decodeFloat32Column(posBuf[2*n*4:3*n*4], n)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i].Position = rbxcore.ValueVector3{X: xs[i], Y: ys[i], Z: zs[i]}
	}
	return out, nil
}

func decodeCFrameColumn(payload []byte, n int) ([]rbxcore.Value, error) {
	r := newByteReader(payload)
	cframes, err := decodeCFrameBlock(r, n)
	if err != nil {
		return nil, err
	}
	out := make([]rbxcore.Value, n)
	for i, cf := range cframes {
		out[i] = cf
	}
	return out, nil
}

func decodeOptionalCFrameColumn(payload []byte, n int) ([]rbxcore.Value, error) {
	r := newByteReader(payload)

	if got := r.byte(); got != byte(wireCFrame) {
		return nil, BadOptionalCFrameFormat{Reason: fmt.Sprintf("expected CFrame sentinel 0x%02X, got 0x%02X", wireCFrame, got)}
	}
	cframes, err := decodeCFrameBlock(r, n)
	if err != nil {
		return nil, err
	}

	if got := r.byte(); got != byte(wireBool) {
		return nil, BadOptionalCFrameFormat{Reason: fmt.Sprintf("expected Bool sentinel 0x%02X, got 0x%02X", wireBool, got)}
	}
	flags := r.take(n)
	if r.err != nil {
		return nil, IoError{Cause: r.err}
	}

	out := make([]rbxcore.Value, n)
	for i, present := range flags {
		if present == 0 {
			out[i] = rbxcore.ValueOptionalCFrame{}
			continue
		}
		cf := cframes[i]
		out[i] = rbxcore.ValueOptionalCFrame{Value: &cf}
	}
	return out, nil
}

func decodeUniqueIdColumn(payload []byte, n int) ([]rbxcore.Value, error) {
	if len(payload) != n*16 {
		return nil, fmt.Errorf("bin: UniqueId column expects %d bytes, got %d", n*16, len(payload))
	}
	cp := append([]byte(nil), payload...)
	if err := deinterleave(cp, 16); err != nil {
		return nil, err
	}
	out := make([]rbxcore.Value, n)
	for i := 0; i < n; i++ {
		rec := cp[i*16 : i*16+16]
		index := uint32(rec[0])<<24 | uint32(rec[1])<<16 | uint32(rec[2])<<8 | uint32(rec[3])
		timeVal := uint32(rec[4])<<24 | uint32(rec[5])<<16 | uint32(rec[6])<<8 | uint32(rec[7])
		var randBits uint64
		for k := 0; k < 8; k++ {
			randBits = randBits<<8 | uint64(rec[8+k])
		}
		// The wire form has the random field rotated left by one bit, its
		// sign bit in the lowest bit; rotate right by one to recover the
		// natural value.
		random := int64((randBits >> 1) | (randBits << 63))
		out[i] = rbxcore.ValueUniqueId{Index: index, Time: timeVal, Random: random}
	}
	return out, nil
}

func decodeFontColumn(payload []byte, n int) ([]rbxcore.Value, error) {
	r := newByteReader(payload)
	out := make([]rbxcore.Value, n)
	for i := 0; i < n; i++ {
		family := r.lengthPrefixedString()
		weight := r.uint16()
		style := r.byte()
		face := r.lengthPrefixedString()
		if r.err != nil {
			return nil, IoError{Cause: r.err}
		}
		out[i] = rbxcore.ValueFont{Family: family, Weight: weight, Style: style, CachedFaceId: face}
	}
	return out, nil
}

func decodeSecurityCapabilitiesColumn(payload []byte, n int) ([]rbxcore.Value, error) {
	ints, err := decodeInt64Column(payload, n)
	if err != nil {
		return nil, err
	}
	out := make([]rbxcore.Value, n)
	for i, v := range ints {
		out[i] = rbxcore.ValueSecurityCapabilities(uint64(v))
	}
	return out, nil
}

func decodeContentColumn(payload []byte, n int, refs refResolver) ([]rbxcore.Value, error) {
	if len(payload) < n*4 {
		return nil, fmt.Errorf("bin: Content column truncated before source-type array")
	}
	sourceTypes, err := decodeInt32Column(payload[:n*4], n)
	if err != nil {
		return nil, err
	}
	for _, t := range sourceTypes {
		if t < 0 || t > 2 {
			return nil, BadContentSourceType{Tag: t}
		}
	}

	r := newByteReader(payload[n*4:])
	uriCount := r.uint32()
	uris := make([]string, uriCount)
	for i := range uris {
		uris[i] = r.lengthPrefixedString()
	}
	objectCount := r.uint32()
	objectRefsRaw := r.take(int(objectCount) * 4)
	if r.err != nil {
		return nil, IoError{Cause: r.err}
	}
	objectRefs, err := decodeReferentColumn(objectRefsRaw, int(objectCount))
	if err != nil {
		return nil, err
	}
	externalCount := r.uint32()
	externalReserved := r.take(int(externalCount) * 4)
	if r.err != nil {
		return nil, IoError{Cause: r.err}
	}

	out := make([]rbxcore.Value, n)
	uriIdx := len(uris) - 1
	objIdx := 0
	for i, t := range sourceTypes {
		switch t {
		case 0:
			out[i] = rbxcore.ValueContent{SourceType: rbxcore.ContentSourceNone}
		case 1:
			if uriIdx < 0 {
				return nil, InvalidPropData{Reason: "Content URI pool exhausted"}
			}
			out[i] = rbxcore.ValueContent{SourceType: rbxcore.ContentSourceURI, URI: uris[uriIdx]}
			uriIdx--
		case 2:
			if objIdx >= len(objectRefs) {
				return nil, InvalidPropData{Reason: "Content object pool exhausted"}
			}
			out[i] = rbxcore.ValueContent{SourceType: rbxcore.ContentSourceReferent, Object: refs(objectRefs[objIdx])}
			objIdx++
		}
		if cv, ok := out[i].(rbxcore.ValueContent); ok {
			out[i] = cv.WithExternalReserved(externalReserved)
		}
	}
	return out, nil
}
