package bin

import (
	"testing"

	"github.com/robloxapi/rbxcore"
	"github.com/stretchr/testify/require"
)

func identityRefs() (refAssigner, refResolver) {
	return func(r rbxcore.Referent) int32 {
				if r.IsNone() {
					return -1
				}
				return 1
			}, func(w int32) rbxcore.Referent {
				if w == -1 {
					return rbxcore.NoneReferent
				}
				return rbxcore.NewReferent()
			}
}

func noopPool() (poolAssigner, poolResolver) {
	pool := rbxcore.NewSharedStringPool()
	assign := func(s *rbxcore.SharedString) uint32 {
		_, idx := pool.Add(s.Bytes())
		return uint32(idx)
	}
	resolve := func(idx uint32) (*rbxcore.SharedString, bool) {
		s := pool.At(int(idx))
		return s, s != nil
	}
	return assign, resolve
}

func roundTrip(t *testing.T, wt wireType, values []rbxcore.Value) []rbxcore.Value {
	t.Helper()
	refA, refR := identityRefs()
	poolA, poolR := noopPool()

	payload, err := encodeValues(wt, values, refA, poolA)
	require.NoError(t, err)

	got, err := decodeValues(wt, payload, len(values), refR, poolR)
	require.NoError(t, err)
	require.Len(t, got, len(values))
	return got
}

func TestRoundTripScalarColumns(t *testing.T) {
	cases := []struct {
		name string
		wt   wireType
		vals []rbxcore.Value
	}{
		{"String", wireString, []rbxcore.Value{rbxcore.ValueString("hello"), rbxcore.ValueString("")}},
		{"Bool", wireBool, []rbxcore.Value{rbxcore.ValueBool(true), rbxcore.ValueBool(false)}},
		{"Int32", wireInt32, []rbxcore.Value{rbxcore.ValueInt32(42), rbxcore.ValueInt32(-42)}},
		{"Float32", wireFloat32, []rbxcore.Value{rbxcore.ValueFloat32(1.5), rbxcore.ValueFloat32(-2.5)}},
		{"Float64", wireFloat64, []rbxcore.Value{rbxcore.ValueFloat64(3.14), rbxcore.ValueFloat64(-1)}},
		{"Int64", wireInt64, []rbxcore.Value{rbxcore.ValueInt64(1 << 40), rbxcore.ValueInt64(-1)}},
		{"BrickColor", wireBrickColor, []rbxcore.Value{rbxcore.ValueBrickColor(21), rbxcore.ValueBrickColor(1)}},
		{"Enum", wireEnum, []rbxcore.Value{rbxcore.ValueEnum(0), rbxcore.ValueEnum(7)}},
		{"Faces", wireFaces, []rbxcore.Value{rbxcore.ValueFaces(5), rbxcore.ValueFaces(0)}},
		{"Axes", wireAxes, []rbxcore.Value{rbxcore.ValueAxes(3), rbxcore.ValueAxes(0)}},
		{"SecurityCapabilities", wireSecurityCapabilities, []rbxcore.Value{rbxcore.ValueSecurityCapabilities(1), rbxcore.ValueSecurityCapabilities(0)}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := roundTrip(t, c.wt, c.vals)
			require.Equal(t, c.vals, got)
		})
	}
}

func TestRoundTripVector3(t *testing.T) {
	values := []rbxcore.Value{
		rbxcore.ValueVector3{X: 1, Y: 2, Z: 3},
		rbxcore.ValueVector3{X: -1.5, Y: 0, Z: 100},
	}
	got := roundTrip(t, wireVector3, values)
	require.Equal(t, values, got)
}

func TestRoundTripColor3(t *testing.T) {
	values := []rbxcore.Value{
		rbxcore.ValueColor3{R: 1, G: 0.5, B: 0},
	}
	got := roundTrip(t, wireColor3, values)
	require.Equal(t, values, got)
}

func TestRoundTripColor3uint8(t *testing.T) {
	values := []rbxcore.Value{
		rbxcore.ValueColor3uint8{R: 255, G: 128, B: 0},
		rbxcore.ValueColor3uint8{R: 0, G: 0, B: 0},
	}
	got := roundTrip(t, wireColor3uint8, values)
	require.Equal(t, values, got)
}

func TestRoundTripUDimAndUDim2(t *testing.T) {
	udims := []rbxcore.Value{rbxcore.ValueUDim{Scale: 0.5, Offset: 10}}
	require.Equal(t, udims, roundTrip(t, wireUDim, udims))

	udim2s := []rbxcore.Value{rbxcore.ValueUDim2{
		X: rbxcore.ValueUDim{Scale: 0.5, Offset: 10},
		Y: rbxcore.ValueUDim{Scale: 1, Offset: -5},
	}}
	require.Equal(t, udim2s, roundTrip(t, wireUDim2, udim2s))
}

func TestRoundTripRay(t *testing.T) {
	values := []rbxcore.Value{rbxcore.ValueRay{
		Origin:    rbxcore.ValueVector3{X: 1, Y: 2, Z: 3},
		Direction: rbxcore.ValueVector3{X: 0, Y: -1, Z: 0},
	}}
	require.Equal(t, values, roundTrip(t, wireRay, values))
}

func TestRoundTripVector3int16(t *testing.T) {
	values := []rbxcore.Value{rbxcore.ValueVector3int16{X: 1, Y: -2, Z: 32000}}
	require.Equal(t, values, roundTrip(t, wireVector3int16, values))
}

func TestRoundTripNumberSequence(t *testing.T) {
	values := []rbxcore.Value{
		rbxcore.ValueNumberSequence{
			{Time: 0, Value: 1, Envelope: 0},
			{Time: 1, Value: 0, Envelope: 0},
		},
	}
	require.Equal(t, values, roundTrip(t, wireNumberSequence, values))
}

func TestRoundTripColorSequence(t *testing.T) {
	values := []rbxcore.Value{
		rbxcore.ValueColorSequence{
			{Time: 0, Value: rbxcore.ValueColor3{R: 1}, Envelope: 0},
		},
	}
	require.Equal(t, values, roundTrip(t, wireColorSequence, values))
}

func TestRoundTripNumberRangeAndRect(t *testing.T) {
	ranges := []rbxcore.Value{rbxcore.ValueNumberRange{Min: 0, Max: 10}}
	require.Equal(t, ranges, roundTrip(t, wireNumberRange, ranges))

	rects := []rbxcore.Value{rbxcore.ValueRect{
		Min: rbxcore.ValueVector2{X: 0, Y: 0},
		Max: rbxcore.ValueVector2{X: 100, Y: 200},
	}}
	require.Equal(t, rects, roundTrip(t, wireRect, rects))
}

func TestRoundTripPhysicalPropertiesDefault(t *testing.T) {
	values := []rbxcore.Value{rbxcore.ValuePhysicalProperties{}}
	require.Equal(t, values, roundTrip(t, wirePhysicalProperties, values))
}

func TestRoundTripPhysicalPropertiesCustomDefaultMass(t *testing.T) {
	values := []rbxcore.Value{rbxcore.ValuePhysicalProperties{
		Custom: true, Density: 1, Friction: 2, Elasticity: 3, FrictionWeight: 4, ElasticityWeight: 5, MassWeight: 1.0,
	}}
	require.Equal(t, values, roundTrip(t, wirePhysicalProperties, values))
}

func TestRoundTripPhysicalPropertiesCustomMass(t *testing.T) {
	values := []rbxcore.Value{rbxcore.ValuePhysicalProperties{
		Custom: true, Density: 1, Friction: 2, Elasticity: 3, FrictionWeight: 4, ElasticityWeight: 5, MassWeight: 2.5,
	}}
	require.Equal(t, values, roundTrip(t, wirePhysicalProperties, values))
}

func TestRoundTripCFrameIdentity(t *testing.T) {
	values := []rbxcore.Value{rbxcore.ValueCFrame{
		Position: rbxcore.ValueVector3{X: 1, Y: 2, Z: 3},
		Rotation: [9]float32{1, 0, 0, 0, 1, 0, 0, 0, 1},
	}}
	require.Equal(t, values, roundTrip(t, wireCFrame, values))
}

func TestRoundTripCFrameArbitraryMatrix(t *testing.T) {
	values := []rbxcore.Value{rbxcore.ValueCFrame{
		Position: rbxcore.ValueVector3{X: 0, Y: 0, Z: 0},
		Rotation: [9]float32{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9},
	}}
	require.Equal(t, values, roundTrip(t, wireCFrame, values))
}

func TestRoundTripOptionalCFrame(t *testing.T) {
	cf := rbxcore.ValueCFrame{
		Position: rbxcore.ValueVector3{X: 5, Y: 6, Z: 7},
		Rotation: [9]float32{1, 0, 0, 0, 1, 0, 0, 0, 1},
	}
	values := []rbxcore.Value{
		rbxcore.ValueOptionalCFrame{Value: &cf},
		rbxcore.ValueOptionalCFrame{},
	}
	got := roundTrip(t, wireOptionalCFrame, values)
	require.Equal(t, values, got)
}

func TestRoundTripUniqueId(t *testing.T) {
	values := []rbxcore.Value{
		rbxcore.ValueUniqueId{Index: 1, Time: 2, Random: 1234567890},
		rbxcore.ValueUniqueId{Index: 0, Time: 0, Random: -1},
	}
	require.Equal(t, values, roundTrip(t, wireUniqueId, values))
}

func TestRoundTripFont(t *testing.T) {
	values := []rbxcore.Value{
		rbxcore.ValueFont{Family: "rbxasset://fonts/Roboto.ttf", Weight: 400, Style: 0, CachedFaceId: ""},
	}
	require.Equal(t, values, roundTrip(t, wireFont, values))
}

func TestRoundTripSharedString(t *testing.T) {
	s := rbxcore.NewSharedString([]byte("payload"))
	values := []rbxcore.Value{rbxcore.ValueSharedString{Value: s}}
	got := roundTrip(t, wireSharedString, values)
	require.Len(t, got, 1)
	require.Equal(t, s.Bytes(), got[0].(rbxcore.ValueSharedString).Value.Bytes())
}

func TestRoundTripReference(t *testing.T) {
	values := []rbxcore.Value{
		rbxcore.ValueReference{Referent: rbxcore.NewReferent()},
		rbxcore.ValueReference{Referent: rbxcore.NoneReferent},
	}
	got := roundTrip(t, wireRef, values)
	require.False(t, got[0].(rbxcore.ValueReference).Referent.IsNone())
	require.True(t, got[1].(rbxcore.ValueReference).Referent.IsNone())
}

func TestRoundTripContentURI(t *testing.T) {
	values := []rbxcore.Value{
		rbxcore.ValueContent{SourceType: rbxcore.ContentSourceURI, URI: "rbxassetid://1"},
		rbxcore.ValueContent{SourceType: rbxcore.ContentSourceURI, URI: "rbxassetid://2"},
		rbxcore.ValueContent{SourceType: rbxcore.ContentSourceNone},
	}
	got := roundTrip(t, wireContent, values)
	require.Equal(t, "rbxassetid://1", got[0].(rbxcore.ValueContent).URI)
	require.Equal(t, "rbxassetid://2", got[1].(rbxcore.ValueContent).URI)
	require.Equal(t, rbxcore.ContentSourceNone, got[2].(rbxcore.ValueContent).SourceType)
}

func TestRoundTripContentReferent(t *testing.T) {
	values := []rbxcore.Value{
		rbxcore.ValueContent{SourceType: rbxcore.ContentSourceReferent, Object: rbxcore.NewReferent()},
	}
	got := roundTrip(t, wireContent, values)
	require.Equal(t, rbxcore.ContentSourceReferent, got[0].(rbxcore.ValueContent).SourceType)
	require.False(t, got[0].(rbxcore.ValueContent).Object.IsNone())
}

func TestDecodeValuesUnknownWireType(t *testing.T) {
	_, refR := identityRefs()
	_, poolR := noopPool()
	_, err := decodeValues(wireType(0xFF), nil, 0, refR, poolR)
	require.Error(t, err)
	require.IsType(t, UnknownWireType{}, err)
}

func TestDecodePhysicalPropertiesBadTag(t *testing.T) {
	w := newByteWriter()
	w.byte(7)
	_, err := decodePhysicalPropertiesColumn(w.Bytes(), 1)
	require.Error(t, err)
}

func TestDecodeFacesOutOfRange(t *testing.T) {
	_, err := decodeFacesColumn([]byte{64}, 1)
	require.Error(t, err)
}
