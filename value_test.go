package rbxcore_test

import (
	"testing"

	"github.com/robloxapi/rbxcore"
	"github.com/stretchr/testify/require"
)

func TestTypeStringAndFromString(t *testing.T) {
	require.Equal(t, "Vector3", rbxcore.TypeVector3.String())
	require.Equal(t, "Invalid", rbxcore.Type(255).String())
	require.Equal(t, rbxcore.TypeVector3, rbxcore.TypeFromString("vector3"))
	require.Equal(t, rbxcore.TypeInvalid, rbxcore.TypeFromString("NotARealType"))
}

func TestNewValueReturnsZeroValue(t *testing.T) {
	require.Equal(t, rbxcore.ValueString(""), rbxcore.NewValue(rbxcore.TypeString))
	require.Equal(t, rbxcore.ValueVector3{}, rbxcore.NewValue(rbxcore.TypeVector3))
	require.Nil(t, rbxcore.NewValue(rbxcore.Type(255)))
}

func TestValueTagsBufferRoundTrip(t *testing.T) {
	tags := rbxcore.ValueTags{"Enemy", "Interactable"}
	buf := tags.Buffer()
	got := rbxcore.TagsFromBuffer(buf)
	require.Equal(t, tags, got)
}

func TestValueTagsBufferEmpty(t *testing.T) {
	require.Nil(t, rbxcore.TagsFromBuffer(nil))
}

func TestValueAttributesBufferRoundTrip(t *testing.T) {
	attrs := rbxcore.ValueAttributes{
		"Health":  rbxcore.ValueFloat64(100),
		"IsBoss":  rbxcore.ValueBool(true),
		"Label":   rbxcore.ValueString("goblin"),
		"Variant": rbxcore.ValueInt32(3),
	}
	buf := attrs.Buffer()
	got, err := rbxcore.AttributesFromBuffer(buf)
	require.NoError(t, err)
	require.Equal(t, attrs, got)
}

func TestValueAttributesBufferSkipsUnsupportedTypes(t *testing.T) {
	attrs := rbxcore.ValueAttributes{
		"Kept":    rbxcore.ValueString("yes"),
		"Skipped": rbxcore.ValueVector3{X: 1, Y: 2, Z: 3},
	}
	buf := attrs.Buffer()
	got, err := rbxcore.AttributesFromBuffer(buf)
	require.NoError(t, err)
	require.Equal(t, rbxcore.ValueAttributes{"Kept": rbxcore.ValueString("yes")}, got)
}

func TestValueAttributesFromBufferTruncated(t *testing.T) {
	_, err := rbxcore.AttributesFromBuffer([]byte{1, 2, 3})
	require.Error(t, err)
}

func TestValueCopyIndependence(t *testing.T) {
	orig := rbxcore.ValueBinaryString([]byte{1, 2, 3})
	clone := orig.Copy().(rbxcore.ValueBinaryString)
	clone[0] = 9
	require.Equal(t, byte(1), orig[0])
}

func TestSharedStringPoolDedup(t *testing.T) {
	pool := rbxcore.NewSharedStringPool()
	a, idxA := pool.Add([]byte("hello"))
	b, idxB := pool.Add([]byte("hello"))
	require.Same(t, a, b)
	require.Equal(t, idxA, idxB)
	require.Equal(t, 1, pool.Len())

	_, idxC := pool.Add([]byte("world"))
	require.NotEqual(t, idxA, idxC)
	require.Equal(t, 2, pool.Len())

	require.Same(t, a, pool.At(idxA))
	require.Nil(t, pool.At(99))
}
