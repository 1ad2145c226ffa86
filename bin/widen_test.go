package bin

import (
	"testing"

	"github.com/robloxapi/rbxcore"
	"github.com/stretchr/testify/require"
)

func TestApplyWideningSameTypeIsNoop(t *testing.T) {
	v := rbxcore.ValueInt32(5)
	got, warn, err := applyWidening(rbxcore.TypeInt32, v)
	require.NoError(t, err)
	require.NoError(t, warn)
	require.Equal(t, v, got)
}

func TestApplyWideningInt32ToInt64(t *testing.T) {
	got, warn, err := applyWidening(rbxcore.TypeInt64, rbxcore.ValueInt32(-7))
	require.NoError(t, err)
	require.NoError(t, warn)
	require.Equal(t, rbxcore.ValueInt64(-7), got)
}

func TestApplyWideningFloat32ToFloat64(t *testing.T) {
	got, warn, err := applyWidening(rbxcore.TypeFloat64, rbxcore.ValueFloat32(1.5))
	require.NoError(t, err)
	require.NoError(t, warn)
	require.Equal(t, rbxcore.ValueFloat64(1.5), got)
}

func TestApplyWideningColor3uint8ToColor3(t *testing.T) {
	got, warn, err := applyWidening(rbxcore.TypeColor3, rbxcore.ValueColor3uint8{R: 255, G: 0, B: 128})
	require.NoError(t, err)
	require.NoError(t, warn)
	c := got.(rbxcore.ValueColor3)
	require.InDelta(t, 1.0, c.R, 0.001)
	require.InDelta(t, 0.0, c.G, 0.001)
}

func TestApplyWideningStringToContentId(t *testing.T) {
	got, warn, err := applyWidening(rbxcore.TypeContentId, rbxcore.ValueString("rbxassetid://1"))
	require.NoError(t, err)
	require.NoError(t, warn)
	require.Equal(t, rbxcore.ValueContentId("rbxassetid://1"), got)
}

func TestApplyWideningStringToTags(t *testing.T) {
	tags := rbxcore.ValueTags{"A", "B"}
	got, warn, err := applyWidening(rbxcore.TypeTags, rbxcore.ValueString(string(tags.Buffer())))
	require.NoError(t, err)
	require.NoError(t, warn)
	require.Equal(t, tags, got)
}

func TestApplyWideningStringToAttributes(t *testing.T) {
	attrs := rbxcore.ValueAttributes{"A": rbxcore.ValueBool(true)}
	got, warn, err := applyWidening(rbxcore.TypeAttributes, rbxcore.ValueString(string(attrs.Buffer())))
	require.NoError(t, err)
	require.NoError(t, warn)
	require.Equal(t, attrs, got)
}

func TestApplyWideningIncompatibleIsFatal(t *testing.T) {
	_, _, err := applyWidening(rbxcore.TypeVector3, rbxcore.ValueBool(true))
	require.Error(t, err)
}

func TestApplyWideningSharedStringToNetAssetRef(t *testing.T) {
	s := rbxcore.NewSharedString([]byte("data"))
	got, warn, err := applyWidening(rbxcore.TypeNetAssetRef, rbxcore.ValueSharedString{Value: s})
	require.NoError(t, err)
	require.NoError(t, warn)
	require.Equal(t, rbxcore.ValueNetAssetRef{Value: s}, got)
}
