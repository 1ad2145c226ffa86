package rbxcore_test

import (
	"testing"

	"github.com/robloxapi/rbxcore"
	"github.com/stretchr/testify/require"
)

func TestNewInstanceDefaults(t *testing.T) {
	inst := rbxcore.NewInstance("Part")
	require.Equal(t, "Part", inst.ClassName)
	require.False(t, inst.Referent.IsNone())
	require.Equal(t, "Part", inst.Name())
	require.False(t, inst.IsService)
}

func TestInstanceNameFallsBackToClassName(t *testing.T) {
	inst := rbxcore.NewInstance("Folder")
	inst.Properties["Name"] = rbxcore.ValueBool(true)
	require.Equal(t, "Folder", inst.Name())
}

func TestInstanceNameUsesNameProperty(t *testing.T) {
	inst := rbxcore.NewInstance("Folder")
	inst.Properties["Name"] = rbxcore.ValueString("Workspace")
	require.Equal(t, "Workspace", inst.Name())
}

func TestInstanceCloneIsIndependent(t *testing.T) {
	inst := rbxcore.NewInstance("Part")
	inst.Properties["Name"] = rbxcore.ValueString("Base")
	inst.IsService = true

	clone := inst.Clone()
	require.NotEqual(t, inst.Referent, clone.Referent)
	require.Equal(t, inst.ClassName, clone.ClassName)
	require.True(t, clone.IsService)

	clone.Properties["Name"] = rbxcore.ValueString("Changed")
	require.Equal(t, "Base", inst.Name())
	require.Equal(t, "Changed", clone.Name())
}
