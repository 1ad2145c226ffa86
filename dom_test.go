package rbxcore_test

import (
	"testing"

	"github.com/robloxapi/rbxcore"
	"github.com/stretchr/testify/require"
)

func TestNewDOMHasSyntheticRoot(t *testing.T) {
	dom := rbxcore.NewDOM()
	require.Equal(t, 1, dom.Len())
	require.Equal(t, "DataModel", dom.Root().ClassName)
	require.True(t, dom.Root().IsService)
	require.Empty(t, dom.Children(dom.RootReferent()))
}

func TestDOMInsertUnderRoot(t *testing.T) {
	dom := rbxcore.NewDOM()
	a := rbxcore.NewInstance("Folder")
	b := rbxcore.NewInstance("Folder")
	require.NoError(t, dom.Insert(dom.RootReferent(), a))
	require.NoError(t, dom.Insert(dom.RootReferent(), b))

	children := dom.Children(dom.RootReferent())
	require.Len(t, children, 2)
	require.Equal(t, a.Referent, children[0].Referent)
	require.Equal(t, b.Referent, children[1].Referent)
	require.Equal(t, 3, dom.Len())
}

func TestDOMInsertDuplicateReferentFails(t *testing.T) {
	dom := rbxcore.NewDOM()
	a := rbxcore.NewInstance("Folder")
	require.NoError(t, dom.Insert(dom.RootReferent(), a))
	require.Error(t, dom.Insert(dom.RootReferent(), a))
}

func TestDOMInsertUnknownParentFails(t *testing.T) {
	dom := rbxcore.NewDOM()
	a := rbxcore.NewInstance("Folder")
	require.Error(t, dom.Insert(rbxcore.NewReferent(), a))
}

func TestDOMSetParentMovesBetweenSiblings(t *testing.T) {
	dom := rbxcore.NewDOM()
	parent := rbxcore.NewInstance("Folder")
	child := rbxcore.NewInstance("Part")
	require.NoError(t, dom.Insert(dom.RootReferent(), parent))
	require.NoError(t, dom.Insert(dom.RootReferent(), child))

	require.NoError(t, dom.SetParent(child.Referent, parent.Referent))
	require.Empty(t, dom.Children(dom.RootReferent()))

	children := dom.Children(parent.Referent)
	require.Len(t, children, 1)
	require.Equal(t, child.Referent, children[0].Referent)
	require.Equal(t, parent.Referent, dom.Parent(child.Referent).Referent)
}

func TestDOMSetParentToNoneReturnsToRoot(t *testing.T) {
	dom := rbxcore.NewDOM()
	parent := rbxcore.NewInstance("Folder")
	child := rbxcore.NewInstance("Part")
	require.NoError(t, dom.Insert(dom.RootReferent(), parent))
	require.NoError(t, dom.Insert(dom.RootReferent(), child))
	require.NoError(t, dom.SetParent(child.Referent, parent.Referent))

	require.NoError(t, dom.SetParent(child.Referent, rbxcore.NoneReferent))
	require.Equal(t, dom.RootReferent(), dom.Parent(child.Referent).Referent)
	require.Len(t, dom.Children(dom.RootReferent()), 2)
}

func TestDOMSetParentRejectsSelfParent(t *testing.T) {
	dom := rbxcore.NewDOM()
	a := rbxcore.NewInstance("Folder")
	require.NoError(t, dom.Insert(dom.RootReferent(), a))
	require.Error(t, dom.SetParent(a.Referent, a.Referent))
}

func TestDOMSetParentRejectsReparentingRoot(t *testing.T) {
	dom := rbxcore.NewDOM()
	a := rbxcore.NewInstance("Folder")
	require.NoError(t, dom.Insert(dom.RootReferent(), a))
	require.Error(t, dom.SetParent(dom.RootReferent(), a.Referent))
}

func TestDOMSetParentRejectsCycle(t *testing.T) {
	dom := rbxcore.NewDOM()
	a := rbxcore.NewInstance("Folder")
	b := rbxcore.NewInstance("Folder")
	c := rbxcore.NewInstance("Folder")
	require.NoError(t, dom.Insert(dom.RootReferent(), a))
	require.NoError(t, dom.Insert(dom.RootReferent(), b))
	require.NoError(t, dom.Insert(dom.RootReferent(), c))

	require.NoError(t, dom.SetParent(b.Referent, a.Referent))
	require.NoError(t, dom.SetParent(c.Referent, b.Referent))
	require.Error(t, dom.SetParent(a.Referent, c.Referent))
}

func TestDOMSetParentRejectsUnknownReferents(t *testing.T) {
	dom := rbxcore.NewDOM()
	a := rbxcore.NewInstance("Folder")
	require.NoError(t, dom.Insert(dom.RootReferent(), a))

	unknown := rbxcore.NewInstance("Folder")
	require.Error(t, dom.SetParent(unknown.Referent, a.Referent))
	require.Error(t, dom.SetParent(a.Referent, unknown.Referent))
}

func TestDOMWalkOrder(t *testing.T) {
	dom := rbxcore.NewDOM()
	child1 := rbxcore.NewInstance("Part")
	child2 := rbxcore.NewInstance("Part")
	grandchild := rbxcore.NewInstance("Part")
	require.NoError(t, dom.Insert(dom.RootReferent(), child1))
	require.NoError(t, dom.Insert(dom.RootReferent(), child2))
	require.NoError(t, dom.Insert(dom.RootReferent(), grandchild))
	require.NoError(t, dom.SetParent(grandchild.Referent, child1.Referent))

	var order []rbxcore.Referent
	dom.Walk(func(inst *rbxcore.Instance) bool {
		order = append(order, inst.Referent)
		return true
	})
	require.Equal(t, []rbxcore.Referent{dom.RootReferent(), child1.Referent, grandchild.Referent, child2.Referent}, order)
}

func TestDOMWalkStopsEarly(t *testing.T) {
	dom := rbxcore.NewDOM()
	a := rbxcore.NewInstance("Folder")
	require.NoError(t, dom.Insert(dom.RootReferent(), a))

	var seen int
	dom.Walk(func(inst *rbxcore.Instance) bool {
		seen++
		return false
	})
	require.Equal(t, 1, seen)
}

func TestDOMRemoveDropsSubtree(t *testing.T) {
	dom := rbxcore.NewDOM()
	folder := rbxcore.NewInstance("Folder")
	child := rbxcore.NewInstance("Part")
	require.NoError(t, dom.Insert(dom.RootReferent(), folder))
	require.NoError(t, dom.Insert(dom.RootReferent(), child))
	require.NoError(t, dom.SetParent(child.Referent, folder.Referent))

	dom.Remove(folder.Referent)
	require.Nil(t, dom.Get(folder.Referent))
	require.Nil(t, dom.Get(child.Referent))
	require.Equal(t, 1, dom.Len())
}

func TestDOMRemoveRootIsNoop(t *testing.T) {
	dom := rbxcore.NewDOM()
	dom.Remove(dom.RootReferent())
	require.NotNil(t, dom.Get(dom.RootReferent()))
	require.Equal(t, 1, dom.Len())
}

func TestDOMCloneCopiesSubtreeWithFreshReferents(t *testing.T) {
	src := rbxcore.NewDOM()
	folder := rbxcore.NewInstance("Folder")
	folder.Properties["Name"] = rbxcore.ValueString("Root")
	child := rbxcore.NewInstance("Part")
	child.Properties["Name"] = rbxcore.ValueString("Child")
	require.NoError(t, src.Insert(src.RootReferent(), folder))
	require.NoError(t, src.Insert(src.RootReferent(), child))
	require.NoError(t, src.SetParent(child.Referent, folder.Referent))

	dst := rbxcore.NewDOM()
	cloneRef, err := src.Clone(folder.Referent, dst)
	require.NoError(t, err)
	require.NotEqual(t, folder.Referent, cloneRef)
	require.Equal(t, dst.RootReferent(), dst.Parent(cloneRef).Referent)

	clone := dst.Get(cloneRef)
	require.Equal(t, "Root", clone.Name())
	children := dst.Children(cloneRef)
	require.Len(t, children, 1)
	require.Equal(t, "Child", children[0].Name())
	require.NotEqual(t, child.Referent, children[0].Referent)

	// Source is untouched.
	require.Equal(t, 3, src.Len())
}

func TestDOMCloneUnknownReferent(t *testing.T) {
	src := rbxcore.NewDOM()
	dst := rbxcore.NewDOM()
	_, err := src.Clone(rbxcore.NewReferent(), dst)
	require.Error(t, err)
}
