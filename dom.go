package rbxcore

import "fmt"

// DOM is a tree of Instances, each addressed by its Referent rather than by
// Go pointer. It is the in-memory analogue of a decoded or to-be-encoded
// place/model file. A DOM always has exactly one root instance; every other
// instance it holds has a parent, directly or transitively, tracing back to
// that root.
type DOM struct {
	instances map[Referent]*Instance
	parent    map[Referent]Referent
	children  map[Referent][]Referent
	root      Referent
}

// NewDOM returns a DOM containing only a synthetic DataModel root instance.
func NewDOM() *DOM {
	root := NewInstance("DataModel")
	root.IsService = true
	return &DOM{
		instances: map[Referent]*Instance{root.Referent: root},
		parent:    make(map[Referent]Referent),
		children:  make(map[Referent][]Referent),
		root:      root.Referent,
	}
}

// Root returns the DOM's single root instance.
func (d *DOM) Root() *Instance {
	return d.instances[d.root]
}

// RootReferent returns the referent of the DOM's root instance.
func (d *DOM) RootReferent() Referent {
	return d.root
}

// Get returns the instance with the given referent, or nil if none exists.
func (d *DOM) Get(r Referent) *Instance {
	return d.instances[r]
}

// Parent returns the parent of inst's referent, or nil if it is the DOM root
// or unknown to this DOM.
func (d *DOM) Parent(r Referent) *Instance {
	p, ok := d.parent[r]
	if !ok {
		return nil
	}
	return d.instances[p]
}

// Children returns the direct children of r, in insertion order.
func (d *DOM) Children(r Referent) []*Instance {
	refs := d.children[r]
	list := make([]*Instance, 0, len(refs))
	for _, c := range refs {
		list = append(list, d.instances[c])
	}
	return list
}

// Insert adds inst to the DOM as a child of parent. parent must already be
// present in the DOM, typically the DOM's root (see RootReferent) or one of
// its descendants. It is an error to insert a referent that already exists
// in this DOM, or to name an unknown parent.
func (d *DOM) Insert(parent Referent, inst *Instance) error {
	if inst == nil {
		return fmt.Errorf("rbxcore: cannot insert nil instance")
	}
	if _, exists := d.instances[inst.Referent]; exists {
		return fmt.Errorf("rbxcore: referent %s already exists in this DOM", inst.Referent)
	}
	if _, ok := d.instances[parent]; !ok {
		return fmt.Errorf("rbxcore: unknown referent %s", parent)
	}
	d.instances[inst.Referent] = inst
	d.parent[inst.Referent] = parent
	d.children[parent] = append(d.children[parent], inst.Referent)
	return nil
}

// SetParent reparents child under parent. If parent is the none referent,
// child is attached directly to the DOM's root. It is an error for child to
// be the DOM's root, for child to equal parent, for parent to be a
// descendant of child (which would create a cycle), or for either referent
// to be unknown to the DOM.
func (d *DOM) SetParent(child, parent Referent) error {
	if child == d.root {
		return fmt.Errorf("rbxcore: cannot reparent the DOM root")
	}
	if _, ok := d.instances[child]; !ok {
		return fmt.Errorf("rbxcore: unknown referent %s", child)
	}
	if parent.IsNone() {
		parent = d.root
	}
	if child == parent {
		return fmt.Errorf("rbxcore: instance %s cannot be its own parent", child)
	}
	if _, ok := d.instances[parent]; !ok {
		return fmt.Errorf("rbxcore: unknown referent %s", parent)
	}
	if d.isDescendantOf(parent, child) {
		return fmt.Errorf("rbxcore: setting parent of %s to %s would create a cycle", child, parent)
	}

	if old, ok := d.parent[child]; ok {
		d.removeChild(old, child)
	}
	d.parent[child] = parent
	d.children[parent] = append(d.children[parent], child)
	return nil
}

// isDescendantOf reports whether candidate is r or a descendant of r.
func (d *DOM) isDescendantOf(candidate, r Referent) bool {
	for cur := candidate; ; {
		if cur == r {
			return true
		}
		next, ok := d.parent[cur]
		if !ok {
			return false
		}
		cur = next
	}
}

func (d *DOM) removeChild(parent, child Referent) {
	siblings := d.children[parent]
	for i, c := range siblings {
		if c == child {
			d.children[parent] = append(siblings[:i], siblings[i+1:]...)
			return
		}
	}
}

// Remove detaches r (and its whole subtree) from the DOM entirely. Removing
// the DOM root is a no-op.
func (d *DOM) Remove(r Referent) {
	if r == d.root {
		return
	}
	for _, child := range append([]Referent(nil), d.children[r]...) {
		d.Remove(child)
	}
	if p, ok := d.parent[r]; ok {
		d.removeChild(p, r)
		delete(d.parent, r)
	}
	delete(d.children, r)
	delete(d.instances, r)
}

// Walk calls fn for every instance reachable from the DOM's root, in
// depth-first, parent-before-children order, starting with the root itself.
// Walk stops early if fn returns false.
func (d *DOM) Walk(fn func(inst *Instance) bool) {
	d.walk(d.root, fn)
}

func (d *DOM) walk(r Referent, fn func(inst *Instance) bool) bool {
	inst := d.instances[r]
	if inst == nil {
		return true
	}
	if !fn(inst) {
		return false
	}
	for _, c := range d.children[r] {
		if !d.walk(c, fn) {
			return false
		}
	}
	return true
}

// Len returns the total number of instances owned by the DOM, including its
// root.
func (d *DOM) Len() int {
	return len(d.instances)
}

// Clone copies the subtree rooted at r into dst, attaching the copy as a
// child of dst's root, assigning fresh referents throughout and preserving
// child order. It returns the referent of the copied subtree's top
// instance, or an error if r is unknown to d.
func (d *DOM) Clone(r Referent, dst *DOM) (Referent, error) {
	if d.instances[r] == nil {
		return Referent{}, fmt.Errorf("rbxcore: unknown referent %s", r)
	}
	clone := d.cloneSubtree(r, dst)
	dst.parent[clone.Referent] = dst.root
	dst.children[dst.root] = append(dst.children[dst.root], clone.Referent)
	return clone.Referent, nil
}

func (d *DOM) cloneSubtree(r Referent, dst *DOM) *Instance {
	clone := d.instances[r].Clone()
	dst.instances[clone.Referent] = clone
	for _, c := range d.children[r] {
		child := d.cloneSubtree(c, dst)
		dst.parent[child.Referent] = clone.Referent
		dst.children[clone.Referent] = append(dst.children[clone.Referent], child.Referent)
	}
	return clone
}
