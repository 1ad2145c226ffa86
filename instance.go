package rbxcore

// Instance is a single node of a Roblox object tree: a class name, a bag of
// named properties, and a position in a DOM's ownership graph. An Instance
// is only ever reached through the DOM that owns it; it does not hold
// pointers to its parent or children, since reference-typed properties
// already let instances refer to each other in arbitrary (even cyclic)
// patterns; keeping the tree structure itself referent-addressed avoids
// adding a second, pointer-based cycle risk on top of that.
type Instance struct {
	Referent Referent

	// ClassName indicates the instance's type, as found in the reflection
	// database.
	ClassName string

	// Properties maps property name to value. The special "Name" property,
	// if present, is what Name returns; instances without one are named
	// after their ClassName.
	Properties map[string]Value

	// IsService indicates whether the instance was marked as a service
	// root when decoded (corresponds to the bin package's INST IsService
	// flag).
	IsService bool
}

// NewInstance creates a new, parentless Instance of the given class with a
// freshly generated referent.
func NewInstance(className string) *Instance {
	return &Instance{
		Referent:   NewReferent(),
		ClassName:  className,
		Properties: make(map[string]Value),
	}
}

// Name returns the instance's Name property if it is a string-typed value,
// or its ClassName otherwise.
func (inst *Instance) Name() string {
	if v, ok := inst.Properties["Name"]; ok {
		if s, ok := v.(ValueString); ok {
			return string(s)
		}
	}
	return inst.ClassName
}

// Clone returns a deep copy of the instance's own fields (properties are
// copied; the clone is not inserted into any DOM and has no parent or
// children — use DOM.Clone to copy a subtree).
func (inst *Instance) Clone() *Instance {
	clone := &Instance{
		Referent:   NewReferent(),
		ClassName:  inst.ClassName,
		IsService:  inst.IsService,
		Properties: make(map[string]Value, len(inst.Properties)),
	}
	for name, v := range inst.Properties {
		clone.Properties[name] = v.Copy()
	}
	return clone
}
