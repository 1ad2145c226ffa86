package rbxcore

// ValueReference points at another Instance by Referent rather than by Go
// pointer. The DOM owns all instances by referent in a flat map; properties
// of this type are edges in that graph, not ownership links, which is what
// lets the graph be cyclic without leaking or double-freeing anything.
type ValueReference struct {
	Referent Referent
}

func (ValueReference) Type() Type       { return TypeReference }
func (v ValueReference) String() string { return v.Referent.String() }
func (v ValueReference) Copy() Value    { return v }
