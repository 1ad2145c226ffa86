package rbxcore

import "fmt"

// ValueCFrame is a rigid transform: a 3x3 rotation matrix (row-major) plus
// a position. The wire format may compress the rotation to one of 24 basic
// orientations (see the bin package's rotation-ID table); that compression
// is purely a wire-level optimization and is never visible at this level —
// a decoded CFrame always carries the full expanded matrix.
type ValueCFrame struct {
	Position ValueVector3
	Rotation [9]float32
}

func (ValueCFrame) Type() Type { return TypeCFrame }
func (v ValueCFrame) String() string {
	return fmt.Sprintf("{%s, %v}", v.Position.String(), v.Rotation)
}
func (v ValueCFrame) Copy() Value { return v }

// ValueOptionalCFrame is a CFrame that may be absent. A nil Value means
// "none". The wire format stores rotation/position bytes even for a "none"
// entry, but that padding is not observable above the bin package.
type ValueOptionalCFrame struct {
	Value *ValueCFrame
}

func (ValueOptionalCFrame) Type() Type { return TypeOptionalCFrame }
func (v ValueOptionalCFrame) String() string {
	if v.Value == nil {
		return "<none>"
	}
	return v.Value.String()
}
func (v ValueOptionalCFrame) Copy() Value {
	if v.Value == nil {
		return ValueOptionalCFrame{}
	}
	cf := *v.Value
	return ValueOptionalCFrame{Value: &cf}
}
