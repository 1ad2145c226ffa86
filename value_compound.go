package rbxcore

import "fmt"

// ValueUDim is a scale/offset pair used for GUI layout.
type ValueUDim struct {
	Scale  float32
	Offset int32
}

func (ValueUDim) Type() Type { return TypeUDim }
func (v ValueUDim) String() string {
	return fmt.Sprintf("{%g, %d}", v.Scale, v.Offset)
}
func (v ValueUDim) Copy() Value { return v }

// ValueUDim2 is a pair of ValueUDims, one per axis.
type ValueUDim2 struct {
	X, Y ValueUDim
}

func (ValueUDim2) Type() Type { return TypeUDim2 }
func (v ValueUDim2) String() string {
	return fmt.Sprintf("{%s, %s}", v.X.String(), v.Y.String())
}
func (v ValueUDim2) Copy() Value { return v }

// ValueVector2 is a pair of single-precision floats.
type ValueVector2 struct {
	X, Y float32
}

func (ValueVector2) Type() Type { return TypeVector2 }
func (v ValueVector2) String() string {
	return fmt.Sprintf("{%g, %g}", v.X, v.Y)
}
func (v ValueVector2) Copy() Value { return v }

// ValueVector3 is a triple of single-precision floats.
type ValueVector3 struct {
	X, Y, Z float32
}

func (ValueVector3) Type() Type { return TypeVector3 }
func (v ValueVector3) String() string {
	return fmt.Sprintf("{%g, %g, %g}", v.X, v.Y, v.Z)
}
func (v ValueVector3) Copy() Value { return v }

// ValueVector3int16 is a triple of 16-bit integers.
type ValueVector3int16 struct {
	X, Y, Z int16
}

func (ValueVector3int16) Type() Type { return TypeVector3int16 }
func (v ValueVector3int16) String() string {
	return fmt.Sprintf("{%d, %d, %d}", v.X, v.Y, v.Z)
}
func (v ValueVector3int16) Copy() Value { return v }

// ValueRay is an origin/direction pair.
type ValueRay struct {
	Origin, Direction ValueVector3
}

func (ValueRay) Type() Type { return TypeRay }
func (v ValueRay) String() string {
	return fmt.Sprintf("{%s, %s}", v.Origin.String(), v.Direction.String())
}
func (v ValueRay) Copy() Value { return v }

// ValueFaces is a bit set over the six cube faces: Right, Top, Back, Left,
// Bottom, Front, from LSB to MSB. Only the low 6 bits are meaningful.
type ValueFaces byte

func (ValueFaces) Type() Type       { return TypeFaces }
func (v ValueFaces) String() string { return fmt.Sprintf("0x%02X", byte(v)) }
func (v ValueFaces) Copy() Value    { return v }

// ValueAxes is a bit set over the three axes: X, Y, Z, from LSB to MSB.
// Only the low 3 bits are meaningful.
type ValueAxes byte

func (ValueAxes) Type() Type       { return TypeAxes }
func (v ValueAxes) String() string { return fmt.Sprintf("0x%02X", byte(v)) }
func (v ValueAxes) Copy() Value    { return v }

// ValueColor3 is a triple of single-precision color channels in [0, 1].
type ValueColor3 struct {
	R, G, B float32
}

func (ValueColor3) Type() Type { return TypeColor3 }
func (v ValueColor3) String() string {
	return fmt.Sprintf("{%g, %g, %g}", v.R, v.G, v.B)
}
func (v ValueColor3) Copy() Value { return v }

// ValueColor3uint8 is a triple of byte color channels.
type ValueColor3uint8 struct {
	R, G, B byte
}

func (ValueColor3uint8) Type() Type { return TypeColor3uint8 }
func (v ValueColor3uint8) String() string {
	return fmt.Sprintf("{%d, %d, %d}", v.R, v.G, v.B)
}
func (v ValueColor3uint8) Copy() Value { return v }

// ValueRect is an axis-aligned 2D rectangle.
type ValueRect struct {
	Min, Max ValueVector2
}

func (ValueRect) Type() Type { return TypeRect }
func (v ValueRect) String() string {
	return fmt.Sprintf("{%s, %s}", v.Min.String(), v.Max.String())
}
func (v ValueRect) Copy() Value { return v }

// ValueNumberRange is an inclusive [Min, Max] range.
type ValueNumberRange struct {
	Min, Max float32
}

func (ValueNumberRange) Type() Type { return TypeNumberRange }
func (v ValueNumberRange) String() string {
	return fmt.Sprintf("{%g, %g}", v.Min, v.Max)
}
func (v ValueNumberRange) Copy() Value { return v }

// ValuePhysicalProperties holds a custom physical material override. When
// Custom is false, the instance uses the material's default physical
// properties and the remaining fields are meaningless.
type ValuePhysicalProperties struct {
	Custom           bool
	Density          float32
	Friction         float32
	Elasticity       float32
	FrictionWeight   float32
	ElasticityWeight float32
	MassWeight       float32
}

func (ValuePhysicalProperties) Type() Type { return TypePhysicalProperties }
func (v ValuePhysicalProperties) String() string {
	if !v.Custom {
		return "<default>"
	}
	return fmt.Sprintf("{%g, %g, %g, %g, %g, %g}", v.Density, v.Friction, v.Elasticity, v.FrictionWeight, v.ElasticityWeight, v.MassWeight)
}
func (v ValuePhysicalProperties) Copy() Value { return v }
