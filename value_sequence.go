package rbxcore

import (
	"fmt"
	"strings"
)

// ValueNumberSequenceKeypoint is one keypoint of a ValueNumberSequence.
type ValueNumberSequenceKeypoint struct {
	Time     float32
	Value    float32
	Envelope float32
}

// ValueNumberSequence is an ordered list of keypoints describing a
// piecewise-linear curve sampled over [0, 1].
type ValueNumberSequence []ValueNumberSequenceKeypoint

func (ValueNumberSequence) Type() Type { return TypeNumberSequence }
func (v ValueNumberSequence) String() string {
	var b strings.Builder
	for i, k := range v {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "{%g, %g, %g}", k.Time, k.Value, k.Envelope)
	}
	return b.String()
}
func (v ValueNumberSequence) Copy() Value {
	c := make(ValueNumberSequence, len(v))
	copy(c, v)
	return c
}

// ValueColorSequenceKeypoint is one keypoint of a ValueColorSequence. The
// envelope field is preserved on decode and always written back as zero on
// encode, since Roblox itself ignores it (see the bin package's columnar
// type notes).
type ValueColorSequenceKeypoint struct {
	Time     float32
	Value    ValueColor3
	Envelope float32
}

// ValueColorSequence is an ordered list of keypoints describing a
// piecewise-linear color curve sampled over [0, 1].
type ValueColorSequence []ValueColorSequenceKeypoint

func (ValueColorSequence) Type() Type { return TypeColorSequence }
func (v ValueColorSequence) String() string {
	var b strings.Builder
	for i, k := range v {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "{%g, %s}", k.Time, k.Value.String())
	}
	return b.String()
}
func (v ValueColorSequence) Copy() Value {
	c := make(ValueColorSequence, len(v))
	copy(c, v)
	return c
}
