package rbxcore

import "fmt"

// ValueUniqueId is a process-wide unique identifier assigned to an
// instance: a per-process index, a creation timestamp, and a random
// component, mirroring the fields Roblox's own UniqueId carries. The wire
// encoding stores these big-endian and with the sign bit of Random rotated
// into the low bit (see the bin package); at this level the fields are
// already in their natural form.
type ValueUniqueId struct {
	Index  uint32
	Time   uint32
	Random int64
}

func (ValueUniqueId) Type() Type { return TypeUniqueId }
func (v ValueUniqueId) String() string {
	return fmt.Sprintf("%08x-%08x-%016x", v.Index, v.Time, uint64(v.Random))
}
func (v ValueUniqueId) Copy() Value { return v }
