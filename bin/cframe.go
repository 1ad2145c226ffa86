package bin

import "math"

// rotationIDCount is the number of the 36 possible orthonormal-axis-aligned
// ids that actually name one of the 24 basic rotation matrices; the rest
// are either the identity's degenerate forms or produce invalid matrices
// and are never written.
const rotationIDCount = 24

var negZero = float32(math.Copysign(0, -1))

// rotationMatrixByID is the lookup table from a CFrame's single rotation-id
// byte to its 3x3 rotation matrix, row-major. Byte 0x00 means "no special
// id, a full 9-float matrix follows instead" and is handled by the caller,
// not present here. The table itself, including its negative-zero entries,
// is carried over from the teacher (rbxl/cframe.go) rather than
// re-derived, since it is a fixed enumeration of Roblox's basic rotations
// and any independent derivation would just have to reproduce it exactly.
var rotationMatrixByID = map[byte][9]float32{
	0x02: {+1, +0, +0, +0, +1, +0, +0, +0, +1},
	0x03: {+1, +0, +0, +0, +0, -1, +0, +1, +0},
	0x05: {+1, +0, +0, +0, -1, +0, +0, +0, -1},
	0x06: {+1, +0, negZero, +0, +0, +1, +0, -1, +0},
	0x07: {+0, +1, +0, +1, +0, +0, +0, +0, -1},
	0x09: {+0, +0, +1, +1, +0, +0, +0, +1, +0},
	0x0A: {+0, -1, +0, +1, +0, negZero, +0, +0, +1},
	0x0C: {+0, +0, -1, +1, +0, +0, +0, -1, +0},
	0x0D: {+0, +1, +0, +0, +0, +1, +1, +0, +0},
	0x0E: {+0, +0, -1, +0, +1, +0, +1, +0, +0},
	0x10: {+0, -1, +0, +0, +0, -1, +1, +0, +0},
	0x11: {+0, +0, +1, +0, -1, +0, +1, +0, negZero},
	0x14: {-1, +0, +0, +0, +1, +0, +0, +0, -1},
	0x15: {-1, +0, +0, +0, +0, +1, +0, +1, negZero},
	0x17: {-1, +0, +0, +0, -1, +0, +0, +0, +1},
	0x18: {-1, +0, negZero, +0, +0, -1, +0, -1, negZero},
	0x19: {+0, +1, negZero, -1, +0, +0, +0, +0, +1},
	0x1B: {+0, +0, -1, -1, +0, +0, +0, +1, +0},
	0x1C: {+0, -1, negZero, -1, +0, negZero, +0, +0, -1},
	0x1E: {+0, +0, +1, -1, +0, +0, +0, -1, +0},
	0x1F: {+0, +1, +0, +0, +0, -1, -1, +0, +0},
	0x20: {+0, +0, +1, +0, +1, negZero, -1, +0, +0},
	0x22: {+0, -1, +0, +0, +0, +1, -1, +0, +0},
	0x23: {+0, +0, -1, +0, -1, negZero, -1, +0, negZero},
}

var rotationIDByMatrix map[[9]float32]byte

func init() {
	rotationIDByMatrix = make(map[[9]float32]byte, len(rotationMatrixByID))
	for id, m := range rotationMatrixByID {
		rotationIDByMatrix[m] = id
	}
}

// rotationIDForMatrix returns the rotation-id byte for m and true if m is
// one of the 24 basic rotations, or (0, false) if a full matrix must be
// written instead.
func rotationIDForMatrix(m [9]float32) (byte, bool) {
	id, ok := rotationIDByMatrix[m]
	return id, ok
}

// matrixForRotationID returns the rotation matrix for a nonzero id, or
// false if id is not in the table; decodeCFrameBlock turns that false into
// BadRotationID.
func matrixForRotationID(id byte) ([9]float32, bool) {
	m, ok := rotationMatrixByID[id]
	return m, ok
}
