package bin

import (
	"encoding/binary"
	"fmt"
	"math"
)

// interleave transposes bytes in place, viewing the array as `length` rows
// of nvalues columns become nvalues rows of `length` columns — i.e. byte i
// of every fixed-width value is grouped together. The matrix-transpose
// algorithm and its in-place permutation-cycle fallback for the
// non-square case are carried as-is from the teacher (rbxl/arrays.go),
// since the permutation math is an implementation detail of a fixed
// transform, not a design choice.
func interleave(data []byte, width int) error {
	if width <= 0 {
		return fmt.Errorf("bin: interleave width must be positive")
	}
	if len(data)%width != 0 {
		return fmt.Errorf("bin: interleave width must divide data length")
	}

	cols := width
	rows := len(data) / width
	if rows == cols {
		for r := 0; r < rows; r++ {
			for c := 0; c < r; c++ {
				data[r*cols+c], data[c*cols+r] = data[c*cols+r], data[r*cols+c]
			}
		}
		return nil
	}

loop:
	for start := range data {
		next := (start%rows)*cols + start/rows
		if next <= start {
			continue loop
		}
		for {
			if next = (next%rows)*cols + next/rows; next < start {
				continue loop
			} else if next == start {
				break
			}
		}
		for next, tmp := start, data[start]; ; {
			i := (next%rows)*cols + next/rows
			if i == start {
				data[next] = tmp
			} else {
				data[next] = data[i]
			}
			if next = i; next <= start {
				break
			}
		}
	}
	return nil
}

// deinterleave undoes interleave, given the width of the original values.
func deinterleave(data []byte, width int) error {
	if width <= 0 {
		return fmt.Errorf("bin: deinterleave width must be positive")
	}
	if len(data)%width != 0 {
		return fmt.Errorf("bin: deinterleave width must divide data length")
	}
	if len(data) == 0 {
		return nil
	}
	return interleave(data, len(data)/width)
}

func zigzagEncode32(n int32) uint32 {
	return uint32((n << 1) ^ (n >> 31))
}

func zigzagDecode32(n uint32) int32 {
	return int32((n >> 1) ^ uint32((int32(n&1)<<31)>>31))
}

func zigzagEncode64(n int64) uint64 {
	return uint64((n << 1) ^ (n >> 63))
}

func zigzagDecode64(n uint64) int64 {
	return int64((n >> 1) ^ uint64((int64(n&1)<<63)>>63))
}

// rotateFloatBits moves the sign bit of an IEEE-754 float32 from the MSB
// to the LSB, making runs of similarly-signed values share leading bytes
// after interleaving.
func rotateFloatBits(f float32) uint32 {
	n := math.Float32bits(f)
	return (n << 1) | (n >> 31)
}

func unrotateFloatBits(n uint32) float32 {
	bits := (n >> 1) | (n << 31)
	return math.Float32frombits(bits)
}

// encodeInt32Column zig-zags then interleaves a column of signed 32-bit
// integers, the shape used by Int32, UDim/UDim2 offsets, Content source
// types and (after delta encoding) referent arrays.
func encodeInt32Column(values []int32) []byte {
	buf := make([]byte, len(values)*4)
	for i, v := range values {
		binary.BigEndian.PutUint32(buf[i*4:i*4+4], zigzagEncode32(v))
	}
	interleave(buf, 4)
	return buf
}

func decodeInt32Column(buf []byte, n int) ([]int32, error) {
	if len(buf) != n*4 {
		return nil, fmt.Errorf("bin: int32 column expects %d bytes, got %d", n*4, len(buf))
	}
	cp := append([]byte(nil), buf...)
	if err := deinterleave(cp, 4); err != nil {
		return nil, err
	}
	out := make([]int32, n)
	for i := range out {
		out[i] = zigzagDecode32(binary.BigEndian.Uint32(cp[i*4 : i*4+4]))
	}
	return out, nil
}

// encodeUint32Column interleaves a column of unsigned 32-bit integers
// without zig-zag folding, used for BrickColor indices, Enum ordinals and
// SharedString pool indices.
func encodeUint32Column(values []uint32) []byte {
	buf := make([]byte, len(values)*4)
	for i, v := range values {
		binary.BigEndian.PutUint32(buf[i*4:i*4+4], v)
	}
	interleave(buf, 4)
	return buf
}

func decodeUint32Column(buf []byte, n int) ([]uint32, error) {
	if len(buf) != n*4 {
		return nil, fmt.Errorf("bin: uint32 column expects %d bytes, got %d", n*4, len(buf))
	}
	cp := append([]byte(nil), buf...)
	if err := deinterleave(cp, 4); err != nil {
		return nil, err
	}
	out := make([]uint32, n)
	for i := range out {
		out[i] = binary.BigEndian.Uint32(cp[i*4 : i*4+4])
	}
	return out, nil
}

func encodeFloat32Column(values []float32) []byte {
	buf := make([]byte, len(values)*4)
	for i, v := range values {
		binary.BigEndian.PutUint32(buf[i*4:i*4+4], rotateFloatBits(v))
	}
	interleave(buf, 4)
	return buf
}

func decodeFloat32Column(buf []byte, n int) ([]float32, error) {
	if len(buf) != n*4 {
		return nil, fmt.Errorf("bin: float32 column expects %d bytes, got %d", n*4, len(buf))
	}
	cp := append([]byte(nil), buf...)
	if err := deinterleave(cp, 4); err != nil {
		return nil, err
	}
	out := make([]float32, n)
	for i := range out {
		out[i] = unrotateFloatBits(binary.BigEndian.Uint32(cp[i*4 : i*4+4]))
	}
	return out, nil
}

func encodeInt64Column(values []int64) []byte {
	buf := make([]byte, len(values)*8)
	for i, v := range values {
		binary.BigEndian.PutUint64(buf[i*8:i*8+8], zigzagEncode64(v))
	}
	interleave(buf, 8)
	return buf
}

func decodeInt64Column(buf []byte, n int) ([]int64, error) {
	if len(buf) != n*8 {
		return nil, fmt.Errorf("bin: int64 column expects %d bytes, got %d", n*8, len(buf))
	}
	cp := append([]byte(nil), buf...)
	if err := deinterleave(cp, 8); err != nil {
		return nil, err
	}
	out := make([]int64, n)
	for i := range out {
		out[i] = zigzagDecode64(binary.BigEndian.Uint64(cp[i*8 : i*8+8]))
	}
	return out, nil
}

// encodeReferentColumn delta-encodes a list of dense wire referents (first
// absolute, rest relative to the previous), then zig-zags and interleaves
// them as a signed 32-bit column.
func encodeReferentColumn(refs []int32) []byte {
	deltas := make([]int32, len(refs))
	var prev int32
	for i, r := range refs {
		if i == 0 {
			deltas[i] = r
		} else {
			deltas[i] = r - prev
		}
		prev = r
	}
	return encodeInt32Column(deltas)
}

func decodeReferentColumn(buf []byte, n int) ([]int32, error) {
	deltas, err := decodeInt32Column(buf, n)
	if err != nil {
		return nil, err
	}
	out := make([]int32, n)
	var prev int32
	for i, d := range deltas {
		if i == 0 {
			out[i] = d
		} else {
			out[i] = prev + d
		}
		prev = out[i]
	}
	return out, nil
}
