package bin

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/robloxapi/rbxcore"
	"github.com/stretchr/testify/require"
)

// The helpers below assemble file bytes directly from literal field values,
// independent of this package's own writeHeader/writeRawChunk/column
// encoders, so a decoder bug that happens to agree with a matching encoder
// bug cannot hide behind an Encode-then-Decode round trip. This mirrors the
// teacher's own format_test.go, which hardcodes full file contents as a
// byte string rather than building them through RobloxCodec.Encode.

func u16le(v uint16) []byte {
	b := make([]byte, 2)
	binary.LittleEndian.PutUint16(b, v)
	return b
}

func u32le(v uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v)
	return b
}

func lenPrefixed(s string) []byte {
	return append(u32le(uint32(len(s))), []byte(s)...)
}

func zigzag32(n int32) uint32 {
	return uint32((n << 1) ^ (n >> 31))
}

// column32 reproduces the format's columnar byte layout for already
// zigzag-folded 32-bit words: for each byte position (most significant
// first), the byte from every value in turn, before moving to the next
// byte position. Written independently of this package's
// interleave/deinterleave so a fixture built with it can't share a bug
// with the decoder it exercises. With exactly one value this degenerates
// to its plain big-endian bytes.
func column32(values ...uint32) []byte {
	out := make([]byte, 0, len(values)*4)
	for k := uint(0); k < 4; k++ {
		shift := 8 * (3 - k)
		for _, v := range values {
			out = append(out, byte(v>>shift))
		}
	}
	return out
}

// fileFixture assembles a complete file from raw chunk payloads, written by
// hand for each scenario below.
func fileFixture(classCount, instanceCount uint32, chunks ...[]byte) []byte {
	var buf []byte
	buf = append(buf, []byte("<roblox!\x89\xff\x0d\x0a\x1a\n")...)
	buf = append(buf, u16le(0)...) // version
	buf = append(buf, u32le(classCount)...)
	buf = append(buf, u32le(instanceCount)...)
	buf = append(buf, make([]byte, 8)...) // reserved
	for _, c := range chunks {
		buf = append(buf, c...)
	}
	return buf
}

func rawChunkFixture(name string, payload []byte) []byte {
	var buf []byte
	buf = append(buf, []byte(name)...)
	buf = append(buf, u32le(0)...) // compressed length: 0 means uncompressed
	buf = append(buf, u32le(uint32(len(payload)))...)
	buf = append(buf, u32le(0)...) // reserved
	buf = append(buf, payload...)
	return buf
}

func endChunkFixture() []byte {
	return rawChunkFixture("END\x00", nil)
}

// TestDecodeEmptyFileFixture is spec.md §8 scenario 1: a file with no
// classes or instances decodes to a DOM containing only the synthetic
// DataModel root, with no children.
func TestDecodeEmptyFileFixture(t *testing.T) {
	prnt := append([]byte{0}, u32le(0)...) // version 0, count 0
	data := fileFixture(0, 0,
		rawChunkFixture(chunkNameParent, prnt),
		endChunkFixture(),
	)

	got, result, err := NewDecoder().Decode(bytes.NewReader(data), DecodeOptions{})
	require.NoError(t, err)
	require.Empty(t, result.Warnings)
	require.Equal(t, 1, got.Len())
	require.Equal(t, "DataModel", got.Root().ClassName)
	require.Empty(t, got.Children(got.RootReferent()))
}

// TestDecodeOneFolderFixture is spec.md §8 scenario 2: a file with a single
// Folder instance named "F1" decodes to a DOM whose root has exactly that
// one child.
func TestDecodeOneFolderFixture(t *testing.T) {
	inst := append(u32le(0), lenPrefixed("Folder")...) // typeID 0, className
	inst = append(inst, 0)                             // format: not a service
	inst = append(inst, u32le(1)...)                   // instance count
	inst = append(inst, column32(zigzag32(0))...)      // referent column: wire 0

	prop := append(u32le(0), lenPrefixed("Name")...) // typeID 0, property name
	prop = append(prop, byte(wireString))
	prop = append(prop, lenPrefixed("F1")...) // 1-row string column

	prnt := []byte{0}                            // version
	prnt = append(prnt, u32le(1)...)              // count
	prnt = append(prnt, column32(zigzag32(0))...) // subject column: wire 0
	prnt = append(prnt, column32(zigzag32(-1))...) // parent column: top-level

	data := fileFixture(1, 1,
		rawChunkFixture(chunkNameInst, inst),
		rawChunkFixture(chunkNameProp, prop),
		rawChunkFixture(chunkNameParent, prnt),
		endChunkFixture(),
	)

	got, result, err := NewDecoder().Decode(bytes.NewReader(data), DecodeOptions{})
	require.NoError(t, err)
	require.Empty(t, result.Warnings)
	require.Equal(t, 2, got.Len())

	children := got.Children(got.RootReferent())
	require.Len(t, children, 1)
	require.Equal(t, "Folder", children[0].ClassName)
	require.Equal(t, "F1", children[0].Name())
}

// TestDecodeReferenceChainFixture is spec.md §8 scenario 4: an ObjectValue
// whose Value property names another instance's wire referent resolves to
// that instance once both are in the DOM.
func TestDecodeReferenceChainFixture(t *testing.T) {
	folderInst := append(u32le(0), lenPrefixed("Folder")...)
	folderInst = append(folderInst, 0)
	folderInst = append(folderInst, u32le(1)...)
	folderInst = append(folderInst, column32(zigzag32(0))...) // wire 0

	objInst := append(u32le(1), lenPrefixed("ObjectValue")...)
	objInst = append(objInst, 0)
	objInst = append(objInst, u32le(1)...)
	objInst = append(objInst, column32(zigzag32(1))...) // wire 1

	prop := append(u32le(1), lenPrefixed("Value")...) // on ObjectValue (typeID 1)
	prop = append(prop, byte(wireRef))
	prop = append(prop, column32(zigzag32(0))...) // points at wire 0 (the Folder)

	prnt := []byte{0}
	prnt = append(prnt, u32le(2)...)
	// subjects: wire 0, then wire 1 (delta-encoded: 0, +1), columnar byte-plane order
	prnt = append(prnt, column32(zigzag32(0), zigzag32(1))...)
	// parents: both top-level (delta-encoded: -1, +0)
	prnt = append(prnt, column32(zigzag32(-1), zigzag32(0))...)

	data := fileFixture(2, 2,
		rawChunkFixture(chunkNameInst, folderInst),
		rawChunkFixture(chunkNameInst, objInst),
		rawChunkFixture(chunkNameProp, prop),
		rawChunkFixture(chunkNameParent, prnt),
		endChunkFixture(),
	)

	got, result, err := NewDecoder().Decode(bytes.NewReader(data), DecodeOptions{})
	require.NoError(t, err)
	require.Empty(t, result.Warnings)
	require.Equal(t, 3, got.Len())

	children := got.Children(got.RootReferent())
	require.Len(t, children, 2)

	var folderOut, objOut *rbxcore.Instance
	for _, c := range children {
		switch c.ClassName {
		case "Folder":
			folderOut = c
		case "ObjectValue":
			objOut = c
		}
	}
	require.NotNil(t, folderOut)
	require.NotNil(t, objOut)

	ref := objOut.Properties["Value"].(rbxcore.ValueReference)
	require.Equal(t, folderOut.Referent, ref.Referent)
}

// TestDecodeRejectsTruncatedFixture sanity-checks that a file ending before
// a PRNT chunk (required by the format) is rejected rather than silently
// accepted.
func TestDecodeRejectsTruncatedFixture(t *testing.T) {
	data := fileFixture(0, 0, endChunkFixture())
	_, _, err := NewDecoder().Decode(bytes.NewReader(data), DecodeOptions{})
	require.Error(t, err)
}
