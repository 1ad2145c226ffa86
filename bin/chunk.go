package bin

import (
	"encoding/binary"
	"fmt"

	lz4 "github.com/bkaradzic/go-lz4"
)

const (
	chunkNameMeta   = "META"
	chunkNameSSTR   = "SSTR"
	chunkNameInst   = "INST"
	chunkNameProp   = "PROP"
	chunkNameParent = "PRNT"
	chunkNameEnd    = "END\x00"
)

// rawChunk is a chunk's framing (name, compression) and decompressed
// payload, before the payload is interpreted by a specific stage. This is
// the Go analogue of the teacher's rawChunk (rbxl/model.go), collapsed to
// use this package's own accumulating-error reader/writer instead of
// anaminus/parse.
type rawChunk struct {
	name    string
	payload []byte
}

func readRawChunk(r *byteReader) (rawChunk, error) {
	var c rawChunk

	name := r.take(4)
	if r.err != nil {
		return c, IoError{Cause: r.err}
	}
	c.name = string(name)

	compressedLen := r.uint32()
	uncompressedLen := r.uint32()
	_ = r.take(4) // reserved
	if r.err != nil {
		return c, IoError{Cause: r.err}
	}

	if compressedLen == 0 {
		c.payload = r.take(int(uncompressedLen))
		if r.err != nil {
			return c, BadChunk{Name: c.name, Reason: "truncated uncompressed payload"}
		}
		return c, nil
	}

	compressed := r.take(int(compressedLen))
	if r.err != nil {
		return c, BadChunk{Name: c.name, Reason: "truncated compressed payload"}
	}

	// lz4.Decode expects the uncompressed length prefixed to the
	// compressed block, matching what this format's compressed chunks
	// omit (they store it separately in the chunk frame instead).
	framed := make([]byte, 4+len(compressed))
	binary.LittleEndian.PutUint32(framed, uncompressedLen)
	copy(framed[4:], compressed)

	out := make([]byte, uncompressedLen)
	n, err := lz4.Decode(out, framed)
	if err != nil {
		return c, BadChunk{Name: c.name, Reason: "lz4 decompression failed", Cause: err}
	}
	if uint32(len(n)) != uncompressedLen {
		return c, BadChunk{Name: c.name, Reason: fmt.Sprintf("decompressed to %d bytes, expected %d", len(n), uncompressedLen)}
	}
	c.payload = n
	return c, nil
}

func writeRawChunk(w *byteWriter, name string, payload []byte, compress bool) error {
	w.bytes([]byte(name))

	if !compress {
		w.uint32(0)
		w.uint32(uint32(len(payload)))
		w.uint32(0)
		w.bytes(payload)
		return nil
	}

	var dst []byte
	framed, err := lz4.Encode(dst, payload)
	if err != nil {
		return BadChunk{Name: name, Reason: "lz4 compression failed", Cause: err}
	}
	// lz4.Encode prepends the uncompressed length, which this format's
	// chunk frame already carries separately, so it is stripped here.
	compressed := framed[4:]

	w.uint32(uint32(len(compressed)))
	w.uint32(uint32(len(payload)))
	w.uint32(0)
	w.bytes(compressed)
	return nil
}
