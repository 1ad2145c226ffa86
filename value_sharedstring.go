package rbxcore

import (
	"crypto/md5"
	"fmt"
	"sync/atomic"
)

// SharedString is a de-duplicated byte buffer, pooled by its MD5 hash
// during decode so that many properties can point at one underlying buffer
// instead of each carrying their own copy. The refcount lets a decode-scoped
// pool be discarded while buffers that escaped into long-lived values stay
// alive.
type SharedString struct {
	hash [16]byte
	data []byte
	refs int32
}

// NewSharedString builds a SharedString from data, computing its hash.
func NewSharedString(data []byte) *SharedString {
	buf := make([]byte, len(data))
	copy(buf, data)
	return &SharedString{hash: md5.Sum(buf), data: buf, refs: 1}
}

// Hash returns the 16-byte MD5 hash used as this buffer's pool key.
func (s *SharedString) Hash() [16]byte { return s.hash }

// Bytes returns the buffer's contents. The caller must not modify it.
func (s *SharedString) Bytes() []byte { return s.data }

func (s *SharedString) retain() { atomic.AddInt32(&s.refs, 1) }

// release drops a reference. It never frees anything itself — Go's GC
// handles that once the last reference is gone — but it lets a decode-scoped
// SharedStringPool assert it isn't discarding a buffer still in use.
func (s *SharedString) release() int32 { return atomic.AddInt32(&s.refs, -1) }

// SharedStringPool de-duplicates SharedStrings by hash within the scope of
// a single decode. Entries are addressed by their index in the SSTR chunk.
type SharedStringPool struct {
	byHash  map[[16]byte]*SharedString
	byIndex []*SharedString
}

// NewSharedStringPool returns an empty pool.
func NewSharedStringPool() *SharedStringPool {
	return &SharedStringPool{byHash: make(map[[16]byte]*SharedString)}
}

// Add inserts data into the pool, returning the (possibly pre-existing)
// SharedString for it and its index within the pool.
func (p *SharedStringPool) Add(data []byte) (*SharedString, int) {
	s := NewSharedString(data)
	if existing, ok := p.byHash[s.hash]; ok {
		existing.retain()
		return existing, indexOf(p.byIndex, existing)
	}
	p.byHash[s.hash] = s
	p.byIndex = append(p.byIndex, s)
	return s, len(p.byIndex) - 1
}

// At returns the SharedString stored at index, or nil if out of range.
func (p *SharedStringPool) At(index int) *SharedString {
	if index < 0 || index >= len(p.byIndex) {
		return nil
	}
	return p.byIndex[index]
}

// Len returns the number of distinct buffers in the pool.
func (p *SharedStringPool) Len() int { return len(p.byIndex) }

func indexOf(s []*SharedString, v *SharedString) int {
	for i, e := range s {
		if e == v {
			return i
		}
	}
	return -1
}

// ValueSharedString holds a pooled byte buffer, used for properties whose
// canonical type is SharedString (e.g. mesh and texture content caches).
type ValueSharedString struct {
	Value *SharedString
}

func (ValueSharedString) Type() Type { return TypeSharedString }
func (v ValueSharedString) String() string {
	if v.Value == nil {
		return "<nil>"
	}
	return fmt.Sprintf("<shared, %d bytes>", len(v.Value.Bytes()))
}
func (v ValueSharedString) Copy() Value { return v }

// ValueNetAssetRef is the canonical type a SharedString-typed wire property
// widens to when the reflection database marks it as a network asset
// reference rather than inline content.
type ValueNetAssetRef struct {
	Value *SharedString
}

func (ValueNetAssetRef) Type() Type { return TypeNetAssetRef }
func (v ValueNetAssetRef) String() string {
	if v.Value == nil {
		return "<nil>"
	}
	return fmt.Sprintf("<asset, %d bytes>", len(v.Value.Bytes()))
}
func (v ValueNetAssetRef) Copy() Value { return v }
