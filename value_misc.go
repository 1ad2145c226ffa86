package rbxcore

import (
	"encoding/binary"
	"fmt"
	"math"
	"sort"
	"strings"
)

// ValueTags is a set of free-form engine tags attached to an instance. The
// wire format packs them as a single String-typed buffer of NUL-separated
// entries; TagsFromBuffer and the Buffer method convert to and from that
// form.
type ValueTags []string

func (ValueTags) Type() Type       { return TypeTags }
func (v ValueTags) String() string { return strings.Join(v, ", ") }
func (v ValueTags) Copy() Value {
	c := make(ValueTags, len(v))
	copy(c, v)
	return c
}

// Buffer encodes the tag set as NUL-separated bytes, the form the wire
// format stores under a plain String wire type.
func (v ValueTags) Buffer() []byte {
	return []byte(strings.Join(v, "\x00"))
}

// TagsFromBuffer decodes a NUL-separated tag buffer as produced by Buffer.
func TagsFromBuffer(buf []byte) ValueTags {
	if len(buf) == 0 {
		return nil
	}
	s := string(buf)
	s = strings.TrimSuffix(s, "\x00")
	if s == "" {
		return ValueTags{}
	}
	return ValueTags(strings.Split(s, "\x00"))
}

// ValueAttributes holds an instance's ad-hoc key/value attribute table.
// Roblox's real internal attribute wire format is an undocumented,
// versioned binary encoding; this module represents the canonical type as
// a plain string-keyed map and round-trips it through a deliberately
// simplified length-prefixed encoding (see Buffer and AttributesFromBuffer)
// rather than attempting to reproduce the undocumented format byte for
// byte. Only String, Bool, Int32 and Float64 entries survive a round trip.
type ValueAttributes map[string]Value

func (ValueAttributes) Type() Type { return TypeAttributes }
func (v ValueAttributes) String() string {
	var b strings.Builder
	first := true
	for k, val := range v {
		if !first {
			b.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&b, "%s=%s", k, val.String())
	}
	return b.String()
}
func (v ValueAttributes) Copy() Value {
	c := make(ValueAttributes, len(v))
	for k, val := range v {
		c[k] = val.Copy()
	}
	return c
}

const (
	attrTagString byte = iota
	attrTagBool
	attrTagInt32
	attrTagFloat64
)

// Buffer encodes the attribute table as a length-prefixed-key, tagged-value
// sequence, sorted by key for determinism. Only String, Bool, Int32 and
// Float64 entries are supported; other value types are skipped.
func (v ValueAttributes) Buffer() []byte {
	keys := make([]string, 0, len(v))
	for k, val := range v {
		switch val.(type) {
		case ValueString, ValueBool, ValueInt32, ValueFloat64:
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	var buf []byte
	putString := func(s string) {
		var n [4]byte
		binary.LittleEndian.PutUint32(n[:], uint32(len(s)))
		buf = append(buf, n[:]...)
		buf = append(buf, s...)
	}
	for _, k := range keys {
		putString(k)
		switch val := v[k].(type) {
		case ValueString:
			buf = append(buf, attrTagString)
			putString(string(val))
		case ValueBool:
			buf = append(buf, attrTagBool)
			if val {
				buf = append(buf, 1)
			} else {
				buf = append(buf, 0)
			}
		case ValueInt32:
			buf = append(buf, attrTagInt32)
			var n [4]byte
			binary.LittleEndian.PutUint32(n[:], uint32(val))
			buf = append(buf, n[:]...)
		case ValueFloat64:
			buf = append(buf, attrTagFloat64)
			var n [8]byte
			binary.LittleEndian.PutUint64(n[:], math.Float64bits(float64(val)))
			buf = append(buf, n[:]...)
		}
	}
	return buf
}

// AttributesFromBuffer decodes a buffer produced by Buffer. Malformed input
// returns as much as could be parsed before the error, plus the error
// itself.
func AttributesFromBuffer(buf []byte) (ValueAttributes, error) {
	attrs := make(ValueAttributes)
	pos := 0
	readString := func() (string, bool) {
		if pos+4 > len(buf) {
			return "", false
		}
		n := int(binary.LittleEndian.Uint32(buf[pos : pos+4]))
		pos += 4
		if n < 0 || pos+n > len(buf) {
			return "", false
		}
		s := string(buf[pos : pos+n])
		pos += n
		return s, true
	}
	for pos < len(buf) {
		key, ok := readString()
		if !ok {
			return attrs, fmt.Errorf("rbxcore: truncated attribute key")
		}
		if pos >= len(buf) {
			return attrs, fmt.Errorf("rbxcore: truncated attribute tag for %q", key)
		}
		tag := buf[pos]
		pos++
		switch tag {
		case attrTagString:
			s, ok := readString()
			if !ok {
				return attrs, fmt.Errorf("rbxcore: truncated attribute value for %q", key)
			}
			attrs[key] = ValueString(s)
		case attrTagBool:
			if pos >= len(buf) {
				return attrs, fmt.Errorf("rbxcore: truncated attribute value for %q", key)
			}
			attrs[key] = ValueBool(buf[pos] != 0)
			pos++
		case attrTagInt32:
			if pos+4 > len(buf) {
				return attrs, fmt.Errorf("rbxcore: truncated attribute value for %q", key)
			}
			attrs[key] = ValueInt32(int32(binary.LittleEndian.Uint32(buf[pos : pos+4])))
			pos += 4
		case attrTagFloat64:
			if pos+8 > len(buf) {
				return attrs, fmt.Errorf("rbxcore: truncated attribute value for %q", key)
			}
			attrs[key] = ValueFloat64(math.Float64frombits(binary.LittleEndian.Uint64(buf[pos : pos+8])))
			pos += 8
		default:
			return attrs, fmt.Errorf("rbxcore: unknown attribute tag 0x%02X for %q", tag, key)
		}
	}
	return attrs, nil
}

// ValueMaterialColors holds per-material color overrides, canonically
// widened from a String-typed wire property. Like ValueAttributes, the
// real Roblox wire encoding is undocumented; this module stores the raw
// decoded bytes and exposes them unopinionated, since no public
// specification of the per-material-id layout exists to target.
type ValueMaterialColors []byte

func (ValueMaterialColors) Type() Type { return TypeMaterialColors }
func (v ValueMaterialColors) String() string {
	return fmt.Sprintf("<materialcolors, %d bytes>", len(v))
}
func (v ValueMaterialColors) Copy() Value {
	c := make(ValueMaterialColors, len(v))
	copy(c, v)
	return c
}
