package rbxcore

import "fmt"

// ContentSourceType tags which form of source a ValueContent holds.
type ContentSourceType byte

const (
	ContentSourceNone ContentSourceType = iota
	ContentSourceURI
	ContentSourceReferent
)

// ValueContent is a tagged union over the ways an asset reference can be
// expressed: absent, a URI string, or a referent to an Instance (typically
// a content-producing object elsewhere in the same file). The trailing
// bytes the wire format reserves after the tagged payload are preserved
// verbatim on round-trip even though this module assigns them no meaning.
type ValueContent struct {
	SourceType       ContentSourceType
	URI              string
	Object           Referent
	externalReserved []byte
}

func (ValueContent) Type() Type { return TypeContent }
func (v ValueContent) String() string {
	switch v.SourceType {
	case ContentSourceURI:
		return v.URI
	case ContentSourceReferent:
		return fmt.Sprintf("<object %s>", v.Object.String())
	default:
		return "<none>"
	}
}
func (v ValueContent) Copy() Value {
	c := v
	if v.externalReserved != nil {
		c.externalReserved = append([]byte(nil), v.externalReserved...)
	}
	return c
}

// ExternalReserved returns the raw trailer bytes read alongside this value,
// preserved only so that re-encoding can reproduce them exactly.
func (v ValueContent) ExternalReserved() []byte { return v.externalReserved }

// WithExternalReserved returns a copy of v carrying the given trailer bytes.
func (v ValueContent) WithExternalReserved(b []byte) ValueContent {
	v.externalReserved = b
	return v
}
