package rbxcore

import "fmt"

// ValueFont describes a font family together with its weight, style, and an
// optional cached CDN face id, replacing the legacy Font enum property
// (see the reflection package's migration rules).
type ValueFont struct {
	Family       string
	Weight       uint16
	Style        byte
	CachedFaceId string
}

func (ValueFont) Type() Type { return TypeFont }
func (v ValueFont) String() string {
	return fmt.Sprintf("%s (weight %d, style %d)", v.Family, v.Weight, v.Style)
}
func (v ValueFont) Copy() Value { return v }
