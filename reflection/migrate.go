package reflection

import (
	"fmt"

	"github.com/robloxapi/rbxcore"
)

// legacyFontNames maps the ordinals of the old Font enum to the family
// name FontFace.Family should carry after migration. Only a representative
// handful are listed; unknown ordinals fail migration rather than guess.
var legacyFontNames = map[uint32]string{
	0: "rbxasset://fonts/families/LegacyArial.json",
	1: "rbxasset://fonts/families/Arial.json",
	2: "rbxasset://fonts/families/ArialBold.json",
	3: "rbxasset://fonts/families/SourceSansPro.json",
	8: "rbxasset://fonts/families/SourceSansBold.json",
}

// MigrateLegacyFont converts a legacy Font enum ordinal into a ValueFont,
// the shape stored by the FontFace property it was replaced by.
func MigrateLegacyFont(old rbxcore.Value) (rbxcore.Value, error) {
	enum, ok := old.(rbxcore.ValueEnum)
	if !ok {
		return nil, fmt.Errorf("reflection: legacy Font migration expects Enum, got %s", old.Type())
	}
	family, ok := legacyFontNames[uint32(enum)]
	if !ok {
		return nil, fmt.Errorf("reflection: unrecognized legacy Font ordinal %d", uint32(enum))
	}
	return rbxcore.ValueFont{Family: family, Weight: 400, Style: 0}, nil
}
