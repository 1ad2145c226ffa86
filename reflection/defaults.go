package reflection

import "github.com/robloxapi/rbxcore"

// Default returns a small, hand-curated reflection database covering the
// classes and properties exercised by this module's own tests: a service
// root, a generic container, a couple of commonly-scripted classes, one
// legacy-to-current property migration, and one property whose canonical
// type widens from the wire type. It is not a reproduction of Roblox's
// full, several-thousand-class API dump — that dump is generated data, not
// a hand-written part of this codec — but callers needing the real thing
// can build their own with New and AddClass.
func Default() *Database {
	d := New()

	d.AddClass(NewClass("DataModel").
		AddProperty(&Property{Name: "Name", Type: rbxcore.TypeString}))
	if c, ok := d.Class("DataModel"); ok {
		c.IsService = true
	}

	d.AddClass(NewClass("Folder").
		AddProperty(&Property{Name: "Name", Type: rbxcore.TypeString}))

	d.AddClass(NewClass("ObjectValue").
		AddProperty(&Property{Name: "Name", Type: rbxcore.TypeString}).
		AddProperty(&Property{Name: "Value", Type: rbxcore.TypeReference}))

	d.AddClass(NewClass("Part").
		AddProperty(&Property{Name: "Name", Type: rbxcore.TypeString}).
		AddProperty(&Property{Name: "Size", Type: rbxcore.TypeVector3}).
		AddProperty(&Property{Name: "CFrame", Type: rbxcore.TypeCFrame}).
		AddProperty(&Property{Name: "Color", Type: rbxcore.TypeColor3uint8}).
		AddProperty(&Property{Name: "Anchored", Type: rbxcore.TypeBool}).
		AddProperty(&Property{Name: "Transparency", Type: rbxcore.TypeFloat32}))

	d.AddClass(NewClass("TextLabel").
		AddProperty(&Property{Name: "Name", Type: rbxcore.TypeString}).
		AddProperty(&Property{Name: "Text", Type: rbxcore.TypeString}).
		AddProperty(&Property{
			Name:          "Font",
			Type:          rbxcore.TypeEnum,
			Serialization: Migrates,
			MigrateTo:     "FontFace",
			MigrateFunc:   MigrateLegacyFont,
		}).
		AddProperty(&Property{Name: "FontFace", Type: rbxcore.TypeFont}))

	d.AddClass(NewClass("Sound").
		AddProperty(&Property{Name: "Name", Type: rbxcore.TypeString}).
		AddProperty(&Property{Name: "SoundId", Type: rbxcore.TypeNetAssetRef}).
		AddProperty(&Property{Name: "Volume", Type: rbxcore.TypeFloat32}))

	return d
}
