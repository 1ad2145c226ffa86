package bin

import (
	"fmt"
	"io"
	"sort"

	"github.com/robloxapi/rbxcore"
)

// encClassInfo is the staging-pass bookkeeping for one class: the dense
// wire type-id assigned to it (by first-appearance order) and the
// instances and wire referents belonging to it, in traversal order. This
// plays the role of the teacher's chunkInstance staging record
// (rbxl/model.go), built fresh on every Encode instead of being threaded
// through as its own chunk type.
type encClassInfo struct {
	typeID    uint32
	className string
	isService bool
	instances []*rbxcore.Instance
	wireRefs  []int32
}

type encProp struct {
	name    string
	wt      wireType
	payload []byte
}

// Encoder writes a DOM out in the binary container format.
type Encoder struct{}

// NewEncoder returns a ready-to-use Encoder. Encoder holds no state of its
// own between calls.
func NewEncoder() *Encoder { return &Encoder{} }

// Encode writes the subtrees rooted at roots (or every direct child of the
// DOM's root, if roots is empty) to w. The DOM's synthetic root instance
// itself is never written; only the selected subtrees are. Encoding is
// deterministic: class order follows traversal first-appearance order,
// within a class the Name property comes first and the rest follow in
// ascending order of canonical name, and the shared-string pool is ordered
// by first insertion, so the same DOM always produces the same bytes.
func (e *Encoder) Encode(w io.Writer, dom *rbxcore.DOM, roots []rbxcore.Referent, opts EncodeOptions) (Result, error) {
	var result Result
	rdb := opts.database()

	var rootInsts []*rbxcore.Instance
	if len(roots) == 0 {
		rootInsts = dom.Children(dom.RootReferent())
	} else {
		for _, r := range roots {
			if inst := dom.Get(r); inst != nil {
				rootInsts = append(rootInsts, inst)
			}
		}
	}

	wireOf := make(map[rbxcore.Referent]int32)
	classInfo := make(map[string]*encClassInfo)
	var classOrder []string
	var subjects []int32
	var parentsWire []int32
	nextWire := int32(0)

	var visit func(inst *rbxcore.Instance, parentWire int32)
	visit = func(inst *rbxcore.Instance, parentWire int32) {
		wire := nextWire
		nextWire++
		wireOf[inst.Referent] = wire
		subjects = append(subjects, wire)
		parentsWire = append(parentsWire, parentWire)

		ci, ok := classInfo[inst.ClassName]
		if !ok {
			ci = &encClassInfo{
				typeID:    uint32(len(classOrder)),
				className: inst.ClassName,
				isService: rdb.IsService(inst.ClassName),
			}
			classInfo[inst.ClassName] = ci
			classOrder = append(classOrder, inst.ClassName)
		}
		ci.instances = append(ci.instances, inst)
		ci.wireRefs = append(ci.wireRefs, wire)

		for _, child := range dom.Children(inst.Referent) {
			visit(child, wire)
		}
	}
	for _, root := range rootInsts {
		visit(root, -1)
	}

	refAssigner := func(r rbxcore.Referent) int32 {
		if r.IsNone() {
			return -1
		}
		if w, ok := wireOf[r]; ok {
			return w
		}
		return -1
	}

	poolIndex := make(map[*rbxcore.SharedString]uint32)
	var poolOrder []*rbxcore.SharedString
	poolAssigner := func(s *rbxcore.SharedString) uint32 {
		if idx, ok := poolIndex[s]; ok {
			return idx
		}
		idx := uint32(len(poolOrder))
		poolIndex[s] = idx
		poolOrder = append(poolOrder, s)
		return idx
	}

	classProps := make(map[string][]encProp)
	for _, className := range classOrder {
		ci := classInfo[className]

		propSet := make(map[string]bool)
		for _, inst := range ci.instances {
			for name := range inst.Properties {
				propSet[name] = true
			}
		}
		delete(propSet, "Name")
		names := make([]string, 0, len(propSet))
		for name := range propSet {
			names = append(names, name)
		}
		sort.Strings(names)

		nameValues := make([]rbxcore.Value, len(ci.instances))
		for i, inst := range ci.instances {
			nameValues[i] = rbxcore.ValueString(inst.Name())
		}
		namePayload, err := encodeValues(wireString, nameValues, refAssigner, poolAssigner)
		if err != nil {
			return result, err
		}
		classProps[className] = append(classProps[className], encProp{name: "Name", wt: wireString, payload: namePayload})

		for _, name := range names {
			canonical := rbxcore.TypeInvalid
			if opts.PropertyBehavior == PropertyBypassReflection {
				canonical = firstValueType(ci.instances, name)
			} else if prop, ok := rdb.Resolve(className, name); ok {
				canonical = prop.Type
			} else {
				switch opts.PropertyBehavior {
				case PropertyIgnoreUnknown:
					continue
				case PropertyErrorOnUnknown:
					return result, fmt.Errorf("bin: unknown property %s.%s", className, name)
				default:
					canonical = firstValueType(ci.instances, name)
				}
			}

			wt, ok := canonicalWireType[canonical]
			if !ok {
				result.warn(fmt.Errorf("bin: no wire type for %s.%s (%s); dropped", className, name, canonical))
				continue
			}

			values := make([]rbxcore.Value, len(ci.instances))
			for i, inst := range ci.instances {
				if v, ok := inst.Properties[name]; ok {
					values[i] = v
				} else {
					values[i] = rbxcore.NewValue(canonical)
				}
			}

			payload, err := encodeValues(wt, values, refAssigner, poolAssigner)
			if err != nil {
				if opts.PropertyBehavior == PropertyErrorOnUnknown {
					return result, err
				}
				result.warn(err)
				continue
			}
			classProps[className] = append(classProps[className], encProp{name: name, wt: wt, payload: payload})
		}
	}

	out := newByteWriter()
	writeHeader(out, fileHeader{
		Version:       currentVersion,
		ClassCount:    uint32(len(classOrder)),
		InstanceCount: uint32(len(subjects)),
	})

	if opts.IncludeMeta {
		mw := newByteWriter()
		mw.uint32(0)
		if err := writeRawChunk(out, chunkNameMeta, mw.Bytes(), opts.Compress); err != nil {
			return result, err
		}
	}

	sw := newByteWriter()
	sw.uint32(0)
	sw.uint32(uint32(len(poolOrder)))
	for _, s := range poolOrder {
		hash := s.Hash()
		sw.bytes(hash[:])
		data := s.Bytes()
		sw.uint32(uint32(len(data)))
		sw.bytes(data)
	}
	if err := writeRawChunk(out, chunkNameSSTR, sw.Bytes(), opts.Compress); err != nil {
		return result, err
	}

	for _, className := range classOrder {
		ci := classInfo[className]

		iw := newByteWriter()
		iw.uint32(ci.typeID)
		iw.lengthPrefixedString(className)
		if ci.isService {
			iw.byte(1)
		} else {
			iw.byte(0)
		}
		iw.uint32(uint32(len(ci.wireRefs)))
		iw.bytes(encodeReferentColumn(ci.wireRefs))
		if err := writeRawChunk(out, chunkNameInst, iw.Bytes(), opts.Compress); err != nil {
			return result, err
		}
	}

	for _, className := range classOrder {
		ci := classInfo[className]
		for _, prop := range classProps[className] {
			pw := newByteWriter()
			pw.uint32(ci.typeID)
			pw.lengthPrefixedString(prop.name)
			pw.byte(byte(prop.wt))
			pw.bytes(prop.payload)
			if err := writeRawChunk(out, chunkNameProp, pw.Bytes(), opts.Compress); err != nil {
				return result, err
			}
		}
	}

	prntW := newByteWriter()
	prntW.byte(0)
	prntW.uint32(uint32(len(subjects)))
	prntW.bytes(encodeReferentColumn(subjects))
	prntW.bytes(encodeReferentColumn(parentsWire))
	if err := writeRawChunk(out, chunkNameParent, prntW.Bytes(), opts.Compress); err != nil {
		return result, err
	}

	if err := writeRawChunk(out, chunkNameEnd, nil, false); err != nil {
		return result, err
	}

	if _, err := w.Write(out.Bytes()); err != nil {
		return result, IoError{Cause: err}
	}
	logger := opts.logger()
	for _, warning := range result.Warnings {
		logger.Warn(warning.Error())
	}
	return result, nil
}

func firstValueType(instances []*rbxcore.Instance, name string) rbxcore.Type {
	for _, inst := range instances {
		if v, ok := inst.Properties[name]; ok {
			return v.Type()
		}
	}
	return rbxcore.TypeInvalid
}
