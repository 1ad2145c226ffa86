package bin

import (
	"fmt"
	"io"

	"github.com/robloxapi/rbxcore"
	"github.com/robloxapi/rbxcore/reflection"
)

// decClassInfo is the Instances-stage bookkeeping for one class appearing
// in the file: its wire type-id, the dense wire referents assigned to its
// members, and the Instance allocated for each one, in the same order.
// This is the Go rendering of the teacher's per-chunk chunkInstance
// records (rbxl/model.go), folded into the single pass this decoder makes
// over the chunk stream instead of being held as its own chunk type.
type decClassInfo struct {
	typeID    uint32
	className string
	isService bool
	wireRefs  []int32
	instances []*rbxcore.Instance
}

// Decoder reads the binary container format into a DOM.
type Decoder struct{}

// NewDecoder returns a ready-to-use Decoder. Decoder holds no state of its
// own between calls.
func NewDecoder() *Decoder { return &Decoder{} }

const (
	stageMeta = iota
	stageSSTR
	stageInst
	stageProp
	stagePrnt
)

// Decode reads a complete binary container from r. The decoder runs the
// chunk stream through the linear Meta -> SharedStrings -> Instances ->
// Properties -> Parent -> End pipeline described by the format, using a
// monotonic stage counter rather than literal per-stage types: the
// teacher's own chunk loop (rbxl/decoder.go's version0) is a flat
// read-dispatch-append loop, not a typestate machine, and that shape
// carries over more naturally into this package's single-pass design than
// a family of Go structs would.
func (d *Decoder) Decode(r io.Reader, opts DecodeOptions) (*rbxcore.DOM, Result, error) {
	var result Result

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, result, IoError{Cause: err}
	}

	br := newByteReader(data)
	if _, err := readHeader(br); err != nil {
		return nil, result, err
	}

	rdb := opts.database()
	logger := opts.logger()

	pool := rbxcore.NewSharedStringPool()
	classesByType := make(map[uint32]*decClassInfo)
	var classOrder []*decClassInfo
	wireToRef := make(map[int32]rbxcore.Referent)

	stage := stageMeta
	sawPrnt := false
	var subjects, parents []int32

loop:
	for {
		chunk, cerr := readRawChunk(br)
		if cerr != nil {
			return nil, result, cerr
		}

		switch chunk.name {
		case chunkNameMeta:
			if stage > stageMeta {
				return nil, result, UnexpectedChunk{Expected: []string{"not META"}, Actual: chunk.name}
			}
			if err := decodeMetaChunk(chunk.payload); err != nil {
				return nil, result, err
			}
			stage = stageSSTR

		case chunkNameSSTR:
			if stage > stageSSTR {
				return nil, result, UnexpectedChunk{Expected: []string{"not SSTR"}, Actual: chunk.name}
			}
			if err := decodeSSTRChunk(chunk.payload, pool); err != nil {
				return nil, result, err
			}
			stage = stageInst

		case chunkNameInst:
			if stage > stageInst {
				return nil, result, UnexpectedChunk{Expected: []string{"not INST"}, Actual: chunk.name}
			}
			stage = stageInst
			ci, err := decodeInstChunk(chunk.payload, wireToRef)
			if err != nil {
				return nil, result, err
			}
			classesByType[ci.typeID] = ci
			classOrder = append(classOrder, ci)

		case chunkNameProp:
			if stage > stageProp {
				return nil, result, UnexpectedChunk{Expected: []string{"not PROP"}, Actual: chunk.name}
			}
			stage = stageProp
			if err := decodePropChunk(chunk.payload, classesByType, pool, rdb, wireToRef, opts, &result); err != nil {
				return nil, result, err
			}

		case chunkNameParent:
			if stage > stagePrnt || sawPrnt {
				return nil, result, UnexpectedChunk{Expected: []string{"not PRNT"}, Actual: chunk.name}
			}
			stage = stagePrnt
			sawPrnt = true
			subjects, parents, err = decodePrntChunk(chunk.payload)
			if err != nil {
				return nil, result, err
			}

		case chunkNameEnd:
			if !sawPrnt {
				return nil, result, UnexpectedChunk{Expected: []string{chunkNameParent}, Actual: chunk.name}
			}
			break loop

		default:
			result.warn(UnexpectedChunk{Expected: nil, Actual: chunk.name})
		}
	}

	dom := materializeDOM(wireToRef, classOrder, subjects, parents, &result)
	for _, warning := range result.Warnings {
		logger.Warn(warning.Error())
	}
	return dom, result, nil
}

func decodeMetaChunk(payload []byte) error {
	r := newByteReader(payload)
	count := r.uint32()
	for i := uint32(0); i < count; i++ {
		r.lengthPrefixedString()
		r.lengthPrefixedString()
	}
	if r.err != nil {
		return BadChunk{Name: chunkNameMeta, Reason: "truncated entry"}
	}
	return nil
}

func decodeSSTRChunk(payload []byte, pool *rbxcore.SharedStringPool) error {
	r := newByteReader(payload)
	version := r.uint32()
	if r.err != nil {
		return IoError{Cause: r.err}
	}
	if version != 0 {
		return UnknownChunkVersion{Chunk: chunkNameSSTR, Version: version}
	}
	count := r.uint32()
	if r.err != nil {
		return IoError{Cause: r.err}
	}
	for i := uint32(0); i < count; i++ {
		r.take(16) // hash; recomputed by the pool rather than trusted
		n := r.uint32()
		data := r.take(int(n))
		if r.err != nil {
			return BadChunk{Name: chunkNameSSTR, Reason: "truncated entry"}
		}
		pool.Add(data)
	}
	return nil
}

func decodeInstChunk(payload []byte, wireToRef map[int32]rbxcore.Referent) (*decClassInfo, error) {
	r := newByteReader(payload)
	typeID := r.uint32()
	className := r.lengthPrefixedString()
	format := r.byte()
	count := r.uint32()
	if r.err != nil {
		return nil, IoError{Cause: r.err}
	}
	refsRaw := r.take(int(count) * 4)
	if r.err != nil {
		return nil, BadChunk{Name: chunkNameInst, Reason: "truncated referent array"}
	}
	wireRefs, err := decodeReferentColumn(refsRaw, int(count))
	if err != nil {
		return nil, err
	}

	ci := &decClassInfo{
		typeID:    typeID,
		className: className,
		isService: format == 1,
	}
	for _, w := range wireRefs {
		inst := rbxcore.NewInstance(className)
		inst.IsService = ci.isService
		ci.wireRefs = append(ci.wireRefs, w)
		ci.instances = append(ci.instances, inst)
		wireToRef[w] = inst.Referent
	}
	return ci, nil
}

func decodePropChunk(
	payload []byte,
	classes map[uint32]*decClassInfo,
	pool *rbxcore.SharedStringPool,
	rdb *reflection.Database,
	wireToRef map[int32]rbxcore.Referent,
	opts DecodeOptions,
	result *Result,
) error {
	r := newByteReader(payload)
	typeID := r.uint32()
	propName := r.lengthPrefixedString()
	if r.err != nil {
		return IoError{Cause: r.err}
	}
	if r.eof() {
		// No type byte followed the name: silently ignored for forward
		// compatibility with types this codec doesn't know about yet.
		return nil
	}
	wt := wireType(r.byte())
	if r.err != nil {
		return IoError{Cause: r.err}
	}
	rest := r.rest()

	ci, ok := classes[typeID]
	if !ok {
		return UnknownTypeID{TypeID: int32(typeID)}
	}

	refs := func(w int32) rbxcore.Referent {
		if w == -1 {
			return rbxcore.NoneReferent
		}
		if ref, ok := wireToRef[w]; ok {
			return ref
		}
		return rbxcore.NoneReferent
	}
	poolFn := func(idx uint32) (*rbxcore.SharedString, bool) {
		s := pool.At(int(idx))
		return s, s != nil
	}

	values, err := decodeValues(wt, rest, len(ci.wireRefs), refs, poolFn)
	if err != nil {
		if uw, isUnknown := err.(UnknownWireType); isUnknown {
			switch opts.UnknownTypeBehavior {
			case UnknownTypeError:
				return uw
			case UnknownTypeWarn:
				result.warn(uw)
			}
			return nil
		}
		return err
	}

	for i, inst := range ci.instances {
		v := values[i]
		prop, found := rdb.Resolve(ci.className, propName)
		if !found {
			switch opts.UnknownPropertyBehavior {
			case UnknownPropertyDrop:
			case UnknownPropertyError:
				return fmt.Errorf("bin: unknown property %s.%s", ci.className, propName)
			default:
				inst.Properties[propName] = v
			}
			continue
		}

		switch prop.Serialization {
		case reflection.DoesNotSerialize:
			continue
		case reflection.Migrates:
			newVal, merr := prop.MigrateFunc(v)
			if merr != nil {
				result.warn(MigrationFailed{From: propName, To: prop.MigrateTo, Cause: merr})
				continue
			}
			if _, exists := inst.Properties[prop.MigrateTo]; !exists {
				inst.Properties[prop.MigrateTo] = newVal
			}
		default:
			widened, warn, werr := applyWidening(prop.Type, v)
			if werr != nil {
				return PropTypeMismatch{
					Class:    ci.className,
					Property: propName,
					Expected: prop.Type.String(),
					Actual:   v.Type().String(),
				}
			}
			if warn != nil {
				result.warn(warn)
			}
			inst.Properties[prop.Name] = widened
		}
	}
	return nil
}

func decodePrntChunk(payload []byte) (subjects, parents []int32, err error) {
	r := newByteReader(payload)
	version := r.byte()
	if r.err != nil {
		return nil, nil, IoError{Cause: r.err}
	}
	if version != 0 {
		return nil, nil, UnknownChunkVersion{Chunk: chunkNameParent, Version: uint32(version)}
	}
	count := r.uint32()
	if r.err != nil {
		return nil, nil, IoError{Cause: r.err}
	}
	subjRaw := r.take(int(count) * 4)
	parentRaw := r.take(int(count) * 4)
	if r.err != nil {
		return nil, nil, BadChunk{Name: chunkNameParent, Reason: "truncated referent arrays"}
	}
	subjects, err = decodeReferentColumn(subjRaw, int(count))
	if err != nil {
		return nil, nil, err
	}
	parents, err = decodeReferentColumn(parentRaw, int(count))
	if err != nil {
		return nil, nil, err
	}
	return subjects, parents, nil
}

// materializeDOM inserts every instance reachable from the PRNT subject
// list as a child of the DOM's synthetic root, in subject-array order, then
// reparents the ones whose PRNT entry names an explicit parent; wire parent
// -1 means "top-level", which here means "direct child of the DOM root",
// matching the synthetic-root shape required of every decoded DOM. Any
// instance never named as a PRNT subject is dropped with a warning instead
// of being inserted at all.
func materializeDOM(wireToRef map[int32]rbxcore.Referent, classOrder []*decClassInfo, subjects, parents []int32, result *Result) *rbxcore.DOM {
	dom := rbxcore.NewDOM()
	root := dom.RootReferent()

	instanceByRef := make(map[rbxcore.Referent]*rbxcore.Instance)
	for _, ci := range classOrder {
		for i, w := range ci.wireRefs {
			instanceByRef[wireToRef[w]] = ci.instances[i]
		}
	}

	subjectSet := make(map[rbxcore.Referent]bool, len(subjects))
	orderedRefs := make([]rbxcore.Referent, 0, len(subjects))
	for _, w := range subjects {
		ref := wireToRef[w]
		subjectSet[ref] = true
		orderedRefs = append(orderedRefs, ref)
	}

	for _, ref := range orderedRefs {
		if inst := instanceByRef[ref]; inst != nil {
			if err := dom.Insert(root, inst); err != nil {
				result.warn(fmt.Errorf("bin: %v", err))
			}
		}
	}

	for i, w := range parents {
		if w == -1 {
			continue
		}
		if i >= len(orderedRefs) {
			break
		}
		if err := dom.SetParent(orderedRefs[i], wireToRef[w]); err != nil {
			result.warn(fmt.Errorf("bin: %v", err))
		}
	}

	for ref, inst := range instanceByRef {
		if !subjectSet[ref] {
			result.warn(fmt.Errorf("bin: referent %s (%s) was never parented; dropped", ref, inst.ClassName))
		}
	}

	return dom
}
