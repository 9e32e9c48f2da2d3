package builder

import "github.com/stormworks-utils/sw-mc-builder/core"

// Library is the package-level descriptor registry every constructor in
// this package registers into, on the first construction of each kind
// (see newPrimitive). It satisfies core.PrimitiveLibrary; emit does not
// consult it and reads each primitive's own Descriptor instead.
var Library = core.NewLibrary()

// newPrimitive registers kind's descriptor (idempotently) and returns a
// fresh instance of it with every input port defaulted to Unconnected.
func newPrimitive(kind core.PrimitiveKind, inputPorts []string, outputTypes []core.SignalType) *core.Primitive {
	desc := core.PrimitiveDescriptor{Kind: kind, InputPorts: inputPorts, OutputTypes: outputTypes}
	if _, ok := Library.Descriptor(kind); !ok {
		Library.Register(desc)
	}
	return core.NewPrimitive(desc)
}

// out returns the wire observing output node index i of p.
func out(p *core.Primitive, i int, t core.SignalType) *core.Wire {
	return core.NewWireNode(t, p, i)
}

// checkType returns ErrTypeMismatch wrapped with fn's name if w is nil or
// not of type want.
func checkType(fn string, w *core.Wire, want core.SignalType) error {
	if w == nil {
		return builderErrorf(fn, core.ErrTypeMismatch, "nil wire where %s expected", want)
	}
	if w.Type != want {
		return builderErrorf(fn, core.ErrTypeMismatch, "wire is %s, expected %s", w.Type, want)
	}
	return nil
}
