package core

// Producer is the closed tagged union of things a Wire can observe: a
// concrete Primitive, the Unconnected sentinel, a cycle-closing
// Placeholder, or an external InputMarker. isProducer is unexported, so no
// type outside this package can implement Producer — a private marker
// method pins the set of concrete node shapes.
type Producer interface {
	isProducer()
}

// Primitive is a concrete signal-processing component: an instance of one
// PrimitiveDescriptor with its input ports wired to other wires and its
// instance properties (epsilon, clamp bounds, function body text, script
// source, property default/options, ...) filled in.
//
// Inputs is keyed by port name; Descriptor.InputPorts gives the
// deterministic iteration order composite-write merging and emission rely
// on (Go maps do not preserve insertion order).
//
// ComponentID is -1 until the resolver assigns a dense id. Optimize
// defaults to true (a component takes part in arithmetic/boolean fusion
// unless explicitly opted out via StopOptimization). ForceProperty
// defaults to false and is only meaningful for the four property kinds;
// it survives a recompile's vehicle-merge as "never overwrite this value
// from the user's saved vehicle".
type Primitive struct {
	Descriptor    PrimitiveDescriptor
	Inputs        map[string]*Wire
	Properties    map[string]interface{}
	ComponentID   int
	Optimize      bool
	ForceProperty bool
}

func (*Primitive) isProducer() {}

// NewPrimitive builds a Primitive of the given descriptor with all inputs
// initially Unconnected, ComponentID unresolved, and Optimize on.
func NewPrimitive(desc PrimitiveDescriptor) *Primitive {
	p := &Primitive{
		Descriptor:  desc,
		Inputs:      make(map[string]*Wire, len(desc.InputPorts)),
		Properties:  make(map[string]interface{}),
		ComponentID: -1,
		Optimize:    true,
	}
	for _, port := range desc.InputPorts {
		p.Inputs[port] = &Wire{Type: Number, Producer: Unconnected{}}
	}
	return p
}

// InputPort returns the wire attached to port, or nil if port is not one
// of Descriptor.InputPorts.
func (p *Primitive) InputPort(port string) *Wire {
	return p.Inputs[port]
}

// SetInputPort attaches w to port, replacing whatever was there. Callers
// are expected to have type-checked w against the port's expected
// SignalType already (builder constructors do this); core itself does not
// know per-port expected types beyond what the descriptor's OutputTypes
// convey for the producer's own outputs.
func (p *Primitive) SetInputPort(port string, w *Wire) {
	p.Inputs[port] = w
}

// StopOptimization marks the component ineligible for arithmetic/boolean
// fusion.
func (p *Primitive) StopOptimization() *Primitive {
	p.Optimize = false
	return p
}

// Unconnected is the producer of a wire that was declared but never
// attached to anything upstream — a zero-size, comparable sentinel value
// (not a pointer) so that two Unconnected producers always compare equal.
type Unconnected struct{}

func (Unconnected) isProducer() {}

// Placeholder is a forward-declared producer used to close a cycle: a
// wire can point at a Placeholder before the producer that will eventually
// replace it exists. Wire.ReplaceProducer patches only the wire it is
// called on; every other wire still pointing at this Placeholder keeps
// observing it, and the resolver reports ErrUnresolvedPlaceholder if one
// survives un-replaced.
type Placeholder struct {
	resolvedType SignalType
}

func (*Placeholder) isProducer() {}

// NewPlaceholder returns a Placeholder typed t, matching the SignalType of
// the wire(s) that will observe it.
func NewPlaceholder(t SignalType) *Placeholder {
	return &Placeholder{resolvedType: t}
}

// Type returns the SignalType the placeholder was declared with.
func (ph *Placeholder) Type() SignalType { return ph.resolvedType }

// InputMarker is the producer of a microcontroller's external input: the
// wire it backs carries no Primitive, only identity used to look up the
// PlacedInputs grid position and display name at emission time. ComponentID
// is -1 until Microcontroller.PlaceInput assigns it a dense id in the same
// id space primitive ids are resolved into above (see resolve.Resolve).
type InputMarker struct {
	Name        string
	Type        SignalType
	ComponentID int
}

func (*InputMarker) isProducer() {}

// NewInputMarker returns an InputMarker with the given display name and
// SignalType. Name uniqueness is enforced at PlaceInput time
// (ErrDuplicateName), not at construction.
func NewInputMarker(name string, t SignalType) *InputMarker {
	return &InputMarker{Name: name, Type: t, ComponentID: -1}
}
