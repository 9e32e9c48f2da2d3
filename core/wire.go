package core

// Wire is a typed edge that observes exactly one output port of one
// Producer. Wires are always handled by reference (*Wire) — two wires of
// identical Type/Producer/NodeIndex are still distinct graph nodes, which
// is what lets ReplaceProducer patch a cycle-closing Placeholder in place
// and have every observer see the replacement.
//
// NodeIndex selects which output of a multi-output Producer this wire
// observes (e.g. JKFlipFlop's Q vs NotQ, Divide's quotient vs
// divide-by-zero flag). It is always 0 for single-output producers.
type Wire struct {
	Type        SignalType
	Producer    Producer
	NodeIndex   int
	optimize    bool
	forceWrite  bool
}

// NewWire returns a wire of type t observing node index 0 of producer.
func NewWire(t SignalType, producer Producer) *Wire {
	return &Wire{Type: t, Producer: producer, optimize: true}
}

// NewWireNode returns a wire of type t observing the given output node
// index of producer.
func NewWireNode(t SignalType, producer Producer, nodeIndex int) *Wire {
	return &Wire{Type: t, Producer: producer, NodeIndex: nodeIndex, optimize: true}
}

// Unconnected reports whether the wire currently observes the Unconnected
// sentinel producer.
func (w *Wire) Unconnected() bool {
	_, ok := w.Producer.(Unconnected)
	return ok
}

// StopOptimization marks this wire's own producer (if it is a *Primitive)
// ineligible for fusion; primitives further upstream are not marked. It
// returns the
// wire itself so calls can be chained the way the original Wire.stop_optimization
// did at the call site.
func (w *Wire) StopOptimization() *Wire {
	if p, ok := w.Producer.(*Primitive); ok {
		p.StopOptimization()
	}
	w.optimize = false
	return w
}

// OptimizationStopped reports whether StopOptimization was called on this
// wire directly (independent of whether its producer itself was marked).
func (w *Wire) OptimizationStopped() bool { return !w.optimize }

// ForceProperty sets ForceProperty on the wire's producer when it is a
// *Primitive (of any kind, not only a property), and flags the wire
// itself. emit.DefaultEmitter copies the primitive's flag into the
// component's force_property field. vehicle.Merge does not read that
// field; it only honors force_property attributes already present in the
// vehicle file.
func (w *Wire) ForceProperty() *Wire {
	if p, ok := w.Producer.(*Primitive); ok {
		p.ForceProperty = true
	}
	w.forceWrite = true
	return w
}

// ReplaceProducer swaps in the real producer for a wire that previously
// pointed at a Placeholder: since Go has no reference aliasing of struct
// fields across copies, this only works because w is always shared by
// pointer — callers never copy a *Wire, they copy the pointer. Used to
// close cycles (see builder.MovingAverage / the UpDownCounter fused fold).
func (w *Wire) ReplaceProducer(p Producer) {
	w.Producer = p
}

// ComponentID returns the resolved component id of the wire's producer.
// It returns ErrUnplacedInput if the producer is an InputMarker
// Microcontroller.PlaceInput never assigned an id to, ErrUnresolvedPlaceholder
// if the producer is still a Placeholder (or an unresolved Primitive), and
// -1 with no error for Unconnected (an unconnected input legitimately
// resolves to "no component").
func (w *Wire) ComponentID() (int, error) {
	switch p := w.Producer.(type) {
	case *Primitive:
		if p.ComponentID < 0 {
			return 0, wrapf("ComponentID", ErrUnresolvedPlaceholder, "primitive %s not yet resolved", p.Descriptor.Kind)
		}
		return p.ComponentID, nil
	case Unconnected:
		return -1, nil
	case *Placeholder:
		return 0, wrapf("ComponentID", ErrUnresolvedPlaceholder, "placeholder never replaced")
	case *InputMarker:
		if p.ComponentID < 0 {
			return 0, wrapf("ComponentID", ErrUnplacedInput, "input %q not placed", p.Name)
		}
		return p.ComponentID, nil
	default:
		return 0, wrapf("ComponentID", ErrTypeMismatch, "unrecognized producer %T", p)
	}
}

// ToInput declares w as (or confirms it already is) an external input and
// returns the InputMarker backing it, creating one lazily the first time
// it is asked for a wire that is still Unconnected. A wire whose producer
// is already a concrete Primitive (or a Placeholder) cannot be converted —
// ToInput reports that usage error as ErrTypeMismatch.
func (w *Wire) ToInput(name string) (*InputMarker, error) {
	switch p := w.Producer.(type) {
	case *InputMarker:
		return p, nil
	case Unconnected:
		marker := NewInputMarker(name, w.Type)
		w.Producer = marker
		return marker, nil
	default:
		return nil, wrapf("ToInput", ErrTypeMismatch, "wire already has producer %T", p)
	}
}
