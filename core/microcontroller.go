package core

const gridSize = 6

// PlacedInput pairs an external input marker with its position on the
// microcontroller surface.
type PlacedInput struct {
	Marker   *InputMarker
	Position GridPosition
}

// PlacedOutput pairs a wire with the name and position under which its
// value is exposed outside the microcontroller.
type PlacedOutput struct {
	Wire     *Wire
	Name     string
	Position GridPosition
}

// Microcontroller is the root container of one compile: it owns every
// placed input and output, every additional component declared outside
// the input/output graph (number/boolean tooltips, properties), and the
// single-compile state (write tracker, resolved component list) the
// resolver and optimizer passes thread through.
//
// A Microcontroller is not safe for concurrent mutation. One compile owns
// one Microcontroller exclusively, since a dataflow compile has no
// legitimate multi-writer use case.
type Microcontroller struct {
	Name    string
	Width   int
	Height  int
	Optimize bool

	PlacedInputs         []PlacedInput
	PlacedOutputs        []PlacedOutput
	AdditionalComponents []*Primitive

	inputNames  map[string]bool
	outputNames map[string]bool
	positions   map[GridPosition]bool
	tracker     *compositeWriteTracker
	warnings    []Warning

	// resolved is populated by resolve.Resolve and consumed by
	// optimize.MergeCompositeWrites; it holds every *Primitive reachable
	// from the placed outputs and additional components, in resolution
	// (declaration) order.
	resolved []*Primitive
}

// NewMicrocontroller returns an empty microcontroller with the default
// 6x6 placement surface and optimization enabled.
func NewMicrocontroller(name string) *Microcontroller {
	return &Microcontroller{
		Name:        name,
		Width:       gridSize,
		Height:      gridSize,
		Optimize:    true,
		inputNames:  make(map[string]bool),
		outputNames: make(map[string]bool),
		positions:   make(map[GridPosition]bool),
		tracker:     newCompositeWriteTracker(),
	}
}

// StopOptimization disables every optimizer pass for this compile.
func (mc *Microcontroller) StopOptimization() { mc.Optimize = false }

// validatePlacement auto-expands Width/Height to cover pos, warning when it
// does, and rejects an exact position collision.
func (mc *Microcontroller) validatePlacement(pos GridPosition) error {
	if mc.positions[pos] {
		return wrapf("validatePlacement", ErrDuplicatePlacement, "position %+v already occupied", pos)
	}
	if pos.X < 0 || pos.Y < 0 {
		return wrapf("validatePlacement", ErrOutOfBounds, "position %+v has a negative coordinate", pos)
	}
	if pos.X >= mc.Width {
		mc.Width = pos.X + 1
		mc.warnings = append(mc.warnings, Warning{Message: "node placed beyond declared width; surface auto-expanded"})
	}
	if pos.Y >= mc.Height {
		mc.Height = pos.Y + 1
		mc.warnings = append(mc.warnings, Warning{Message: "node placed beyond declared height; surface auto-expanded"})
	}
	return nil
}

// PlaceInput declares name as an external input of SignalType t at pos,
// returning the wire observing it.
func (mc *Microcontroller) PlaceInput(name string, t SignalType, pos GridPosition) (*Wire, error) {
	if mc.inputNames[name] {
		return nil, wrapf("PlaceInput", ErrDuplicateName, "input %q already placed", name)
	}
	if err := mc.validatePlacement(pos); err != nil {
		return nil, err
	}
	mc.positions[pos] = true
	mc.inputNames[name] = true
	marker := NewInputMarker(name, t)
	marker.ComponentID = len(mc.PlacedInputs)
	mc.PlacedInputs = append(mc.PlacedInputs, PlacedInput{Marker: marker, Position: pos})
	return NewWire(t, marker), nil
}

// PlaceOutput exposes w under name at pos.
func (mc *Microcontroller) PlaceOutput(name string, w *Wire, pos GridPosition) error {
	if mc.outputNames[name] {
		return wrapf("PlaceOutput", ErrDuplicateName, "output %q already placed", name)
	}
	if err := mc.validatePlacement(pos); err != nil {
		return err
	}
	mc.positions[pos] = true
	mc.outputNames[name] = true
	mc.PlacedOutputs = append(mc.PlacedOutputs, PlacedOutput{Wire: w, Name: name, Position: pos})
	return nil
}

// AddAdditionalComponent registers a primitive that must be kept in the
// compiled output even though nothing observes its output directly (a
// tooltip, a property, a script with side effects only).
func (mc *Microcontroller) AddAdditionalComponent(p *Primitive) {
	mc.AdditionalComponents = append(mc.AdditionalComponents, p)
}

// Tracker returns the microcontroller's mixed-write-style tracker, used
// by builder's composite Set()/index-assignment helpers.
func (mc *Microcontroller) Tracker() *compositeWriteTracker { return mc.tracker }

// Warnings returns every non-fatal diagnostic accumulated so far:
// placement auto-expansion and mixed composite-write style.
func (mc *Microcontroller) Warnings() []Warning {
	out := make([]Warning, 0, len(mc.warnings)+len(mc.tracker.Warnings()))
	out = append(out, mc.warnings...)
	out = append(out, mc.tracker.Warnings()...)
	return out
}

// SetResolved stores the full resolved component list in declaration
// order; called by resolve.Resolve and again by any optimizer pass that
// removes or adds resolved primitives.
func (mc *Microcontroller) SetResolved(components []*Primitive) { mc.resolved = components }

// PrimitiveIDBase is the first component id available to primitives:
// input-marker ids occupy the dense range below it, assigned at
// PlaceInput time, so primitive ids the resolver and optimizer passes
// assign must start here to keep the two id spaces non-overlapping.
func (mc *Microcontroller) PrimitiveIDBase() int { return len(mc.PlacedInputs) }

// Resolved returns the component list recorded by SetResolved, or nil if
// the microcontroller has not been resolved yet.
func (mc *Microcontroller) Resolved() []*Primitive { return mc.resolved }
