package resolve

import (
	"github.com/stormworks-utils/sw-mc-builder/core"
	"github.com/stormworks-utils/sw-mc-builder/internal/orderedset"
)

// Resolve walks every wire reachable from mc's placed outputs (in
// placement order) and then its additional components (in declaration
// order), assigning each distinct primitive a dense ComponentID the first
// time it is encountered. Primitive ids start at mc.PrimitiveIDBase(),
// continuing the id space above the input-marker ids PlaceInput already
// assigned. It returns core.ErrUnplacedInput if it reaches an input marker
// mc never placed, and core.ErrUnresolvedPlaceholder if it reaches a
// placeholder that was never replaced with a concrete producer.
//
// On success, mc.Resolved() returns the full primitive list in resolution
// order, which optimize.MergeCompositeWrites consumes for its structural
// pass.
func Resolve(mc *core.Microcontroller) error {
	placed := orderedset.New[*core.InputMarker]()
	for _, pi := range mc.PlacedInputs {
		placed.Add(pi.Marker)
	}

	visited := orderedset.New[*core.Primitive]()
	var visit func(w *core.Wire) error
	visit = func(w *core.Wire) error {
		if w == nil {
			return nil
		}
		switch p := w.Producer.(type) {
		case *core.Primitive:
			return visitPrimitive(p, visited, visit)
		case core.Unconnected:
			return nil
		case *core.Placeholder:
			return wrapf("Resolve", core.ErrUnresolvedPlaceholder, "placeholder of type %s reached during resolution", p.Type())
		case *core.InputMarker:
			if !placed.Contains(p) {
				return wrapf("Resolve", core.ErrUnplacedInput, "input %q not placed", p.Name)
			}
			return nil
		default:
			return wrapf("Resolve", core.ErrTypeMismatch, "unrecognized producer %T", p)
		}
	}

	for _, po := range mc.PlacedOutputs {
		if err := visit(po.Wire); err != nil {
			return err
		}
	}
	for _, ac := range mc.AdditionalComponents {
		if err := visitPrimitive(ac, visited, visit); err != nil {
			return err
		}
	}

	components := visited.Values()
	base := mc.PrimitiveIDBase()
	for i, p := range components {
		p.ComponentID = base + i
	}
	mc.SetResolved(components)
	return nil
}

func visitPrimitive(p *core.Primitive, visited *orderedset.Set[*core.Primitive], visit func(*core.Wire) error) error {
	if visited.Contains(p) {
		return nil
	}
	visited.Add(p)
	for _, port := range p.Descriptor.InputPorts {
		if err := visit(p.Inputs[port]); err != nil {
			return err
		}
	}
	return nil
}
