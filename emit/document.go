package emit

import (
	"github.com/google/uuid"

	"github.com/stormworks-utils/sw-mc-builder/core"
)

// Document is a host-simulator-agnostic serialization of a compiled
// microcontroller. The real on-disk format is XML matching the in-game
// schema plus a packed PNG icon, both out of scope here; Document carries
// the same information a real writer would need, in a shape encoding/json
// can round-trip directly.
type Document struct {
	Name       string            `json:"name"`
	Width      int               `json:"width"`
	Height     int               `json:"height"`
	Components []ComponentDoc    `json:"components"`
	Inputs     []PlacementDoc    `json:"inputs"`
	Outputs    []PlacementDoc    `json:"outputs"`
	Metadata   map[string]string `json:"metadata"`
}

// ComponentDoc is one emitted component.
type ComponentDoc struct {
	ID            int               `json:"id"`
	Kind          string            `json:"kind"`
	Position      core.GridPosition `json:"position"`
	Inputs        map[string]int    `json:"inputs"`
	Properties    map[string]interface{} `json:"properties,omitempty"`
	ForceProperty bool              `json:"force_property,omitempty"`
}

// PlacementDoc is one placed input or output.
type PlacementDoc struct {
	Name     string            `json:"name"`
	Type     string            `json:"type"`
	Position core.GridPosition `json:"position"`
}

// DefaultEmitter is the reference Emitter: a plain JSON document, with a
// fresh compile id stamped into Metadata on every call (the sole consumer
// of google/uuid in this module, standing in for a per-build identifier).
type DefaultEmitter struct{}

// Emit implements Emitter.
func (DefaultEmitter) Emit(mc *core.Microcontroller, positions map[*core.Primitive]core.GridPosition) (Document, error) {
	doc := Document{
		Name:   mc.Name,
		Width:  mc.Width,
		Height: mc.Height,
		Metadata: map[string]string{
			"compile_id": uuid.NewString(),
		},
	}

	for _, p := range mc.Resolved() {
		inputs := make(map[string]int, len(p.Descriptor.InputPorts))
		for _, port := range p.Descriptor.InputPorts {
			w := p.Inputs[port]
			if w == nil || w.Unconnected() {
				continue
			}
			switch up := w.Producer.(type) {
			case *core.Primitive:
				inputs[port] = up.ComponentID
			case *core.InputMarker:
				inputs[port] = up.ComponentID
			}
		}
		doc.Components = append(doc.Components, ComponentDoc{
			ID:            p.ComponentID,
			Kind:          string(p.Descriptor.Kind),
			Position:      positions[p],
			Inputs:        inputs,
			Properties:    p.Properties,
			ForceProperty: p.ForceProperty,
		})
	}

	for _, pi := range mc.PlacedInputs {
		doc.Inputs = append(doc.Inputs, PlacementDoc{Name: pi.Marker.Name, Type: pi.Marker.Type.String(), Position: pi.Position})
	}
	for _, po := range mc.PlacedOutputs {
		t := core.Number
		if up, ok := po.Wire.Producer.(*core.Primitive); ok && up.Descriptor.OutputCount() > po.Wire.NodeIndex {
			t = up.Descriptor.OutputType(po.Wire.NodeIndex)
		}
		doc.Outputs = append(doc.Outputs, PlacementDoc{Name: po.Name, Type: t.String(), Position: po.Position})
	}

	return doc, nil
}
