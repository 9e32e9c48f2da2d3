package optimize

import (
	"github.com/stormworks-utils/sw-mc-builder/builder"
	"github.com/stormworks-utils/sw-mc-builder/core"
)

// MergeCompositeWrites is the post-resolution structural pass: it walks
// every CompositeWriteNumber/CompositeWriteBoolean chain built by calling
// builder's composite write constructors repeatedly on the same composite
// (each call only patching a handful of channels and threading the
// previous result through composite_signal_input) and, wherever a link in
// that chain has exactly one consumer, absorbs it into its successor so
// the emitted microcontroller has one physical component per chain
// instead of one per channel assignment.
//
// mc must already be resolved (resolve.Resolve) so mc.Resolved() and
// component ids are current; MergeCompositeWrites recomputes both after
// splicing nodes out.
func MergeCompositeWrites(mc *core.Microcontroller) {
	usage := countWireUsage(mc)
	removed := make(map[*core.Primitive]bool)

	for _, p := range mc.Resolved() {
		if removed[p] {
			continue
		}
		if p.Descriptor.Kind != builder.KindCompositeWriteNumber && p.Descriptor.Kind != builder.KindCompositeWriteBoolean {
			continue
		}
		absorbChain(p, usage, removed)
	}

	if len(removed) == 0 {
		return
	}
	kept := make([]*core.Primitive, 0, len(mc.Resolved()))
	for _, p := range mc.Resolved() {
		if !removed[p] {
			kept = append(kept, p)
		}
	}
	base := mc.PrimitiveIDBase()
	for i, p := range kept {
		p.ComponentID = base + i
	}
	mc.SetResolved(kept)
}

// absorbChain walks upward from p through composite_signal_input while the
// predecessor is the same write kind and has no other consumer, merging
// its channel assignments (and start_channel_input, if p does not already
// have one) into p.
func absorbChain(p *core.Primitive, usage map[*core.Wire]int, removed map[*core.Primitive]bool) {
	for {
		upstream := p.Inputs["composite_signal_input"]
		if upstream == nil {
			return
		}
		up, ok := upstream.Producer.(*core.Primitive)
		if !ok || up.Descriptor.Kind != p.Descriptor.Kind {
			return
		}
		if usage[upstream] != 1 {
			return
		}
		for _, port := range up.Descriptor.InputPorts {
			if port == "composite_signal_input" || port == "start_channel_input" {
				continue
			}
			if w := up.Inputs[port]; w != nil && !w.Unconnected() {
				if existing := p.Inputs[port]; existing == nil || existing.Unconnected() {
					p.Inputs[port] = w
				}
			}
		}
		pStart := p.Inputs["start_channel_input"]
		upStart := up.Inputs["start_channel_input"]
		if (pStart == nil || pStart.Unconnected()) && upStart != nil && !upStart.Unconnected() {
			p.Inputs["start_channel_input"] = upStart
		}
		p.Inputs["composite_signal_input"] = up.Inputs["composite_signal_input"]
		removed[up] = true
	}
}

// countWireUsage counts, for every wire reachable from mc's placed
// outputs and additional components, how many input ports across the
// whole graph reference it.
func countWireUsage(mc *core.Microcontroller) map[*core.Wire]int {
	usage := make(map[*core.Wire]int)
	for _, p := range mc.Resolved() {
		for _, port := range p.Descriptor.InputPorts {
			if w := p.Inputs[port]; w != nil {
				usage[w]++
			}
		}
	}
	for _, po := range mc.PlacedOutputs {
		usage[po.Wire]++
	}
	return usage
}
