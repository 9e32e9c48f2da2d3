package emit

import "github.com/stormworks-utils/sw-mc-builder/core"

// GridLayouter assigns each resolved component a column equal to its
// longest-path depth from an unconnected/input leaf, and a row that is
// its position within that column, skipping any cell already occupied by
// a placed input or output. This is a deliberately simple placement
// strategy — the host simulator's real layout pass additionally considers
// wire crossing count and component footprint, which is out of scope
// here; what matters for this module is that positions are deterministic
// and collision-free, which the column/row construction guarantees by
// exploring components in mc.Resolved() order.
type GridLayouter struct{}

// Layout implements Layouter.
func (GridLayouter) Layout(mc *core.Microcontroller) (map[*core.Primitive]core.GridPosition, error) {
	occupied := make(map[core.GridPosition]bool)
	for _, pi := range mc.PlacedInputs {
		occupied[pi.Position] = true
	}
	for _, po := range mc.PlacedOutputs {
		occupied[po.Position] = true
	}

	depth := make(map[*core.Primitive]int)
	visiting := make(map[*core.Primitive]bool)
	var depthOf func(p *core.Primitive) int
	depthOf = func(p *core.Primitive) int {
		if d, ok := depth[p]; ok {
			return d
		}
		if visiting[p] {
			return 0
		}
		visiting[p] = true
		defer delete(visiting, p)
		max := 0
		for _, port := range p.Descriptor.InputPorts {
			w := p.Inputs[port]
			if w == nil {
				continue
			}
			if up, ok := w.Producer.(*core.Primitive); ok {
				if d := depthOf(up) + 1; d > max {
					max = d
				}
			}
		}
		depth[p] = max
		return max
	}

	columnNext := make(map[int]int)
	positions := make(map[*core.Primitive]core.GridPosition, len(mc.Resolved()))
	for _, p := range mc.Resolved() {
		col := depthOf(p)
		for {
			row := columnNext[col]
			pos := core.GridPosition{X: col, Y: row}
			columnNext[col] = row + 1
			if !occupied[pos] {
				occupied[pos] = true
				positions[p] = pos
				break
			}
		}
	}
	return positions, nil
}
