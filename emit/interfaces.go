package emit

import "github.com/stormworks-utils/sw-mc-builder/core"

// Emitter turns a resolved, optimized microcontroller into a document
// ready to hand to the host simulator's actual file format. The real
// writer (XML matching the in-game schema, PNG icon packing) lives
// outside this module; Emitter is the seam a caller plugs one into.
type Emitter interface {
	Emit(mc *core.Microcontroller, positions map[*core.Primitive]core.GridPosition) (Document, error)
}

// Layouter assigns a grid position to every component that needs one,
// without mutating mc. It must be idempotent and side-effect-free: calling
// it twice on the same resolved microcontroller produces the same
// positions.
type Layouter interface {
	Layout(mc *core.Microcontroller) (map[*core.Primitive]core.GridPosition, error)
}
