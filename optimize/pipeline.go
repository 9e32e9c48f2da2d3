package optimize

import "github.com/stormworks-utils/sw-mc-builder/core"

// Optimize runs the full optimization pipeline against an already-resolved
// microcontroller: arithmetic/boolean fusion first, since it can shrink a
// composite-write chain's component count as a side effect of inlining the
// channel values feeding it, then the composite-write merge. mc.Resolved()
// must already be populated (resolve.Resolve) before calling this.
func Optimize(mc *core.Microcontroller) {
	if !mc.Optimize {
		return
	}
	InlineArithmetic(mc)
	MergeCompositeWrites(mc)
}
