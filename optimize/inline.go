package optimize

import (
	"fmt"
	"strconv"

	"github.com/stormworks-utils/sw-mc-builder/builder"
	"github.com/stormworks-utils/sw-mc-builder/core"
	"github.com/stormworks-utils/sw-mc-builder/internal/orderedset"
)

// maxSwitchboxFusedInputs caps how many total leaf variables a
// NumericalSwitchbox may consume (selector plus options) before fusion
// gives up on it: selector plus 6 options is the largest switchbox the
// 8-variable budget can absorb once the recursive expression for each
// option is accounted for, so a 7-option switchbox is left unfused.
const maxSwitchboxFusedInputs = 7

// fusableArithmeticKinds lists the single-output Number primitive kinds
// the inliner may rewrite a root node into a fused expression for. Kinds
// with more than one output (Divide) are only ever read during recursion,
// never rewritten as a root themselves, since mutating them in place
// would corrupt whichever consumer reads their other output.
var fusableArithmeticKinds = map[core.PrimitiveKind]bool{
	builder.KindAdd:                true,
	builder.KindSubtract:           true,
	builder.KindMultiply:           true,
	builder.KindModulo:             true,
	builder.KindAbs:                true,
	builder.KindClamp:              true,
	builder.KindNumericalSwitchbox: true,
}

var fusableBooleanKinds = map[core.PrimitiveKind]bool{
	builder.KindAND:  true,
	builder.KindOR:   true,
	builder.KindXOR:  true,
	builder.KindNAND: true,
	builder.KindNOR:  true,
	builder.KindNOT:  true,
}

// Optimizer holds the cycle-breaking state one inlining run needs:
// UpDownCounter's self-referencing accumulator, and any other producer
// that forms a cycle through a Placeholder, must never be followed twice
// on the same recursion stack. The stack is keyed by the *Primitive being
// expanded, not by the wire used to reach it: a cycle can close through a
// different Wire value than the one that first entered the recursion (the
// root wire fusion starts from is freshly allocated, while the loop-back
// wire is whatever was wired into the primitive's own input), so keying
// by wire would miss the cycle on its first occurrence and only catch it
// one level too late.
type Optimizer struct {
	stack map[*core.Primitive]bool
}

// NewOptimizer returns a ready-to-use Optimizer.
func NewOptimizer() *Optimizer {
	return &Optimizer{stack: make(map[*core.Primitive]bool)}
}

// InlineArithmetic fuses every eligible single-output arithmetic or
// boolean primitive reachable from mc's resolved component list into an
// ArithmeticFunction8In or BooleanFunction8In node, provided the fused
// expression needs no more than 8 distinct leaf inputs. mc must already
// have been resolved (resolve.Resolve) so mc.Resolved() is populated.
// Primitives that cannot be fused (budget exceeded, stateful, multi-
// output, or optimization disabled) are left exactly as they were; this
// function never returns an error, per spec.
//
// Fusing a chain absorbs intermediate primitives into the root's fused
// expression without removing them from mc.Resolved(); InlineArithmetic
// prunes everything no longer reachable once every root has had a chance
// to fuse, so a chain collapses into exactly one emitted component rather
// than one fused component per absorbed link.
func InlineArithmetic(mc *core.Microcontroller) {
	o := NewOptimizer()
	for _, p := range mc.Resolved() {
		o.tryFuse(p)
	}
	pruneUnreachable(mc)
}

func (o *Optimizer) tryFuse(p *core.Primitive) {
	if !p.Optimize || p.Descriptor.OutputCount() != 1 {
		return
	}
	switch {
	case p.Descriptor.Kind == builder.KindUpDownCounter:
		o.tryFuseUpDownCounter(p)
	case fusableArithmeticKinds[p.Descriptor.Kind]:
		o.tryFuseArithmetic(p)
	case fusableBooleanKinds[p.Descriptor.Kind]:
		o.tryFuseBoolean(p)
	}
}

// pruneUnreachable recomputes mc.Resolved() by walking reachability from
// mc.PlacedOutputs and mc.AdditionalComponents through the current
// Inputs/Descriptor of every primitive, the same walk resolve.Resolve
// does, and drops anything fusion absorbed into a root's expression but
// left behind in the old resolved list. Component ids are reassigned
// densely above mc.PrimitiveIDBase(), mirroring MergeCompositeWrites'
// post-removal reassignment.
func pruneUnreachable(mc *core.Microcontroller) {
	visited := orderedset.New[*core.Primitive]()
	var visit func(w *core.Wire)
	visit = func(w *core.Wire) {
		if w == nil || w.Unconnected() {
			return
		}
		p, ok := w.Producer.(*core.Primitive)
		if !ok || visited.Contains(p) {
			return
		}
		visited.Add(p)
		for _, port := range p.Descriptor.InputPorts {
			visit(p.Inputs[port])
		}
	}
	for _, po := range mc.PlacedOutputs {
		visit(po.Wire)
	}
	for _, ac := range mc.AdditionalComponents {
		if visited.Contains(ac) {
			continue
		}
		visited.Add(ac)
		for _, port := range ac.Descriptor.InputPorts {
			visit(ac.Inputs[port])
		}
	}

	kept := visited.Values()
	base := mc.PrimitiveIDBase()
	for i, p := range kept {
		p.ComponentID = base + i
	}
	mc.SetResolved(kept)
}

func (o *Optimizer) tryFuseArithmetic(p *core.Primitive) {
	root := core.NewWireNode(core.Number, p, 0)
	st := &arithState{o: o, leafVar: make(map[*core.Wire]string), leafWire: make(map[string]*core.Wire)}
	expr, ok := st.expr(root)
	if !ok || len(st.order) == 0 {
		return
	}
	if leafWire, isLeaf := st.leafWire[expr]; isLeaf && leafWire == root {
		// The subtree bailed out on its very first step (e.g. a switchbox
		// over the fan-in budget) and allocated the root's own wire as a
		// leaf: fusing would make p depend on a wire whose producer is p
		// itself. Nothing was actually inlined, so leave p unchanged.
		return
	}
	ports := make([]string, len(st.order))
	inputs := make(map[string]*core.Wire, len(st.order))
	for i, name := range st.order {
		ports[i] = name
		inputs[name] = st.leafWire[name]
	}
	p.Descriptor = core.PrimitiveDescriptor{Kind: builder.KindArithmeticFn8, InputPorts: ports, OutputTypes: []core.SignalType{core.Number}}
	p.Inputs = inputs
	p.Properties = map[string]interface{}{"expression": expr}
}

func (o *Optimizer) tryFuseBoolean(p *core.Primitive) {
	root := core.NewWireNode(core.Boolean, p, 0)
	expr, deps, _, ok := LowerBoolean(root, 0)
	if !ok || len(deps) == 0 {
		return
	}
	ports := make([]string, 0, len(deps))
	for _, name := range variableAlphabet {
		if _, used := deps[name]; used {
			ports = append(ports, name)
		}
	}
	p.Descriptor = core.PrimitiveDescriptor{Kind: builder.KindBooleanFn8, InputPorts: ports, OutputTypes: []core.SignalType{core.Boolean}}
	p.Inputs = deps
	p.Properties = map[string]interface{}{"expression": expr}
}

// tryFuseUpDownCounter rewrites an UpDownCounter into a self-referential
// ArithmeticFn8 node, closing the cycle through a Placeholder the same
// way builder.MovingAverage closes its own feedback loop: a fresh wire
// stands in for the counter's previous value while the fused expression
// is built, then gets its producer replaced with p once p itself has
// become the fused node.
//
// The fused body is (1-R)*(S+inc*U-inc*D)+R*resetValue, clamped to
// [min,max], where S is the self-reference leaf and R/U/D are leaf
// variables bound to the reset/up/down input wires; boolean subtrees
// feeding those inputs are not lowered into the body. resetValue
// comes from the primitive's own reset_value property rather than the
// min formula term spec.md's prose gives for this rewrite, since
// builder.UpDownCounter already distinguishes reset_value from min: using
// min here would make the fused form reset to a different value than the
// unfused form whenever reset_value != min, breaking the inliner's
// semantics-preservation guarantee for the one case most likely to be
// exercised (a counter that resets to 0 with a nonzero min).
func (o *Optimizer) tryFuseUpDownCounter(p *core.Primitive) {
	self := core.NewWire(core.Number, core.NewPlaceholder(core.Number))
	st := &arithState{o: o, leafVar: make(map[*core.Wire]string), leafWire: make(map[string]*core.Wire)}

	selfExpr, ok := st.expr(self)
	if !ok {
		return
	}
	upExpr, ok := st.expr(p.Inputs["up"])
	if !ok {
		return
	}
	downExpr, ok := st.expr(p.Inputs["down"])
	if !ok {
		return
	}
	resetExpr, ok := st.expr(p.Inputs["reset"])
	if !ok {
		return
	}

	min, _ := p.Properties["min"].(float64)
	max, _ := p.Properties["max"].(float64)
	increment, _ := p.Properties["increment"].(float64)
	resetValue, _ := p.Properties["reset_value"].(float64)
	incStr := formatFloat(increment)

	body := fmt.Sprintf("clamp((1-%s)*(%s+%s*%s-%s*%s)+%s*%s,%s,%s)",
		resetExpr, selfExpr, incStr, upExpr, incStr, downExpr,
		resetExpr, formatFloat(resetValue), formatFloat(min), formatFloat(max))

	ports := make([]string, len(st.order))
	inputs := make(map[string]*core.Wire, len(st.order))
	for i, name := range st.order {
		ports[i] = name
		inputs[name] = st.leafWire[name]
	}
	p.Descriptor = core.PrimitiveDescriptor{Kind: builder.KindArithmeticFn8, InputPorts: ports, OutputTypes: []core.SignalType{core.Number}}
	p.Inputs = inputs
	p.Properties = map[string]interface{}{"expression": body}
	self.ReplaceProducer(p)
}

// arithState accumulates one fused arithmetic expression's leaf variable
// assignment while recursing through a Number-typed subtree.
type arithState struct {
	o        *Optimizer
	leafVar  map[*core.Wire]string
	leafWire map[string]*core.Wire
	order    []string
}

func (st *arithState) leaf(w *core.Wire) (string, bool) {
	if name, ok := st.leafVar[w]; ok {
		return name, true
	}
	if len(st.order) >= len(variableAlphabet) {
		return "", false
	}
	name := variableAlphabet[len(st.order)]
	st.leafVar[w] = name
	st.leafWire[name] = w
	st.order = append(st.order, name)
	return name, true
}

func (st *arithState) expr(w *core.Wire) (string, bool) {
	if w == nil || w.Unconnected() {
		return "0", true
	}
	p, isPrimitive := w.Producer.(*core.Primitive)
	if !isPrimitive || !p.Optimize || st.o.stack[p] {
		return st.leaf(w)
	}
	st.o.stack[p] = true
	defer delete(st.o.stack, p)

	switch p.Descriptor.Kind {
	case builder.KindConstantNumber:
		v, _ := p.Properties["value"].(float64)
		return formatFloat(v), true
	case builder.KindAdd:
		return st.binary(w, p, "(%s+%s)")
	case builder.KindSubtract:
		return st.binary(w, p, "(%s-%s)")
	case builder.KindMultiply:
		return st.binary(w, p, "(%s*%s)")
	case builder.KindModulo:
		return st.binary(w, p, "(%s%%%s)")
	case builder.KindDivide:
		if w.NodeIndex != 0 {
			return st.leaf(w)
		}
		return st.binary(w, p, "(%s/%s)")
	case builder.KindAbs:
		return st.unary(w, p, "abs(%s)")
	case builder.KindClamp:
		return st.clamp(w, p)
	case builder.KindNumericalSwitchbox:
		return st.switchbox(w, p)
	default:
		return st.leaf(w)
	}
}

func (st *arithState) binary(w *core.Wire, p *core.Primitive, format string) (string, bool) {
	xExpr, xok := st.expr(p.Inputs["x"])
	yExpr, yok := st.expr(p.Inputs["y"])
	if !xok || !yok {
		return st.leaf(w)
	}
	return fmt.Sprintf(format, xExpr, yExpr), true
}

func (st *arithState) unary(w *core.Wire, p *core.Primitive, format string) (string, bool) {
	xExpr, ok := st.expr(p.Inputs["x"])
	if !ok {
		return st.leaf(w)
	}
	return fmt.Sprintf(format, xExpr), true
}

func (st *arithState) clamp(w *core.Wire, p *core.Primitive) (string, bool) {
	xExpr, ok := st.expr(p.Inputs["x"])
	if !ok {
		return st.leaf(w)
	}
	min, _ := p.Properties["min"].(float64)
	max, _ := p.Properties["max"].(float64)
	return fmt.Sprintf("clamp(%s,%s,%s)", xExpr, formatFloat(min), formatFloat(max)), true
}

func (st *arithState) switchbox(w *core.Wire, p *core.Primitive) (string, bool) {
	options := switchboxOptions(p)
	if len(options)+1 > maxSwitchboxFusedInputs {
		return st.leaf(w)
	}
	selExpr, ok := st.expr(p.Inputs["selector"])
	if !ok {
		return st.leaf(w)
	}
	optExprs := make([]string, len(options))
	for i, opt := range options {
		e, ok := st.expr(opt)
		if !ok {
			return st.leaf(w)
		}
		optExprs[i] = e
	}
	expr := optExprs[len(optExprs)-1]
	for i := len(optExprs) - 2; i >= 0; i-- {
		expr = fmt.Sprintf("(abs(%s-%s)<0.5?%s:%s)", selExpr, strconv.Itoa(i), optExprs[i], expr)
	}
	return expr, true
}

func switchboxOptions(p *core.Primitive) []*core.Wire {
	var opts []*core.Wire
	for _, port := range p.Descriptor.InputPorts {
		if port == "selector" {
			continue
		}
		opts = append(opts, p.Inputs[port])
	}
	return opts
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
