package optimize

import (
	"fmt"

	"github.com/stormworks-utils/sw-mc-builder/builder"
	"github.com/stormworks-utils/sw-mc-builder/core"
)

// variableAlphabet is the fixed positional naming fusion allocates leaf
// variables from, matching builder's ArithmeticFunction8In/
// BooleanFunction8In port order.
var variableAlphabet = [8]string{"x", "y", "z", "w", "a", "b", "c", "d"}

// LowerBoolean attempts to rewrite the boolean subtree rooted at w into a
// single closed-form {0,1}-valued arithmetic expression string, using at
// most 8-extra distinct leaf variables (extra reserves slots for
// variables the caller already allocated elsewhere in a larger fused
// expression). On success it returns the expression, the variable->wire
// map for every leaf the expression references, and the unused tail of
// the variable alphabet; ok is false if the subtree needs more leaves
// than fit in budget, in which case expr/deps/extraNames are zero values
// and the caller must leave the subtree as a plain boolean wire.
func LowerBoolean(w *core.Wire, extra int) (expr string, deps map[string]*core.Wire, extraNames []string, ok bool) {
	budget := 8 - extra
	if budget <= 0 {
		return "", nil, nil, false
	}
	st := &lowerState{
		wireVar: make(map[*core.Wire]string),
		deps:    make(map[string]*core.Wire),
		budget:  budget,
	}
	e, ok := st.lower(w)
	if !ok {
		return "", nil, nil, false
	}
	used := len(st.deps)
	return e, st.deps, variableAlphabet[used:], true
}

type lowerState struct {
	wireVar map[*core.Wire]string
	deps    map[string]*core.Wire
	budget  int
}

func (st *lowerState) allocLeaf(w *core.Wire) (string, bool) {
	if name, ok := st.wireVar[w]; ok {
		return name, true
	}
	if len(st.deps) >= st.budget {
		return "", false
	}
	name := variableAlphabet[len(st.deps)]
	st.wireVar[w] = name
	st.deps[name] = w
	return name, true
}

func (st *lowerState) lower(w *core.Wire) (string, bool) {
	if w == nil || w.Unconnected() {
		return "0", true
	}
	p, isPrimitive := w.Producer.(*core.Primitive)
	if !isPrimitive {
		return st.allocLeaf(w)
	}
	switch p.Descriptor.Kind {
	case builder.KindConstantOn:
		return "1", true
	case builder.KindAND:
		return st.binaryBool(p, "%s*%s")
	case builder.KindOR:
		return st.binaryBool(p, "min(1,%s+%s)")
	case builder.KindXOR:
		return st.binaryBool(p, "abs(%s-%s)")
	case builder.KindNAND:
		return st.binaryBool(p, "1-(%s*%s)")
	case builder.KindNOR:
		return st.binaryBool(p, "1-min(1,%s+%s)")
	case builder.KindNOT:
		return st.unaryBool(p, "1-%s")
	case builder.KindEqual:
		return st.lowerEqual(p)
	case builder.KindGreaterThan:
		return st.lowerCompare(p, "clamp(sign(%s-%s),0,1)")
	case builder.KindLessThan:
		return st.lowerCompare(p, "clamp(sign(%s-%s),0,1)", true)
	case builder.KindThreshold:
		return st.lowerThreshold(p)
	default:
		return st.allocLeaf(w)
	}
}

func (st *lowerState) binaryBool(p *core.Primitive, format string) (string, bool) {
	xExpr, ok := st.lower(p.Inputs["x"])
	if !ok {
		return "", false
	}
	yExpr, ok := st.lower(p.Inputs["y"])
	if !ok {
		return "", false
	}
	return fmt.Sprintf(format, xExpr, yExpr), true
}

func (st *lowerState) unaryBool(p *core.Primitive, format string) (string, bool) {
	xExpr, ok := st.lower(p.Inputs["x"])
	if !ok {
		return "", false
	}
	return fmt.Sprintf(format, xExpr), true
}

// lowerEqual lowers an Equal(x,y,epsilon) comparator using sign, matching
// the documented latent defect at epsilon == 0: sign(a-b)+sign(b-a) is 0
// for every input (the two terms always cancel, whether a>b, a<b, or
// a==b), so an epsilon-0 Equal lowers to a constant 0 rather than ever
// reporting true. This is deliberately kept rather than "fixed". For
// epsilon != 0, the formula reports 1 when |a-b| is within epsilon of 0.
func (st *lowerState) lowerEqual(p *core.Primitive) (string, bool) {
	xExpr, ok := st.lower(p.Inputs["x"])
	if !ok {
		return "", false
	}
	yExpr, ok := st.lower(p.Inputs["y"])
	if !ok {
		return "", false
	}
	epsilon, _ := p.Properties["epsilon"].(float64)
	if epsilon == 0 {
		return fmt.Sprintf("((sign(%s-%s)+sign(%s-%s))/2)", xExpr, yExpr, yExpr, xExpr), true
	}
	return fmt.Sprintf("((1-sign(abs(%s-%s)-%g))/2)", xExpr, yExpr, epsilon), true
}

func (st *lowerState) lowerCompare(p *core.Primitive, format string, swap ...bool) (string, bool) {
	xExpr, ok := st.lower(p.Inputs["x"])
	if !ok {
		return "", false
	}
	yExpr, ok := st.lower(p.Inputs["y"])
	if !ok {
		return "", false
	}
	if len(swap) > 0 && swap[0] {
		xExpr, yExpr = yExpr, xExpr
	}
	return fmt.Sprintf(format, xExpr, yExpr), true
}

func (st *lowerState) lowerThreshold(p *core.Primitive) (string, bool) {
	xExpr, ok := st.lower(p.Inputs["x"])
	if !ok {
		return "", false
	}
	low, _ := p.Properties["low"].(float64)
	high, _ := p.Properties["high"].(float64)
	return fmt.Sprintf("clamp(sign(%s-%g)+1,0,1)*clamp(sign(%g-%s)+1,0,1)", xExpr, low, high, xExpr), true
}
