package builder

import "github.com/stormworks-utils/sw-mc-builder/core"

const (
	KindAND           core.PrimitiveKind = "AND"
	KindOR            core.PrimitiveKind = "OR"
	KindXOR           core.PrimitiveKind = "XOR"
	KindNAND          core.PrimitiveKind = "NAND"
	KindNOR           core.PrimitiveKind = "NOR"
	KindNOT           core.PrimitiveKind = "NOT"
	KindConstantOn    core.PrimitiveKind = "ConstantOn"
	KindBooleanFn8    core.PrimitiveKind = "BooleanFunction8In"
)

func binaryBoolOp(fn string, kind core.PrimitiveKind, a, b *core.Wire) (*core.Wire, error) {
	if err := checkType(fn, a, core.Boolean); err != nil {
		return nil, err
	}
	if err := checkType(fn, b, core.Boolean); err != nil {
		return nil, err
	}
	p := newPrimitive(kind, []string{"x", "y"}, []core.SignalType{core.Boolean})
	p.SetInputPort("x", a)
	p.SetInputPort("y", b)
	return out(p, 0, core.Boolean), nil
}

// And returns a AND b.
func And(a, b *core.Wire) (*core.Wire, error) { return binaryBoolOp("And", KindAND, a, b) }

// Or returns a OR b.
func Or(a, b *core.Wire) (*core.Wire, error) { return binaryBoolOp("Or", KindOR, a, b) }

// Xor returns a XOR b.
func Xor(a, b *core.Wire) (*core.Wire, error) { return binaryBoolOp("Xor", KindXOR, a, b) }

// Nand returns NOT(a AND b).
func Nand(a, b *core.Wire) (*core.Wire, error) { return binaryBoolOp("Nand", KindNAND, a, b) }

// Nor returns NOT(a OR b).
func Nor(a, b *core.Wire) (*core.Wire, error) { return binaryBoolOp("Nor", KindNOR, a, b) }

// Not returns NOT x.
func Not(x *core.Wire) (*core.Wire, error) {
	if err := checkType("Not", x, core.Boolean); err != nil {
		return nil, err
	}
	p := newPrimitive(KindNOT, []string{"x"}, []core.SignalType{core.Boolean})
	p.SetInputPort("x", x)
	return out(p, 0, core.Boolean), nil
}

// ConstantOn returns a wire that is always true.
func ConstantOn() *core.Wire {
	p := newPrimitive(KindConstantOn, nil, []core.SignalType{core.Boolean})
	return out(p, 0, core.Boolean)
}

// BooleanFunction8In is the boolean counterpart of ArithmeticFunction8In:
// an arbitrary boolean expression over up to 8 named inputs, the fusion
// target optimize.LowerBoolean rewrites comparator/logic subtrees into.
func BooleanFunction8In(expr string, inputs ...*core.Wire) (*core.Wire, error) {
	if len(inputs) == 0 || len(inputs) > 8 {
		return nil, builderErrorf("BooleanFunction8In", core.ErrOutOfBounds, "%d inputs, expected 1..8", len(inputs))
	}
	ports := functionPortAlphabet[:len(inputs)]
	p := newPrimitive(KindBooleanFn8, ports, []core.SignalType{core.Boolean})
	for i, w := range inputs {
		if err := checkType("BooleanFunction8In", w, core.Boolean); err != nil {
			return nil, err
		}
		p.SetInputPort(ports[i], w)
	}
	p.Properties["expression"] = expr
	return out(p, 0, core.Boolean), nil
}
