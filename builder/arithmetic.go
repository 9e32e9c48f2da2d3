package builder

import "github.com/stormworks-utils/sw-mc-builder/core"

const (
	KindAdd            core.PrimitiveKind = "Add"
	KindSubtract       core.PrimitiveKind = "Subtract"
	KindMultiply       core.PrimitiveKind = "Multiply"
	KindDivide         core.PrimitiveKind = "Divide"
	KindModulo         core.PrimitiveKind = "Modulo"
	KindAbs            core.PrimitiveKind = "Abs"
	KindClamp          core.PrimitiveKind = "Clamp"
	KindConstantNumber core.PrimitiveKind = "ConstantNumber"
	KindDelta          core.PrimitiveKind = "Delta"
	KindArithmeticFn8  core.PrimitiveKind = "ArithmeticFunction8In"
)

func binaryNumberOp(fn string, kind core.PrimitiveKind, a, b *core.Wire) (*core.Wire, error) {
	if err := checkType(fn, a, core.Number); err != nil {
		return nil, err
	}
	if err := checkType(fn, b, core.Number); err != nil {
		return nil, err
	}
	p := newPrimitive(kind, []string{"x", "y"}, []core.SignalType{core.Number})
	p.SetInputPort("x", a)
	p.SetInputPort("y", b)
	return out(p, 0, core.Number), nil
}

// Add returns a + b.
func Add(a, b *core.Wire) (*core.Wire, error) { return binaryNumberOp("Add", KindAdd, a, b) }

// Sub returns a - b.
func Sub(a, b *core.Wire) (*core.Wire, error) { return binaryNumberOp("Sub", KindSubtract, a, b) }

// Mul returns a * b.
func Mul(a, b *core.Wire) (*core.Wire, error) { return binaryNumberOp("Mul", KindMultiply, a, b) }

// Mod returns a modulo b.
func Mod(a, b *core.Wire) (*core.Wire, error) { return binaryNumberOp("Mod", KindModulo, a, b) }

// Div returns the quotient a / b and a boolean wire that goes true the
// instant b is exactly zero (division by zero does not fault the
// simulator, it raises a flag).
func Div(a, b *core.Wire) (quotient, divByZero *core.Wire, err error) {
	if err = checkType("Div", a, core.Number); err != nil {
		return nil, nil, err
	}
	if err = checkType("Div", b, core.Number); err != nil {
		return nil, nil, err
	}
	p := newPrimitive(KindDivide, []string{"x", "y"}, []core.SignalType{core.Number, core.Boolean})
	p.SetInputPort("x", a)
	p.SetInputPort("y", b)
	return out(p, 0, core.Number), out(p, 1, core.Boolean), nil
}

// Abs returns |x|.
func Abs(x *core.Wire) (*core.Wire, error) {
	if err := checkType("Abs", x, core.Number); err != nil {
		return nil, err
	}
	p := newPrimitive(KindAbs, []string{"x"}, []core.SignalType{core.Number})
	p.SetInputPort("x", x)
	return out(p, 0, core.Number), nil
}

// Clamp returns x clamped to [min, max].
func Clamp(x *core.Wire, min, max float64) (*core.Wire, error) {
	if err := checkType("Clamp", x, core.Number); err != nil {
		return nil, err
	}
	p := newPrimitive(KindClamp, []string{"x"}, []core.SignalType{core.Number})
	p.SetInputPort("x", x)
	p.Properties["min"] = min
	p.Properties["max"] = max
	return out(p, 0, core.Number), nil
}

// ConstantNumber returns a wire that always carries value.
func ConstantNumber(value float64) *core.Wire {
	p := newPrimitive(KindConstantNumber, nil, []core.SignalType{core.Number})
	p.Properties["value"] = value
	return out(p, 0, core.Number)
}

// Delta returns x(t) - x(t-1), the frame-to-frame difference of x.
func Delta(x *core.Wire) (*core.Wire, error) {
	if err := checkType("Delta", x, core.Number); err != nil {
		return nil, err
	}
	p := newPrimitive(KindDelta, []string{"x"}, []core.SignalType{core.Number})
	p.SetInputPort("x", x)
	return out(p, 0, core.Number), nil
}

// ArithmeticFunction8In builds an arbitrary-expression function-block
// primitive over up to 8 named number inputs ("x","y","z","w","a","b","c","d"),
// the same positional alphabet optimize uses when it fuses arithmetic
// chains into one of these blocks. inputs may have between 1 and 8
// entries; the block gets exactly len(inputs) ports, named in that order.
func ArithmeticFunction8In(expr string, inputs ...*core.Wire) (*core.Wire, error) {
	if len(inputs) == 0 || len(inputs) > 8 {
		return nil, builderErrorf("ArithmeticFunction8In", core.ErrOutOfBounds, "%d inputs, expected 1..8", len(inputs))
	}
	ports := functionPortAlphabet[:len(inputs)]
	p := newPrimitive(KindArithmeticFn8, ports, []core.SignalType{core.Number})
	for i, w := range inputs {
		if err := checkType("ArithmeticFunction8In", w, core.Number); err != nil {
			return nil, err
		}
		p.SetInputPort(ports[i], w)
	}
	p.Properties["expression"] = expr
	return out(p, 0, core.Number), nil
}

// functionPortAlphabet is the canonical positional input-port naming for
// both arithmetic and boolean 8-input function blocks, matching the
// variable-name allocation order of the fusion pass in optimize.
var functionPortAlphabet = []string{"x", "y", "z", "w", "a", "b", "c", "d"}
