package builder

import "github.com/stormworks-utils/sw-mc-builder/core"

const (
	KindEqual       core.PrimitiveKind = "Equal"
	KindGreaterThan core.PrimitiveKind = "GreaterThan"
	KindLessThan    core.PrimitiveKind = "LessThan"
	KindThreshold   core.PrimitiveKind = "Threshold"
)

// Equal returns true when |a-b| <= epsilon. Note the epsilon == 0 case is
// lowered by optimize.LowerBoolean into an arithmetic expression that
// evaluates to 0 for every input, equal operands included — see
// optimize's boolean.go for the detail. This constructor does not special-case
// epsilon at construction time; the behavior lives entirely in lowering.
func Equal(a, b *core.Wire, epsilon float64) (*core.Wire, error) {
	if err := checkType("Equal", a, core.Number); err != nil {
		return nil, err
	}
	if err := checkType("Equal", b, core.Number); err != nil {
		return nil, err
	}
	p := newPrimitive(KindEqual, []string{"x", "y"}, []core.SignalType{core.Boolean})
	p.SetInputPort("x", a)
	p.SetInputPort("y", b)
	p.Properties["epsilon"] = epsilon
	return out(p, 0, core.Boolean), nil
}

// GreaterThan returns a > b.
func GreaterThan(a, b *core.Wire) (*core.Wire, error) {
	return comparisonOp("GreaterThan", KindGreaterThan, a, b)
}

// LessThan returns a < b.
func LessThan(a, b *core.Wire) (*core.Wire, error) {
	return comparisonOp("LessThan", KindLessThan, a, b)
}

func comparisonOp(fn string, kind core.PrimitiveKind, a, b *core.Wire) (*core.Wire, error) {
	if err := checkType(fn, a, core.Number); err != nil {
		return nil, err
	}
	if err := checkType(fn, b, core.Number); err != nil {
		return nil, err
	}
	p := newPrimitive(kind, []string{"x", "y"}, []core.SignalType{core.Boolean})
	p.SetInputPort("x", a)
	p.SetInputPort("y", b)
	return out(p, 0, core.Boolean), nil
}

// Threshold returns true while x stays within [low, high].
func Threshold(x *core.Wire, low, high float64) (*core.Wire, error) {
	if err := checkType("Threshold", x, core.Number); err != nil {
		return nil, err
	}
	p := newPrimitive(KindThreshold, []string{"x"}, []core.SignalType{core.Boolean})
	p.SetInputPort("x", x)
	p.Properties["low"] = low
	p.Properties["high"] = high
	return out(p, 0, core.Boolean), nil
}
