package builder

import "github.com/stormworks-utils/sw-mc-builder/core"

const KindBooleanToNumber core.PrimitiveKind = "BooleanToNumber"

// BoolToInt returns 1 if x is true, 0 otherwise.
func BoolToInt(x *core.Wire) (*core.Wire, error) {
	if err := checkType("BoolToInt", x, core.Boolean); err != nil {
		return nil, err
	}
	p := newPrimitive(KindBooleanToNumber, []string{"x"}, []core.SignalType{core.Number})
	p.SetInputPort("x", x)
	return out(p, 0, core.Number), nil
}

// MovingAverage returns the exponential moving average of x over a window
// of the given number of samples, built as a self-referencing accumulator:
// a Placeholder stands in for the previous average until the fresh average
// primitive closes the loop onto it. It builds the tapped-accumulator
// shape as Sub/Mul/Add rather than delta/divide/add, to avoid a throwaway
// divide-by-zero flag output.
func MovingAverage(x *core.Wire, window float64) (*core.Wire, error) {
	if err := checkType("MovingAverage", x, core.Number); err != nil {
		return nil, err
	}
	if window <= 0 {
		return nil, builderErrorf("MovingAverage", core.ErrOutOfBounds, "window %v must be positive", window)
	}
	avgPrev := core.NewWire(core.Number, core.NewPlaceholder(core.Number))
	diff, err := Sub(x, avgPrev)
	if err != nil {
		return nil, err
	}
	invWindow := ConstantNumber(1.0 / window)
	step, err := Mul(diff, invWindow)
	if err != nil {
		return nil, err
	}
	newAvg, err := Add(avgPrev, step)
	if err != nil {
		return nil, err
	}
	avgPrev.ReplaceProducer(newAvg.Producer)
	return newAvg, nil
}
