package builder

import "github.com/stormworks-utils/sw-mc-builder/core"

// PulseMode selects which edge of the driving signal a Pulse primitive
// fires on.
type PulseMode int

const (
	PulseRising PulseMode = iota
	PulseFalling
	PulseBoth
)

// TimerUnit selects the time unit a timer primitive's duration property
// is expressed in.
type TimerUnit int

const (
	TimerSeconds TimerUnit = iota
	TimerMinutes
	TimerTicks
)

const (
	KindPulse             core.PrimitiveKind = "Pulse"
	KindTimerRTF          core.PrimitiveKind = "TimerRTF"
	KindTimerRTO          core.PrimitiveKind = "TimerRTO"
	KindTimerTOF          core.PrimitiveKind = "TimerTOF"
	KindTimerTON          core.PrimitiveKind = "TimerTON"
	KindNumericalJunction core.PrimitiveKind = "NumericalJunction"
)

// Pulse emits a single true tick on the selected edge of x.
func Pulse(x *core.Wire, mode PulseMode) (*core.Wire, error) {
	if err := checkType("Pulse", x, core.Boolean); err != nil {
		return nil, err
	}
	p := newPrimitive(KindPulse, []string{"x"}, []core.SignalType{core.Boolean})
	p.SetInputPort("x", x)
	p.Properties["mode"] = mode
	return out(p, 0, core.Boolean), nil
}

func timer(fn string, kind core.PrimitiveKind, x *core.Wire, duration float64, unit TimerUnit) (*core.Wire, error) {
	if err := checkType(fn, x, core.Boolean); err != nil {
		return nil, err
	}
	p := newPrimitive(kind, []string{"x"}, []core.SignalType{core.Boolean})
	p.SetInputPort("x", x)
	p.Properties["duration"] = duration
	p.Properties["unit"] = unit
	return out(p, 0, core.Boolean), nil
}

// TimerRTF (retentive-timer-off-delay) stays true for duration after x
// last went false, retaining its elapsed time across re-triggers.
func TimerRTF(x *core.Wire, duration float64, unit TimerUnit) (*core.Wire, error) {
	return timer("TimerRTF", KindTimerRTF, x, duration, unit)
}

// TimerRTO (retentive-timer-on-delay) goes true duration after x first
// went true, retaining elapsed time across drops.
func TimerRTO(x *core.Wire, duration float64, unit TimerUnit) (*core.Wire, error) {
	return timer("TimerRTO", KindTimerRTO, x, duration, unit)
}

// TimerTOF (timer-off-delay) drops to false duration after x goes false.
func TimerTOF(x *core.Wire, duration float64, unit TimerUnit) (*core.Wire, error) {
	return timer("TimerTOF", KindTimerTOF, x, duration, unit)
}

// TimerTON (timer-on-delay) goes true duration after x goes true,
// resetting immediately if x drops before the delay elapses.
func TimerTON(x *core.Wire, duration float64, unit TimerUnit) (*core.Wire, error) {
	return timer("TimerTON", KindTimerTON, x, duration, unit)
}

// NumericalJunction splits x into two independently-observable copies,
// matching the in-game junction component's dual-output shape.
func NumericalJunction(x *core.Wire) (a, b *core.Wire, err error) {
	if err = checkType("NumericalJunction", x, core.Number); err != nil {
		return nil, nil, err
	}
	p := newPrimitive(KindNumericalJunction, []string{"x"}, []core.SignalType{core.Number, core.Number})
	p.SetInputPort("x", x)
	return out(p, 0, core.Number), out(p, 1, core.Number), nil
}
