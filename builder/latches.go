package builder

import "github.com/stormworks-utils/sw-mc-builder/core"

const (
	KindJKFlipFlop    core.PrimitiveKind = "JKFlipFlop"
	KindSRLatch       core.PrimitiveKind = "SRLatch"
	KindPushToToggle  core.PrimitiveKind = "PushToToggle"
	KindBlinker       core.PrimitiveKind = "Blinker"
	KindCapacitor     core.PrimitiveKind = "Capacitor"
	KindMemoryReg     core.PrimitiveKind = "MemoryRegister"
	KindUpDownCounter core.PrimitiveKind = "UpDownCounter"
)

// JKFlipFlop returns the Q and not-Q outputs of a JK flip-flop driven by
// clock c, j and k.
func JKFlipFlop(c, j, k *core.Wire) (q, notQ *core.Wire, err error) {
	for _, w := range []*core.Wire{c, j, k} {
		if err = checkType("JKFlipFlop", w, core.Boolean); err != nil {
			return nil, nil, err
		}
	}
	p := newPrimitive(KindJKFlipFlop, []string{"clock", "j", "k"}, []core.SignalType{core.Boolean, core.Boolean})
	p.SetInputPort("clock", c)
	p.SetInputPort("j", j)
	p.SetInputPort("k", k)
	return out(p, 0, core.Boolean), out(p, 1, core.Boolean), nil
}

// SRLatch returns the Q and not-Q outputs of a set/reset latch.
func SRLatch(set, reset *core.Wire) (q, notQ *core.Wire, err error) {
	for _, w := range []*core.Wire{set, reset} {
		if err = checkType("SRLatch", w, core.Boolean); err != nil {
			return nil, nil, err
		}
	}
	p := newPrimitive(KindSRLatch, []string{"set", "reset"}, []core.SignalType{core.Boolean, core.Boolean})
	p.SetInputPort("set", set)
	p.SetInputPort("reset", reset)
	return out(p, 0, core.Boolean), out(p, 1, core.Boolean), nil
}

// PushToToggle turns a momentary press on x into a latched toggle.
func PushToToggle(x *core.Wire) (*core.Wire, error) {
	if err := checkType("PushToToggle", x, core.Boolean); err != nil {
		return nil, err
	}
	p := newPrimitive(KindPushToToggle, []string{"x"}, []core.SignalType{core.Boolean})
	p.SetInputPort("x", x)
	return out(p, 0, core.Boolean), nil
}

// Blinker returns a boolean wire that oscillates on for onSeconds and off
// for offSeconds, continuously while enabled is true.
func Blinker(enabled *core.Wire, onSeconds, offSeconds float64) (*core.Wire, error) {
	if err := checkType("Blinker", enabled, core.Boolean); err != nil {
		return nil, err
	}
	p := newPrimitive(KindBlinker, []string{"enabled"}, []core.SignalType{core.Boolean})
	p.SetInputPort("enabled", enabled)
	p.Properties["on_seconds"] = onSeconds
	p.Properties["off_seconds"] = offSeconds
	return out(p, 0, core.Boolean), nil
}

// Capacitor charges while x is true and discharges while false, returning
// true once fully charged (the in-game capacitor component).
func Capacitor(x *core.Wire, chargeSeconds, dischargeSeconds float64) (*core.Wire, error) {
	if err := checkType("Capacitor", x, core.Boolean); err != nil {
		return nil, err
	}
	p := newPrimitive(KindCapacitor, []string{"x"}, []core.SignalType{core.Boolean})
	p.SetInputPort("x", x)
	p.Properties["charge_seconds"] = chargeSeconds
	p.Properties["discharge_seconds"] = dischargeSeconds
	return out(p, 0, core.Boolean), nil
}

// MemoryRegister holds value on rising edges of write, and outputs the
// last written value otherwise.
func MemoryRegister(write, value *core.Wire) (*core.Wire, error) {
	if err := checkType("MemoryRegister", write, core.Boolean); err != nil {
		return nil, err
	}
	if err := checkType("MemoryRegister", value, core.Number); err != nil {
		return nil, err
	}
	p := newPrimitive(KindMemoryReg, []string{"write", "value"}, []core.SignalType{core.Number})
	p.SetInputPort("write", write)
	p.SetInputPort("value", value)
	return out(p, 0, core.Number), nil
}

// UpDownCounter adds increment on every tick up is true and subtracts it
// on every tick down is true, clamped to [min, max] and reset to
// resetValue whenever reset is true. The constructor builds a single
// primitive with no feedback wiring; the fusion pass rewrites it into a
// self-referential function block closed through a Placeholder (see
// optimize/inline.go).
func UpDownCounter(up, down, reset *core.Wire, min, max, increment, resetValue float64) (*core.Wire, error) {
	for _, w := range []*core.Wire{up, down, reset} {
		if err := checkType("UpDownCounter", w, core.Boolean); err != nil {
			return nil, err
		}
	}
	p := newPrimitive(KindUpDownCounter, []string{"up", "down", "reset"}, []core.SignalType{core.Number})
	p.SetInputPort("up", up)
	p.SetInputPort("down", down)
	p.SetInputPort("reset", reset)
	p.Properties["min"] = min
	p.Properties["max"] = max
	p.Properties["increment"] = increment
	p.Properties["reset_value"] = resetValue
	return out(p, 0, core.Number), nil
}
