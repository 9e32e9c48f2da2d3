package builder

import "github.com/stormworks-utils/sw-mc-builder/core"

const (
	KindPID         core.PrimitiveKind = "PID"
	KindAdvancedPID core.PrimitiveKind = "AdvancedPID"
)

// PID returns the control output of a standard PID controller tracking
// setpoint against processVariable.
func PID(processVariable, setpoint *core.Wire, p, i, d float64) (*core.Wire, error) {
	if err := checkType("PID", processVariable, core.Number); err != nil {
		return nil, err
	}
	if err := checkType("PID", setpoint, core.Number); err != nil {
		return nil, err
	}
	prim := newPrimitive(KindPID, []string{"process_variable", "setpoint"}, []core.SignalType{core.Number})
	prim.SetInputPort("process_variable", processVariable)
	prim.SetInputPort("setpoint", setpoint)
	prim.Properties["p"] = p
	prim.Properties["i"] = i
	prim.Properties["d"] = d
	return out(prim, 0, core.Number), nil
}

// AdvancedPID is the PID variant exposing explicit min/max output clamps
// and a reset input, matching the in-game "Advanced PID Controller".
func AdvancedPID(processVariable, setpoint, reset *core.Wire, p, i, d, min, max float64) (*core.Wire, error) {
	if err := checkType("AdvancedPID", processVariable, core.Number); err != nil {
		return nil, err
	}
	if err := checkType("AdvancedPID", setpoint, core.Number); err != nil {
		return nil, err
	}
	if err := checkType("AdvancedPID", reset, core.Boolean); err != nil {
		return nil, err
	}
	prim := newPrimitive(KindAdvancedPID, []string{"process_variable", "setpoint", "reset"}, []core.SignalType{core.Number})
	prim.SetInputPort("process_variable", processVariable)
	prim.SetInputPort("setpoint", setpoint)
	prim.SetInputPort("reset", reset)
	prim.Properties["p"] = p
	prim.Properties["i"] = i
	prim.Properties["d"] = d
	prim.Properties["min"] = min
	prim.Properties["max"] = max
	return out(prim, 0, core.Number), nil
}
