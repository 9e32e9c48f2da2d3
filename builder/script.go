package builder

import (
	"github.com/stormworks-utils/sw-mc-builder/core"
	"github.com/stormworks-utils/sw-mc-builder/script"
)

const KindLuaScript core.PrimitiveKind = "LuaScript"

// scriptInputPorts/scriptOutputTypes mirror the in-game Lua script
// component's four number and four boolean channels on each side.
var (
	scriptInputPorts  = []string{"number_input_1", "number_input_2", "number_input_3", "number_input_4", "boolean_input_1", "boolean_input_2", "boolean_input_3", "boolean_input_4"}
	scriptOutputTypes = []core.SignalType{core.Number, core.Number, core.Number, core.Number, core.Boolean, core.Boolean, core.Boolean, core.Boolean}
)

// LuaScript embeds source as a Lua script component. verifier checks the
// source is well-formed before the component is constructed at all,
// standing in for the dependency-resolving minifier (that minifier is
// out of scope here, only its verification contract is kept).
// numberInputs/booleanInputs may contain nil entries for channels the
// script does not use.
func LuaScript(verifier script.Verifier, source string, numberInputs, booleanInputs [4]*core.Wire) (numberOutputs, booleanOutputs [4]*core.Wire, err error) {
	if err = verifier.Verify(source); err != nil {
		return numberOutputs, booleanOutputs, builderErrorf("LuaScript", core.ErrScript, "%v", err)
	}
	p := newPrimitive(KindLuaScript, scriptInputPorts, scriptOutputTypes)
	for i, w := range numberInputs {
		if w == nil {
			continue
		}
		if err = checkType("LuaScript", w, core.Number); err != nil {
			return numberOutputs, booleanOutputs, err
		}
		p.SetInputPort(scriptInputPorts[i], w)
	}
	for i, w := range booleanInputs {
		if w == nil {
			continue
		}
		if err = checkType("LuaScript", w, core.Boolean); err != nil {
			return numberOutputs, booleanOutputs, err
		}
		p.SetInputPort(scriptInputPorts[4+i], w)
	}
	p.Properties["source"] = source
	for i := range numberOutputs {
		numberOutputs[i] = out(p, i, core.Number)
	}
	for i := range booleanOutputs {
		booleanOutputs[i] = out(p, 4+i, core.Boolean)
	}
	return numberOutputs, booleanOutputs, nil
}
