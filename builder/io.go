package builder

import "github.com/stormworks-utils/sw-mc-builder/core"

const (
	KindNumberTooltip  core.PrimitiveKind = "NumberTooltip"
	KindBooleanTooltip core.PrimitiveKind = "BooleanTooltip"
)

// AddNumberTooltip registers a debug display of x's value under label,
// wiring it as an additional component so it survives even though nothing
// downstream observes a tooltip's (nonexistent) output.
func AddNumberTooltip(mc *core.Microcontroller, label string, x *core.Wire) error {
	if err := checkType("AddNumberTooltip", x, core.Number); err != nil {
		return err
	}
	p := newPrimitive(KindNumberTooltip, []string{"x"}, nil)
	p.SetInputPort("x", x)
	p.Properties["label"] = label
	mc.AddAdditionalComponent(p)
	return nil
}

// AddBooleanTooltip is the Boolean counterpart of AddNumberTooltip.
func AddBooleanTooltip(mc *core.Microcontroller, label string, x *core.Wire) error {
	if err := checkType("AddBooleanTooltip", x, core.Boolean); err != nil {
		return err
	}
	p := newPrimitive(KindBooleanTooltip, []string{"x"}, nil)
	p.SetInputPort("x", x)
	p.Properties["label"] = label
	mc.AddAdditionalComponent(p)
	return nil
}
