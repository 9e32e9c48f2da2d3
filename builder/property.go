package builder

import "github.com/stormworks-utils/sw-mc-builder/core"

const (
	KindPropertyDropdown core.PrimitiveKind = "PropertyDropdown"
	KindPropertyNumber   core.PrimitiveKind = "PropertyNumber"
	KindPropertySlider   core.PrimitiveKind = "PropertySlider"
	KindPropertyToggle   core.PrimitiveKind = "PropertyToggle"
	KindPropertyText     core.PrimitiveKind = "PropertyText"
)

// PropertyNumber declares a user-editable number property named name,
// defaulting to value, and registers it on mc so a compile never drops it
// even if nothing downstream reads its wire. Calling Wire.ForceProperty
// on the returned wire (see core.Wire) marks the component force_property
// in the emitted document; vehicle.Merge does not consult that mark.
func PropertyNumber(mc *core.Microcontroller, name string, value float64) (*core.Wire, error) {
	p := newPrimitive(KindPropertyNumber, nil, []core.SignalType{core.Number})
	p.Properties["name"] = name
	p.Properties["value"] = value
	mc.AddAdditionalComponent(p)
	return out(p, 0, core.Number), nil
}

// PropertyToggle declares a user-editable boolean property.
func PropertyToggle(mc *core.Microcontroller, name string, value bool) (*core.Wire, error) {
	p := newPrimitive(KindPropertyToggle, nil, []core.SignalType{core.Boolean})
	p.Properties["name"] = name
	p.Properties["value"] = value
	mc.AddAdditionalComponent(p)
	return out(p, 0, core.Boolean), nil
}

// PropertySlider declares a user-editable number property constrained to
// [min, max] in steps of step.
func PropertySlider(mc *core.Microcontroller, name string, min, max, step, value float64) (*core.Wire, error) {
	if value < min || value > max {
		return nil, builderErrorf("PropertySlider", core.ErrOutOfBounds, "default %v outside [%v,%v]", value, min, max)
	}
	p := newPrimitive(KindPropertySlider, nil, []core.SignalType{core.Number})
	p.Properties["name"] = name
	p.Properties["min"] = min
	p.Properties["max"] = max
	p.Properties["step"] = step
	p.Properties["value"] = value
	mc.AddAdditionalComponent(p)
	return out(p, 0, core.Number), nil
}

// PropertyDropdown declares a user-editable enumerated property; the
// returned wire carries the selected option's index as a Number.
func PropertyDropdown(mc *core.Microcontroller, name string, options []string, defaultIndex int) (*core.Wire, error) {
	if defaultIndex < 0 || defaultIndex >= len(options) {
		return nil, builderErrorf("PropertyDropdown", core.ErrOutOfBounds, "default index %d outside 0..%d", defaultIndex, len(options)-1)
	}
	p := newPrimitive(KindPropertyDropdown, nil, []core.SignalType{core.Number})
	p.Properties["name"] = name
	p.Properties["options"] = options
	p.Properties["value"] = defaultIndex
	mc.AddAdditionalComponent(p)
	return out(p, 0, core.Number), nil
}

// AddTextProperty records a static, non-wired text property (e.g. vehicle
// display metadata) on mc. It has no output wire; it exists purely as a
// serialized property in the emitted document.
func AddTextProperty(mc *core.Microcontroller, name, value string) {
	p := newPrimitive(KindPropertyText, nil, nil)
	p.Properties["name"] = name
	p.Properties["value"] = value
	mc.AddAdditionalComponent(p)
}
