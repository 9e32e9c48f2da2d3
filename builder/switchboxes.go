package builder

import "github.com/stormworks-utils/sw-mc-builder/core"

const (
	KindNumericalSwitchbox core.PrimitiveKind = "NumericalSwitchbox"
	KindAudioSwitchbox     core.PrimitiveKind = "AudioSwitchbox"
	KindCompositeSwitchbox core.PrimitiveKind = "CompositeSwitchbox"
	KindVideoSwitchbox     core.PrimitiveKind = "VideoSwitchbox"
)

func switchbox(fn string, kind core.PrimitiveKind, t core.SignalType, selector *core.Wire, options []*core.Wire) (*core.Wire, error) {
	if err := checkType(fn, selector, core.Number); err != nil {
		return nil, err
	}
	if len(options) == 0 {
		return nil, builderErrorf(fn, core.ErrOutOfBounds, "switchbox needs at least one option")
	}
	ports := make([]string, 0, len(options)+1)
	ports = append(ports, "selector")
	for i := range options {
		ports = append(ports, optionPortName(i))
	}
	p := newPrimitive(kind, ports, []core.SignalType{t})
	p.SetInputPort("selector", selector)
	for i, w := range options {
		if err := checkType(fn, w, t); err != nil {
			return nil, err
		}
		p.SetInputPort(optionPortName(i), w)
	}
	return out(p, 0, t), nil
}

func optionPortName(i int) string {
	return "option_" + itoaBuilder(i)
}

func itoaBuilder(i int) string {
	if i == 0 {
		return "0"
	}
	var buf [8]byte
	pos := len(buf)
	for i > 0 {
		pos--
		buf[pos] = byte('0' + i%10)
		i /= 10
	}
	return string(buf[pos:])
}

// NumericalSwitchbox selects one of options by selector's truncated
// integer value, clamped to the valid range by the underlying component.
func NumericalSwitchbox(selector *core.Wire, options ...*core.Wire) (*core.Wire, error) {
	return switchbox("NumericalSwitchbox", KindNumericalSwitchbox, core.Number, selector, options)
}

// AudioSwitchbox selects one of options by selector.
func AudioSwitchbox(selector *core.Wire, options ...*core.Wire) (*core.Wire, error) {
	return switchbox("AudioSwitchbox", KindAudioSwitchbox, core.Audio, selector, options)
}

// CompositeSwitchbox selects one of options by selector.
func CompositeSwitchbox(selector *core.Wire, options ...*core.Wire) (*core.Wire, error) {
	return switchbox("CompositeSwitchbox", KindCompositeSwitchbox, core.Composite, selector, options)
}

// VideoSwitchbox selects one of options by selector.
func VideoSwitchbox(selector *core.Wire, options ...*core.Wire) (*core.Wire, error) {
	return switchbox("VideoSwitchbox", KindVideoSwitchbox, core.Video, selector, options)
}

// Switch dispatches to the appropriate switchbox kind for t's SignalType,
// or to Or/And for Boolean (a two-way boolean switchbox is equivalent to
// (selector AND onTrue) OR (NOT selector AND onFalse), but in-game there
// is no boolean switchbox component, so boolean selection is expressed
// directly with logic gates instead).
func Switch(t core.SignalType, selector *core.Wire, options ...*core.Wire) (*core.Wire, error) {
	switch t {
	case core.Number:
		return NumericalSwitchbox(selector, options...)
	case core.Audio:
		return AudioSwitchbox(selector, options...)
	case core.Composite:
		return CompositeSwitchbox(selector, options...)
	case core.Video:
		return VideoSwitchbox(selector, options...)
	case core.Boolean:
		return booleanSwitch(selector, options...)
	default:
		return nil, builderErrorf("Switch", core.ErrTypeMismatch, "unsupported signal type %s", t)
	}
}

func booleanSwitch(selector *core.Wire, options ...*core.Wire) (*core.Wire, error) {
	if len(options) != 2 {
		return nil, builderErrorf("Switch", core.ErrOutOfBounds, "boolean switch needs exactly 2 options, got %d", len(options))
	}
	notSel, err := Not(selector)
	if err != nil {
		return nil, err
	}
	onTrue, err := And(selector, options[0])
	if err != nil {
		return nil, err
	}
	onFalse, err := And(notSel, options[1])
	if err != nil {
		return nil, err
	}
	return Or(onTrue, onFalse)
}
