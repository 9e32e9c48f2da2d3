package builder

import "github.com/stormworks-utils/sw-mc-builder/core"

const (
	KindCompositeReadNumber   core.PrimitiveKind = "CompositeReadNumber"
	KindCompositeReadBoolean  core.PrimitiveKind = "CompositeReadBoolean"
	KindCompositeWriteNumber  core.PrimitiveKind = "CompositeWriteNumber"
	KindCompositeWriteBoolean core.PrimitiveKind = "CompositeWriteBoolean"
	KindCompositeBinaryToNum  core.PrimitiveKind = "CompositeBinaryToNumber"
	KindNumberToCompositeBin  core.PrimitiveKind = "NumberToCompositeBinary"
)

// MaxChannel is the highest addressable composite channel.
const MaxChannel = 32

func channelPortName(i int) string {
	return "channel_" + itoaBuilder(i) + "_input"
}

func compositeReadPorts() []string {
	return []string{"composite_signal_input", "dynamic_channel_input"}
}

// CompositeReadNumber reads a Number channel out of composite. If channel
// is 0, dynamicChannel must be non-nil and selects the channel at runtime;
// otherwise channel must be in 1..32 and dynamicChannel is ignored.
func CompositeReadNumber(composite *core.Wire, channel int, dynamicChannel *core.Wire) (*core.Wire, error) {
	return compositeRead("CompositeReadNumber", KindCompositeReadNumber, core.Number, composite, channel, dynamicChannel)
}

// CompositeReadBoolean reads a Boolean channel out of composite, with the
// same channel/dynamicChannel contract as CompositeReadNumber.
func CompositeReadBoolean(composite *core.Wire, channel int, dynamicChannel *core.Wire) (*core.Wire, error) {
	return compositeRead("CompositeReadBoolean", KindCompositeReadBoolean, core.Boolean, composite, channel, dynamicChannel)
}

func compositeRead(fn string, kind core.PrimitiveKind, t core.SignalType, composite *core.Wire, channel int, dynamicChannel *core.Wire) (*core.Wire, error) {
	if err := checkType(fn, composite, core.Composite); err != nil {
		return nil, err
	}
	if channel == 0 {
		if dynamicChannel == nil {
			return nil, builderErrorf(fn, core.ErrOutOfBounds, "channel 0 requires a dynamic channel wire")
		}
		if err := checkType(fn, dynamicChannel, core.Number); err != nil {
			return nil, err
		}
	} else if channel < 1 || channel > MaxChannel {
		return nil, builderErrorf(fn, core.ErrOutOfBounds, "channel %d out of range 1..%d", channel, MaxChannel)
	}
	p := newPrimitive(kind, compositeReadPorts(), []core.SignalType{t})
	p.SetInputPort("composite_signal_input", composite)
	if channel == 0 {
		p.SetInputPort("dynamic_channel_input", dynamicChannel)
	}
	p.Properties["channel"] = channel
	return out(p, 0, t), nil
}

// CompositeWriteNumber merges the given channel -> value assignments (1..32)
// into composite, producing a new composite wire. startChannel, if
// non-nil, offsets every channel index at runtime by its value (wired
// to the "start_channel_input" dynamic base).
// Multiple writes chained through composite are later absorbed into one
// physical component by optimize.MergeCompositeWrites, so callers should
// not hesitate to call this once per channel.
func CompositeWriteNumber(composite *core.Wire, channels map[int]*core.Wire, startChannel *core.Wire) (*core.Wire, error) {
	return compositeWrite("CompositeWriteNumber", KindCompositeWriteNumber, core.Number, composite, channels, startChannel)
}

// CompositeWriteBoolean is the Boolean counterpart of CompositeWriteNumber.
func CompositeWriteBoolean(composite *core.Wire, channels map[int]*core.Wire, startChannel *core.Wire) (*core.Wire, error) {
	return compositeWrite("CompositeWriteBoolean", KindCompositeWriteBoolean, core.Boolean, composite, channels, startChannel)
}

func compositeWrite(fn string, kind core.PrimitiveKind, t core.SignalType, composite *core.Wire, channels map[int]*core.Wire, startChannel *core.Wire) (*core.Wire, error) {
	if err := checkType(fn, composite, core.Composite); err != nil {
		return nil, err
	}
	ports := core.CompositeChannelPorts()
	p := newPrimitive(kind, ports, []core.SignalType{core.Composite})
	p.SetInputPort("composite_signal_input", composite)
	if startChannel != nil {
		if err := checkType(fn, startChannel, core.Number); err != nil {
			return nil, err
		}
		p.SetInputPort("start_channel_input", startChannel)
	}
	for ch, w := range channels {
		if ch < 1 || ch > MaxChannel {
			return nil, builderErrorf(fn, core.ErrOutOfBounds, "channel %d out of range 1..%d", ch, MaxChannel)
		}
		if err := checkType(fn, w, t); err != nil {
			return nil, err
		}
		p.SetInputPort(channelPortName(ch), w)
	}
	return out(p, 0, core.Composite), nil
}

// CompositeBinaryToNumber packs all 32 boolean channels of composite into
// a single 32-bit number, channel 1 as the least significant bit.
func CompositeBinaryToNumber(composite *core.Wire) (*core.Wire, error) {
	if err := checkType("CompositeBinaryToNumber", composite, core.Composite); err != nil {
		return nil, err
	}
	p := newPrimitive(KindCompositeBinaryToNum, []string{"composite_signal_input"}, []core.SignalType{core.Number})
	p.SetInputPort("composite_signal_input", composite)
	return out(p, 0, core.Number), nil
}

// NumberToCompositeBinary unpacks x's low 32 bits into the boolean
// channels of a fresh composite wire, channel 1 as the least significant
// bit.
func NumberToCompositeBinary(x *core.Wire) (*core.Wire, error) {
	if err := checkType("NumberToCompositeBinary", x, core.Number); err != nil {
		return nil, err
	}
	p := newPrimitive(KindNumberToCompositeBin, []string{"x"}, []core.SignalType{core.Composite})
	p.SetInputPort("x", x)
	return out(p, 0, core.Composite), nil
}

// CompositeSet writes value into composite's channel using the .Set()-
// style helper, recording the usage on mc's write tracker so a later
// index-assignment on the same wire triggers the mixed-style warning.
func CompositeSet(mc *core.Microcontroller, composite *core.Wire, channel int, value *core.Wire) (*core.Wire, error) {
	result, err := compositeAssign(composite, channel, value)
	if err != nil {
		return nil, err
	}
	mc.Tracker().RecordSetCall(composite)
	return result, nil
}

// CompositeIndexAssign writes value into composite's channel using
// index-assignment style, recording the usage on mc's write tracker.
func CompositeIndexAssign(mc *core.Microcontroller, composite *core.Wire, channel int, value *core.Wire) (*core.Wire, error) {
	result, err := compositeAssign(composite, channel, value)
	if err != nil {
		return nil, err
	}
	mc.Tracker().RecordIndexAssign(composite)
	return result, nil
}

func compositeAssign(composite *core.Wire, channel int, value *core.Wire) (*core.Wire, error) {
	switch value.Type {
	case core.Number:
		return CompositeWriteNumber(composite, map[int]*core.Wire{channel: value}, nil)
	case core.Boolean:
		return CompositeWriteBoolean(composite, map[int]*core.Wire{channel: value}, nil)
	default:
		return nil, builderErrorf("compositeAssign", core.ErrTypeMismatch, "cannot write a %s onto a composite channel", value.Type)
	}
}
