package core

// PrimitiveDescriptor is the stable, serializer-facing metadata for one
// primitive kind: its kind id, the canonical iteration order of its input
// port names, and the SignalType of each of its outputs (the output arity
// is len(OutputTypes)). This realizes a "primitive component descriptor
// library" external interface — the core never inspects a descriptor
// beyond its own fields, and emit consumes it without importing builder.
type PrimitiveDescriptor struct {
	Kind        PrimitiveKind
	InputPorts  []string
	OutputTypes []SignalType
}

// OutputCount returns the descriptor's output arity.
func (d PrimitiveDescriptor) OutputCount() int { return len(d.OutputTypes) }

// OutputType returns the SignalType of the output at nodeIndex.
func (d PrimitiveDescriptor) OutputType(nodeIndex int) SignalType {
	return d.OutputTypes[nodeIndex]
}

// CompositeChannelPorts returns the 32 canonically-ordered channel port
// names plus composite_signal_input and start_channel_input:
// "channel_1_input".."channel_32_input". This is the canonical input-port
// order emit and optimize rely on for deterministic composite-write
// merging.
func CompositeChannelPorts() []string {
	ports := make([]string, 0, 34)
	ports = append(ports, "composite_signal_input", "start_channel_input")
	for i := 1; i <= 32; i++ {
		ports = append(ports, channelPortName(i))
	}
	return ports
}

// channelPortName returns the canonical input port name for channel i,
// 1-indexed.
func channelPortName(i int) string {
	return "channel_" + itoa(i) + "_input"
}

// itoa avoids pulling in strconv in this small file; kept trivial on
// purpose since the range is bounded (1..32).
func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	neg := i < 0
	if neg {
		i = -i
	}
	var buf [8]byte
	pos := len(buf)
	for i > 0 {
		pos--
		buf[pos] = byte('0' + i%10)
		i /= 10
	}
	if neg {
		pos--
		buf[pos] = '-'
	}
	return string(buf[pos:])
}
