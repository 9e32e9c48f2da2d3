package core

import "fmt"

// SignalType is the closed tag set of wire types. Wires are strongly typed
// by this tag; a type mismatch at graph-construction time is a contract
// violation (ErrTypeMismatch).
type SignalType int

const (
	// Number carries a float64-valued signal.
	Number SignalType = iota
	// Boolean carries an on/off signal.
	Boolean
	// Composite carries a bundle of 32 independently-typed channels.
	Composite
	// Audio carries an audio signal.
	Audio
	// Video carries a video signal.
	Video
)

// String renders the SignalType the way it would appear in error messages
// and emitted documents.
func (t SignalType) String() string {
	switch t {
	case Number:
		return "Number"
	case Boolean:
		return "Boolean"
	case Composite:
		return "Composite"
	case Audio:
		return "Audio"
	case Video:
		return "Video"
	default:
		return fmt.Sprintf("SignalType(%d)", int(t))
	}
}

// PrimitiveKind identifies a concrete primitive component kind (Add,
// Equal, Pulse, LuaScript, ...). It is the discriminant the optimizer
// switches on rather than a runtime type test.
type PrimitiveKind string

// GridPosition is a 2D placement on the 6x6 microcontroller surface.
type GridPosition struct {
	X, Y int
}

// Warning is a non-fatal compile diagnostic: node placement beyond
// declared dimensions, or mixed slice-assignment/Set() usage on one
// composite wire. Warnings never abort a compile.
type Warning struct {
	Message string
}

func (w Warning) String() string { return w.Message }
