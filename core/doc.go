// Package core defines the central Wire, Producer and Microcontroller
// types of the dataflow compiler, and the operations that build a graph
// of typed wires without ever evaluating it.
//
// A Wire is a typed edge that observes one output port of one Producer.
// A Producer is a tagged union over exactly four concrete shapes: a
// Primitive (a concrete signal-processing block), an Unconnected sentinel,
// a Placeholder (a forward-declared producer used to close cycles), and an
// InputMarker (an external input to the microcontroller). Microcontroller
// is the root container: it owns the placed inputs/outputs, the
// declaration-ordered additional components (tooltips, declared
// properties), and the resolved component list that the resolve, optimize
// and emit packages read and update.
//
// A Microcontroller is not safe for concurrent mutation — a compile owns
// its graph exclusively for the duration of one call, and no compiler
// pass blocks or is cancellable mid-compile.
package core
