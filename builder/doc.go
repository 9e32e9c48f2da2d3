// Package builder is the construction DSL for the dataflow graph defined
// in core: one function per primitive component kind, each returning the
// wire(s) observing that component's output(s) rather than the component
// itself. Callers compose a microcontroller by chaining these functions;
// nothing in this package evaluates the graph — that is resolve's and
// optimize's job.
//
// Every constructor registers its PrimitiveDescriptor into Library the
// first time it builds a primitive of that kind. Each primitive also
// carries its own descriptor, which is what emit reads for port order and
// output arity.
package builder
