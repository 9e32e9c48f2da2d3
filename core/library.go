package core

// PrimitiveLibrary is the descriptor registry external interface: it lets
// a caller look up a primitive kind's port order and output arity without
// importing builder, which owns the concrete constructors.
// It lives in core (rather than being purely abstract) because builder's
// constructors register into the same lookup.
type PrimitiveLibrary interface {
	Descriptor(kind PrimitiveKind) (PrimitiveDescriptor, bool)
	Kinds() []PrimitiveKind
}

// Library is the default, in-memory PrimitiveLibrary implementation.
// builder owns one package-level instance and registers each descriptor
// it defines into it the first time a primitive of that kind is built.
type Library struct {
	descriptors map[PrimitiveKind]PrimitiveDescriptor
	order       []PrimitiveKind
}

// NewLibrary returns an empty Library ready for Register calls.
func NewLibrary() *Library {
	return &Library{descriptors: make(map[PrimitiveKind]PrimitiveDescriptor)}
}

// Register adds desc to the library, keyed by desc.Kind. Registering the
// same kind twice overwrites the earlier descriptor but does not change
// its position in Kinds().
func (l *Library) Register(desc PrimitiveDescriptor) {
	if _, exists := l.descriptors[desc.Kind]; !exists {
		l.order = append(l.order, desc.Kind)
	}
	l.descriptors[desc.Kind] = desc
}

// Descriptor implements PrimitiveLibrary.
func (l *Library) Descriptor(kind PrimitiveKind) (PrimitiveDescriptor, bool) {
	d, ok := l.descriptors[kind]
	return d, ok
}

// Kinds implements PrimitiveLibrary, returning registration order.
func (l *Library) Kinds() []PrimitiveKind {
	out := make([]PrimitiveKind, len(l.order))
	copy(out, l.order)
	return out
}
