package core

// compositeWriteTracker records, per composite wire, whether it has been
// mutated through the .Set()-style helper and/or through index assignment
// (builder.CompositeSet and builder.CompositeIndexAssign). Mixing the two styles on the same
// wire is legal but almost always a mistake, so it is worth warning about;
// the tracker is kept instance-scoped on the owning Microcontroller rather
// than a package global so two independent compiles never interfere with
// each other's warnings.
type compositeWriteTracker struct {
	usedSet   map[*Wire]bool
	usedIndex map[*Wire]bool
}

func newCompositeWriteTracker() *compositeWriteTracker {
	return &compositeWriteTracker{
		usedSet:   make(map[*Wire]bool),
		usedIndex: make(map[*Wire]bool),
	}
}

// RecordSetCall notes that w was mutated via the .Set() helper.
func (t *compositeWriteTracker) RecordSetCall(w *Wire) {
	t.usedSet[w] = true
}

// RecordIndexAssign notes that w was mutated via index assignment.
func (t *compositeWriteTracker) RecordIndexAssign(w *Wire) {
	t.usedIndex[w] = true
}

// Warnings returns one Warning per wire that saw both mutation styles.
func (t *compositeWriteTracker) Warnings() []Warning {
	var warnings []Warning
	for w := range t.usedSet {
		if t.usedIndex[w] {
			warnings = append(warnings, Warning{
				Message: "composite wire written via both .Set() and index assignment; pick one style",
			})
		}
	}
	return warnings
}
