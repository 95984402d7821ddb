package core

// ReferenceKind names which of a Modifier's three fixed anchors a
// ModifierTarget resolves from.
type ReferenceKind int

const (
	// Root always resolves to the Container's distinguished root
	// Object.
	Root ReferenceKind = iota
	// This resolves to the Object the enclosing Actuator is
	// currently operating on.
	This
	// Other resolves to the second Object in a combined Actuator's
	// current pairing. Using Other inside a unary Actuator is a
	// model error: dsl.Validate reports it, and getCurrent panics
	// if it is reached at run time.
	Other
)

// ModifierTarget names an Object indirectly, relative to the three
// anchors an Actuator has in scope, optionally dereferenced one slot
// deep.
type ModifierTarget struct {
	Kind ReferenceKind `json:"kind" yaml:"kind"`

	// Slot, if non-zero, means the target is whatever is bound in
	// that slot on the anchor Object, not the anchor itself.
	Slot Symbol `json:"slot,omitempty" yaml:"slot,omitempty"`
}

// getCurrent resolves ref to the Object it currently names, given the
// two Objects in scope for the running Actuator.
//
// this is always the Object the Actuator's current iteration or
// pairing step is centered on; other is only meaningful for combined
// Actuators and is nil for unary ones.
//
// A target of Other used where other is nil, a Slot that is not
// declared on the chosen anchor, or a Slot bound to an Object the
// Container no longer holds is a programmer error in the Model and
// panics rather than failing silently. dsl.Validate reports the first
// of these before a run; undeclared slots are not checked statically.
func getCurrent(c *Container, ref ModifierTarget, this, other *Object) *Object {
	var anchor *Object
	switch ref.Kind {
	case Root:
		anchor = c.getObject(c.Root())
		if anchor == nil {
			panic("core: root object missing")
		}
	case This:
		anchor = this
	case Other:
		if other == nil {
			panic("core: modifier target refers to Other in a unary actuator")
		}
		anchor = other
	default:
		panic("core: unknown reference kind")
	}

	if ref.Slot == 0 {
		return anchor
	}

	if !anchor.Slots.Has(ref.Slot) {
		panic("core: modifier target refers to an undeclared slot")
	}

	bound := anchor.Bindings.Get(ref.Slot)
	if bound == NoRef {
		return nil
	}
	obj := c.getObject(bound)
	if obj == nil {
		panic("core: slot bound to a missing object")
	}
	return obj
}
