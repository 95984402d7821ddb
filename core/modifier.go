package core

// ModifierActionKind is a closed sum type for the mutation a Modifier
// performs. As with PredicateKind, new mutations are added as cases
// here, never by widening this into an interface.
type ModifierActionKind int

const (
	// Nothing is a no-op, always legal.
	Nothing ModifierActionKind = iota
	// SetTags adds Tags to the target's Tags.
	SetTags
	// UnsetTags removes Tags from the target's Tags.
	UnsetTags
	// Inc adds one to the named Counter. Requires the counter to
	// already be present on the target.
	Inc
	// Dec subtracts one from the named Counter. Requires the
	// counter to be present and > 0.
	Dec
	// Clear sets the named Counter to zero. Requires the counter
	// to already be present.
	Clear
	// Bind binds Slot on the target to the Object resolved by
	// BindTarget.
	Bind
	// Unbind clears Slot on This regardless of Target.
	Unbind
)

// Modifier is one guarded mutation: canApply tests whether the
// mutation is legal given the current state, apply performs it. The
// two phases run separately so an Actuator can check every Modifier's
// guard before committing any of their effects.
type Modifier struct {
	Action ModifierActionKind `json:"action" yaml:"action"`

	// Target names the Object the mutation is performed on.
	Target ModifierTarget `json:"target" yaml:"target"`

	// BindTarget names the Object a Bind modifier binds Slot to.
	// Unused by every other Action.
	BindTarget ModifierTarget `json:"bindTarget,omitempty" yaml:"bindTarget,omitempty"`

	Tags    TagList `json:"tags,omitempty" yaml:"tags,omitempty"`
	Counter Symbol  `json:"counter,omitempty" yaml:"counter,omitempty"`
	Slot    Symbol  `json:"slot,omitempty" yaml:"slot,omitempty"`
}

// canApply reports whether m is legal to run right now. Nothing,
// SetTags, and UnsetTags are unconditional even when Target resolves
// to nil (an unbound slot dereference); apply no-ops those rather than
// mutating anything. Every other action still requires Target to
// resolve.
func (m Modifier) canApply(c *Container, this, other *Object) bool {
	switch m.Action {
	case Nothing, SetTags, UnsetTags:
		return true
	}

	target := getCurrent(c, m.Target, this, other)
	if target == nil {
		return false
	}

	switch m.Action {
	case Inc, Clear:
		return target.Counters.Has(m.Counter)
	case Dec:
		v, have := target.Counters.Get(m.Counter)
		return have && v > 0
	case Bind:
		if !target.Slots.Has(m.Slot) {
			return false
		}
		return getCurrent(c, m.BindTarget, this, other) != nil
	case Unbind:
		return target.Slots.Has(m.Slot)
	default:
		return true
	}
}

// apply performs m's mutation. Callers must have already confirmed
// canApply for every modifier in the same actuator dispatch before
// applying any of them (see Actuator.dispatch); apply itself
// re-resolves Target and panics on anything canApply should have
// ruled out, since that indicates a guard/apply mismatch rather than
// a legitimate runtime condition. SetTags/UnsetTags are the exception:
// canApply passes them unconditionally, so an unresolved Target here
// is an expected no-op, not a guard/apply mismatch.
func (m Modifier) apply(c *Container, this, other *Object) {
	if m.Action == Nothing {
		return
	}

	target := getCurrent(c, m.Target, this, other)
	if target == nil {
		switch m.Action {
		case SetTags, UnsetTags:
			return
		default:
			panic("core: modifier applied against an unresolved target")
		}
	}

	switch m.Action {
	case SetTags:
		for t := range m.Tags {
			target.Tags.Add(t)
		}
	case UnsetTags:
		for t := range m.Tags {
			target.Tags.Remove(t)
		}
	case Inc:
		v, _ := target.Counters.Get(m.Counter)
		target.Counters[m.Counter] = v + 1
	case Dec:
		v, _ := target.Counters.Get(m.Counter)
		target.Counters[m.Counter] = v - 1
	case Clear:
		target.Counters[m.Counter] = 0
	case Bind:
		from := getCurrent(c, m.BindTarget, this, other)
		if from == nil {
			panic("core: bind modifier applied with an unresolved source")
		}
		target.Bindings.Bind(m.Slot, from.Id)
	case Unbind:
		// Per the engine's own quirk, Unbind always writes on
		// This regardless of Target: a modifier whose Target is
		// Other or Root still clears the slot on This.
		this.Bindings.Unbind(m.Slot)
	}
}
