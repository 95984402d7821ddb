package core

// Actuator is one production rule: a selection of Objects, a batch of
// Modifiers applied atomically to every match, and the trap,
// notification, and halt side effects fired once the whole Actuator
// has finished dispatching for this step.
type Actuator struct {
	Name Symbol `json:"name,omitempty" yaml:"name,omitempty"`

	Selector Selector `json:"selector" yaml:"selector"`

	// Combined, if non-nil, makes this actuator cartesian: every
	// match of Selector is paired against every match of Combined.
	Combined *Selector `json:"combined,omitempty" yaml:"combined,omitempty"`

	Modifiers []Modifier `json:"modifiers,omitempty" yaml:"modifiers,omitempty"`

	Traps         []Symbol `json:"traps,omitempty" yaml:"traps,omitempty"`
	Notifications []Symbol `json:"notifications,omitempty" yaml:"notifications,omitempty"`
	DoesHalt      bool     `json:"doesHalt,omitempty" yaml:"doesHalt,omitempty"`
}

// IsCombined reports whether a is cartesian.
func (a *Actuator) IsCombined() bool {
	return a.Combined != nil
}

// dispatchResult collects what one Actuator's dispatch observed, for
// the engine to fold into step-level bookkeeping.
type dispatchResult struct {
	traps         []Symbol
	notifications []Symbol
	halts         bool
}

// dispatch runs a's selection, guard, and apply phases against c,
// following the unary or combined algorithm from the modifier
// dispatcher depending on a.IsCombined.
func (a *Actuator) dispatch(c *Container) dispatchResult {
	if a.IsCombined() {
		a.dispatchCombined(c)
	} else {
		a.dispatchUnary(c)
	}

	return dispatchResult{
		traps:         a.Traps,
		notifications: a.Notifications,
		halts:         a.DoesHalt,
	}
}

// dispatchUnary applies a's modifiers to every Object matching
// a.Selector that passes every Modifier's guard, per §4.5.
func (a *Actuator) dispatchUnary(c *Container) {
	for _, ref := range c.Select(a.Selector) {
		this := c.getObject(ref)
		if this == nil {
			continue
		}
		if !canApplyAll(c, a.Modifiers, this, nil) {
			continue
		}
		for _, m := range a.Modifiers {
			m.apply(c, this, nil)
		}
	}
}

// dispatchCombined pairs every match of a.Selector against every
// match of a.Combined, skipping self-pairing, and breaks out to the
// next this once this no longer satisfies a.Selector after a
// successful apply.
//
// otherSet is captured once before the inner loop begins; its
// members' contents may still be mutated mid-iteration by earlier
// pairings, which is intentional (see §4.5).
func (a *Actuator) dispatchCombined(c *Container) {
	thisSet := c.Select(a.Selector)
	otherSet := c.Select(*a.Combined)

	for _, thisRef := range thisSet {
		for _, otherRef := range otherSet {
			if thisRef == otherRef {
				continue
			}

			this := c.getObject(thisRef)
			other := c.getObject(otherRef)
			if this == nil || other == nil {
				continue
			}

			if !canApplyAll(c, a.Modifiers, this, other) {
				continue
			}
			for _, m := range a.Modifiers {
				m.apply(c, this, other)
			}

			if !a.Selector.All && !c.PredicatesMatch(a.Selector.Predicates, thisRef) {
				break
			}
		}
	}
}

// canApplyAll reports whether every Modifier in ms currently guards
// true for the (this[, other]) pair, so apply can be run as a group.
func canApplyAll(c *Container, ms []Modifier, this, other *Object) bool {
	for _, m := range ms {
		if !m.canApply(c, this, other) {
			return false
		}
	}
	return true
}
