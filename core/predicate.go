package core

// PredicateKind is a closed sum type: the tagged cases below are the
// only ways to test an Object. New kinds are added here, not by
// reaching for an interface hierarchy.
type PredicateKind int

const (
	// All always evaluates true.
	All PredicateKind = iota
	// TagSet tests that Predicate.Tags is a subset of the
	// object's tags.
	TagSet
	// CounterZero tests that Predicate.Counter is present on the
	// object and equal to zero; false if absent.
	CounterZero
	// IsBound tests that Predicate.Slot is present on the object's
	// Bindings with a non-NoRef value.
	IsBound
)

// Predicate is a boolean test over one Object, optionally
// dereferenced through a named slot first.
type Predicate struct {
	Kind PredicateKind `json:"kind" yaml:"kind"`

	// Negated flips the base boolean computed from Kind. Applied
	// after the InSlot dereference, per core.evaluate.
	Negated bool `json:"negated,omitempty" yaml:"negated,omitempty"`

	// InSlot, if set, means this Predicate is evaluated against
	// the object currently bound at that slot on the candidate
	// object, not the candidate itself.
	InSlot Symbol `json:"inSlot,omitempty" yaml:"inSlot,omitempty"`

	// Tags is used by TagSet.
	Tags TagList `json:"tags,omitempty" yaml:"tags,omitempty"`

	// Counter is used by CounterZero.
	Counter Symbol `json:"counter,omitempty" yaml:"counter,omitempty"`

	// Slot is used by IsBound.
	Slot Symbol `json:"slot,omitempty" yaml:"slot,omitempty"`
}

// Selector is a conjunction of Predicates. Whether a Selector is one
// side of a combined (cartesian) pairing is an Actuator-level concern,
// not something a Selector records about itself (see Actuator.Combined).
type Selector struct {
	// All, when true, matches every Object and ignores Predicates.
	All bool `json:"all,omitempty" yaml:"all,omitempty"`

	Predicates []Predicate `json:"predicates,omitempty" yaml:"predicates,omitempty"`
}

// evaluate matches a single Predicate against obj, resolving through
// c to dereference InSlot and to look up counters/tags already live
// on the chosen Object.
//
//  1. If InSlot is set, the object currently bound there is
//     substituted for obj; an unbound slot makes the whole predicate
//     false, before negation is applied.
//  2. The base boolean is computed from Kind.
//  3. The final result is base XOR Negated.
func evaluate(c *Container, p Predicate, obj *Object) bool {
	if p.InSlot != 0 {
		ref := obj.Bindings.Get(p.InSlot)
		if ref == NoRef {
			return false
		}
		obj = c.getObject(ref)
		if obj == nil {
			panic("core: slot bound to a missing object")
		}
	}

	var base bool
	switch p.Kind {
	case All:
		base = true
	case TagSet:
		base = p.Tags.Subset(obj.Tags)
	case CounterZero:
		v, have := obj.Counters.Get(p.Counter)
		base = have && v == 0
	case IsBound:
		base = obj.Bindings.Bound(p.Slot)
	}

	return base != p.Negated
}

// matches reports whether obj satisfies every Predicate in preds,
// short-circuiting on the first false.
func matches(c *Container, preds []Predicate, obj *Object) bool {
	for _, p := range preds {
		if !evaluate(c, p, obj) {
			return false
		}
	}
	return true
}
