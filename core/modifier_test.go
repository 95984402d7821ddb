package core

import "testing"

func TestIncRequiresExistingCounter(t *testing.T) {
	c := NewContainer()
	withCounter := &Object{Id: 1, Counters: CounterMap{Intern("n"): 0}, Slots: NewTagList()}
	without := &Object{Id: 2, Counters: NewCounterMap(), Slots: NewTagList()}

	m := Modifier{Action: Inc, Target: ModifierTarget{Kind: This}, Counter: Intern("n")}

	if !m.canApply(c, withCounter, nil) {
		t.Fatalf("expected Inc to apply when the counter is present")
	}
	if m.canApply(c, without, nil) {
		t.Fatalf("expected Inc to be guarded off when the counter is absent")
	}
}

func TestDecNeverDrivesCounterBelowZero(t *testing.T) {
	c := NewContainer()
	zero := &Object{Id: 1, Counters: CounterMap{Intern("n"): 0}, Slots: NewTagList()}

	m := Modifier{Action: Dec, Target: ModifierTarget{Kind: This}, Counter: Intern("n")}
	if m.canApply(c, zero, nil) {
		t.Fatalf("expected Dec to be guarded off at zero")
	}

	positive := &Object{Id: 2, Counters: CounterMap{Intern("n"): 1}, Slots: NewTagList()}
	if !m.canApply(c, positive, nil) {
		t.Fatalf("expected Dec to apply when the counter is positive")
	}
	m.apply(c, positive, nil)
	if v, _ := positive.Counters.Get(Intern("n")); v != 0 {
		t.Fatalf("expected counter to reach 0, got %d", v)
	}
}

func TestClearIsIdempotent(t *testing.T) {
	obj := &Object{Id: 1, Counters: CounterMap{Intern("n"): 5}, Slots: NewTagList()}
	c := NewContainer()
	m := Modifier{Action: Clear, Target: ModifierTarget{Kind: This}, Counter: Intern("n")}

	m.apply(c, obj, nil)
	once, _ := obj.Counters.Get(Intern("n"))
	m.apply(c, obj, nil)
	twice, _ := obj.Counters.Get(Intern("n"))

	if once != 0 || twice != 0 {
		t.Fatalf("expected two consecutive clears to both be 0, got %d then %d", once, twice)
	}
}

func TestSetTagsThenUnsetTagsRestoresDisjointOriginal(t *testing.T) {
	c := NewContainer()
	obj := &Object{Id: 1, Tags: NewTagList(Intern("ready")), Counters: NewCounterMap(), Slots: NewTagList()}
	original := obj.Tags.Copy()

	add := NewTagList(Intern("free"))
	set := Modifier{Action: SetTags, Target: ModifierTarget{Kind: This}, Tags: add}
	unset := Modifier{Action: UnsetTags, Target: ModifierTarget{Kind: This}, Tags: add}

	set.apply(c, obj, nil)
	unset.apply(c, obj, nil)

	if !obj.Tags.Subset(original) || !original.Subset(obj.Tags) {
		t.Fatalf("expected SetTags then UnsetTags to restore the original tag set, got %v", obj.Tags)
	}
}

func TestSetTagsOnUnboundSlotNoOpsRatherThanGuardingOff(t *testing.T) {
	c := NewContainer()
	slot := Intern("left")
	this := &Object{Id: 1, Tags: NewTagList(), Slots: NewTagList(slot), Bindings: SlotMap{}}

	m := Modifier{Action: SetTags, Target: ModifierTarget{Kind: This, Slot: slot}, Tags: NewTagList(Intern("free"))}

	if !m.canApply(c, this, nil) {
		t.Fatalf("expected SetTags to be unconditional even when its target dereferences an unbound slot")
	}
	// apply must not panic despite the target resolving to nil.
	m.apply(c, this, nil)
	if this.Tags.Has(Intern("free")) {
		t.Fatalf("expected the unresolved target to leave This untouched")
	}
}

func TestBindThenUnbindRestoresPriorBinding(t *testing.T) {
	c := NewContainer()
	slot := Intern("left")
	prior := c.createObject(NewTagList(), NewCounterMap(), NewTagList())
	next := c.createObject(NewTagList(), NewCounterMap(), NewTagList())

	this := &Object{Id: 3, Slots: NewTagList(slot), Bindings: SlotMap{slot: prior}}

	bind := Modifier{Action: Bind, Target: ModifierTarget{Kind: This}, Slot: slot, BindTarget: ModifierTarget{Kind: Other}}
	other := c.getObject(next)

	bind.apply(c, this, other)
	if this.Bindings.Get(slot) != next {
		t.Fatalf("expected bind to point at %v, got %v", next, this.Bindings.Get(slot))
	}

	unbind := Modifier{Action: Unbind, Target: ModifierTarget{Kind: This}, Slot: slot}
	unbind.apply(c, this, nil)
	if this.Bindings.Bound(slot) {
		t.Fatalf("expected unbind to clear the slot")
	}
}

func TestUnbindWritesToThisRegardlessOfTarget(t *testing.T) {
	c := NewContainer()
	slot := Intern("left")
	this := &Object{Id: 1, Slots: NewTagList(slot), Bindings: SlotMap{slot: 42}}
	other := &Object{Id: 2, Slots: NewTagList(slot), Bindings: SlotMap{slot: 99}}

	// Target names Other, but the documented asymmetry means the
	// slot actually cleared is on This.
	m := Modifier{Action: Unbind, Target: ModifierTarget{Kind: Other}, Slot: slot}
	m.apply(c, this, other)

	if this.Bindings.Bound(slot) {
		t.Fatalf("expected This's slot to be cleared")
	}
	if !other.Bindings.Bound(slot) {
		t.Fatalf("expected Other's slot to be left untouched")
	}
}
