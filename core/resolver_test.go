package core

import "testing"

func TestGetCurrentRootThisOther(t *testing.T) {
	c := NewContainer()
	rootRef := c.createObject(NewTagList(Intern("root")), NewCounterMap(), NewTagList())
	c.setRoot(rootRef)

	this := &Object{Id: 100}
	other := &Object{Id: 200}

	if got := getCurrent(c, ModifierTarget{Kind: Root}, this, other); got.Id != rootRef {
		t.Fatalf("expected Root to resolve to %v, got %v", rootRef, got.Id)
	}
	if got := getCurrent(c, ModifierTarget{Kind: This}, this, other); got != this {
		t.Fatalf("expected This to resolve to the this object")
	}
	if got := getCurrent(c, ModifierTarget{Kind: Other}, this, other); got != other {
		t.Fatalf("expected Other to resolve to the other object")
	}
}

func TestGetCurrentSlotDereferenceUnboundReturnsNil(t *testing.T) {
	c := NewContainer()
	slot := Intern("left")
	this := &Object{Id: 1, Slots: NewTagList(slot), Bindings: SlotMap{slot: NoRef}}

	got := getCurrent(c, ModifierTarget{Kind: This, Slot: slot}, this, nil)
	if got != nil {
		t.Fatalf("expected unbound slot dereference to return nil, got %v", got)
	}
}

func TestGetCurrentSlotDereferenceBound(t *testing.T) {
	c := NewContainer()
	target := c.createObject(NewTagList(Intern("link")), NewCounterMap(), NewTagList())

	slot := Intern("left")
	this := &Object{Id: 1, Slots: NewTagList(slot), Bindings: SlotMap{slot: target}}

	got := getCurrent(c, ModifierTarget{Kind: This, Slot: slot}, this, nil)
	if got == nil || got.Id != target {
		t.Fatalf("expected slot dereference to resolve to %v, got %v", target, got)
	}
}

func TestGetCurrentUndeclaredSlotPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected a panic for an undeclared slot")
		}
	}()

	c := NewContainer()
	this := &Object{Id: 1, Slots: NewTagList(), Bindings: SlotMap{}}
	getCurrent(c, ModifierTarget{Kind: This, Slot: Intern("nope")}, this, nil)
}

func TestGetCurrentOtherWithoutPairingPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected a panic for Other used outside combined dispatch")
		}
	}()

	c := NewContainer()
	this := &Object{Id: 1}
	getCurrent(c, ModifierTarget{Kind: Other}, this, nil)
}
