package core

import "testing"

func TestEvaluateAllIsAlwaysTrue(t *testing.T) {
	c := NewContainer()
	obj := &Object{Tags: NewTagList(), Counters: NewCounterMap(), Bindings: SlotMap{}}
	if !evaluate(c, Predicate{Kind: All}, obj) {
		t.Fatalf("expected All to be true")
	}
	if evaluate(c, Predicate{Kind: All, Negated: true}, obj) {
		t.Fatalf("expected negated All to be false")
	}
}

func TestEvaluateTagSetSubset(t *testing.T) {
	c := NewContainer()
	obj := &Object{Tags: NewTagList(Intern("linker"), Intern("ready")), Counters: NewCounterMap(), Bindings: SlotMap{}}

	p := Predicate{Kind: TagSet, Tags: NewTagList(Intern("linker"))}
	if !evaluate(c, p, obj) {
		t.Fatalf("expected tag subset to match")
	}

	p.Tags = NewTagList(Intern("missing"))
	if evaluate(c, p, obj) {
		t.Fatalf("expected missing tag not to match")
	}
}

func TestEvaluateCounterZeroDistinguishesAbsence(t *testing.T) {
	c := NewContainer()
	present := &Object{Counters: CounterMap{Intern("n"): 0}, Tags: NewTagList(), Bindings: SlotMap{}}
	absent := &Object{Counters: NewCounterMap(), Tags: NewTagList(), Bindings: SlotMap{}}
	nonzero := &Object{Counters: CounterMap{Intern("n"): 3}, Tags: NewTagList(), Bindings: SlotMap{}}

	p := Predicate{Kind: CounterZero, Counter: Intern("n")}
	if !evaluate(c, p, present) {
		t.Fatalf("expected present zero counter to match")
	}
	if evaluate(c, p, absent) {
		t.Fatalf("expected absent counter not to match")
	}
	if evaluate(c, p, nonzero) {
		t.Fatalf("expected nonzero counter not to match")
	}
}

func TestEvaluateInSlotUnboundIsFalseEvenNegated(t *testing.T) {
	c := NewContainer()
	slot := Intern("left")
	obj := &Object{Tags: NewTagList(), Counters: NewCounterMap(), Slots: NewTagList(slot), Bindings: SlotMap{slot: NoRef}}

	p := Predicate{Kind: All, InSlot: slot, Negated: true}
	if evaluate(c, p, obj) {
		t.Fatalf("expected unbound inSlot dereference to be false even when negated")
	}
}

func TestEvaluateInSlotDereferencesBoundObject(t *testing.T) {
	c := NewContainer()
	target := c.createObject(NewTagList(Intern("heavy")), NewCounterMap(), NewTagList())

	slot := Intern("left")
	holder := &Object{Tags: NewTagList(), Counters: NewCounterMap(), Slots: NewTagList(slot), Bindings: SlotMap{slot: target}}

	p := Predicate{Kind: TagSet, InSlot: slot, Tags: NewTagList(Intern("heavy"))}
	if !evaluate(c, p, holder) {
		t.Fatalf("expected inSlot dereference to test the bound object's tags")
	}
}

func TestMatchesShortCircuitsOnFirstFalse(t *testing.T) {
	c := NewContainer()
	obj := &Object{Tags: NewTagList(Intern("a")), Counters: NewCounterMap(), Bindings: SlotMap{}}

	preds := []Predicate{
		{Kind: TagSet, Tags: NewTagList(Intern("a"))},
		{Kind: TagSet, Tags: NewTagList(Intern("b"))},
	}
	if matches(c, preds, obj) {
		t.Fatalf("expected conjunction to fail when one predicate fails")
	}
}
