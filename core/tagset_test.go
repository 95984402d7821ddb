package core

import "testing"

func TestTagListSubsetAndDisjoint(t *testing.T) {
	a := NewTagList(Intern("red"), Intern("round"))
	b := NewTagList(Intern("red"), Intern("round"), Intern("heavy"))

	if !a.Subset(b) {
		t.Fatalf("expected %v to be a subset of %v", a, b)
	}
	if b.Subset(a) {
		t.Fatalf("did not expect %v to be a subset of %v", b, a)
	}

	c := NewTagList(Intern("square"))
	if !a.Disjoint(c) {
		t.Fatalf("expected %v and %v to be disjoint", a, c)
	}
	if a.Disjoint(b) {
		t.Fatalf("did not expect %v and %v to be disjoint", a, b)
	}
}

func TestTagListUnionDifferenceRoundTrip(t *testing.T) {
	t0 := NewTagList(Intern("one"), Intern("two"))
	add := NewTagList(Intern("three"))

	union := t0.Union(add)
	if !union.Has(Intern("one")) || !union.Has(Intern("two")) || !union.Has(Intern("three")) {
		t.Fatalf("union missing members: %v", union)
	}

	back := union.Difference(add)
	if !back.Subset(t0) || !t0.Subset(back) {
		t.Fatalf("expected union-then-difference to round-trip to %v, got %v", t0, back)
	}
}

func TestTagListCopyIsIndependent(t *testing.T) {
	orig := NewTagList(Intern("a"))
	copied := orig.Copy()
	copied.Add(Intern("b"))

	if orig.Has(Intern("b")) {
		t.Fatalf("mutating a copy should not affect the original")
	}
}
