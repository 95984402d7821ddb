package expr

import (
	"testing"

	"github.com/sepro-lang/sepro/core"
)

func TestEvalSumsACounterAcrossObjects(t *testing.T) {
	in := NewInterpreter()

	weight := core.Intern("weight")
	obj := &core.Object{
		Tags:     core.NewTagList(),
		Counters: core.CounterMap{weight: 5},
	}

	acc, err := in.Eval("return acc + (_.counters.weight || 0);", obj, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if acc != 5 {
		t.Fatalf("expected acc == 5, got %v", acc)
	}

	acc, err = in.Eval("return acc + (_.counters.weight || 0);", obj, acc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if acc != 10 {
		t.Fatalf("expected acc == 10 after a second fold, got %v", acc)
	}
}

func TestEvalReusesCompiledProgram(t *testing.T) {
	in := NewInterpreter()
	source := "return acc + 1;"
	obj := &core.Object{Tags: core.NewTagList(), Counters: core.NewCounterMap()}

	if _, err := in.Eval(source, obj, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(in.cache) != 1 {
		t.Fatalf("expected one cached program, got %d", len(in.cache))
	}

	if _, err := in.Eval(source, obj, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(in.cache) != 1 {
		t.Fatalf("expected the cache to stay at one program for identical source, got %d", len(in.cache))
	}
}

func TestEvalBadSourceReturnsError(t *testing.T) {
	in := NewInterpreter()
	obj := &core.Object{Tags: core.NewTagList(), Counters: core.NewCounterMap()}

	if _, err := in.Eval("this is not valid javascript {{{", obj, 0); err == nil {
		t.Fatalf("expected a compile error")
	}
}
