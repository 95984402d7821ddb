package viz

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sepro-lang/sepro/core"
)

func TestDotNeverPanicsOnEmptySnapshot(t *testing.T) {
	var buf bytes.Buffer
	model := core.NewModel("test")
	snap := &core.Snapshot{}

	if err := Dot(model, snap, &buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "digraph G {") || !strings.HasSuffix(out, "}\n") {
		t.Fatalf("expected a well-formed empty digraph, got %q", out)
	}
}

func TestDotRendersOneNodePerObjectAndOneEdgePerBoundSlot(t *testing.T) {
	var buf bytes.Buffer
	model := core.NewModel("test")
	left := core.Intern("left")
	ready := core.Intern("ready")

	snap := &core.Snapshot{
		Root: 1,
		Objects: []*core.Object{
			{Id: 1, Tags: core.NewTagList(ready), Counters: core.NewCounterMap(), Slots: core.NewTagList(left), Bindings: core.SlotMap{left: 2}},
			{Id: 2, Tags: core.NewTagList(), Counters: core.NewCounterMap(), Slots: core.NewTagList(), Bindings: core.SlotMap{}},
		},
	}

	if err := Dot(model, snap, &buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "n1 [label") || !strings.Contains(out, "n2 [label") {
		t.Fatalf("expected a node for each object, got %q", out)
	}
	if !strings.Contains(out, "n1 -> n2") {
		t.Fatalf("expected an edge for the bound slot, got %q", out)
	}
}

func TestYAMLNeverPanicsOnEmptySnapshot(t *testing.T) {
	var buf bytes.Buffer
	if err := YAML(&core.Snapshot{}, &buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatalf("expected non-empty YAML output")
	}
}
