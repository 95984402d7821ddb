// Package viz renders a core.Snapshot as a Graphviz dot digraph or as
// plain YAML, for inspecting a run without wiring up a full observer.
package viz

import (
	"fmt"
	"io"

	"github.com/sepro-lang/sepro/core"
)

// Dot writes a Graphviz dot digraph of snap to w: one node per
// object, labeled with its tag set, and one edge per bound slot
// pointing at the slot's target object. It never fails or panics on
// an empty snapshot; it just writes an empty-looking graph.
func Dot(model *core.Model, snap *core.Snapshot, w io.Writer) error {
	if _, err := fmt.Fprintf(w, "digraph G {\n  rankdir=LR\n  node [shape=record style=filled fillcolor=\"#99ddc8\"]\n"); err != nil {
		return err
	}

	for _, obj := range snap.Objects {
		label := fmt.Sprintf("#%d", obj.Id)
		for _, tag := range obj.Tags.Slice() {
			label += "\\n" + tag.String()
		}
		color := "#99ddc8"
		if obj.Id == snap.Root {
			color = "#2d93ad"
		}
		if _, err := fmt.Fprintf(w, "  n%d [label=\"%s\" fillcolor=\"%s\"]\n", obj.Id, label, color); err != nil {
			return err
		}
	}

	for _, obj := range snap.Objects {
		for slot, target := range obj.Bindings {
			if target == core.NoRef {
				continue
			}
			if _, err := fmt.Fprintf(w, "  n%d -> n%d [label=\"%s\"]\n", obj.Id, target, slot.String()); err != nil {
				return err
			}
		}
	}

	_, err := fmt.Fprintf(w, "}\n")
	return err
}
