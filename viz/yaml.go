package viz

import (
	"io"

	"gopkg.in/yaml.v2"

	"github.com/sepro-lang/sepro/core"
)

// YAML writes snap to w as YAML, for a quick human-readable look at
// a run's state without a Graphviz toolchain on hand.
func YAML(snap *core.Snapshot, w io.Writer) error {
	bs, err := yaml.Marshal(snap)
	if err != nil {
		return err
	}
	_, err = w.Write(bs)
	return err
}
