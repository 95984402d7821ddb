// Package docgen renders a Model's own documentation (Concept and
// Actuator Doc strings, written in Markdown) together with the
// latest probe record into a single static HTML page.
package docgen

import (
	"fmt"
	"io"

	md "github.com/russross/blackfriday/v2"

	"github.com/sepro-lang/sepro/core"
)

// Render writes an HTML page documenting model to out. record, if
// non-nil, is rendered as a table of the latest probe values; it may
// be nil for a model that has never run.
func Render(model *core.Model, record map[core.Symbol]float64, out io.Writer) error {
	f := func(format string, args ...interface{}) {
		fmt.Fprintf(out, format+"\n", args...)
	}

	f(`<!DOCTYPE html>`)
	f(`<html><head><meta charset="utf-8"><title>%s</title></head><body>`, model.Name)
	f(`<h1>%s</h1>`, model.Name)
	if model.Doc != "" {
		out.Write(md.Run([]byte(model.Doc)))
	}

	f(`<h2>Concepts</h2>`)
	for name, c := range model.Concepts {
		f(`<h3 id="concept-%s">%s</h3>`, name, name)
		if c.Doc != "" {
			out.Write(md.Run([]byte(c.Doc)))
		}
		f(`<p>tags: %v, counters: %v, slots: %v</p>`, c.Tags.Slice(), c.Counters, c.Slots.Slice())
	}

	f(`<h2>Actuators</h2>`)
	for _, a := range model.Actuators {
		f(`<h3 id="actuator-%s">%s</h3>`, a.Name, a.Name)
		f(`<p>combined: %v, halts: %v</p>`, a.IsCombined(), a.DoesHalt)
	}

	if record != nil {
		f(`<h2>Latest probe record</h2>`)
		f(`<table border="1"><tr><th>measure</th><th>value</th></tr>`)
		for name, v := range record {
			f(`<tr><td>%s</td><td>%v</td></tr>`, name, v)
		}
		f(`</table>`)
	}

	f(`</body></html>`)
	return nil
}
