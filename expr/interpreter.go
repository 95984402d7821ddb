// Package expr provides the scripting seam core.Measure{Kind: Expr}
// uses to fold a matching object into a scalar via a small
// ECMAScript snippet, without giving the script any way to mutate the
// Container. core never imports this package; it only depends on the
// core.ScriptRunner interface, which Interpreter implements.
package expr

import (
	"fmt"
	"sync"

	"github.com/dop251/goja"

	"github.com/sepro-lang/sepro/core"
)

// Program is a compiled script, cached by its source text so a
// Measure evaluated once per object per step doesn't re-parse every
// time.
type Program struct {
	compiled *goja.Program
}

// Interpreter implements core.ScriptRunner with goja. It is safe for
// concurrent use: compiled programs are cached under a mutex, but
// evaluation itself always happens on the caller's goroutine (the
// same goroutine running Engine.step, per the single-threaded
// cooperative model).
type Interpreter struct {
	mu    sync.Mutex
	cache map[string]*Program
}

// NewInterpreter returns a ready-to-use Interpreter with an empty
// compile cache.
func NewInterpreter() *Interpreter {
	return &Interpreter{cache: make(map[string]*Program)}
}

// Compile parses source into a Program, or returns the cached one for
// identical source text.
func (in *Interpreter) Compile(source string) (*Program, error) {
	in.mu.Lock()
	defer in.mu.Unlock()

	if p, have := in.cache[source]; have {
		return p, nil
	}

	wrapped := fmt.Sprintf("(function() {\n%s\n}());\n", source)
	compiled, err := goja.Compile("", wrapped, true)
	if err != nil {
		return nil, fmt.Errorf("expr: compile: %w", err)
	}

	p := &Program{compiled: compiled}
	in.cache[source] = p
	return p, nil
}

// Eval implements core.ScriptRunner: it compiles source (or reuses
// the cached Program), exposes obj's tags/counters read-only as `_`,
// and exposes the running accumulator as `acc`. The script's return
// value, coerced to float64, becomes the new accumulator.
func (in *Interpreter) Eval(source string, obj *core.Object, acc float64) (float64, error) {
	p, err := in.Compile(source)
	if err != nil {
		return acc, err
	}

	rt := goja.New()
	rt.SetFieldNameMapper(goja.TagFieldNameMapper("json", false))
	rt.Set("acc", acc)
	rt.Set("_", objectViewOf(obj))

	v, err := rt.RunProgram(p.compiled)
	if err != nil {
		return acc, fmt.Errorf("expr: eval: %w", err)
	}

	return v.ToFloat(), nil
}

// objectView is the read-only snapshot exposed to scripts. Scripts
// see plain JS values, never a *core.Object, so there is no way for a
// Measure's source to reach back into the Container.
type objectView struct {
	Tags     []string         `json:"tags"`
	Counters map[string]int64 `json:"counters"`
}

func objectViewOf(obj *core.Object) objectView {
	return objectView{
		Tags:     tagNames(obj),
		Counters: counterValues(obj),
	}
}

func tagNames(obj *core.Object) []string {
	names := make([]string, 0, len(obj.Tags))
	for _, s := range obj.Tags.Slice() {
		names = append(names, s.String())
	}
	return names
}

func counterValues(obj *core.Object) map[string]int64 {
	acc := make(map[string]int64, len(obj.Counters))
	for s, v := range obj.Counters {
		acc[s.String()] = v
	}
	return acc
}
