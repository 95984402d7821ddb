package core

import "errors"

// errNoScriptRunner is probe.err's value when an Expr Measure is
// folded with no ScriptRunner attached to the Engine.
var errNoScriptRunner = errors.New("expr measure has no script runner attached")

// MeasureKind is a closed sum type for how a Measure folds its
// matching objects into one scalar.
type MeasureKind int

const (
	// Count yields the number of matching objects.
	Count MeasureKind = iota
	// SumCounter yields the sum of Measure.Counter over matching
	// objects; an object missing the counter contributes 0.
	SumCounter
	// Expr delegates to an external expr.Interpreter, supplied to
	// the Engine; see Measure.Source.
	Expr
)

// Measure names a population (by Predicates) and a way to fold it
// into one scalar, sampled once per probe() call.
type Measure struct {
	Name       Symbol      `json:"name" yaml:"name"`
	Predicates []Predicate `json:"predicates,omitempty" yaml:"predicates,omitempty"`
	Kind       MeasureKind `json:"kind" yaml:"kind"`

	// Counter is used by SumCounter.
	Counter Symbol `json:"counter,omitempty" yaml:"counter,omitempty"`

	// Source is the script body used by Expr. Compiling and
	// running it is the expr package's concern; core only carries
	// the text and calls the ScriptRunner at probe time.
	Source string `json:"source,omitempty" yaml:"source,omitempty"`
}

// ScriptRunner evaluates a Measure.Expr's source against one matching
// object's snapshot, folding the running accumulator into a new one.
// Implemented by expr.Interpreter; core depends only on this
// interface so it never imports a scripting engine.
type ScriptRunner interface {
	Eval(source string, obj *Object, acc float64) (float64, error)
}

// probe accumulates one Measure's scalar over a sequence of matching
// objects. newProbe returns the identity accumulator for a Measure's
// Kind; fold absorbs one object in place.
type probe struct {
	measure *Measure
	value   float64
	// err records the first Expr evaluation failure, logged once
	// per probe() pass rather than per object.
	err error
}

func newProbe(m *Measure) *probe {
	return &probe{measure: m}
}

func (p *probe) fold(obj *Object, runner ScriptRunner) {
	switch p.measure.Kind {
	case Count:
		p.value++
	case SumCounter:
		if v, have := obj.Counters.Get(p.measure.Counter); have {
			p.value += float64(v)
		}
	case Expr:
		if runner == nil {
			if p.err == nil {
				p.err = errNoScriptRunner
			}
			return
		}
		v, err := runner.Eval(p.measure.Source, obj, p.value)
		if err != nil {
			if p.err == nil {
				p.err = err
			}
			return
		}
		p.value = v
	}
}
