package dsl

import (
	"fmt"

	"github.com/sepro-lang/sepro/core"
)

// Validate performs static checks a Model's own types can't express:
// World roots and instances naming concepts the Model never declared,
// modifiers that target or bind from Other in a unary Actuator, and
// Measures missing the source (expr) or counter (sumCounter) their
// Kind needs. Slot names used by modifiers and selectors are not
// checked. It reports findings rather than failing the load; callers
// (cmd/sepro validate) decide whether any finding is fatal.
func Validate(m *core.Model) []string {
	var findings []string

	findings = append(findings, validateWorlds(m)...)
	findings = append(findings, validateActuators(m)...)
	findings = append(findings, validateMeasures(m)...)

	return findings
}

func validateWorlds(m *core.Model) []string {
	var findings []string
	for worldName, w := range m.Worlds {
		if w.Root != 0 {
			if _, have := m.Concept(w.Root); !have {
				findings = append(findings, fmt.Sprintf("world %q: root concept %q is not declared", worldName, w.Root))
			}
		}
		for _, inst := range w.Graph.Instances {
			if _, have := m.Concept(inst.Concept); !have {
				findings = append(findings, fmt.Sprintf("world %q: instance references undeclared concept %q", worldName, inst.Concept))
			}
		}
	}
	return findings
}

func validateActuators(m *core.Model) []string {
	var findings []string
	for _, a := range m.Actuators {
		for _, mod := range a.Modifiers {
			if mod.Action == core.Bind && mod.BindTarget.Kind == core.Other && !a.IsCombined() {
				findings = append(findings, fmt.Sprintf("actuator %q: modifier targets Other in a unary actuator", a.Name))
			}
			if mod.Target.Kind == core.Other && !a.IsCombined() {
				findings = append(findings, fmt.Sprintf("actuator %q: modifier targets Other in a unary actuator", a.Name))
			}
		}
	}
	return findings
}

func validateMeasures(m *core.Model) []string {
	var findings []string
	for _, ms := range m.Measures {
		if ms.Kind == core.Expr && ms.Source == "" {
			findings = append(findings, fmt.Sprintf("measure %q: kind expr with empty source", ms.Name))
		}
		if ms.Kind == core.SumCounter && ms.Counter == 0 {
			findings = append(findings, fmt.Sprintf("measure %q: kind sumCounter with no counter named", ms.Name))
		}
	}
	return findings
}
