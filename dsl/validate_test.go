package dsl

import (
	"testing"

	"github.com/sepro-lang/sepro/core"
)

func TestValidateFlagsUndeclaredRootConcept(t *testing.T) {
	m := core.NewModel("test")
	m.Worlds[core.Intern("main")] = &core.World{Root: core.Intern("ghost")}

	findings := Validate(m)
	if len(findings) == 0 {
		t.Fatalf("expected a finding for an undeclared root concept")
	}
}

func TestValidateFlagsUndeclaredInstanceConcept(t *testing.T) {
	m := core.NewModel("test")
	m.Worlds[core.Intern("main")] = &core.World{
		Graph: core.InstanceGraph{Instances: []core.InstanceSpec{
			{Concept: core.Intern("ghost"), CountKind: core.Counted, Count: 1},
		}},
	}

	findings := Validate(m)
	if len(findings) == 0 {
		t.Fatalf("expected a finding for an undeclared instance concept")
	}
}

func TestValidateAcceptsWellFormedModel(t *testing.T) {
	m := core.NewModel("test")
	linker := core.Intern("linker")
	m.Concepts[linker] = &core.Concept{Name: linker}
	m.Worlds[core.Intern("main")] = &core.World{Root: linker}

	if findings := Validate(m); len(findings) != 0 {
		t.Fatalf("expected no findings for a well-formed model, got %v", findings)
	}
}

func TestValidateFlagsOtherTargetInUnaryActuator(t *testing.T) {
	m := core.NewModel("test")
	m.Actuators = []*core.Actuator{
		{
			Name:     core.Intern("bad"),
			Selector: core.Selector{All: true},
			Modifiers: []core.Modifier{
				{Action: core.SetTags, Target: core.ModifierTarget{Kind: core.Other}},
			},
		},
	}

	findings := Validate(m)
	if len(findings) == 0 {
		t.Fatalf("expected a finding for Other used in a unary actuator")
	}
}
