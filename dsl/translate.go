package dsl

import "github.com/sepro-lang/sepro/core"

func tagListOf(names []string) core.TagList {
	syms := make([]core.Symbol, len(names))
	for i, n := range names {
		syms[i] = core.Intern(n)
	}
	return core.NewTagList(syms...)
}

func translateConcept(h *hclConcept) *core.Concept {
	counters := core.NewCounterMap()
	for name, v := range h.Counters {
		counters[core.Intern(name)] = v
	}
	return &core.Concept{
		Name:     core.Intern(h.Name),
		Doc:      h.Doc,
		Tags:     tagListOf(h.Tags),
		Counters: counters,
		Slots:    tagListOf(h.Slots),
	}
}

func translateSelector(h *hclSelector) core.Selector {
	if h == nil {
		return core.Selector{All: true}
	}
	if h.All {
		return core.Selector{All: true}
	}

	var preds []core.Predicate
	if len(h.Tags) > 0 {
		preds = append(preds, core.Predicate{Kind: core.TagSet, Tags: tagListOf(h.Tags)})
	}
	if len(h.NotTags) > 0 {
		preds = append(preds, core.Predicate{Kind: core.TagSet, Tags: tagListOf(h.NotTags), Negated: true})
	}
	for _, s := range h.BoundSlots {
		preds = append(preds, core.Predicate{Kind: core.IsBound, Slot: core.Intern(s)})
	}
	for _, s := range h.UnboundSlots {
		preds = append(preds, core.Predicate{Kind: core.IsBound, Slot: core.Intern(s), Negated: true})
	}
	for _, c := range h.ZeroCounters {
		preds = append(preds, core.Predicate{Kind: core.CounterZero, Counter: core.Intern(c)})
	}

	return core.Selector{Predicates: preds}
}

func translateModifierTarget(target, slot string) core.ModifierTarget {
	mt := core.ModifierTarget{}
	switch target {
	case "other":
		mt.Kind = core.Other
	case "root":
		mt.Kind = core.Root
	default:
		mt.Kind = core.This
	}
	if slot != "" {
		mt.Slot = core.Intern(slot)
	}
	return mt
}

func translateModifier(h *hclModifier) core.Modifier {
	m := core.Modifier{
		Target:  translateModifierTarget(h.Target, h.TargetSlot),
		Tags:    tagListOf(h.Tags),
		Counter: core.Intern(h.Counter),
		Slot:    core.Intern(h.Slot),
	}

	switch h.Action {
	case "setTags":
		m.Action = core.SetTags
	case "unsetTags":
		m.Action = core.UnsetTags
	case "inc":
		m.Action = core.Inc
	case "dec":
		m.Action = core.Dec
	case "clear":
		m.Action = core.Clear
	case "bind":
		m.Action = core.Bind
		m.BindTarget = translateModifierTarget(h.From, h.FromSlot)
	case "unbind":
		m.Action = core.Unbind
	default:
		m.Action = core.Nothing
	}

	return m
}

func translateActuator(h *hclActuator) *core.Actuator {
	a := &core.Actuator{
		Name:          core.Intern(h.Name),
		Selector:      translateSelector(h.Selector),
		DoesHalt:      h.DoesHalt,
		Traps:         make([]core.Symbol, len(h.Traps)),
		Notifications: make([]core.Symbol, len(h.Notifications)),
	}
	for i, t := range h.Traps {
		a.Traps[i] = core.Intern(t)
	}
	for i, n := range h.Notifications {
		a.Notifications[i] = core.Intern(n)
	}
	if h.Combined != nil {
		combined := translateSelector(h.Combined)
		a.Combined = &combined
	}
	for _, hm := range h.Modifiers {
		m := translateModifier(hm)
		a.Modifiers = append(a.Modifiers, m)
	}
	return a
}

func translateInitializers(his []*hclInitializer) []core.Initializer {
	inits := make([]core.Initializer, 0, len(his))
	for _, hi := range his {
		if hi.Tag != "" {
			inits = append(inits, core.Initializer{Kind: core.InitTag, Tag: core.Intern(hi.Tag)})
		}
		if hi.Name != "" {
			inits = append(inits, core.Initializer{Kind: core.InitCounter, Name: core.Intern(hi.Name), Value: hi.Value})
		}
	}
	return inits
}

func translateWorld(h *hclWorld) *core.World {
	w := &core.World{}
	if h.Root != "" {
		w.Root = core.Intern(h.Root)
	}
	for _, hi := range h.Instances {
		spec := core.InstanceSpec{
			Concept:      core.Intern(hi.Concept),
			Initializers: translateInitializers(hi.Initializers),
		}
		if hi.Name != "" {
			spec.CountKind = core.Named
			spec.Name = core.Intern(hi.Name)
		} else {
			spec.CountKind = core.Counted
			spec.Count = hi.Count
			if spec.Count == 0 {
				spec.Count = 1
			}
		}
		w.Graph.Instances = append(w.Graph.Instances, spec)
	}
	return w
}

// translate builds a core.Model from a decoded hclFile.
func translate(name string, hf *hclFile) *core.Model {
	m := core.NewModel(name)

	for _, hc := range hf.Concepts {
		c := translateConcept(hc)
		m.Concepts[c.Name] = c
	}
	for _, ha := range hf.Actuators {
		m.Actuators = append(m.Actuators, translateActuator(ha))
	}
	for _, hw := range hf.Worlds {
		w := translateWorld(hw)
		m.Worlds[core.Intern(hw.Name)] = w
	}

	return m
}
