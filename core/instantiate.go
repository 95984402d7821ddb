package core

// Instantiator is the subset of Engine behavior that builds Objects
// from a Model's Concepts and Worlds. It is split into its own file
// because it is the one place the engine writes to the Container
// outside of a Modifier's apply.
type Instantiator struct {
	model     *Model
	container *Container
}

func newInstantiator(model *Model, container *Container) *Instantiator {
	return &Instantiator{model: model, container: container}
}

// Instantiate builds one Object from the named Concept, applying
// initializers on top of the Concept's defaults, and returns its ref.
//
//  1. tags = concept.Tags ∪ {name} ∪ {s : Tag(s) ∈ initializers}.
//  2. counters = concept.Counters overridden by each Counter(s,v) in
//     initializers, last write wins.
//  3. createObject(tags, counters, concept.Slots).
func (in *Instantiator) Instantiate(name Symbol, initializers []Initializer) (ObjectRef, error) {
	concept, have := in.model.Concept(name)
	if !have {
		return NoRef, errUnknownConcept(name)
	}

	tags := concept.Tags.Copy()
	tags.Add(name)

	counters := concept.Counters.Copy()

	for _, init := range initializers {
		switch init.Kind {
		case InitTag:
			tags.Add(init.Tag)
		case InitCounter:
			counters[init.Name] = init.Value
		}
	}

	ref := in.container.createObject(tags, counters, concept.Slots)
	return ref, nil
}

// Initialize repopulates the container per the named world:
//
//  1. Fails with ModelError if worldName is not declared.
//  2. removeAll(); stepCount and isHalted are left to the caller (see
//     Engine.Initialize).
//  3. If world.Root is set, instantiates it as the container's root;
//     otherwise the root is a bare empty object.
//  4. Walks world.Graph.Instances, building the returned name→ref map
//     for Named instances and discarding refs for Counted ones.
func (in *Instantiator) Initialize(worldName Symbol) (map[Symbol]ObjectRef, error) {
	world, have := in.model.World(worldName)
	if !have {
		return nil, errUnknownWorld(worldName)
	}

	in.container.removeAll()

	var rootRef ObjectRef
	if world.Root != 0 {
		ref, err := in.Instantiate(world.Root, nil)
		if err != nil {
			return nil, err
		}
		rootRef = ref
	} else {
		rootRef = in.container.createObject(NewTagList(), NewCounterMap(), NewTagList())
	}
	in.container.setRoot(rootRef)

	named := make(map[Symbol]ObjectRef)
	for _, spec := range world.Graph.Instances {
		switch spec.CountKind {
		case Named:
			ref, err := in.Instantiate(spec.Concept, spec.Initializers)
			if err != nil {
				return nil, err
			}
			named[spec.Name] = ref
		case Counted:
			for i := 0; i < spec.Count; i++ {
				if _, err := in.Instantiate(spec.Concept, spec.Initializers); err != nil {
					return nil, err
				}
			}
		}
	}

	return named, nil
}
