package core

// ObjectRef identifies an Object within a Container. ObjectRefs are
// plain values, copyable freely; they are not lifetime tokens, and a
// Ref can dangle if its Object has been removed (removal happens only
// via Container.removeAll in this engine).
type ObjectRef int64

// NoRef is the zero ObjectRef, never assigned to a real Object.
const NoRef ObjectRef = 0

// SlotMap is a binding table restricted to a fixed set of declared
// slots. A slot is declared iff its key exists in the map; bound iff
// its value is a real ObjectRef (as opposed to NoRef).
type SlotMap map[Symbol]ObjectRef

// Declared reports whether s was declared at Object creation time.
func (sm SlotMap) Declared(s Symbol) bool {
	_, have := sm[s]
	return have
}

// Bound reports whether s is declared and currently bound.
func (sm SlotMap) Bound(s Symbol) bool {
	ref, have := sm[s]
	return have && ref != NoRef
}

// Get returns the ObjectRef bound at s, or NoRef if s is undeclared or
// unbound.
func (sm SlotMap) Get(s Symbol) ObjectRef {
	return sm[s]
}

// Bind sets the binding at s. The caller must ensure s is declared.
func (sm SlotMap) Bind(s Symbol, ref ObjectRef) {
	sm[s] = ref
}

// Unbind clears the binding at s without undeclaring it.
func (sm SlotMap) Unbind(s Symbol) {
	sm[s] = NoRef
}

// Copy makes a shallow copy of sm.
func (sm SlotMap) Copy() SlotMap {
	acc := make(SlotMap, len(sm))
	for s, r := range sm {
		acc[s] = r
	}
	return acc
}

// Object is the rewriteable unit the engine operates on.
//
// An Object is identified only by its Id; equality elsewhere in this
// package is always by Id, never by comparing Object values.
type Object struct {
	Id       ObjectRef  `json:"id" yaml:"id"`
	Tags     TagList    `json:"tags,omitempty" yaml:"tags,omitempty"`
	Counters CounterMap `json:"counters,omitempty" yaml:"counters,omitempty"`

	// Slots is the fixed set of slot names declared when this
	// Object was created. Bindings.keys is always a subset of
	// Slots; Slots itself never changes after creation.
	Slots TagList `json:"slots,omitempty" yaml:"slots,omitempty"`

	Bindings SlotMap `json:"bindings,omitempty" yaml:"bindings,omitempty"`
}

// Copy makes a deep-enough copy of o: Tags, Counters, Slots, and
// Bindings are all copied; o itself is never shared after Copy.
func (o *Object) Copy() *Object {
	if o == nil {
		return nil
	}
	return &Object{
		Id:       o.Id,
		Tags:     o.Tags.Copy(),
		Counters: o.Counters.Copy(),
		Slots:    o.Slots.Copy(),
		Bindings: o.Bindings.Copy(),
	}
}
