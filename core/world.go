package core

// World is the initial-population descriptor consumed by initialize:
// an optional root concept plus an instance graph.
type World struct {
	// Root, if non-zero, names the concept instantiated as the
	// container's root object. If zero, the root is an empty
	// object with no tags, counters, or slots.
	Root Symbol `json:"root,omitempty" yaml:"root,omitempty"`

	Graph InstanceGraph `json:"graph,omitempty" yaml:"graph,omitempty"`
}

// InstanceGraph is a sequence of instance declarations, applied in
// order by the Instantiator.
type InstanceGraph struct {
	Instances []InstanceSpec `json:"instances,omitempty" yaml:"instances,omitempty"`
}

// InstanceCountKind distinguishes a single named instance from a
// batch of anonymous ones.
type InstanceCountKind int

const (
	// Named creates exactly one instance and records its ref under
	// a name so later collaborators (tests, debug dumps) can find
	// it.
	Named InstanceCountKind = iota
	// Counted creates N instances and discards their refs.
	Counted
)

// InstanceSpec is one entry of an InstanceGraph.
type InstanceSpec struct {
	Concept Symbol `json:"concept" yaml:"concept"`

	CountKind InstanceCountKind `json:"countKind" yaml:"countKind"`
	// Name is used when CountKind is Named.
	Name Symbol `json:"name,omitempty" yaml:"name,omitempty"`
	// Count is used when CountKind is Counted; must be ≥ 1.
	Count int `json:"count,omitempty" yaml:"count,omitempty"`

	Initializers []Initializer `json:"initializers,omitempty" yaml:"initializers,omitempty"`
}

// InitializerKind distinguishes the two kinds of per-instance
// initializer.
type InitializerKind int

const (
	// InitTag adds a tag to the created instance beyond its
	// concept's defaults.
	InitTag InitializerKind = iota
	// InitCounter overrides a counter's initial value on the
	// created instance.
	InitCounter
)

// Initializer is one Tag(symbol) or Counter(symbol, value) applied by
// instantiate on top of a Concept's defaults.
type Initializer struct {
	Kind  InitializerKind `json:"kind" yaml:"kind"`
	Tag   Symbol          `json:"tag,omitempty" yaml:"tag,omitempty"`
	Name  Symbol          `json:"name,omitempty" yaml:"name,omitempty"`
	Value int64           `json:"value,omitempty" yaml:"value,omitempty"`
}
