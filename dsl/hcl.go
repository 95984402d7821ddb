package dsl

// hclFile is the top-level HCL block structure decoded by gohcl. It
// mirrors the surface syntax named in the CLI table: concept,
// actuator, and world blocks.
type hclFile struct {
	Concepts  []*hclConcept  `hcl:"concept,block"`
	Actuators []*hclActuator `hcl:"actuator,block"`
	Worlds    []*hclWorld    `hcl:"world,block"`
}

type hclConcept struct {
	Name     string   `hcl:"name,label"`
	Doc      string   `hcl:"doc,optional"`
	Tags     []string `hcl:"tags,optional"`
	Counters map[string]int64 `hcl:"counters,optional"`
	Slots    []string `hcl:"slots,optional"`
}

type hclSelector struct {
	All        bool             `hcl:"all,optional"`
	Tags       []string         `hcl:"tags,optional"`
	NotTags    []string         `hcl:"notTags,optional"`
	BoundSlots []string         `hcl:"boundSlots,optional"`
	UnboundSlots []string       `hcl:"unboundSlots,optional"`
	ZeroCounters []string       `hcl:"zeroCounters,optional"`
}

type hclModifier struct {
	Action     string `hcl:"action,label"`
	Target     string `hcl:"target,optional"`
	TargetSlot string `hcl:"targetSlot,optional"`
	From       string `hcl:"from,optional"`
	FromSlot   string `hcl:"fromSlot,optional"`
	Tags       []string `hcl:"tags,optional"`
	Counter    string `hcl:"counter,optional"`
	Slot       string `hcl:"slot,optional"`
}

type hclActuator struct {
	Name          string         `hcl:"name,label"`
	Selector      *hclSelector   `hcl:"selector,block"`
	Combined      *hclSelector   `hcl:"combined,block"`
	Modifiers     []*hclModifier `hcl:"modifier,block"`
	Traps         []string       `hcl:"traps,optional"`
	Notifications []string       `hcl:"notifications,optional"`
	DoesHalt      bool           `hcl:"doesHalt,optional"`
}

type hclInitializer struct {
	Tag    string `hcl:"tag,optional"`
	Name   string `hcl:"counter,optional"`
	Value  int64  `hcl:"value,optional"`
}

type hclInstance struct {
	Concept      string            `hcl:"concept,label"`
	Name         string            `hcl:"name,optional"`
	Count        int               `hcl:"count,optional"`
	Initializers []*hclInitializer `hcl:"initializer,block"`
}

type hclWorld struct {
	Name      string         `hcl:"name,label"`
	Root      string         `hcl:"root,optional"`
	Instances []*hclInstance `hcl:"instance,block"`
}
