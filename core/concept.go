package core

// Concept is an object template: the default tags, default counters,
// and declared slots that Container.instantiate uses to build a fresh
// Object.
type Concept struct {
	Name     Symbol     `json:"name" yaml:"name"`
	Doc      string     `json:"doc,omitempty" yaml:"doc,omitempty"`
	Tags     TagList    `json:"tags,omitempty" yaml:"tags,omitempty"`
	Counters CounterMap `json:"counters,omitempty" yaml:"counters,omitempty"`
	Slots    TagList    `json:"slots,omitempty" yaml:"slots,omitempty"`
}

// Copy makes a deep copy of the Concept.
func (c *Concept) Copy() *Concept {
	if c == nil {
		return nil
	}
	return &Concept{
		Name:     c.Name,
		Doc:      c.Doc,
		Tags:     c.Tags.Copy(),
		Counters: c.Counters.Copy(),
		Slots:    c.Slots.Copy(),
	}
}
