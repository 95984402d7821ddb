package core

// Model is the compiled unit the Engine consumes. core never parses
// text or reads files; a Model arrives fully built, whether from the
// dsl package's HCL/YAML loader or assembled directly by an embedder.
type Model struct {
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
	Doc  string `json:"doc,omitempty" yaml:"doc,omitempty"`

	Concepts  map[Symbol]*Concept `json:"concepts,omitempty" yaml:"concepts,omitempty"`
	Actuators []*Actuator         `json:"actuators,omitempty" yaml:"actuators,omitempty"`
	Worlds    map[Symbol]*World   `json:"worlds,omitempty" yaml:"worlds,omitempty"`
	Measures  []*Measure          `json:"measures,omitempty" yaml:"measures,omitempty"`
}

// NewModel returns an empty Model with its maps initialized.
func NewModel(name string) *Model {
	return &Model{
		Name:     name,
		Concepts: make(map[Symbol]*Concept),
		Worlds:   make(map[Symbol]*World),
	}
}

// Concept looks up a declared concept by name.
func (m *Model) Concept(name Symbol) (*Concept, bool) {
	c, have := m.Concepts[name]
	return c, have
}

// World looks up a declared world by name.
func (m *Model) World(name Symbol) (*World, bool) {
	w, have := m.Worlds[name]
	return w, have
}
