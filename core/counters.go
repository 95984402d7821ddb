package core

import "encoding/json"

// CounterMap maps a Symbol to a signed integer counter. A key is
// either present with a value or absent; absence is distinct from
// zero for guard purposes (see Modifier.canApply).
type CounterMap map[Symbol]int64

// NewCounterMap makes an empty CounterMap.
func NewCounterMap() CounterMap {
	return make(CounterMap, 4)
}

// Has reports whether c has a key.
func (c CounterMap) Has(s Symbol) bool {
	_, have := c[s]
	return have
}

// Get returns the value for s and whether it was present.
func (c CounterMap) Get(s Symbol) (int64, bool) {
	v, have := c[s]
	return v, have
}

// Copy makes a shallow copy of c.
func (c CounterMap) Copy() CounterMap {
	acc := make(CounterMap, len(c))
	for s, v := range c {
		acc[s] = v
	}
	return acc
}

// Overlay returns a new CounterMap that is c with every key in over
// replaced by over's value (last write wins).
func (c CounterMap) Overlay(over CounterMap) CounterMap {
	acc := c.Copy()
	for s, v := range over {
		acc[s] = v
	}
	return acc
}

// counterMapYAML is the serializable, name-keyed form of a CounterMap.
type counterMapYAML map[string]int64

// MarshalYAML renders a CounterMap with symbol names as keys.
func (c CounterMap) MarshalYAML() (interface{}, error) {
	acc := make(counterMapYAML, len(c))
	for s, v := range c {
		acc[s.String()] = v
	}
	return acc, nil
}

// UnmarshalYAML builds a CounterMap from name-keyed counters.
func (c *CounterMap) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var m counterMapYAML
	if err := unmarshal(&m); err != nil {
		return err
	}
	acc := make(CounterMap, len(m))
	for n, v := range m {
		acc[Intern(n)] = v
	}
	*c = acc
	return nil
}

// MarshalJSON renders a CounterMap with symbol names as keys.
func (c CounterMap) MarshalJSON() ([]byte, error) {
	acc := make(counterMapYAML, len(c))
	for s, v := range c {
		acc[s.String()] = v
	}
	return json.Marshal(acc)
}

// UnmarshalJSON builds a CounterMap from name-keyed counters.
func (c *CounterMap) UnmarshalJSON(bs []byte) error {
	var m counterMapYAML
	if err := json.Unmarshal(bs, &m); err != nil {
		return err
	}
	acc := make(CounterMap, len(m))
	for n, v := range m {
		acc[Intern(n)] = v
	}
	*c = acc
	return nil
}
