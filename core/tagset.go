package core

import "encoding/json"

// TagList is a set of Symbols with standard set algebra.
//
// The zero value is an empty set ready to use.
type TagList map[Symbol]bool

// NewTagList makes a TagList containing the given Symbols.
func NewTagList(ss ...Symbol) TagList {
	t := make(TagList, len(ss))
	for _, s := range ss {
		t[s] = true
	}
	return t
}

// Has reports whether s is a member of t.
func (t TagList) Has(s Symbol) bool {
	return t[s]
}

// Add adds s to t and returns t.
func (t TagList) Add(s Symbol) TagList {
	t[s] = true
	return t
}

// Remove removes s from t and returns t.
func (t TagList) Remove(s Symbol) TagList {
	delete(t, s)
	return t
}

// Union returns a new TagList containing every Symbol in t or other.
func (t TagList) Union(other TagList) TagList {
	acc := make(TagList, len(t)+len(other))
	for s := range t {
		acc[s] = true
	}
	for s := range other {
		acc[s] = true
	}
	return acc
}

// Difference returns a new TagList containing every Symbol in t that
// is not in other.
func (t TagList) Difference(other TagList) TagList {
	acc := make(TagList, len(t))
	for s := range t {
		if !other[s] {
			acc[s] = true
		}
	}
	return acc
}

// Subset reports whether every Symbol in t is also in other.
func (t TagList) Subset(other TagList) bool {
	for s := range t {
		if !other[s] {
			return false
		}
	}
	return true
}

// Disjoint reports whether t and other share no Symbol.
func (t TagList) Disjoint(other TagList) bool {
	for s := range t {
		if other[s] {
			return false
		}
	}
	return true
}

// Copy makes a shallow copy of t.
func (t TagList) Copy() TagList {
	acc := make(TagList, len(t))
	for s := range t {
		acc[s] = true
	}
	return acc
}

// Slice returns the members of t in unspecified order.
func (t TagList) Slice() []Symbol {
	acc := make([]Symbol, 0, len(t))
	for s := range t {
		acc = append(acc, s)
	}
	return acc
}

// MarshalYAML renders a TagList as a list of tag names.
func (t TagList) MarshalYAML() (interface{}, error) {
	names := make([]string, 0, len(t))
	for s := range t {
		names = append(names, s.String())
	}
	return names, nil
}

// UnmarshalYAML builds a TagList from a list of tag names.
func (t *TagList) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var names []string
	if err := unmarshal(&names); err != nil {
		return err
	}
	acc := make(TagList, len(names))
	for _, n := range names {
		acc[Intern(n)] = true
	}
	*t = acc
	return nil
}

// MarshalJSON renders a TagList as a JSON array of tag names.
func (t TagList) MarshalJSON() ([]byte, error) {
	names := make([]string, 0, len(t))
	for s := range t {
		names = append(names, s.String())
	}
	return json.Marshal(names)
}

// UnmarshalJSON builds a TagList from a JSON array of tag names.
func (t *TagList) UnmarshalJSON(bs []byte) error {
	var names []string
	if err := json.Unmarshal(bs, &names); err != nil {
		return err
	}
	acc := make(TagList, len(names))
	for _, n := range names {
		acc[Intern(n)] = true
	}
	*t = acc
	return nil
}
