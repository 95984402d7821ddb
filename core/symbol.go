package core

import "sync"

// Symbol is an interned identifier. Two Symbols are equal iff they
// name the same string; comparison is a plain integer comparison, not
// a string comparison, once interned.
//
// Symbols are used for tag names, concept names, counter names, slot
// names, trap labels, and notification labels.
type Symbol int

// table is the process-wide symbol intern table.
//
// A single global table (rather than one per Model) keeps Symbols
// comparable across Models loaded in the same process, which is handy
// for tests and for tools like dsl.Validate that compare Symbols from
// a Model against Symbols freshly constructed by the caller.
var table = newSymbolTable()

type symbolTable struct {
	sync.RWMutex
	byName []string
	ids    map[string]Symbol
}

// newSymbolTable seeds index 0 with the empty name so the zero Symbol
// is never handed out by intern. Predicate.InSlot, ModifierTarget.Slot,
// World.Root, and Measure.Counter all use the zero Symbol as their
// "unset" sentinel; a real interned name landing on 0 would make those
// fields indistinguishable from unset.
func newSymbolTable() *symbolTable {
	t := &symbolTable{
		byName: make([]string, 0, 256),
		ids:    make(map[string]Symbol, 256),
	}
	t.byName = append(t.byName, "")
	t.ids[""] = 0
	return t
}

func (t *symbolTable) intern(name string) Symbol {
	t.RLock()
	if id, have := t.ids[name]; have {
		t.RUnlock()
		return id
	}
	t.RUnlock()

	t.Lock()
	defer t.Unlock()
	if id, have := t.ids[name]; have {
		return id
	}
	id := Symbol(len(t.byName))
	t.byName = append(t.byName, name)
	t.ids[name] = id
	return id
}

func (t *symbolTable) name(s Symbol) string {
	t.RLock()
	defer t.RUnlock()
	if int(s) < 0 || len(t.byName) <= int(s) {
		return ""
	}
	return t.byName[s]
}

// Intern returns the Symbol for the given name, creating it if this is
// the first time the name has been seen.
func Intern(name string) Symbol {
	return table.intern(name)
}

// String returns the name this Symbol was interned with.
func (s Symbol) String() string {
	return table.name(s)
}

// MarshalText lets a Symbol serialize as its name rather than as a
// bare integer, which keeps Model YAML/JSON readable.
func (s Symbol) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText interns the given name.
func (s *Symbol) UnmarshalText(text []byte) error {
	*s = Intern(string(text))
	return nil
}

// MarshalYAML renders a Symbol as its name, including as a map key:
// gopkg.in/yaml.v2 calls this for both, keeping Model maps keyed by
// Concept/World name on disk rather than by interned id.
func (s Symbol) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

// UnmarshalYAML interns the given name.
func (s *Symbol) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var name string
	if err := unmarshal(&name); err != nil {
		return err
	}
	*s = Intern(name)
	return nil
}
