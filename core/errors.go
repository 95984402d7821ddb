package core

import "fmt"

// ModelError is returned for the two recoverable failure modes named
// in the error table: an unknown concept passed to instantiate, and
// an unknown world passed to initialize. Every other listed failure
// (dangling slot reference, getCurrent on an undeclared slot) is a
// programmer error in the Model and panics instead, since recovering
// from it would mean running against state the Model itself declared
// impossible.
type ModelError struct {
	Op  string
	Msg string
}

func (e *ModelError) Error() string {
	if e.Op == "" {
		return e.Msg
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Msg)
}

// errUnknownConcept's wording (lowercase, %q-quoted) follows Go's error
// string convention rather than the capitalized, single-quoted form
// ("Can not instantiate 'name': no such concept") a caller surfacing
// this to an end user might expect; wrap and reformat at that boundary
// if the caller needs the literal wording.
func errUnknownConcept(name Symbol) error {
	return &ModelError{Op: "instantiate", Msg: fmt.Sprintf("can not instantiate %q: no such concept", name)}
}

func errUnknownWorld(name Symbol) error {
	return &ModelError{Op: "initialize", Msg: fmt.Sprintf("no such world %q", name)}
}
