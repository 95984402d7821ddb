/* Copyright 2018 Comcast Cable Communications Management, LLC
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 * http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package core

import "sync"

// Container owns every Object for the lifetime of a run. Objects are
// never referenced directly outside the Container; elsewhere they are
// named by ObjectRef and looked up again. This breaks ownership cycles
// in the object graph (Objects reference each other only through
// Bindings) and keeps the arena cache-friendly.
type Container struct {
	sync.RWMutex

	objects map[ObjectRef]*Object
	nextId  ObjectRef
	root    ObjectRef
}

// NewContainer makes an empty Container.
func NewContainer() *Container {
	return &Container{
		objects: make(map[ObjectRef]*Object, 64),
		nextId:  1,
	}
}

// Root returns the distinguished root Object's ref. It is only
// guaranteed present after a successful initialize.
func (c *Container) Root() ObjectRef {
	c.RLock()
	defer c.RUnlock()
	return c.root
}

// setRoot assigns the distinguished root. Not exported: only the
// Instantiator (initialize) should call this.
func (c *Container) setRoot(ref ObjectRef) {
	c.Lock()
	defer c.Unlock()
	c.root = ref
}

// createObject allocates a fresh ObjectRef and stores a new Object
// whose Bindings has an entry (initially unbound) for every slot.
//
// tags, counters, and slots are copied; the caller's maps are never
// retained.
func (c *Container) createObject(tags TagList, counters CounterMap, slots TagList) ObjectRef {
	c.Lock()
	defer c.Unlock()

	ref := c.nextId
	c.nextId++

	bindings := make(SlotMap, len(slots))
	for s := range slots {
		bindings[s] = NoRef
	}

	c.objects[ref] = &Object{
		Id:       ref,
		Tags:     tags.Copy(),
		Counters: counters.Copy(),
		Slots:    slots.Copy(),
		Bindings: bindings,
	}

	return ref
}

// getObject returns the Object named by ref, or nil if there is none.
//
// The returned Object is the Container's own copy-on-nothing live
// value: callers within this package may mutate it (that is how
// Modifier.apply works); callers outside this package should treat it
// as read-only and use Engine.Snapshot for a safe copy.
func (c *Container) getObject(ref ObjectRef) *Object {
	c.RLock()
	defer c.RUnlock()
	return c.objects[ref]
}

// removeAll empties the Container and resets the id counter. Root
// becomes invalid (NoRef) until re-assigned.
func (c *Container) removeAll() {
	c.Lock()
	defer c.Unlock()
	c.objects = make(map[ObjectRef]*Object, 64)
	c.nextId = 1
	c.root = NoRef
}

// selectAll returns a snapshot of the refs of every Object in c.
//
// The snapshot is a plain slice copied under the read lock so that a
// single pass sees each currently-present Object at most once and
// never sees a deleted one, even if the Container is mutated by the
// caller's own modifiers while iterating. Iteration order is
// unspecified.
func (c *Container) selectAll() []ObjectRef {
	c.RLock()
	defer c.RUnlock()
	acc := make([]ObjectRef, 0, len(c.objects))
	for ref := range c.objects {
		acc = append(acc, ref)
	}
	return acc
}

// selectMatching returns a snapshot of the refs of every Object satisfying
// every Predicate in preds. An empty preds list matches everything,
// same as selector.All.
func (c *Container) selectMatching(preds []Predicate) []ObjectRef {
	refs := c.selectAll()
	acc := make([]ObjectRef, 0, len(refs))
	for _, ref := range refs {
		if obj := c.getObject(ref); obj != nil && matches(c, preds, obj) {
			acc = append(acc, ref)
		}
	}
	return acc
}

// Select yields the Objects matching sel. Selector.All short-circuits
// to every Object in the Container.
func (c *Container) Select(sel Selector) []ObjectRef {
	if sel.All {
		return c.selectAll()
	}
	return c.selectMatching(sel.Predicates)
}

// PredicatesMatch evaluates preds against the Object currently
// referred to by ref. Used for the post-mutation recheck in combined
// actuators (see Actuator.dispatchCombined).
func (c *Container) PredicatesMatch(preds []Predicate, ref ObjectRef) bool {
	obj := c.getObject(ref)
	if obj == nil {
		return false
	}
	return matches(c, preds, obj)
}

// Len reports the current Object count.
func (c *Container) Len() int {
	c.RLock()
	defer c.RUnlock()
	return len(c.objects)
}
