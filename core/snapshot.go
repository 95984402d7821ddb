package core

// Snapshot is the serializable projection of Container+Engine state
// used by the store package to persist and resume a run. It is a
// plain value, safe to marshal directly with encoding/json or YAML.
type Snapshot struct {
	Objects   []*Object `json:"objects" yaml:"objects"`
	NextId    ObjectRef `json:"nextId" yaml:"nextId"`
	Root      ObjectRef `json:"root" yaml:"root"`
	StepCount int       `json:"stepCount" yaml:"stepCount"`
	IsHalted  bool      `json:"isHalted" yaml:"isHalted"`
}

// Snapshot captures the engine's current state without touching it:
// objects are deep-copied so the caller can serialize at leisure while
// the engine keeps running.
func (e *Engine) Snapshot() Snapshot {
	e.container.RLock()
	objects := make([]*Object, 0, len(e.container.objects))
	for _, obj := range e.container.objects {
		objects = append(objects, obj.Copy())
	}
	nextId := e.container.nextId
	root := e.container.root
	e.container.RUnlock()

	return Snapshot{
		Objects:   objects,
		NextId:    nextId,
		Root:      root,
		StepCount: e.stepCount,
		IsHalted:  e.isHalted,
	}
}

// Restore replaces the engine's container contents and counters with
// a previously captured Snapshot. The model is unaffected: Restore is
// only meaningful against the same Model the Snapshot was taken from.
func (e *Engine) Restore(snap Snapshot) {
	e.container.Lock()
	e.container.objects = make(map[ObjectRef]*Object, len(snap.Objects))
	for _, obj := range snap.Objects {
		e.container.objects[obj.Id] = obj.Copy()
	}
	e.container.nextId = snap.NextId
	e.container.root = snap.Root
	e.container.Unlock()

	e.stepCount = snap.StepCount
	e.isHalted = snap.IsHalted
}
