package core

import (
	"fmt"
	"math/rand"
	"os"
	"sort"
	"strings"
	"time"
)

// Delegate observes an Engine's run without ever being allowed to
// mutate it. Every method is optional in spirit; NopDelegate
// implements all of them as no-ops for embedders that only care about
// a couple of hooks.
type Delegate interface {
	WillRun(e *Engine)
	DidRun(e *Engine)
	WillStep(e *Engine)
	DidStep(e *Engine)
	HandleTrap(e *Engine, traps map[Symbol]int)
	HandleHalt(e *Engine)
}

// NopDelegate implements Delegate with no-ops; embed it to pick only
// the hooks you need.
type NopDelegate struct{}

func (NopDelegate) WillRun(*Engine)                   {}
func (NopDelegate) DidRun(*Engine)                     {}
func (NopDelegate) WillStep(*Engine)                   {}
func (NopDelegate) DidStep(*Engine)                    {}
func (NopDelegate) HandleTrap(*Engine, map[Symbol]int) {}
func (NopDelegate) HandleHalt(*Engine)                 {}

// Logger observes probe output and notifications. Like Delegate, it
// must not mutate the engine or container from within a callback.
type Logger interface {
	LoggingWillStart(measures []*Measure, steps int)
	LoggingDidEnd(stepsRun int)
	LogRecord(step int, record map[Symbol]float64)
	LogNotification(step int, symbol Symbol)
	// LogWarning reports a non-fatal problem probe() hit while
	// folding a Measure: an Expr Measure run with no ScriptRunner
	// attached, or one whose script failed to evaluate.
	LogWarning(step int, message string)
}

// Engine runs a Model's Actuators against a Container, step by step.
type Engine struct {
	model     *Model
	container *Container

	stepCount int
	isHalted  bool

	traps map[Symbol]int

	delegate Delegate
	logger   Logger
	runner   ScriptRunner

	rng *rand.Rand
}

// NewEngine builds an Engine at stepCount=0, isHalted=false. If
// container is nil, a fresh empty Container is created; passing one
// lets an embedder resume against already-populated state (e.g. after
// store.Load).
func NewEngine(model *Model, container *Container) *Engine {
	if container == nil {
		container = NewContainer()
	}
	return &Engine{
		model:     model,
		container: container,
		traps:     make(map[Symbol]int),
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// SetSeed fixes the shuffle RNG for reproducible runs. Call before Run
// for deterministic actuator ordering.
func (e *Engine) SetSeed(seed int64) {
	e.rng = rand.New(rand.NewSource(seed))
}

// SetDelegate attaches an observer. Pass nil to detach.
func (e *Engine) SetDelegate(d Delegate) { e.delegate = d }

// SetLogger attaches a probe/notification observer. Pass nil to
// detach; probe() is only invoked when a Logger is attached.
func (e *Engine) SetLogger(l Logger) { e.logger = l }

// SetScriptRunner attaches the interpreter Expr measures delegate to.
// Without one, Expr measures are skipped (see probe).
func (e *Engine) SetScriptRunner(r ScriptRunner) { e.runner = r }

// StepCount returns the number of completed steps since construction.
func (e *Engine) StepCount() int { return e.stepCount }

// IsHalted reports whether the most recent step set the halt flag.
func (e *Engine) IsHalted() bool { return e.isHalted }

// Container exposes the engine's Container for read access by
// ambient-stack collaborators (viz, store, docgen). Mutating it
// outside a step is the caller's responsibility to avoid.
func (e *Engine) Container() *Container { return e.container }

// Model exposes the compiled Model the engine is running.
func (e *Engine) Model() *Model { return e.model }

// Initialize repopulates the container per the named world. stepCount
// and isHalted are not reset; call Reset first if a clean restart is
// wanted.
func (e *Engine) Initialize(worldName Symbol) (map[Symbol]ObjectRef, error) {
	return newInstantiator(e.model, e.container).Initialize(worldName)
}

// Instantiate creates one Object from a declared Concept outside of
// any World, for embedders that build populations incrementally.
func (e *Engine) Instantiate(name Symbol, initializers []Initializer) (ObjectRef, error) {
	return newInstantiator(e.model, e.container).Instantiate(name, initializers)
}

// Reset zeroes stepCount and isHalted without touching the container.
func (e *Engine) Reset() {
	e.stepCount = 0
	e.isHalted = false
}

func (e *Engine) callDelegate(fn func(Delegate)) {
	if e.delegate != nil {
		fn(e.delegate)
	}
}

// step runs one simulation step:
//  1. clears the trap multiset
//  2. increments stepCount
//  3. delegate.WillStep
//  4. shuffles model.Actuators and dispatches each in that order
//  5. delegate.DidStep
//  6. probe(), if a logger is attached
//  7. delegate.HandleTrap, if any traps were collected
func (e *Engine) step() {
	e.traps = make(map[Symbol]int)
	e.stepCount++

	e.callDelegate(func(d Delegate) { d.WillStep(e) })

	order := e.shuffle(e.model.Actuators)
	for _, a := range order {
		res := a.dispatch(e.container)
		for _, t := range res.traps {
			e.traps[t]++
		}
		for _, n := range res.notifications {
			if e.logger != nil {
				e.logger.LogNotification(e.stepCount, n)
			}
		}
		// Assignment, not OR: a later actuator's DoesHalt
		// overwrites an earlier one's in the same step.
		e.isHalted = res.halts
	}

	e.callDelegate(func(d Delegate) { d.DidStep(e) })

	if e.logger != nil {
		e.probe()
	}

	if len(e.traps) > 0 {
		e.callDelegate(func(d Delegate) { d.HandleTrap(e, e.traps) })
	}
}

// DebugDump writes a human-readable listing of every Object in the
// container to stdout: id, tags, counters, and every declared slot
// (its bound target, or "unbound"), ordered by Id for a stable diff
// between dumps. Root is marked inline.
func (e *Engine) DebugDump() {
	refs := e.container.selectAll()
	sort.Slice(refs, func(i, j int) bool { return refs[i] < refs[j] })

	root := e.container.Root()
	fmt.Fprintf(os.Stdout, "step %d, %d objects, halted=%v\n", e.stepCount, len(refs), e.isHalted)

	for _, ref := range refs {
		obj := e.container.getObject(ref)
		if obj == nil {
			continue
		}

		marker := ""
		if ref == root {
			marker = " (root)"
		}
		fmt.Fprintf(os.Stdout, "#%d%s tags=[%s]\n", ref, marker, strings.Join(symbolNames(obj.Tags.Slice()), " "))

		counters := make(map[string]int64, len(obj.Counters))
		for s, v := range obj.Counters {
			counters[s.String()] = v
		}
		for _, name := range sortedKeys(counters) {
			fmt.Fprintf(os.Stdout, "    counter %s=%d\n", name, counters[name])
		}

		bindings := make(map[string]ObjectRef, len(obj.Bindings))
		for s, bound := range obj.Bindings {
			bindings[s.String()] = bound
		}
		for _, name := range sortedSlotKeys(bindings) {
			if bound := bindings[name]; bound == NoRef {
				fmt.Fprintf(os.Stdout, "    slot %s=unbound\n", name)
			} else {
				fmt.Fprintf(os.Stdout, "    slot %s=#%d\n", name, bound)
			}
		}
	}
}

func symbolNames(syms []Symbol) []string {
	names := make([]string, len(syms))
	for i, s := range syms {
		names[i] = s.String()
	}
	sort.Strings(names)
	return names
}

func sortedKeys(m map[string]int64) []string {
	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func sortedSlotKeys(m map[string]ObjectRef) []string {
	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// shuffle returns a fresh pseudo-random permutation of actuators,
// leaving the Model's own slice untouched.
func (e *Engine) shuffle(actuators []*Actuator) []*Actuator {
	order := make([]*Actuator, len(actuators))
	copy(order, actuators)
	e.rng.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})
	return order
}

// Run repeats step() up to n times, stopping early if isHalted is set
// after a step. If a Logger is attached, it receives
// LoggingWillStart/an initial probe() before the first step and
// LoggingDidEnd after the last.
func (e *Engine) Run(n int) int {
	if e.logger != nil {
		e.logger.LoggingWillStart(e.model.Measures, n)
		e.probe()
	}

	e.callDelegate(func(d Delegate) { d.WillRun(e) })

	run := 0
	for ; run < n; run++ {
		e.step()
		if e.isHalted {
			e.callDelegate(func(d Delegate) { d.HandleHalt(e) })
			run++
			break
		}
	}

	e.callDelegate(func(d Delegate) { d.DidRun(e) })

	if e.logger != nil {
		e.logger.LoggingDidEnd(run)
	}

	return run
}

// probe builds one Probe per declared Measure, folds every Object in
// the container through every Probe whose Predicates it satisfies,
// and hands the resulting record to the logger.
func (e *Engine) probe() {
	probes := make([]*probe, len(e.model.Measures))
	for i, m := range e.model.Measures {
		probes[i] = newProbe(m)
	}

	for _, ref := range e.container.selectAll() {
		obj := e.container.getObject(ref)
		if obj == nil {
			continue
		}
		for _, p := range probes {
			if matches(e.container, p.measure.Predicates, obj) {
				p.fold(obj, e.runner)
			}
		}
	}

	record := make(map[Symbol]float64, len(probes))
	for _, p := range probes {
		record[p.measure.Name] = p.value
		if p.err != nil {
			e.logger.LogWarning(e.stepCount, "measure "+p.measure.Name.String()+": "+p.err.Error())
		}
	}
	e.logger.LogRecord(e.stepCount, record)
}
