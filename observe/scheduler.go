package observe

import (
	"context"
	"log"
	"time"

	"github.com/gorhill/cronexpr"

	"github.com/sepro-lang/sepro/core"
)

// Snapshotter is the slice of store.Store that Scheduler needs; kept
// as an interface here so observe doesn't import store and the two
// packages stay decoupled.
type Snapshotter interface {
	Save(ctx context.Context, name string, snap *core.Snapshot) error
}

// Scheduler triggers a named Store.Save on a cron schedule, reading
// the Engine's state only through Engine.Snapshot between steps, per
// this codebase's single-threaded stepping rule: the Engine itself is
// never touched mid-step.
type Scheduler struct {
	engine *core.Engine
	store  Snapshotter
	name   string
	expr   *cronexpr.Expression

	stop chan struct{}
}

// NewScheduler parses expr with cronexpr.Parse (which accepts five-,
// six-, and seven-field cron expressions) and arranges to save
// engine's snapshot under name each time it fires.
func NewScheduler(engine *core.Engine, store Snapshotter, name, expr string) (*Scheduler, error) {
	ce, err := cronexpr.Parse(expr)
	if err != nil {
		return nil, err
	}
	return &Scheduler{engine: engine, store: store, name: name, expr: ce}, nil
}

// Run blocks, firing snapshots until ctx is done or Stop is called.
func (s *Scheduler) Run(ctx context.Context) {
	s.stop = make(chan struct{})
	for {
		now := time.Now()
		next := s.expr.Next(now)
		if next.IsZero() {
			return
		}

		timer := time.NewTimer(next.Sub(now))
		select {
		case <-timer.C:
			s.fire(ctx)
		case <-ctx.Done():
			timer.Stop()
			return
		case <-s.stop:
			timer.Stop()
			return
		}
	}
}

func (s *Scheduler) Stop() {
	if s.stop != nil {
		close(s.stop)
	}
}

func (s *Scheduler) fire(ctx context.Context) {
	snap := s.engine.Snapshot()
	if err := s.store.Save(ctx, s.name, &snap); err != nil {
		log.Printf("observe: scheduled snapshot %q failed: %v", s.name, err)
	}
}
