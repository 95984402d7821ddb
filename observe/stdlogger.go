// Package observe provides core.Logger implementations that report
// probe records and actuator notifications to the outside world: plain
// log output, MQTT, webhooks, and a websocket broadcast hub, plus a
// cron-driven Scheduler that checkpoints a running Engine to a Store.
//
// Every Logger here is driven synchronously from Engine.step, between
// steps, exactly as core.Logger requires (none of them hold their own
// lock on Engine state).
package observe

import (
	"log"

	"github.com/sepro-lang/sepro/core"
)

// StdLogger is the default core.Logger: it writes probe records and
// notifications with the standard log package, gated by Debug like the
// other loggers in this package.
type StdLogger struct {
	Debug bool
}

func NewStdLogger() *StdLogger {
	return &StdLogger{Debug: true}
}

func (l *StdLogger) logf(format string, args ...interface{}) {
	if !l.Debug {
		return
	}
	log.Printf("observe: "+format, args...)
}

func (l *StdLogger) LoggingWillStart(measures []*core.Measure, steps int) {
	l.logf("starting run of %d steps, %d measures", steps, len(measures))
}

func (l *StdLogger) LoggingDidEnd(steps int) {
	l.logf("run ended after %d steps", steps)
}

func (l *StdLogger) LogRecord(step int, values map[core.Symbol]float64) {
	l.logf("step %d record %v", step, values)
}

func (l *StdLogger) LogNotification(step int, name core.Symbol) {
	l.logf("step %d notification %s", step, name)
}

func (l *StdLogger) LogWarning(step int, message string) {
	l.logf("step %d warning: %s", step, message)
}
