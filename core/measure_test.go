package core

import "testing"

type recordingLogger struct {
	NopLoggerEmbed
	records  []map[Symbol]float64
	warnings []string
}

func (l *recordingLogger) LogRecord(step int, record map[Symbol]float64) {
	l.records = append(l.records, record)
}

func (l *recordingLogger) LogWarning(step int, message string) {
	l.warnings = append(l.warnings, message)
}

// NopLoggerEmbed implements the rest of Logger as no-ops so tests only
// override the one method they care about.
type NopLoggerEmbed struct{}

func (NopLoggerEmbed) LoggingWillStart([]*Measure, int)  {}
func (NopLoggerEmbed) LoggingDidEnd(int)                 {}
func (NopLoggerEmbed) LogRecord(int, map[Symbol]float64) {}
func (NopLoggerEmbed) LogNotification(int, Symbol)       {}
func (NopLoggerEmbed) LogWarning(int, string)            {}

func TestProbeCountMeasure(t *testing.T) {
	m := NewModel("test")
	tag := Intern("shiny")
	m.Measures = []*Measure{
		{Name: Intern("shinyCount"), Kind: Count, Predicates: []Predicate{{Kind: TagSet, Tags: NewTagList(tag)}}},
	}

	e := NewEngine(m, nil)
	logger := &recordingLogger{}
	e.SetLogger(logger)

	c := e.Container()
	c.createObject(NewTagList(tag), NewCounterMap(), NewTagList())
	c.createObject(NewTagList(), NewCounterMap(), NewTagList())

	e.probe()

	if len(logger.records) != 1 {
		t.Fatalf("expected exactly one probe record, got %d", len(logger.records))
	}
	if got := logger.records[0][Intern("shinyCount")]; got != 1 {
		t.Fatalf("expected shinyCount == 1, got %v", got)
	}
}

func TestProbeSumCounterIgnoresAbsentCounter(t *testing.T) {
	m := NewModel("test")
	counter := Intern("weight")
	m.Measures = []*Measure{
		{Name: Intern("totalWeight"), Kind: SumCounter, Counter: counter, Predicates: []Predicate{{Kind: All}}},
	}

	e := NewEngine(m, nil)
	logger := &recordingLogger{}
	e.SetLogger(logger)

	c := e.Container()
	c.createObject(NewTagList(), CounterMap{counter: 4}, NewTagList())
	c.createObject(NewTagList(), CounterMap{counter: 6}, NewTagList())
	c.createObject(NewTagList(), NewCounterMap(), NewTagList()) // no such counter

	e.probe()

	if got := logger.records[0][Intern("totalWeight")]; got != 10 {
		t.Fatalf("expected totalWeight == 10, got %v", got)
	}
}

func TestProbeExprWithNoRunnerLogsWarning(t *testing.T) {
	m := NewModel("test")
	m.Measures = []*Measure{
		{Name: Intern("scripted"), Kind: Expr, Source: "acc + 1", Predicates: []Predicate{{Kind: All}}},
	}

	e := NewEngine(m, nil)
	logger := &recordingLogger{}
	e.SetLogger(logger)

	c := e.Container()
	c.createObject(NewTagList(), NewCounterMap(), NewTagList())

	e.probe()

	if len(logger.warnings) != 1 {
		t.Fatalf("expected exactly one warning, got %d: %v", len(logger.warnings), logger.warnings)
	}
	if got := logger.records[0][Intern("scripted")]; got != 0 {
		t.Fatalf("expected an unfolded Expr measure to stay at its identity value 0, got %v", got)
	}
}
