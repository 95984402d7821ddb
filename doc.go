// Package sepro provides a rule-based, discrete-step simulation
// engine over a mutable population of tagged, slot-linked objects.
//
// The core engine lives in package 'core'; 'dsl' loads Models from
// HCL/YAML/JSON, 'expr' evaluates scripted Measures, 'store' persists
// Snapshots, 'observe' reports a running Engine to the outside world,
// 'viz' and 'docgen' render a Model or its state for inspection, and
// the 'sepro' command in 'cmd/sepro' ties all of it together.
package sepro
