// Package metrics defines the sink interface evaluation cycles report to.
// Concrete sinks (Prometheus, InfluxDB) live in infra/metrics.
package metrics

import "time"

// CycleStats summarizes one evaluation cycle for the metric sinks.
type CycleStats struct {
	CycleID            string
	Time               time.Time
	TrainCount         int
	AvailablePlatforms int
	Recommended        int
	Assigned           int
	MeanDelay          float64 // seconds
	MaxDelay           float64 // seconds
	P90Delay           float64 // seconds
	Duration           time.Duration
	Failed             bool
}

// Sink records per-cycle statistics.
type Sink interface {
	RecordCycle(CycleStats) error
}

// NopSink discards all statistics.
type NopSink struct{}

// RecordCycle implements Sink.
func (NopSink) RecordCycle(CycleStats) error { return nil }
