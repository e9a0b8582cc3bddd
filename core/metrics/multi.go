package metrics

import "errors"

// MultiSink fans out cycle statistics to several sinks.
type MultiSink struct {
	sinks []Sink
}

// NewMultiSink creates a MultiSink from the given sinks.
func NewMultiSink(sinks ...Sink) *MultiSink {
	return &MultiSink{sinks: sinks}
}

// RecordCycle forwards the statistics to every sink and joins any errors.
func (m *MultiSink) RecordCycle(s CycleStats) error {
	var errs []error
	for _, sink := range m.sinks {
		if err := sink.RecordCycle(s); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
