package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/railops/sectionctl/core/metrics"
)

// PromSink records evaluation cycles in Prometheus metrics.
type PromSink struct {
	cycles             *prometheus.CounterVec
	duration           prometheus.Histogram
	waitingTrains      prometheus.Gauge
	availablePlatforms prometheus.Gauge
	assignedTrains     prometheus.Gauge
	meanDelay          prometheus.Gauge
}

// NewPromSink registers the cycle metrics on the provided registerer. If reg
// is nil, the default registerer is used. If the collectors are already
// registered, the existing ones are reused.
func NewPromSink(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	cycles := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "section_cycles_total",
		Help: "Total number of evaluation cycles",
	}, []string{"failed"})
	duration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "section_cycle_duration_seconds",
		Help:    "Duration of one evaluation cycle",
		Buckets: prometheus.DefBuckets,
	})
	waiting := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "section_waiting_trains",
		Help: "Trains waiting for clearance in the last cycle",
	})
	available := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "section_available_platforms",
		Help: "Available platform lines in the last cycle",
	})
	assigned := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "section_assigned_trains",
		Help: "Recommendations with an assigned platform in the last cycle",
	})
	meanDelay := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "section_mean_delay_seconds",
		Help: "Mean delay of waiting trains in the last cycle",
	})

	s := &PromSink{
		cycles:             cycles,
		duration:           duration,
		waitingTrains:      waiting,
		availablePlatforms: available,
		assignedTrains:     assigned,
		meanDelay:          meanDelay,
	}
	collectors := []prometheus.Collector{cycles, duration, waiting, available, assigned, meanDelay}
	for i, col := range collectors {
		if err := reg.Register(col); err != nil {
			are, ok := err.(prometheus.AlreadyRegisteredError)
			if !ok {
				return nil, err
			}
			switch i {
			case 0:
				s.cycles = are.ExistingCollector.(*prometheus.CounterVec)
			case 1:
				s.duration = are.ExistingCollector.(prometheus.Histogram)
			case 2:
				s.waitingTrains = are.ExistingCollector.(prometheus.Gauge)
			case 3:
				s.availablePlatforms = are.ExistingCollector.(prometheus.Gauge)
			case 4:
				s.assignedTrains = are.ExistingCollector.(prometheus.Gauge)
			case 5:
				s.meanDelay = are.ExistingCollector.(prometheus.Gauge)
			}
		}
	}
	return s, nil
}

// RecordCycle implements the core metrics Sink.
func (s *PromSink) RecordCycle(st coremetrics.CycleStats) error {
	s.cycles.WithLabelValues(strconv.FormatBool(st.Failed)).Inc()
	s.duration.Observe(st.Duration.Seconds())
	if st.Failed {
		return nil
	}
	s.waitingTrains.Set(float64(st.TrainCount))
	s.availablePlatforms.Set(float64(st.AvailablePlatforms))
	s.assignedTrains.Set(float64(st.Assigned))
	s.meanDelay.Set(st.MeanDelay)
	return nil
}
