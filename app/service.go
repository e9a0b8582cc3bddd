// Package app wires the configuration into a running section controller
// service: CSV sources, ranking engine, override store, metric sinks, the
// operator HTTP API and the refresh loop.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/railops/sectionctl/api/overrides"
	"github.com/railops/sectionctl/api/recommendations"
	"github.com/railops/sectionctl/config"
	"github.com/railops/sectionctl/core/controller"
	"github.com/railops/sectionctl/core/events"
	coremetrics "github.com/railops/sectionctl/core/metrics"
	"github.com/railops/sectionctl/core/override"
	"github.com/railops/sectionctl/core/ranking"
	"github.com/railops/sectionctl/infra/csvsource"
	"github.com/railops/sectionctl/infra/logger"
	"github.com/railops/sectionctl/infra/metrics"
	"github.com/railops/sectionctl/infra/mqtt"
	"github.com/railops/sectionctl/internal/eventbus"
)

// Service orchestrates the controller, the refresh loop and the HTTP API.
type Service struct {
	Controller *controller.Controller

	cfg         *config.Config
	log         logger.Logger
	cycleBus    *eventbus.Bus[events.CycleCompleted]
	overrideBus *eventbus.Bus[events.OverrideChanged]
	publisher   *mqtt.Publisher
	influx      *metrics.InfluxSink
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	logg := logger.New("service")

	var sinks []coremetrics.Sink
	if cfg.Metrics.PrometheusEnabled {
		sink, err := metrics.NewPromSink(nil)
		if err != nil {
			return nil, fmt.Errorf("prom sink: %w", err)
		}
		sinks = append(sinks, sink)
	}
	var influx *metrics.InfluxSink
	if cfg.Metrics.InfluxEnabled {
		sink := metrics.NewInfluxSinkWithFallback(cfg.Metrics)
		if is, ok := sink.(*metrics.InfluxSink); ok {
			influx = is
		}
		sinks = append(sinks, sink)
	}
	var sink coremetrics.Sink = coremetrics.NopSink{}
	if len(sinks) == 1 {
		sink = sinks[0]
	} else if len(sinks) > 1 {
		sink = coremetrics.NewMultiSink(sinks...)
	}

	cycleBus := eventbus.New[events.CycleCompleted]()
	overrideBus := eventbus.New[events.OverrideChanged]()
	store := override.NewStore(overrideBus)
	source := csvsource.New(cfg.Data, logger.New("csvsource"))
	engine := ranking.NewEngine(cfg.Engine)

	ctrl, err := controller.New(source, engine, store, cycleBus, sink, logger.New("controller"))
	if err != nil {
		return nil, fmt.Errorf("controller: %w", err)
	}

	var publisher *mqtt.Publisher
	if cfg.MQTT.Enabled {
		publisher, err = mqtt.NewPublisher(cfg.MQTT)
		if err != nil {
			return nil, fmt.Errorf("mqtt publisher: %w", err)
		}
	}

	return &Service{
		Controller:  ctrl,
		cfg:         cfg,
		log:         logg,
		cycleBus:    cycleBus,
		overrideBus: overrideBus,
		publisher:   publisher,
		influx:      influx,
	}, nil
}

// Run starts the refresh loop, the HTTP API and the metrics endpoint, and
// blocks until the context is cancelled.
func (s *Service) Run(ctx context.Context) error {
	if s.cfg.Metrics.PrometheusEnabled {
		go s.runMetricsServer(ctx)
	}

	go s.consumeCycles(s.cycleBus.Subscribe())
	go s.consumeOverrides(s.overrideBus.Subscribe())

	mux := http.NewServeMux()
	mux.Handle("/api/recommendations", recommendations.NewLatestHandler(s.Controller))
	mux.Handle("/api/refresh", recommendations.NewRefreshHandler(s.Controller))
	mux.Handle("/api/overrides/", overrides.NewHandler(s.Controller))
	srv := &http.Server{Addr: s.cfg.API.Addr, Handler: mux}
	httpErr := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			httpErr <- err
		}
	}()

	// First cycle runs immediately; the ticker drives the rest. A failed
	// cycle is logged and retried on the next tick with overrides intact.
	if _, err := s.Controller.Evaluate(ctx); err != nil {
		s.log.Errorf("initial cycle: %v", err)
	}
	interval := time.Duration(s.cfg.Refresh.IntervalSeconds) * time.Second
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if _, err := s.Controller.Evaluate(ctx); err != nil {
				s.log.Errorf("refresh cycle: %v", err)
			}
		case err := <-httpErr:
			return fmt.Errorf("api server: %w", err)
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				s.log.Errorf("api server shutdown: %v", err)
			}
			return nil
		}
	}
}

// runMetricsServer exposes /metrics on its own listener until the context
// is cancelled. A dedicated mux keeps it off the operator API.
func (s *Service) runMetricsServer(ctx context.Context) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: s.cfg.Metrics.PrometheusAddr, Handler: mux}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.log.Errorf("metrics server shutdown: %v", err)
		}
	}()
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		s.log.Errorf("metrics server: %v", err)
	}
}

func (s *Service) consumeCycles(ch <-chan events.CycleCompleted) {
	for ev := range ch {
		s.log.Debugw("cycle completed", map[string]any{
			"cycle_id":        ev.CycleID,
			"trains":          ev.TrainCount,
			"platforms":       ev.AvailablePlatforms,
			"recommendations": len(ev.Recommendations),
		})
		if s.publisher != nil {
			if err := s.publisher.PublishCycle(ev); err != nil {
				s.log.Errorf("publish cycle: %v", err)
			}
		}
	}
}

func (s *Service) consumeOverrides(ch <-chan events.OverrideChanged) {
	for ev := range ch {
		if ev.Cleared {
			s.log.Infof("override cleared for trip %s", ev.TripID)
			continue
		}
		s.log.Infof("override set for trip %s: priority %d", ev.TripID, ev.Priority)
	}
}

// Close releases the service resources.
func (s *Service) Close() error {
	s.cycleBus.Close()
	s.overrideBus.Close()
	if s.publisher != nil {
		s.publisher.Close()
	}
	if s.influx != nil {
		s.influx.Close()
	}
	return nil
}
