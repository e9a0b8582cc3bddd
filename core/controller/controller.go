// Package controller orchestrates evaluation cycles: snapshot the standing
// overrides, load both tables, rank and allocate, publish and record the
// result. Cycles are independent of each other; the override store is the
// only state carried across them.
package controller

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/railops/sectionctl/core/events"
	"github.com/railops/sectionctl/core/logger"
	"github.com/railops/sectionctl/core/metrics"
	"github.com/railops/sectionctl/core/model"
	"github.com/railops/sectionctl/core/override"
	"github.com/railops/sectionctl/core/ranking"
	"github.com/railops/sectionctl/internal/eventbus"
)

// Loader supplies the two tables for a cycle. Implementations must return
// an error only for table-level failures; row-level defects are recovered
// with sentinel values or skipped rows.
type Loader interface {
	LoadTrains(ctx context.Context) ([]model.Train, error)
	LoadPlatforms(ctx context.Context) ([]model.Platform, error)
}

// CycleResult is the output of one evaluation cycle. It is recomputed every
// cycle and never persisted.
type CycleResult struct {
	CycleID            string                 `json:"cycle_id"`
	Time               time.Time              `json:"time"`
	Recommendations    []model.Recommendation `json:"recommendations"`
	TrainCount         int                    `json:"train_count"`
	AvailablePlatforms int                    `json:"available_platforms"`
	Delays             DelayStats             `json:"delays"`
	Duration           time.Duration          `json:"-"`
}

// Controller runs evaluation cycles on demand. It exposes exactly the
// operator operations: trigger a re-evaluation and set/clear a manual
// priority override.
type Controller struct {
	loader    Loader
	engine    *ranking.Engine
	overrides *override.Store
	bus       *eventbus.Bus[events.CycleCompleted]
	sink      metrics.Sink
	log       logger.Logger

	mu      sync.RWMutex
	last    *CycleResult
	lastErr error
}

// New creates a Controller. The bus is optional; sink and log may be nil,
// in which case a no-op sink is used.
func New(loader Loader, engine *ranking.Engine, overrides *override.Store,
	bus *eventbus.Bus[events.CycleCompleted], sink metrics.Sink, log logger.Logger) (*Controller, error) {
	if loader == nil {
		return nil, fmt.Errorf("loader is required")
	}
	if engine == nil {
		return nil, fmt.Errorf("engine is required")
	}
	if overrides == nil {
		return nil, fmt.Errorf("override store is required")
	}
	if sink == nil {
		sink = metrics.NopSink{}
	}
	return &Controller{
		loader:    loader,
		engine:    engine,
		overrides: overrides,
		bus:       bus,
		sink:      sink,
		log:       log,
	}, nil
}

// Evaluate runs one complete cycle: load, filter, rank, allocate. On a load
// failure no result is produced, the error is surfaced to the caller and the
// standing overrides stay intact for the next attempt.
func (c *Controller) Evaluate(ctx context.Context) (*CycleResult, error) {
	start := time.Now()
	snapshot := c.overrides.Snapshot()

	trains, err := c.loader.LoadTrains(ctx)
	if err != nil {
		return nil, c.fail(start, fmt.Errorf("load trains: %w", err))
	}
	platforms, err := c.loader.LoadPlatforms(ctx)
	if err != nil {
		return nil, c.fail(start, fmt.Errorf("load platforms: %w", err))
	}

	recs := c.engine.Recommend(trains, platforms, snapshot)
	available := len(ranking.AvailablePlatforms(platforms))
	res := &CycleResult{
		CycleID:            uuid.NewString(),
		Time:               start,
		Recommendations:    recs,
		TrainCount:         len(trains),
		AvailablePlatforms: available,
		Delays:             ComputeDelayStats(trains),
		Duration:           time.Since(start),
	}

	c.mu.Lock()
	c.last = res
	c.lastErr = nil
	c.mu.Unlock()

	if c.bus != nil {
		c.bus.Publish(events.CycleCompleted{
			CycleID:            res.CycleID,
			Time:               res.Time,
			TrainCount:         res.TrainCount,
			AvailablePlatforms: res.AvailablePlatforms,
			Recommendations:    res.Recommendations,
		})
	}
	if err := c.sink.RecordCycle(cycleStats(res)); err != nil && c.log != nil {
		c.log.Warnf("record cycle metrics: %v", err)
	}
	if c.log != nil {
		c.log.Infof("cycle %s: ranked %d trains against %d available platforms, %d recommendations",
			res.CycleID, res.TrainCount, res.AvailablePlatforms, len(res.Recommendations))
	}
	return res, nil
}

// fail records a cycle-level failure so the API can report a clear status
// instead of a stale list implying success.
func (c *Controller) fail(start time.Time, err error) error {
	c.mu.Lock()
	c.lastErr = err
	c.mu.Unlock()
	if serr := c.sink.RecordCycle(metrics.CycleStats{
		Time:     start,
		Duration: time.Since(start),
		Failed:   true,
	}); serr != nil && c.log != nil {
		c.log.Warnf("record cycle metrics: %v", serr)
	}
	if c.log != nil {
		c.log.Errorf("evaluation cycle failed: %v", err)
	}
	return err
}

// Last returns the most recent successful result and the error of the most
// recent cycle, if it failed. Both may be non-nil when a failure follows an
// earlier success.
func (c *Controller) Last() (*CycleResult, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.last, c.lastErr
}

// SetOverride records a manual priority override for the given trip ID. It
// takes effect on the next cycle.
func (c *Controller) SetOverride(tripID string, priority int) {
	c.overrides.Set(tripID, priority)
}

// ClearOverride removes the manual override for the given trip ID.
func (c *Controller) ClearOverride(tripID string) {
	c.overrides.Clear(tripID)
}

func cycleStats(res *CycleResult) metrics.CycleStats {
	assigned := 0
	for _, r := range res.Recommendations {
		if r.Assigned {
			assigned++
		}
	}
	return metrics.CycleStats{
		CycleID:            res.CycleID,
		Time:               res.Time,
		TrainCount:         res.TrainCount,
		AvailablePlatforms: res.AvailablePlatforms,
		Recommended:        len(res.Recommendations),
		Assigned:           assigned,
		MeanDelay:          res.Delays.Mean,
		MaxDelay:           res.Delays.Max,
		P90Delay:           res.Delays.P90,
		Duration:           res.Duration,
	}
}
