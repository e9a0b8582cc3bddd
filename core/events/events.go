package events

import (
	"time"

	"github.com/railops/sectionctl/core/model"
)

// CycleCompleted is published after every successful evaluation cycle.
// Downstream consumers (cycle log, MQTT display feed) receive the full
// recommendation list.
type CycleCompleted struct {
	CycleID            string                 `json:"cycle_id"`
	Time               time.Time              `json:"time"`
	TrainCount         int                    `json:"train_count"`
	AvailablePlatforms int                    `json:"available_platforms"`
	Recommendations    []model.Recommendation `json:"recommendations"`
}

// OverrideChanged is published when an operator sets or clears a manual
// priority override.
type OverrideChanged struct {
	TripID   string    `json:"trip_id"`
	Priority int       `json:"priority"`
	Cleared  bool      `json:"cleared"`
	Time     time.Time `json:"time"`
}
