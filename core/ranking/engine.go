package ranking

import (
	"sort"

	"github.com/railops/sectionctl/core/model"
)

// Engine ranks waiting trains and pairs the top-ranked ones with available
// platforms.
type Engine struct {
	cfg Config
}

// NewEngine creates an Engine with defaults applied to the configuration.
func NewEngine(cfg Config) *Engine {
	cfg.SetDefaults()
	return &Engine{cfg: cfg}
}

// Rank orders trains by urgency using a single stable sort:
// priority descending (larger number means more urgent), then delay
// descending, then clearance ascending. Trains equal on all three keys keep
// their input order. Overrides substitute the priority for matching trip IDs
// for this call only; the input slice is never mutated.
func Rank(trains []model.Train, overrides map[string]int) []model.Train {
	ranked := make([]model.Train, len(trains))
	copy(ranked, trains)
	for i := range ranked {
		if p, ok := overrides[ranked[i].TripID]; ok {
			ranked[i].Priority = p
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.Priority != b.Priority {
			return a.Priority > b.Priority
		}
		if a.Delay != b.Delay {
			return a.Delay > b.Delay
		}
		return a.Clearance < b.Clearance
	})
	return ranked
}

// Recommend ranks the trains, then walks the ranking and assigns the next
// unused available platform to each train until platforms run out. Trains
// inside the display window without a platform are reported unassigned.
// An empty train table yields an empty result.
func (e *Engine) Recommend(trains []model.Train, platforms []model.Platform, overrides map[string]int) []model.Recommendation {
	if len(trains) == 0 {
		return nil
	}
	ranked := Rank(trains, overrides)
	available := AvailablePlatforms(platforms)

	limit := e.cfg.DisplayLimit
	if len(ranked) < limit {
		limit = len(ranked)
	}
	recs := make([]model.Recommendation, 0, limit)
	for i := 0; i < limit; i++ {
		rec := model.Recommendation{Rank: i + 1, Train: ranked[i]}
		if i < len(available) {
			rec.PlatformID = available[i].PlatformID
			rec.LineID = available[i].LineID
			rec.Assigned = true
		}
		recs = append(recs, rec)
	}
	return recs
}
