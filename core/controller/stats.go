package controller

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/railops/sectionctl/core/model"
)

// DelayStats summarizes the delay distribution of the waiting trains in one
// cycle. Values are in seconds.
type DelayStats struct {
	Mean float64 `json:"mean_s"`
	Max  float64 `json:"max_s"`
	P90  float64 `json:"p90_s"`
}

// ComputeDelayStats computes delay statistics over the full train table,
// not only the recommended window.
func ComputeDelayStats(trains []model.Train) DelayStats {
	if len(trains) == 0 {
		return DelayStats{}
	}
	delays := make([]float64, len(trains))
	for i, t := range trains {
		delays[i] = t.Delay
	}
	sort.Float64s(delays)
	return DelayStats{
		Mean: stat.Mean(delays, nil),
		Max:  delays[len(delays)-1],
		P90:  stat.Quantile(0.9, stat.Empirical, delays, nil),
	}
}
