package ranking

import "github.com/railops/sectionctl/core/model"

// AvailablePlatforms returns the platforms whose status marks them as
// allocatable, preserving source order. Rows with an unknown or missing
// status are skipped rather than treated as an error; allocation later
// consumes the result in this exact order.
func AvailablePlatforms(platforms []model.Platform) []model.Platform {
	var res []model.Platform
	for _, p := range platforms {
		if p.IsAvailable() {
			res = append(res, p)
		}
	}
	return res
}
