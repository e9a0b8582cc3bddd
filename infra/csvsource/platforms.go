package csvsource

import (
	"context"
	"strconv"

	"github.com/railops/sectionctl/core/model"
)

// LoadPlatforms reads the platform table. The availability may come either
// as a textual Status column or as the legacy boolean Is_Available column;
// Status wins when both are present. Rows with a missing or unrecognized
// status are kept with StatusUnknown, which the resource filter excludes.
func (s *Source) LoadPlatforms(ctx context.Context) ([]model.Platform, error) {
	header, rows, err := readTable(ctx, s.cfg.PlatformsPath)
	if err != nil {
		return nil, err
	}
	platforms := make([]model.Platform, 0, len(rows))
	for i, row := range rows {
		id, ok := field(header, row, "platform_id")
		if !ok || id == "" {
			s.warnf("platforms row %d: missing platform_id, skipping", i+1)
			continue
		}
		p := model.Platform{PlatformID: id, Status: model.StatusUnknown}
		p.LineID, _ = field(header, row, "line_id")
		p.Description, _ = field(header, row, "description")

		if raw, ok := field(header, row, "status"); ok && raw != "" {
			p.Status = model.ParseStatus(raw)
			if p.Status == model.StatusUnknown {
				s.warnf("platforms row %d (%s): unknown status %q", i+1, id, raw)
			}
		} else if raw, ok := field(header, row, "is_available"); ok && raw != "" {
			if avail, err := strconv.ParseBool(raw); err == nil {
				if avail {
					p.Status = model.StatusAvailable
				} else {
					p.Status = model.StatusOccupied
				}
			} else {
				s.warnf("platforms row %d (%s): bad is_available %q", i+1, id, raw)
			}
		} else {
			s.warnf("platforms row %d (%s): no status field", i+1, id)
		}
		platforms = append(platforms, p)
	}
	return platforms, nil
}
