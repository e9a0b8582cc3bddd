package csvsource

import (
	"context"
	"strconv"

	"github.com/railops/sectionctl/core/model"
)

// LoadTrains reads the train table. Rows without a trip ID are skipped.
// A missing or non-numeric delay sorts at the lowest urgency (zero); the
// same defect on clearance gets the worst-case sentinel. Neither aborts
// the table.
func (s *Source) LoadTrains(ctx context.Context) ([]model.Train, error) {
	header, rows, err := readTable(ctx, s.cfg.TrainsPath)
	if err != nil {
		return nil, err
	}
	trains := make([]model.Train, 0, len(rows))
	for i, row := range rows {
		id, ok := field(header, row, "trip_id")
		if !ok || id == "" {
			s.warnf("trains row %d: missing trip_id, skipping", i+1)
			continue
		}
		t := model.Train{TripID: id}
		t.Name, _ = field(header, row, "train_name", "name")

		if raw, ok := field(header, row, "priority"); ok {
			if p, err := strconv.Atoi(raw); err == nil {
				t.Priority = p
			} else {
				s.warnf("trains row %d (%s): bad priority %q, using 0", i+1, id, raw)
			}
		}
		t.Delay = s.numericField(header, row, i, id, "delay", 0, "delay", "delay_s")
		t.Clearance = s.numericField(header, row, i, id, "clearance", model.WorstClearance, "clearance_time", "clearance_s")
		trains = append(trains, t)
	}
	return trains, nil
}

// numericField parses a non-negative float under any of the given names,
// substituting the sentinel on defects.
func (s *Source) numericField(header map[string]int, row []string, rowIdx int, id, what string, sentinel float64, names ...string) float64 {
	raw, ok := field(header, row, names...)
	if !ok || raw == "" {
		s.warnf("trains row %d (%s): missing %s, using sentinel", rowIdx+1, id, what)
		return sentinel
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		s.warnf("trains row %d (%s): bad %s %q, using sentinel", rowIdx+1, id, what, raw)
		return sentinel
	}
	return v
}
