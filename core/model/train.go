package model

import "math"

// Train represents a train waiting for section clearance.
type Train struct {
	TripID    string  `json:"trip_id"`
	Name      string  `json:"name,omitempty"`
	Priority  int     `json:"priority"`       // urgency ordinal, larger means more urgent
	Delay     float64 `json:"delay_s"`        // accumulated waiting time in seconds
	Clearance float64 `json:"clearance_s"`    // estimated time in seconds to vacate the line once assigned
}

// WorstClearance is the sentinel substituted for a clearance value that could
// not be parsed. It sorts the row at the lowest urgency on the clearance key.
const WorstClearance = math.MaxFloat64

// DisplayName returns the train name, falling back to the trip ID.
func (t Train) DisplayName() string {
	if t.Name != "" {
		return t.Name
	}
	return t.TripID
}
