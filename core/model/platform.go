package model

import "strings"

// PlatformStatus describes the operational state of a platform line.
type PlatformStatus string

const (
	StatusAvailable   PlatformStatus = "available"
	StatusOccupied    PlatformStatus = "occupied"
	StatusMaintenance PlatformStatus = "maintenance"
	StatusBlocked     PlatformStatus = "blocked"
	// StatusUnknown marks rows whose status field was missing or not a
	// recognized state. Such rows never qualify for allocation.
	StatusUnknown PlatformStatus = "unknown"
)

// ParseStatus normalizes a raw status value from the platform feed.
func ParseStatus(s string) PlatformStatus {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "available", "free":
		return StatusAvailable
	case "occupied", "busy":
		return StatusOccupied
	case "maintenance":
		return StatusMaintenance
	case "blocked":
		return StatusBlocked
	default:
		return StatusUnknown
	}
}

// Platform represents an allocatable platform/line slot.
type Platform struct {
	PlatformID  string         `json:"platform_id"`
	LineID      string         `json:"line_id"`
	Status      PlatformStatus `json:"status"`
	Description string         `json:"description,omitempty"`
}

// IsAvailable reports whether the platform qualifies for allocation.
func (p Platform) IsAvailable() bool {
	return p.Status == StatusAvailable
}

// Label returns the identifier shown to operators, e.g. "P1, L2".
func (p Platform) Label() string {
	if p.LineID == "" {
		return p.PlatformID
	}
	return p.PlatformID + ", " + p.LineID
}
