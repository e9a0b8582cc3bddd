package ranking

import (
	"testing"

	"github.com/railops/sectionctl/core/model"
)

func TestAvailablePlatforms_FiltersAndPreservesOrder(t *testing.T) {
	platforms := []model.Platform{
		{PlatformID: "P1", Status: model.StatusAvailable},
		{PlatformID: "P2", Status: model.StatusOccupied},
		{PlatformID: "P3", Status: model.StatusAvailable},
		{PlatformID: "P4", Status: model.StatusMaintenance},
		{PlatformID: "P5", Status: model.StatusUnknown},
		{PlatformID: "P6", Status: model.StatusAvailable},
	}
	got := AvailablePlatforms(platforms)
	want := []string{"P1", "P3", "P6"}
	if len(got) != len(want) {
		t.Fatalf("expected %d platforms, got %d", len(want), len(got))
	}
	for i, id := range want {
		if got[i].PlatformID != id {
			t.Errorf("position %d: got %s, want %s", i, got[i].PlatformID, id)
		}
	}
}

func TestAvailablePlatforms_Empty(t *testing.T) {
	if got := AvailablePlatforms(nil); len(got) != 0 {
		t.Fatalf("expected no platforms, got %d", len(got))
	}
}
