package ranking

import (
	"testing"

	"github.com/railops/sectionctl/core/model"
)

func testPlatforms(ids ...string) []model.Platform {
	res := make([]model.Platform, len(ids))
	for i, id := range ids {
		res[i] = model.Platform{PlatformID: id, Status: model.StatusAvailable}
	}
	return res
}

func TestRank_MultiKeyOrder(t *testing.T) {
	trains := []model.Train{
		{TripID: "1", Priority: 2, Delay: 10, Clearance: 5},
		{TripID: "2", Priority: 2, Delay: 15, Clearance: 3},
		{TripID: "3", Priority: 5, Delay: 1, Clearance: 9},
	}
	ranked := Rank(trains, nil)
	want := []string{"3", "2", "1"}
	for i, id := range want {
		if ranked[i].TripID != id {
			t.Fatalf("position %d: got %s, want %s", i, ranked[i].TripID, id)
		}
	}
	// input is untouched
	if trains[0].TripID != "1" || trains[2].TripID != "3" {
		t.Errorf("input slice mutated")
	}
}

func TestRank_ClearanceBreaksTies(t *testing.T) {
	trains := []model.Train{
		{TripID: "slow", Priority: 3, Delay: 20, Clearance: 12},
		{TripID: "fast", Priority: 3, Delay: 20, Clearance: 4},
	}
	ranked := Rank(trains, nil)
	if ranked[0].TripID != "fast" {
		t.Errorf("shorter clearance should rank first on full priority/delay tie")
	}
}

func TestRank_StableOnFullTie(t *testing.T) {
	trains := []model.Train{
		{TripID: "a", Priority: 1, Delay: 5, Clearance: 2},
		{TripID: "b", Priority: 1, Delay: 5, Clearance: 2},
		{TripID: "c", Priority: 1, Delay: 5, Clearance: 2},
	}
	ranked := Rank(trains, nil)
	for i, id := range []string{"a", "b", "c"} {
		if ranked[i].TripID != id {
			t.Fatalf("full ties must keep input order, got %s at %d", ranked[i].TripID, i)
		}
	}
}

func TestRank_OverrideSubstitutesPriority(t *testing.T) {
	trains := []model.Train{
		{TripID: "x", Priority: 1, Delay: 0, Clearance: 1},
		{TripID: "y", Priority: 9, Delay: 0, Clearance: 1},
	}
	ranked := Rank(trains, map[string]int{"x": 99})
	if ranked[0].TripID != "x" {
		t.Fatalf("override to 99 should rank x first")
	}
	if ranked[0].Priority != 99 {
		t.Errorf("effective priority should reflect the override, got %d", ranked[0].Priority)
	}
	if trains[0].Priority != 1 {
		t.Errorf("source train priority mutated")
	}
}

func TestRank_UnknownClearanceSortsLast(t *testing.T) {
	trains := []model.Train{
		{TripID: "bad", Priority: 2, Delay: 10, Clearance: model.WorstClearance},
		{TripID: "ok", Priority: 2, Delay: 10, Clearance: 30},
	}
	ranked := Rank(trains, nil)
	if ranked[0].TripID != "ok" {
		t.Errorf("defective clearance must sort at lowest urgency")
	}
}

func TestRecommend_SpecExample(t *testing.T) {
	e := NewEngine(Config{})
	trains := []model.Train{
		{TripID: "1", Priority: 2, Delay: 10, Clearance: 5},
		{TripID: "2", Priority: 2, Delay: 15, Clearance: 3},
		{TripID: "3", Priority: 5, Delay: 1, Clearance: 9},
	}
	recs := e.Recommend(trains, testPlatforms("P1", "P2"), nil)
	if len(recs) != 3 {
		t.Fatalf("expected 3 recommendations, got %d", len(recs))
	}
	if recs[0].Train.TripID != "3" || recs[0].PlatformID != "P1" || !recs[0].Assigned {
		t.Errorf("rank 1: got %+v", recs[0])
	}
	if recs[1].Train.TripID != "2" || recs[1].PlatformID != "P2" || !recs[1].Assigned {
		t.Errorf("rank 2: got %+v", recs[1])
	}
	if recs[2].Train.TripID != "1" || recs[2].Assigned {
		t.Errorf("rank 3 must be unassigned: got %+v", recs[2])
	}
}

func TestRecommend_EmptyTrains(t *testing.T) {
	e := NewEngine(Config{})
	recs := e.Recommend(nil, testPlatforms("P1"), nil)
	if len(recs) != 0 {
		t.Fatalf("empty train table must yield empty output, got %d", len(recs))
	}
}

func TestRecommend_TruncatesToDisplayLimit(t *testing.T) {
	e := NewEngine(Config{})
	var trains []model.Train
	for i := 0; i < 25; i++ {
		trains = append(trains, model.Train{TripID: string(rune('a' + i)), Priority: i})
	}
	recs := e.Recommend(trains, testPlatforms("P1", "P2"), nil)
	if len(recs) != DefaultDisplayLimit {
		t.Fatalf("expected %d recommendations, got %d", DefaultDisplayLimit, len(recs))
	}
}

func TestRecommend_NoDuplicatePlatforms(t *testing.T) {
	e := NewEngine(Config{})
	trains := []model.Train{
		{TripID: "1", Priority: 3}, {TripID: "2", Priority: 2}, {TripID: "3", Priority: 1},
	}
	recs := e.Recommend(trains, testPlatforms("P1", "P2", "P3"), nil)
	seen := map[string]bool{}
	for _, r := range recs {
		if !r.Assigned {
			continue
		}
		if seen[r.PlatformID] {
			t.Fatalf("platform %s assigned twice", r.PlatformID)
		}
		seen[r.PlatformID] = true
	}
}

func TestRecommend_Idempotent(t *testing.T) {
	e := NewEngine(Config{})
	trains := []model.Train{
		{TripID: "1", Priority: 2, Delay: 10, Clearance: 5},
		{TripID: "2", Priority: 2, Delay: 15, Clearance: 3},
	}
	overrides := map[string]int{"1": 7}
	first := e.Recommend(trains, testPlatforms("P1"), overrides)
	second := e.Recommend(trains, testPlatforms("P1"), overrides)
	if len(first) != len(second) {
		t.Fatalf("length differs between runs")
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("entry %d differs between runs: %+v vs %+v", i, first[i], second[i])
		}
	}
}
