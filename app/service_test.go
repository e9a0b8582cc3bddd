package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/railops/sectionctl/config"
	"github.com/railops/sectionctl/core/ranking"
	"github.com/railops/sectionctl/infra/csvsource"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	trains := filepath.Join(dir, "trains.csv")
	platforms := filepath.Join(dir, "platforms.csv")
	require.NoError(t, os.WriteFile(trains, []byte(
		"Trip_ID,Train_Name,priority,delay,clearance_time\n"+
			"T1,Express,2,10,5\n"+
			"T2,Local,5,1,9\n"), 0o644))
	require.NoError(t, os.WriteFile(platforms, []byte(
		"Platform_ID,Line_ID,Status\n"+
			"P1,L1,Available\n"+
			"P2,L2,Occupied\n"), 0o644))
	cfg := &config.Config{
		Data:   csvsource.Config{TrainsPath: trains, PlatformsPath: platforms},
		Engine: ranking.Config{DisplayLimit: 10},
	}
	cfg.Refresh.SetDefaults()
	cfg.API.SetDefaults()
	cfg.Metrics.SetDefaults()
	cfg.MQTT.SetDefaults()
	return cfg
}

func TestService_EvaluateThroughWiring(t *testing.T) {
	svc, err := New(testConfig(t))
	require.NoError(t, err)
	defer func() { _ = svc.Close() }()

	res, err := svc.Controller.Evaluate(context.Background())
	require.NoError(t, err)
	require.Len(t, res.Recommendations, 2)
	assert.Equal(t, "T2", res.Recommendations[0].Train.TripID)
	assert.Equal(t, "P1", res.Recommendations[0].PlatformID)
	assert.False(t, res.Recommendations[1].Assigned, "only one platform is available")
}

func TestService_OverridePersistsAcrossCycles(t *testing.T) {
	svc, err := New(testConfig(t))
	require.NoError(t, err)
	defer func() { _ = svc.Close() }()

	svc.Controller.SetOverride("T1", 50)
	for i := 0; i < 2; i++ {
		res, err := svc.Controller.Evaluate(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "T1", res.Recommendations[0].Train.TripID, "cycle %d", i)
	}
}
