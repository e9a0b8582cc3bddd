package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/railops/sectionctl/core/model"
)

func sampleRecs() []model.Recommendation {
	return []model.Recommendation{
		{Rank: 1, Train: model.Train{TripID: "T3", Name: "Freight 9", Priority: 5, Delay: 1, Clearance: 9}, PlatformID: "P1", LineID: "L1", Assigned: true},
		{Rank: 2, Train: model.Train{TripID: "T1", Priority: 2, Delay: 10, Clearance: 5}},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleRecs()))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "rank,trip_id,train_name,priority,delay_s,clearance_s,platform_id,line_id,assigned", lines[0])
	assert.Equal(t, "1,T3,Freight 9,5,1,9,P1,L1,true", lines[1])
	assert.Equal(t, "2,T1,,2,10,5,,,false", lines[2])
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleRecs()))
	assert.Contains(t, buf.String(), `"trip_id":"T3"`)
	assert.Contains(t, buf.String(), `"assigned":true`)
}
