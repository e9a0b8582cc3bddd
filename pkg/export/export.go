// Package export serializes recommendation lists for external consumers.
package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/railops/sectionctl/core/model"
)

// WriteJSON writes the recommendations to w in JSON format.
func WriteJSON(w io.Writer, recs []model.Recommendation) error {
	enc := json.NewEncoder(w)
	return enc.Encode(recs)
}

// WriteCSV writes the recommendations to w in CSV format.
func WriteCSV(w io.Writer, recs []model.Recommendation) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"rank", "trip_id", "train_name", "priority", "delay_s", "clearance_s", "platform_id", "line_id", "assigned"}); err != nil {
		return err
	}
	for _, r := range recs {
		rec := []string{
			strconv.Itoa(r.Rank),
			r.Train.TripID,
			r.Train.Name,
			strconv.Itoa(r.Train.Priority),
			strconv.FormatFloat(r.Train.Delay, 'f', -1, 64),
			strconv.FormatFloat(r.Train.Clearance, 'f', -1, 64),
			r.PlatformID,
			r.LineID,
			strconv.FormatBool(r.Assigned),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
