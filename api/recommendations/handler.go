// Package recommendations exposes the latest evaluation result and the
// manual refresh trigger over HTTP.
package recommendations

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/railops/sectionctl/core/controller"
)

// Evaluator is the slice of the controller the handlers need.
type Evaluator interface {
	Last() (*controller.CycleResult, error)
	Evaluate(ctx context.Context) (*controller.CycleResult, error)
}

// response wraps a cycle result with an explicit status so a failed cycle
// is reported instead of a stale list implying success.
type response struct {
	Status string                  `json:"status"`
	Error  string                  `json:"error,omitempty"`
	Result *controller.CycleResult `json:"result,omitempty"`
}

// NewLatestHandler returns an HTTP handler serving the most recent cycle via
// GET /api/recommendations.
func NewLatestHandler(ev Evaluator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		res, err := ev.Last()
		writeResult(w, res, err)
	})
}

// NewRefreshHandler returns an HTTP handler triggering a re-evaluation via
// POST /api/refresh and serving the fresh result.
func NewRefreshHandler(ev Evaluator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		res, err := ev.Evaluate(r.Context())
		writeResult(w, res, err)
	})
}

func writeResult(w http.ResponseWriter, res *controller.CycleResult, err error) {
	w.Header().Set("Content-Type", "application/json")
	resp := response{Status: "ok", Result: res}
	code := http.StatusOK
	if err != nil {
		resp.Status = "error"
		resp.Error = err.Error()
		code = http.StatusServiceUnavailable
	} else if res == nil {
		resp.Status = "pending"
		code = http.StatusServiceUnavailable
	}
	w.WriteHeader(code)
	if encErr := json.NewEncoder(w).Encode(resp); encErr != nil {
		http.Error(w, encErr.Error(), http.StatusInternalServerError)
	}
}
