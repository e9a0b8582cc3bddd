// Package overrides exposes the manual priority override operations over
// HTTP: PUT /api/overrides/{trip_id} with a priority body sets one, DELETE
// clears it.
package overrides

import (
	"encoding/json"
	"net/http"
	"strings"
)

// Store is the slice of the controller the handler needs.
type Store interface {
	SetOverride(tripID string, priority int)
	ClearOverride(tripID string)
}

type setRequest struct {
	Priority int `json:"priority"`
}

// NewHandler returns the override handler. It must be mounted under
// /api/overrides/.
func NewHandler(store Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tripID := strings.TrimPrefix(r.URL.Path, "/api/overrides/")
		if tripID == "" || strings.Contains(tripID, "/") {
			http.Error(w, "trip id required", http.StatusBadRequest)
			return
		}
		switch r.Method {
		case http.MethodPut, http.MethodPost:
			var req setRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				http.Error(w, "invalid body: "+err.Error(), http.StatusBadRequest)
				return
			}
			store.SetOverride(tripID, req.Priority)
			w.WriteHeader(http.StatusNoContent)
		case http.MethodDelete:
			store.ClearOverride(tripID)
			w.WriteHeader(http.StatusNoContent)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	})
}
