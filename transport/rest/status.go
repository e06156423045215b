package rest

import (
	"encoding/json"
	"net/http"
)

type statusResponse struct {
	Turn      int    `json:"turn"`
	Direction string `json:"direction,omitempty"`
	Outcome   string `json:"outcome"`
}

func statusHandler(status StatusProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		turn, direction, outcome := status.Status()

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(statusResponse{
			Turn:      turn,
			Direction: direction,
			Outcome:   outcome,
		}); err != nil {
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		}
	}
}
