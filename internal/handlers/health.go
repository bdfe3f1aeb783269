package handlers

import (
	"encoding/json"
	"net/http"
	"time"
)

// HealthResponse is returned by the health check
// swagger:model HealthResponse
type HealthResponse struct {
	Status    string    `json:"status" example:"OK"`
	Timestamp time.Time `json:"timestamp"`
}

// NewHealthHandler returns an HTTP handler reporting that the service is up.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} handlers.HealthResponse
// @Router / [get]
func NewHealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(HealthResponse{Status: "OK", Timestamp: time.Now().UTC()})
	}
}
