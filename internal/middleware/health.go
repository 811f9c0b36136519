package middleware

import (
	"encoding/json"
	"net/http"
	"time"
)

// HealthStatus represents the health payload
type HealthStatus struct {
	Status    string    `json:"status"`
	AIEnabled bool      `json:"ai_enabled"`
	Agents    []string  `json:"agents"`
	Timestamp time.Time `json:"timestamp"`
}

// HealthHandler creates a health check handler. aiEnabled reflects whether
// the upstream API key is configured; the service itself is always "healthy"
// as it holds no other dependencies.
func HealthHandler(aiEnabled bool, agents []string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(HealthStatus{
			Status:    "healthy",
			AIEnabled: aiEnabled,
			Agents:    agents,
			Timestamp: time.Now(),
		})
	}
}

// LivenessHandler is the simplest check, for container probes
func LivenessHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}
