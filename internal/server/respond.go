package server

import (
	"encoding/json"
	"net/http"

	"github.com/mutualfundportal/portal/internal/logger"
)

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Warn("failed to encode response", "error", err)
	}
}

// respondError writes {"message": ...}. Internal details are logged but
// never sent to the client.
func respondError(w http.ResponseWriter, status int, message string, err error) {
	if err != nil && status >= http.StatusInternalServerError {
		logger.Error(message, "error", err)
	}
	respondJSON(w, status, map[string]string{"message": message})
}
