package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-coin-purchase/internal/models"
)

// writeJSON writes payload as a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// writeError writes a models.ErrorResponse with the given status.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, models.ErrorResponse{Error: message})
}
