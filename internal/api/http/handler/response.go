package handler

import (
	"encoding/json"
	"net/http"
)

// response is the envelope every endpoint answers with.
type response struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Data       any    `json:"data,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, message string, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(response{
		StatusCode: status,
		Message:    message,
		Data:       data,
	})
}
