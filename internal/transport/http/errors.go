package http

import (
	"encoding/json"
	"net/http"
)

// errorResponse is the error body for every failure: one human-readable
// detail string. 500 details embed the underlying store error verbatim.
type errorResponse struct {
	Detail string `json:"detail"`
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, errorResponse{Detail: detail})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		_, _ = w.Write([]byte(`{"detail":"internal error"}`))
	}
}
