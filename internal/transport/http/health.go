package http

import "net/http"

const apiVersion = "1.0.0"

type rootResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
}

type healthResponse struct {
	Status string `json:"status"`
}

// RootHandler returns the service identity payload. It is mounted on "/",
// which the mux treats as a catch-all, so unknown paths get a 404 here.
func RootHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		writeError(w, http.StatusNotFound, "Not Found")
		return
	}
	writeJSON(w, http.StatusOK, rootResponse{Message: "Events API", Version: apiVersion})
}

// HealthHandler reports basic liveness for the service.
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "healthy"})
}
