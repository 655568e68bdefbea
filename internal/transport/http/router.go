package http

import "net/http"

// NewMux wires every route onto a fresh ServeMux.
func NewMux(svc EventService) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", HealthHandler)
	mux.Handle("/events", HandleEvents(svc))
	mux.Handle("/events/", HandleEventByID(svc))
	mux.HandleFunc("/", RootHandler)
	return mux
}
