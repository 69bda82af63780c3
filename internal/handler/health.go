package handler

import "net/http"

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// GetHealth handles GET /healthz.
// The answer is fixed; it does not probe the database.
func (s *Server) GetHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "UP", Message: "I <3 Go!"})
}
