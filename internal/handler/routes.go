package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/reservation-service/spec"
)

// Handler mounts every endpoint of s on a fresh chi router.
// Cross-cutting middleware (request id, logging, CORS) is applied by the caller.
func Handler(s *Server) http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", serveOpenAPI)

	r.Get("/reservations.mvc", s.RenderReservations)
	r.Get("/ui", s.RenderGrid)

	r.Route("/reservations", func(r chi.Router) {
		r.Get("/", s.ListReservations)
		r.Post("/", s.CreateReservation)
		r.Get("/search/by-name", s.FindReservationsByName)
		r.Get("/{id}", s.GetReservation)
		r.Put("/{id}", s.UpdateReservation)
		r.Delete("/{id}", s.DeleteReservation)
	})

	return r
}

// serveOpenAPI serves the embedded OpenAPI document, so the published
// contract always matches the running binary.
func serveOpenAPI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(spec.OpenAPI)
}
