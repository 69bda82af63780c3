package handler

import (
	"net/http"

	"github.com/pkordes/reservation-service/internal/web"
)

// RenderReservations handles GET /reservations.mvc: an HTML listing of every reservation.
func (s *Server) RenderReservations(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, r, web.PageReservations)
}

// RenderGrid handles GET /ui: a read-only table of every reservation, loaded
// once when the page is requested.
func (s *Server) RenderGrid(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, r, web.PageGrid)
}

func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, page string) {
	all, err := s.reservations.List(r.Context())
	if err != nil {
		writeError(w, r, err, "")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.pages.Render(w, page, all); err != nil {
		writeError(w, r, err, "")
	}
}
