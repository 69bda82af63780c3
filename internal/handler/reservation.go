package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"

	"github.com/pkordes/reservation-service/internal/domain"
)

// Reservation is the JSON representation of a reservation.
type Reservation struct {
	Id   int64  `json:"id"`
	Name string `json:"name"`
}

// ReservationRequest is the body accepted by POST and PUT.
type ReservationRequest struct {
	Name *string `json:"name"`
}

// ListReservations handles GET /reservations.
func (s *Server) ListReservations(w http.ResponseWriter, r *http.Request) {
	all, err := s.reservations.List(r.Context())
	if err != nil {
		writeError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, reservationsToResponse(all))
}

// FindReservationsByName handles GET /reservations/search/by-name?rn={name}.
// The match is exact; no match yields an empty array.
func (s *Server) FindReservationsByName(w http.ResponseWriter, r *http.Request) {
	var rn string
	if err := runtime.BindQueryParameter("form", true, true, "rn", r.URL.Query(), &rn); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	matches, err := s.reservations.FindByName(r.Context(), rn)
	if err != nil {
		writeError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, reservationsToResponse(matches))
}

// GetReservation handles GET /reservations/{id}.
func (s *Server) GetReservation(w http.ResponseWriter, r *http.Request) {
	id, ok := bindID(w, r)
	if !ok {
		return
	}

	res, found, err := s.reservations.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, r, err, "")
		return
	}
	if !found {
		writeNotFound(w, "reservation not found")
		return
	}
	writeJSON(w, http.StatusOK, reservationToResponse(res))
}

// CreateReservation handles POST /reservations.
func (s *Server) CreateReservation(w http.ResponseWriter, r *http.Request) {
	name, err := decodeName(r)
	if err != nil {
		writeError(w, r, err, "")
		return
	}

	created, err := s.reservations.Create(r.Context(), name)
	if err != nil {
		writeError(w, r, err, "")
		return
	}
	w.Header().Set("Location", fmt.Sprintf("/reservations/%d", created.ID))
	writeJSON(w, http.StatusCreated, reservationToResponse(created))
}

// UpdateReservation handles PUT /reservations/{id}.
func (s *Server) UpdateReservation(w http.ResponseWriter, r *http.Request) {
	id, ok := bindID(w, r)
	if !ok {
		return
	}
	name, err := decodeName(r)
	if err != nil {
		writeError(w, r, err, "")
		return
	}

	updated, err := s.reservations.Update(r.Context(), domain.Reservation{ID: id, Name: name})
	if err != nil {
		writeError(w, r, err, "reservation not found")
		return
	}
	writeJSON(w, http.StatusOK, reservationToResponse(updated))
}

// DeleteReservation handles DELETE /reservations/{id}.
func (s *Server) DeleteReservation(w http.ResponseWriter, r *http.Request) {
	id, ok := bindID(w, r)
	if !ok {
		return
	}

	if err := s.reservations.Delete(r.Context(), id); err != nil {
		writeError(w, r, err, "reservation not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- binding and mapping helpers --------------------------------------------

// bindID parses the {id} path parameter. On failure it writes a 400 and
// returns ok=false.
func bindID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	var id int64
	err := runtime.BindStyledParameterWithOptions("simple", "id", chi.URLParam(r, "id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		writeBadRequest(w, fmt.Sprintf("invalid format for parameter id: %v", err))
		return 0, false
	}
	return id, true
}

// decodeName reads a ReservationRequest body and returns its name.
// Any name, including empty or duplicate, is accepted; only a missing body
// or missing field is rejected. A body cut off by http.MaxBytesReader is
// returned as the *http.MaxBytesError so the caller can answer 413.
func decodeName(r *http.Request) (string, error) {
	var body ReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return "", fmt.Errorf("decode request body: %w", err)
		}
		return "", fmt.Errorf("%w: request body must be a JSON object with a name", domain.ErrValidation)
	}
	if body.Name == nil {
		return "", fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	return *body.Name, nil
}

func reservationToResponse(r domain.Reservation) Reservation {
	return Reservation{Id: r.ID, Name: r.Name}
}

// reservationsToResponse never returns nil so an empty result encodes as [].
func reservationsToResponse(rs []domain.Reservation) []Reservation {
	out := make([]Reservation, len(rs))
	for i, r := range rs {
		out[i] = reservationToResponse(r)
	}
	return out
}
