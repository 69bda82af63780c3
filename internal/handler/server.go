// Package handler implements the HTTP surface of the reservation service:
// the JSON resource under /reservations, the HTML pages, and the health check.
// All handlers are methods on Server; Handler mounts them on a chi router.
package handler

import (
	"context"
	"io"

	"github.com/pkordes/reservation-service/internal/domain"
)

// ReservationServicer defines the operations the handlers depend on.
// It is declared here, in the consumer package, so tests can inject a mock
// without touching the database or service layer.
type ReservationServicer interface {
	Create(ctx context.Context, name string) (domain.Reservation, error)
	Update(ctx context.Context, r domain.Reservation) (domain.Reservation, error)
	GetByID(ctx context.Context, id int64) (domain.Reservation, bool, error)
	List(ctx context.Context) ([]domain.Reservation, error)
	FindByName(ctx context.Context, name string) ([]domain.Reservation, error)
	Delete(ctx context.Context, id int64) error
}

// PageRenderer renders a named HTML page listing reservations.
// *web.Renderer satisfies it.
type PageRenderer interface {
	Render(w io.Writer, page string, reservations []domain.Reservation) error
}

// Server holds the dependencies shared by every handler.
type Server struct {
	reservations ReservationServicer
	pages        PageRenderer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(reservations ReservationServicer, pages PageRenderer) *Server {
	return &Server{reservations: reservations, pages: pages}
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler() *Server {
	return NewServer(nil, nil)
}
