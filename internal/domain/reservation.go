// Package domain contains the core data types for the reservation service.
// It is imported by every other internal package (repo, service, handler).
package domain

// Reservation is a named booking. ID is assigned by the store on first save
// and never changes afterwards; a zero ID means the record is not yet persisted.
type Reservation struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// NewReservation returns an unsaved Reservation for name.
func NewReservation(name string) Reservation {
	return Reservation{Name: name}
}

// IsNew reports whether r has not been persisted yet.
func (r Reservation) IsNew() bool {
	return r.ID == 0
}
