// Package repo contains all database access logic for the reservation service.
// No business logic lives here, only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pkordes/reservation-service/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Integration tests pass a transaction that is rolled back after each test.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// ReservationRepo defines the persistence operations for Reservations.
type ReservationRepo interface {
	// Save inserts r when it has no ID yet, otherwise updates the row keyed by
	// r.ID. The persisted record is returned with its ID populated.
	// Updating an ID that does not exist returns domain.ErrNotFound; it is not
	// an upsert, since inserting a caller-chosen id would collide with the
	// BIGSERIAL sequence later.
	Save(ctx context.Context, r domain.Reservation) (domain.Reservation, error)

	// FindAll returns every stored reservation ordered by id.
	FindAll(ctx context.Context) ([]domain.Reservation, error)

	// FindByID returns the reservation with the given id. found is false when
	// no such row exists; that is not an error.
	FindByID(ctx context.Context, id int64) (r domain.Reservation, found bool, err error)

	// FindByName returns all reservations whose name equals name exactly.
	FindByName(ctx context.Context, name string) ([]domain.Reservation, error)

	// Delete removes a reservation by id. Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id int64) error
}

// pgReservationRepo is the Postgres implementation of ReservationRepo.
type pgReservationRepo struct {
	db db
}

// NewReservationRepo constructs a ReservationRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewReservationRepo(db db) ReservationRepo {
	return &pgReservationRepo{db: db}
}

// Save dispatches to insert or update depending on whether r already has an ID.
func (r *pgReservationRepo) Save(ctx context.Context, res domain.Reservation) (domain.Reservation, error) {
	if res.IsNew() {
		return r.insert(ctx, res)
	}
	return r.update(ctx, res)
}

func (r *pgReservationRepo) insert(ctx context.Context, res domain.Reservation) (domain.Reservation, error) {
	const q = `
		INSERT INTO reservations (name)
		VALUES (@name)
		RETURNING id, name`

	out, err := scanReservation(r.db.QueryRow(ctx, q, pgx.NamedArgs{"name": res.Name}))
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("repo.ReservationRepo.Save: insert: %w", err)
	}
	return out, nil
}

func (r *pgReservationRepo) update(ctx context.Context, res domain.Reservation) (domain.Reservation, error) {
	const q = `
		UPDATE reservations
		SET name = @name
		WHERE id = @id
		RETURNING id, name`

	args := pgx.NamedArgs{"id": res.ID, "name": res.Name}
	out, err := scanReservation(r.db.QueryRow(ctx, q, args))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Reservation{}, fmt.Errorf("repo.ReservationRepo.Save: update: %w", domain.ErrNotFound)
	}
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("repo.ReservationRepo.Save: update: %w", err)
	}
	return out, nil
}

// FindAll returns all reservations. The engine gives no natural order, so rows
// are sorted by id to keep responses stable between calls.
func (r *pgReservationRepo) FindAll(ctx context.Context) ([]domain.Reservation, error) {
	const q = `
		SELECT id, name
		FROM reservations
		ORDER BY id`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.ReservationRepo.FindAll: %w", err)
	}
	out, err := collectReservations(rows)
	if err != nil {
		return nil, fmt.Errorf("repo.ReservationRepo.FindAll: %w", err)
	}
	return out, nil
}

// FindByID retrieves a reservation by primary key.
func (r *pgReservationRepo) FindByID(ctx context.Context, id int64) (domain.Reservation, bool, error) {
	const q = `
		SELECT id, name
		FROM reservations
		WHERE id = @id`

	out, err := scanReservation(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Reservation{}, false, nil
	}
	if err != nil {
		return domain.Reservation{}, false, fmt.Errorf("repo.ReservationRepo.FindByID: %w", err)
	}
	return out, true, nil
}

// FindByName returns reservations with an exact name match, ordered by id.
func (r *pgReservationRepo) FindByName(ctx context.Context, name string) ([]domain.Reservation, error) {
	const q = `
		SELECT id, name
		FROM reservations
		WHERE name = @name
		ORDER BY id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"name": name})
	if err != nil {
		return nil, fmt.Errorf("repo.ReservationRepo.FindByName: %w", err)
	}
	out, err := collectReservations(rows)
	if err != nil {
		return nil, fmt.Errorf("repo.ReservationRepo.FindByName: %w", err)
	}
	return out, nil
}

// Delete removes a reservation by primary key.
func (r *pgReservationRepo) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM reservations WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.ReservationRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.ReservationRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanReservation maps a single row into a domain.Reservation. pgx.ErrNoRows
// is returned unchanged so callers can decide what absence means.
func scanReservation(s scanner) (domain.Reservation, error) {
	var res domain.Reservation
	if err := s.Scan(&res.ID, &res.Name); err != nil {
		return domain.Reservation{}, err
	}
	return res, nil
}

// collectReservations drains rows into a slice. The result is never nil so
// an empty table serializes as [] rather than null.
func collectReservations(rows pgx.Rows) ([]domain.Reservation, error) {
	defer rows.Close()

	out := []domain.Reservation{}
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		out = append(out, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return out, nil
}
