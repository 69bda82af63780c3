package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/reservation-service/internal/domain"
	"github.com/pkordes/reservation-service/internal/repo"
	"github.com/pkordes/reservation-service/internal/service"
)

// mockReservationRepo is a hand-written test double for repo.ReservationRepo.
// Each method is a function field; set only the ones your test needs.
type mockReservationRepo struct {
	save       func(ctx context.Context, r domain.Reservation) (domain.Reservation, error)
	findAll    func(ctx context.Context) ([]domain.Reservation, error)
	findByID   func(ctx context.Context, id int64) (domain.Reservation, bool, error)
	findByName func(ctx context.Context, name string) ([]domain.Reservation, error)
	delete     func(ctx context.Context, id int64) error
}

func (m *mockReservationRepo) Save(ctx context.Context, r domain.Reservation) (domain.Reservation, error) {
	return m.save(ctx, r)
}
func (m *mockReservationRepo) FindAll(ctx context.Context) ([]domain.Reservation, error) {
	return m.findAll(ctx)
}
func (m *mockReservationRepo) FindByID(ctx context.Context, id int64) (domain.Reservation, bool, error) {
	return m.findByID(ctx, id)
}
func (m *mockReservationRepo) FindByName(ctx context.Context, name string) ([]domain.Reservation, error) {
	return m.findByName(ctx, name)
}
func (m *mockReservationRepo) Delete(ctx context.Context, id int64) error {
	return m.delete(ctx, id)
}

// compile-time check: mockReservationRepo must satisfy repo.ReservationRepo.
var _ repo.ReservationRepo = (*mockReservationRepo)(nil)

// ---- helpers ---------------------------------------------------------------

// sliceRepo returns a mock that keeps saved reservations in a slice and
// assigns increasing ids, enough to exercise Seed end to end.
func sliceRepo(rows *[]domain.Reservation) *mockReservationRepo {
	return &mockReservationRepo{
		save: func(_ context.Context, r domain.Reservation) (domain.Reservation, error) {
			r.ID = int64(len(*rows) + 1)
			*rows = append(*rows, r)
			return r, nil
		},
		findAll: func(_ context.Context) ([]domain.Reservation, error) {
			return append([]domain.Reservation{}, *rows...), nil
		},
	}
}

// ---- Create / Update -------------------------------------------------------

func TestReservationService_Create(t *testing.T) {
	var got domain.Reservation
	svc := service.NewReservationService(&mockReservationRepo{
		save: func(_ context.Context, r domain.Reservation) (domain.Reservation, error) {
			got = r
			r.ID = 7
			return r, nil
		},
	})

	created, err := svc.Create(context.Background(), "Dave")

	require.NoError(t, err)
	assert.True(t, got.IsNew(), "Create must hand the repo an unsaved record")
	assert.Equal(t, domain.Reservation{ID: 7, Name: "Dave"}, created)
}

func TestReservationService_Create_RepoError(t *testing.T) {
	dbErr := errors.New("connection refused")
	svc := service.NewReservationService(&mockReservationRepo{
		save: func(_ context.Context, _ domain.Reservation) (domain.Reservation, error) {
			return domain.Reservation{}, dbErr
		},
	})

	_, err := svc.Create(context.Background(), "Dave")

	assert.ErrorIs(t, err, dbErr)
}

func TestReservationService_Update_RequiresID(t *testing.T) {
	svc := service.NewReservationService(&mockReservationRepo{})

	_, err := svc.Update(context.Background(), domain.NewReservation("Mia"))

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReservationService_Update_NotFound(t *testing.T) {
	svc := service.NewReservationService(&mockReservationRepo{
		save: func(_ context.Context, _ domain.Reservation) (domain.Reservation, error) {
			return domain.Reservation{}, domain.ErrNotFound
		},
	})

	_, err := svc.Update(context.Background(), domain.Reservation{ID: 3, Name: "Mia"})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ---- Lookups ---------------------------------------------------------------

func TestReservationService_GetByID_Absent(t *testing.T) {
	svc := service.NewReservationService(&mockReservationRepo{
		findByID: func(_ context.Context, _ int64) (domain.Reservation, bool, error) {
			return domain.Reservation{}, false, nil
		},
	})

	_, found, err := svc.GetByID(context.Background(), 42)

	require.NoError(t, err)
	assert.False(t, found)
}

func TestReservationService_FindByName_PassesName(t *testing.T) {
	var asked string
	svc := service.NewReservationService(&mockReservationRepo{
		findByName: func(_ context.Context, name string) ([]domain.Reservation, error) {
			asked = name
			return []domain.Reservation{{ID: 4, Name: name}}, nil
		},
	})

	got, err := svc.FindByName(context.Background(), "Stéphane")

	require.NoError(t, err)
	assert.Equal(t, "Stéphane", asked)
	assert.Equal(t, []domain.Reservation{{ID: 4, Name: "Stéphane"}}, got)
}

func TestReservationService_Delete_NotFound(t *testing.T) {
	svc := service.NewReservationService(&mockReservationRepo{
		delete: func(_ context.Context, _ int64) error { return domain.ErrNotFound },
	})

	err := svc.Delete(context.Background(), 1)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ---- Seed ------------------------------------------------------------------

func TestReservationService_Seed_InsertsAllNamesInOrder(t *testing.T) {
	var rows []domain.Reservation
	svc := service.NewReservationService(sliceRepo(&rows))

	n, err := svc.Seed(context.Background(), service.DefaultSeedNames)

	require.NoError(t, err)
	assert.Equal(t, 9, n)

	all, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 9)

	names := make([]string, len(all))
	for i, r := range all {
		assert.Positive(t, r.ID)
		names[i] = r.Name
	}
	assert.Equal(t, service.DefaultSeedNames, names)
}

func TestReservationService_Seed_SkipsPopulatedStore(t *testing.T) {
	rows := []domain.Reservation{{ID: 1, Name: "Julia"}}
	svc := service.NewReservationService(sliceRepo(&rows))

	n, err := svc.Seed(context.Background(), service.DefaultSeedNames)

	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Len(t, rows, 1)
}

func TestReservationService_Seed_StopsOnFirstError(t *testing.T) {
	dbErr := errors.New("storage unavailable")
	calls := 0
	svc := service.NewReservationService(&mockReservationRepo{
		findAll: func(_ context.Context) ([]domain.Reservation, error) { return nil, nil },
		save: func(_ context.Context, r domain.Reservation) (domain.Reservation, error) {
			calls++
			if calls == 3 {
				return domain.Reservation{}, dbErr
			}
			return r, nil
		},
	})

	n, err := svc.Seed(context.Background(), service.DefaultSeedNames)

	assert.ErrorIs(t, err, dbErr)
	assert.Equal(t, 2, n)
	assert.Equal(t, 3, calls, "no retry and no further inserts after a failure")
}
