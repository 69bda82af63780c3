package testutil

import (
	"context"
	"fmt"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// StartPostgres launches a disposable postgres:16-alpine container and
// returns its DSN together with a function that terminates it.
// Used by TestMain when TEST_DATABASE_URL is unset and TESTCONTAINERS=1.
func StartPostgres(ctx context.Context) (string, func(), error) {
	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_PASSWORD": "reservations",
			"POSTGRES_USER":     "reservations",
			"POSTGRES_DB":       "reservations",
		},
		// Postgres logs the ready line twice: once for the init phase, once for real.
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return "", func() {}, fmt.Errorf("testutil.StartPostgres: start: %w", err)
	}

	terminate := func() {
		termCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = container.Terminate(termCtx)
	}

	host, err := container.Host(ctx)
	if err != nil {
		terminate()
		return "", func() {}, fmt.Errorf("testutil.StartPostgres: host: %w", err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		terminate()
		return "", func() {}, fmt.Errorf("testutil.StartPostgres: port: %w", err)
	}

	dsn := fmt.Sprintf("postgres://reservations:reservations@%s:%s/reservations?sslmode=disable", host, port.Port())
	return dsn, terminate, nil
}
