package testutil

import (
	"context"
	"fmt"
	"log"
	"os"
	"testing"

	"github.com/pkordes/reservation-service/migrations"
)

// RunMain is the shared TestMain body for packages with integration tests.
// It prepares the database with SetupDatabase, runs the tests and returns the
// exit code for os.Exit.
func RunMain(m *testing.M) int {
	terminate, err := SetupDatabase(context.Background())
	if err != nil {
		log.Printf("testutil.RunMain: %v", err)
		return 1
	}
	defer terminate()

	return m.Run()
}

// SetupDatabase makes TEST_DATABASE_URL usable for integration tests.
// When it is unset and TESTCONTAINERS=1, a disposable Postgres is started and
// its DSN exported; a container that fails to start only logs, so the tests
// skip. With a database available all migrations are applied.
// The returned function terminates the container, if any.
func SetupDatabase(ctx context.Context) (func(), error) {
	terminate := func() {}
	if os.Getenv("TEST_DATABASE_URL") == "" && os.Getenv("TESTCONTAINERS") == "1" {
		dsn, stop, err := StartPostgres(ctx)
		if err != nil {
			log.Printf("testutil.SetupDatabase: start postgres container: %v", err)
		} else {
			os.Setenv("TEST_DATABASE_URL", dsn)
			terminate = stop
		}
	}

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		return terminate, nil
	}

	db := MustOpenSQLDB(dsn)
	defer db.Close()
	if _, err := migrations.Up(ctx, db); err != nil {
		terminate()
		return func() {}, fmt.Errorf("testutil.SetupDatabase: run migrations: %w", err)
	}
	return terminate, nil
}
