//go:build integration

package testutil

import (
	"context"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jmoiron/sqlx"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// SetupPostgres starts a throwaway PostgreSQL container for the calling
// test and returns its connection string. The container is terminated when
// the test finishes.
func SetupPostgres(t testing.TB) string {
	t.Helper()
	ctx := context.Background()

	container, err := postgres.Run(ctx, "postgres:17-alpine",
		postgres.WithDatabase("sarabun_test"),
		postgres.WithUsername("sarabun"),
		postgres.WithPassword("sarabun"),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		t.Fatalf("start postgres: %v", err)
	}

	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("terminate postgres: %v", err)
		}
	})

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("connection string: %v", err)
	}

	return connStr
}

// SetupDB starts a container, applies the schema migrations, and returns a
// connected pool. The pool closes with the test.
func SetupDB(t testing.TB) *sqlx.DB {
	t.Helper()
	connStr := SetupPostgres(t)

	m, err := migrate.New("file://"+migrationsDir(t), connStr)
	if err != nil {
		t.Fatalf("create migrate instance: %v", err)
	}
	if err := m.Up(); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	m.Close()

	db, err := sqlx.Connect("pgx", connStr)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func migrationsDir(t testing.TB) string {
	t.Helper()
	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("resolve caller path")
	}
	return filepath.Join(filepath.Dir(thisFile), "..", "..", "db", "migrations")
}
