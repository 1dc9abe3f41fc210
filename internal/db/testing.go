package db

import (
	"context"
	"fmt"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v4/pgxpool"
)

// CreateTestPool connects to the database pointed to by TEST_POSTGRESQL_URL
// and applies all migrations from TEST_MIGRATIONS_PATH. Panics on any
// failure so broken test environments fail loudly.
func CreateTestPool() *pgxpool.Pool {
	dbURL, ok := os.LookupEnv("TEST_POSTGRESQL_URL")
	if !ok {
		panic("TEST_POSTGRESQL_URL must be set")
	}
	migrationsPath, ok := os.LookupEnv("TEST_MIGRATIONS_PATH")
	if !ok {
		panic("TEST_MIGRATIONS_PATH must be set")
	}

	m, err := migrate.New(fmt.Sprintf("file://%s", migrationsPath), dbURL)
	if err != nil {
		panic(err)
	}
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		panic(err)
	}

	pool, err := pgxpool.Connect(context.Background(), dbURL)
	if err != nil {
		panic(err)
	}
	return pool
}

func TruncateTables(pool *pgxpool.Pool) {
	_, err := pool.Exec(
		context.Background(),
		`TRUNCATE session, user_account RESTART IDENTITY CASCADE`,
	)
	if err != nil {
		panic(err)
	}
}
