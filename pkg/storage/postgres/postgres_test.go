package postgres_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"appraiser/pkg/storage/postgres"
)

const (
	pgImage    = "postgres:17"
	pgUser     = "postgres"
	pgPassword = "postgres"
	pgDatabase = "appraiser_test"
)

// setupTestDB boots a throwaway postgres container, applies the module's
// migrations (including the comparable-sale seed) and returns a connected
// store with its teardown.
func setupTestDB(t *testing.T) (*postgres.PgSQL, func()) {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        pgImage,
			ExposedPorts: []string{"5432"},
			Env: map[string]string{
				"POSTGRES_USER":     pgUser,
				"POSTGRES_PASSWORD": pgPassword,
				"POSTGRES_DB":       pgDatabase,
			},
			WaitingFor: wait.ForListeningPort("5432"),
		},
		Started: true,
	})
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	pg, err := postgres.New(ctx, postgres.Options{
		Username:           pgUser,
		Password:           pgPassword,
		Host:               host,
		Port:               port.Int(),
		Database:           pgDatabase,
		SslMode:            "disable",
		ConnMaxLifetime:    time.Minute,
		ConnMaxIdleTime:    time.Minute,
		MaxOpenConnections: 5,
		MaxIdleConnections: 5,
	})
	require.NoError(t, err)

	require.NoError(t, goose.SetDialect("postgres"))
	require.NoError(t, goose.Up(pg.DB.(*sql.DB), filepath.Join("..", "..", "..", "migrations")))

	return pg, func() {
		_ = pg.Close()
		_ = container.Terminate(ctx)
	}
}
