//go:build integration

package testutil

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"

	"github.com/at-ishikawa/memorizer/internal/config"
	"github.com/at-ishikawa/memorizer/internal/database"
)

const mysqlImage = "mysql:8.4"

// TestDB is a migrated MySQL container shared by all integration tests of a package.
type TestDB struct {
	Container testcontainers.Container
	Config    config.DatabaseConfig
	DB        *sqlx.DB
}

var (
	sharedTestDB     *TestDB
	sharedTestDBOnce sync.Once
	sharedTestDBErr  error
)

// GetTestDB returns the shared MySQL container, starting and migrating it on first use.
func GetTestDB(t *testing.T) *TestDB {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping integration test in short mode (requires Docker)")
	}

	sharedTestDBOnce.Do(func() {
		sharedTestDB, sharedTestDBErr = setupTestDB(context.Background())
	})
	if sharedTestDBErr != nil {
		t.Fatalf("Failed to setup test database: %v", sharedTestDBErr)
	}
	return sharedTestDB
}

func setupTestDB(ctx context.Context) (*TestDB, error) {
	req := testcontainers.ContainerRequest{
		Image:        mysqlImage,
		ExposedPorts: []string{"3306/tcp"},
		Env: map[string]string{
			"MYSQL_ROOT_PASSWORD": "root",
			"MYSQL_DATABASE":      "memorizer",
			"MYSQL_USER":          "memorizer",
			"MYSQL_PASSWORD":      "memorizer",
		},
		WaitingFor: wait.ForLog("port: 3306  MySQL Community Server").
			WithStartupTimeout(120 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start mysql container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("failed to get container host: %w", err)
	}
	port, err := container.MappedPort(ctx, "3306/tcp")
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("failed to get mapped port: %w", err)
	}

	cfg := config.DatabaseConfig{
		Host:            host,
		Port:            port.Int(),
		Database:        "memorizer",
		Username:        "memorizer",
		Password:        "memorizer",
		TxRetryAttempts: 5,
	}

	migrationDB, err := database.Open(cfg)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("database.Open() > %w", err)
	}
	if err := database.Migrate(migrationDB.DB, zap.NewNop()); err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("database.Migrate() > %w", err)
	}

	db, err := database.Open(cfg)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("database.Open() > %w", err)
	}
	return &TestDB{Container: container, Config: cfg, DB: db}, nil
}
