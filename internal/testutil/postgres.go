package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log"
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"github.com/kavia-common/cafe-pos/pos-service-go/internal/db"
)

const (
	dbUser     = "pos_user"
	dbPassword = "pos_pass"
	dbName     = "pos"
)

// StartPostgres launches a temporary Postgres container, applies the
// migrations, and returns a database handle. The container is removed when
// the test finishes.
func StartPostgres(ctx context.Context, t *testing.T) *sql.DB {
	t.Helper()

	containerName := "pos-int-" + uuid.NewString()
	runArgs := []string{
		"run", "--rm", "-d",
		"-e", fmt.Sprintf("POSTGRES_USER=%s", dbUser),
		"-e", fmt.Sprintf("POSTGRES_PASSWORD=%s", dbPassword),
		"-e", fmt.Sprintf("POSTGRES_DB=%s", dbName),
		"-P",
		"--name", containerName,
		"postgres:16-alpine",
	}

	if err := exec.CommandContext(ctx, "docker", runArgs...).Run(); err != nil {
		t.Skipf("docker unavailable, skipping: %v", err)
	}
	t.Cleanup(func() {
		_ = exec.Command("docker", "stop", containerName).Run()
	})

	hostPort := waitForPort(ctx, t, containerName)
	dsn := fmt.Sprintf("postgres://%s:%s@localhost:%s/%s?sslmode=disable", dbUser, dbPassword, hostPort, dbName)

	return connectAndMigrate(ctx, t, dsn)
}

func waitForPort(ctx context.Context, t *testing.T, containerName string) string {
	t.Helper()

	deadline := time.Now().Add(30 * time.Second)
	for {
		if time.Now().After(deadline) {
			t.Fatalf("timeout waiting for postgres port")
		}

		out, err := exec.CommandContext(ctx, "docker", "port", containerName, "5432/tcp").Output()
		if err == nil {
			parts := strings.Split(strings.TrimSpace(string(out)), ":")
			if len(parts) == 2 {
				return parts[1]
			}
		}

		select {
		case <-ctx.Done():
			t.Fatalf("context cancelled waiting for postgres port: %v", ctx.Err())
		case <-time.After(500 * time.Millisecond):
		}
	}
}

func connectAndMigrate(ctx context.Context, t *testing.T, dsn string) *sql.DB {
	t.Helper()

	logger := log.New(io.Discard, "", log.LstdFlags)
	deadline := time.Now().Add(30 * time.Second)
	for {
		if time.Now().After(deadline) {
			t.Fatalf("timeout waiting for postgres to accept connections")
		}

		if err := db.RunMigrations(dsn, logger); err == nil {
			break
		}

		select {
		case <-ctx.Done():
			t.Fatalf("context cancelled waiting for postgres: %v", ctx.Err())
		case <-time.After(500 * time.Millisecond):
		}
	}

	database, err := sql.Open("postgres", dsn)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })

	if err := database.PingContext(ctx); err != nil {
		t.Fatalf("ping db: %v", err)
	}

	return database
}
