//go:build integration

package testinfra

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/vfg2006/adtech-pipeline/internal/config"
)

const (
	mongoImage = "mongo:7"
	mongoPort  = "27017/tcp"
)

// NewMongo sobe um MongoDB descartável e devolve a configuração para conectar nele
func NewMongo(t *testing.T) config.Mongo {
	t.Helper()
	SkipIfNoDocker(t)

	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        mongoImage,
			ExposedPorts: []string{mongoPort},
			WaitingFor: wait.ForAll(
				wait.ForListeningPort(mongoPort),
				wait.ForLog("Waiting for connections"),
			).WithStartupTimeout(startupTimeout),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("erro ao criar container do mongo: %v", err)
	}
	CleanupContainer(t, container)

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("erro ao obter host do mongo: %v", err)
	}

	port, err := container.MappedPort(ctx, mongoPort)
	if err != nil {
		t.Fatalf("erro ao obter porta do mongo: %v", err)
	}

	return config.Mongo{
		URI:        fmt.Sprintf("mongodb://%s:%s/", host, port.Port()),
		Database:   "adtech_test",
		Collection: "users_engagement",
		Timeout:    10 * time.Second,
	}
}
