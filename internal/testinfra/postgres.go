//go:build integration

package testinfra

import (
	"context"
	_ "embed"
	"strconv"
	"testing"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/vfg2006/adtech-pipeline/infrastructure/database/sqldb"
	"github.com/vfg2006/adtech-pipeline/internal/config"
)

const (
	postgresImage = "postgres:16-alpine"
	postgresPort  = "5432/tcp"
)

//go:embed testdata/postgres_schema.sql
var postgresSchema string

// NewPostgres sobe um PostgreSQL descartável com as seis tabelas criadas e devolve a conexão
func NewPostgres(t *testing.T) *sqldb.Connection {
	t.Helper()
	SkipIfNoDocker(t)

	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        postgresImage,
			ExposedPorts: []string{postgresPort},
			Env: map[string]string{
				"POSTGRES_USER":     "adtech_user",
				"POSTGRES_PASSWORD": "adtech_pass",
				"POSTGRES_DB":       "adtech_test",
			},
			WaitingFor: wait.ForAll(
				wait.ForListeningPort(postgresPort),
				wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
			).WithStartupTimeout(startupTimeout),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("erro ao criar container do postgres: %v", err)
	}
	CleanupContainer(t, container)

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("erro ao obter host do postgres: %v", err)
	}

	port, err := container.MappedPort(ctx, postgresPort)
	if err != nil {
		t.Fatalf("erro ao obter porta do postgres: %v", err)
	}

	portNumber, err := strconv.Atoi(port.Port())
	if err != nil {
		t.Fatalf("porta inválida %q: %v", port.Port(), err)
	}

	dbConfig := config.Database{
		Driver:   config.DriverPostgres,
		Host:     host,
		Port:     portNumber,
		Name:     "adtech_test",
		User:     "adtech_user",
		Password: "adtech_pass",
		SSLMode:  "disable",
	}
	dbConfig.DSN = dbConfig.BuildDSN()

	conn, err := sqldb.NewConnection(ctx, dbConfig)
	if err != nil {
		t.Fatalf("erro ao conectar no postgres: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	if _, err := conn.Exec(ctx, postgresSchema); err != nil {
		t.Fatalf("erro ao criar as tabelas: %v", err)
	}

	return conn
}
