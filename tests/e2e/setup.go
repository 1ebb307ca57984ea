//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"event-booking-engine/cmd/bootstrap"
	"event-booking-engine/cmd/bootstrap/components"
	"event-booking-engine/internal/handler/middleware"
	"event-booking-engine/internal/infra/db"
	"event-booking-engine/internal/pkg/config"
	"event-booking-engine/internal/pkg/jwt"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

var (
	postgresContainerOnce sync.Once
	postgresTestContainer testcontainers.Container

	testUser     = "test"
	testPassword = "testpass"
)

type ContainerInfo struct {
	Host string
	Port nat.Port
}

// setupE2EEnvironment boots one shared postgres container, creates a database
// private to this test process, applies the schema, seeds the catalog and
// assembles the application the same way main does.
func setupE2EEnvironment(t *testing.T) (*pgxpool.Pool, *gin.Engine, config.Config) {
	postgresInfo := startContainers(t)

	pool, dbConfig := prepareDatabase(t, postgresInfo)

	router, cfg, app := buildE2EApp(pool, dbConfig)
	require.NotNil(t, router, "router setup failed")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("failed to stop fx application", "error", err.Error())
		}
	})

	return pool, router, cfg
}

func startContainers(t *testing.T) ContainerInfo {
	gin.SetMode(gin.TestMode)
	startPostgreSQLContainerOnce(t)

	postgresInfo, err := getContainerHostPort(postgresTestContainer, "5432/tcp")
	require.NoError(t, err, "failed to inspect postgres container")

	return postgresInfo
}

func prepareDatabase(t *testing.T, postgresInfo ContainerInfo) (*pgxpool.Pool, config.DBConfig) {
	// Each test process gets its own database on the shared container.
	dbName := "testdb_" + strings.ReplaceAll(uuid.New().String(), "-", "")

	adminDSN := fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
		testUser, testPassword, postgresInfo.Host, postgresInfo.Port.Port())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	adminPool, err := pgxpool.New(ctx, adminDSN)
	require.NoError(t, err, "admin connection failed")
	defer adminPool.Close()

	var createErr error
	for attempts := range 5 {
		if attempts > 0 {
			waitTime := min(time.Duration(500+attempts*500)*time.Millisecond, 3*time.Second)
			time.Sleep(waitTime)
		}
		_, createErr = adminPool.Exec(ctx, "CREATE DATABASE "+dbName)
		if createErr == nil {
			break
		}
	}
	require.NoError(t, createErr, "failed to create test database")

	t.Cleanup(func() {
		cleanupCtx, cleanupCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cleanupCancel()

		cleanupPool, err := pgxpool.New(cleanupCtx, adminDSN)
		if err != nil {
			slog.Warn("cleanup connection failed", "database", dbName, "error", err.Error())
			return
		}
		defer cleanupPool.Close()

		if _, err := cleanupPool.Exec(cleanupCtx, "DROP DATABASE IF EXISTS "+dbName); err != nil {
			slog.Warn("failed to drop test database", "database", dbName, "error", err.Error())
		}
	})

	dbConfig := config.DBConfig{
		Host:     postgresInfo.Host,
		Port:     postgresInfo.Port.Port(),
		User:     testUser,
		Password: testPassword,
		DBName:   dbName,
		SSLMode:  "disable",
	}

	pool, _, err := db.Connect(dbConfig)
	require.NoError(t, err, "database connection failed")
	require.NotNil(t, pool)

	require.NoError(t, applySchema(t, pool), "schema setup failed")
	require.NoError(t, seedCatalog(pool), "catalog seeding failed")

	return pool, dbConfig
}

func applySchema(t *testing.T, pool *pgxpool.Pool) error {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// Resolve the schema file relative to possible working dirs during `go test`.
	var (
		sqlContent []byte
		readErr    error
	)
	candidates := []string{
		filepath.Join("db", "schema.sql"),
		filepath.Join("..", "db", "schema.sql"),
		filepath.Join("..", "..", "db", "schema.sql"),
		filepath.Join("..", "..", "..", "db", "schema.sql"),
	}
	for _, cand := range candidates {
		sqlContent, readErr = os.ReadFile(cand)
		if readErr == nil {
			break
		}
	}
	if readErr != nil {
		return fmt.Errorf("failed to read schema file: %w", readErr)
	}

	if _, err := pool.Exec(ctx, string(sqlContent)); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}

// seedCatalog loads the department requirement catalog every e2e scenario
// books against.
func seedCatalog(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for _, name := range []string{"AV", "Facilities", "Catering"} {
		if _, err := pool.Exec(ctx,
			"INSERT INTO departments (name) VALUES ($1) ON CONFLICT (name) DO NOTHING", name); err != nil {
			return err
		}
	}

	rows := [][]any{
		{"av-projector", "AV", "Projector", "physical", 2, 1},
		{"av-sound", "AV", "Sound System", "physical", 1, 2},
		{"fac-chairs", "Facilities", "Folding Chairs", "physical", 100, 1},
		{"cat-coffee", "Catering", "Coffee Service", "service", 0, 1},
	}
	for _, r := range rows {
		if _, err := pool.Exec(ctx,
			`INSERT INTO department_requirements (id, department, name, kind, default_quantity, position)
			 VALUES ($1, $2, $3, $4, $5, $6)
			 ON CONFLICT (department, id) DO NOTHING`,
			r...); err != nil {
			return err
		}
	}
	return nil
}

// ResetDB truncates mutable state between subtests. The catalog survives.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, "TRUNCATE events, resource_availability")
	return err
}

func buildE2EApp(pool *pgxpool.Pool, dbConfig config.DBConfig) (*gin.Engine, config.Config, *fx.App) {
	var router *gin.Engine
	var cfg config.Config

	testDBModule := fx.Module("testdb",
		fx.Provide(func() *pgxpool.Pool { return pool }),
	)

	testConfigModule := fx.Module("testconfig",
		fx.Provide(func() config.Config {
			testConfig := config.NewTestConfig()
			testConfig.DB = dbConfig
			return testConfig
		}),
	)

	app := fx.New(
		testDBModule,
		testConfigModule,
		fx.Provide(
			func() *gin.Engine { return gin.New() },
			func(c config.Config) *middleware.Logger { return middleware.NewLogger(c.Log) },
			func(logger *middleware.Logger) *slog.Logger { return logger.Slog() },
		),
		bootstrap.JWTModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,

		fx.Populate(&router, &cfg),

		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		panic(fmt.Sprintf("failed to start fx app: %v", err))
	}
	if router == nil {
		panic("router was not populated")
	}

	return router, cfg, app
}

func startGenericContainer(req testcontainers.ContainerRequest, timeoutSec int) (testcontainers.Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeoutSec)*time.Second)
	defer cancel()

	return testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
}

func startPostgreSQLContainerOnce(t *testing.T) {
	postgresContainerOnce.Do(func() {
		req := testcontainers.ContainerRequest{
			Image:        "postgres:17",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     testUser,
				"POSTGRES_PASSWORD": testPassword,
				"POSTGRES_DB":       "postgres",
			},
			Tmpfs: map[string]string{
				"/var/lib/postgresql/data": "rw,size=512m",
			},
			Cmd: []string{
				"postgres",
				"-c", "fsync=off",
				"-c", "full_page_writes=off",
				"-c", "synchronous_commit=off",
				"-c", "max_connections=200",
				"-c", "log_statement=none",
			},
			WaitingFor: wait.ForSQL("5432/tcp", "pgx", func(host string, port nat.Port) string {
				return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
					testUser, testPassword, host, port.Port())
			}).WithStartupTimeout(60 * time.Second),
			Name:   "postgres-booking-e2e",
			Labels: map[string]string{"purpose": "e2e-tests"},
		}

		container, err := startGenericContainer(req, 90)
		require.NoError(t, err, "failed to start postgres container")
		postgresTestContainer = container
	})
}

func getContainerHostPort(container testcontainers.Container, port nat.Port) (ContainerInfo, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	host, err := container.Host(ctx)
	if err != nil {
		return ContainerInfo{}, err
	}
	mapped, err := container.MappedPort(ctx, port)
	if err != nil {
		return ContainerInfo{}, err
	}
	return ContainerInfo{Host: host, Port: mapped}, nil
}

// SharedSuite is embedded by every e2e suite. It owns the app under test and
// hands out signed tokens for arbitrary departments.
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Config config.Config
}

func (s *SharedSuite) SetupSuite() {
	db, router, cfg := setupE2EEnvironment(s.T())
	s.DB = db
	s.Router = router
	s.Config = cfg
	require.NotNil(s.T(), db, "database setup failed")
	require.NotNil(s.T(), router, "router setup failed")
}

func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), ResetDB(s.DB), "failed to reset database state")
}

// TokenFor signs a token for a caller belonging to the given department.
func (s *SharedSuite) TokenFor(department string) string {
	svc := jwt.NewService(s.Config.JWT.Secret, s.Config.JWT.Duration)
	token, err := svc.GenerateToken(uuid.New(), department, "member")
	require.NoError(s.T(), err, "failed to sign test token")
	return token
}
