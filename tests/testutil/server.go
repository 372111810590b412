package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/shotahirama/labshare/internal/infrastructure/di"
	"github.com/shotahirama/labshare/internal/infrastructure/storage"
	"github.com/shotahirama/labshare/internal/infrastructure/worker"
	"github.com/shotahirama/labshare/internal/interface/middleware"
	"github.com/shotahirama/labshare/internal/interface/router"
	"github.com/shotahirama/labshare/internal/interface/validator"
	"github.com/shotahirama/labshare/pkg/config"
	"github.com/shotahirama/labshare/pkg/jwt"
)

// ChgrpWorkerInterval is the queue polling interval used in tests.
// Short enough that bounded polling in tests completes quickly.
const ChgrpWorkerInterval = 200 * time.Millisecond

// TestServer holds all test server dependencies
type TestServer struct {
	Echo      *echo.Echo
	Pool      *pgxpool.Pool
	Redis     *redis.Client
	Container *di.Container
	Worker    *worker.Manager
}

// NewTestServer creates a fully configured test server with the
// chgrp queue worker running at a short interval
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	testConfig := DefaultTestConfig()
	pool, redisClient := SetupTestEnvironment(t)

	cfg := &config.Config{
		Token: config.TokenConfig{
			SecretKey:         testConfig.TokenSecretKey,
			Issuer:            "labshare-test",
			Audience:          []string{"labshare-api-test"},
			AccessTokenExpiry: 15 * time.Minute,
		},
		Worker: config.WorkerConfig{
			ChgrpInterval: ChgrpWorkerInterval,
		},
		App: config.AppConfig{
			URL:           "http://localhost:3000",
			LoginRedirect: "/webclient/",
		},
	}

	// Object storage client is never dialed by these tests;
	// minio connects lazily on first operation
	storageConfig := storage.DefaultConfig()
	storageConfig.Endpoint = "localhost:9000"
	storageConfig.BucketName = "labshare-test"
	minioClient, err := storage.NewMinIOClient(storageConfig)
	if err != nil {
		t.Fatalf("Failed to create storage client: %v", err)
	}

	container, err := di.NewContainerWithOptions(context.Background(), cfg, di.Options{
		PostgresPool:  pool,
		RedisClient:   redisClient,
		StorageClient: minioClient,
	})
	if err != nil {
		t.Fatalf("Failed to build container: %v", err)
	}

	handlers := di.NewHandlersForTest(container)
	middlewares := di.NewMiddlewares(container)

	// Echo instance
	e := echo.New()
	e.Validator = validator.NewCustomValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler
	e.Use(middleware.CSRF())

	// Setup routes
	router.NewRouter(e, handlers, middlewares).Setup()

	// Background worker for the chgrp queue
	workerMgr := worker.NewManager()
	workerMgr.Register(container.NewChgrpJob().AsWorkerJob(cfg.Worker.ChgrpInterval))
	workerMgr.Start()
	t.Cleanup(func() {
		workerMgr.Shutdown(5 * time.Second)
	})

	return &TestServer{
		Echo:      e,
		Pool:      pool,
		Redis:     redisClient,
		Container: container,
		Worker:    workerMgr,
	}
}

// TokenService returns the token service used by the test server
func (ts *TestServer) TokenService() *jwt.TokenService {
	return ts.Container.TokenService
}

// Cleanup cleans up test data
func (ts *TestServer) Cleanup(t *testing.T) {
	t.Helper()
	TruncateTables(t, ts.Pool,
		"activities", "dataset_files", "datasets", "projects",
		"memberships", "groups", "users")
	FlushRedis(t, ts.Redis)
}
