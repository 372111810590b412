package di

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/shotahirama/labshare/internal/domain/entity"
	"github.com/shotahirama/labshare/internal/domain/repository"
	"github.com/shotahirama/labshare/internal/domain/service"
	"github.com/shotahirama/labshare/internal/infrastructure/cache"
	"github.com/shotahirama/labshare/internal/infrastructure/database"
	infraRepo "github.com/shotahirama/labshare/internal/infrastructure/repository"
	"github.com/shotahirama/labshare/internal/infrastructure/storage"
	"github.com/shotahirama/labshare/internal/job"
	"github.com/shotahirama/labshare/pkg/config"
	"github.com/shotahirama/labshare/pkg/jwt"
)

// Container はアプリケーションの依存関係を保持するDIコンテナです
type Container struct {
	// Infrastructure
	PgClient     *database.PostgresClient
	RedisClient  *cache.RedisClient
	MinIOClient  *storage.MinIOClient
	TxManager    *database.TxManager
	TokenService *jwt.TokenService
	RateLimiter  *cache.RateLimiter
	Storage      *storage.StorageService

	// Repositories
	UserRepo       repository.UserRepository
	GroupRepo      repository.GroupRepository
	MembershipRepo repository.MembershipRepository
	ProjectRepo    repository.ProjectRepository
	DatasetRepo    repository.DatasetRepository
	FileRepo       repository.DatasetFileRepository
	ActivityRepo   repository.ActivityRepository
	SessionRepo    repository.SessionRepository

	// Domain Services
	ChgrpService service.ChgrpService
	AuthzService service.AuthorizationService

	// UseCases
	Auth     *AuthUseCases
	Chgrp    *ChgrpUseCases
	Activity *ActivityUseCases
	Data     *DataUseCases

	// config
	config *config.Config
}

// Options はContainer作成時のオプションを定義します
// テストでは接続済みのクライアントを注入できます
type Options struct {
	PostgresPool  *pgxpool.Pool
	RedisClient   *redis.Client
	StorageClient *storage.MinIOClient
}

// NewContainer は新しいContainerを作成します
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	return NewContainerWithOptions(ctx, cfg, Options{})
}

// NewContainerWithOptions はオプションを指定してContainerを作成します
func NewContainerWithOptions(ctx context.Context, cfg *config.Config, opts Options) (*Container, error) {
	c := &Container{
		config: cfg,
	}

	// PostgreSQL
	if opts.PostgresPool != nil {
		c.TxManager = database.NewTxManager(opts.PostgresPool)
	} else {
		slog.Info("connecting to PostgreSQL...")
		pgClient, err := database.NewPostgresClient(ctx, cfg.Database.URL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
		}
		c.PgClient = pgClient
		c.TxManager = database.NewTxManager(pgClient.Pool())
		slog.Info("connected to PostgreSQL")
	}

	// Redis
	if opts.RedisClient != nil {
		c.SessionRepo = cache.NewSessionStore(opts.RedisClient, entity.SessionTTL)
		c.RateLimiter = cache.NewRateLimiter(opts.RedisClient)
	} else {
		slog.Info("connecting to Redis...")
		redisConfig := cache.DefaultConfig()
		redisConfig.URL = cfg.Redis.URL
		redisClient, err := cache.NewRedisClient(redisConfig)
		if err != nil {
			c.Close()
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		c.RedisClient = redisClient
		c.SessionRepo = cache.NewSessionStore(redisClient.Client(), entity.SessionTTL)
		c.RateLimiter = cache.NewRateLimiter(redisClient.Client())
		slog.Info("connected to Redis")
	}

	// Object Storage
	if opts.StorageClient != nil {
		c.MinIOClient = opts.StorageClient
	} else {
		slog.Info("connecting to object storage...")
		storageConfig := storage.DefaultConfig()
		storageConfig.Endpoint = cfg.Storage.Endpoint
		storageConfig.AccessKeyID = cfg.Storage.AccessKeyID
		storageConfig.SecretAccessKey = cfg.Storage.SecretAccessKey
		storageConfig.BucketName = cfg.Storage.BucketName
		storageConfig.UseSSL = cfg.Storage.UseSSL
		minioClient, err := storage.NewMinIOClient(storageConfig)
		if err != nil {
			c.Close()
			return nil, fmt.Errorf("failed to connect to object storage: %w", err)
		}
		c.MinIOClient = minioClient
		slog.Info("connected to object storage")
	}
	c.Storage = storage.NewStorageService(c.MinIOClient)

	// Token Service
	tokenConfig := jwt.Config{
		SecretKey:         cfg.Token.SecretKey,
		Issuer:            cfg.Token.Issuer,
		Audience:          cfg.Token.Audience,
		AccessTokenExpiry: cfg.Token.AccessTokenExpiry,
	}
	if err := tokenConfig.Validate(); err != nil {
		c.Close()
		return nil, fmt.Errorf("invalid token config: %w", err)
	}
	c.TokenService = jwt.NewTokenService(tokenConfig)

	// Repositories
	c.UserRepo = infraRepo.NewUserRepository(c.TxManager)
	c.GroupRepo = infraRepo.NewGroupRepository(c.TxManager)
	c.MembershipRepo = infraRepo.NewMembershipRepository(c.TxManager)
	c.ProjectRepo = infraRepo.NewProjectRepository(c.TxManager)
	c.DatasetRepo = infraRepo.NewDatasetRepository(c.TxManager)
	c.FileRepo = infraRepo.NewDatasetFileRepository(c.TxManager)
	c.ActivityRepo = infraRepo.NewActivityRepository(c.TxManager)

	// Domain Services
	c.ChgrpService = service.NewChgrpService()
	c.AuthzService = service.NewAuthorizationService()

	// UseCases
	c.Auth = NewAuthUseCases(c)
	c.Chgrp = NewChgrpUseCases(c)
	c.Activity = NewActivityUseCases(c)
	c.Data = NewDataUseCases(c)

	return c, nil
}

// NewChgrpJob はグループ移動キューを処理するバックグラウンドジョブを作成します
func (c *Container) NewChgrpJob() *job.ChgrpJob {
	return job.NewChgrpJob(
		c.ActivityRepo,
		c.DatasetRepo,
		c.ProjectRepo,
		c.MembershipRepo,
		c.ChgrpService,
		c.TxManager,
	)
}

// Config は設定を返します
func (c *Container) Config() *config.Config {
	return c.config
}

// Close はリソースをクリーンアップします
func (c *Container) Close() error {
	var errs []error

	if c.PgClient != nil {
		c.PgClient.Close()
	}

	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close Redis: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("errors during close: %v", errs)
	}
	return nil
}
