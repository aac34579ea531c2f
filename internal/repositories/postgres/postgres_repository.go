package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/InnoTrack-2025/research-service/internal/cache"
	"github.com/InnoTrack-2025/research-service/internal/models"
	"github.com/InnoTrack-2025/research-service/internal/repositories"
)

// PostgreSQLRepository implements the main Repository interface
type PostgreSQLRepository struct {
	db           *gorm.DB
	redisClient  *redis.Client
	cacheManager *cache.CacheManager

	user    repositories.UserRepository
	college repositories.CollegeRepository

	publications repositories.OwnedRepository[*models.Publication]
	patents      repositories.OwnedRepository[*models.Patent]
	grants       repositories.OwnedRepository[*models.Grant]
	awards       repositories.OwnedRepository[*models.Award]
	startups     repositories.OwnedRepository[*models.Startup]
	projects     repositories.OwnedRepository[*models.InnovationProject]

	dashboard repositories.DashboardRepository
}

// RepositoryConfig holds configuration for repository initialization
type RepositoryConfig struct {
	DB          *gorm.DB
	RedisClient *redis.Client
}

// NewPostgreSQLRepository creates a new repository manager with all sub-repositories
func NewPostgreSQLRepository(config RepositoryConfig) repositories.Repository {
	repo := &PostgreSQLRepository{
		db:           config.DB,
		redisClient:  config.RedisClient,
		cacheManager: cache.NewCacheManager(config.RedisClient),
	}

	repo.user = NewUserRepository(config.DB, config.RedisClient)
	repo.college = NewCollegeRepository(config.DB)
	repo.initResourceRepositories(config.DB)
	repo.dashboard = NewDashboardRepository(config.DB)

	return repo
}

// initResourceRepositories wires the generic resource repositories.
// Each gets its domain date as the default sort column, and the creator
// association preloaded on reads.
func (r *PostgreSQLRepository) initResourceRepositories(db *gorm.DB) {
	r.publications = NewOwnedRepository(db,
		func() *models.Publication { return &models.Publication{} },
		"publication", "publication_date", "Creator")
	r.patents = NewOwnedRepository(db,
		func() *models.Patent { return &models.Patent{} },
		"patent", "filing_date", "Creator", "RelatedPublication")
	r.grants = NewOwnedRepository(db,
		func() *models.Grant { return &models.Grant{} },
		"grant", "application_date", "Creator")
	r.awards = NewOwnedRepository(db,
		func() *models.Award { return &models.Award{} },
		"award", "date_received", "Creator")
	r.startups = NewOwnedRepository(db,
		func() *models.Startup { return &models.Startup{} },
		"startup", "created_at", "Creator")
	r.projects = NewOwnedRepository(db,
		func() *models.InnovationProject { return &models.InnovationProject{} },
		"innovation project", "start_date", "Creator")
}

func (r *PostgreSQLRepository) User() repositories.UserRepository {
	return r.user
}

func (r *PostgreSQLRepository) College() repositories.CollegeRepository {
	return r.college
}

func (r *PostgreSQLRepository) Publications() repositories.OwnedRepository[*models.Publication] {
	return r.publications
}

func (r *PostgreSQLRepository) Patents() repositories.OwnedRepository[*models.Patent] {
	return r.patents
}

func (r *PostgreSQLRepository) Grants() repositories.OwnedRepository[*models.Grant] {
	return r.grants
}

func (r *PostgreSQLRepository) Awards() repositories.OwnedRepository[*models.Award] {
	return r.awards
}

func (r *PostgreSQLRepository) Startups() repositories.OwnedRepository[*models.Startup] {
	return r.startups
}

func (r *PostgreSQLRepository) Projects() repositories.OwnedRepository[*models.InnovationProject] {
	return r.projects
}

func (r *PostgreSQLRepository) Dashboard() repositories.DashboardRepository {
	return r.dashboard
}

// WithTransaction executes a function within a database transaction
func (r *PostgreSQLRepository) WithTransaction(ctx context.Context, fn func(repositories.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := &PostgreSQLRepository{
			db:           tx,
			redisClient:  r.redisClient,
			cacheManager: r.cacheManager,
		}

		txRepo.user = NewUserRepository(tx, r.redisClient)
		txRepo.college = NewCollegeRepository(tx)
		txRepo.initResourceRepositories(tx)
		txRepo.dashboard = NewDashboardRepository(tx)

		return fn(txRepo)
	})
}

// Ping checks the health of database and cache connections
func (r *PostgreSQLRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}

	if r.redisClient != nil {
		if err := r.cacheManager.HealthCheck(ctx); err != nil {
			return fmt.Errorf("cache ping failed: %w", err)
		}
	}

	return nil
}

// Close closes all connections
func (r *PostgreSQLRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}

	if r.redisClient != nil {
		if err := r.redisClient.Close(); err != nil {
			return fmt.Errorf("failed to close Redis: %w", err)
		}
	}

	return nil
}

// RepositoryManager implements the RepositoryManager interface
type RepositoryManager struct {
	config RepositoryConfig
	repo   repositories.Repository
}

// NewRepositoryManager creates a new repository manager
func NewRepositoryManager(config RepositoryConfig) repositories.RepositoryManager {
	return &RepositoryManager{
		config: config,
	}
}

// Initialize validates connections and builds the repository.
func (rm *RepositoryManager) Initialize() error {
	if rm.config.DB == nil {
		return fmt.Errorf("database connection is required")
	}

	sqlDB, err := rm.config.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("database connection failed: %w", err)
	}

	if rm.config.RedisClient != nil {
		if _, err := rm.config.RedisClient.Ping(ctx).Result(); err != nil {
			return fmt.Errorf("redis connection failed: %w", err)
		}
	}

	rm.repo = NewPostgreSQLRepository(rm.config)

	return nil
}

// GetRepository returns the repository instance
func (rm *RepositoryManager) GetRepository() repositories.Repository {
	return rm.repo
}

// HealthCheck checks the health of all repository connections
func (rm *RepositoryManager) HealthCheck(ctx context.Context) error {
	if rm.repo == nil {
		return fmt.Errorf("repository not initialized")
	}

	return rm.repo.Ping(ctx)
}

// Shutdown gracefully shuts down all repository connections
func (rm *RepositoryManager) Shutdown(ctx context.Context) error {
	if rm.repo == nil {
		return nil
	}

	return rm.repo.Close()
}
