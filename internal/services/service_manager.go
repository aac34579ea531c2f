package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/InnoTrack-2025/research-service/internal/auth"
	"github.com/InnoTrack-2025/research-service/internal/cache"
	"github.com/InnoTrack-2025/research-service/internal/events"
	"github.com/InnoTrack-2025/research-service/internal/models"
	"github.com/InnoTrack-2025/research-service/internal/repositories"
	"github.com/InnoTrack-2025/research-service/internal/validator"
)

// serviceManager implements ServiceManager interface
type serviceManager struct {
	// Dependencies
	repo         repositories.Repository
	logger       *slog.Logger
	validator    *validator.Validator
	tokens       *auth.TokenService
	events       events.Publisher
	cacheManager *cache.CacheManager

	// Service instances
	authService    AuthService
	userService    UserService
	collegeService CollegeService

	publicationService ResourceService[*models.Publication]
	patentService      ResourceService[*models.Patent]
	grantService       ResourceService[*models.Grant]
	awardService       ResourceService[*models.Award]
	startupService     ResourceService[*models.Startup]
	projectService     ResourceService[*models.InnovationProject]

	dashboardService DashboardService

	// Lifecycle management
	initialized bool
	shutdown    bool
	mu          sync.RWMutex
}

// NewServiceManager creates a new service manager with all dependencies
func NewServiceManager(repo repositories.Repository, logger *slog.Logger, v *validator.Validator, tokens *auth.TokenService, publisher events.Publisher, cacheManager *cache.CacheManager) ServiceManager {
	return &serviceManager{
		repo:         repo,
		logger:       logger,
		validator:    v,
		tokens:       tokens,
		events:       publisher,
		cacheManager: cacheManager,
	}
}

// Initialize sets up all services and their dependencies
func (sm *serviceManager) Initialize(ctx context.Context) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	sm.logger.Info("Initializing service manager")

	sm.authService = NewAuthService(sm.repo, sm.validator, sm.tokens, sm.events, sm.logger)
	sm.userService = NewUserService(sm.repo, sm.validator, sm.cacheManager, sm.logger)
	sm.collegeService = NewCollegeService(sm.repo, sm.validator, sm.logger)

	sm.publicationService = NewResourceService("publication", sm.repo.Publications(), sm.cacheManager, sm.events, sm.logger)
	sm.patentService = NewResourceService("patent", sm.repo.Patents(), sm.cacheManager, sm.events, sm.logger)
	sm.grantService = NewResourceService("grant", sm.repo.Grants(), sm.cacheManager, sm.events, sm.logger)
	sm.awardService = NewResourceService("award", sm.repo.Awards(), sm.cacheManager, sm.events, sm.logger)
	sm.startupService = NewResourceService("startup", sm.repo.Startups(), sm.cacheManager, sm.events, sm.logger)
	sm.projectService = NewResourceService("innovation_project", sm.repo.Projects(), sm.cacheManager, sm.events, sm.logger)

	sm.dashboardService = NewDashboardService(sm.repo, sm.cacheManager, sm.logger)

	sm.initialized = true
	sm.logger.Info("Service manager initialized successfully")

	return nil
}

func (sm *serviceManager) ensureInitialized() {
	if !sm.initialized {
		panic("service manager not initialized")
	}
}

// Service getters
func (sm *serviceManager) Auth() AuthService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	sm.ensureInitialized()
	return sm.authService
}

func (sm *serviceManager) User() UserService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	sm.ensureInitialized()
	return sm.userService
}

func (sm *serviceManager) College() CollegeService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	sm.ensureInitialized()
	return sm.collegeService
}

func (sm *serviceManager) Publications() ResourceService[*models.Publication] {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	sm.ensureInitialized()
	return sm.publicationService
}

func (sm *serviceManager) Patents() ResourceService[*models.Patent] {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	sm.ensureInitialized()
	return sm.patentService
}

func (sm *serviceManager) Grants() ResourceService[*models.Grant] {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	sm.ensureInitialized()
	return sm.grantService
}

func (sm *serviceManager) Awards() ResourceService[*models.Award] {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	sm.ensureInitialized()
	return sm.awardService
}

func (sm *serviceManager) Startups() ResourceService[*models.Startup] {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	sm.ensureInitialized()
	return sm.startupService
}

func (sm *serviceManager) Projects() ResourceService[*models.InnovationProject] {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	sm.ensureInitialized()
	return sm.projectService
}

func (sm *serviceManager) Dashboard() DashboardService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	sm.ensureInitialized()
	return sm.dashboardService
}

// Health and lifecycle
func (sm *serviceManager) HealthCheck(ctx context.Context) error {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		return fmt.Errorf("service manager not initialized")
	}

	if sm.shutdown {
		return fmt.Errorf("service manager is shut down")
	}

	if err := sm.repo.Ping(ctx); err != nil {
		return fmt.Errorf("repository health check failed: %w", err)
	}

	return nil
}

func (sm *serviceManager) Shutdown(ctx context.Context) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.shutdown {
		return nil
	}

	sm.logger.Info("Shutting down service manager")

	if err := sm.events.Close(); err != nil {
		sm.logger.Error("Failed to close event publisher", "error", err)
	}

	sm.shutdown = true
	sm.logger.Info("Service manager shut down completed")

	return nil
}
