package services

import (
	"context"

	"github.com/InnoTrack-2025/research-service/internal/models"
	"github.com/InnoTrack-2025/research-service/internal/repositories"
	"github.com/InnoTrack-2025/research-service/internal/validator"
)

// ===== REQUEST/RESPONSE DTOs =====

// Use business validator types
type RegisterRequest = validator.RegisterRequest
type LoginRequest = validator.LoginRequest
type UpdateProfileRequest = validator.UpdateProfileRequest
type CreateCollegeRequest = validator.CreateCollegeRequest

// AuthResult is returned by both registration and login.
type AuthResult struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// ===== SERVICE INTERFACES =====

type AuthService interface {
	Register(ctx context.Context, req *RegisterRequest) (*AuthResult, error)
	Login(ctx context.Context, req *LoginRequest) (*AuthResult, error)
}

type UserService interface {
	GetProfile(ctx context.Context, userID uint) (*models.User, error)
	UpdateProfile(ctx context.Context, userID uint, req *UpdateProfileRequest) (*models.User, error)
}

type CollegeService interface {
	List(ctx context.Context) ([]*models.College, error)
	Create(ctx context.Context, req *CreateCollegeRequest, creator *models.User) (*models.College, error)
}

// ResourceService is the shared business layer over one ownership-scoped
// resource type. Reads are owner-scoped except for the government role,
// which sees everything; mutations are always owner-only and a foreign
// row is reported as not found.
type ResourceService[T models.Owned] interface {
	Create(ctx context.Context, entity T, user *models.User) (T, error)
	GetByID(ctx context.Context, id uint, user *models.User) (T, error)
	List(ctx context.Context, filters repositories.ResourceFilters, user *models.User) ([]T, int64, error)

	// Update loads the row, applies the mutation and saves it, all under
	// the ownership check. apply sees the current state of the entity.
	Update(ctx context.Context, id uint, apply func(T) error, user *models.User) (T, error)
	Delete(ctx context.Context, id uint, user *models.User) error
}

type DashboardService interface {
	// GetStats returns owner-scoped aggregates, or the global rollup for
	// the government role.
	GetStats(ctx context.Context, user *models.User) (*repositories.DashboardStats, error)
}

// ===== SERVICE MANAGER =====

type ServiceManager interface {
	Auth() AuthService
	User() UserService
	College() CollegeService

	Publications() ResourceService[*models.Publication]
	Patents() ResourceService[*models.Patent]
	Grants() ResourceService[*models.Grant]
	Awards() ResourceService[*models.Award]
	Startups() ResourceService[*models.Startup]
	Projects() ResourceService[*models.InnovationProject]

	Dashboard() DashboardService

	// Health and lifecycle
	Initialize(ctx context.Context) error
	HealthCheck(ctx context.Context) error
	Shutdown(ctx context.Context) error
}
