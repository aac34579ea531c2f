package repositories

import (
	"context"

	"github.com/InnoTrack-2025/research-service/internal/models"
)

// Repository aggregates every sub-repository the services depend on.
type Repository interface {
	User() UserRepository
	College() CollegeRepository

	// Ownership-scoped resource repositories, one generic implementation
	// instantiated per entity type.
	Publications() OwnedRepository[*models.Publication]
	Patents() OwnedRepository[*models.Patent]
	Grants() OwnedRepository[*models.Grant]
	Awards() OwnedRepository[*models.Award]
	Startups() OwnedRepository[*models.Startup]
	Projects() OwnedRepository[*models.InnovationProject]

	Dashboard() DashboardRepository

	// Transaction support
	WithTransaction(ctx context.Context, fn func(Repository) error) error

	// Health check
	Ping(ctx context.Context) error

	// Close connections
	Close() error
}

// RepositoryManager interface for managing repository lifecycle
type RepositoryManager interface {
	Initialize() error
	GetRepository() Repository
	HealthCheck(ctx context.Context) error
	Shutdown(ctx context.Context) error
}
