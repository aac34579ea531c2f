package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/InnoTrack-2025/research-service/internal/cache"
	"github.com/InnoTrack-2025/research-service/internal/events"
	"github.com/InnoTrack-2025/research-service/internal/models"
	"github.com/InnoTrack-2025/research-service/internal/repositories"
)

// resourceService is the single business-layer implementation shared by
// all six resource types. Ownership rules live here, not in handlers or
// repositories: reads are scoped to the caller unless the caller holds
// the government role, and mutations only ever touch the caller's rows.
type resourceService[T models.Owned] struct {
	name         string
	repo         repositories.OwnedRepository[T]
	cacheManager *cache.CacheManager
	events       events.Publisher
	logger       *slog.Logger
}

func NewResourceService[T models.Owned](name string, repo repositories.OwnedRepository[T], cacheManager *cache.CacheManager, publisher events.Publisher, logger *slog.Logger) ResourceService[T] {
	return &resourceService[T]{
		name:         name,
		repo:         repo,
		cacheManager: cacheManager,
		events:       publisher,
		logger:       logger.With("service", name),
	}
}

func (s *resourceService[T]) Create(ctx context.Context, entity T, user *models.User) (T, error) {
	var zero T

	entity.SetOwner(user.ID)

	if err := s.repo.Create(ctx, nil, entity); err != nil {
		if repositories.IsDuplicateError(err) {
			return zero, ErrDuplicateEntry
		}
		return zero, fmt.Errorf("%s creation failed: %w", s.name, err)
	}

	// Reload so associations configured on the repository are populated
	// in the response.
	created, err := s.repo.GetByID(ctx, nil, entity.GetID())
	if err != nil {
		return zero, fmt.Errorf("%s reload failed: %w", s.name, err)
	}

	s.afterMutation(ctx, events.TopicResourceCreated, created.GetID(), user)

	return created, nil
}

func (s *resourceService[T]) GetByID(ctx context.Context, id uint, user *models.User) (T, error) {
	var zero T

	entity, err := s.repo.GetByID(ctx, nil, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return zero, ErrResourceNotFound
		}
		return zero, fmt.Errorf("%s lookup failed: %w", s.name, err)
	}

	// A foreign row reads as absent, not forbidden.
	if entity.OwnerID() != user.ID && user.Role != models.RoleGovernment {
		return zero, ErrResourceNotFound
	}

	return entity, nil
}

func (s *resourceService[T]) List(ctx context.Context, filters repositories.ResourceFilters, user *models.User) ([]T, int64, error) {
	if user.Role != models.RoleGovernment {
		filters.CreatedBy = &user.ID
	}

	entities, total, err := s.repo.List(ctx, nil, filters)
	if err != nil {
		return nil, 0, fmt.Errorf("%s listing failed: %w", s.name, err)
	}
	return entities, total, nil
}

func (s *resourceService[T]) Update(ctx context.Context, id uint, apply func(T) error, user *models.User) (T, error) {
	var zero T

	entity, err := s.repo.GetByID(ctx, nil, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return zero, ErrResourceNotFound
		}
		return zero, fmt.Errorf("%s lookup failed: %w", s.name, err)
	}

	// Mutations are strictly owner-only, government included.
	if entity.OwnerID() != user.ID {
		return zero, ErrResourceNotFound
	}

	if err := apply(entity); err != nil {
		return zero, err
	}

	if err := s.repo.Update(ctx, nil, entity); err != nil {
		if repositories.IsDuplicateError(err) {
			return zero, ErrDuplicateEntry
		}
		return zero, fmt.Errorf("%s update failed: %w", s.name, err)
	}

	updated, err := s.repo.GetByID(ctx, nil, id)
	if err != nil {
		return zero, fmt.Errorf("%s reload failed: %w", s.name, err)
	}

	s.afterMutation(ctx, events.TopicResourceUpdated, id, user)

	return updated, nil
}

func (s *resourceService[T]) Delete(ctx context.Context, id uint, user *models.User) error {
	if err := s.repo.Delete(ctx, nil, id, user.ID); err != nil {
		if repositories.IsNotFoundError(err) {
			return ErrResourceNotFound
		}
		return fmt.Errorf("%s deletion failed: %w", s.name, err)
	}

	s.afterMutation(ctx, events.TopicResourceDeleted, id, user)

	return nil
}

// afterMutation publishes the domain event and drops stale dashboard
// aggregates. Neither failure mode is allowed to fail the request.
func (s *resourceService[T]) afterMutation(ctx context.Context, topic string, resourceID uint, actor *models.User) {
	if err := s.events.Publish(ctx, topic, events.ResourceEvent{
		Resource:   s.name,
		ResourceID: resourceID,
		ActorID:    actor.ID,
		Department: actor.Department,
		OccurredAt: time.Now(),
	}); err != nil {
		s.logger.WarnContext(ctx, "failed to publish resource event", "error", err, "topic", topic, "resource_id", resourceID)
	}

	cache.InvalidateStatsCache(ctx, s.cacheManager, actor.ID)
}
