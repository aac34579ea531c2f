package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/InnoTrack-2025/research-service/internal/cache"
	"github.com/InnoTrack-2025/research-service/internal/models"
	"github.com/InnoTrack-2025/research-service/internal/repositories"
	"github.com/InnoTrack-2025/research-service/internal/validator"
)

type userService struct {
	repo         repositories.Repository
	validator    *validator.Validator
	cacheManager *cache.CacheManager
	logger       *slog.Logger
}

func NewUserService(repo repositories.Repository, v *validator.Validator, cacheManager *cache.CacheManager, logger *slog.Logger) UserService {
	return &userService{
		repo:         repo,
		validator:    v,
		cacheManager: cacheManager,
		logger:       logger.With("service", "user"),
	}
}

func (s *userService) GetProfile(ctx context.Context, userID uint) (*models.User, error) {
	user, err := s.repo.User().GetByID(ctx, userID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("user lookup failed: %w", err)
	}
	return user, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID uint, req *UpdateProfileRequest) (*models.User, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	user, err := s.repo.User().GetByID(ctx, userID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("user lookup failed: %w", err)
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Department != nil {
		user.Department = *req.Department
	}
	if req.Designation != nil {
		user.Designation = *req.Designation
	}
	if req.Contact != nil {
		user.Contact = *req.Contact
	}
	if req.City != nil {
		user.City = *req.City
	}
	if req.State != nil {
		user.State = *req.State
	}

	if err := s.repo.User().Update(ctx, nil, user); err != nil {
		return nil, fmt.Errorf("profile update failed: %w", err)
	}

	cache.InvalidateUserCache(ctx, s.cacheManager, userID)

	s.logger.InfoContext(ctx, "profile updated", "user_id", userID)

	return user, nil
}
