package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/InnoTrack-2025/research-service/internal/models"
	"github.com/InnoTrack-2025/research-service/internal/repositories"
	"github.com/InnoTrack-2025/research-service/internal/validator"
)

type collegeService struct {
	repo      repositories.Repository
	validator *validator.Validator
	logger    *slog.Logger
}

func NewCollegeService(repo repositories.Repository, v *validator.Validator, logger *slog.Logger) CollegeService {
	return &collegeService{
		repo:      repo,
		validator: v,
		logger:    logger.With("service", "college"),
	}
}

// List is public; registration forms need it before authentication.
func (s *collegeService) List(ctx context.Context) ([]*models.College, error) {
	colleges, err := s.repo.College().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("college listing failed: %w", err)
	}
	return colleges, nil
}

func (s *collegeService) Create(ctx context.Context, req *CreateCollegeRequest, creator *models.User) (*models.College, error) {
	if creator.Role != models.RoleGovernment {
		return nil, ErrPermissionDenied
	}

	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	college := &models.College{
		CollegeID: req.CollegeID,
		Name:      req.Name,
		City:      req.City,
		State:     req.State,
	}

	if err := s.repo.College().Create(ctx, nil, college); err != nil {
		if repositories.IsDuplicateError(err) {
			return nil, ErrCollegeExists
		}
		return nil, fmt.Errorf("college creation failed: %w", err)
	}

	s.logger.InfoContext(ctx, "college registered", "college_id", college.CollegeID, "created_by", creator.ID)

	return college, nil
}
