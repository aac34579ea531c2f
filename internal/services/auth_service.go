package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/InnoTrack-2025/research-service/internal/auth"
	"github.com/InnoTrack-2025/research-service/internal/events"
	"github.com/InnoTrack-2025/research-service/internal/models"
	"github.com/InnoTrack-2025/research-service/internal/repositories"
	"github.com/InnoTrack-2025/research-service/internal/validator"
)

type authService struct {
	repo      repositories.Repository
	validator *validator.Validator
	tokens    *auth.TokenService
	events    events.Publisher
	logger    *slog.Logger
}

func NewAuthService(repo repositories.Repository, v *validator.Validator, tokens *auth.TokenService, publisher events.Publisher, logger *slog.Logger) AuthService {
	return &authService{
		repo:      repo,
		validator: v,
		tokens:    tokens,
		events:    publisher,
		logger:    logger.With("service", "auth"),
	}
}

func (s *authService) Register(ctx context.Context, req *RegisterRequest) (*AuthResult, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	// Non-government accounts must claim a registered college, and the
	// claimed name must match the registry entry.
	if req.Role != models.RoleGovernment {
		college, err := s.repo.College().GetByCollegeID(ctx, req.CollegeID)
		if err != nil {
			if repositories.IsNotFoundError(err) {
				return nil, ErrCollegeNotFound
			}
			return nil, fmt.Errorf("college lookup failed: %w", err)
		}
		if req.CollegeName != college.Name {
			return nil, ErrCollegeNotFound
		}
	}

	exists, err := s.repo.User().ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("email check failed: %w", err)
	}
	if exists {
		return nil, ErrEmailExists
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("password hashing failed: %w", err)
	}

	department := req.Department
	if department == "" {
		department = req.Branch
	}

	user := &models.User{
		Name:        req.Name,
		Email:       req.Email,
		Password:    hash,
		Role:        req.Role,
		CollegeID:   req.CollegeID,
		CollegeName: req.CollegeName,
		Branch:      req.Branch,
		RollNumber:  req.RollNumber,
		Department:  department,
		Contact:     req.Contact,
	}

	if err := s.repo.User().Create(ctx, nil, user); err != nil {
		// Lost the race against a concurrent registration.
		if repositories.IsDuplicateError(err) {
			return nil, ErrEmailExists
		}
		return nil, fmt.Errorf("user creation failed: %w", err)
	}

	token, err := s.tokens.Generate(user)
	if err != nil {
		return nil, fmt.Errorf("token generation failed: %w", err)
	}

	if err := s.events.Publish(ctx, events.TopicUserRegistered, events.UserRegisteredEvent{
		UserID:     user.ID,
		Role:       string(user.Role),
		CollegeID:  user.CollegeID,
		OccurredAt: time.Now(),
	}); err != nil {
		s.logger.WarnContext(ctx, "failed to publish registration event", "error", err, "user_id", user.ID)
	}

	s.logger.InfoContext(ctx, "user registered", "user_id", user.ID, "role", user.Role)

	return &AuthResult{Token: token, User: user}, nil
}

func (s *authService) Login(ctx context.Context, req *LoginRequest) (*AuthResult, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	user, err := s.repo.User().GetByEmailAndRole(ctx, req.Email, req.Role)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("user lookup failed: %w", err)
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, ErrInvalidCredentials
	}

	if err := s.repo.User().TouchLastActive(ctx, user.ID); err != nil {
		s.logger.WarnContext(ctx, "failed to update last active", "error", err, "user_id", user.ID)
	}

	token, err := s.tokens.Generate(user)
	if err != nil {
		return nil, fmt.Errorf("token generation failed: %w", err)
	}

	return &AuthResult{Token: token, User: user}, nil
}
