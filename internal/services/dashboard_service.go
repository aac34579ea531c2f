package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/InnoTrack-2025/research-service/internal/cache"
	"github.com/InnoTrack-2025/research-service/internal/models"
	"github.com/InnoTrack-2025/research-service/internal/repositories"
)

type dashboardService struct {
	repo         repositories.Repository
	cacheManager *cache.CacheManager
	logger       *slog.Logger
}

func NewDashboardService(repo repositories.Repository, cacheManager *cache.CacheManager, logger *slog.Logger) DashboardService {
	return &dashboardService{
		repo:         repo,
		cacheManager: cacheManager,
		logger:       logger.With("service", "dashboard"),
	}
}

func (s *dashboardService) GetStats(ctx context.Context, user *models.User) (*repositories.DashboardStats, error) {
	var ownerID *uint
	key := "dashboard:all"
	if user.Role != models.RoleGovernment {
		ownerID = &user.ID
		key = fmt.Sprintf("dashboard:owner:%d", user.ID)
	}

	var cached repositories.DashboardStats
	if err := s.cacheManager.Stats.Get(ctx, key, &cached); err == nil {
		return &cached, nil
	}

	stats, err := s.repo.Dashboard().GetStats(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("dashboard stats failed: %w", err)
	}

	if err := s.cacheManager.Stats.Set(ctx, key, stats, cache.StatsCacheConfig.TTL); err != nil {
		s.logger.WarnContext(ctx, "failed to cache dashboard stats", "error", err, "key", key)
	}

	return stats, nil
}
