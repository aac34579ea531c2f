package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/InnoTrack-2025/research-service/internal/models"
	"github.com/InnoTrack-2025/research-service/internal/repositories"
)

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) repositories.DashboardRepository {
	return &dashboardRepository{db: db}
}

// GetStats aggregates counts and funding totals across every resource
// table. A nil ownerID computes the cross-institution rollup.
func (r *dashboardRepository) GetStats(ctx context.Context, ownerID *uint) (*repositories.DashboardStats, error) {
	stats := &repositories.DashboardStats{}

	counts := []struct {
		model interface{}
		dest  *int64
		name  string
	}{
		{&models.Publication{}, &stats.Publications, "publications"},
		{&models.Patent{}, &stats.Patents, "patents"},
		{&models.Grant{}, &stats.Grants, "grants"},
		{&models.Award{}, &stats.Awards, "awards"},
		{&models.Startup{}, &stats.Startups, "startups"},
		{&models.InnovationProject{}, &stats.Projects, "innovation projects"},
	}

	for _, c := range counts {
		query := r.db.WithContext(ctx).Model(c.model)
		if ownerID != nil {
			query = query.Where("created_by = ?", *ownerID)
		}
		if err := query.Count(c.dest).Error; err != nil {
			return nil, fmt.Errorf("count %s failed: %w", c.name, err)
		}
	}

	grantTotal, err := r.sumColumn(ctx, &models.Grant{}, "amount", ownerID)
	if err != nil {
		return nil, fmt.Errorf("sum grant amounts failed: %w", err)
	}
	stats.GrantAmountTotal = grantTotal

	fundingTotal, err := r.sumColumn(ctx, &models.Startup{}, "funding", ownerID)
	if err != nil {
		return nil, fmt.Errorf("sum startup funding failed: %w", err)
	}
	stats.StartupFundingTotal = fundingTotal

	return stats, nil
}

func (r *dashboardRepository) sumColumn(ctx context.Context, model interface{}, column string, ownerID *uint) (float64, error) {
	var result struct {
		Total float64
	}

	query := r.db.WithContext(ctx).
		Model(model).
		Select(fmt.Sprintf("COALESCE(SUM(%s), 0) as total", column))
	if ownerID != nil {
		query = query.Where("created_by = ?", *ownerID)
	}

	if err := query.Scan(&result).Error; err != nil {
		return 0, err
	}
	return result.Total, nil
}
