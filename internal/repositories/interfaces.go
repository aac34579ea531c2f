package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/InnoTrack-2025/research-service/internal/models"
)

// UserRepository manages accounts. GetByID is served from cache when
// Redis is configured; writes invalidate the cached row.
type UserRepository interface {
	Create(ctx context.Context, tx *gorm.DB, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmailAndRole(ctx context.Context, email string, role models.UserRole) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, tx *gorm.DB, user *models.User) error

	// TouchLastActive is best-effort bookkeeping; callers ignore errors.
	TouchLastActive(ctx context.Context, id uint) error
}

// CollegeRepository manages the pre-registered institution list.
type CollegeRepository interface {
	Create(ctx context.Context, tx *gorm.DB, college *models.College) error
	GetByCollegeID(ctx context.Context, collegeID string) (*models.College, error)
	List(ctx context.Context) ([]*models.College, error)
}

// ResourceFilters narrows List queries on owned resources.
type ResourceFilters struct {
	// CreatedBy scopes to an owner; nil means unscoped (elevated read).
	CreatedBy  *uint
	Department *string
	Status     *string

	Limit     int
	Offset    int
	SortBy    string
	SortOrder string
}

// OwnedRepository is the shared persistence surface for every
// creator-scoped resource. T is instantiated with a pointer type
// (*models.Publication and friends).
type OwnedRepository[T models.Owned] interface {
	Create(ctx context.Context, tx *gorm.DB, entity T) error
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (T, error)
	List(ctx context.Context, tx *gorm.DB, filters ResourceFilters) ([]T, int64, error)
	Update(ctx context.Context, tx *gorm.DB, entity T) error

	// Delete removes the row only when it belongs to ownerID. Returns
	// gorm.ErrRecordNotFound when nothing matched, which makes repeated
	// deletes indistinguishable from deletes of foreign rows.
	Delete(ctx context.Context, tx *gorm.DB, id, ownerID uint) error
}

// DashboardStats aggregates per-entity counts and funding totals.
type DashboardStats struct {
	Publications int64 `json:"publications"`
	Patents      int64 `json:"patents"`
	Grants       int64 `json:"grants"`
	Awards       int64 `json:"awards"`
	Startups     int64 `json:"startups"`
	Projects     int64 `json:"innovationProjects"`

	GrantAmountTotal    float64 `json:"grantAmountTotal"`
	StartupFundingTotal float64 `json:"startupFundingTotal"`
}

// DashboardRepository computes dashboard aggregates. A nil ownerID means
// the cross-institution rollup (government role).
type DashboardRepository interface {
	GetStats(ctx context.Context, ownerID *uint) (*DashboardStats, error)
}
