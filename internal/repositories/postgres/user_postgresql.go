package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/InnoTrack-2025/research-service/internal/cache"
	"github.com/InnoTrack-2025/research-service/internal/models"
	"github.com/InnoTrack-2025/research-service/internal/repositories"
)

// userRepository persists accounts and caches GetByID lookups in Redis,
// since the auth middleware resolves the user on every request.
type userRepository struct {
	db    *gorm.DB
	cache *cache.CacheHelper
}

func NewUserRepository(db *gorm.DB, redisClient *redis.Client) repositories.UserRepository {
	return &userRepository{
		db:    db,
		cache: cache.NewCacheHelper(redisClient, cache.UserCacheConfig.Prefix),
	}
}

func (r *userRepository) getDB(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *userRepository) cacheKey(id uint) string {
	return fmt.Sprintf("id:%d", id)
}

func (r *userRepository) Create(ctx context.Context, tx *gorm.DB, user *models.User) error {
	db := r.getDB(tx)
	if err := db.WithContext(ctx).Create(user).Error; err != nil {
		return handleDBError(err, "create user")
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var cached models.User
	if err := r.cache.Get(ctx, r.cacheKey(id), &cached); err == nil {
		return &cached, nil
	}

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, handleDBError(err, "get user by id")
	}

	// cache failures never fail the lookup
	_ = r.cache.Set(ctx, r.cacheKey(id), &user, cache.UserCacheConfig.TTL)

	return &user, nil
}

func (r *userRepository) GetByEmailAndRole(ctx context.Context, email string, role models.UserRole) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).
		Where("email = ? AND role = ?", email, role).
		First(&user).Error; err != nil {
		return nil, handleDBError(err, "get user by email and role")
	}
	return &user, nil
}

func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, handleDBError(err, "check user email exists")
	}
	return count > 0, nil
}

func (r *userRepository) Update(ctx context.Context, tx *gorm.DB, user *models.User) error {
	db := r.getDB(tx)
	if err := db.WithContext(ctx).Save(user).Error; err != nil {
		return handleDBError(err, "update user")
	}

	cache.SafeDelete(ctx, r.cache, r.cacheKey(user.ID))
	return nil
}

func (r *userRepository) TouchLastActive(ctx context.Context, id uint) error {
	now := time.Now()
	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		UpdateColumn("last_active", now).Error; err != nil {
		return handleDBError(err, "touch last active")
	}
	return nil
}
