package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/InnoTrack-2025/research-service/internal/models"
	"github.com/InnoTrack-2025/research-service/internal/repositories"
)

type collegeRepository struct {
	db *gorm.DB
}

func NewCollegeRepository(db *gorm.DB) repositories.CollegeRepository {
	return &collegeRepository{db: db}
}

func (r *collegeRepository) getDB(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *collegeRepository) Create(ctx context.Context, tx *gorm.DB, college *models.College) error {
	db := r.getDB(tx)
	if err := db.WithContext(ctx).Create(college).Error; err != nil {
		return handleDBError(err, "create college")
	}
	return nil
}

func (r *collegeRepository) GetByCollegeID(ctx context.Context, collegeID string) (*models.College, error) {
	var college models.College
	if err := r.db.WithContext(ctx).
		Where("college_id = ?", collegeID).
		First(&college).Error; err != nil {
		return nil, handleDBError(err, "get college by college id")
	}
	return &college, nil
}

func (r *collegeRepository) List(ctx context.Context) ([]*models.College, error) {
	var colleges []*models.College
	if err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&colleges).Error; err != nil {
		return nil, handleDBError(err, "list colleges")
	}
	return colleges, nil
}
