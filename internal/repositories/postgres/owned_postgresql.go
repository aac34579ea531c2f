package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/InnoTrack-2025/research-service/internal/models"
	"github.com/InnoTrack-2025/research-service/internal/repositories"
)

// ownedRepository is the shared gorm implementation behind every
// creator-scoped resource table. The type parameter is a pointer type,
// so newFn allocates fresh entities for reads.
type ownedRepository[T models.Owned] struct {
	db      *gorm.DB
	newFn   func() T
	name    string
	recency string
	preload []string
}

// NewOwnedRepository builds a repository for one resource table.
// recencyColumn is the domain date used as the default sort, and
// preloads name associations loaded on reads.
func NewOwnedRepository[T models.Owned](db *gorm.DB, newFn func() T, name, recencyColumn string, preloads ...string) repositories.OwnedRepository[T] {
	return &ownedRepository[T]{
		db:      db,
		newFn:   newFn,
		name:    name,
		recency: recencyColumn,
		preload: preloads,
	}
}

func (r *ownedRepository[T]) getDB(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *ownedRepository[T]) withPreloads(db *gorm.DB) *gorm.DB {
	for _, assoc := range r.preload {
		db = db.Preload(assoc)
	}
	return db
}

func (r *ownedRepository[T]) Create(ctx context.Context, tx *gorm.DB, entity T) error {
	db := r.getDB(tx)
	if err := db.WithContext(ctx).Create(entity).Error; err != nil {
		return handleDBError(err, "create "+r.name)
	}
	return nil
}

func (r *ownedRepository[T]) GetByID(ctx context.Context, tx *gorm.DB, id uint) (T, error) {
	entity := r.newFn()
	db := r.withPreloads(r.getDB(tx).WithContext(ctx))
	if err := db.First(entity, id).Error; err != nil {
		var zero T
		return zero, handleDBError(err, "get "+r.name)
	}
	return entity, nil
}

func (r *ownedRepository[T]) List(ctx context.Context, tx *gorm.DB, filters repositories.ResourceFilters) ([]T, int64, error) {
	db := r.getDB(tx).WithContext(ctx)

	query := db.Model(r.newFn())
	if filters.CreatedBy != nil {
		query = query.Where("created_by = ?", *filters.CreatedBy)
	}
	if filters.Department != nil {
		query = query.Where("department = ?", *filters.Department)
	}
	if filters.Status != nil {
		query = query.Where("status = ?", *filters.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, handleDBError(err, "count "+r.name)
	}

	query = r.withPreloads(query)
	query = applyPaginationAndSorting(query, filters.SortBy, filters.SortOrder, r.recency, filters.Limit, filters.Offset)

	var entities []T
	if err := query.Find(&entities).Error; err != nil {
		return nil, 0, handleDBError(err, "list "+r.name)
	}
	return entities, total, nil
}

func (r *ownedRepository[T]) Update(ctx context.Context, tx *gorm.DB, entity T) error {
	db := r.getDB(tx)
	if err := db.WithContext(ctx).Save(entity).Error; err != nil {
		return handleDBError(err, "update "+r.name)
	}
	return nil
}

// Delete only matches rows owned by ownerID. A miss, whether the row is
// absent or owned by someone else, surfaces as ErrRecordNotFound.
func (r *ownedRepository[T]) Delete(ctx context.Context, tx *gorm.DB, id, ownerID uint) error {
	db := r.getDB(tx)
	result := db.WithContext(ctx).
		Where("id = ? AND created_by = ?", id, ownerID).
		Delete(r.newFn())
	if result.Error != nil {
		return handleDBError(result.Error, "delete "+r.name)
	}
	if result.RowsAffected == 0 {
		return handleDBError(gorm.ErrRecordNotFound, "delete "+r.name)
	}
	return nil
}
