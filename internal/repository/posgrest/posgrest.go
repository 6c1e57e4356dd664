package posgrest

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/bancotranquilo/compras-service/internal/models"
)

// repository is a generic GORM-based repository implementation.
// It provides standard CRUD operations for any entity type T keyed by a
// numeric auto-increment identifier.
type repository[T interface{}] struct {
	db *gorm.DB
}

// New creates a new generic repository instance for type T.
// The repository uses the provided GORM database connection for all operations.
func New[T interface{}](db *gorm.DB) *repository[T] {
	return &repository[T]{
		db,
	}
}

// Create inserts a new entity into the database. The database assigns the
// identifier; GORM writes it back into the entity.
func (r *repository[T]) Create(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Create(entity).Error
}

// GetAll retrieves all entities of type T in insertion order.
func (r *repository[T]) GetAll(ctx context.Context) (*[]T, error) {
	var entities []T
	err := r.db.WithContext(ctx).Order("id").Find(&entities).Error
	if err != nil {
		return nil, err
	}
	return &entities, nil
}

// GetByID retrieves a single entity by its ID. Returns models.ErrNotFound
// when no row matches.
func (r *repository[T]) GetByID(ctx context.Context, id uint) (*T, error) {
	var entity T
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&entity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return &entity, nil
}

// Update updates an existing entity identified by ID.
func (r *repository[T]) Update(ctx context.Context, entity *T, id uint) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Updates(entity).Error
}

// UpdateIf updates an entity only while the given column still holds the
// expected value. The returned row count is zero when another writer got
// there first, which callers use as a compare-and-set on status transitions.
func (r *repository[T]) UpdateIf(ctx context.Context, entity *T, id uint, column string, expected interface{}) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(entity).
		Where("id = ? AND "+column+" = ?", id, expected).
		Updates(entity)
	return res.RowsAffected, res.Error
}

// Delete removes an entity by its ID.
func (r *repository[T]) Delete(ctx context.Context, id uint) error {
	var entity T
	return r.db.WithContext(ctx).Delete(&entity, id).Error
}
