package postgres

import (
	"context"

	"gorm.io/gorm"
)

// Repository is a generic gorm-backed store shared by the services. Entity
// specific queries (conditional balance updates, window counts) live in the
// owning service's repository, wrapping this one.
type Repository[T interface{}] struct {
	db *gorm.DB
}

func New[T interface{}](db *gorm.DB) *Repository[T] {
	return &Repository[T]{
		db,
	}
}

func (r *Repository[T]) Create(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Create(entity).Error
}

func (r *Repository[T]) GetByID(ctx context.Context, id string) (*T, error) {
	var entity T
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&entity).Error; err != nil {
		return nil, err
	}
	return &entity, nil
}

func (r *Repository[T]) GetFirstBy(ctx context.Context, query string, args ...interface{}) (*T, error) {
	var entity T
	if err := r.db.WithContext(ctx).Where(query, args...).First(&entity).Error; err != nil {
		return nil, err
	}
	return &entity, nil
}

func (r *Repository[T]) GetAll(ctx context.Context) (*[]T, error) {
	var entities []T
	if err := r.db.WithContext(ctx).Find(&entities).Error; err != nil {
		return nil, err
	}
	return &entities, nil
}

func (r *Repository[T]) CountBy(ctx context.Context, query string, args ...interface{}) (int64, error) {
	var entity T
	var count int64
	err := r.db.WithContext(ctx).Model(&entity).Where(query, args...).Count(&count).Error
	return count, err
}

func (r *Repository[T]) ExistsBy(ctx context.Context, query string, args ...interface{}) (bool, error) {
	count, err := r.CountBy(ctx, query, args...)
	return count > 0, err
}

func (r *Repository[T]) Update(ctx context.Context, entity *T, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Updates(entity).Error
}

func (r *Repository[T]) Delete(ctx context.Context, id string) error {
	var entity T
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity).Error
}
