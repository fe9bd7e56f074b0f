package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/masquepolleras/polleras-api/internal/domain/entity"
	domainRepo "github.com/masquepolleras/polleras-api/internal/domain/repository"
	"gorm.io/gorm"
)

type galleryRepository struct {
	db *gorm.DB
}

// NewGalleryRepository creates a new gallery repository
func NewGalleryRepository(db *gorm.DB) domainRepo.GalleryRepository {
	return &galleryRepository{db: db}
}

func (r *galleryRepository) Create(ctx context.Context, item *entity.GalleryItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *galleryRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.GalleryItem, error) {
	var item entity.GalleryItem
	err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &item, err
}

func (r *galleryRepository) Update(ctx context.Context, item *entity.GalleryItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *galleryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.GalleryItem{}, "id = ?", id).Error
}

func (r *galleryRepository) ListAll(ctx context.Context) ([]entity.GalleryItem, error) {
	var items []entity.GalleryItem
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&items).Error
	return items, err
}

func (r *galleryRepository) ListByCategory(ctx context.Context, category string) ([]entity.GalleryItem, error) {
	var items []entity.GalleryItem
	err := r.db.WithContext(ctx).
		Where("category = ?", category).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}
