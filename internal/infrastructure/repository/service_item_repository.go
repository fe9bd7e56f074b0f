package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/masquepolleras/polleras-api/internal/domain/entity"
	domainRepo "github.com/masquepolleras/polleras-api/internal/domain/repository"
	"gorm.io/gorm"
)

type serviceItemRepository struct {
	db *gorm.DB
}

// NewServiceItemRepository creates a new service catalog repository
func NewServiceItemRepository(db *gorm.DB) domainRepo.ServiceItemRepository {
	return &serviceItemRepository{db: db}
}

func (r *serviceItemRepository) Create(ctx context.Context, item *entity.ServiceItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *serviceItemRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.ServiceItem, error) {
	var item entity.ServiceItem
	err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &item, err
}

func (r *serviceItemRepository) Update(ctx context.Context, item *entity.ServiceItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *serviceItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.ServiceItem{}, "id = ?", id).Error
}

func (r *serviceItemRepository) ListAll(ctx context.Context) ([]entity.ServiceItem, error) {
	var items []entity.ServiceItem
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&items).Error
	return items, err
}
