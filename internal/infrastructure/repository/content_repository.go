package repository

import (
	"context"
	"errors"

	"github.com/masquepolleras/polleras-api/internal/domain/entity"
	domainRepo "github.com/masquepolleras/polleras-api/internal/domain/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type contentRepository struct {
	db *gorm.DB
}

// NewContentRepository creates a new site content repository
func NewContentRepository(db *gorm.DB) domainRepo.ContentRepository {
	return &contentRepository{db: db}
}

func (r *contentRepository) GetByKey(ctx context.Context, key string) (*entity.SiteContent, error) {
	var content entity.SiteContent
	err := r.db.WithContext(ctx).First(&content, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &content, err
}

func (r *contentRepository) Upsert(ctx context.Context, content *entity.SiteContent) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(content).Error
}

func (r *contentRepository) ListAll(ctx context.Context) ([]entity.SiteContent, error) {
	var contents []entity.SiteContent
	err := r.db.WithContext(ctx).Order("key ASC").Find(&contents).Error
	return contents, err
}
