package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/masquepolleras/polleras-api/internal/domain/entity"
)

// GalleryRepository defines the interface for gallery data operations
type GalleryRepository interface {
	Create(ctx context.Context, item *entity.GalleryItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.GalleryItem, error)
	Update(ctx context.Context, item *entity.GalleryItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListAll(ctx context.Context) ([]entity.GalleryItem, error)
	ListByCategory(ctx context.Context, category string) ([]entity.GalleryItem, error)
}
