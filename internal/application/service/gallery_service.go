package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/masquepolleras/polleras-api/internal/domain/entity"
	"github.com/masquepolleras/polleras-api/internal/domain/repository"
	"github.com/masquepolleras/polleras-api/pkg/apperror"
)

// GalleryService manages the public photo gallery
type GalleryService struct {
	galleryRepo repository.GalleryRepository
}

// NewGalleryService creates a new gallery service
func NewGalleryService(galleryRepo repository.GalleryRepository) *GalleryService {
	return &GalleryService{galleryRepo: galleryRepo}
}

// GalleryItemInput carries the editable fields of a gallery photo
type GalleryItemInput struct {
	URL      string
	Category *string
}

// Create adds a photo to the gallery
func (s *GalleryService) Create(ctx context.Context, input *GalleryItemInput) (*entity.GalleryItem, error) {
	url := strings.TrimSpace(input.URL)
	if url == "" {
		return nil, apperror.NewFieldValidationError("url", "URL is required")
	}

	item := &entity.GalleryItem{
		URL:      url,
		Category: input.Category,
	}

	if err := s.galleryRepo.Create(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

// List returns gallery photos, optionally filtered by category
func (s *GalleryService) List(ctx context.Context, category string) ([]entity.GalleryItem, error) {
	if category != "" {
		return s.galleryRepo.ListByCategory(ctx, category)
	}
	return s.galleryRepo.ListAll(ctx)
}

// Update edits a gallery photo
func (s *GalleryService) Update(ctx context.Context, id uuid.UUID, input *GalleryItemInput) (*entity.GalleryItem, error) {
	item, err := s.galleryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Gallery item")
	}

	url := strings.TrimSpace(input.URL)
	if url == "" {
		return nil, apperror.NewFieldValidationError("url", "URL is required")
	}

	item.URL = url
	item.Category = input.Category

	if err := s.galleryRepo.Update(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

// Delete removes a photo from the gallery
func (s *GalleryService) Delete(ctx context.Context, id uuid.UUID) error {
	item, err := s.galleryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if item == nil {
		return apperror.NewNotFoundError("Gallery item")
	}
	return s.galleryRepo.Delete(ctx, id)
}
