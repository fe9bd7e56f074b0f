package service

import (
	"context"
	"strings"

	"github.com/masquepolleras/polleras-api/internal/domain/entity"
	"github.com/masquepolleras/polleras-api/internal/domain/repository"
	"github.com/masquepolleras/polleras-api/pkg/apperror"
)

// ContentService manages the editable blocks of site copy
type ContentService struct {
	contentRepo repository.ContentRepository
}

// NewContentService creates a new content service
func NewContentService(contentRepo repository.ContentRepository) *ContentService {
	return &ContentService{contentRepo: contentRepo}
}

// GetByKey returns one block of site copy
func (s *ContentService) GetByKey(ctx context.Context, key string) (*entity.SiteContent, error) {
	content, err := s.contentRepo.GetByKey(ctx, key)
	if err != nil {
		return nil, err
	}
	if content == nil {
		return nil, apperror.NewNotFoundError("Content")
	}
	return content, nil
}

// ListAll returns every block of site copy
func (s *ContentService) ListAll(ctx context.Context) ([]entity.SiteContent, error) {
	return s.contentRepo.ListAll(ctx)
}

// Upsert creates or replaces a block of site copy
func (s *ContentService) Upsert(ctx context.Context, key, value string) (*entity.SiteContent, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, apperror.NewFieldValidationError("key", "Key is required")
	}

	content := &entity.SiteContent{
		Key:   key,
		Value: value,
	}

	if err := s.contentRepo.Upsert(ctx, content); err != nil {
		return nil, err
	}

	return content, nil
}
