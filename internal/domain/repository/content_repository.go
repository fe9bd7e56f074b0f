package repository

import (
	"context"

	"github.com/masquepolleras/polleras-api/internal/domain/entity"
)

// ContentRepository defines the interface for editable site copy
type ContentRepository interface {
	GetByKey(ctx context.Context, key string) (*entity.SiteContent, error)
	Upsert(ctx context.Context, content *entity.SiteContent) error
	ListAll(ctx context.Context) ([]entity.SiteContent, error)
}
