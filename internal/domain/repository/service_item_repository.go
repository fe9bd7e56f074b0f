package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/masquepolleras/polleras-api/internal/domain/entity"
)

// ServiceItemRepository defines the interface for service catalog operations
type ServiceItemRepository interface {
	Create(ctx context.Context, item *entity.ServiceItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.ServiceItem, error)
	Update(ctx context.Context, item *entity.ServiceItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListAll(ctx context.Context) ([]entity.ServiceItem, error)
}
