package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/masquepolleras/polleras-api/internal/domain/entity"
	"github.com/masquepolleras/polleras-api/internal/domain/enum"
	"github.com/masquepolleras/polleras-api/pkg/pagination"
)

// LeadRepository defines the interface for lead data operations
type LeadRepository interface {
	Create(ctx context.Context, lead *entity.Lead) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Lead, error)
	Update(ctx context.Context, lead *entity.Lead) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.LeadStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *LeadFilterParams) ([]entity.Lead, int64, error)
	// ListAll returns every lead ordered by creation date, for exports
	ListAll(ctx context.Context) ([]entity.Lead, error)
	// CountByStatus returns the number of leads per pipeline stage
	CountByStatus(ctx context.Context) (map[enum.LeadStatus]int64, error)
}

// LeadFilterParams contains filtering parameters for lead queries
type LeadFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Status     *enum.LeadStatus
	SortBy     string
	SortOrder  string
}
