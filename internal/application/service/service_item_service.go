package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/masquepolleras/polleras-api/internal/domain/entity"
	"github.com/masquepolleras/polleras-api/internal/domain/repository"
	"github.com/masquepolleras/polleras-api/pkg/apperror"
)

// ServiceItemService manages the offered services shown on the site
type ServiceItemService struct {
	serviceRepo repository.ServiceItemRepository
}

// NewServiceItemService creates a new service item service
func NewServiceItemService(serviceRepo repository.ServiceItemRepository) *ServiceItemService {
	return &ServiceItemService{serviceRepo: serviceRepo}
}

// ServiceItemInput carries the editable fields of a service
type ServiceItemInput struct {
	Title       string
	Description *string
	IconName    *string
	Image       *string
	CTA         *string
}

// Create adds a service to the offering
func (s *ServiceItemService) Create(ctx context.Context, input *ServiceItemInput) (*entity.ServiceItem, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, apperror.NewFieldValidationError("title", "Title is required")
	}

	item := &entity.ServiceItem{
		Title:       title,
		Description: input.Description,
		IconName:    input.IconName,
		Image:       input.Image,
		CTA:         input.CTA,
	}

	if err := s.serviceRepo.Create(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

// GetByID returns a service by ID
func (s *ServiceItemService) GetByID(ctx context.Context, id uuid.UUID) (*entity.ServiceItem, error) {
	item, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Service")
	}
	return item, nil
}

// ListAll returns every offered service
func (s *ServiceItemService) ListAll(ctx context.Context) ([]entity.ServiceItem, error) {
	return s.serviceRepo.ListAll(ctx)
}

// Update edits a service
func (s *ServiceItemService) Update(ctx context.Context, id uuid.UUID, input *ServiceItemInput) (*entity.ServiceItem, error) {
	item, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Service")
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, apperror.NewFieldValidationError("title", "Title is required")
	}

	item.Title = title
	item.Description = input.Description
	item.IconName = input.IconName
	item.Image = input.Image
	item.CTA = input.CTA

	if err := s.serviceRepo.Update(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

// Delete removes a service from the offering
func (s *ServiceItemService) Delete(ctx context.Context, id uuid.UUID) error {
	item, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if item == nil {
		return apperror.NewNotFoundError("Service")
	}
	return s.serviceRepo.Delete(ctx, id)
}
