package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/masquepolleras/polleras-api/internal/domain/entity"
	"github.com/masquepolleras/polleras-api/internal/domain/enum"
	"github.com/masquepolleras/polleras-api/internal/domain/repository"
	"github.com/masquepolleras/polleras-api/pkg/apperror"
	"github.com/masquepolleras/polleras-api/pkg/pagination"
)

// ProductService manages the rental catalog
type ProductService struct {
	productRepo repository.ProductRepository
}

// NewProductService creates a new product service
func NewProductService(productRepo repository.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// CreateProductInput represents the create product input
type CreateProductInput struct {
	Name        string
	Type        enum.PolleraType
	Technique   enum.Technique
	Price       float64 // Decimal value, converted to cents
	Image       *string
	Description *string
}

// Create adds a pollera to the catalog
func (s *ProductService) Create(ctx context.Context, input *CreateProductInput) (*entity.Product, error) {
	name := strings.TrimSpace(input.Name)
	var fieldErrors []apperror.FieldError
	if name == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "name", Message: "Name is required"})
	}
	if input.Price < 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "price", Message: "Price cannot be negative"})
	}
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	product := &entity.Product{
		Name:        name,
		Type:        input.Type,
		Technique:   input.Technique,
		Image:       input.Image,
		Description: input.Description,
	}
	product.SetPriceFromDecimal(input.Price)

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// GetByID returns a catalog piece by ID
func (s *ProductService) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// List returns catalog pieces with pagination and filters
func (s *ProductService) List(ctx context.Context, params *repository.ProductFilterParams) (*pagination.PaginatedResult[entity.Product], error) {
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}
	params.Pagination.Validate()

	products, total, err := s.productRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	paging := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(products, paging), nil
}

// ListAll returns the full catalog for public browsing
func (s *ProductService) ListAll(ctx context.Context) ([]entity.Product, error) {
	return s.productRepo.ListAll(ctx)
}

// UpdateProductInput represents the update product input
type UpdateProductInput struct {
	Name        *string
	Type        *enum.PolleraType
	Technique   *enum.Technique
	Price       *float64
	Image       *string
	Description *string
}

// Update edits a catalog piece
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, input *UpdateProductInput) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, apperror.NewFieldValidationError("name", "Name is required")
		}
		product.Name = name
	}
	if input.Type != nil {
		product.Type = *input.Type
	}
	if input.Technique != nil {
		product.Technique = *input.Technique
	}
	if input.Price != nil {
		if *input.Price < 0 {
			return nil, apperror.NewFieldValidationError("price", "Price cannot be negative")
		}
		product.SetPriceFromDecimal(*input.Price)
	}
	if input.Image != nil {
		product.Image = input.Image
	}
	if input.Description != nil {
		product.Description = input.Description
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// Delete removes a piece from the catalog
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return apperror.NewNotFoundError("Product")
	}
	return s.productRepo.Delete(ctx, id)
}
