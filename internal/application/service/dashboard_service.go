package service

import (
	"context"

	"github.com/masquepolleras/polleras-api/internal/domain/enum"
	"github.com/masquepolleras/polleras-api/internal/domain/repository"
)

// DashboardService aggregates the back-office landing figures
type DashboardService struct {
	leadRepo     repository.LeadRepository
	productRepo  repository.ProductRepository
	serviceRepo  repository.ServiceItemRepository
	galleryRepo  repository.GalleryRepository
	settingsRepo repository.SettingsRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	leadRepo repository.LeadRepository,
	productRepo repository.ProductRepository,
	serviceRepo repository.ServiceItemRepository,
	galleryRepo repository.GalleryRepository,
	settingsRepo repository.SettingsRepository,
) *DashboardService {
	return &DashboardService{
		leadRepo:     leadRepo,
		productRepo:  productRepo,
		serviceRepo:  serviceRepo,
		galleryRepo:  galleryRepo,
		settingsRepo: settingsRepo,
	}
}

// DashboardStats is the back-office landing summary
type DashboardStats struct {
	TotalLeads    int64            `json:"total_leads"`
	LeadsByStatus map[string]int64 `json:"leads_by_status"`
	TotalProducts int              `json:"total_products"`
	TotalServices int              `json:"total_services"`
	TotalPhotos   int              `json:"total_photos"`
	QuotesIssued  int              `json:"quotes_issued"`
}

// GetStats assembles the pipeline and catalog figures. The quote
// counter doubles as the number of quotes ever issued.
func (s *DashboardService) GetStats(ctx context.Context) (*DashboardStats, error) {
	counts, err := s.leadRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{
		LeadsByStatus: make(map[string]int64, len(counts)),
	}
	for _, status := range []enum.LeadStatus{
		enum.LeadStatusNew,
		enum.LeadStatusContacted,
		enum.LeadStatusBooked,
		enum.LeadStatusLost,
	} {
		count := counts[status]
		stats.LeadsByStatus[status.String()] = count
		stats.TotalLeads += count
	}

	products, err := s.productRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	stats.TotalProducts = len(products)

	services, err := s.serviceRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	stats.TotalServices = len(services)

	photos, err := s.galleryRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	stats.TotalPhotos = len(photos)

	issued, err := s.settingsRepo.GetQuoteCounter(ctx)
	if err != nil {
		return nil, err
	}
	stats.QuotesIssued = issued

	return stats, nil
}
