package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/masquepolleras/polleras-api/internal/domain/entity"
	"github.com/masquepolleras/polleras-api/internal/domain/enum"
	"github.com/masquepolleras/polleras-api/internal/domain/repository"
	"github.com/masquepolleras/polleras-api/pkg/apperror"
	"github.com/masquepolleras/polleras-api/pkg/email"
	"github.com/masquepolleras/polleras-api/pkg/pagination"
	"github.com/masquepolleras/polleras-api/pkg/phone"
)

// LeadService manages the inquiry pipeline
type LeadService struct {
	leadRepo     repository.LeadRepository
	emailService *email.EmailService
	notifyInbox  string
}

// NewLeadService creates a new lead service
func NewLeadService(leadRepo repository.LeadRepository, emailService *email.EmailService, notifyInbox string) *LeadService {
	return &LeadService{
		leadRepo:     leadRepo,
		emailService: emailService,
		notifyInbox:  notifyInbox,
	}
}

// CreateLeadInput carries the public contact-form fields
type CreateLeadInput struct {
	Name      string
	Email     *string
	Phone     *string
	Service   *string
	EventDate *time.Time
	Message   *string
}

// Create captures a new inquiry. Phone numbers are normalized to E.164
// when they parse as valid; otherwise the raw input is stored as typed.
// The studio inbox is notified asynchronously.
func (s *LeadService) Create(ctx context.Context, input *CreateLeadInput) (*entity.Lead, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperror.NewFieldValidationError("name", "Name is required")
	}

	lead := &entity.Lead{
		Name:      name,
		Email:     input.Email,
		Service:   input.Service,
		EventDate: input.EventDate,
		Message:   input.Message,
		Status:    enum.LeadStatusNew,
	}

	if input.Phone != nil && strings.TrimSpace(*input.Phone) != "" {
		raw := strings.TrimSpace(*input.Phone)
		if normalized, ok := phone.NormalizeE164(raw, phone.DefaultRegion); ok {
			lead.Phone = &normalized
		} else {
			lead.Phone = &raw
		}
	}

	if err := s.leadRepo.Create(ctx, lead); err != nil {
		return nil, err
	}

	s.notifyAsync(lead)

	return lead, nil
}

// GetByID returns a lead by ID
func (s *LeadService) GetByID(ctx context.Context, id uuid.UUID) (*entity.Lead, error) {
	lead, err := s.leadRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, apperror.NewNotFoundError("Lead")
	}
	return lead, nil
}

// List returns leads with pagination and filters
func (s *LeadService) List(ctx context.Context, params *repository.LeadFilterParams) (*pagination.PaginatedResult[entity.Lead], error) {
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}
	params.Pagination.Validate()

	leads, total, err := s.leadRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	paging := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(leads, paging), nil
}

// UpdateLeadInput carries a partial edit of a lead's contact details
type UpdateLeadInput struct {
	Name      *string
	Email     *string
	Phone     *string
	Service   *string
	EventDate *time.Time
	Message   *string
}

// Update edits a lead's contact details
func (s *LeadService) Update(ctx context.Context, id uuid.UUID, input *UpdateLeadInput) (*entity.Lead, error) {
	lead, err := s.leadRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, apperror.NewNotFoundError("Lead")
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, apperror.NewFieldValidationError("name", "Name is required")
		}
		lead.Name = name
	}
	if input.Email != nil {
		lead.Email = input.Email
	}
	if input.Phone != nil {
		raw := strings.TrimSpace(*input.Phone)
		if raw == "" {
			lead.Phone = nil
		} else if normalized, ok := phone.NormalizeE164(raw, phone.DefaultRegion); ok {
			lead.Phone = &normalized
		} else {
			lead.Phone = &raw
		}
	}
	if input.Service != nil {
		lead.Service = input.Service
	}
	if input.EventDate != nil {
		lead.EventDate = input.EventDate
	}
	if input.Message != nil {
		lead.Message = input.Message
	}

	if err := s.leadRepo.Update(ctx, lead); err != nil {
		return nil, err
	}

	return lead, nil
}

// UpdateStatus moves a lead through the pipeline. Illegal moves are
// rejected with the set of stages reachable from the current one.
func (s *LeadService) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.LeadStatus) (*entity.Lead, error) {
	lead, err := s.leadRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, apperror.NewNotFoundError("Lead")
	}

	if !lead.Status.CanTransitionTo(status) {
		allowed := make([]string, 0)
		for _, st := range lead.Status.AllowedTransitions() {
			allowed = append(allowed, st.String())
		}
		return nil, apperror.NewBadRequestError(fmt.Sprintf(
			"Cannot move lead from %s to %s; allowed: %s",
			lead.Status, status, strings.Join(allowed, ", "),
		))
	}

	if err := s.leadRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}

	lead.Status = status
	return lead, nil
}

// Delete removes a lead
func (s *LeadService) Delete(ctx context.Context, id uuid.UUID) error {
	lead, err := s.leadRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if lead == nil {
		return apperror.NewNotFoundError("Lead")
	}
	return s.leadRepo.Delete(ctx, id)
}

// CountByStatus returns the number of leads in each pipeline stage
func (s *LeadService) CountByStatus(ctx context.Context) (map[enum.LeadStatus]int64, error) {
	return s.leadRepo.CountByStatus(ctx)
}

// leadExportHeaders are the column titles of the XLSX export
var leadExportHeaders = []string{"Nombre", "Email", "Teléfono", "Servicio", "Fecha Evento", "Mensaje", "Estado", "Recibido"}

// ExportXLSX writes every lead into a spreadsheet and returns its bytes
func (s *LeadService) ExportXLSX(ctx context.Context) ([]byte, error) {
	leads, err := s.leadRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Leads"
	f.SetSheetName("Sheet1", sheet)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"1A1A1A"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return nil, err
	}

	for i, header := range leadExportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, header)
		f.SetCellStyle(sheet, cell, cell, headerStyle)
	}

	f.SetColWidth(sheet, "A", "A", 24)
	f.SetColWidth(sheet, "B", "C", 22)
	f.SetColWidth(sheet, "D", "D", 28)
	f.SetColWidth(sheet, "E", "E", 14)
	f.SetColWidth(sheet, "F", "F", 40)
	f.SetColWidth(sheet, "G", "H", 14)

	for i, lead := range leads {
		rowNum := i + 2
		values := []interface{}{
			lead.Name,
			derefOr(lead.Email, ""),
			derefOr(lead.Phone, ""),
			derefOr(lead.Service, ""),
			formatDateOr(lead.EventDate, ""),
			derefOr(lead.Message, ""),
			lead.Status.String(),
			lead.CreatedAt.Format(quoteDateLayout),
		}
		for j, value := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, rowNum)
			f.SetCellValue(sheet, cell, value)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// notifyAsync forwards the inquiry to the studio inbox without
// blocking the public request.
func (s *LeadService) notifyAsync(lead *entity.Lead) {
	if s.notifyInbox == "" || s.emailService == nil {
		return
	}

	notification := email.LeadNotification{
		Name:      lead.Name,
		Email:     derefOr(lead.Email, ""),
		Phone:     derefOr(lead.Phone, ""),
		Service:   derefOr(lead.Service, ""),
		EventDate: formatDateOr(lead.EventDate, ""),
		Message:   derefOr(lead.Message, ""),
	}

	go func() {
		if err := s.emailService.SendLeadNotification(s.notifyInbox, notification); err != nil {
			log.Printf("lead: failed to notify inbox about %s: %v", lead.ID, err)
		}
	}()
}

func derefOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}

func formatDateOr(t *time.Time, fallback string) string {
	if t == nil {
		return fallback
	}
	return t.Format(quoteDateLayout)
}
