package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/masquepolleras/polleras-api/internal/application/service"
	"github.com/masquepolleras/polleras-api/internal/domain/enum"
	"github.com/masquepolleras/polleras-api/internal/domain/repository"
	"github.com/masquepolleras/polleras-api/internal/presentation/http/dto/request"
	"github.com/masquepolleras/polleras-api/internal/presentation/http/dto/response"
	"github.com/masquepolleras/polleras-api/pkg/pagination"
	"github.com/masquepolleras/polleras-api/pkg/utils"
)

// eventDateLayout is the wire format of the contact-form event date
const eventDateLayout = "2006-01-02"

// LeadHandler handles inquiry pipeline HTTP requests
type LeadHandler struct {
	leadService *service.LeadService
}

// NewLeadHandler creates a new lead handler
func NewLeadHandler(leadService *service.LeadService) *LeadHandler {
	return &LeadHandler{leadService: leadService}
}

// Create captures a public contact-form submission
// @Summary Create lead
// @Description Capture a rental inquiry from the public site
// @Tags leads
// @Accept json
// @Produce json
// @Param request body request.CreateLeadRequest true "Inquiry data"
// @Success 201 {object} response.APIResponse
// @Failure 422 {object} response.APIResponse
// @Router /leads [post]
func (h *LeadHandler) Create(c *gin.Context) {
	var req request.CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	eventDate, err := parseEventDate(req.EventDate)
	if err != nil {
		response.BadRequest(c, "Invalid event date, expected YYYY-MM-DD")
		return
	}

	lead, err := h.leadService.Create(c.Request.Context(), &service.CreateLeadInput{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Service:   req.Service,
		EventDate: eventDate,
		Message:   req.Message,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Inquiry received successfully", gin.H{"lead": lead})
}

// List returns leads with pagination and filters
// @Summary List leads
// @Description List inquiries with pagination and filters
// @Tags leads
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /admin/leads [get]
func (h *LeadHandler) List(c *gin.Context) {
	var req request.LeadFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.LeadFilterParams{
		Pagination: &pagination.PaginationParams{Page: req.Page, PerPage: req.PerPage},
		Search:     req.Search,
		SortBy:     req.SortBy,
		SortOrder:  req.SortOrder,
	}
	if req.Status != "" {
		if status, err := enum.ParseLeadStatus(req.Status); err == nil {
			params.Status = &status
		}
	}

	result, err := h.leadService.List(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Leads retrieved successfully", result)
}

// Get returns a single lead
// @Summary Get lead
// @Description Get an inquiry by ID
// @Tags leads
// @Security BearerAuth
// @Produce json
// @Param id path string true "Lead ID"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /admin/leads/{id} [get]
func (h *LeadHandler) Get(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid lead ID")
		return
	}

	lead, err := h.leadService.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Lead retrieved successfully", gin.H{"lead": lead})
}

// Update edits a lead's contact details
// @Summary Update lead
// @Description Edit an inquiry's contact details
// @Tags leads
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Lead ID"
// @Param request body request.UpdateLeadRequest true "Lead data"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /admin/leads/{id} [put]
func (h *LeadHandler) Update(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid lead ID")
		return
	}

	var req request.UpdateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	eventDate, err := parseEventDate(req.EventDate)
	if err != nil {
		response.BadRequest(c, "Invalid event date, expected YYYY-MM-DD")
		return
	}

	lead, err := h.leadService.Update(c.Request.Context(), id, &service.UpdateLeadInput{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Service:   req.Service,
		EventDate: eventDate,
		Message:   req.Message,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Lead updated successfully", gin.H{"lead": lead})
}

// UpdateStatus moves a lead through the pipeline
// @Summary Update lead status
// @Description Move an inquiry to another pipeline stage
// @Tags leads
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Lead ID"
// @Param request body request.UpdateLeadStatusRequest true "Target status"
// @Success 200 {object} response.APIResponse
// @Failure 400 {object} response.APIResponse
// @Router /admin/leads/{id}/status [patch]
func (h *LeadHandler) UpdateStatus(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid lead ID")
		return
	}

	var req request.UpdateLeadStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	status, err := enum.ParseLeadStatus(req.Status)
	if err != nil {
		response.BadRequest(c, "Unknown status")
		return
	}

	lead, err := h.leadService.UpdateStatus(c.Request.Context(), id, status)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Lead status updated successfully", gin.H{"lead": lead})
}

// Delete removes a lead
// @Summary Delete lead
// @Description Remove an inquiry
// @Tags leads
// @Security BearerAuth
// @Param id path string true "Lead ID"
// @Success 204
// @Failure 404 {object} response.APIResponse
// @Router /admin/leads/{id} [delete]
func (h *LeadHandler) Delete(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid lead ID")
		return
	}

	if err := h.leadService.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// Export downloads every lead as a spreadsheet
// @Summary Export leads
// @Description Download the full inquiry list as XLSX
// @Tags leads
// @Security BearerAuth
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200
// @Router /admin/leads/export [get]
func (h *LeadHandler) Export(c *gin.Context) {
	content, err := h.leadService.ExportXLSX(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	filename := fmt.Sprintf("Leads_%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", content)
}

func parseEventDate(raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	t, err := time.Parse(eventDateLayout, *raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
