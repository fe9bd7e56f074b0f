package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/masquepolleras/polleras-api/internal/application/service"
	"github.com/masquepolleras/polleras-api/internal/presentation/http/dto/request"
	"github.com/masquepolleras/polleras-api/internal/presentation/http/dto/response"
	"github.com/masquepolleras/polleras-api/pkg/utils"
)

// ServiceItemHandler handles offered-service HTTP requests
type ServiceItemHandler struct {
	serviceItemService *service.ServiceItemService
}

// NewServiceItemHandler creates a new service item handler
func NewServiceItemHandler(serviceItemService *service.ServiceItemService) *ServiceItemHandler {
	return &ServiceItemHandler{serviceItemService: serviceItemService}
}

// List returns every offered service
// @Summary List services
// @Description List the services offered by the studio
// @Tags services
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /services [get]
func (h *ServiceItemHandler) List(c *gin.Context) {
	items, err := h.serviceItemService.ListAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Services retrieved successfully", gin.H{"services": items})
}

// Create adds a service to the offering
// @Summary Create service
// @Description Add a service to the offering
// @Tags services
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.ServiceItemRequest true "Service data"
// @Success 201 {object} response.APIResponse
// @Failure 422 {object} response.APIResponse
// @Router /admin/services [post]
func (h *ServiceItemHandler) Create(c *gin.Context) {
	var req request.ServiceItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.serviceItemService.Create(c.Request.Context(), &service.ServiceItemInput{
		Title:       req.Title,
		Description: req.Description,
		IconName:    req.IconName,
		Image:       req.Image,
		CTA:         req.CTA,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Service created successfully", gin.H{"service": item})
}

// Update edits a service
// @Summary Update service
// @Description Edit a service
// @Tags services
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Service ID"
// @Param request body request.ServiceItemRequest true "Service data"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /admin/services/{id} [put]
func (h *ServiceItemHandler) Update(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid service ID")
		return
	}

	var req request.ServiceItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.serviceItemService.Update(c.Request.Context(), id, &service.ServiceItemInput{
		Title:       req.Title,
		Description: req.Description,
		IconName:    req.IconName,
		Image:       req.Image,
		CTA:         req.CTA,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Service updated successfully", gin.H{"service": item})
}

// Delete removes a service from the offering
// @Summary Delete service
// @Description Remove a service from the offering
// @Tags services
// @Security BearerAuth
// @Param id path string true "Service ID"
// @Success 204
// @Failure 404 {object} response.APIResponse
// @Router /admin/services/{id} [delete]
func (h *ServiceItemHandler) Delete(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid service ID")
		return
	}

	if err := h.serviceItemService.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
