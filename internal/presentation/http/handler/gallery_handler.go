package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/masquepolleras/polleras-api/internal/application/service"
	"github.com/masquepolleras/polleras-api/internal/presentation/http/dto/request"
	"github.com/masquepolleras/polleras-api/internal/presentation/http/dto/response"
	"github.com/masquepolleras/polleras-api/pkg/utils"
)

// GalleryHandler handles gallery HTTP requests
type GalleryHandler struct {
	galleryService *service.GalleryService
}

// NewGalleryHandler creates a new gallery handler
func NewGalleryHandler(galleryService *service.GalleryService) *GalleryHandler {
	return &GalleryHandler{galleryService: galleryService}
}

// List returns gallery photos, optionally filtered by category
// @Summary List gallery
// @Description List gallery photos, optionally filtered by category
// @Tags gallery
// @Produce json
// @Param category query string false "Category filter"
// @Success 200 {object} response.APIResponse
// @Router /gallery [get]
func (h *GalleryHandler) List(c *gin.Context) {
	items, err := h.galleryService.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Gallery retrieved successfully", gin.H{"items": items})
}

// Create adds a photo to the gallery
// @Summary Create gallery item
// @Description Add a photo to the gallery
// @Tags gallery
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.GalleryItemRequest true "Photo data"
// @Success 201 {object} response.APIResponse
// @Failure 422 {object} response.APIResponse
// @Router /admin/gallery [post]
func (h *GalleryHandler) Create(c *gin.Context) {
	var req request.GalleryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.galleryService.Create(c.Request.Context(), &service.GalleryItemInput{
		URL:      req.URL,
		Category: req.Category,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Gallery item created successfully", gin.H{"item": item})
}

// Update edits a gallery photo
// @Summary Update gallery item
// @Description Edit a gallery photo
// @Tags gallery
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Gallery item ID"
// @Param request body request.GalleryItemRequest true "Photo data"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /admin/gallery/{id} [put]
func (h *GalleryHandler) Update(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid gallery item ID")
		return
	}

	var req request.GalleryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.galleryService.Update(c.Request.Context(), id, &service.GalleryItemInput{
		URL:      req.URL,
		Category: req.Category,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Gallery item updated successfully", gin.H{"item": item})
}

// Delete removes a photo from the gallery
// @Summary Delete gallery item
// @Description Remove a photo from the gallery
// @Tags gallery
// @Security BearerAuth
// @Param id path string true "Gallery item ID"
// @Success 204
// @Failure 404 {object} response.APIResponse
// @Router /admin/gallery/{id} [delete]
func (h *GalleryHandler) Delete(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid gallery item ID")
		return
	}

	if err := h.galleryService.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
