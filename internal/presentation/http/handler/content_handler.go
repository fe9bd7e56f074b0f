package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/masquepolleras/polleras-api/internal/application/service"
	"github.com/masquepolleras/polleras-api/internal/presentation/http/dto/request"
	"github.com/masquepolleras/polleras-api/internal/presentation/http/dto/response"
)

// ContentHandler handles editable site copy HTTP requests
type ContentHandler struct {
	contentService *service.ContentService
}

// NewContentHandler creates a new content handler
func NewContentHandler(contentService *service.ContentService) *ContentHandler {
	return &ContentHandler{contentService: contentService}
}

// Get returns one block of site copy
// @Summary Get content
// @Description Get a block of site copy by key
// @Tags content
// @Produce json
// @Param key path string true "Content key"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /content/{key} [get]
func (h *ContentHandler) Get(c *gin.Context) {
	content, err := h.contentService.GetByKey(c.Request.Context(), c.Param("key"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Content retrieved successfully", gin.H{"content": content})
}

// List returns every block of site copy
// @Summary List content
// @Description List every block of editable site copy
// @Tags content
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /admin/content [get]
func (h *ContentHandler) List(c *gin.Context) {
	contents, err := h.contentService.ListAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Content retrieved successfully", gin.H{"contents": contents})
}

// Upsert creates or replaces a block of site copy
// @Summary Upsert content
// @Description Create or replace a block of site copy
// @Tags content
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param key path string true "Content key"
// @Param request body request.UpsertContentRequest true "Content value"
// @Success 200 {object} response.APIResponse
// @Router /admin/content/{key} [put]
func (h *ContentHandler) Upsert(c *gin.Context) {
	var req request.UpsertContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	content, err := h.contentService.Upsert(c.Request.Context(), c.Param("key"), req.Value)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Content saved successfully", gin.H{"content": content})
}
