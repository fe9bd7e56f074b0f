package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/masquepolleras/polleras-api/internal/application/service"
	"github.com/masquepolleras/polleras-api/internal/presentation/http/dto/request"
	"github.com/masquepolleras/polleras-api/internal/presentation/http/dto/response"
)

// DesignHandler handles AI design generation HTTP requests
type DesignHandler struct {
	designService *service.DesignService
}

// NewDesignHandler creates a new design handler
func NewDesignHandler(designService *service.DesignService) *DesignHandler {
	return &DesignHandler{designService: designService}
}

// Generate asks the image model for a pollera design
// @Summary Generate design
// @Description Generate a pollera design image from a text idea
// @Tags designs
// @Accept json
// @Produce json
// @Param request body request.GenerateDesignRequest true "Design idea"
// @Success 200 {object} response.APIResponse
// @Failure 502 {object} response.APIResponse
// @Failure 503 {object} response.APIResponse
// @Router /designs [post]
func (h *DesignHandler) Generate(c *gin.Context) {
	var req request.GenerateDesignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	image, err := h.designService.Generate(c.Request.Context(), req.Prompt)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Design generated successfully", gin.H{"image": image})
}
