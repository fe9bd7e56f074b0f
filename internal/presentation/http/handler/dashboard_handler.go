package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/masquepolleras/polleras-api/internal/application/service"
	"github.com/masquepolleras/polleras-api/internal/presentation/http/dto/response"
)

// DashboardHandler handles back-office dashboard HTTP requests
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetStats returns the back-office landing figures
// @Summary Dashboard stats
// @Description Get pipeline and catalog figures
// @Tags dashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /admin/dashboard [get]
func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.dashboardService.GetStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Dashboard stats retrieved successfully", gin.H{"stats": stats})
}
