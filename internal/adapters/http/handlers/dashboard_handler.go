package handlers

import (
	"e2d-ledger/internal/core/services"
	"e2d-ledger/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// DashboardHandler handles the bureau overview endpoint
type DashboardHandler struct {
	dashboardService *services.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Overview returns the association's financial snapshot
// @Summary Dashboard overview
// @Description Members, current period, loans, sanctions, debts and savings at a glance
// @Tags Dashboard
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /dashboard [get]
func (h *DashboardHandler) Overview(c *fiber.Ctx) error {
	overview, err := h.dashboardService.GetOverview(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to build overview")
	}

	return response.Success(c, "Overview retrieved successfully", overview)
}
