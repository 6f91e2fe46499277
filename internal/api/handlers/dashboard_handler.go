package handlers

import (
	"savium/internal/service"
	"savium/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type DashboardHandler struct {
	dashboardService *service.DashboardService
	logger           *zap.Logger
}

func NewDashboardHandler(dashboardService *service.DashboardService, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		logger:           logger,
	}
}

// Get godoc
// @Summary Get the caller's dashboard rollup
// @Tags dashboard
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.DashboardResponse
// @Router /api/dashboard [get]
func (h *DashboardHandler) Get(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	dashboard, err := h.dashboardService.Get(c.Context(), user.ID)
	if err != nil {
		return err
	}

	return c.JSON(dashboard)
}
