package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cumplimiento-api/internal/application/analytics"
)

// DashboardHandler expone las estadísticas agregadas de cumplimiento.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetStats godoc
// @Summary      Estadísticas del dashboard
// @Description  Conteos de licencias y remesas por estado más las licencias próximas a vencer, acotados a la visibilidad del llamador.
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.DashboardStatsDTO
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/dashboard/stats [get]
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	out, err := h.uc.GetStats(c.Context(), GetActor(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
