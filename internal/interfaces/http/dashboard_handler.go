package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/estudio-stock/internal/application/analytics"
)

// DashboardHandler expone el resumen del panel de control.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary godoc
// @Summary      Resumen del dashboard
// @Description  Valor de inventario, totales por estado, alertas de stock, serie mensual y top productos.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	out, err := h.uc.GetSummary(c.UserContext())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}
