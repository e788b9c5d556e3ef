package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/plantnet-api/internal/application/dto"
	"github.com/jhoicas/plantnet-api/internal/application/usecase"
)

// StatsHandler maneja el resumen estadístico del panel admin.
type StatsHandler struct {
	uc *usecase.StatsUseCase
}

// NewStatsHandler construye el handler.
func NewStatsHandler(uc *usecase.StatsUseCase) *StatsHandler {
	return &StatsHandler{uc: uc}
}

// GetStatistic godoc
// @Summary      Totales y pedidos/ingresos agregados por día (autenticado)
// @Tags         admin
// @Produce      json
// @Success      200  {object}  dto.StatisticResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /admin/statistic [get]
func (h *StatsHandler) GetStatistic(c *fiber.Ctx) error {
	out, err := h.uc.GetStatistic(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
