package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Controle-estoque-api/internal/application/analytics"
	"github.com/jhoicas/Controle-estoque-api/internal/application/dto"
)

// DashboardHandler trata o resumo do painel.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler constrói o handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetResumo godoc
// @Summary      Resumo do painel de estoque
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) GetResumo(c *fiber.Ctx) error {
	out, err := h.uc.GetResumo(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
