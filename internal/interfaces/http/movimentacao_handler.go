package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Controle-estoque-api/internal/application/dto"
	"github.com/jhoicas/Controle-estoque-api/internal/application/usecase"
)

// MovimentacaoHandler trata a listagem do ledger de movimentações.
type MovimentacaoHandler struct {
	uc *usecase.MovimentacaoUseCase
}

// NewMovimentacaoHandler constrói o handler.
func NewMovimentacaoHandler(uc *usecase.MovimentacaoUseCase) *MovimentacaoHandler {
	return &MovimentacaoHandler{uc: uc}
}

// List godoc
// @Summary      Listar movimentações de estoque
// @Tags         movimentacoes
// @Produce      json
// @Param        produto_id  query  int     false  "Filtrar por produto"
// @Param        tipo        query  string  false  "ENTRADA ou SAIDA"
// @Param        page        query  int     false  "Página"            default(1)
// @Param        per_page    query  int     false  "Itens por página"  default(50)
// @Success      200  {object}  dto.MovimentacaoListResponse
// @Router       /api/movimentacoes [get]
func (h *MovimentacaoHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(
		int64(c.QueryInt("produto_id", 0)),
		c.Query("tipo"),
		c.QueryInt("page", 1),
		c.QueryInt("per_page", 50),
	)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
