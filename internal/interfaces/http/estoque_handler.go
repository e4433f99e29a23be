package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Controle-estoque-api/internal/application/dto"
	"github.com/jhoicas/Controle-estoque-api/internal/application/estoque"
	"github.com/jhoicas/Controle-estoque-api/internal/domain"
)

// EstoqueHandler trata as operações de entrada e baixa de estoque.
type EstoqueHandler struct {
	uc *estoque.EstoqueUseCase
}

// NewEstoqueHandler constrói o handler.
func NewEstoqueHandler(uc *estoque.EstoqueUseCase) *EstoqueHandler {
	return &EstoqueHandler{uc: uc}
}

// Entrada godoc
// @Summary      Registrar entrada de estoque
// @Tags         estoque
// @Accept       json
// @Produce      json
// @Param        id    path  int                         true  "ID do produto"
// @Param        body  body  dto.OperacaoEstoqueRequest  true  "quantidade (> 0) e observacao opcional"
// @Success      200   {object}  dto.OperacaoEstoqueResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/produtos/{id}/entrada [post]
func (h *EstoqueHandler) Entrada(c *fiber.Ctx) error {
	return h.operacao(c, h.uc.Entrada)
}

// Baixa godoc
// @Summary      Registrar baixa de estoque
// @Tags         estoque
// @Accept       json
// @Produce      json
// @Param        id    path  int                         true  "ID do produto"
// @Param        body  body  dto.OperacaoEstoqueRequest  true  "quantidade (> 0) e observacao opcional"
// @Success      200   {object}  dto.OperacaoEstoqueResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/produtos/{id}/baixa [post]
func (h *EstoqueHandler) Baixa(c *fiber.Ctx) error {
	return h.operacao(c, h.uc.Baixa)
}

type operacaoFn func(ctx context.Context, produtoID int64, quantidade float64, observacao string) (*dto.OperacaoEstoqueResponse, error)

func (h *EstoqueHandler) operacao(c *fiber.Ctx, fn operacaoFn) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	var in dto.OperacaoEstoqueRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.Quantidade == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "quantidade é obrigatória"})
	}

	out, err := fn(c.Context(), int64(id), *in.Quantidade, in.Observacao)
	if err != nil {
		var insuficiente *domain.EstoqueInsuficienteError
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "produto não encontrado"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "quantidade deve ser maior que zero"})
		case errors.As(err, &insuficiente):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "ESTOQUE_INSUFICIENTE", Message: insuficiente.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.JSON(out)
}
