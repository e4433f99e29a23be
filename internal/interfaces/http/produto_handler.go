package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Controle-estoque-api/internal/application/dto"
	"github.com/jhoicas/Controle-estoque-api/internal/application/usecase"
	"github.com/jhoicas/Controle-estoque-api/internal/domain"
)

// ProdutoHandler trata as requisições HTTP de CRUD de produtos.
type ProdutoHandler struct {
	uc *usecase.ProdutoUseCase
}

// NewProdutoHandler constrói o handler.
func NewProdutoHandler(uc *usecase.ProdutoUseCase) *ProdutoHandler {
	return &ProdutoHandler{uc: uc}
}

// List godoc
// @Summary      Listar produtos
// @Tags         produtos
// @Produce      json
// @Param        search    query  string  false  "Busca por substring na descrição"
// @Param        status    query  string  false  "ESGOTADO, BAIXO ou OK"
// @Param        page      query  int     false  "Página"            default(1)
// @Param        per_page  query  int     false  "Itens por página"  default(50)
// @Success      200  {object}  dto.ProdutoListResponse
// @Router       /api/produtos [get]
func (h *ProdutoHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(
		c.Query("search"),
		c.Query("status"),
		c.QueryInt("page", 1),
		c.QueryInt("per_page", 50),
	)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obter produto por ID
// @Tags         produtos
// @Produce      json
// @Param        id   path  int  true  "ID do produto"
// @Success      200  {object}  dto.ProdutoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/produtos/{id} [get]
func (h *ProdutoHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	out, err := h.uc.GetByID(int64(id))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "produto não encontrado"})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Criar produto
// @Tags         produtos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProdutoRequest  true  "Dados do produto"
// @Success      201   {object}  dto.ProdutoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/produtos [post]
func (h *ProdutoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProdutoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "descrição é obrigatória"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Atualizar produto (merge parcial)
// @Description  Campos ausentes ficam como estão. Gravar estoque por aqui é
// @Description  ajuste administrativo e não gera movimentação.
// @Tags         produtos
// @Accept       json
// @Produce      json
// @Param        id    path  int                       true  "ID do produto"
// @Param        body  body  dto.UpdateProdutoRequest  true  "Campos a atualizar"
// @Success      200   {object}  dto.ProdutoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/produtos/{id} [put]
func (h *ProdutoHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	var in dto.UpdateProdutoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Update(int64(id), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "descrição não pode ser vazia"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "produto não encontrado"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Deletar produto
// @Tags         produtos
// @Produce      json
// @Param        id   path  int  true  "ID do produto"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/produtos/{id} [delete]
func (h *ProdutoHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	if err := h.uc.Delete(int64(id)); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "produto não encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Produto deletado com sucesso"})
}
