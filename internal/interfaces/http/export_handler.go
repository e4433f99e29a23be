package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Controle-estoque-api/internal/application/dto"
	"github.com/jhoicas/Controle-estoque-api/internal/application/export"
)

const mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler trata o download da planilha de estoque.
type ExportHandler struct {
	uc *export.ExportUseCase
}

// NewExportHandler constrói o handler.
func NewExportHandler(uc *export.ExportUseCase) *ExportHandler {
	return &ExportHandler{uc: uc}
}

// ExportarXLSX godoc
// @Summary      Exportar produtos em XLSX
// @Description  Planilha com todos os produtos ordenados por descrição,
// @Description  entregue como anexo com nome carimbado com data e hora.
// @Tags         export
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}    binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/exportar-xlsx [get]
func (h *ExportHandler) ExportarXLSX(c *fiber.Ctx) error {
	nome, conteudo, err := h.uc.ExportarProdutos()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, mimeXLSX)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, nome))
	return c.Send(conteudo)
}
