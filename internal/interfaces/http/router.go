package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Controle-estoque-api/internal/application/analytics"
	"github.com/jhoicas/Controle-estoque-api/internal/application/estoque"
	"github.com/jhoicas/Controle-estoque-api/internal/application/export"
	"github.com/jhoicas/Controle-estoque-api/internal/application/usecase"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	ProdutoUC      *usecase.ProdutoUseCase
	MovimentacaoUC *usecase.MovimentacaoUseCase
	EstoqueUC      *estoque.EstoqueUseCase
	DashboardUC    *analytics.DashboardUseCase
	ExportUC       *export.ExportUseCase
}

// Router registra as rotas da API (caminhos herdados do sistema legado).
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	produtoHandler := NewProdutoHandler(deps.ProdutoUC)
	produtos := api.Group("/produtos")
	produtos.Get("/", produtoHandler.List)
	produtos.Post("/", produtoHandler.Create)
	produtos.Get("/:id", produtoHandler.GetByID)
	produtos.Put("/:id", produtoHandler.Update)
	produtos.Delete("/:id", produtoHandler.Delete)

	estoqueHandler := NewEstoqueHandler(deps.EstoqueUC)
	produtos.Post("/:id/entrada", estoqueHandler.Entrada)
	produtos.Post("/:id/baixa", estoqueHandler.Baixa)

	movimentacaoHandler := NewMovimentacaoHandler(deps.MovimentacaoUC)
	api.Get("/movimentacoes", movimentacaoHandler.List)

	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	api.Get("/dashboard", dashboardHandler.GetResumo)

	exportHandler := NewExportHandler(deps.ExportUC)
	api.Get("/exportar-xlsx", exportHandler.ExportarXLSX)
}
