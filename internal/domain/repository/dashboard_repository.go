package repository

import (
	"context"

	"github.com/jhoicas/Controle-estoque-api/internal/domain/entity"
)

// DashboardRepository consultas de somente leitura para o painel.
// Os contadores de ESGOTADO e BAIXO usam a mesma classificação derivada do
// StatusEstoque; não existe contador direto de OK (ver DashboardUseCase).
type DashboardRepository interface {
	CountProdutos(ctx context.Context) (int, error)
	CountEsgotados(ctx context.Context) (int, error)
	CountBaixoEstoque(ctx context.Context) (int, error)
	ListCriticos(ctx context.Context, limit int) ([]*entity.Produto, error)
	UltimasMovimentacoes(ctx context.Context, limit int) ([]*entity.MovimentacaoEstoque, error)
}
