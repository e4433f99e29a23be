package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Controle-estoque-api/internal/domain/entity"
	"github.com/jhoicas/Controle-estoque-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas de somente leitura para o painel.
type DashboardRepo struct {
	pool *pgxpool.Pool
}

// NewDashboardRepository constrói o adaptador do painel.
func NewDashboardRepository(pool *pgxpool.Pool) *DashboardRepo {
	return &DashboardRepo{pool: pool}
}

// CountProdutos total de produtos cadastrados.
func (r *DashboardRepo) CountProdutos(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM produtos`)
}

// CountEsgotados produtos com estoque <= 0.
func (r *DashboardRepo) CountEsgotados(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM produtos WHERE estoque <= 0`)
}

// CountBaixoEstoque produtos com 0 < estoque <= estoque_minimo.
func (r *DashboardRepo) CountBaixoEstoque(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM produtos WHERE estoque <= estoque_minimo AND estoque > 0`)
}

func (r *DashboardRepo) count(ctx context.Context, query string) (int, error) {
	var n int
	if err := r.pool.QueryRow(ctx, query).Scan(&n); err != nil {
		return 0, fmt.Errorf("dashboard count: %w", err)
	}
	return n, nil
}

// ListCriticos produtos com estoque no limite ou abaixo, os de menor saldo
// primeiro.
func (r *DashboardRepo) ListCriticos(ctx context.Context, limit int) ([]*entity.Produto, error) {
	query := "SELECT " + produtoColunas + ` FROM produtos
		WHERE estoque <= estoque_minimo
		ORDER BY estoque
		LIMIT $1`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list criticos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Produto
	for rows.Next() {
		var p entity.Produto
		if err := rows.Scan(&p.ID, &p.Descricao, &p.Unidade, &p.Fornecimento, &p.Estoque, &p.EstoqueMinimo, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan critico: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// UltimasMovimentacoes as movimentações mais recentes do ledger.
func (r *DashboardRepo) UltimasMovimentacoes(ctx context.Context, limit int) ([]*entity.MovimentacaoEstoque, error) {
	query := `
		SELECT m.id, m.produto_id, COALESCE(p.descricao, ''), m.tipo, m.quantidade, m.observacao, m.data_movimentacao
		FROM movimentacoes_estoque m
		LEFT JOIN produtos p ON p.id = m.produto_id
		ORDER BY m.data_movimentacao DESC
		LIMIT $1`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("ultimas movimentacoes: %w", err)
	}
	defer rows.Close()
	var list []*entity.MovimentacaoEstoque
	for rows.Next() {
		var m entity.MovimentacaoEstoque
		if err := rows.Scan(&m.ID, &m.ProdutoID, &m.ProdutoDescricao, &m.Tipo, &m.Quantidade, &m.Observacao, &m.DataMovimentacao); err != nil {
			return nil, fmt.Errorf("scan movimentacao: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
