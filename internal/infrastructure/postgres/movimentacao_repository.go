package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Controle-estoque-api/internal/domain/entity"
	"github.com/jhoicas/Controle-estoque-api/internal/domain/repository"
)

var _ repository.MovimentacaoRepository = (*MovimentacaoRepo)(nil)

// MovimentacaoRepo implementação do ledger sobre PostgreSQL (usável com pool
// ou tx). Só existem INSERT e SELECT: o ledger é append-only.
type MovimentacaoRepo struct {
	q Querier
}

// NewMovimentacaoRepository constrói o adaptador do ledger.
func NewMovimentacaoRepository(q Querier) *MovimentacaoRepo {
	return &MovimentacaoRepo{q: q}
}

// Create persiste uma movimentação; o id gerado é gravado em m.ID.
func (r *MovimentacaoRepo) Create(m *entity.MovimentacaoEstoque) error {
	query := `
		INSERT INTO movimentacoes_estoque (produto_id, tipo, quantidade, observacao, data_movimentacao)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		m.ProdutoID, m.Tipo, m.Quantidade, m.Observacao, m.DataMovimentacao,
	).Scan(&m.ID)
	if err != nil {
		return fmt.Errorf("insert movimentacao: %w", err)
	}
	return nil
}

// List lista movimentações filtráveis por produto e tipo, mais recentes
// primeiro, com o total sem paginação. LEFT JOIN porque movimentações de
// produtos removidos permanecem no ledger.
func (r *MovimentacaoRepo) List(f repository.MovimentacaoFilter) ([]*entity.MovimentacaoEstoque, int, error) {
	where := " WHERE 1=1"
	args := []any{}
	pos := 1
	if f.ProdutoID != 0 {
		where += fmt.Sprintf(" AND m.produto_id = $%d", pos)
		args = append(args, f.ProdutoID)
		pos++
	}
	if f.Tipo != "" {
		where += fmt.Sprintf(" AND m.tipo = $%d", pos)
		args = append(args, f.Tipo)
		pos++
	}

	var total int
	countQuery := "SELECT COUNT(*) FROM movimentacoes_estoque m" + where
	if err := r.q.QueryRow(context.Background(), countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count movimentacoes: %w", err)
	}

	query := `
		SELECT m.id, m.produto_id, COALESCE(p.descricao, ''), m.tipo, m.quantidade, m.observacao, m.data_movimentacao
		FROM movimentacoes_estoque m
		LEFT JOIN produtos p ON p.id = m.produto_id` + where +
		fmt.Sprintf(" ORDER BY m.data_movimentacao DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, f.Limit, f.Offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list movimentacoes: %w", err)
	}
	defer rows.Close()
	var list []*entity.MovimentacaoEstoque
	for rows.Next() {
		var m entity.MovimentacaoEstoque
		if err := rows.Scan(&m.ID, &m.ProdutoID, &m.ProdutoDescricao, &m.Tipo, &m.Quantidade, &m.Observacao, &m.DataMovimentacao); err != nil {
			return nil, 0, fmt.Errorf("scan movimentacao: %w", err)
		}
		list = append(list, &m)
	}
	return list, total, rows.Err()
}
