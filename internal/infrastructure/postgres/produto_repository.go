package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Controle-estoque-api/internal/domain"
	"github.com/jhoicas/Controle-estoque-api/internal/domain/entity"
	"github.com/jhoicas/Controle-estoque-api/internal/domain/repository"
)

var _ repository.ProdutoRepository = (*ProdutoRepo)(nil)

const produtoColunas = "id, descricao, unidade, fornecimento, estoque, estoque_minimo, created_at, updated_at"

// ProdutoRepo implementação do porto ProdutoRepository sobre PostgreSQL
// (usável com pool ou tx).
type ProdutoRepo struct {
	q Querier
}

// NewProdutoRepository constrói o adaptador de persistência de produtos.
func NewProdutoRepository(q Querier) *ProdutoRepo {
	return &ProdutoRepo{q: q}
}

// Create persiste um novo produto; o id gerado pelo banco é gravado em p.ID.
func (r *ProdutoRepo) Create(p *entity.Produto) error {
	query := `
		INSERT INTO produtos (descricao, unidade, fornecimento, estoque, estoque_minimo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		p.Descricao, p.Unidade, p.Fornecimento, p.Estoque, p.EstoqueMinimo, p.CreatedAt, p.UpdatedAt,
	).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("insert produto: %w", err)
	}
	return nil
}

// GetByID obtém um produto por ID; (nil, nil) quando não existe.
func (r *ProdutoRepo) GetByID(id int64) (*entity.Produto, error) {
	return r.get(id, false)
}

// GetForUpdate obtém o produto bloqueando a linha (SELECT FOR UPDATE).
// Dentro de uma transação serializa entradas e baixas concorrentes no mesmo
// produto, impedindo saque além do saldo.
func (r *ProdutoRepo) GetForUpdate(id int64) (*entity.Produto, error) {
	return r.get(id, true)
}

func (r *ProdutoRepo) get(id int64, forUpdate bool) (*entity.Produto, error) {
	query := "SELECT " + produtoColunas + " FROM produtos WHERE id = $1"
	if forUpdate {
		query += " FOR UPDATE"
	}
	var p entity.Produto
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Descricao, &p.Unidade, &p.Fornecimento, &p.Estoque, &p.EstoqueMinimo, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get produto: %w", err)
	}
	return &p, nil
}

// Update grava todos os campos mutáveis do produto.
func (r *ProdutoRepo) Update(p *entity.Produto) error {
	query := `
		UPDATE produtos
		SET descricao = $2, unidade = $3, fornecimento = $4, estoque = $5, estoque_minimo = $6, updated_at = $7
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		p.ID, p.Descricao, p.Unidade, p.Fornecimento, p.Estoque, p.EstoqueMinimo, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update produto: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista produtos com busca por substring, filtro de status e paginação,
// devolvendo também o total sem paginação. Ordenação fixa por descricao.
func (r *ProdutoRepo) List(f repository.ProdutoFilter) ([]*entity.Produto, int, error) {
	where := " WHERE 1=1"
	args := []any{}
	pos := 1
	if f.Search != "" {
		where += fmt.Sprintf(" AND POSITION($%d IN descricao) > 0", pos)
		args = append(args, f.Search)
		pos++
	}
	switch f.Status {
	case entity.StatusEsgotado:
		where += " AND estoque <= 0"
	case entity.StatusBaixo:
		where += " AND estoque <= estoque_minimo AND estoque > 0"
	case entity.StatusOK:
		where += " AND estoque > estoque_minimo"
	}

	var total int
	if err := r.q.QueryRow(context.Background(), "SELECT COUNT(*) FROM produtos"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count produtos: %w", err)
	}

	query := "SELECT " + produtoColunas + " FROM produtos" + where +
		fmt.Sprintf(" ORDER BY descricao LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, f.Limit, f.Offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list produtos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Produto
	for rows.Next() {
		var p entity.Produto
		if err := rows.Scan(&p.ID, &p.Descricao, &p.Unidade, &p.Fornecimento, &p.Estoque, &p.EstoqueMinimo, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan produto: %w", err)
		}
		list = append(list, &p)
	}
	return list, total, rows.Err()
}

// ListAllOrdenado devolve todos os produtos ordenados por descricao
// (usado pela exportação XLSX).
func (r *ProdutoRepo) ListAllOrdenado() ([]*entity.Produto, error) {
	rows, err := r.q.Query(context.Background(),
		"SELECT "+produtoColunas+" FROM produtos ORDER BY descricao")
	if err != nil {
		return nil, fmt.Errorf("list produtos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Produto
	for rows.Next() {
		var p entity.Produto
		if err := rows.Scan(&p.ID, &p.Descricao, &p.Unidade, &p.Fornecimento, &p.Estoque, &p.EstoqueMinimo, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan produto: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete remove um produto por ID; domain.ErrNotFound se não existir.
func (r *ProdutoRepo) Delete(id int64) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM produtos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete produto: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
