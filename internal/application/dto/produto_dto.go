package dto

import (
	"time"

	"github.com/jhoicas/Controle-estoque-api/internal/domain/entity"
)

// CreateProdutoRequest entrada para criar um produto.
// Apenas descricao é obrigatória; os demais campos recebem os padrões do
// domínio (unidade UNIDADE, fornecimento/estoque 0, estoque_minimo 5).
type CreateProdutoRequest struct {
	Descricao     string   `json:"descricao"`
	Unidade       string   `json:"unidade"`
	Fornecimento  *float64 `json:"fornecimento"`
	Estoque       *float64 `json:"estoque"`
	EstoqueMinimo *float64 `json:"estoque_minimo"`
}

// UpdateProdutoRequest entrada para atualização parcial: campos nil ficam
// como estão. Estoque aqui é o ajuste administrativo direto: grava o saldo
// sem gerar movimentação no ledger.
type UpdateProdutoRequest struct {
	Descricao     *string  `json:"descricao"`
	Unidade       *string  `json:"unidade"`
	Fornecimento  *float64 `json:"fornecimento"`
	Estoque       *float64 `json:"estoque"`
	EstoqueMinimo *float64 `json:"estoque_minimo"`
}

// ProdutoResponse saída de um produto, com o status derivado.
type ProdutoResponse struct {
	ID            int64     `json:"id"`
	Descricao     string    `json:"descricao"`
	Unidade       string    `json:"unidade"`
	Fornecimento  float64   `json:"fornecimento"`
	Estoque       float64   `json:"estoque"`
	EstoqueMinimo float64   `json:"estoque_minimo"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	StatusEstoque string    `json:"status_estoque"`
}

// ProdutoListResponse lista paginada de produtos.
type ProdutoListResponse struct {
	Produtos    []ProdutoResponse `json:"produtos"`
	Total       int               `json:"total"`
	Pages       int               `json:"pages"`
	CurrentPage int               `json:"current_page"`
	PerPage     int               `json:"per_page"`
}

// NewProdutoResponse mapeia a entidade para a resposta, derivando o status.
func NewProdutoResponse(p *entity.Produto) ProdutoResponse {
	return ProdutoResponse{
		ID:            p.ID,
		Descricao:     p.Descricao,
		Unidade:       p.Unidade,
		Fornecimento:  p.Fornecimento,
		Estoque:       p.Estoque,
		EstoqueMinimo: p.EstoqueMinimo,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
		StatusEstoque: p.StatusEstoque(),
	}
}
