package dto

import (
	"time"

	"github.com/jhoicas/Controle-estoque-api/internal/domain/entity"
)

// OperacaoEstoqueRequest corpo de POST /api/produtos/:id/entrada e /baixa.
// Quantidade é ponteiro para distinguir ausente de zero (ambos inválidos,
// mas com mensagens diferentes).
type OperacaoEstoqueRequest struct {
	Quantidade *float64 `json:"quantidade"`
	Observacao string   `json:"observacao"`
}

// MovimentacaoResponse saída de uma movimentação do ledger.
type MovimentacaoResponse struct {
	ID               int64     `json:"id"`
	ProdutoID        int64     `json:"produto_id"`
	ProdutoDescricao string    `json:"produto_descricao"`
	Tipo             string    `json:"tipo"`
	Quantidade       float64   `json:"quantidade"`
	Observacao       string    `json:"observacao"`
	DataMovimentacao time.Time `json:"data_movimentacao"`
}

// MovimentacaoListResponse lista paginada de movimentações.
type MovimentacaoListResponse struct {
	Movimentacoes []MovimentacaoResponse `json:"movimentacoes"`
	Total         int                    `json:"total"`
	Pages         int                    `json:"pages"`
	CurrentPage   int                    `json:"current_page"`
	PerPage       int                    `json:"per_page"`
}

// OperacaoEstoqueResponse resposta das operações de entrada e baixa:
// o produto já atualizado e a movimentação recém-criada.
type OperacaoEstoqueResponse struct {
	Message      string               `json:"message"`
	Produto      ProdutoResponse      `json:"produto"`
	Movimentacao MovimentacaoResponse `json:"movimentacao"`
}

// NewMovimentacaoResponse mapeia a entidade para a resposta.
func NewMovimentacaoResponse(m *entity.MovimentacaoEstoque) MovimentacaoResponse {
	return MovimentacaoResponse{
		ID:               m.ID,
		ProdutoID:        m.ProdutoID,
		ProdutoDescricao: m.ProdutoDescricao,
		Tipo:             m.Tipo,
		Quantidade:       m.Quantidade,
		Observacao:       m.Observacao,
		DataMovimentacao: m.DataMovimentacao,
	}
}
