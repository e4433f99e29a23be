package repository

import (
	"github.com/jhoicas/Controle-estoque-api/internal/domain/entity"
)

// MovimentacaoFilter filtros da listagem de movimentações.
// ProdutoID zero não filtra; Tipo vazio não filtra.
type MovimentacaoFilter struct {
	ProdutoID int64
	Tipo      string
	Limit     int
	Offset    int
}

// MovimentacaoRepository define o porto do ledger de movimentações.
// Create é invocado somente pelo motor de estoque, dentro da transação que
// também muta o saldo do produto. O ledger é append-only: não há Update/Delete.
type MovimentacaoRepository interface {
	Create(m *entity.MovimentacaoEstoque) error
	List(f MovimentacaoFilter) ([]*entity.MovimentacaoEstoque, int, error)
}
