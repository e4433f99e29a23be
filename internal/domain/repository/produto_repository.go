package repository

import (
	"github.com/jhoicas/Controle-estoque-api/internal/domain/entity"
)

// ProdutoFilter filtros da listagem de produtos.
// Search é busca por substring em descricao (case-sensitive, como no legado).
// Status aceita ESGOTADO, BAIXO ou OK; vazio não filtra.
type ProdutoFilter struct {
	Search string
	Status string
	Limit  int
	Offset int
}

// ProdutoRepository define o porto de persistência para Produto (DIP).
// GetByID e GetForUpdate devolvem (nil, nil) quando o id não existe.
// GetForUpdate bloqueia a linha (SELECT FOR UPDATE) e só faz sentido dentro
// de uma transação do TxRunner.
type ProdutoRepository interface {
	Create(p *entity.Produto) error
	GetByID(id int64) (*entity.Produto, error)
	GetForUpdate(id int64) (*entity.Produto, error)
	Update(p *entity.Produto) error
	List(f ProdutoFilter) ([]*entity.Produto, int, error)
	ListAllOrdenado() ([]*entity.Produto, error)
	Delete(id int64) error
}
