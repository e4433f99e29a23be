package usecase

import (
	"strings"
	"time"

	"github.com/jhoicas/Controle-estoque-api/internal/application/dto"
	"github.com/jhoicas/Controle-estoque-api/internal/domain"
	"github.com/jhoicas/Controle-estoque-api/internal/domain/entity"
	"github.com/jhoicas/Controle-estoque-api/internal/domain/repository"
)

const perPagePadrao = 50

// ProdutoUseCase casos de uso CRUD para produtos. Entradas e baixas de
// estoque passam pelo EstoqueUseCase; aqui o campo estoque só muda pelo
// ajuste administrativo do Update, que não gera movimentação.
type ProdutoUseCase struct {
	repo repository.ProdutoRepository
}

// NewProdutoUseCase constrói o caso de uso.
func NewProdutoUseCase(repo repository.ProdutoRepository) *ProdutoUseCase {
	return &ProdutoUseCase{repo: repo}
}

// Create cria um produto. Descricao é obrigatória; os demais campos recebem
// os padrões do domínio.
func (uc *ProdutoUseCase) Create(in dto.CreateProdutoRequest) (*dto.ProdutoResponse, error) {
	if strings.TrimSpace(in.Descricao) == "" {
		return nil, domain.ErrInvalidInput
	}
	unidade := in.Unidade
	if unidade == "" {
		unidade = entity.UnidadePadrao
	}
	now := time.Now().UTC()
	p := &entity.Produto{
		Descricao:     in.Descricao,
		Unidade:       unidade,
		Fornecimento:  valorOuZero(in.Fornecimento),
		Estoque:       valorOuZero(in.Estoque),
		EstoqueMinimo: entity.EstoqueMinimoPadrao,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if in.EstoqueMinimo != nil {
		p.EstoqueMinimo = *in.EstoqueMinimo
	}
	if err := uc.repo.Create(p); err != nil {
		return nil, err
	}
	resp := dto.NewProdutoResponse(p)
	return &resp, nil
}

// GetByID obtém um produto por ID; (nil, nil) quando não existe.
func (uc *ProdutoUseCase) GetByID(id int64) (*dto.ProdutoResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	resp := dto.NewProdutoResponse(p)
	return &resp, nil
}

// Update atualização parcial: campos nil permanecem como estão.
//
// Gravar Estoque por aqui é o ajuste administrativo: escreve o saldo
// diretamente, sem passar pelo ledger. É uma exceção deliberada à regra
// "toda mudança de estoque tem movimentação" e fica num ramo separado para
// nunca se misturar com o caminho de entrada/baixa.
func (uc *ProdutoUseCase) Update(id int64, in dto.UpdateProdutoRequest) (*dto.ProdutoResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	if in.Descricao != nil {
		if strings.TrimSpace(*in.Descricao) == "" {
			return nil, domain.ErrInvalidInput
		}
		p.Descricao = *in.Descricao
	}
	if in.Unidade != nil {
		p.Unidade = *in.Unidade
	}
	if in.Fornecimento != nil {
		p.Fornecimento = *in.Fornecimento
	}
	if in.EstoqueMinimo != nil {
		p.EstoqueMinimo = *in.EstoqueMinimo
	}
	if in.Estoque != nil {
		// Ajuste administrativo de saldo: não gera movimentação.
		p.Estoque = *in.Estoque
	}
	p.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(p); err != nil {
		return nil, err
	}
	resp := dto.NewProdutoResponse(p)
	return &resp, nil
}

// List lista produtos com busca, filtro de status e paginação, sempre
// ordenados por descricao ascendente.
func (uc *ProdutoUseCase) List(search, status string, page, perPage int) (*dto.ProdutoListResponse, error) {
	if page < 1 {
		page = 1
	}
	if perPage <= 0 {
		perPage = perPagePadrao
	}
	list, total, err := uc.repo.List(repository.ProdutoFilter{
		Search: search,
		Status: status,
		Limit:  perPage,
		Offset: (page - 1) * perPage,
	})
	if err != nil {
		return nil, err
	}
	produtos := make([]dto.ProdutoResponse, 0, len(list))
	for _, p := range list {
		produtos = append(produtos, dto.NewProdutoResponse(p))
	}
	return &dto.ProdutoListResponse{
		Produtos:    produtos,
		Total:       total,
		Pages:       dto.TotalPaginas(total, perPage),
		CurrentPage: page,
		PerPage:     perPage,
	}, nil
}

// Delete remove um produto; domain.ErrNotFound se o id não existe.
// As movimentações do produto não são removidas (ledger imutável).
func (uc *ProdutoUseCase) Delete(id int64) error {
	return uc.repo.Delete(id)
}

func valorOuZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
