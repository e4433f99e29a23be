package usecase

import (
	"github.com/jhoicas/Controle-estoque-api/internal/application/dto"
	"github.com/jhoicas/Controle-estoque-api/internal/domain/repository"
)

// MovimentacaoUseCase consultas de somente leitura sobre o ledger.
type MovimentacaoUseCase struct {
	repo repository.MovimentacaoRepository
}

// NewMovimentacaoUseCase constrói o caso de uso.
func NewMovimentacaoUseCase(repo repository.MovimentacaoRepository) *MovimentacaoUseCase {
	return &MovimentacaoUseCase{repo: repo}
}

// List lista movimentações filtráveis por produto e tipo, ordenadas por
// data_movimentacao descendente, com paginação.
func (uc *MovimentacaoUseCase) List(produtoID int64, tipo string, page, perPage int) (*dto.MovimentacaoListResponse, error) {
	if page < 1 {
		page = 1
	}
	if perPage <= 0 {
		perPage = perPagePadrao
	}
	list, total, err := uc.repo.List(repository.MovimentacaoFilter{
		ProdutoID: produtoID,
		Tipo:      tipo,
		Limit:     perPage,
		Offset:    (page - 1) * perPage,
	})
	if err != nil {
		return nil, err
	}
	movs := make([]dto.MovimentacaoResponse, 0, len(list))
	for _, m := range list {
		movs = append(movs, dto.NewMovimentacaoResponse(m))
	}
	return &dto.MovimentacaoListResponse{
		Movimentacoes: movs,
		Total:         total,
		Pages:         dto.TotalPaginas(total, perPage),
		CurrentPage:   page,
		PerPage:       perPage,
	}, nil
}
