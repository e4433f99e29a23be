package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Controle-estoque-api/internal/application/usecase"
	"github.com/jhoicas/Controle-estoque-api/internal/domain/entity"
	"github.com/jhoicas/Controle-estoque-api/internal/domain/repository"
)

// movRepoFake devolve uma página fixa e registra o filtro recebido, para que
// o teste verifique a tradução de parâmetros em filtro de repositório.
type movRepoFake struct {
	filtroRecebido repository.MovimentacaoFilter
	pagina         []*entity.MovimentacaoEstoque
	total          int
}

func (f *movRepoFake) Create(*entity.MovimentacaoEstoque) error { return nil }

func (f *movRepoFake) List(filtro repository.MovimentacaoFilter) ([]*entity.MovimentacaoEstoque, int, error) {
	f.filtroRecebido = filtro
	return f.pagina, f.total, nil
}

func TestListMovimentacoes_TraduzFiltroEPaginacao(t *testing.T) {
	repo := &movRepoFake{
		pagina: []*entity.MovimentacaoEstoque{
			{ID: 1, ProdutoID: 7, Tipo: entity.TipoSaida, Quantidade: 2},
		},
		total: 101,
	}
	uc := usecase.NewMovimentacaoUseCase(repo)

	out, err := uc.List(7, entity.TipoSaida, 3, 20)
	require.NoError(t, err)

	assert.Equal(t, int64(7), repo.filtroRecebido.ProdutoID)
	assert.Equal(t, entity.TipoSaida, repo.filtroRecebido.Tipo)
	assert.Equal(t, 20, repo.filtroRecebido.Limit)
	assert.Equal(t, 40, repo.filtroRecebido.Offset, "página 3 com 20 por página pula 40")

	assert.Equal(t, 101, out.Total)
	assert.Equal(t, 6, out.Pages, "101 itens em páginas de 20 são 6 páginas")
	assert.Equal(t, 3, out.CurrentPage)
	require.Len(t, out.Movimentacoes, 1)
}

func TestListMovimentacoes_NormalizaParametros(t *testing.T) {
	repo := &movRepoFake{}
	uc := usecase.NewMovimentacaoUseCase(repo)

	out, err := uc.List(0, "", -5, 0)
	require.NoError(t, err)

	assert.Equal(t, 1, out.CurrentPage)
	assert.Equal(t, 50, out.PerPage)
	assert.Zero(t, repo.filtroRecebido.Offset)
	assert.NotNil(t, out.Movimentacoes, "lista vazia serializa como [], não null")
}
