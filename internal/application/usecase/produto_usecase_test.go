package usecase_test

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Controle-estoque-api/internal/application/dto"
	"github.com/jhoicas/Controle-estoque-api/internal/application/usecase"
	"github.com/jhoicas/Controle-estoque-api/internal/domain"
	"github.com/jhoicas/Controle-estoque-api/internal/domain/entity"
	"github.com/jhoicas/Controle-estoque-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake em memória com o contrato do repositório real: GetByID devolve
// (nil, nil) quando o id não existe e List aplica o filtro e a paginação.
// ──────────────────────────────────────────────────────────────────────────────

type produtoRepoFake struct {
	produtos  map[int64]*entity.Produto
	proximoID int64
}

func newProdutoRepoFake() *produtoRepoFake {
	return &produtoRepoFake{produtos: make(map[int64]*entity.Produto)}
}

func (f *produtoRepoFake) Create(p *entity.Produto) error {
	f.proximoID++
	p.ID = f.proximoID
	c := *p
	f.produtos[p.ID] = &c
	return nil
}

func (f *produtoRepoFake) GetByID(id int64) (*entity.Produto, error) {
	p, ok := f.produtos[id]
	if !ok {
		return nil, nil
	}
	c := *p
	return &c, nil
}

func (f *produtoRepoFake) GetForUpdate(id int64) (*entity.Produto, error) {
	return f.GetByID(id)
}

func (f *produtoRepoFake) Update(p *entity.Produto) error {
	if _, ok := f.produtos[p.ID]; !ok {
		return domain.ErrNotFound
	}
	c := *p
	f.produtos[p.ID] = &c
	return nil
}

func (f *produtoRepoFake) List(filtro repository.ProdutoFilter) ([]*entity.Produto, int, error) {
	var todos []*entity.Produto
	for _, p := range f.produtos {
		if filtro.Search != "" && !strings.Contains(p.Descricao, filtro.Search) {
			continue
		}
		if filtro.Status != "" && p.StatusEstoque() != filtro.Status {
			continue
		}
		c := *p
		todos = append(todos, &c)
	}
	sort.Slice(todos, func(i, j int) bool { return todos[i].Descricao < todos[j].Descricao })

	total := len(todos)
	if filtro.Offset >= total {
		return nil, total, nil
	}
	fim := filtro.Offset + filtro.Limit
	if fim > total {
		fim = total
	}
	return todos[filtro.Offset:fim], total, nil
}

func (f *produtoRepoFake) ListAllOrdenado() ([]*entity.Produto, error) {
	out, _, err := f.List(repository.ProdutoFilter{Limit: len(f.produtos)})
	return out, err
}

func (f *produtoRepoFake) Delete(id int64) error {
	if _, ok := f.produtos[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.produtos, id)
	return nil
}

func ptr[T any](v T) *T { return &v }

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_AplicaPadroes(t *testing.T) {
	repo := newProdutoRepoFake()
	uc := usecase.NewProdutoUseCase(repo)

	out, err := uc.Create(dto.CreateProdutoRequest{Descricao: "Caneta azul"})
	require.NoError(t, err)

	assert.Equal(t, "Caneta azul", out.Descricao)
	assert.Equal(t, entity.UnidadePadrao, out.Unidade, "unidade vazia recebe o padrão")
	assert.Equal(t, 0.0, out.Estoque)
	assert.Equal(t, 0.0, out.Fornecimento)
	assert.Equal(t, entity.EstoqueMinimoPadrao, out.EstoqueMinimo)
	assert.Equal(t, entity.StatusEsgotado, out.StatusEstoque, "produto novo sem estoque nasce ESGOTADO")
	assert.NotZero(t, out.ID)
}

func TestCreate_DescricaoObrigatoria(t *testing.T) {
	uc := usecase.NewProdutoUseCase(newProdutoRepoFake())

	_, err := uc.Create(dto.CreateProdutoRequest{Descricao: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(dto.CreateProdutoRequest{Descricao: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "descrição só com espaços também é inválida")
}

func TestCreate_CamposExplicitos(t *testing.T) {
	uc := usecase.NewProdutoUseCase(newProdutoRepoFake())

	out, err := uc.Create(dto.CreateProdutoRequest{
		Descricao:     "Álcool em gel",
		Unidade:       "LITRO",
		Fornecimento:  ptr(2.0),
		Estoque:       ptr(12.0),
		EstoqueMinimo: ptr(3.0),
	})
	require.NoError(t, err)
	assert.Equal(t, "LITRO", out.Unidade)
	assert.Equal(t, 2.0, out.Fornecimento)
	assert.Equal(t, 12.0, out.Estoque)
	assert.Equal(t, 3.0, out.EstoqueMinimo)
	assert.Equal(t, entity.StatusOK, out.StatusEstoque)
}

// ──────────────────────────────────────────────────────────────────────────────
// GetByID / Update
// ──────────────────────────────────────────────────────────────────────────────

func TestGetByID_Inexistente(t *testing.T) {
	uc := usecase.NewProdutoUseCase(newProdutoRepoFake())

	out, err := uc.GetByID(123)
	require.NoError(t, err)
	assert.Nil(t, out, "id inexistente devolve (nil, nil); o handler traduz para 404")
}

func TestUpdate_MergeParcial(t *testing.T) {
	repo := newProdutoRepoFake()
	uc := usecase.NewProdutoUseCase(repo)
	criado, err := uc.Create(dto.CreateProdutoRequest{
		Descricao: "Grampeador", Unidade: "CAIXA", Estoque: ptr(8.0),
	})
	require.NoError(t, err)

	out, err := uc.Update(criado.ID, dto.UpdateProdutoRequest{Descricao: ptr("Grampeador de mesa")})
	require.NoError(t, err)

	assert.Equal(t, "Grampeador de mesa", out.Descricao)
	assert.Equal(t, "CAIXA", out.Unidade, "campo ausente no request permanece intacto")
	assert.Equal(t, 8.0, out.Estoque, "campo ausente no request permanece intacto")
}

// TestUpdate_AjusteAdministrativoDeEstoque: gravar estoque pelo Update escreve
// o saldo direto, sem gerar movimentação. É o único caminho de escrita de
// saldo fora do motor de estoque.
func TestUpdate_AjusteAdministrativoDeEstoque(t *testing.T) {
	repo := newProdutoRepoFake()
	uc := usecase.NewProdutoUseCase(repo)
	criado, err := uc.Create(dto.CreateProdutoRequest{Descricao: "Tinta", Estoque: ptr(10.0)})
	require.NoError(t, err)

	out, err := uc.Update(criado.ID, dto.UpdateProdutoRequest{Estoque: ptr(25.0)})
	require.NoError(t, err)
	assert.Equal(t, 25.0, out.Estoque)

	salvo, _ := repo.GetByID(criado.ID)
	assert.Equal(t, 25.0, salvo.Estoque)
}

func TestUpdate_Inexistente(t *testing.T) {
	uc := usecase.NewProdutoUseCase(newProdutoRepoFake())

	out, err := uc.Update(77, dto.UpdateProdutoRequest{Descricao: ptr("x")})
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestUpdate_DescricaoVaziaRejeitada(t *testing.T) {
	repo := newProdutoRepoFake()
	uc := usecase.NewProdutoUseCase(repo)
	criado, err := uc.Create(dto.CreateProdutoRequest{Descricao: "Fita adesiva"})
	require.NoError(t, err)

	_, err = uc.Update(criado.ID, dto.UpdateProdutoRequest{Descricao: ptr("  ")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	salvo, _ := repo.GetByID(criado.ID)
	assert.Equal(t, "Fita adesiva", salvo.Descricao, "update rejeitado não altera nada")
}

// ──────────────────────────────────────────────────────────────────────────────
// List
// ──────────────────────────────────────────────────────────────────────────────

func TestList_PaginacaoEContagem(t *testing.T) {
	repo := newProdutoRepoFake()
	uc := usecase.NewProdutoUseCase(repo)
	for _, d := range []string{"Arroz", "Borracha", "Caderno", "Detergente", "Envelope"} {
		_, err := uc.Create(dto.CreateProdutoRequest{Descricao: d})
		require.NoError(t, err)
	}

	out, err := uc.List("", "", 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 5, out.Total)
	assert.Equal(t, 3, out.Pages, "5 itens em páginas de 2 são 3 páginas")
	assert.Equal(t, 1, out.CurrentPage)
	assert.Equal(t, 2, out.PerPage)
	require.Len(t, out.Produtos, 2)
	assert.Equal(t, "Arroz", out.Produtos[0].Descricao, "ordenação por descrição ascendente")

	ultima, err := uc.List("", "", 3, 2)
	require.NoError(t, err)
	require.Len(t, ultima.Produtos, 1, "última página carrega só o resto")
	assert.Equal(t, "Envelope", ultima.Produtos[0].Descricao)
}

func TestList_NormalizaPaginaInvalida(t *testing.T) {
	repo := newProdutoRepoFake()
	uc := usecase.NewProdutoUseCase(repo)
	_, err := uc.Create(dto.CreateProdutoRequest{Descricao: "Lápis"})
	require.NoError(t, err)

	out, err := uc.List("", "", 0, -1)
	require.NoError(t, err)
	assert.Equal(t, 1, out.CurrentPage, "página < 1 normaliza para 1")
	assert.Equal(t, 50, out.PerPage, "per_page inválido normaliza para o padrão")
}

func TestList_FiltroDeStatus(t *testing.T) {
	repo := newProdutoRepoFake()
	uc := usecase.NewProdutoUseCase(repo)
	_, err := uc.Create(dto.CreateProdutoRequest{Descricao: "Sem saldo"})
	require.NoError(t, err)
	_, err = uc.Create(dto.CreateProdutoRequest{Descricao: "Com folga", Estoque: ptr(50.0)})
	require.NoError(t, err)

	esgotados, err := uc.List("", entity.StatusEsgotado, 1, 50)
	require.NoError(t, err)
	require.Len(t, esgotados.Produtos, 1)
	assert.Equal(t, "Sem saldo", esgotados.Produtos[0].Descricao)

	ok, err := uc.List("", entity.StatusOK, 1, 50)
	require.NoError(t, err)
	require.Len(t, ok.Produtos, 1)
	assert.Equal(t, "Com folga", ok.Produtos[0].Descricao)
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestDelete(t *testing.T) {
	repo := newProdutoRepoFake()
	uc := usecase.NewProdutoUseCase(repo)
	criado, err := uc.Create(dto.CreateProdutoRequest{Descricao: "Descartável"})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(criado.ID))

	out, err := uc.GetByID(criado.ID)
	require.NoError(t, err)
	assert.Nil(t, out)

	assert.ErrorIs(t, uc.Delete(criado.ID), domain.ErrNotFound, "segundo delete do mesmo id é NotFound")
}
