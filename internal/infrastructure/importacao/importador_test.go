package importacao_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Controle-estoque-api/internal/domain"
	"github.com/jhoicas/Controle-estoque-api/internal/domain/entity"
	"github.com/jhoicas/Controle-estoque-api/internal/domain/repository"
	"github.com/jhoicas/Controle-estoque-api/internal/infrastructure/importacao"
	"github.com/jhoicas/Controle-estoque-api/pkg/logger"
)

type baseFake struct {
	reiniciada bool
}

func (b *baseFake) ReiniciarBase(context.Context) error {
	b.reiniciada = true
	return nil
}

type produtoRepoFake struct {
	criados      []*entity.Produto
	falharCreate error
}

func (f *produtoRepoFake) Create(p *entity.Produto) error {
	if f.falharCreate != nil {
		return f.falharCreate
	}
	p.ID = int64(len(f.criados) + 1)
	f.criados = append(f.criados, p)
	return nil
}

func (f *produtoRepoFake) GetByID(int64) (*entity.Produto, error)      { return nil, nil }
func (f *produtoRepoFake) GetForUpdate(int64) (*entity.Produto, error) { return nil, nil }
func (f *produtoRepoFake) Update(*entity.Produto) error                { return nil }
func (f *produtoRepoFake) List(repository.ProdutoFilter) ([]*entity.Produto, int, error) {
	return nil, 0, nil
}
func (f *produtoRepoFake) ListAllOrdenado() ([]*entity.Produto, error) { return nil, nil }
func (f *produtoRepoFake) Delete(int64) error                          { return domain.ErrNotFound }

func montarImportador(t *testing.T) (*importacao.Importador, *baseFake, *produtoRepoFake) {
	t.Helper()
	base := &baseFake{}
	repo := &produtoRepoFake{}
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	return importacao.NewImportador(base, repo, log), base, repo
}

func TestImportar_CargaCompleta(t *testing.T) {
	imp, base, repo := montarImportador(t)

	csv := strings.Join([]string{
		"Papel A4,RESMA,2,10",
		"Tinta preta,FRASCO,1,3.5",
	}, "\n")

	res, err := imp.Importar(context.Background(), strings.NewReader(csv))
	require.NoError(t, err)

	assert.True(t, base.reiniciada, "a importação substitui a base inteira")
	assert.Equal(t, 2, res.Importados)
	assert.Zero(t, res.Ignorados)

	require.Len(t, repo.criados, 2)
	p := repo.criados[0]
	assert.Equal(t, "Papel A4", p.Descricao)
	assert.Equal(t, "RESMA", p.Unidade)
	assert.Equal(t, 2.0, p.Fornecimento)
	assert.Equal(t, 10.0, p.Estoque)
	assert.Equal(t, entity.EstoqueMinimoPadrao, p.EstoqueMinimo,
		"a planilha não traz mínimo; todos recebem o padrão")
}

func TestImportar_LinhaInvalidaEhPuladaESomada(t *testing.T) {
	imp, _, repo := montarImportador(t)

	csv := strings.Join([]string{
		"Papel A4,RESMA,2,10",
		"Linha quebrada,CAIXA,abc,5", // fornecimento não numérico
		"Tinta,FRASCO,1,xyz",         // estoque não numérico
		"Cola,TUBO,0,7",
	}, "\n")

	res, err := imp.Importar(context.Background(), strings.NewReader(csv))
	require.NoError(t, err, "linhas ruins não derrubam a carga")

	assert.Equal(t, 2, res.Importados)
	assert.Equal(t, 2, res.Ignorados)
	require.Len(t, repo.criados, 2)
	assert.Equal(t, "Papel A4", repo.criados[0].Descricao)
	assert.Equal(t, "Cola", repo.criados[1].Descricao)
}

func TestImportar_ErroDePersistenciaAborta(t *testing.T) {
	imp, _, repo := montarImportador(t)
	repo.falharCreate = errors.New("sem conexão")

	_, err := imp.Importar(context.Background(), strings.NewReader("Papel,RESMA,1,1"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sem conexão")
}

// ──────────────────────────────────────────────────────────────────────────────
// ConverterLinha
// ──────────────────────────────────────────────────────────────────────────────

func TestConverterLinha_Padroes(t *testing.T) {
	now := time.Now().UTC()

	p, err := importacao.ConverterLinha(4, importacao.LinhaPlanilha{}, now)
	require.NoError(t, err)

	assert.Equal(t, "Produto 5", p.Descricao, "descrição vazia vira Produto N (1-based)")
	assert.Equal(t, entity.UnidadePadrao, p.Unidade)
	assert.Zero(t, p.Fornecimento, "numérico vazio vira zero, não erro")
	assert.Zero(t, p.Estoque)
	assert.Equal(t, entity.EstoqueMinimoPadrao, p.EstoqueMinimo)
	assert.Equal(t, now, p.CreatedAt)
}

func TestConverterLinha_NumericoPreenchidoInvalido(t *testing.T) {
	now := time.Now().UTC()

	_, err := importacao.ConverterLinha(0, importacao.LinhaPlanilha{
		Descricao: "X", Fornecimento: "duas caixas",
	}, now)
	assert.Error(t, err, "numérico preenchido e não conversível é erro da linha")

	_, err = importacao.ConverterLinha(0, importacao.LinhaPlanilha{
		Descricao: "X", Estoque: "~10",
	}, now)
	assert.Error(t, err)
}

func TestConverterLinha_EspacosSaoAparados(t *testing.T) {
	now := time.Now().UTC()

	p, err := importacao.ConverterLinha(0, importacao.LinhaPlanilha{
		Descricao: "  Papel A4  ", Unidade: " RESMA ", Fornecimento: " 2 ", Estoque: " 10 ",
	}, now)
	require.NoError(t, err)
	assert.Equal(t, "Papel A4", p.Descricao)
	assert.Equal(t, "RESMA", p.Unidade)
	assert.Equal(t, 2.0, p.Fornecimento)
	assert.Equal(t, 10.0, p.Estoque)
}
